package seo

import (
	"net/url"
	"path"
	"strings"

	"github.com/fintrexai/fintrex/route"
)

// Site holds the site-wide defaults, the last layer of every cascade.
type Site struct {
	Name         string
	Organization string
	URL          string
	Title        string
	Description  string
	Keywords     []string
	Image        string
	Logo         string
	Twitter      string
	Locale       string
	ThemeColor   string
	SameAs       []string
}

// DefaultSite returns the production site defaults.
func DefaultSite() Site {
	return Site{
		Name:         "Fintrex",
		Organization: "Fintrex AI",
		URL:          "https://fintrex.ai",
		Title:        "Fintrex | AI Accounting Automation for Indian CAs",
		Description: "Meet Fin, your AI accounting assistant. Automate 70% of accounting work with AI-powered invoice extraction, " +
			"GST filing, and real-time financial reporting. Built for Chartered Accountants in India. Zero manual data entry, 99.9% accuracy.",
		Keywords: []string{
			"AI accounting assistant", "Fin AI", "accounting automation", "AI accounting", "GST filing",
			"invoice extraction", "CA software", "Indian accounting", "Tally integration", "WhatsApp accounting",
			"automated bookkeeping", "financial reporting", "chartered accountant software", "AI invoice OCR",
		},
		Image:      "/fintrex-og-image.png",
		Logo:       "/fintrex-logo.png",
		Twitter:    "@fintrexai",
		Locale:     "en_IN",
		ThemeColor: "#00ff88",
		SameAs:     []string{"https://twitter.com/fintrexai", "https://linkedin.com/company/fintrex"},
	}
}

// Fields returns the site defaults as a cascade layer.
func (s Site) Fields() Fields {
	return Fields{Title: s.Title, Description: s.Description, Keywords: s.Keywords, Image: s.Image}
}

// Abs resolves p against the site URL. Absolute URLs are returned unchanged.
// The result never ends in a slash, so the home page is the bare site URL.
func (s Site) Abs(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return strings.TrimRight(s.URL, "/") + p
	}
	u.Path = strings.TrimSuffix(path.Join("/", u.Path, p), "/")
	return u.String()
}

// DefaultPages returns the static page defaults, the third cascade layer.
func DefaultPages() map[route.PageID]Fields {
	return map[route.PageID]Fields{
		route.Home: {
			Title: "Fintrex | AI Accounting Automation for Indian CAs - Meet Fin Your AI Assistant",
			Description: "Meet Fin, your 24/7 AI accounting assistant. Automate 70% of your accounting work with AI-powered invoice extraction, " +
				"instant GST filing, and 99.9% accuracy. Join 150+ CAs who've transformed their practice. Zero manual data entry.",
			Keywords: []string{
				"Fin AI assistant", "AI accounting automation", "chartered accountant software India", "GST filing automation",
				"invoice extraction AI", "WhatsApp accounting", "Tally integration", "CA practice management",
				"automated bookkeeping India", "financial reporting automation",
			},
		},
		route.About: {
			Title:       "About Us | Fintrex - The Future of CA-MSME Finance",
			Description: "Meet the team building the operating system for modern finance. Fintrex.ai connects businesses' financial operations directly with CA workflows.",
		},
		route.Features: {
			Title: "Features | Fintrex AI Accounting Automation - Fin's Capabilities",
			Description: "Discover how Fin, our AI assistant, powers Fintrex features: WhatsApp integration, 99.9% accurate AI invoice extraction, " +
				"automated vendor management, and one-click financial reports. Built for modern CA practices with cutting-edge AI technology.",
			Keywords: []string{
				"Fin AI features", "AI invoice extraction", "WhatsApp accounting integration", "OCR invoice scanning",
				"automated vendor management", "financial report automation", "GST filing automation",
				"Tally integration features", "CA software features India",
			},
		},
		route.Pricing: {
			Title: "Pricing | Fintrex AI Accounting - Affordable Plans with Fin AI Assistant",
			Description: "Transparent pricing for Fintrex AI accounting automation with Fin assistant. From ₹1,599/month for individual CAs to enterprise solutions. " +
				"Lock in early access rates forever. No hidden fees. Scale as you grow with powerful AI features.",
			Keywords: []string{
				"Fintrex pricing", "AI accounting software cost", "CA software pricing India", "accounting automation pricing",
				"Fin AI assistant cost", "GST software pricing", "early access pricing", "accounting software plans",
			},
		},
		route.FAQ: {
			Title: "FAQ | Fintrex - Your Questions About Fin AI Assistant Answered",
			Description: "Get answers to common questions about Fintrex AI accounting automation and Fin, our AI assistant. Learn about pricing, security, " +
				"integrations, AI accuracy, and how we help CA firms scale with 99.9% accuracy.",
			Keywords: []string{
				"Fintrex FAQ", "Fin AI assistant questions", "accounting automation questions", "CA software help",
				"AI invoice accuracy", "pricing", "security", "Tally integration", "WhatsApp accounting setup",
			},
		},
		route.Blog: {
			Title:       "Blog | Fintrex AI - Accounting Automation Insights",
			Description: "Explore insights on AI accounting automation, GST compliance, and best practices for Chartered Accountants. Stay updated with Fintrex blog.",
			Keywords:    []string{"accounting blog", "CA insights", "GST automation", "AI accounting", "Fintrex blog"},
		},
		route.CaseStudies: {
			Title: "Case Studies | Fintrex AI - Success Stories",
			Description: "Read real success stories from CAs and accounting firms using Fintrex AI. " +
				"Learn how they scaled, automated GST filing, and transformed their practice.",
			Keywords: []string{"case studies", "CA success stories", "accounting automation results", "Fintrex testimonials"},
		},
		route.NotFound: {
			Title:       "Page Not Found | Fintrex",
			Description: "The page you are looking for does not exist. Explore Fintrex AI accounting automation for Indian CAs.",
		},
	}
}
