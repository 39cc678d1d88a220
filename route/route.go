// Package route describes the URL surface of the site. The table drives
// handler registration, the sitemap and the static export, and Navigate
// models how a detail request resolves to an entity or a redirect.
package route

import "strings"

// PageID names a renderable page independently of its URL.
type PageID string

const (
	Home          PageID = "home"
	About         PageID = "about"
	Features      PageID = "features"
	Pricing       PageID = "pricing"
	FAQ           PageID = "faq"
	Blog          PageID = "blog"
	BlogPost      PageID = "blog-post"
	CaseStudies   PageID = "case-studies"
	CaseStudy     PageID = "case-study"
	PrivacyPolicy PageID = "privacy-policy"
	Terms         PageID = "terms"
	NotFound      PageID = "not-found"
)

// Kind classifies how a route obtains its content.
type Kind int

const (
	Static Kind = iota
	Listing
	Detail
	Legal
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Listing:
		return "listing"
	case Detail:
		return "detail"
	case Legal:
		return "legal"
	}
	return "unknown"
}

// Route is one entry of the route table.
type Route struct {
	Pattern    string // echo pattern, ":slug" for detail routes
	Page       PageID
	Kind       Kind
	Name       string // breadcrumb and nav label
	Document   string // legal document id, Legal routes only
	Fallback   string // redirect target when a Detail slug misses
	Parent     PageID // breadcrumb parent, empty for top-level pages
	Priority   float64
	ChangeFreq string
}

// Path returns the concrete path for a route. slug is ignored for routes
// without a parameter.
func (r Route) Path(slug string) string {
	if r.Kind != Detail {
		return r.Pattern
	}
	return strings.Replace(r.Pattern, ":slug", slug, 1)
}

var table = []Route{
	{Pattern: "/", Page: Home, Kind: Static, Name: "Home", Priority: 1.0, ChangeFreq: "weekly"},
	{Pattern: "/about", Page: About, Kind: Static, Name: "About", Priority: 0.7, ChangeFreq: "monthly"},
	{Pattern: "/features", Page: Features, Kind: Static, Name: "Features", Priority: 0.9, ChangeFreq: "monthly"},
	{Pattern: "/pricing", Page: Pricing, Kind: Static, Name: "Pricing", Priority: 0.9, ChangeFreq: "monthly"},
	{Pattern: "/faq", Page: FAQ, Kind: Static, Name: "FAQ", Priority: 0.8, ChangeFreq: "monthly"},
	{Pattern: "/blog", Page: Blog, Kind: Listing, Name: "Blog", Priority: 0.8, ChangeFreq: "weekly"},
	{Pattern: "/blog/:slug", Page: BlogPost, Kind: Detail, Fallback: "/blog", Parent: Blog, Priority: 0.7, ChangeFreq: "monthly"},
	{Pattern: "/case-studies", Page: CaseStudies, Kind: Listing, Name: "Case Studies", Priority: 0.8, ChangeFreq: "monthly"},
	{Pattern: "/case-studies/:slug", Page: CaseStudy, Kind: Detail, Fallback: "/case-studies", Parent: CaseStudies, Priority: 0.7, ChangeFreq: "monthly"},
	{Pattern: "/privacy-policy", Page: PrivacyPolicy, Kind: Legal, Name: "Privacy Policy", Document: "privacy-policy", Fallback: "/", Priority: 0.3, ChangeFreq: "yearly"},
	{Pattern: "/terms", Page: Terms, Kind: Legal, Name: "Terms of Service", Document: "terms-of-service", Fallback: "/", Priority: 0.3, ChangeFreq: "yearly"},
}

// Table returns the route table in registration order.
func Table() []Route {
	return append([]Route(nil), table...)
}

// Lookup returns the route serving page.
func Lookup(page PageID) (Route, bool) {
	for _, r := range table {
		if r.Page == page {
			return r, true
		}
	}
	return Route{}, false
}

// PathOf returns the path of a non-detail page, or "/" if the page is unknown.
func PathOf(page PageID) string {
	if r, ok := Lookup(page); ok && r.Kind != Detail {
		return r.Pattern
	}
	return "/"
}

// BlogPostPath returns the path of the blog post with slug.
func BlogPostPath(slug string) string { return "/blog/" + slug }

// CaseStudyPath returns the path of the case study with slug.
func CaseStudyPath(slug string) string { return "/case-studies/" + slug }
