package seo

import (
	"encoding/json"
	"strings"

	"github.com/fintrexai/fintrex/content"
)

const schemaContext = "https://schema.org"

func marshal(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (c *Composer) publisher() map[string]interface{} {
	return map[string]interface{}{
		"@type": "Organization",
		"name":  c.Site.Organization,
		"logo": map[string]string{
			"@type": "ImageObject",
			"url":   c.Site.Abs(c.Site.Logo),
		},
	}
}

func (c *Composer) organization() string {
	return marshal(map[string]interface{}{
		"@context":      schemaContext,
		"@type":         "Organization",
		"name":          c.Site.Organization,
		"alternateName": c.Site.Name,
		"url":           c.Site.Abs("/"),
		"logo": map[string]string{
			"@type":  "ImageObject",
			"url":    c.Site.Abs(c.Site.Logo),
			"width":  "512",
			"height": "512",
		},
		"sameAs": c.Site.SameAs,
		"contactPoint": map[string]interface{}{
			"@type":             "ContactPoint",
			"contactType":       "Customer Service",
			"areaServed":        "IN",
			"availableLanguage": []string{"English", "Hindi"},
		},
		"address": map[string]string{
			"@type":          "PostalAddress",
			"addressCountry": "IN",
		},
	})
}

func (c *Composer) website() string {
	return marshal(map[string]interface{}{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     c.Site.Name,
		"url":      c.Site.Abs("/"),
		"potentialAction": map[string]interface{}{
			"@type":       "SearchAction",
			"target":      c.Site.Abs("/blog") + "?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	})
}

func (c *Composer) softwareApplication(b Bundle) string {
	var lowest int
	for _, p := range content.PricingPlans {
		if lowest == 0 || p.PriceAnnual < lowest {
			lowest = p.PriceAnnual
		}
	}
	return marshal(map[string]interface{}{
		"@context":            schemaContext,
		"@type":               "SoftwareApplication",
		"name":                c.Site.Name,
		"applicationCategory": "FinanceApplication",
		"operatingSystem":     "Web, Android, iOS",
		"description":         b.Description,
		"image":               b.Image,
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"price":         lowest,
			"priceCurrency": "INR",
			"availability":  "https://schema.org/PreOrder",
		},
		"provider": map[string]string{
			"@type": "Organization",
			"name":  c.Site.Organization,
		},
	})
}

func (c *Composer) featureList() string {
	items := make([]map[string]interface{}, 0, len(content.Features))
	for i, f := range content.Features {
		items = append(items, map[string]interface{}{
			"@type":       "ListItem",
			"position":    i + 1,
			"name":        f.Name,
			"description": f.Description,
			"image":       c.Site.Abs(f.Image),
		})
	}
	return marshal(map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"name":            c.Site.Organization + " Features",
		"itemListElement": items,
	})
}

func faqPage(qas []content.QA) string {
	entities := make([]map[string]interface{}, 0, len(qas))
	for _, qa := range qas {
		entities = append(entities, map[string]interface{}{
			"@type": "Question",
			"name":  qa.Q,
			"acceptedAnswer": map[string]string{
				"@type": "Answer",
				"text":  qa.A,
			},
		})
	}
	return marshal(map[string]interface{}{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	})
}

func (c *Composer) blogPosting(p content.BlogPost, b Bundle) string {
	return marshal(map[string]interface{}{
		"@context":      schemaContext,
		"@type":         "BlogPosting",
		"headline":      p.Title,
		"description":   p.Excerpt,
		"image":         b.Image,
		"datePublished": b.PublishedTime,
		"dateModified":  b.ModifiedTime,
		"author": map[string]string{
			"@type":    "Person",
			"name":     p.Author.Name,
			"jobTitle": p.Author.Role,
		},
		"publisher": c.publisher(),
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   b.Canonical,
		},
		"keywords": strings.Join(p.Tags, ", "),
	})
}

func (c *Composer) caseStudyArticle(s content.CaseStudy, b Bundle) string {
	return marshal(map[string]interface{}{
		"@context":      schemaContext,
		"@type":         "Article",
		"headline":      s.Title,
		"description":   s.Excerpt,
		"image":         b.Image,
		"datePublished": b.PublishedTime,
		"author": map[string]string{
			"@type": "Organization",
			"name":  c.Site.Organization,
		},
		"publisher": c.publisher(),
		"about": map[string]string{
			"@type": "Thing",
			"name":  s.ClientName,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   b.Canonical,
		},
	})
}

func (c *Composer) webPage(b Bundle, doc content.LegalDocument) string {
	return marshal(map[string]interface{}{
		"@context":     schemaContext,
		"@type":        "WebPage",
		"name":         doc.Title,
		"url":          b.Canonical,
		"description":  b.Description,
		"dateModified": b.ModifiedTime,
		"publisher":    c.publisher(),
	})
}

type crumb struct {
	name string
	path string
}

// breadcrumbs always starts at Home.
func (c *Composer) breadcrumbs(trail ...crumb) string {
	trail = append([]crumb{{"Home", "/"}}, trail...)
	items := make([]map[string]interface{}, 0, len(trail))
	for i, cr := range trail {
		items = append(items, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     cr.name,
			"item":     c.Site.Abs(cr.path),
		})
	}
	return marshal(map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}
