package seo

import (
	"strings"
	"time"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/route"
)

const descriptionLimit = 160

// Robots directives.
const (
	RobotsIndex   = "index, follow, max-snippet:-1, max-image-preview:large, max-video-preview:-1"
	RobotsNoIndex = "noindex, follow"
)

// Bundle is the complete head metadata of one rendered page. A new Bundle is
// built for every request; nothing carries over from a previous page.
type Bundle struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Image       string
	OGType      string
	SiteName    string
	Locale      string
	TwitterCard string
	TwitterSite string
	Robots      string
	ThemeColor  string

	// Article fields, set for blog posts and case studies only.
	PublishedTime string
	ModifiedTime  string
	Author        string
	Section       string
	Tags          []string

	// StructuredData holds serialized JSON-LD documents.
	StructuredData []string
}

// KeywordList joins Keywords for the keywords meta tag.
func (b Bundle) KeywordList() string { return strings.Join(b.Keywords, ", ") }

// Composer builds bundles from the site defaults and page defaults.
type Composer struct {
	Site  Site
	Pages map[route.PageID]Fields
}

// NewComposer returns a Composer with the bundled page defaults.
func NewComposer(site Site) *Composer {
	return &Composer{Site: site, Pages: DefaultPages()}
}

func (c *Composer) base(f Fields, path, ogType string) Bundle {
	return Bundle{
		Title:       f.Title,
		Description: f.Description,
		Keywords:    f.Keywords,
		Canonical:   c.Site.Abs(path),
		Image:       c.Site.Abs(f.Image),
		OGType:      ogType,
		SiteName:    c.Site.Name,
		Locale:      c.Site.Locale,
		TwitterCard: "summary_large_image",
		TwitterSite: c.Site.Twitter,
		Robots:      RobotsIndex,
		ThemeColor:  c.Site.ThemeColor,
	}
}

// Page composes the bundle of a static or listing page.
func (c *Composer) Page(id route.PageID) Bundle {
	r, _ := route.Lookup(id)
	p := route.PathOf(id)
	b := c.base(Cascade(c.Pages[id], c.Site.Fields()), p, "website")

	switch id {
	case route.Home:
		b.StructuredData = append(b.StructuredData,
			c.organization(), c.website(), c.softwareApplication(b))
	case route.Features:
		b.StructuredData = append(b.StructuredData, c.featureList())
	case route.FAQ:
		b.StructuredData = append(b.StructuredData, faqPage(content.AllFAQs()))
	case route.Blog:
		b.OGType = "blog"
	}
	if id != route.Home {
		b.StructuredData = append(b.StructuredData, c.breadcrumbs(crumb{r.Name, p}))
	}
	return b
}

// NotFound composes the bundle of the 404 page. It is never indexed.
func (c *Composer) NotFound(path string) Bundle {
	b := c.base(Cascade(c.Pages[route.NotFound], c.Site.Fields()), path, "website")
	b.Robots = RobotsNoIndex
	return b
}

// entityFields is the computed layer of an entity: its own display fields.
func (c *Composer) entityFields(e content.Entity, image string) Fields {
	return Fields{
		Title:       e.Title + " | " + c.Site.Name,
		Description: Truncate(e.Excerpt, descriptionLimit),
		Keywords:    e.Tags,
		Image:       image,
	}
}

func overrides(s content.SEO) Fields {
	return Fields{Title: s.MetaTitle, Description: s.MetaDescription, Keywords: s.Keywords, Image: s.OGImage}
}

func (c *Composer) article(e content.Entity, image string, parent route.PageID, p string) Bundle {
	f := Cascade(overrides(e.SEO), c.entityFields(e, image), c.Pages[parent], c.Site.Fields())
	b := c.base(f, p, "article")
	b.PublishedTime = e.PublishedAt.Format(time.DateOnly)
	b.ModifiedTime = b.PublishedTime
	b.Section = e.Category
	b.Tags = append([]string(nil), e.Tags...)
	return b
}

// BlogPost composes the bundle of a blog post page.
func (c *Composer) BlogPost(p content.BlogPost) Bundle {
	path := route.BlogPostPath(p.Slug)
	b := c.article(p.Entity, p.CoverImage, route.Blog, path)
	b.ModifiedTime = p.Modified().Format(time.DateOnly)
	b.Author = p.Author.Name
	b.StructuredData = append(b.StructuredData,
		c.blogPosting(p, b),
		c.breadcrumbs(crumb{"Blog", route.PathOf(route.Blog)}, crumb{p.Title, path}),
	)
	return b
}

// CaseStudy composes the bundle of a case study page.
func (c *Composer) CaseStudy(s content.CaseStudy) Bundle {
	path := route.CaseStudyPath(s.Slug)
	b := c.article(s.Entity, s.CoverImage, route.CaseStudies, path)
	b.Author = c.Site.Organization
	b.StructuredData = append(b.StructuredData,
		c.caseStudyArticle(s, b),
		c.breadcrumbs(crumb{"Case Studies", route.PathOf(route.CaseStudies)}, crumb{s.Title, path}),
	)
	return b
}

// Legal composes the bundle of a legal document served at page.
func (c *Composer) Legal(doc content.LegalDocument, page route.PageID) Bundle {
	p := route.PathOf(page)
	computed := Fields{Title: doc.Title + " | " + c.Site.Organization}
	if len(doc.Sections) > 0 {
		computed.Description = Truncate(stripMarkdown(doc.Sections[0].Content), descriptionLimit)
	}
	b := c.base(Cascade(overrides(doc.SEO), computed, c.Site.Fields()), p, "website")
	b.ModifiedTime = doc.LastUpdated.Format(time.DateOnly)
	b.StructuredData = append(b.StructuredData,
		c.webPage(b, doc),
		c.breadcrumbs(crumb{doc.Title, p}),
	)
	return b
}

func stripMarkdown(s string) string {
	r := strings.NewReplacer("**", "", "__", "", "#", "", "`", "")
	return r.Replace(s)
}
