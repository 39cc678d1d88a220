// Package content holds the bundled Fintrex content: blog posts, case studies
// and legal documents. Everything is compiled in and indexed once at startup;
// nothing in this package mutates after NewStore returns.
package content

import (
	"slices"
	"time"
)

// Blog categories.
const (
	CategoryAIAutomation     = "AI & Automation"
	CategoryTaxCompliance    = "Tax & Compliance"
	CategoryIndustryInsights = "Industry Insights"
	CategoryProductUpdates   = "Product Updates"
	CategorySuccessStories   = "Success Stories"
	CategoryTipsTutorials    = "Tips & Tutorials"
)

// Case study client types. They occupy the Category field of a CaseStudy.
const (
	ClientIndividualCA = "Individual CA"
	ClientCAFirm       = "CA Firm"
	ClientEnterprise   = "Enterprise"
)

// BlogCategories lists the closed set of blog categories.
var BlogCategories = []string{
	CategoryAIAutomation,
	CategoryTaxCompliance,
	CategoryIndustryInsights,
	CategoryProductUpdates,
	CategorySuccessStories,
	CategoryTipsTutorials,
}

// ClientTypes lists the closed set of case study client types.
var ClientTypes = []string{ClientIndividualCA, ClientCAFirm, ClientEnterprise}

// SEO carries optional per-entity metadata overrides. Empty fields fall back
// to values computed from the entity itself.
type SEO struct {
	MetaTitle       string
	MetaDescription string
	Keywords        []string
	OGImage         string
}

// Entity is the shape shared by every sluggable content item.
type Entity struct {
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	PublishedAt time.Time
	Category    string
	Tags        []string
	SEO         SEO
}

// Meta returns the shared entity fields. Types embedding Entity satisfy Item
// through this method.
func (e Entity) Meta() Entity { return e }

func (s SEO) clone() SEO {
	s.Keywords = slices.Clone(s.Keywords)
	return s
}

func (e Entity) clone() Entity {
	e.Tags = slices.Clone(e.Tags)
	e.SEO = e.SEO.clone()
	return e
}

// Date formats PublishedAt as YYYY-MM-DD.
func (e Entity) Date() string { return e.PublishedAt.Format(dateLayout) }

// Item is implemented by every type stored in a Collection. Clone returns a
// copy that shares no slices with the receiver.
type Item[T any] interface {
	Meta() Entity
	Clone() T
}

// Author is the byline of a blog post.
type Author struct {
	Name     string
	Role     string
	Avatar   string
	LinkedIn string
	Twitter  string
}

// BlogPost is a markdown article in the blog collection.
type BlogPost struct {
	Entity
	Content    string
	CoverImage string
	Author     Author
	UpdatedAt  time.Time
	ReadTime   int
	Featured   bool
}

// Clone returns a deep copy of p.
func (p BlogPost) Clone() BlogPost {
	p.Entity = p.Entity.clone()
	return p
}

// Modified returns UpdatedAt, or PublishedAt when the post was never updated.
func (p BlogPost) Modified() time.Time {
	if p.UpdatedAt.IsZero() {
		return p.PublishedAt
	}
	return p.UpdatedAt
}

// Result is one headline metric of a case study.
type Result struct {
	Metric      string
	Value       string
	Description string
	Icon        string // time, money, clients, accuracy or growth
}

// Testimonial is a quote attributed to the case study client.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
	Avatar string
}

// CaseStudy is a customer story. Its Category is the client type.
type CaseStudy struct {
	Entity
	Subtitle       string
	CoverImage     string
	ClientName     string
	Location       string
	Industry       string
	Challenge      string
	Solution       string
	Implementation string
	Results        []Result
	Testimonial    Testimonial
	Timeline       string
	Featured       bool
}

// Clone returns a deep copy of s.
func (s CaseStudy) Clone() CaseStudy {
	s.Entity = s.Entity.clone()
	s.Results = slices.Clone(s.Results)
	return s
}

// ClientType is an alias for Category.
func (s CaseStudy) ClientType() string { return s.Category }

// Section is one titled block of a legal document.
type Section struct {
	ID      string
	Title   string
	Content string
}

// LegalDocument is a static policy page. Section order is significant: it
// defines the table of contents and in-page anchor order.
type LegalDocument struct {
	ID            string
	Title         string
	LastUpdated   time.Time
	EffectiveDate time.Time
	Sections      []Section
	SEO           SEO
}

// Clone returns a deep copy of d.
func (d LegalDocument) Clone() LegalDocument {
	d.Sections = slices.Clone(d.Sections)
	d.SEO = d.SEO.clone()
	return d
}

// Legal document ids.
const (
	PrivacyPolicyID  = "privacy-policy"
	TermsOfServiceID = "terms-of-service"
)

const dateLayout = "2006-01-02"

func mustDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic("content: bad date literal " + s)
	}
	return t
}
