// Package views holds the site's templ components. Every page receives a
// Page with the metadata bundle already composed; views never decide
// metadata themselves.
package views

import (
	"github.com/a-h/templ"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/seo"
)

// Flash is a one-shot message shown after a form submission.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// Page is the per-request context shared by every view.
type Page struct {
	Meta      seo.Bundle
	Path      string
	CSRFToken string
	Flash     *Flash
	Year      int
}

// HomeData feeds the home page.
type HomeData struct {
	Posts   []content.BlogPost
	Studies []content.CaseStudy
}

// BlogListData feeds the blog list page.
type BlogListData struct {
	Posts      []content.BlogPost
	Featured   []content.BlogPost
	Categories []string
	Category   string
	Query      string
}

// CaseStudyListData feeds the case study list page.
type CaseStudyListData struct {
	Studies []content.CaseStudy
	Types   []string
	Type    string
}

// PageFunc renders a page without extra data.
type PageFunc func(p Page) templ.Component
