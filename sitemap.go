package fintrex

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrexai/fintrex/route"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Page is one concrete, indexable page of the site.
type Page struct {
	Path     string
	Route    route.Route
	Modified time.Time
}

// Pages expands the route table into every concrete page: one per static,
// listing and legal route, one per entity for detail routes. Order follows
// the table, then the collection's newest-first order.
func (a *App) Pages() []Page {
	var pages []Page
	for _, r := range route.Table() {
		switch r.Page {
		case route.BlogPost:
			for _, p := range a.Store.Blog.Recent(a.Store.Blog.Len()) {
				pages = append(pages, Page{Path: r.Path(p.Slug), Route: r, Modified: p.Modified()})
			}
		case route.CaseStudy:
			for _, cs := range a.Store.CaseStudies.Recent(a.Store.CaseStudies.Len()) {
				pages = append(pages, Page{Path: r.Path(cs.Slug), Route: r, Modified: cs.PublishedAt})
			}
		default:
			var mod time.Time
			if doc, ok := a.Store.LegalDocument(r.Document); ok && r.Kind == route.Legal {
				mod = doc.LastUpdated
			}
			pages = append(pages, Page{Path: r.Pattern, Route: r, Modified: mod})
		}
	}
	return pages
}

func (a *App) handleSitemap(c echo.Context) error {
	pages := a.Pages()
	urls := make([]sitemapURL, 0, len(pages))
	for _, p := range pages {
		u := sitemapURL{
			Loc:        a.Composer.Site.Abs(p.Path),
			ChangeFreq: p.Route.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", p.Route.Priority),
		}
		if !p.Modified.IsZero() {
			u.LastMod = p.Modified.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
