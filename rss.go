package fintrex

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrexai/fintrex/route"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

func (a *App) handleFeed(c echo.Context) error {
	posts := a.Store.Blog.Recent(a.Store.Blog.Len())
	items := make([]rssItem, 0, len(posts))
	var lastBuild time.Time
	for _, p := range posts {
		postURL := a.Composer.Site.Abs(route.BlogPostPath(p.Slug))
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			Author:      p.Author.Name,
			Categories:  append([]string{p.Category}, p.Tags...),
			PubDate:     p.PublishedAt.Format(time.RFC1123Z),
			GUID:        postURL,
		})
		if m := p.Modified(); m.After(lastBuild) {
			lastBuild = m
		}
	}
	channel := rssChannel{
		Title:       a.Config.Name + " Blog",
		Link:        a.Composer.Site.Abs(route.PathOf(route.Blog)),
		Description: a.Composer.Site.Description,
		Language:    "en-in",
		Items:       items,
	}
	if !lastBuild.IsZero() {
		channel.LastBuildDate = lastBuild.Format(time.RFC1123Z)
	}
	feed := rssXML{Version: "2.0", Channel: channel}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
