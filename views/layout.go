package views

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/seo"
)

// Head renders the <head> metadata of a bundle.
func Head(b seo.Bundle) templ.Component {
	return component(func(o *out) {
		o.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		o.raw("<title>")
		o.text(b.Title)
		o.raw("</title>")
		meta := func(kind, key, value string) {
			if value == "" {
				return
			}
			o.raw("<meta")
			o.attr(kind, key)
			o.attr("content", value)
			o.raw(">")
		}
		meta("name", "description", b.Description)
		meta("name", "keywords", b.KeywordList())
		meta("name", "robots", b.Robots)
		meta("name", "theme-color", b.ThemeColor)
		o.raw(`<link rel="canonical"`)
		o.url("href", b.Canonical)
		o.raw(">")

		meta("property", "og:type", b.OGType)
		meta("property", "og:url", b.Canonical)
		meta("property", "og:title", b.Title)
		meta("property", "og:description", b.Description)
		meta("property", "og:image", b.Image)
		meta("property", "og:site_name", b.SiteName)
		meta("property", "og:locale", b.Locale)
		meta("property", "article:published_time", b.PublishedTime)
		meta("property", "article:modified_time", b.ModifiedTime)
		meta("property", "article:author", b.Author)
		meta("property", "article:section", b.Section)
		for _, tag := range b.Tags {
			meta("property", "article:tag", tag)
		}

		meta("name", "twitter:card", b.TwitterCard)
		meta("name", "twitter:site", b.TwitterSite)
		meta("name", "twitter:title", b.Title)
		meta("name", "twitter:description", b.Description)
		meta("name", "twitter:image", b.Image)

		o.raw(`<link rel="icon" type="image/png" sizes="32x32" href="/public/fintrex-icon-32.png">`)
		o.raw(`<link rel="apple-touch-icon" sizes="180x180" href="/public/fintrex-apple-touch-icon.png">`)
		o.raw(`<link rel="alternate" type="application/rss+xml" title="Fintrex Blog" href="/feed.xml">`)
		o.raw(`<link rel="stylesheet" href="/public/styles.css">`)
		for _, doc := range b.StructuredData {
			o.raw(`<script type="application/ld+json">`, doc, `</script>`)
		}
	})
}

// Layout wraps body in the document shell: head, navigation, flash message,
// footer and waitlist form.
func Layout(p Page, body templ.Component) templ.Component {
	return component(func(o *out) {
		o.raw(`<!DOCTYPE html><html lang="en-IN"><head>`)
		o.render(Head(p.Meta))
		o.raw(`</head><body class="bg-black text-white">`)
		o.render(nav(p.Path))
		if p.Flash != nil {
			o.raw(`<div role="status"`)
			o.attr("class", "flash flash-"+p.Flash.Kind)
			o.raw(">")
			o.text(p.Flash.Message)
			o.raw("</div>")
		}
		o.raw("<main>")
		o.render(body)
		o.raw("</main>")
		o.render(footer(p))
		o.raw("</body></html>")
	})
}

func nav(current string) templ.Component {
	return component(func(o *out) {
		o.raw(`<header><nav aria-label="Main"><a href="/" class="brand">Fintrex</a><ul>`)
		for _, l := range content.Nav {
			o.raw("<li><a")
			o.url("href", l.Path)
			if l.Path == current {
				o.raw(` aria-current="page"`)
			}
			o.raw(">")
			o.text(l.Label)
			o.raw("</a></li>")
		}
		o.raw("</ul></nav></header>")
	})
}

// WaitlistForm renders the email signup form posting to /waitlist.
func WaitlistForm(csrf string) templ.Component {
	return component(func(o *out) {
		o.raw(`<form method="post" action="/waitlist" class="waitlist">`)
		o.raw(`<input type="hidden" name="_csrf"`)
		o.attr("value", csrf)
		o.raw(`><label for="waitlist-email">Join the waitlist</label>`)
		o.raw(`<input id="waitlist-email" type="email" name="email" required placeholder="you@firm.in">`)
		o.raw(`<button type="submit">Get early access</button></form>`)
	})
}

func footer(p Page) templ.Component {
	return component(func(o *out) {
		o.raw("<footer>")
		o.render(WaitlistForm(p.CSRFToken))
		o.raw(`<ul class="legal"><li><a href="/privacy-policy">Privacy Policy</a></li><li><a href="/terms">Terms of Service</a></li>`)
		o.raw(`<li><a href="/feed.xml">RSS</a></li></ul>`)
		o.raw("<p>")
		o.text(fmt.Sprintf("© %d Fintrex AI Private Limited. All rights reserved.", p.Year))
		o.raw("</p></footer>")
	})
}
