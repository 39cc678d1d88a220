package views

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/markdown"
	"github.com/fintrexai/fintrex/route"
)

func postCard(post content.BlogPost) templ.Component {
	return component(func(o *out) {
		o.raw(`<article class="card"><a`)
		o.url("href", route.BlogPostPath(post.Slug))
		o.raw("><img")
		o.url("src", post.CoverImage)
		o.attr("alt", post.Title)
		o.raw(` loading="lazy"><p class="eyebrow">`)
		o.text(post.Category)
		o.raw("</p><h3>")
		o.text(post.Title)
		o.raw("</h3><p>")
		o.text(post.Excerpt)
		o.raw(`</p><p class="byline"><time`)
		o.attr("datetime", post.Date())
		o.raw(">")
		o.text(FormatDate(post.PublishedAt))
		o.raw("</time> · ")
		o.textf("%d min read", post.ReadTime)
		o.raw("</p></a></article>")
	})
}

func caseStudyCard(cs content.CaseStudy) templ.Component {
	return component(func(o *out) {
		o.raw(`<article class="card"><a`)
		o.url("href", route.CaseStudyPath(cs.Slug))
		o.raw(`><p class="eyebrow">`)
		o.text(cs.ClientType())
		o.raw(" · ")
		o.text(cs.Location)
		o.raw("</p><h3>")
		o.text(cs.Title)
		o.raw("</h3><p>")
		o.text(cs.Subtitle)
		o.raw("</p>")
		if len(cs.Results) > 0 {
			r := cs.Results[0]
			o.raw(`<p class="metric"><strong>`)
			o.text(r.Value)
			o.raw("</strong> ")
			o.text(r.Metric)
			o.raw("</p>")
		}
		o.raw("</a></article>")
	})
}

func filterLink(o *out, base, key, value, label string, active bool) {
	href := base
	if value != "" {
		href += "?" + url.Values{key: {value}}.Encode()
	}
	o.raw("<li><a")
	o.url("href", href)
	if active {
		o.raw(` aria-current="true"`)
	}
	o.raw(">")
	o.text(label)
	o.raw("</a></li>")
}

// BlogList renders the blog index with category and search filters.
func BlogList(p Page, d BlogListData) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<h1>Insights for modern CA practices</h1>`)
		o.raw(`<form method="get" action="/blog" role="search"><input type="search" name="q"`)
		o.attr("value", d.Query)
		o.raw(` placeholder="Search articles">`)
		if d.Category != "" {
			o.raw(`<input type="hidden" name="category"`)
			o.attr("value", d.Category)
			o.raw(">")
		}
		o.raw(`</form><ul class="filters">`)
		filterLink(o, "/blog", "category", "", "All", d.Category == "")
		for _, c := range d.Categories {
			filterLink(o, "/blog", "category", c, c, c == d.Category)
		}
		o.raw("</ul>")

		if d.Category == "" && d.Query == "" && len(d.Featured) > 0 {
			o.raw(`<section class="featured"><h2>Featured</h2>`)
			for _, post := range d.Featured {
				o.render(postCard(post))
			}
			o.raw("</section>")
		}
		o.raw(`<section class="posts">`)
		if len(d.Posts) == 0 {
			o.raw(`<p class="empty">No articles match your search.</p>`)
		}
		for _, post := range d.Posts {
			o.render(postCard(post))
		}
		o.raw("</section>")
	}))
}

// BlogPost renders a single article and the "more articles" rail.
func BlogPost(p Page, post content.BlogPost, related []content.BlogPost) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<article class="post"><nav class="crumbs"><a href="/blog">Blog</a></nav><p class="eyebrow">`)
		o.text(post.Category)
		o.raw("</p><h1>")
		o.text(post.Title)
		o.raw(`</h1><p class="byline">`)
		o.text(post.Author.Name)
		o.raw(", ")
		o.text(post.Author.Role)
		o.raw(" · <time")
		o.attr("datetime", post.Date())
		o.raw(">")
		o.text(FormatDate(post.PublishedAt))
		o.raw("</time> · ")
		o.textf("%d min read", post.ReadTime)
		o.raw("</p><img")
		o.url("src", post.CoverImage)
		o.attr("alt", post.Title)
		o.raw(">")

		if toc := markdown.Headings(post.Content); len(toc) > 1 {
			o.raw(`<nav class="toc" aria-label="Contents"><ol>`)
			for _, h := range toc {
				o.raw("<li")
				o.attr("class", fmt.Sprintf("toc-h%d", h.Level))
				o.raw("><a")
				o.url("href", "#"+h.ID)
				o.raw(">")
				o.text(h.Text)
				o.raw("</a></li>")
			}
			o.raw("</ol></nav>")
		}
		o.raw(`<div class="prose">`)
		o.render(markdown.Markdown(post.Content))
		o.raw(`</div><ul class="tags">`)
		for _, t := range post.Tags {
			o.raw("<li>")
			o.text(t)
			o.raw("</li>")
		}
		o.raw("</ul>")
		o.render(shareLinks(p.Meta.Canonical, post.Title+" - Fintrex AI"))
		o.raw("</article>")

		if len(related) > 0 {
			o.raw(`<aside class="related"><h2>More articles</h2>`)
			for _, r := range related {
				o.render(postCard(r))
			}
			o.raw("</aside>")
		}
	}))
}

func shareLinks(pageURL, text string) templ.Component {
	return component(func(o *out) {
		linkedin := "https://www.linkedin.com/sharing/share-offsite/?" + url.Values{"url": {pageURL}}.Encode()
		twitter := "https://twitter.com/intent/tweet?" + url.Values{"text": {text}, "url": {pageURL}}.Encode()
		o.raw(`<p class="share">Share: <a target="_blank" rel="noopener noreferrer"`)
		o.url("href", linkedin)
		o.raw(`>LinkedIn</a> <a target="_blank" rel="noopener noreferrer"`)
		o.url("href", twitter)
		o.raw(">Twitter</a></p>")
	})
}

// CaseStudies renders the case study index with a client type filter.
func CaseStudies(p Page, d CaseStudyListData) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<h1>Success stories</h1><ul class="filters">`)
		filterLink(o, "/case-studies", "type", "", "All", d.Type == "")
		for _, t := range d.Types {
			filterLink(o, "/case-studies", "type", t, t, t == d.Type)
		}
		o.raw(`</ul><section class="studies">`)
		if len(d.Studies) == 0 {
			o.raw(`<p class="empty">No case studies for this client type yet.</p>`)
		}
		for _, cs := range d.Studies {
			o.render(caseStudyCard(cs))
		}
		o.raw("</section>")
	}))
}

// CaseStudy renders a single case study.
func CaseStudy(p Page, cs content.CaseStudy, related []content.CaseStudy) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<article class="case-study"><nav class="crumbs"><a href="/case-studies">Case Studies</a></nav><h1>`)
		o.text(cs.Title)
		o.raw(`</h1><p class="subtitle">`)
		o.text(cs.Subtitle)
		o.raw(`</p><dl class="client"><dt>Client</dt><dd>`)
		o.text(cs.ClientName)
		o.raw("</dd><dt>Type</dt><dd>")
		o.text(cs.ClientType())
		o.raw("</dd><dt>Location</dt><dd>")
		o.text(cs.Location)
		o.raw("</dd>")
		if cs.Industry != "" {
			o.raw("<dt>Industry</dt><dd>")
			o.text(cs.Industry)
			o.raw("</dd>")
		}
		o.raw("<dt>Timeline</dt><dd>")
		o.text(cs.Timeline)
		o.raw(`</dd></dl><section class="results">`)
		for _, r := range cs.Results {
			o.raw("<div")
			o.attr("class", "result icon-"+r.Icon)
			o.raw("><strong>")
			o.text(r.Value)
			o.raw("</strong><span>")
			o.text(r.Metric)
			o.raw("</span><small>")
			o.text(r.Description)
			o.raw("</small></div>")
		}
		o.raw("</section>")
		for _, s := range []struct{ title, body string }{
			{"The Challenge", cs.Challenge},
			{"The Solution", cs.Solution},
			{"Implementation", cs.Implementation},
		} {
			o.raw(`<section class="prose"><h2>`)
			o.text(s.title)
			o.raw("</h2>")
			o.render(markdown.Markdown(s.body))
			o.raw("</section>")
		}
		o.raw(`<figure class="testimonial"><blockquote>`)
		o.text(cs.Testimonial.Quote)
		o.raw("</blockquote><figcaption>")
		o.text(cs.Testimonial.Author)
		o.raw(", ")
		o.text(cs.Testimonial.Role)
		o.raw("</figcaption></figure></article>")

		if len(related) > 0 {
			o.raw(`<aside class="related"><h2>More success stories</h2>`)
			for _, r := range related {
				o.render(caseStudyCard(r))
			}
			o.raw("</aside>")
		}
	}))
}

// Legal renders a legal document with its table of contents. Sections keep
// their authoring order and their ids become the anchors.
func Legal(p Page, doc content.LegalDocument) templ.Component {
	return Layout(p, component(func(o *out) {
		o.raw(`<article class="legal"><h1>`)
		o.text(doc.Title)
		o.raw(`</h1><p class="dates">Last updated: `)
		o.text(FormatDate(doc.LastUpdated))
		o.raw(" · Effective: ")
		o.text(FormatDate(doc.EffectiveDate))
		o.raw(`</p><nav class="toc" aria-label="Contents"><ol>`)
		for _, s := range doc.Sections {
			o.raw("<li><a")
			o.url("href", "#"+s.ID)
			o.raw(">")
			o.text(s.Title)
			o.raw("</a></li>")
		}
		o.raw("</ol></nav>")
		for _, s := range doc.Sections {
			o.raw("<section")
			o.attr("id", s.ID)
			o.raw("><h2>")
			o.text(s.Title)
			o.raw("</h2>")
			o.render(markdown.Markdown(s.Content))
			o.raw("</section>")
		}
		o.raw("</article>")
	}))
}
