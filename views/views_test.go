package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/route"
	"github.com/fintrexai/fintrex/seo"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestHeadEscapesAndIncludesMetadata(t *testing.T) {
	b := seo.Bundle{
		Title:          `Tax & "Compliance"`,
		Description:    "desc <b>",
		Keywords:       []string{"a", "b"},
		Canonical:      "https://fintrex.ai/blog/x",
		Image:          "https://fintrex.ai/x.png",
		OGType:         "article",
		Tags:           []string{"GST"},
		StructuredData: []string{`{"@type":"BlogPosting"}`},
	}
	got := renderString(t, Head(b))
	for _, want := range []string{
		"<title>Tax &amp; &#34;Compliance&#34;</title>",
		`<meta name="description" content="desc &lt;b&gt;">`,
		`<meta name="keywords" content="a, b">`,
		`<link rel="canonical" href="https://fintrex.ai/blog/x">`,
		`<meta property="og:type" content="article">`,
		`<meta property="article:tag" content="GST">`,
		`<script type="application/ld+json">{"@type":"BlogPosting"}</script>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("head missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "article:author") {
		t.Error("empty article fields should be omitted")
	}
}

func TestLayoutFlash(t *testing.T) {
	p := Page{Path: "/", Flash: &Flash{Kind: "success", Message: "You're on the list <3"}}
	got := renderString(t, NotFound(p))
	if !strings.Contains(got, `class="flash flash-success"`) {
		t.Errorf("flash container missing:\n%s", got)
	}
	if strings.Contains(got, "<3") {
		t.Error("flash message not escaped")
	}
}

func TestNavMarksCurrentPage(t *testing.T) {
	got := renderString(t, nav("/pricing"))
	if !strings.Contains(got, `<a href="/pricing" aria-current="page">`) {
		t.Errorf("current page not marked:\n%s", got)
	}
}

func TestLegalKeepsSectionOrder(t *testing.T) {
	s, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	doc, _ := s.LegalDocument(content.PrivacyPolicyID)
	got := renderString(t, Legal(Page{}, doc))
	last := -1
	for _, sec := range doc.Sections {
		i := strings.Index(got, `<section id="`+sec.ID+`">`)
		if i < 0 {
			t.Fatalf("section %q not rendered", sec.ID)
		}
		if i < last {
			t.Errorf("section %q rendered out of order", sec.ID)
		}
		last = i
	}
}

func TestBlogPostRendersMarkdownAndRelated(t *testing.T) {
	s, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	post, _ := s.Blog.FindBySlug("ai-vs-manual-data-entry-accounting")
	related := s.Blog.RecentExcluding(3, post.Slug)
	composer := seo.NewComposer(seo.DefaultSite())

	got := renderString(t, BlogPost(Page{Meta: composer.BlogPost(post)}, post, related))
	if !strings.Contains(got, `<h2 id="introduction">Introduction</h2>`) {
		t.Error("markdown body not rendered")
	}
	if !strings.Contains(got, `href="#introduction"`) {
		t.Error("table of contents missing")
	}
	for _, r := range related {
		if !strings.Contains(got, `href="`+route.BlogPostPath(r.Slug)+`"`) {
			t.Errorf("related post %q missing", r.Slug)
		}
	}
}

func TestBlogPostSanitizesURLs(t *testing.T) {
	post := content.BlogPost{
		Entity:     content.Entity{Slug: "x", Title: "x", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		CoverImage: "javascript:alert(1)",
	}
	got := renderString(t, BlogPost(Page{}, post, nil))
	if strings.Contains(got, "javascript:") {
		t.Error("javascript: URL rendered into an attribute")
	}
	if !strings.Contains(got, `src="`+string(templ.FailedSanitizationURL)+`"`) {
		t.Error("cover image not replaced by the sanitization placeholder")
	}
}

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1599, "₹1,599"},
		{24000, "₹24,000"},
		{150000, "₹1,50,000"},
		{12345678, "₹1,23,45,678"},
	}
	for _, tt := range tests {
		if got := FormatRupees(tt.in); got != tt.want {
			t.Errorf("FormatRupees(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)); got != "1 December 2024" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q", got)
	}
}
