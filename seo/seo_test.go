package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/route"
)

func mustStore(t *testing.T) *content.Store {
	t.Helper()
	s, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	return s
}

func TestCascadePrecedence(t *testing.T) {
	override := Fields{Title: "override"}
	computed := Fields{Title: "computed", Description: "computed desc"}
	page := Fields{Description: "page desc", Keywords: []string{"page"}}
	site := Fields{Title: "site", Description: "site desc", Keywords: []string{"site"}, Image: "/site.png"}

	got := Cascade(override, computed, page, site)
	want := Fields{Title: "override", Description: "computed desc", Keywords: []string{"page"}, Image: "/site.png"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cascade mismatch (-want +got):\n%s", diff)
	}
}

func TestCascadeSkipsBlankValues(t *testing.T) {
	got := Cascade(
		Fields{Title: "  ", Keywords: []string{" ", ""}},
		Fields{Title: "second", Keywords: []string{" kw "}},
	)
	if got.Title != "second" {
		t.Errorf("Title = %q, want %q", got.Title, "second")
	}
	if diff := cmp.Diff([]string{"kw"}, got.Keywords); diff != "" {
		t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestCascadeNoLayers(t *testing.T) {
	if got := Cascade(); !cmp.Equal(got, Fields{}) {
		t.Errorf("Cascade() = %+v, want zero", got)
	}
}

func TestTruncate(t *testing.T) {
	short := "short text"
	if got := Truncate(short, 160); got != short {
		t.Errorf("Truncate(short) = %q", got)
	}
	long := strings.Repeat("accounting automation ", 20)
	got := Truncate(long, 160)
	if n := utf8.RuneCountInString(got); n > 160 {
		t.Errorf("Truncate produced %d runes", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate(%q) should end with an ellipsis", got)
	}
}

func TestSiteAbs(t *testing.T) {
	s := DefaultSite()
	tests := []struct {
		in, want string
	}{
		{"/", "https://fintrex.ai"},
		{"", "https://fintrex.ai"},
		{"/blog", "https://fintrex.ai/blog"},
		{"/blog/", "https://fintrex.ai/blog"},
		{"/blog/covers/a.jpg", "https://fintrex.ai/blog/covers/a.jpg"},
		{"https://cdn.example.com/x.png", "https://cdn.example.com/x.png"},
	}
	for _, tt := range tests {
		if got := s.Abs(tt.in); got != tt.want {
			t.Errorf("Abs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBlogPostBundle(t *testing.T) {
	s := mustStore(t)
	c := NewComposer(DefaultSite())
	p, ok := s.Blog.FindBySlug("ai-vs-manual-data-entry-accounting")
	if !ok {
		t.Fatal("post missing")
	}

	b := c.BlogPost(p)
	if b.Title != "AI vs Manual Data Entry: The Future of Accounting | Fintrex" {
		t.Errorf("Title = %q", b.Title)
	}
	if b.Canonical != "https://fintrex.ai/blog/ai-vs-manual-data-entry-accounting" {
		t.Errorf("Canonical = %q", b.Canonical)
	}
	if b.Description != p.SEO.MetaDescription {
		t.Errorf("Description = %q, want override", b.Description)
	}
	if b.Image != "https://fintrex.ai/blog/covers/ai-vs-manual.jpg" {
		t.Errorf("Image = %q, want absolute cover image", b.Image)
	}
	if b.OGType != "article" || b.PublishedTime != "2024-12-01" || b.Author != "Fintrex Team" {
		t.Errorf("article fields = %q %q %q", b.OGType, b.PublishedTime, b.Author)
	}
	if len(b.StructuredData) != 2 {
		t.Fatalf("StructuredData = %d documents, want 2", len(b.StructuredData))
	}
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(b.StructuredData[0]), &doc); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if doc["@type"] != "BlogPosting" || doc["headline"] != p.Title {
		t.Errorf("unexpected BlogPosting: %v", doc)
	}
}

func TestComputedFallbacks(t *testing.T) {
	c := NewComposer(DefaultSite())
	p := content.BlogPost{
		Entity: content.Entity{
			Slug:    "plain",
			Title:   "Plain Post",
			Excerpt: strings.Repeat("word ", 60),
		},
	}
	b := c.BlogPost(p)
	if b.Title != "Plain Post | Fintrex" {
		t.Errorf("Title = %q", b.Title)
	}
	if utf8.RuneCountInString(b.Description) > descriptionLimit {
		t.Errorf("Description not truncated: %d runes", utf8.RuneCountInString(b.Description))
	}
	// No tags and no cover image: page then site defaults apply.
	if diff := cmp.Diff(DefaultPages()[route.Blog].Keywords, b.Keywords); diff != "" {
		t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
	}
	if b.Image != "https://fintrex.ai/fintrex-og-image.png" {
		t.Errorf("Image = %q, want site default", b.Image)
	}
}

func checkComplete(t *testing.T, name string, b Bundle) {
	t.Helper()
	fields := map[string]string{
		"Title":       b.Title,
		"Description": b.Description,
		"Keywords":    b.KeywordList(),
		"Canonical":   b.Canonical,
		"Image":       b.Image,
		"OGType":      b.OGType,
		"SiteName":    b.SiteName,
		"Locale":      b.Locale,
		"TwitterCard": b.TwitterCard,
		"TwitterSite": b.TwitterSite,
		"Robots":      b.Robots,
	}
	for field, v := range fields {
		if strings.TrimSpace(v) == "" {
			t.Errorf("%s: %s is empty", name, field)
		}
	}
	if !strings.HasPrefix(b.Canonical, "https://fintrex.ai") || strings.HasSuffix(b.Canonical, "/") {
		t.Errorf("%s: bad canonical %q", name, b.Canonical)
	}
	for i, doc := range b.StructuredData {
		if !json.Valid([]byte(doc)) {
			t.Errorf("%s: structured data %d is not valid JSON", name, i)
		}
	}
}

func TestEveryBundleIsComplete(t *testing.T) {
	s := mustStore(t)
	c := NewComposer(DefaultSite())

	for _, p := range s.Blog.All() {
		p.SEO = content.SEO{}
		checkComplete(t, "blog/"+p.Slug+" without overrides", c.BlogPost(p))
	}
	for _, p := range s.Blog.All() {
		checkComplete(t, "blog/"+p.Slug, c.BlogPost(p))
	}
	for _, cs := range s.CaseStudies.All() {
		checkComplete(t, "case-studies/"+cs.Slug, c.CaseStudy(cs))
		cs.SEO = content.SEO{}
		checkComplete(t, "case-studies/"+cs.Slug+" without overrides", c.CaseStudy(cs))
	}
	for _, r := range route.Table() {
		switch r.Kind {
		case route.Static, route.Listing:
			checkComplete(t, string(r.Page), c.Page(r.Page))
		case route.Legal:
			doc, _ := s.LegalDocument(r.Document)
			checkComplete(t, string(r.Page), c.Legal(doc, r.Page))
			doc.SEO = content.SEO{}
			checkComplete(t, string(r.Page)+" without overrides", c.Legal(doc, r.Page))
		}
	}
	checkComplete(t, "not found", c.NotFound("/missing"))
}

func TestBundlesAreIndependent(t *testing.T) {
	s := mustStore(t)
	c := NewComposer(DefaultSite())
	posts := s.Blog.All()

	first := c.BlogPost(posts[0])
	second := c.BlogPost(posts[1])
	again := c.BlogPost(posts[0])

	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("composing the same post twice differs (-first +again):\n%s", diff)
	}
	if second.Title == first.Title || second.Canonical == first.Canonical {
		t.Errorf("second bundle carries first page values: %q %q", second.Title, second.Canonical)
	}
	page := c.Page(route.Pricing)
	if page.PublishedTime != "" || page.Author != "" || len(page.Tags) != 0 {
		t.Errorf("static page inherited article fields: %+v", page)
	}
}

func TestHomeStructuredData(t *testing.T) {
	c := NewComposer(DefaultSite())
	b := c.Page(route.Home)
	if b.Canonical != "https://fintrex.ai" {
		t.Errorf("Canonical = %q", b.Canonical)
	}
	var types []string
	for _, doc := range b.StructuredData {
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(doc), &m); err != nil {
			t.Fatalf("invalid JSON-LD: %v", err)
		}
		types = append(types, m["@type"].(string))
	}
	if diff := cmp.Diff([]string{"Organization", "WebSite", "SoftwareApplication"}, types); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestFAQStructuredData(t *testing.T) {
	c := NewComposer(DefaultSite())
	b := c.Page(route.FAQ)
	var m struct {
		Type       string `json:"@type"`
		MainEntity []struct {
			Name string `json:"name"`
		} `json:"mainEntity"`
	}
	if err := json.Unmarshal([]byte(b.StructuredData[0]), &m); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if m.Type != "FAQPage" || len(m.MainEntity) != len(content.AllFAQs()) {
		t.Errorf("FAQPage = %q with %d questions", m.Type, len(m.MainEntity))
	}
}

func TestLegalBundle(t *testing.T) {
	s := mustStore(t)
	c := NewComposer(DefaultSite())
	doc, _ := s.LegalDocument(content.TermsOfServiceID)
	b := c.Legal(doc, route.Terms)
	if b.Title != "Terms of Service | Fintrex AI" {
		t.Errorf("Title = %q", b.Title)
	}
	if b.Canonical != "https://fintrex.ai/terms" {
		t.Errorf("Canonical = %q", b.Canonical)
	}
}

func TestNotFoundIsNotIndexed(t *testing.T) {
	c := NewComposer(DefaultSite())
	if got := c.NotFound("/nope").Robots; got != RobotsNoIndex {
		t.Errorf("Robots = %q, want %q", got, RobotsNoIndex)
	}
}
