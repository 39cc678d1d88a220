package fintrex

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/notify"
	"github.com/fintrexai/fintrex/route"
	"github.com/fintrexai/fintrex/views"
)

// mailbox records sent messages and fails the templates listed in fail.
type mailbox struct {
	mu   sync.Mutex
	sent []notify.Message
	fail map[string]bool
}

func (m *mailbox) Send(_ context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail[msg.Template] {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mailbox) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func newTestApp(t *testing.T, cfg SiteConfig, opts ...Option) *App {
	t.Helper()
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "test-secret-test-secret-test-sec"
	}
	a := New(cfg, DefaultViews(), opts...)
	if err := a.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func get(a *App, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

// post submits form from referer, carrying the CSRF token issued by a GET.
func post(t *testing.T, a *App, path, referer string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	first := get(a, "/")
	var csrf *http.Cookie
	for _, c := range first.Result().Cookies() {
		if c.Name == "_csrf" {
			csrf = c
		}
	}
	if csrf == nil {
		t.Fatalf("GET / did not issue a CSRF cookie")
	}
	form.Set("_csrf", csrf.Value)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("Referer", referer)
	req.AddCookie(csrf)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestBlogPostMissRedirectsWithoutRenderingDetail(t *testing.T) {
	calls := 0
	v := DefaultViews()
	v.BlogPost = func(p views.Page, post content.BlogPost, related []content.BlogPost) templ.Component {
		calls++
		return views.BlogPost(p, post, related)
	}
	a := New(SiteConfig{SessionSecret: "secret"}, v)
	if err := a.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer a.Close()

	rec := get(a, "/blog/does-not-exist")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog" {
		t.Errorf("Location = %q, want /blog", loc)
	}
	if calls != 0 {
		t.Errorf("detail view built %d times for a missing slug", calls)
	}
}

func TestCaseStudyMissRedirectsToList(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	rec := get(a, "/case-studies/nobody")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/case-studies" {
		t.Errorf("Location = %q, want /case-studies", loc)
	}
}

func TestBlogPostRendersComposedMetadata(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	rec := get(a, "/blog/ai-vs-manual-data-entry-accounting")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>AI vs Manual Data Entry: The Future of Accounting | Fintrex</title>",
		`<link rel="canonical" href="https://fintrex.ai/blog/ai-vs-manual-data-entry-accounting">`,
		`<meta property="og:type" content="article">`,
		`"@type":"BlogPosting"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %q", want)
		}
	}
	if strings.Contains(body, `href="/blog/ai-vs-manual-data-entry-accounting"><img`) {
		t.Error("current post listed among related posts")
	}
}

func TestEveryPageRendersWithCanonical(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	for _, p := range a.Pages() {
		t.Run(p.Path, func(t *testing.T) {
			rec := get(a, p.Path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			canonical := `<link rel="canonical" href="` + a.Composer.Site.Abs(p.Path) + `">`
			if !strings.Contains(rec.Body.String(), canonical) {
				t.Errorf("missing %s", canonical)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "private, no-cache" {
				t.Errorf("Cache-Control = %q", cc)
			}
		})
	}
}

func TestBlogListFilters(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	rec := get(a, "/blog?category="+url.QueryEscape(content.CategoryTaxCompliance))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, p := range a.Store.Blog.All() {
		link := `href="` + route.BlogPostPath(p.Slug) + `"`
		in := p.Category == content.CategoryTaxCompliance
		if in != strings.Contains(body, link) {
			t.Errorf("post %q (category %q) listed = %v", p.Slug, p.Category, !in)
		}
	}

	rec = get(a, "/blog?q=zzzz-no-match")
	if !strings.Contains(rec.Body.String(), "No articles match your search.") {
		t.Error("empty search did not render the empty state")
	}
}

func TestTrailingSlashRedirects(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	rec := get(a, "/pricing/")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/pricing" {
		t.Errorf("Location = %q, want /pricing", loc)
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	rec := get(a, "/no/such/page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<meta name="robots" content="noindex, follow">`) {
		t.Errorf("404 page is indexable:\n%s", body)
	}
	if !strings.Contains(body, "This page does not exist.") {
		t.Error("404 body missing")
	}
}

func TestServerErrorRendersErrorPage(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/boom", func(c echo.Context) error { return errors.New("boom") })
	}))

	rec := get(a, "/boom")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Error("500 page not rendered")
	}
}

func TestFailingViewRendersErrorPage(t *testing.T) {
	v := DefaultViews()
	v.About = func(p views.Page) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return errors.New("broken component")
		})
	}
	a := New(SiteConfig{SessionSecret: "secret"}, v)
	if err := a.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer a.Close()

	rec := get(a, "/about")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Something went wrong") || strings.Contains(body, "<h1>Our") {
		t.Errorf("unexpected body:\n%s", body)
	}
}

func TestSitemapListsEveryPage(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	rec := get(a, "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var set sitemapURLSet
	if err := xml.Unmarshal(rec.Body.Bytes(), &set); err != nil {
		t.Fatalf("parse sitemap: %v", err)
	}
	var got, want []string
	for _, u := range set.URLs {
		got = append(got, u.Loc)
	}
	for _, p := range a.Pages() {
		want = append(want, "https://fintrex.ai"+strings.TrimSuffix(p.Path, "/"))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sitemap locations (-want +got):\n%s", diff)
	}
	if n := a.Store.Blog.Len() + a.Store.CaseStudies.Len() + 9; len(got) != n {
		t.Errorf("sitemap has %d urls, want %d", len(got), n)
	}
}

func TestFeedListsPostsNewestFirst(t *testing.T) {
	a := newTestApp(t, SiteConfig{})

	rec := get(a, "/feed.xml")
	var feed rssXML
	if err := xml.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("parse feed: %v", err)
	}
	if len(feed.Channel.Items) != a.Store.Blog.Len() {
		t.Fatalf("feed has %d items, want %d", len(feed.Channel.Items), a.Store.Blog.Len())
	}
	newest := a.Store.Blog.Recent(1)[0]
	if got := feed.Channel.Items[0].Link; got != "https://fintrex.ai/blog/"+newest.Slug {
		t.Errorf("first item = %q, want newest post %q", got, newest.Slug)
	}
}

func TestRobots(t *testing.T) {
	a := newTestApp(t, SiteConfig{URL: "https://staging.fintrex.ai/"})

	body := get(a, "/robots.txt").Body.String()
	if !strings.Contains(body, "Sitemap: https://staging.fintrex.ai/sitemap.xml") {
		t.Errorf("robots.txt = %q", body)
	}
}

func TestWaitlistSignupFlashesSuccess(t *testing.T) {
	box := &mailbox{}
	a := newTestApp(t, SiteConfig{}, WithSender(box))

	rec := post(t, a, "/waitlist", "http://example.com/pricing", url.Values{"email": {"ca@firm.in"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/pricing" {
		t.Errorf("Location = %q, want /pricing", loc)
	}
	if box.count() != 2 {
		t.Errorf("sent %d messages, want notification and acknowledgment", box.count())
	}

	page := get(a, "/pricing", rec.Result().Cookies()...)
	if !strings.Contains(page.Body.String(), "secured your spot! Welcome to the future.") {
		t.Error("success flash not shown after redirect")
	}
	again := get(a, "/pricing", page.Result().Cookies()...)
	if strings.Contains(again.Body.String(), "secured your spot") {
		t.Error("flash shown twice")
	}
}

func TestWaitlistSubmissionOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		email string
		fail  map[string]bool
		sent  int
		flash string
	}{
		{"invalid email", "not-an-email", nil, 0, "Please enter a valid email address."},
		{"acknowledgment fails", "ca@firm.in", map[string]bool{notify.TemplateWaitlistThankYou: true}, 1, "secured your spot"},
		{"both fail", "ca@firm.in", map[string]bool{
			notify.TemplateWaitlistNotification: true,
			notify.TemplateWaitlistThankYou:     true,
		}, 0, "signup may not have completed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := &mailbox{fail: tt.fail}
			a := newTestApp(t, SiteConfig{}, WithSender(box))

			rec := post(t, a, "/waitlist", "", url.Values{"email": {tt.email}})
			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != "/" {
				t.Errorf("Location = %q, want /", loc)
			}
			if box.count() != tt.sent {
				t.Errorf("sent = %d, want %d", box.count(), tt.sent)
			}
			page := get(a, "/", rec.Result().Cookies()...)
			if !strings.Contains(page.Body.String(), tt.flash) {
				t.Errorf("flash %q not shown", tt.flash)
			}
		})
	}
}

func TestWaitlistRequiresCSRFToken(t *testing.T) {
	box := &mailbox{}
	a := newTestApp(t, SiteConfig{}, WithSender(box))

	req := httptest.NewRequest(http.MethodPost, "/waitlist", strings.NewReader("email=ca%40firm.in"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden && rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want a CSRF rejection", rec.Code)
	}
	if box.count() != 0 {
		t.Error("message sent without a CSRF token")
	}
}

func TestWaitlistRateLimit(t *testing.T) {
	box := &mailbox{}
	a := newTestApp(t, SiteConfig{WaitlistLimit: 1}, WithSender(box))

	post(t, a, "/waitlist", "", url.Values{"email": {"one@firm.in"}})
	rec := post(t, a, "/waitlist", "", url.Values{"email": {"two@firm.in"}})
	if box.count() != 2 {
		t.Errorf("sent = %d, want only the first signup's 2 messages", box.count())
	}
	page := get(a, "/", rec.Result().Cookies()...)
	if !strings.Contains(page.Body.String(), "Too many submissions") {
		t.Error("rate limit flash not shown")
	}
}

func TestContactForm(t *testing.T) {
	box := &mailbox{}
	a := newTestApp(t, SiteConfig{NotifyTo: "team@fintrex.ai"}, WithSender(box))

	rec := post(t, a, "/contact", "http://example.com/about", url.Values{
		"name":    {"Priya"},
		"email":   {"priya@firm.in"},
		"message": {"Do you support Tally?"},
	})
	if loc := rec.Header().Get("Location"); loc != "/about" {
		t.Errorf("Location = %q, want /about", loc)
	}
	if box.count() != 1 {
		t.Fatalf("sent = %d, want 1", box.count())
	}
	msg := box.sent[0]
	if msg.Template != notify.TemplateContactNotification || msg.Params["to_email"] != "team@fintrex.ai" {
		t.Errorf("unexpected message %+v", msg)
	}

	rec = post(t, a, "/contact", "", url.Values{"email": {"priya@firm.in"}, "message": {"  "}})
	page := get(a, "/", rec.Result().Cookies()...)
	if !strings.Contains(page.Body.String(), "Please write a message before sending.") {
		t.Error("empty message not rejected")
	}
}

func TestMetricsCountResolutions(t *testing.T) {
	a := newTestApp(t, SiteConfig{MetricsEnabled: true})

	get(a, "/blog/does-not-exist")
	get(a, "/blog/ai-vs-manual-data-entry-accounting")

	body := get(a, "/metrics").Body.String()
	for _, want := range []string{
		`fintrex_resolutions_total{collection="blog",outcome="redirected"} 1`,
		`fintrex_resolutions_total{collection="blog",outcome="rendered"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	if rec := get(a, "/metrics"); rec.Code != http.StatusNotFound {
		t.Errorf("/metrics status = %d, want 404", rec.Code)
	}
}

func TestSetupRejectsMissingSecret(t *testing.T) {
	a := New(SiteConfig{}, DefaultViews())
	if err := a.Setup(); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("Setup error = %v, want ErrMissingSecret", err)
	}
}

func TestBackTo(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://example.com/pricing", "/pricing"},
		{"http://example.com/blog?category=AI", "/blog?category=AI"},
		{"/faq", "/faq"},
		{"https://evil.example/phish", "/"},
		{"http://example.com//evil.example", "/"},
		{"::not a url", "/"},
	}
	e := echo.New()
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/waitlist", nil)
		req.Header.Set("Referer", tt.referer)
		c := e.NewContext(req, httptest.NewRecorder())
		if got := backTo(c); got != tt.want {
			t.Errorf("backTo(%q) = %q, want %q", tt.referer, got, tt.want)
		}
	}
}

func TestExportFile(t *testing.T) {
	tests := map[string]string{
		"/":                   "index.html",
		"/blog":               "blog/index.html",
		"/blog/some-post":     "blog/some-post/index.html",
		"/sitemap.xml":        "sitemap.xml",
		"/../../etc/passwd":   "etc/passwd/index.html",
		"/case-studies/x/../": "case-studies/index.html",
	}
	for in, want := range tests {
		if got := exportFile(in); got != want {
			t.Errorf("exportFile(%q) = %q, want %q", in, got, want)
		}
	}
}
