// Package fintrex serves the Fintrex marketing and waitlist site with Echo
// and templ. It resolves every route against the bundled content store,
// composes page metadata, and dispatches waitlist and contact notifications.
//
// Pages are rendered through the ViewFuncs struct, so the markup can be
// swapped without touching handler logic.
package fintrex

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/notify"
	"github.com/fintrexai/fintrex/seo"
	"github.com/fintrexai/fintrex/views"
)

// ViewFuncs holds the components the handlers call when rendering pages.
type ViewFuncs struct {
	Home        func(p views.Page, d views.HomeData) templ.Component
	About       views.PageFunc
	Features    views.PageFunc
	Pricing     views.PageFunc
	FAQ         views.PageFunc
	BlogList    func(p views.Page, d views.BlogListData) templ.Component
	BlogPost    func(p views.Page, post content.BlogPost, related []content.BlogPost) templ.Component
	CaseStudies func(p views.Page, d views.CaseStudyListData) templ.Component
	CaseStudy   func(p views.Page, cs content.CaseStudy, related []content.CaseStudy) templ.Component
	Legal       func(p views.Page, doc content.LegalDocument) templ.Component
	NotFound    views.PageFunc
	ServerError views.PageFunc
}

// DefaultViews returns the site's own components.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		About:       views.About,
		Features:    views.Features,
		Pricing:     views.Pricing,
		FAQ:         views.FAQ,
		BlogList:    views.BlogList,
		BlogPost:    views.BlogPost,
		CaseStudies: views.CaseStudies,
		CaseStudy:   views.CaseStudy,
		Legal:       views.Legal,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App is the central application. It wires together the content store, the
// metadata composer, handlers, middleware and the notification dispatcher.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Store    *content.Store
	Composer *seo.Composer
	Views    ViewFuncs
	Logger   *zap.Logger
	Metrics  *Metrics

	dispatcher   *notify.Dispatcher
	sender       notify.Sender
	limiter      *FormLimiter
	customRoutes []func(*App)
	now          func() time.Time
	ready        bool
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		Logger: zap.NewNop(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup loads content, builds the dispatcher and registers middleware and
// routes. Start calls it; tests and the static exporter call it directly.
// A content defect is returned here so the process never serves with it.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}

	if a.Store == nil {
		store, err := content.Default()
		if err != nil {
			return fmt.Errorf("fintrex: load content: %w", err)
		}
		a.Store = store
	}

	site := seo.DefaultSite()
	site.Name = a.Config.Name
	site.URL = a.Config.URL
	a.Composer = seo.NewComposer(site)

	if a.sender == nil {
		a.sender = a.defaultSender()
	}
	a.dispatcher = notify.NewDispatcher(a.sender, a.Config.NotifyTo,
		notify.WithLogger(a.Logger.Named("notify")),
		notify.WithClock(a.now))

	a.limiter = NewFormLimiter(a.Config.WaitlistLimit, a.Config.WaitlistWindow)
	a.Metrics = NewMetrics()

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true

	a.Logger.Info("site ready",
		zap.String("url", a.Config.URL),
		zap.Int("posts", a.Store.Blog.Len()),
		zap.Int("case_studies", a.Store.CaseStudies.Len()))
	return nil
}

func (a *App) defaultSender() notify.Sender {
	if cfg, ok := a.Config.EmailJS(); ok {
		return notify.NewEmailJS(cfg)
	}
	a.Logger.Warn("emailjs not configured, notifications are only logged")
	return notify.LogSender{Logger: a.Logger.Named("mail")}
}

// Start sets the app up and serves until the server is closed.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close stops background work. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return a.Echo.Close()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
