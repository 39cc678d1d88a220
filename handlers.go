package fintrex

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fintrexai/fintrex/content"
	"github.com/fintrexai/fintrex/notify"
	"github.com/fintrexai/fintrex/route"
	"github.com/fintrexai/fintrex/seo"
	"github.com/fintrexai/fintrex/views"
)

// Flash messages shown after form submissions.
const (
	msgSignupOK       = "You've secured your spot! Welcome to the future."
	msgSignupFailed   = "Your signup may not have completed. Please try again or write to " + content.SiteEmail + "."
	msgContactOK      = "Thanks for reaching out. We'll get back to you shortly."
	msgContactFailed  = "Your message may not have been sent. Please try again or write to " + content.SiteEmail + "."
	msgInvalidEmail   = "Please enter a valid email address."
	msgEmptyMessage   = "Please write a message before sending."
	msgTooManyAttempt = "Too many submissions. Please try again in a minute."
)

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	for _, r := range route.Table() {
		e.GET(r.Pattern, a.pageHandler(r))
	}

	e.POST("/waitlist", a.handleWaitlist)
	e.POST("/contact", a.handleContact)

	if a.Config.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(a.Metrics.Handler()))
	}
}

// page builds the per-request view context around a composed bundle.
func (a *App) page(c echo.Context, meta seo.Bundle) views.Page {
	return views.Page{
		Meta:      meta,
		Path:      c.Request().URL.Path,
		CSRFToken: CsrfToken(c),
		Flash:     PopFlash(c),
		Year:      a.now().Year(),
	}
}

func (a *App) pageHandler(r route.Route) echo.HandlerFunc {
	switch r.Page {
	case route.Home:
		return a.handleHome
	case route.Blog:
		return a.handleBlogList
	case route.BlogPost:
		return a.handleBlogPost(r)
	case route.CaseStudies:
		return a.handleCaseStudies
	case route.CaseStudy:
		return a.handleCaseStudy(r)
	}
	if r.Kind == route.Legal {
		return a.handleLegal(r)
	}
	view := map[route.PageID]views.PageFunc{
		route.About:    a.Views.About,
		route.Features: a.Views.Features,
		route.Pricing:  a.Views.Pricing,
		route.FAQ:      a.Views.FAQ,
	}[r.Page]
	if view == nil {
		return func(c echo.Context) error { return echo.ErrNotFound }
	}
	return func(c echo.Context) error {
		return Render(c, view(a.page(c, a.Composer.Page(r.Page))))
	}
}

func (a *App) handleHome(c echo.Context) error {
	data := views.HomeData{
		Posts:   a.Store.Blog.Recent(3),
		Studies: a.Store.FeaturedCaseStudies(),
	}
	return Render(c, a.Views.Home(a.page(c, a.Composer.Page(route.Home)), data))
}

func (a *App) handleBlogList(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	query := strings.TrimSpace(c.QueryParam("q"))
	data := views.BlogListData{
		Posts:      a.Store.Blog.Filter(category, query),
		Featured:   a.Store.FeaturedPosts(),
		Categories: a.Store.Blog.Categories(),
		Category:   category,
		Query:      query,
	}
	return Render(c, a.Views.BlogList(a.page(c, a.Composer.Page(route.Blog)), data))
}

func (a *App) handleCaseStudies(c echo.Context) error {
	clientType := strings.TrimSpace(c.QueryParam("type"))
	data := views.CaseStudyListData{
		Studies: a.Store.CaseStudies.Filter(clientType, ""),
		Types:   a.Store.CaseStudies.Categories(),
		Type:    clientType,
	}
	return Render(c, a.Views.CaseStudies(a.page(c, a.Composer.Page(route.CaseStudies)), data))
}

// handleBlogPost resolves the slug before anything is rendered. A miss
// redirects to the list and never reaches the detail view.
func (a *App) handleBlogPost(r route.Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		nav := route.Navigate[content.BlogPost](c.Request().URL.Path, c.Param("slug"), a.Store.Blog, r.Fallback)
		a.Metrics.Resolved(a.Store.Blog.Name(), nav.Found())
		if !nav.Found() {
			return c.Redirect(http.StatusFound, nav.Redirect)
		}
		post := nav.Entity
		related := a.Store.Blog.RecentExcluding(3, post.Slug)
		return Render(c, a.Views.BlogPost(a.page(c, a.Composer.BlogPost(post)), post, related))
	}
}

func (a *App) handleCaseStudy(r route.Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		nav := route.Navigate[content.CaseStudy](c.Request().URL.Path, c.Param("slug"), a.Store.CaseStudies, r.Fallback)
		a.Metrics.Resolved(a.Store.CaseStudies.Name(), nav.Found())
		if !nav.Found() {
			return c.Redirect(http.StatusFound, nav.Redirect)
		}
		cs := nav.Entity
		related := a.Store.CaseStudies.RecentExcluding(2, cs.Slug)
		return Render(c, a.Views.CaseStudy(a.page(c, a.Composer.CaseStudy(cs)), cs, related))
	}
}

func (a *App) handleLegal(r route.Route) echo.HandlerFunc {
	resolver := route.ResolverFunc[content.LegalDocument](a.Store.LegalDocument)
	return func(c echo.Context) error {
		nav := route.Navigate[content.LegalDocument](c.Request().URL.Path, r.Document, resolver, r.Fallback)
		a.Metrics.Resolved("legal", nav.Found())
		if !nav.Found() {
			return c.Redirect(http.StatusFound, nav.Redirect)
		}
		doc := nav.Entity
		return Render(c, a.Views.Legal(a.page(c, a.Composer.Legal(doc, r.Page)), doc))
	}
}

func (a *App) handleWaitlist(c echo.Context) error {
	back := backTo(c)
	if !a.limiter.Allow(c.RealIP()) {
		a.Metrics.Submitted("waitlist", "rate_limited")
		return a.flashRedirect(c, back, FlashError, msgTooManyAttempt)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.NotifyTimeout)
	defer cancel()
	res, err := a.dispatcher.Signup(ctx, c.FormValue("email"))
	switch {
	case errors.Is(err, notify.ErrInvalidEmail):
		a.Metrics.Submitted("waitlist", "invalid")
		return a.flashRedirect(c, back, FlashError, msgInvalidEmail)
	case err != nil:
		a.Metrics.Submitted("waitlist", "failed")
		a.Logger.Error("waitlist signup failed", zap.String("signup_id", res.ID), zap.Error(err))
		return a.flashRedirect(c, back, FlashError, msgSignupFailed)
	}
	outcome := "sent"
	if !res.NotificationSent || !res.AcknowledgmentSent {
		outcome = "partial"
	}
	a.Metrics.Submitted("waitlist", outcome)
	return a.flashRedirect(c, back, FlashSuccess, msgSignupOK)
}

func (a *App) handleContact(c echo.Context) error {
	back := backTo(c)
	if !a.limiter.Allow(c.RealIP()) {
		a.Metrics.Submitted("contact", "rate_limited")
		return a.flashRedirect(c, back, FlashError, msgTooManyAttempt)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.NotifyTimeout)
	defer cancel()
	id, err := a.dispatcher.Contact(ctx, notify.ContactMessage{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	})
	switch {
	case errors.Is(err, notify.ErrInvalidEmail):
		a.Metrics.Submitted("contact", "invalid")
		return a.flashRedirect(c, back, FlashError, msgInvalidEmail)
	case errors.Is(err, notify.ErrEmptyMessage):
		a.Metrics.Submitted("contact", "invalid")
		return a.flashRedirect(c, back, FlashError, msgEmptyMessage)
	case err != nil:
		a.Metrics.Submitted("contact", "failed")
		a.Logger.Error("contact message failed", zap.String("message_id", id), zap.Error(err))
		return a.flashRedirect(c, back, FlashError, msgContactFailed)
	}
	a.Metrics.Submitted("contact", "sent")
	return a.flashRedirect(c, back, FlashSuccess, msgContactOK)
}

func (a *App) flashRedirect(c echo.Context, to, kind, message string) error {
	if err := SetFlash(c, kind, message); err != nil {
		a.Logger.Warn("flash not saved", zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, to)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt(a.Composer.Site.Abs("/sitemap.xml")))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		path := c.Request().URL.Path
		if err := RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.page(c, a.Composer.NotFound(path)))); err != nil {
			a.Logger.Error("render 404 page", zap.Error(err))
			_ = c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
		meta := a.Composer.NotFound(c.Request().URL.Path)
		meta.Title = "Something went wrong | " + a.Composer.Site.Name
		if err := RenderStatus(c, code, a.Views.ServerError(a.page(c, meta))); err != nil {
			a.Logger.Error("render error page", zap.Error(err))
			_ = c.String(code, http.StatusText(code))
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
