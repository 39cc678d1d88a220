package fintrex

import (
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

// backTo returns the same-site path of the Referer, or "/" when the referer
// is missing or points elsewhere.
func backTo(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request().Host) {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

func robotsTxt(sitemap string) string {
	return "User-agent: *\nAllow: /\nDisallow: /metrics\n\nSitemap: " + sitemap + "\n"
}

// exportFile maps a site path to the file the static export writes it to.
// Pages become directory indexes so clean URLs keep working on static hosts.
func exportFile(p string) string {
	p = path.Clean("/" + p)
	if path.Ext(p) != "" {
		return strings.TrimPrefix(p, "/")
	}
	if p == "/" {
		return "index.html"
	}
	return strings.TrimPrefix(p, "/") + "/index.html"
}
