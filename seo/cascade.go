// Package seo composes the metadata bundle attached to every rendered page.
//
// Values are layered: an entity's own overrides, then values computed from the
// entity, then the page default, then the site default. Cascade merges the
// layers field by field; nothing else in the module decides fallbacks.
package seo

import "strings"

// Fields is one layer of the cascade. Empty values defer to the next layer.
type Fields struct {
	Title       string
	Description string
	Keywords    []string
	Image       string
}

// Cascade merges layers in priority order: for each field the first
// non-blank value wins.
func Cascade(layers ...Fields) Fields {
	var out Fields
	for _, l := range layers {
		if out.Title == "" {
			out.Title = strings.TrimSpace(l.Title)
		}
		if out.Description == "" {
			out.Description = strings.TrimSpace(l.Description)
		}
		if len(out.Keywords) == 0 {
			out.Keywords = nonBlank(l.Keywords)
		}
		if out.Image == "" {
			out.Image = strings.TrimSpace(l.Image)
		}
	}
	return out
}

func nonBlank(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Truncate shortens s to at most n runes on a word boundary, appending an
// ellipsis when it cut anything.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n-1])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
