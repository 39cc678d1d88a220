package views

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// out accumulates the first write error so component bodies read as a
// straight sequence of writes.
type out struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (o *out) raw(parts ...string) {
	for _, p := range parts {
		if o.err != nil {
			return
		}
		_, o.err = io.WriteString(o.w, p)
	}
}

func (o *out) text(s string) { o.raw(templ.EscapeString(s)) }

func (o *out) textf(format string, args ...interface{}) { o.text(fmt.Sprintf(format, args...)) }

// attr writes ` name="value"` with value escaped.
func (o *out) attr(name, value string) {
	o.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a URL attribute through templ.URL, so a javascript: or data:
// value becomes templ's sanitization placeholder.
func (o *out) url(name, value string) {
	o.attr(name, string(templ.URL(value)))
}

func (o *out) render(c templ.Component) {
	if o.err != nil || c == nil {
		return
	}
	o.err = c.Render(o.ctx, o.w)
}

func component(body func(o *out)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := &out{ctx: ctx, w: w}
		body(o)
		return o.err
	})
}

// FormatDate renders t the way dates appear on the site, e.g. "1 December 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

// FormatRupees formats an amount with Indian digit grouping, e.g. "₹1,599".
func FormatRupees(n int) string {
	s := fmt.Sprint(n)
	if len(s) <= 3 {
		return "₹" + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return "₹" + strings.Join(groups, ",") + "," + tail
}
