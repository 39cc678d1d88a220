package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func render(t *testing.T, input string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, input); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	return buf.String()
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
		{"~~gone~~", "<del>gone</del>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderHeadingIDs(t *testing.T) {
	got := render(t, "## The Problem with Manual Data Entry")
	want := `<h2 id="the-problem-with-manual-data-entry">`
	if !strings.Contains(got, want) {
		t.Errorf("heading = %q, want it to contain %q", got, want)
	}
}

func TestRenderTable(t *testing.T) {
	input := "| Metric | Before | After |\n|---|---|---|\n| Hours | 60 | 45 |"
	got := render(t, input)
	for _, want := range []string{"<table>", "<th>Metric</th>", "<td>45</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output %q missing %q", got, want)
		}
	}
}

func TestRenderDropsRawHTML(t *testing.T) {
	got := render(t, "hello <script>alert(1)</script>")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %q", got)
	}
}

func TestExternalLinksOpenInNewTab(t *testing.T) {
	got := render(t, "[site](https://fintrex.ai) and [blog](/blog)")
	if !strings.Contains(got, `<a href="https://fintrex.ai" target="_blank" rel="noopener noreferrer">`) {
		t.Errorf("external link missing target: %q", got)
	}
	if !strings.Contains(got, `<a href="/blog">`) {
		t.Errorf("internal link should be left alone: %q", got)
	}
}

func TestHeadings(t *testing.T) {
	input := "# Title\n\n## Introduction\n\ntext\n\n### Time **Consumption**\n\n#### Deep\n\n## Conclusion"
	want := []Heading{
		{Level: 2, ID: "introduction", Text: "Introduction"},
		{Level: 3, ID: "time-consumption", Text: "Time Consumption"},
		{Level: 2, ID: "conclusion", Text: "Conclusion"},
	}
	if diff := cmp.Diff(want, Headings(input)); diff != "" {
		t.Errorf("Headings mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("\n## Hi\n").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<h2") {
		t.Errorf("component output = %q", buf.String())
	}
}
