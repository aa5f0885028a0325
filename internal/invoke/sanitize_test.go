// Copyright Hadayhoc Technology, 2026. All rights reserved.

package invoke

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "html fence stripped",
			raw:  "```html\n<p>A</p>\n```",
			want: "<p>A</p>",
		},
		{
			name: "bare fence stripped",
			raw:  "```\n<p>A</p>\n```",
			want: "<p>A</p>",
		},
		{
			name: "no fence trims only",
			raw:  "  <p>A</p>\n",
			want: "<p>A</p>",
		},
		{
			name: "unmatched opening fence left alone",
			raw:  "```html\n<p>A</p>",
			want: "```html\n<p>A</p>",
		},
		{
			name: "fence marker inside the body is preserved",
			raw:  "<p>use ``` for code</p>",
			want: "<p>use ``` for code</p>",
		},
		{
			name: "bare fence wrapping an html fence strips fully",
			raw:  "```\n```html\n<p>A</p>\n```\n```",
			want: "<p>A</p>",
		},
		{
			name: "html fence wrapping a bare fence strips fully",
			raw:  "```html\n```\n<p>A</p>\n```\n```",
			want: "<p>A</p>",
		},
		{
			name: "empty string",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only",
			raw:  "  \n\t ",
			want: "",
		},
		{
			name: "lone fence marker",
			raw:  "```",
			want: "```",
		},
		{
			name: "fenced merge response",
			raw:  "```html\n<p>I. MUC TIEU</p><span style=\"color:blue\">...</span>\n```",
			want: `<p>I. MUC TIEU</p><span style="color:blue">...</span>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.raw)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"```html\n<p>A</p>\n```",
		"```\n<p>A</p>\n```",
		"```\n```html\n<p>A</p>\n```\n```",
		"```html\n```\n```html\n<p>A</p>\n```\n```\n```",
		"<p>A</p>",
		"```html\nunclosed",
		"```",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeLeavesNoEdgeFences(t *testing.T) {
	got := Sanitize("```html\n<table><tr><td>B</td></tr></table>\n```")
	if strings.HasPrefix(got, "```") || strings.HasSuffix(got, "```") {
		t.Errorf("sanitized output still carries a fence: %q", got)
	}
}
