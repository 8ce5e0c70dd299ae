package render

import (
	"testing"

	"github.com/gaurav-prasanna/mdconfluence/core/document"
	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;a &amp; &quot;b&quot;&gt;", Escape(`<a & "b">`))
	assert.Equal(t, "it&#8217;s", Escape("it's"))
	assert.Equal(t, "&amp;lt;", Escape("&lt;"))
	assert.Equal(t, "plain text", Escape("plain text"))
	assert.Equal(t, "", Escape(""))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		spans []document.Span
		want  string
	}{
		{"text", []document.Span{text("Hello World")}, "hello_world"},
		{"strong", []document.Span{document.Strong{Spans: []document.Span{text("A B")}}}, "a_b"},
		{"emphasis", []document.Span{document.Emphasis{Spans: []document.Span{text("Deep"), text("Down")}}}, "deep_down"},
		{"strikethrough", []document.Span{document.Strikethrough{Spans: []document.Span{text("Old")}}}, "old"},
		{"trimmed", []document.Span{text("  Padded Title  ")}, "padded_title"},
		{"segments joined", []document.Span{text("Intro "), document.Code{Text: "Main"}}, "intro_main"},
		{"link text", []document.Span{document.Link{Text: "Read Me", URL: "https://example.com"}}, "read_me"},
		{"image alt", []document.Span{document.Image{Alt: "Site Logo", URL: "logo.png"}}, "site_logo"},
		{"leading break adds no separator", []document.Span{document.Break{}, text("A")}, "a"},
		{"trailing break", []document.Span{text("A"), document.Break{}}, "a_"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.spans))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	spans := []document.Span{text("Same"), document.Strong{Spans: []document.Span{text("Input Here")}}}
	assert.Equal(t, Slugify(spans), Slugify(spans))
	assert.Equal(t, "same_input_here", Slugify(spans))
}
