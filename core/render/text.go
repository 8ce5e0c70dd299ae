// Package render — text helpers: escaping and header slugs.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/mdconfluence/core/document"
)

// escaper substitutes in a single pass, so the ampersands it introduces are
// never escaped again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	`"`, "&quot;",
	"'", "&#8217;",
	">", "&gt;",
)

// Escape replaces the characters &, <, ", ' and > with entities.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Slugify returns a lowercase, underscore-joined anchor name for a span
// sequence, e.g. "Hello World" → "hello_world".
func Slugify(spans []document.Span) string {
	var b strings.Builder
	for _, s := range spans {
		next := slugSegment(s)
		if b.Len() > 0 {
			b.WriteByte('_')
		}
		b.WriteString(next)
	}
	return b.String()
}

func slugSegment(s document.Span) string {
	switch s := s.(type) {
	case document.Break:
		return ""
	case document.Text:
		return slugWord(s.Text)
	case document.Link:
		return slugWord(s.Text)
	case document.Image:
		return slugWord(s.Alt)
	case document.Code:
		return slugWord(s.Text)
	case document.Strong:
		return Slugify(s.Spans)
	case document.Emphasis:
		return Slugify(s.Spans)
	case document.Strikethrough:
		return Slugify(s.Spans)
	default:
		panic(fmt.Sprintf("render: unhandled span type %T", s))
	}
}

func slugWord(text string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), " ", "_"))
}
