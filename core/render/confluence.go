// Package render provides output renderers for the document model.
// This file implements the Confluence wiki markup renderer.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/mdconfluence/core"
	"github.com/gaurav-prasanna/mdconfluence/core/document"
)

// ConfluenceRenderer renders the document model as Confluence wiki markup.
// It holds only configuration and is safe for concurrent use.
type ConfluenceRenderer struct {
	anchors    bool
	codeMacros bool
}

// Option configures a ConfluenceRenderer.
type Option func(*ConfluenceRenderer)

// WithHeaderAnchors prefixes every header with an {anchor} macro named by
// the header's slug.
func WithHeaderAnchors() Option {
	return func(r *ConfluenceRenderer) { r.anchors = true }
}

// WithCodeMacros wraps code blocks in {code} macros carrying their language,
// instead of emitting the literal text alone.
func WithCodeMacros() Option {
	return func(r *ConfluenceRenderer) { r.codeMacros = true }
}

// NewConfluenceRenderer creates a ConfluenceRenderer.
func NewConfluenceRenderer(opts ...Option) *ConfluenceRenderer {
	r := &ConfluenceRenderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var plain = NewConfluenceRenderer()

// Confluence renders blocks with the default options.
func Confluence(blocks []document.Block) string {
	return plain.Blocks(blocks)
}

// Render implements core.Renderer.
func (r *ConfluenceRenderer) Render(blocks []document.Block, meta core.Metadata) ([]byte, error) {
	return []byte(r.Blocks(blocks)), nil
}

// Extension returns the file extension for Confluence output.
func (r *ConfluenceRenderer) Extension() string {
	return ".confluence"
}

// Blocks renders a block sequence. The result is trimmed and ends in
// exactly one newline.
func (r *ConfluenceRenderer) Blocks(blocks []document.Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		r.writeBlock(&b, blk)
	}
	return strings.TrimSpace(b.String()) + "\n"
}

func (r *ConfluenceRenderer) writeBlock(b *strings.Builder, blk document.Block) {
	switch blk := blk.(type) {
	case document.Header:
		b.WriteString("h" + strconv.Itoa(blk.Level) + ". ")
		if r.anchors {
			if slug := Slugify(blk.Spans); slug != "" {
				b.WriteString("{anchor:" + Escape(slug) + "}")
			}
		}
		writeSpans(b, blk.Spans)
		b.WriteByte('\n')
	case document.Paragraph:
		writeSpans(b, blk.Spans)
		b.WriteByte('\n')
	case document.Blockquote:
		b.WriteString("{noformat}\n")
		b.WriteString(r.Blocks(blk.Blocks))
		b.WriteString("\n{noformat}\n")
	case document.CodeBlock:
		r.writeCode(b, blk)
	case document.UnorderedList:
		for _, item := range blk.Items {
			b.WriteString("- ")
			r.writeItem(b, item)
			b.WriteByte('\n')
		}
	case document.OrderedList:
		for i, item := range blk.Items {
			b.WriteString(strconv.Itoa(i+1) + ". ")
			r.writeItem(b, item)
			b.WriteByte('\n')
		}
	case document.Raw:
		b.WriteString(blk.Text)
	case document.Hr:
		b.WriteString("----")
	default:
		panic(fmt.Sprintf("render: unhandled block type %T", blk))
	}
}

func (r *ConfluenceRenderer) writeCode(b *strings.Builder, blk document.CodeBlock) {
	if !r.codeMacros {
		b.WriteString(blk.Text)
		b.WriteByte('\n')
		return
	}
	if blk.Language == "" {
		b.WriteString("{code}\n")
	} else {
		b.WriteString("{code:language=" + blk.Language + "}\n")
	}
	b.WriteString(blk.Text)
	b.WriteString("\n{code}\n")
}

func (r *ConfluenceRenderer) writeItem(b *strings.Builder, item document.ListItem) {
	switch item := item.(type) {
	case document.SimpleItem:
		writeSpans(b, item.Spans)
	case document.ParagraphItem:
		b.WriteString(r.Blocks(item.Blocks))
	default:
		panic(fmt.Sprintf("render: unhandled list item type %T", item))
	}
}

func writeSpans(b *strings.Builder, spans []document.Span) {
	for _, s := range spans {
		switch s := s.(type) {
		case document.Break:
			b.WriteByte('\n')
		case document.Text:
			b.WriteString(Escape(s.Text))
		case document.Code:
			b.WriteString("{code}" + s.Text + "{code}")
		case document.Link:
			b.WriteString("[" + s.Text + "|" + s.URL)
			if s.Tooltip != "" {
				b.WriteString("|" + s.Tooltip)
			}
			b.WriteByte(']')
		case document.Image:
			b.WriteString("!" + s.URL + "|")
			if s.Title != "" {
				b.WriteString("title=" + s.Title + ",")
			}
			b.WriteString("alt=" + s.Alt + "!")
		case document.Emphasis:
			b.WriteByte('_')
			writeSpans(b, s.Spans)
			b.WriteByte('_')
		case document.Strong:
			b.WriteByte('*')
			writeSpans(b, s.Spans)
			b.WriteByte('*')
		case document.Strikethrough:
			b.WriteByte('-')
			writeSpans(b, s.Spans)
			b.WriteByte('-')
		default:
			panic(fmt.Sprintf("render: unhandled span type %T", s))
		}
	}
}
