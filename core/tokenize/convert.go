// Package tokenize — goldmark AST to document model mapping.
package tokenize

import (
	"bytes"
	"strings"

	"github.com/gaurav-prasanna/mdconfluence/core/document"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"
)

// Confluence status emoticons used for GFM task list checkboxes.
const (
	checkedBox   = "(/)"
	uncheckedBox = "(x)"
)

type converter struct {
	src []byte
}

func (c *converter) blocks(parent ast.Node) []document.Block {
	var out []document.Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if b, ok := c.block(n); ok {
			out = append(out, b)
		}
	}
	return out
}

func (c *converter) block(n ast.Node) (document.Block, bool) {
	switch n := n.(type) {
	case *ast.Heading:
		return document.Header{Spans: c.spans(n), Level: n.Level}, true
	case *ast.Paragraph, *ast.TextBlock:
		return document.Paragraph{Spans: c.spans(n)}, true
	case *ast.Blockquote:
		return document.Blockquote{Blocks: c.blocks(n)}, true
	case *ast.FencedCodeBlock:
		return document.CodeBlock{
			Language: string(n.Language(c.src)),
			Text:     strings.TrimSuffix(c.lines(n), "\n"),
		}, true
	case *ast.CodeBlock:
		return document.CodeBlock{Text: strings.TrimSuffix(c.lines(n), "\n")}, true
	case *ast.List:
		items := c.items(n)
		if n.IsOrdered() {
			return document.OrderedList{Items: items}, true
		}
		return document.UnorderedList{Items: items}, true
	case *ast.ThematicBreak:
		return document.Hr{}, true
	case *ast.HTMLBlock:
		raw := c.lines(n)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(c.src))
		}
		return document.Raw{Text: raw}, true
	case *east.Table:
		return document.Raw{Text: c.table(n)}, true
	}
	raw := c.lines(n)
	if raw == "" {
		tracer().Debugf("dropping %s block without content", n.Kind())
		return nil, false
	}
	tracer().Debugf("passing %s block through as raw text", n.Kind())
	return document.Raw{Text: raw}, true
}

// items maps list items. An item holding a single paragraph becomes a
// SimpleItem, anything richer a ParagraphItem.
func (c *converter) items(list *ast.List) []document.ListItem {
	var items []document.ListItem
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		children := c.blocks(li)
		switch {
		case len(children) == 0:
			items = append(items, document.SimpleItem{})
		case len(children) == 1:
			if p, ok := children[0].(document.Paragraph); ok {
				items = append(items, document.SimpleItem{Spans: p.Spans})
				continue
			}
			fallthrough
		default:
			items = append(items, document.ParagraphItem{Blocks: children})
		}
	}
	return items
}

func (c *converter) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(c.src))
	}
	return buf.String()
}

// table renders a GFM table as Confluence table markup.
func (c *converter) table(t *east.Table) string {
	var b strings.Builder
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		sep := "|"
		if _, ok := row.(*east.TableHeader); ok {
			sep = "||"
		}
		b.WriteString(sep)
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			b.WriteString(strings.TrimSpace(document.PlainText(c.spans(cell))))
			b.WriteString(sep)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *converter) spans(parent ast.Node) []document.Span {
	var out []document.Span
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = c.span(out, n)
	}
	return out
}

func (c *converter) span(out []document.Span, n ast.Node) []document.Span {
	switch n := n.(type) {
	case *ast.Text:
		value := n.Segment.Value(c.src)
		if !n.IsRaw() {
			value = util.UnescapePunctuations(value)
			value = util.ResolveNumericReferences(value)
			value = util.ResolveEntityNames(value)
		}
		s := string(value)
		switch {
		case n.HardLineBreak():
			s = strings.TrimRight(s, " ")
			out = appendText(out, s)
			out = append(out, document.Break{})
		case n.SoftLineBreak():
			out = appendText(out, s+" ")
		default:
			out = appendText(out, s)
		}
	case *ast.String:
		out = appendText(out, string(n.Value))
	case *ast.CodeSpan:
		out = append(out, document.Code{Text: c.plain(n)})
	case *ast.Emphasis:
		if n.Level >= 2 {
			out = append(out, document.Strong{Spans: c.spans(n)})
		} else {
			out = append(out, document.Emphasis{Spans: c.spans(n)})
		}
	case *east.Strikethrough:
		out = append(out, document.Strikethrough{Spans: c.spans(n)})
	case *ast.Link:
		out = append(out, document.Link{
			Text:    c.plain(n),
			URL:     string(n.Destination),
			Tooltip: string(n.Title),
		})
	case *ast.AutoLink:
		out = append(out, document.Link{
			Text: string(n.Label(c.src)),
			URL:  string(n.URL(c.src)),
		})
	case *ast.Image:
		out = append(out, document.Image{
			Alt:   c.plain(n),
			URL:   string(n.Destination),
			Title: string(n.Title),
		})
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			out = appendText(out, string(seg.Value(c.src)))
		}
	case *east.TaskCheckBox:
		if n.IsChecked {
			out = appendText(out, checkedBox)
		} else {
			out = appendText(out, uncheckedBox)
		}
	default:
		tracer().Debugf("flattening inline %s", n.Kind())
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			out = c.span(out, child)
		}
	}
	return out
}

// plain returns the text content of an inline container.
func (c *converter) plain(n ast.Node) string {
	return document.PlainText(c.spans(n))
}

// appendText appends s, merging it into a preceding Text span.
func appendText(out []document.Span, s string) []document.Span {
	if s == "" {
		return out
	}
	if last := len(out) - 1; last >= 0 {
		if t, ok := out[last].(document.Text); ok {
			out[last] = document.Text{Text: t.Text + s}
			return out
		}
	}
	return append(out, document.Text{Text: s})
}
