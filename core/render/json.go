// Package render — JSON renderer.
// Encodes the document model as a tagged JSON tree, together with a
// structural summary (heading outline, links, code block and list counts).
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/mdconfluence/core"
	"github.com/gaurav-prasanna/mdconfluence/core/document"
)

// JSONRenderer produces structured JSON output from the document model.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// node is one document-model node. Type tells which fields are used.
type node struct {
	Type     string `json:"type"`
	Level    *int   `json:"level,omitempty"`
	Text     string `json:"text,omitempty"`
	Language string `json:"language,omitempty"`
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
	Spans    []node `json:"spans,omitempty"`
	Blocks   []node `json:"blocks,omitempty"`
	Items    []node `json:"items,omitempty"`
}

// heading is an entry of the document outline.
type heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// link is a hyperlink found anywhere in the document.
type link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type structure struct {
	Headings   []heading `json:"headings"`
	Links      []link    `json:"links"`
	CodeBlocks int       `json:"code_blocks"`
	Lists      int       `json:"lists"`
}

type jsonDocument struct {
	Metadata  core.Metadata `json:"metadata"`
	Structure structure     `json:"structure"`
	Blocks    []node        `json:"blocks"`
}

// Render converts the document model and metadata into indented JSON.
func (r *JSONRenderer) Render(blocks []document.Block, meta core.Metadata) ([]byte, error) {
	s := structure{Headings: []heading{}, Links: []link{}}
	page := jsonDocument{
		Metadata: meta,
		Blocks:   encodeBlocks(blocks, &s),
	}
	page.Structure = s

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func encodeBlocks(blocks []document.Block, s *structure) []node {
	nodes := make([]node, 0, len(blocks))
	for _, b := range blocks {
		nodes = append(nodes, encodeBlock(b, s))
	}
	return nodes
}

func encodeBlock(b document.Block, s *structure) node {
	switch b := b.(type) {
	case document.Header:
		level := b.Level
		s.Headings = append(s.Headings, heading{
			Level:  b.Level,
			Text:   document.PlainText(b.Spans),
			Anchor: Slugify(b.Spans),
		})
		return node{Type: "header", Level: &level, Spans: encodeSpans(b.Spans, s)}
	case document.Paragraph:
		return node{Type: "paragraph", Spans: encodeSpans(b.Spans, s)}
	case document.Blockquote:
		return node{Type: "blockquote", Blocks: encodeBlocks(b.Blocks, s)}
	case document.CodeBlock:
		s.CodeBlocks++
		return node{Type: "code_block", Language: b.Language, Text: b.Text}
	case document.OrderedList:
		s.Lists++
		return node{Type: "ordered_list", Items: encodeItems(b.Items, s)}
	case document.UnorderedList:
		s.Lists++
		return node{Type: "unordered_list", Items: encodeItems(b.Items, s)}
	case document.Raw:
		return node{Type: "raw", Text: b.Text}
	case document.Hr:
		return node{Type: "hr"}
	default:
		panic(fmt.Sprintf("render: unhandled block type %T", b))
	}
}

func encodeItems(items []document.ListItem, s *structure) []node {
	nodes := make([]node, 0, len(items))
	for _, item := range items {
		switch item := item.(type) {
		case document.SimpleItem:
			nodes = append(nodes, node{Type: "simple_item", Spans: encodeSpans(item.Spans, s)})
		case document.ParagraphItem:
			nodes = append(nodes, node{Type: "paragraph_item", Blocks: encodeBlocks(item.Blocks, s)})
		default:
			panic(fmt.Sprintf("render: unhandled list item type %T", item))
		}
	}
	return nodes
}

func encodeSpans(spans []document.Span, s *structure) []node {
	nodes := make([]node, 0, len(spans))
	for _, sp := range spans {
		switch sp := sp.(type) {
		case document.Break:
			nodes = append(nodes, node{Type: "break"})
		case document.Text:
			nodes = append(nodes, node{Type: "text", Text: sp.Text})
		case document.Code:
			nodes = append(nodes, node{Type: "code", Text: sp.Text})
		case document.Link:
			s.Links = append(s.Links, link{Text: sp.Text, Href: sp.URL})
			nodes = append(nodes, node{Type: "link", Text: sp.Text, URL: sp.URL, Title: sp.Tooltip})
		case document.Image:
			nodes = append(nodes, node{Type: "image", Text: sp.Alt, URL: sp.URL, Title: sp.Title})
		case document.Emphasis:
			nodes = append(nodes, node{Type: "emphasis", Spans: encodeSpans(sp.Spans, s)})
		case document.Strong:
			nodes = append(nodes, node{Type: "strong", Spans: encodeSpans(sp.Spans, s)})
		case document.Strikethrough:
			nodes = append(nodes, node{Type: "strikethrough", Spans: encodeSpans(sp.Spans, s)})
		default:
			panic(fmt.Sprintf("render: unhandled span type %T", sp))
		}
	}
	return nodes
}
