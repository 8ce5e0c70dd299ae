// Package document defines the in-memory document model shared by the
// tokenizer and the renderers.
//
// The model is two closed families of nodes: Block (paragraph granularity)
// and Span (inline granularity), joined by ListItem. Each family is a sealed
// interface; only the types in this package implement it. Trees are built
// once by a tokenizer and are never mutated afterwards.
package document

// Block is a document element at paragraph granularity.
type Block interface {
	block()
}

// ListItem is an entry of an OrderedList or UnorderedList.
type ListItem interface {
	listItem()
}

// Span is inline content inside a block.
type Span interface {
	span()
}

// --- Blocks ---

// Header is a heading at the given level. The level is not validated.
type Header struct {
	Spans []Span
	Level int
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Spans []Span
}

// Blockquote holds nested quoted content.
type Blockquote struct {
	Blocks []Block
}

// CodeBlock is fenced or indented code. Language may be empty.
type CodeBlock struct {
	Language string
	Text     string
}

// OrderedList is a numbered list.
type OrderedList struct {
	Items []ListItem
}

// UnorderedList is a bulleted list.
type UnorderedList struct {
	Items []ListItem
}

// Raw is passthrough content, emitted verbatim.
type Raw struct {
	Text string
}

// Hr is a horizontal rule.
type Hr struct{}

func (Header) block()        {}
func (Paragraph) block()     {}
func (Blockquote) block()    {}
func (CodeBlock) block()     {}
func (OrderedList) block()   {}
func (UnorderedList) block() {}
func (Raw) block()           {}
func (Hr) block()            {}

// --- List items ---

// SimpleItem is a one-line list item.
type SimpleItem struct {
	Spans []Span
}

// ParagraphItem is a list item containing nested block content.
type ParagraphItem struct {
	Blocks []Block
}

func (SimpleItem) listItem()    {}
func (ParagraphItem) listItem() {}

// --- Spans ---

// Break is a forced line break.
type Break struct{}

// Text is plain text.
type Text struct {
	Text string
}

// Code is an inline literal.
type Code struct {
	Text string
}

// Link is a hyperlink. An empty Tooltip means the link has none.
type Link struct {
	Text    string
	URL     string
	Tooltip string
}

// Image is an inline image. An empty Title means the image has none.
type Image struct {
	Alt   string
	URL   string
	Title string
}

// Emphasis is single emphasis around child spans.
type Emphasis struct {
	Spans []Span
}

// Strong is strong emphasis around child spans.
type Strong struct {
	Spans []Span
}

// Strikethrough is deleted text around child spans.
type Strikethrough struct {
	Spans []Span
}

func (Break) span()         {}
func (Text) span()          {}
func (Code) span()          {}
func (Link) span()          {}
func (Image) span()         {}
func (Emphasis) span()      {}
func (Strong) span()        {}
func (Strikethrough) span() {}
