package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/gaurav-prasanna/mdconfluence/core"
	"github.com/gaurav-prasanna/mdconfluence/core/document"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) document.Text { return document.Text{Text: s} }

func para(spans ...document.Span) document.Paragraph {
	return document.Paragraph{Spans: spans}
}

func simple(spans ...document.Span) document.SimpleItem {
	return document.SimpleItem{Spans: spans}
}

func TestConfluenceBlocks(t *testing.T) {
	tests := []struct {
		name   string
		blocks []document.Block
		want   string
	}{
		{"empty", nil, "\n"},
		{"paragraph", []document.Block{para(text("hello"))}, "hello\n"},
		{"header", []document.Block{document.Header{Spans: []document.Span{text("Title")}, Level: 2}}, "h2. Title\n"},
		{"header level zero", []document.Block{document.Header{Spans: []document.Span{text("T")}, Level: 0}}, "h0. T\n"},
		{"header negative level", []document.Block{document.Header{Spans: []document.Span{text("T")}, Level: -1}}, "h-1. T\n"},
		{"blockquote", []document.Block{document.Blockquote{Blocks: []document.Block{para(text("q"))}}},
			"{noformat}\nq\n\n{noformat}\n"},
		{"unordered list", []document.Block{document.UnorderedList{Items: []document.ListItem{simple(text("a")), simple(text("b"))}}},
			"- a\n- b\n"},
		{"ordered list", []document.Block{document.OrderedList{Items: []document.ListItem{simple(text("a")), simple(text("b")), simple(text("c"))}}},
			"1. a\n2. b\n3. c\n"},
		{"paragraph item", []document.Block{document.UnorderedList{Items: []document.ListItem{
			document.ParagraphItem{Blocks: []document.Block{para(text("x")), para(text("y"))}},
			simple(text("z")),
		}}}, "- x\ny\n\n- z\n"},
		{"code block drops language", []document.Block{document.CodeBlock{Language: "go", Text: "if a < b {\n}"}},
			"if a < b {\n}\n"},
		{"raw", []document.Block{document.Raw{Text: "<b>raw</b>\n"}}, "<b>raw</b>\n"},
		{"hr", []document.Block{document.Hr{}}, "----\n"},
		{"hr has no trailing newline", []document.Block{document.Hr{}, para(text("x"))}, "----x\n"},
		{"surrounding whitespace trimmed", []document.Block{para(text("  hi  ")), document.Raw{Text: "\n\n"}}, "hi\n"},
		{"blocks concatenate", []document.Block{
			document.Header{Spans: []document.Span{text("A")}, Level: 1},
			para(text("b")),
		}, "h1. A\nb\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Confluence(tt.blocks))
		})
	}
}

func TestConfluenceSpans(t *testing.T) {
	tests := []struct {
		name  string
		spans []document.Span
		want  string
	}{
		{"break", []document.Span{text("a"), document.Break{}, text("b")}, "a\nb\n"},
		{"text escaped", []document.Span{text(`a<b & "c" 'd'>`)}, "a&lt;b &amp; &quot;c&quot; &#8217;d&#8217;&gt;\n"},
		{"code not escaped", []document.Span{document.Code{Text: "a<b"}}, "{code}a<b{code}\n"},
		{"link", []document.Span{document.Link{Text: "home", URL: "https://example.com"}}, "[home|https://example.com]\n"},
		{"link with tooltip", []document.Span{document.Link{Text: "home", URL: "https://example.com", Tooltip: "go home"}},
			"[home|https://example.com|go home]\n"},
		{"image", []document.Span{document.Image{Alt: "logo", URL: "logo.png"}}, "!logo.png|alt=logo!\n"},
		{"image with title", []document.Span{document.Image{Alt: "logo", URL: "logo.png", Title: "Our logo"}},
			"!logo.png|title=Our logo,alt=logo!\n"},
		{"emphasis", []document.Span{document.Emphasis{Spans: []document.Span{text("e")}}}, "_e_\n"},
		{"strong", []document.Span{document.Strong{Spans: []document.Span{text("s")}}}, "*s*\n"},
		{"strikethrough", []document.Span{document.Strikethrough{Spans: []document.Span{text("gone")}}}, "-gone-\n"},
		{"nested", []document.Span{
			text("a "),
			document.Strong{Spans: []document.Span{text("b "), document.Emphasis{Spans: []document.Span{text("c")}}}},
			text(" d"),
		}, "a *b _c_* d\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Confluence([]document.Block{para(tt.spans...)}))
		})
	}
}

func TestConfluenceOptions(t *testing.T) {
	r := NewConfluenceRenderer(WithHeaderAnchors(), WithCodeMacros())
	blocks := []document.Block{
		document.Header{Spans: []document.Span{text("Hello World")}, Level: 1},
		document.Header{Spans: []document.Span{text("It's")}, Level: 2},
		document.Header{Spans: nil, Level: 3},
		document.CodeBlock{Language: "go", Text: "x := 1"},
		document.CodeBlock{Text: "plain"},
	}
	want := "h1. {anchor:hello_world}Hello World\n" +
		"h2. {anchor:it&#8217;s}It&#8217;s\n" +
		"h3. \n" +
		"{code:language=go}\nx := 1\n{code}\n" +
		"{code}\nplain\n{code}\n"
	assert.Equal(t, want, r.Blocks(blocks))
}

func TestConfluenceRenderInterface(t *testing.T) {
	var r core.Renderer = NewConfluenceRenderer()
	data, err := r.Render([]document.Block{para(text("hi"))}, core.Metadata{Origin: "x.md"})
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))
	assert.Equal(t, ".confluence", r.Extension())
}

// allVariants uses every block, list item and span type of the model.
func allVariants() []document.Block {
	spans := []document.Span{
		document.Break{},
		text("t"),
		document.Code{Text: "c"},
		document.Link{Text: "l", URL: "u", Tooltip: "tip"},
		document.Image{Alt: "a", URL: "u", Title: "ti"},
		document.Emphasis{Spans: []document.Span{text("e")}},
		document.Strong{Spans: []document.Span{text("s")}},
		document.Strikethrough{Spans: []document.Span{text("x")}},
	}
	items := []document.ListItem{
		simple(spans...),
		document.ParagraphItem{Blocks: []document.Block{para(spans...)}},
	}
	return []document.Block{
		document.Header{Spans: spans, Level: 1},
		para(spans...),
		document.Blockquote{Blocks: []document.Block{para(spans...)}},
		document.CodeBlock{Language: "go", Text: "code"},
		document.OrderedList{Items: items},
		document.UnorderedList{Items: items},
		document.Raw{Text: "raw"},
		document.Hr{},
	}
}

func TestConfluenceCoversEveryVariant(t *testing.T) {
	assert.NotPanics(t, func() { Confluence(allVariants()) })
	assert.NotPanics(t, func() {
		NewConfluenceRenderer(WithHeaderAnchors(), WithCodeMacros()).Blocks(allVariants())
	})
}

func TestConfluenceRejectsForeignNodes(t *testing.T) {
	assert.Panics(t, func() { Confluence([]document.Block{nil}) })
	assert.Panics(t, func() { Confluence([]document.Block{document.Paragraph{Spans: []document.Span{nil}}}) })
}

func TestConfluenceIsPure(t *testing.T) {
	in := allVariants()
	pristine := allVariants()
	first := Confluence(in)
	second := Confluence(in)
	assert.Equal(t, first, second)
	if diff := cmp.Diff(pristine, in); diff != "" {
		t.Errorf("render mutated its input (-want +got):\n%s", diff)
	}
}

func TestConfluenceTrailingNewline(t *testing.T) {
	inputs := [][]document.Block{
		nil,
		{para(text("a \t"))},
		{document.Raw{Text: "x\n\n\n"}},
		{document.Blockquote{}},
		allVariants(),
	}
	for _, blocks := range inputs {
		out := Confluence(blocks)
		require.True(t, strings.HasSuffix(out, "\n"))
		body := out[:len(out)-1]
		assert.Equal(t, strings.TrimSpace(body), body)
	}
}

func nest(depth int) document.Block {
	if depth == 0 {
		return para(text("core"))
	}
	return document.Blockquote{Blocks: []document.Block{
		document.UnorderedList{Items: []document.ListItem{
			document.ParagraphItem{Blocks: []document.Block{nest(depth - 1)}},
		}},
	}}
}

func TestConfluenceDeepNesting(t *testing.T) {
	out := Confluence([]document.Block{nest(50)})
	assert.Equal(t, 100, strings.Count(out, "{noformat}"))
	assert.Equal(t, 50, strings.Count(out, "- "))
	assert.True(t, strings.HasPrefix(out, "{noformat}\n- {noformat}\n- {noformat}\n"))
	inner := strings.Index(out, "- core\n")
	require.True(t, inner > 0)
	assert.Equal(t, 50, strings.Count(out[:inner], "{noformat}"))
	assert.Equal(t, 50, strings.Count(out[inner:], "{noformat}"))
}

func TestConfluenceConcurrent(t *testing.T) {
	blocks := allVariants()
	want := Confluence(blocks)
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Confluence(blocks)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
