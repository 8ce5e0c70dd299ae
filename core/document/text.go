package document

import "strings"

// PlainText returns the human-readable text of a span sequence, without any
// markup. Links contribute their text, images their alt text, and breaks a
// single space.
func PlainText(spans []Span) string {
	var b strings.Builder
	writePlain(&b, spans)
	return b.String()
}

func writePlain(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s := s.(type) {
		case Break:
			b.WriteByte(' ')
		case Text:
			b.WriteString(s.Text)
		case Code:
			b.WriteString(s.Text)
		case Link:
			b.WriteString(s.Text)
		case Image:
			b.WriteString(s.Alt)
		case Emphasis:
			writePlain(b, s.Spans)
		case Strong:
			writePlain(b, s.Spans)
		case Strikethrough:
			writePlain(b, s.Spans)
		}
	}
}
