// Package render — PDF renderer.
// Lays the document model out as a styled PDF using gofpdf.
// Headings get variable font sizes, quotes and list bodies are indented,
// code is set in Courier on a shaded background.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/mdconfluence/core"
	"github.com/gaurav-prasanna/mdconfluence/core/document"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin     = 10.0 // mm
	pdfPageWidth  = 210.0
	quoteIndent   = 8.0
	listIndent    = 6.0
	bodyFontSize  = 10.0
	bodyLineWidth = 5.0
)

// PDFRenderer renders the document model as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render lays out blocks into PDF bytes.
func (r *PDFRenderer) Render(blocks []document.Block, meta core.Metadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, w.tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}
	if meta.Origin != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, w.tr("Source: "+meta.Origin), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	w.blocks(blocks, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// indent moves the left margin to the given depth, keeping the current line.
func (w *pdfWriter) indent(depth float64) {
	w.pdf.SetLeftMargin(pdfMargin + depth)
	w.pdf.SetX(pdfMargin + depth)
}

func (w *pdfWriter) blocks(blocks []document.Block, depth float64) {
	for _, b := range blocks {
		w.indent(depth)
		switch b := b.(type) {
		case document.Header:
			w.heading(document.PlainText(b.Spans), b.Level)
		case document.Paragraph:
			w.pdf.SetFont("Helvetica", "", bodyFontSize)
			w.pdf.MultiCell(0, bodyLineWidth, w.tr(document.PlainText(b.Spans)), "", "L", false)
			w.pdf.Ln(2)
		case document.Blockquote:
			w.pdf.SetTextColor(80, 80, 80)
			w.blocks(b.Blocks, depth+quoteIndent)
			w.pdf.SetTextColor(0, 0, 0)
		case document.CodeBlock:
			w.code(b.Text)
		case document.OrderedList:
			for i, item := range b.Items {
				w.listItem(strconv.Itoa(i+1)+".", item, depth)
			}
			w.pdf.Ln(2)
		case document.UnorderedList:
			for _, item := range b.Items {
				w.listItem("•", item, depth)
			}
			w.pdf.Ln(2)
		case document.Raw:
			w.code(b.Text)
		case document.Hr:
			y := w.pdf.GetY() + 2
			w.pdf.SetDrawColor(160, 160, 160)
			w.pdf.Line(pdfMargin+depth, y, pdfPageWidth-pdfMargin, y)
			w.pdf.Ln(5)
		default:
			panic(fmt.Sprintf("render: unhandled block type %T", b))
		}
	}
	w.indent(depth)
}

func (w *pdfWriter) listItem(marker string, item document.ListItem, depth float64) {
	w.indent(depth)
	w.pdf.SetFont("Helvetica", "", bodyFontSize)
	w.pdf.CellFormat(listIndent, bodyLineWidth, w.tr(marker), "", 0, "L", false, 0, "")
	switch item := item.(type) {
	case document.SimpleItem:
		w.indent(depth + listIndent)
		w.pdf.MultiCell(0, bodyLineWidth, w.tr(document.PlainText(item.Spans)), "", "L", false)
	case document.ParagraphItem:
		w.blocks(item.Blocks, depth+listIndent)
	default:
		panic(fmt.Sprintf("render: unhandled list item type %T", item))
	}
	w.indent(depth)
}

func (w *pdfWriter) code(text string) {
	w.pdf.Ln(1)
	w.pdf.SetFont("Courier", "", 9)
	w.pdf.SetFillColor(245, 245, 245)
	for _, line := range strings.Split(text, "\n") {
		w.pdf.MultiCell(0, 4.5, w.tr(line), "", "L", true)
	}
	w.pdf.Ln(2)
}

// heading sets the font size based on heading level and writes text.
func (w *pdfWriter) heading(text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	w.pdf.Ln(4)
	w.pdf.SetFont("Helvetica", "B", size)
	w.pdf.MultiCell(0, size*0.6, w.tr(text), "", "L", false)
	w.pdf.Ln(2)
}
