package export

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/markup"
)

//go:embed fonts/*.ttf
var pdfFonts embed.FS

// Font files per fpdf style. DejaVu covers Latin, Greek and Cyrillic.
var pdfFontFiles = map[string]string{
	"":   "fonts/DejaVuSansCondensed.ttf",
	"B":  "fonts/DejaVuSansCondensed-Bold.ttf",
	"I":  "fonts/DejaVuSansCondensed-Oblique.ttf",
	"BI": "fonts/DejaVuSansCondensed-BoldOblique.ttf",
}

const (
	pdfFont         = "DejaVu"
	pdfMargin       = 20.0
	pdfBodySize     = 11.0
	pdfBodyLine     = 6.0
	pdfParagraphGap = 2.0
)

// PDFExporter lays the transcript out on A4 pages with the header on top
type PDFExporter struct {
	site     Site
	compress bool
}

func NewPDFExporter(site Site) *PDFExporter {
	return &PDFExporter{site: site, compress: true}
}

func (e *PDFExporter) Format() entities.ExportFormat {
	return entities.ExportFormatPDF
}

func (e *PDFExporter) Export(doc Document) (*entities.Artifact, error) {
	h := newHeader(e.site, doc)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(h.Title, true)
	pdf.SetCreator(h.SiteName, true)

	if err := addPDFFonts(pdf); err != nil {
		return nil, err
	}

	pdf.AddPage()

	pdf.SetFont(pdfFont, "", 14)
	pdf.SetTextColor(90, 90, 90)
	pdf.Write(7, h.Lead)
	pdf.Ln(9)

	pdf.SetFont(pdfFont, "B", 20)
	pdf.SetTextColor(20, 20, 20)
	pdf.WriteLinkString(9, h.Title, h.VideoURL)
	pdf.Ln(11)

	pdf.SetFont(pdfFont, "I", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.Write(5, h.AttributionText)
	pdf.SetTextColor(30, 90, 200)
	pdf.WriteLinkString(5, h.SiteName, h.SiteURL)
	pdf.Ln(12)

	pdf.SetTextColor(0, 0, 0)
	for _, node := range doc.Nodes {
		for _, run := range node.Runs() {
			pdf.SetFont(pdfFont, fpdfStyle(run.Style), pdfBodySize)
			pdf.Write(pdfBodyLine, run.Text)
		}
		pdf.Ln(pdfBodyLine + pdfParagraphGap)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &entities.Artifact{
		Filename: Filename(doc.Title, entities.ExportFormatPDF),
		MIMEType: MIMEPDF,
		Data:     buf.Bytes(),
	}, nil
}

func addPDFFonts(pdf *fpdf.Fpdf) error {
	for style, name := range pdfFontFiles {
		data, err := pdfFonts.ReadFile(name)
		if err != nil {
			return fmt.Errorf("load font %s: %w", name, err)
		}
		pdf.AddUTF8FontFromBytes(pdfFont, style, data)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("register fonts: %w", err)
	}
	return nil
}

func fpdfStyle(s markup.Style) string {
	switch {
	case s.Bold && s.Italic:
		return "BI"
	case s.Bold:
		return "B"
	case s.Italic:
		return "I"
	default:
		return ""
	}
}
