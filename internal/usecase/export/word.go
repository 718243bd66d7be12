package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/markup"
)

const (
	wordNS    = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNS     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	pkgRelNS  = "http://schemas.openxmlformats.org/package/2006/relationships"
	linkType  = relNS + "/hyperlink"
	styleType = relNS + "/styles"

	videoLinkID = "rIdVideo"
	siteLinkID  = "rIdSite"
	stylesID    = "rIdStyles"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="` + pkgRelNS + `">
<Relationship Id="rId1" Type="` + relNS + `/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wordNS + `">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:pPr><w:spacing w:after="120"/></w:pPr></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:spacing w:after="120"/></w:pPr><w:rPr><w:b/><w:sz w:val="48"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:spacing w:before="240" w:after="60"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:color w:val="595959"/><w:sz w:val="28"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Subtitle"><w:name w:val="Subtitle"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:spacing w:after="360"/></w:pPr><w:rPr><w:i/><w:color w:val="595959"/><w:sz w:val="20"/></w:rPr></w:style>
<w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/><w:rPr><w:color w:val="1F5AC8"/><w:u w:val="single"/></w:rPr></w:style>
</w:styles>`

// WordExporter writes a WordprocessingML (.docx) package
type WordExporter struct {
	site Site
	now  func() time.Time
}

func NewWordExporter(site Site) *WordExporter {
	return &WordExporter{site: site, now: time.Now}
}

func (e *WordExporter) Format() entities.ExportFormat {
	return entities.ExportFormatWord
}

func (e *WordExporter) Export(doc Document) (*entities.Artifact, error) {
	h := newHeader(e.site, doc)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", coreXML(h.Title, h.SiteName, e.now())},
		{"word/_rels/document.xml.rels", documentRelsXML(h)},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML(h, doc.Nodes)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create docx part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("write docx part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close docx package: %w", err)
	}

	return &entities.Artifact{
		Filename: Filename(doc.Title, entities.ExportFormatWord),
		MIMEType: MIMEWord,
		Data:     buf.Bytes(),
	}, nil
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func coreXML(title, creator string, at time.Time) string {
	stamp := at.UTC().Format(time.RFC3339)
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>` + escape(title) + `</dc:title>
<dc:creator>` + escape(creator) + `</dc:creator>
<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>
</cp:coreProperties>`
}

func documentRelsXML(h header) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Relationships xmlns="` + pkgRelNS + `">` + "\n")
	fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="styles.xml"/>`+"\n", stylesID, styleType)
	fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s" TargetMode="External"/>`+"\n", videoLinkID, linkType, escape(h.VideoURL))
	fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s" TargetMode="External"/>`+"\n", siteLinkID, linkType, escape(h.SiteURL))
	b.WriteString(`</Relationships>`)
	return b.String()
}

func documentXML(h header, nodes []*markup.Node) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="` + wordNS + `" xmlns:r="` + relNS + `"><w:body>`)

	writeParagraph(&b, "Heading1", func() { writeRun(&b, h.Lead, markup.Style{}, "") })
	writeParagraph(&b, "Title", func() { writeHyperlink(&b, videoLinkID, h.Title) })
	writeParagraph(&b, "Subtitle", func() {
		writeRun(&b, h.AttributionText, markup.Style{}, "")
		writeHyperlink(&b, siteLinkID, h.SiteName)
	})

	for _, node := range nodes {
		writeParagraph(&b, "", func() {
			for _, run := range node.Runs() {
				writeRun(&b, run.Text, run.Style, "")
			}
		})
	}

	// A4 portrait with one inch margins
	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, style string, body func()) {
	b.WriteString("<w:p>")
	if style != "" {
		fmt.Fprintf(b, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	body()
	b.WriteString("</w:p>")
}

func writeHyperlink(b *strings.Builder, relID, text string) {
	fmt.Fprintf(b, `<w:hyperlink r:id="%s">`, relID)
	writeRun(b, text, markup.Style{}, "Hyperlink")
	b.WriteString("</w:hyperlink>")
}

func writeRun(b *strings.Builder, text string, style markup.Style, charStyle string) {
	b.WriteString("<w:r>")
	if style.Bold || style.Italic || charStyle != "" {
		b.WriteString("<w:rPr>")
		if charStyle != "" {
			fmt.Fprintf(b, `<w:rStyle w:val="%s"/>`, charStyle)
		}
		if style.Bold {
			b.WriteString("<w:b/>")
		}
		if style.Italic {
			b.WriteString("<w:i/>")
		}
		b.WriteString("</w:rPr>")
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escape(text))
	b.WriteString("</w:t></w:r>")
}
