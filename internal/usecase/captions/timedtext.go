package captions

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// timedTextDoc covers both shapes the timedtext endpoint serves:
// <transcript><text start dur> in seconds and srv3 <timedtext><body><p t d> in milliseconds.
type timedTextDoc struct {
	XMLName xml.Name
	Texts   []struct {
		Text     string `xml:",chardata"`
		Start    string `xml:"start,attr"`
		Duration string `xml:"dur,attr"`
	} `xml:"text"`
	Body struct {
		Paras []struct {
			Text     string `xml:",chardata"`
			Start    string `xml:"t,attr"`
			Duration string `xml:"d,attr"`
			Segments []struct {
				Text string `xml:",chardata"`
			} `xml:"s"`
		} `xml:"p"`
	} `xml:"body"`
}

// ParseTimedText decodes a timedtext XML document into caption lines.
// Entity references are decoded once, so inline markup such as <i> that
// YouTube escapes inside the XML comes out as markup.
func ParseTimedText(data []byte) ([]entities.CaptionLine, error) {
	var doc timedTextDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timedtext: %w", err)
	}

	switch doc.XMLName.Local {
	case "transcript":
		lines := make([]entities.CaptionLine, 0, len(doc.Texts))
		for _, t := range doc.Texts {
			start, err := parseSeconds(t.Start)
			if err != nil {
				return nil, err
			}
			dur, err := parseSeconds(t.Duration)
			if err != nil {
				return nil, err
			}
			lines = append(lines, entities.CaptionLine{StartSeconds: start, Duration: dur, Text: t.Text})
		}
		return lines, nil

	case "timedtext":
		lines := make([]entities.CaptionLine, 0, len(doc.Body.Paras))
		for _, p := range doc.Body.Paras {
			var b strings.Builder
			b.WriteString(p.Text)
			for _, s := range p.Segments {
				b.WriteString(s.Text)
			}
			text := b.String()
			// srv3 uses empty paragraphs as line-break markers
			if strings.TrimSpace(text) == "" {
				continue
			}
			start, err := parseMillis(p.Start)
			if err != nil {
				return nil, err
			}
			dur, err := parseMillis(p.Duration)
			if err != nil {
				return nil, err
			}
			lines = append(lines, entities.CaptionLine{StartSeconds: start, Duration: dur, Text: text})
		}
		return lines, nil

	default:
		return nil, fmt.Errorf("unexpected timedtext root <%s>", doc.XMLName.Local)
	}
}

func parseSeconds(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid time %q: not a finite number", s)
	}
	if v < 0 {
		v = 0
	}
	return v, nil
}

func parseMillis(s string) (float64, error) {
	v, err := parseSeconds(s)
	return v / 1000, err
}
