package markup

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	nethtml "golang.org/x/net/html"
)

// MalformedMarkupError reports a paragraph whose structure could not be honoured.
// The paragraph is still returned as a single unstyled text node.
type MalformedMarkupError struct {
	Paragraph int
	Reason    string
}

func (e *MalformedMarkupError) Error() string {
	return fmt.Sprintf("malformed markup in paragraph %d: %s", e.Paragraph, e.Reason)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// inlineStyle maps the supported inline tags onto the style they switch on
func inlineStyle(tag string, s Style) (Style, bool) {
	switch tag {
	case "b", "strong":
		s.Bold = true
	case "i", "em":
		s.Italic = true
	default:
		return s, false
	}
	return s, true
}

type frame struct {
	node  *Node
	style Style
}

// paragraph accumulates one top-level <p> while tokens stream in
type paragraph struct {
	root   *Node
	stack  []frame
	plain  strings.Builder
	reason string
}

func newParagraph() *paragraph {
	root := NewElement("p")
	return &paragraph{root: root, stack: []frame{{node: root}}}
}

func (p *paragraph) fail(reason string) {
	if p.reason == "" {
		p.reason = reason
	}
}

func (p *paragraph) top() frame {
	return p.stack[len(p.stack)-1]
}

func (p *paragraph) text(value string) {
	p.plain.WriteString(value)
	if value == "" {
		return
	}
	top := p.top()
	top.node.Children = append(top.node.Children, NewText(value, top.style))
}

func (p *paragraph) open(tag string) {
	style, ok := inlineStyle(tag, p.top().style)
	if !ok {
		p.fail(fmt.Sprintf("unsupported tag <%s>", tag))
		return
	}
	el := NewElement(tag)
	parent := p.top().node
	parent.Children = append(parent.Children, el)
	p.stack = append(p.stack, frame{node: el, style: style})
}

func (p *paragraph) close(tag string) {
	if _, ok := inlineStyle(tag, Style{}); !ok {
		p.fail(fmt.Sprintf("unsupported tag </%s>", tag))
		return
	}
	if len(p.stack) == 1 || p.top().node.Tag != tag {
		p.fail(fmt.Sprintf("unexpected closing tag </%s>", tag))
		return
	}
	p.stack = p.stack[:len(p.stack)-1]
}

// finish returns the built element, or the unstyled fallback when anything went wrong
func (p *paragraph) finish() (*Node, string) {
	if p.reason == "" && len(p.stack) > 1 {
		p.fail(fmt.Sprintf("unclosed tag <%s>", p.top().node.Tag))
	}
	if p.reason != "" {
		return NewElement("p", NewText(p.plain.String(), Style{})), p.reason
	}
	return p.root, ""
}

// Parse turns rendered transcript HTML into a forest of paragraph nodes.
//
// Entities are decoded and line breaks collapsed to spaces before tokenizing.
// Every top-level <p> becomes one element; b/strong and i/em mark their
// descendant text bold and italic. Malformed paragraphs degrade to a single
// unstyled text node and are reported through the returned error, which
// joins one *MalformedMarkupError per affected paragraph. The nodes are
// always usable, even when err is non-nil.
func Parse(input string) ([]*Node, error) {
	decoded := lineBreaks.Replace(html.UnescapeString(input))

	var (
		roots   []*Node
		errs    []error
		current *paragraph
	)

	flush := func() {
		if current == nil {
			return
		}
		node, reason := current.finish()
		if reason != "" {
			errs = append(errs, &MalformedMarkupError{Paragraph: len(roots), Reason: reason})
		}
		roots = append(roots, node)
		current = nil
	}

	z := nethtml.NewTokenizer(strings.NewReader(decoded))
	for {
		tt := z.Next()
		if tt == nethtml.ErrorToken {
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				errs = append(errs, fmt.Errorf("tokenize transcript: %w", err))
			}
			break
		}

		switch tt {
		case nethtml.TextToken:
			// Raw keeps the text as decoded above instead of unescaping twice
			value := string(z.Raw())
			if current != nil {
				current.text(value)
				continue
			}
			if strings.TrimSpace(value) == "" {
				continue
			}
			current = newParagraph()
			current.fail("text outside of a paragraph")
			current.text(value)
			flush()

		case nethtml.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "p" {
				if current != nil {
					current.fail("nested <p>")
					flush()
				}
				current = newParagraph()
				continue
			}
			if current == nil {
				current = newParagraph()
				current.fail(fmt.Sprintf("<%s> outside of a paragraph", tag))
				continue
			}
			current.open(tag)

		case nethtml.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if current == nil {
				errs = append(errs, &MalformedMarkupError{
					Paragraph: len(roots),
					Reason:    fmt.Sprintf("unexpected closing tag </%s>", tag),
				})
				continue
			}
			if tag == "p" {
				flush()
				continue
			}
			current.close(tag)

		case nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			if current == nil {
				current = newParagraph()
			}
			current.fail(fmt.Sprintf("unsupported tag <%s/>", name))
		}
	}
	if current != nil {
		current.fail("unclosed <p>")
	}
	flush()

	return roots, errors.Join(errs...)
}
