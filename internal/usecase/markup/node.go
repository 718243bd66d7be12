package markup

import "strings"

// Kind discriminates the two node variants
type Kind int

const (
	KindText Kind = iota
	KindElement
)

func (k Kind) String() string {
	if k == KindElement {
		return "element"
	}
	return "text"
}

// Style is the inline formatting inherited by a text node from its ancestors
type Style struct {
	Bold   bool
	Italic bool
}

// Node is either a text leaf or an element with ordered children.
// Text nodes use Value and Style; element nodes use Tag and Children.
type Node struct {
	Kind     Kind
	Tag      string
	Value    string
	Style    Style
	Children []*Node
}

// NewText builds a text leaf
func NewText(value string, style Style) *Node {
	return &Node{Kind: KindText, Value: value, Style: style}
}

// NewElement builds an element node
func NewElement(tag string, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Children: children}
}

// IsText reports whether n is a text leaf
func (n *Node) IsText() bool {
	return n != nil && n.Kind == KindText
}

// Run is a contiguous piece of text sharing a single style
type Run struct {
	Text  string
	Style Style
}

// Runs flattens the text descendants of n in document order,
// merging neighbours that share a style.
func (n *Node) Runs() []Run {
	var runs []Run
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur == nil {
			return
		}
		if cur.Kind == KindText {
			if cur.Value == "" {
				return
			}
			if last := len(runs) - 1; last >= 0 && runs[last].Style == cur.Style {
				runs[last].Text += cur.Value
				return
			}
			runs = append(runs, Run{Text: cur.Value, Style: cur.Style})
			return
		}
		for _, child := range cur.Children {
			walk(child)
		}
	}
	walk(n)
	return runs
}

// Text returns the concatenated text of n without formatting
func (n *Node) Text() string {
	var b strings.Builder
	for _, r := range n.Runs() {
		b.WriteString(r.Text)
	}
	return b.String()
}
