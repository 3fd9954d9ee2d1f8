package htmlform

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML document. All queries are pure functions of the
// document text: no network access, no mutation.
type Document struct {
	root *html.Node
}

// ParseDocument parses an HTML document from r.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrMalformedDocument, err)
	}
	return &Document{root: root}, nil
}

// Root exposes the underlying parse tree for callers composing their own
// traversals.
func (d *Document) Root() *html.Node {
	return d.root
}

// Matcher reports whether a node satisfies a condition. Matchers compose
// with And to express row and form locators.
type Matcher func(*html.Node) bool

// Tag matches element nodes with the given tag name.
func Tag(name string) Matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == name
	}
}

// ID matches elements whose id attribute equals id.
func ID(id string) Matcher {
	return Attr("id", id)
}

// Class matches elements carrying the given class among their class list.
func Class(name string) Matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if a.Key == "class" {
				for _, c := range strings.Fields(a.Val) {
					if c == name {
						return true
					}
				}
				return false
			}
		}
		return false
	}
}

// Attr matches elements whose attribute key equals value.
func Attr(key, value string) Matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if a.Key == key {
				return a.Val == value
			}
		}
		return false
	}
}

// HasAttr matches elements that carry the attribute regardless of value.
func HasAttr(key string) Matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if a.Key == key {
				return true
			}
		}
		return false
	}
}

// And matches nodes satisfying every matcher.
func And(matchers ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range matchers {
			if m != nil && !m(n) {
				return false
			}
		}
		return true
	}
}

// Find returns the first node under n, in document order, matching m.
func Find(n *html.Node, m Matcher) (*html.Node, bool) {
	if n == nil || m == nil {
		return nil, false
	}
	if m(n) {
		return n, true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found, ok := Find(c, m); ok {
			return found, true
		}
	}
	return nil, false
}

// FindAll returns every node under n, in document order, matching m.
func FindAll(n *html.Node, m Matcher) []*html.Node {
	if n == nil || m == nil {
		return nil
	}
	var out []*html.Node
	if m(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, FindAll(c, m)...)
	}
	return out
}

// Find returns the first node in the document matching m.
func (d *Document) Find(m Matcher) (*html.Node, bool) {
	return Find(d.root, m)
}

// FindAll returns every node in the document matching m.
func (d *Document) FindAll(m Matcher) []*html.Node {
	return FindAll(d.root, m)
}

// AttrValue returns the value of the named attribute on n.
func AttrValue(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text content of n with runs of whitespace
// collapsed to single spaces and surrounding whitespace trimmed.
func Text(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// FindForm returns the first form element matching m. Pass nil to match the
// first form in the document.
func (d *Document) FindForm(m Matcher) (*html.Node, error) {
	form, ok := d.Find(And(Tag("form"), m))
	if !ok {
		return nil, ErrFormNotFound
	}
	return form, nil
}

// HiddenInputs collects the hidden input fields of a form: the values a
// client must replay to submit it (session tokens, anti-forgery tokens).
// Inputs without a name attribute are skipped.
func HiddenInputs(form *html.Node) url.Values {
	values := url.Values{}
	for _, input := range FindAll(form, Tag("input")) {
		typ, _ := AttrValue(input, "type")
		if !strings.EqualFold(typ, "hidden") {
			continue
		}
		name, ok := AttrValue(input, "name")
		if !ok || name == "" {
			continue
		}
		value, _ := AttrValue(input, "value")
		values.Set(name, value)
	}
	return values
}

// FormInput returns the value attribute of the named input within a form.
func FormInput(form *html.Node, name string) (string, error) {
	input, ok := Find(form, And(Tag("input"), Attr("name", name)))
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, name)
	}
	value, _ := AttrValue(input, "value")
	return value, nil
}
