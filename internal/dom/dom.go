// Package dom is a thin adapter over golang.org/x/net/html for the handful of
// tree operations the page renderer needs.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses a full HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// Render writes the document to w.
func Render(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// Walk visits n and its descendants in document order. Returning false from
// fn stops the walk.
func Walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// ElementByID returns the first element with the given id, or nil.
func ElementByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := Attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// ElementsWithAttr returns every element carrying attr, in document order.
func ElementsWithAttr(root *html.Node, attr string) []*html.Node {
	var out []*html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if _, ok := Attr(n, attr); ok {
				out = append(out, n)
			}
		}
		return true
	})
	return out
}

// ElementsByClass returns every element whose class list contains class.
func ElementsByClass(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && HasClass(n, class) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FirstByClass returns the first descendant of root (root excluded) with class.
func FirstByClass(root *html.Node, class string) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && HasClass(c, class) {
			return c
		}
		if found := FirstByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// DocumentElement returns the <html> element of a parsed document.
func DocumentElement(doc *html.Node) *html.Node {
	var found *html.Node
	Walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Html {
			found = n
			return false
		}
		return true
	})
	return found
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces key on n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr drops key from n if present.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// Classes returns the class list of n.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class to n unless already present.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.TrimSpace(strings.Join(append(Classes(n), class), " ")))
}

// RemoveClass drops class from n.
func RemoveClass(n *html.Node, class string) {
	classes := Classes(n)
	out := classes[:0]
	for _, c := range classes {
		if c != class {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(out, " "))
}

// ToggleClass adds or removes class depending on on.
func ToggleClass(n *html.Node, class string, on bool) {
	if on {
		AddClass(n, class)
	} else {
		RemoveClass(n, class)
	}
}

// TextContent concatenates the text of every descendant text node.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	Walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// SetTextContent replaces all children of n with a single text node.
func SetTextContent(n *html.Node, text string) {
	RemoveChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetInnerHTML replaces the children of n with markup parsed in the context
// of n. On a parse error n is left untouched.
func SetInnerHTML(n *html.Node, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), n)
	if err != nil {
		return fmt.Errorf("failed to parse fragment: %w", err)
	}
	RemoveChildren(n)
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// TextChildren returns the direct text-node children of n.
func TextChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			out = append(out, c)
		}
	}
	return out
}

// ElementChildren returns the direct element children of n.
func ElementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// NewElement builds a detached element with the given attributes, given as
// key/value pairs.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// NewText builds a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
