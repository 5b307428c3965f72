package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMissingElement reports that a part lacks an element its decoder needs.
var ErrMissingElement = errors.New("missing element")

func errMissingRoot(name string) error {
	return fmt.Errorf("root <%s>: %w", name, ErrMissingElement)
}

// Node is one element of a parsed XML document.
//
// Lookups never fail: every method may be called on a nil *Node and reports
// "not found" (nil, "" or false), so chains like
// doc.FirstChild("a").FirstChild("b").Attr("c") need no intermediate checks.
// Element and attribute names are matched on their local part; namespace
// prefixes are ignored.
type Node struct {
	Name     string
	attrs    []xml.Attr
	children []*Node
	text     []byte
	parent   *Node
	index    int
}

// Parse tokenizes data into a node tree and returns the document node, whose
// children are the top-level elements. The encoding declared in the XML
// prolog is honored; a UTF-8 or UTF-16 byte order mark overrides it.
func Parse(data []byte) (*Node, error) {
	doc := &Node{}
	cur := doc

	decoder := newDecoder(data)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			se := t.Copy()
			n := &Node{
				Name:   se.Name.Local,
				attrs:  se.Attr,
				parent: cur,
				index:  len(cur.children),
			}
			cur.children = append(cur.children, n)
			cur = n
		case xml.EndElement:
			if cur.parent != nil {
				cur = cur.parent
			}
		case xml.CharData:
			if cur != doc {
				cur.text = append(cur.text, t...)
			}
		}
	}

	if cur != doc {
		return nil, fmt.Errorf("unclosed element <%s>", cur.Name)
	}
	return doc, nil
}

func newDecoder(data []byte) *xml.Decoder {
	r := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(encoding.Nop.NewDecoder()))
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader
	return decoder
}

// charsetReader converts a non-UTF-8 document to UTF-8. UTF-16 input has
// already been converted by the byte order mark transform at this point.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if strings.HasPrefix(strings.ToLower(label), "utf-16") {
		return input, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == unicode.UTF8 {
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}

func matches(n *Node, name string) bool {
	return name == "" || n.Name == name
}

// FirstChild returns the first child element named name, or the first child
// element of any name when name is empty.
func (n *Node) FirstChild(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if matches(c, name) {
			return c
		}
	}
	return nil
}

// NextSibling returns the next element after n under the same parent that
// is named name (any name when empty).
func (n *Node) NextSibling(name string) *Node {
	if n == nil || n.parent == nil {
		return nil
	}
	for _, s := range n.parent.children[n.index+1:] {
		if matches(s, name) {
			return s
		}
	}
	return nil
}

// Children returns the child elements named name in document order, or all
// child elements when name is empty.
func (n *Node) Children(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.FirstChild(name); c != nil; c = c.NextSibling(name) {
		out = append(out, c)
	}
	return out
}

// Attr returns the value of the attribute named name and whether it exists.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// IntAttr returns the leading integer of the attribute named name, in the
// manner of C atoi: surrounding whitespace and trailing junk are ignored, and
// a missing attribute or one without leading digits yields 0.
func (n *Node) IntAttr(name string) int {
	v, _ := n.IntAttrOK(name)
	return v
}

// IntAttrOK is IntAttr that also reports whether the attribute exists and
// starts with an integer.
func (n *Node) IntAttrOK(name string) (int, bool) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	return leadingInt(v)
}

func atoi(s string) int {
	v, _ := leadingInt(s)
	return v
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	const maxInt = int(^uint(0) >> 1)
	v, i := 0, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if v > (maxInt-d)/10 {
			v = maxInt
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			break
		}
		v = v*10 + d
	}
	if i == 0 {
		return 0, false
	}
	if neg {
		return -v, true
	}
	return v, true
}

// Text returns the character data directly inside n, without the text of
// nested elements.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return string(n.text)
}
