// Package node is the read-only view over one content definition element.
//
// Source data is inconsistently cased ("basePrice", "baseprice", "BasePrice"), so every
// attribute lookup goes through a case-folded comparison. Tag lookups prefer an exact match
// and fall back to a case-folded one.
package node

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
)

// Attr is a single attribute in document order.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of an attributed tree. Dir, File and Ordinal are origin
// metadata assigned by the loader; they are not attributes.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string

	Dir     string // origin directory, relative to the game root
	File    string // origin file name
	Ordinal int    // position among the file's records
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Lookup returns the first attribute, in document order, whose name matches key
// case-insensitively. Present-but-empty values are returned with ok=true.
func (n *Node) Lookup(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	fk := fold(key)
	for _, a := range n.Attrs {
		if fold(a.Name) == fk {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns a non-empty attribute value. Empty values count as absent.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// String returns the attribute value or def when absent or empty.
func (n *Node) String(key, def string) string {
	if v, ok := n.Attr(key); ok {
		return v
	}
	return def
}

// HasExactAttr reports whether an attribute with exactly this name exists.
func (n *Node) HasExactAttr(name string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttr replaces an attribute with exactly this name or appends it.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Int coerces an attribute to an integer. ok is false when the attribute is absent or empty.
func (n *Node) Int(key string) (v int, ok bool, err error) {
	s, ok := n.Attr(key)
	if !ok {
		return 0, false, nil
	}
	v, err = parseInt(s)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %s=%q on <%s>", domain.ErrInvalidAttribute, key, s, n.Tag)
	}
	return v, true, nil
}

// IntOr returns the integer attribute or def when absent.
func (n *Node) IntOr(key string, def int) (int, error) {
	v, ok, err := n.Int(key)
	if err != nil || !ok {
		return def, err
	}
	return v, nil
}

// Float coerces an attribute to a float.
func (n *Node) Float(key string) (v float64, ok bool, err error) {
	s, ok := n.Attr(key)
	if !ok {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %s=%q on <%s>", domain.ErrInvalidAttribute, key, s, n.Tag)
	}
	return v, true, nil
}

// FloatOr returns the float attribute or def when absent.
func (n *Node) FloatOr(key string, def float64) (float64, error) {
	v, ok, err := n.Float(key)
	if err != nil || !ok {
		return def, err
	}
	return v, nil
}

// Bool coerces an attribute to a boolean ("true"/"false", any case).
func (n *Node) Bool(key string) (v bool, ok bool, err error) {
	s, ok := n.Attr(key)
	if !ok {
		return false, false, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	}
	return false, true, fmt.Errorf("%w: %s=%q on <%s>", domain.ErrInvalidAttribute, key, s, n.Tag)
}

// BoolOr returns the boolean attribute or def when absent.
func (n *Node) BoolOr(key string, def bool) (bool, error) {
	v, ok, err := n.Bool(key)
	if err != nil || !ok {
		return def, err
	}
	return v, nil
}

// Child returns the child with this tag. Duplicate exact matches resolve to the last one;
// otherwise the first case-folded match is used.
func (n *Node) Child(tag string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	var found *Node
	for _, c := range n.Children {
		if c.Tag == tag {
			found = c
		}
	}
	if found != nil {
		return found, true
	}
	ft := fold(tag)
	for _, c := range n.Children {
		if fold(c.Tag) == ft {
			return c, true
		}
	}
	return nil, false
}

// ChildrenByTag returns every child with this tag, in document order. Exact matches are
// preferred; case-folded matches are returned only when there are none.
func (n *Node) ChildrenByTag(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}
	ft := fold(tag)
	for _, c := range n.Children {
		if fold(c.Tag) == ft {
			out = append(out, c)
		}
	}
	return out
}

// IsTag reports whether the node's tag matches case-insensitively.
func (n *Node) IsTag(tag string) bool {
	return n != nil && fold(n.Tag) == fold(tag)
}

// Clone returns a deep copy of the node, including origin metadata.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Tag:     n.Tag,
		Text:    n.Text,
		Dir:     n.Dir,
		File:    n.File,
		Ordinal: n.Ordinal,
	}
	if n.Attrs != nil {
		out.Attrs = make([]Attr, len(n.Attrs))
		copy(out.Attrs, n.Attrs)
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// parseInt accepts plain integers and integral floats such as "5.0".
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %s", s)
	}
	return int(f), nil
}
