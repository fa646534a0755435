// Package variant resolves a record's sub-nodes against its optional variant-of ancestor.
package variant

import (
	"github.com/osse101/BaroCatalog_Go/internal/node"
)

// Merger resolves named children of a record, filling gaps from the ancestor.
// Neither input node is modified; every returned node is a fresh copy.
type Merger struct {
	record   *node.Node
	ancestor *node.Node
}

// New creates a Merger. ancestor may be nil.
func New(record, ancestor *node.Node) *Merger {
	return &Merger{record: record, ancestor: ancestor}
}

// Record returns the record being resolved.
func (m *Merger) Record() *node.Node { return m.record }

// Ancestor returns the variant-of ancestor, or nil.
func (m *Merger) Ancestor() *node.Node { return m.ancestor }

// Child returns the merged child with this tag.
//
// A child present on the record wins. If it has no children of its own it takes the
// ancestor counterpart's children, and any attribute present on the counterpart but
// missing on the record (exact name match) is copied in. A child only present on the
// ancestor is returned as-is, with Dir set to the ancestor's origin directory so that
// relative texture paths resolve against the file it came from.
func (m *Merger) Child(tag string) (*node.Node, bool) {
	own, ok := m.record.Child(tag)
	if !ok {
		if m.ancestor == nil {
			return nil, false
		}
		inherited, ok := m.ancestor.Child(tag)
		if !ok {
			return nil, false
		}
		return m.borrow(inherited), true
	}

	merged := own.Clone()
	if m.ancestor == nil {
		return merged, true
	}
	counterpart, ok := m.ancestor.Child(tag)
	if !ok {
		return merged, true
	}

	if len(merged.Children) == 0 && len(counterpart.Children) > 0 {
		merged.Children = make([]*node.Node, len(counterpart.Children))
		for i, c := range counterpart.Children {
			merged.Children[i] = c.Clone()
		}
	}
	for _, a := range counterpart.Attrs {
		if !merged.HasExactAttr(a.Name) {
			merged.Attrs = append(merged.Attrs, a)
		}
	}
	return merged, true
}

// Children returns every child with this tag from the record, or from the ancestor
// when the record has none. Inherited children are marked like Child does.
func (m *Merger) Children(tag string) []*node.Node {
	own := m.record.ChildrenByTag(tag)
	if len(own) > 0 {
		out := make([]*node.Node, len(own))
		for i, c := range own {
			out[i] = c.Clone()
		}
		return out
	}
	if m.ancestor == nil {
		return nil
	}
	inherited := m.ancestor.ChildrenByTag(tag)
	if len(inherited) == 0 {
		return nil
	}
	out := make([]*node.Node, len(inherited))
	for i, c := range inherited {
		out[i] = m.borrow(c)
	}
	return out
}

// Attr returns a non-empty attribute from the record, else from the ancestor.
func (m *Merger) Attr(key string) (string, bool) {
	if v, ok := m.record.Attr(key); ok {
		return v, true
	}
	return m.ancestor.Attr(key)
}

// String is Attr with a default.
func (m *Merger) String(key, def string) string {
	if v, ok := m.Attr(key); ok {
		return v
	}
	return def
}

func (m *Merger) borrow(n *node.Node) *node.Node {
	out := n.Clone()
	out.Dir = m.ancestor.Dir
	return out
}
