package ast

import (
	"errors"
	"fmt"
)

// MaxChildren is the grammar's fan-out bound for a single node.
const MaxChildren = 5

// ErrTooManyChildren is returned when a node would exceed the fan-out bound.
var ErrTooManyChildren = errors.New("too many children")

// Builder assembles a tree bottom-up and enforces the fan-out bound. The
// bound is a construction-time check only; the analyzer accepts any slice.
type Builder struct {
	Limit int // 0 means MaxChildren
}

func (b Builder) limit() int {
	if b.Limit <= 0 {
		return MaxChildren
	}
	return b.Limit
}

// New builds a node, dropping nil children the way the parser's
// add-child helper ignores null pointers.
func (b Builder) New(kind Kind, value string, line int, children ...*Node) (*Node, error) {
	n := &Node{Kind: kind, Value: value, Line: line}
	for _, c := range children {
		if err := b.Add(n, c); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Add appends child to parent. Nil parent or child is a no-op.
func (b Builder) Add(parent, child *Node) error {
	if parent == nil || child == nil {
		return nil
	}
	if len(parent.Children) >= b.limit() {
		return fmt.Errorf("%s at line %d: %w (limit %d)", parent.Name(), parent.Line, ErrTooManyChildren, b.limit())
	}
	parent.Children = append(parent.Children, child)
	return nil
}

// New builds a node with the default bound and panics if it is exceeded.
// Intended for literal trees in tests and fixtures.
func New(kind Kind, value string, line int, children ...*Node) *Node {
	n, err := Builder{}.New(kind, value, line, children...)
	if err != nil {
		panic(err)
	}
	return n
}

// Other builds a KindOther node that keeps its parser label.
func Other(label, value string, line int, children ...*Node) *Node {
	n := New(KindOther, value, line, children...)
	n.Label = label
	return n
}
