package pqtree

import "errors"

// Sentinel errors returned by the pqtree package.
var (
	// ErrDuplicateKey indicates a leaf key that already exists in the tree.
	ErrDuplicateKey = errors.New("pqtree: duplicate leaf key")

	// ErrNoReduction indicates ReplaceFull was called without a preceding
	// successful Reduce.
	ErrNoReduction = errors.New("pqtree: no successful reduction to replace")

	// ErrUnknownIndicator indicates an indicator id that is not in the tree.
	ErrUnknownIndicator = errors.New("pqtree: unknown indicator")
)

// Kind distinguishes the three node types of a PQ-tree.
type Kind int

const (
	// LeafNode carries one element of the universal set, or an indicator.
	LeafNode Kind = iota

	// PNode allows its children in every order.
	PNode

	// QNode fixes the order of its children up to full reversal.
	QNode
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case LeafNode:
		return "Leaf"
	case PNode:
		return "P"
	case QNode:
		return "Q"
	default:
		return "Unknown"
	}
}

// Entry is one frontier position: either an element key or an indicator.
type Entry struct {
	// Key is the element key, or the indicator id when Indicator is set.
	Key int

	// Indicator marks a synthetic direction leaf.
	Indicator bool
}

// mark is the label a node carries during one reduction pass.
type mark int8

const (
	markEmpty mark = iota
	markFull
	markPartial
	markIgnored // indicator leaves: invisible to templates
)
