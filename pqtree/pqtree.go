package pqtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ArsMasiuk/qvge-sub017/contract"
)

// node is one PQ-tree node. Leaves carry an element key or an indicator id;
// internal nodes carry their children in frontier order.
type node struct {
	kind      Kind
	key       int
	indicator bool
	parent    *node
	children  []*node

	// Per-reduction labelling, valid only during and right after Reduce.
	mark       mark
	fullLeaves int
}

// Tree is a PQ-tree over a universal set of integer-keyed leaves. It
// represents exactly the leaf orderings consistent with every constraint
// applied so far; Reduce narrows that set, ReplaceFull swaps the constrained
// region for fresh leaves (the vertex-addition step), and Frontier reads one
// representative ordering off the tree.
//
// A Tree is not safe for concurrent use. After Reduce returns false the tree
// is in an undefined state and must be discarded.
type Tree struct {
	root       *node
	leaf       map[int]*node // element key -> leaf
	indicators map[int]*node // indicator id -> leaf

	// pertinent is the pertinent root of the last successful Reduce, nil
	// once the tree has been mutated or the reduction was trivial.
	pertinent *node
}

// New creates a tree representing every ordering of the given element keys.
func New(keys []int) (*Tree, error) {
	t := &Tree{
		leaf:       make(map[int]*node, len(keys)),
		indicators: make(map[int]*node),
	}
	leaves := make([]*node, 0, len(keys))
	for _, k := range keys {
		if _, dup := t.leaf[k]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateKey, k)
		}
		l := &node{kind: LeafNode, key: k}
		t.leaf[k] = l
		leaves = append(leaves, l)
	}

	switch len(leaves) {
	case 0:
	case 1:
		t.root = leaves[0]
	default:
		t.root = &node{kind: PNode, children: leaves}
		adopt(t.root, leaves)
	}

	return t, nil
}

// Size returns the number of element leaves (indicators excluded).
func (t *Tree) Size() int { return len(t.leaf) }

// Reduce applies the constraint that the given element keys must be
// consecutive in every ordering the tree represents. It reports whether the
// constraint is consistent with the constraints applied so far; on false the
// tree is no longer usable.
//
// Keys outside the universal set are a caller bug (contract violation).
func (t *Tree) Reduce(keys []int) bool {
	t.pertinent = nil
	if t.root == nil || len(keys) == 0 {
		return true
	}

	// 1) Label the selected leaves full, everything else empty.
	clearMarks(t.root)
	total := 0
	for _, k := range keys {
		l, ok := t.leaf[k]
		contract.Assertf(ok, "pqtree: Reduce key %d not in universal set", k)
		if ok && l.mark != markFull {
			l.mark = markFull
			total++
		}
	}
	if total == 0 {
		return true
	}

	// 2) Bottom-up labelling, then locate the pertinent root: the deepest
	//    node whose subtree holds every full leaf.
	bubble(t.root)
	pr := t.root
	for pr.kind != LeafNode {
		var next *node
		for _, c := range pr.children {
			if c.fullLeaves == total {
				next = c

				break
			}
		}
		if next == nil {
			break
		}
		pr = next
	}

	// 3) Top-down template matching from the pertinent root.
	if !t.reduceRoot(pr) {
		return false
	}
	t.pertinent = pr

	return true
}

// ReplaceFull replaces the region constrained by the last successful Reduce
// with fresh element leaves, optionally followed by indicator leaves. With
// no keys and no indicators the region is deleted. Indicator leaves found
// inside the old region survive next to the replacement.
func (t *Tree) ReplaceFull(keys []int, indicatorIDs ...int) error {
	if t.pertinent == nil {
		return ErrNoReduction
	}

	// 1) Validate, then build the replacement group.
	seen := make(map[int]bool, len(keys))
	for _, k := range keys {
		if _, dup := t.leaf[k]; dup || seen[k] {
			return fmt.Errorf("%w: %d", ErrDuplicateKey, k)
		}
		seen[k] = true
	}
	for _, id := range indicatorIDs {
		if _, dup := t.indicators[id]; dup {
			return fmt.Errorf("%w: indicator %d", ErrDuplicateKey, id)
		}
	}
	kids := make([]*node, 0, len(keys)+len(indicatorIDs))
	for _, k := range keys {
		l := &node{kind: LeafNode, key: k}
		t.leaf[k] = l
		kids = append(kids, l)
	}
	for _, id := range indicatorIDs {
		l := &node{kind: LeafNode, key: id, indicator: true}
		t.indicators[id] = l
		kids = append(kids, l)
	}

	// 2) Collect the maximal full nodes; the templates left them as a
	//    consecutive run under a single parent.
	fulls := collectFull(t.pertinent)
	t.pertinent = nil
	for _, f := range fulls {
		t.dropElementLeaves(f)
		kids = append(kids, harvestIndicators(f)...)
	}

	var repl *node
	switch len(kids) {
	case 0:
	case 1:
		repl = kids[0]
	default:
		repl = &node{kind: PNode, children: kids}
		adopt(repl, kids)
	}

	// 3) Splice the replacement where the run was.
	parent := fulls[0].parent
	if parent == nil {
		t.root = repl
		if repl != nil {
			repl.parent = nil
		}

		return nil
	}
	at := -1
	keep := parent.children[:0]
	remove := make(map[*node]bool, len(fulls))
	for _, f := range fulls {
		remove[f] = true
	}
	for _, c := range parent.children {
		if remove[c] {
			if at < 0 {
				at = len(keep)
			}

			continue
		}
		keep = append(keep, c)
	}
	parent.children = keep
	if repl != nil {
		parent.children = append(parent.children, nil)
		copy(parent.children[at+1:], parent.children[at:])
		parent.children[at] = repl
		repl.parent = parent
	}
	t.cleanup(parent)

	return nil
}

// RemoveIndicator tears one indicator leaf out of the tree. This is the only
// way indicators ever leave it.
func (t *Tree) RemoveIndicator(id int) error {
	l, ok := t.indicators[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownIndicator, id)
	}
	delete(t.indicators, id)
	t.pertinent = nil

	parent := l.parent
	if parent == nil {
		t.root = nil

		return nil
	}
	keep := parent.children[:0]
	for _, c := range parent.children {
		if c != l {
			keep = append(keep, c)
		}
	}
	parent.children = keep
	t.cleanup(parent)

	return nil
}

// Frontier returns the element keys in the tree's current left-to-right
// leaf order, one representative of the orderings the tree stands for.
func (t *Tree) Frontier() []int {
	out := make([]int, 0, len(t.leaf))
	walkLeaves(t.root, func(l *node) {
		if !l.indicator {
			out = append(out, l.key)
		}
	})

	return out
}

// FrontierEntries returns the full frontier including indicator leaves.
func (t *Tree) FrontierEntries() []Entry {
	out := make([]Entry, 0, len(t.leaf)+len(t.indicators))
	walkLeaves(t.root, func(l *node) {
		out = append(out, Entry{Key: l.key, Indicator: l.indicator})
	})

	return out
}

// String renders the tree: P-nodes as {...}, Q-nodes as [...], indicator
// leaves as <id>.
func (t *Tree) String() string {
	if t.root == nil {
		return "(empty)"
	}
	var b strings.Builder
	writeNode(&b, t.root)

	return b.String()
}

func writeNode(b *strings.Builder, n *node) {
	switch n.kind {
	case LeafNode:
		if n.indicator {
			b.WriteByte('<')
			b.WriteString(strconv.Itoa(n.key))
			b.WriteByte('>')

			return
		}
		b.WriteString(strconv.Itoa(n.key))
	case PNode, QNode:
		open, close := byte('{'), byte('}')
		if n.kind == QNode {
			open, close = '[', ']'
		}
		b.WriteByte(open)
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeNode(b, c)
		}
		b.WriteByte(close)
	}
}

// cleanup removes degenerate internal nodes (zero or one child) on the path
// from n to the root.
func (t *Tree) cleanup(n *node) {
	for n != nil && n.kind != LeafNode {
		parent := n.parent
		switch len(n.children) {
		case 0:
			if parent == nil {
				t.root = nil

				return
			}
			keep := parent.children[:0]
			for _, c := range parent.children {
				if c != n {
					keep = append(keep, c)
				}
			}
			parent.children = keep
		case 1:
			only := n.children[0]
			if parent == nil {
				t.root = only
				only.parent = nil

				return
			}
			for i, c := range parent.children {
				if c == n {
					parent.children[i] = only
					only.parent = parent

					break
				}
			}
		default:
			return
		}
		n = parent
	}
}

// dropElementLeaves forgets every element leaf in n's subtree.
func (t *Tree) dropElementLeaves(n *node) {
	walkLeaves(n, func(l *node) {
		if !l.indicator {
			delete(t.leaf, l.key)
		}
	})
}

// harvestIndicators detaches and returns the indicator leaves of n's
// subtree, in frontier order.
func harvestIndicators(n *node) []*node {
	var out []*node
	walkLeaves(n, func(l *node) {
		if l.indicator {
			l.parent = nil
			out = append(out, l)
		}
	})

	return out
}

func walkLeaves(n *node, fn func(*node)) {
	if n == nil {
		return
	}
	if n.kind == LeafNode {
		fn(n)

		return
	}
	for _, c := range n.children {
		walkLeaves(c, fn)
	}
}

func adopt(p *node, children []*node) {
	for _, c := range children {
		c.parent = p
	}
}
