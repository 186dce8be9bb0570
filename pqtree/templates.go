// This file holds the reduction machinery: the bottom-up labelling pass and
// the template transformations applied top-down from the pertinent root.
// Partial nodes are rewritten into a normal form — a Q-node whose visible
// children are a block of empties followed by a block of fulls — which every
// template above can splice without further case analysis. Indicator leaves
// are invisible to all of it: they carry no mark, block no template and ride
// along wherever their siblings go.
package pqtree

import "slices"

func clearMarks(n *node) {
	n.mark = markEmpty
	n.fullLeaves = 0
	for _, c := range n.children {
		clearMarks(c)
	}
}

// bubble labels the subtree bottom-up: full when every visible child is
// full, empty when none is full or partial, partial otherwise. fullLeaves
// counts the selected leaves per subtree for pertinent-root detection.
func bubble(n *node) {
	if n.kind == LeafNode {
		if n.indicator {
			n.mark = markIgnored

			return
		}
		if n.mark == markFull {
			n.fullLeaves = 1
		}

		return
	}

	fullCh, visible := 0, 0
	touched := false
	for _, c := range n.children {
		bubble(c)
		n.fullLeaves += c.fullLeaves
		if c.mark == markIgnored {
			continue
		}
		visible++
		if c.mark == markFull {
			fullCh++
		}
		if c.mark != markEmpty {
			touched = true
		}
	}

	switch {
	case visible == 0:
		n.mark = markIgnored
	case fullCh == visible:
		n.mark = markFull
	case !touched:
		n.mark = markEmpty
	default:
		n.mark = markPartial
	}
}

// reduceRoot applies the pertinent-root templates, the only place where the
// full region may sit in the middle rather than at one end.
func (t *Tree) reduceRoot(pr *node) bool {
	if pr.mark != markPartial {
		return true
	}
	if pr.kind == PNode {
		return reduceRootP(pr)
	}

	return reduceRootQ(pr)
}

// reduceInner normalizes a non-root node. Full and empty nodes pass through;
// a partial node is rewritten into normal form and the caller must store the
// returned replacement in its child slot.
func reduceInner(n *node) (*node, bool) {
	if n.mark != markPartial {
		return n, true
	}
	if n.kind == PNode {
		return reducePartialP(n)
	}

	return reducePartialQ(n)
}

// reducePartialP rewrites a partial non-root P-node: empties grouped on the
// left, fulls grouped on the right, at most one partial child spliced in
// between, all under a fresh Q-node.
func reducePartialP(n *node) (*node, bool) {
	var empties, fulls, indicators []*node
	var partial *node
	for _, c := range n.children {
		switch c.mark {
		case markEmpty:
			empties = append(empties, c)
		case markFull:
			fulls = append(fulls, c)
		case markIgnored:
			indicators = append(indicators, c)
		default:
			if partial != nil {
				return nil, false
			}
			nc, ok := reduceInner(c)
			if !ok {
				return nil, false
			}
			partial = nc
		}
	}

	var q []*node
	if e := wrap(empties, markEmpty); e != nil {
		q = append(q, e)
	}
	if partial != nil {
		orientEmptyFirst(partial)
		q = append(q, partial.children...)
	}
	if f := wrap(fulls, markFull); f != nil {
		q = append(q, f)
	}
	q = append(q, indicators...)

	nn := &node{kind: QNode, mark: markPartial, children: q, parent: n.parent}
	adopt(nn, q)

	return nn, true
}

// reducePartialQ rewrites a partial non-root Q-node in place: the visible
// children must read empties-then-fulls in one of the two directions, with
// at most one partial child spliced at the boundary.
func reducePartialQ(n *node) (*node, bool) {
	partials := 0
	for i, c := range n.children {
		if c.mark != markPartial {
			continue
		}
		partials++
		nc, ok := reduceInner(c)
		if !ok {
			return nil, false
		}
		nc.parent = n
		n.children[i] = nc
	}
	if partials > 1 {
		return nil, false
	}

	out, ok := spliceOneSided(n.children)
	if !ok {
		slices.Reverse(n.children)
		out, ok = spliceOneSided(n.children)
		if !ok {
			return nil, false
		}
	}
	n.children = out
	adopt(n, out)

	return n, true
}

// spliceOneSided matches the non-root Q pattern: empties, then at most one
// partial child (spliced empty-side first), then fulls.
func spliceOneSided(children []*node) ([]*node, bool) {
	out := make([]*node, 0, len(children)+2)
	inFulls := false
	for _, c := range children {
		switch c.mark {
		case markIgnored:
			out = append(out, c)
		case markEmpty:
			if inFulls {
				return nil, false
			}
			out = append(out, c)
		case markFull:
			inFulls = true
			out = append(out, c)
		case markPartial:
			if inFulls {
				return nil, false
			}
			orientEmptyFirst(c)
			out = append(out, c.children...)
			inFulls = true
		}
	}

	return out, true
}

// reduceRootP gathers all full material of a partial root P-node into one
// consecutive region: fulls grouped, up to two partial children spliced so
// their full sides point inward, everything held by a central Q-node.
func reduceRootP(pr *node) bool {
	var empties, fulls, indicators, partials []*node
	for _, c := range pr.children {
		switch c.mark {
		case markEmpty:
			empties = append(empties, c)
		case markFull:
			fulls = append(fulls, c)
		case markIgnored:
			indicators = append(indicators, c)
		default:
			nc, ok := reduceInner(c)
			if !ok {
				return false
			}
			partials = append(partials, nc)
		}
	}
	if len(partials) > 2 {
		return false
	}

	if len(partials) == 0 {
		kids := append(empties, indicators...)
		if f := wrap(fulls, markFull); f != nil {
			kids = append(kids, f)
		}
		pr.children = kids
		adopt(pr, kids)

		return true
	}

	var q []*node
	orientEmptyFirst(partials[0])
	q = append(q, partials[0].children...)
	if f := wrap(fulls, markFull); f != nil {
		q = append(q, f)
	}
	if len(partials) == 2 {
		orientFullFirst(partials[1])
		q = append(q, partials[1].children...)
	}
	central := &node{kind: QNode, mark: markPartial, children: q}
	adopt(central, q)

	kids := append(empties, indicators...)
	kids = append(kids, central)
	pr.children = kids
	adopt(pr, kids)

	return true
}

// reduceRootQ matches the root Q pattern: empties, fulls, empties, with up
// to two partial children spliced at the two block boundaries.
func reduceRootQ(pr *node) bool {
	partials := 0
	for i, c := range pr.children {
		if c.mark != markPartial {
			continue
		}
		partials++
		nc, ok := reduceInner(c)
		if !ok {
			return false
		}
		nc.parent = pr
		pr.children[i] = nc
	}
	if partials > 2 {
		return false
	}

	out := make([]*node, 0, len(pr.children)+4)
	zone := 0 // 0 leading empties, 1 fulls, 2 trailing empties
	for _, c := range pr.children {
		switch c.mark {
		case markIgnored:
			out = append(out, c)
		case markEmpty:
			if zone == 1 {
				zone = 2
			}
			out = append(out, c)
		case markFull:
			if zone == 2 {
				return false
			}
			zone = 1
			out = append(out, c)
		case markPartial:
			switch zone {
			case 0:
				orientEmptyFirst(c)
				out = append(out, c.children...)
				zone = 1
			case 1:
				orientFullFirst(c)
				out = append(out, c.children...)
				zone = 2
			default:
				return false
			}
		}
	}
	pr.children = out
	adopt(pr, out)

	return true
}

// wrap groups nodes under a fresh P-node; singletons pass through.
func wrap(group []*node, m mark) *node {
	switch len(group) {
	case 0:
		return nil
	case 1:
		return group[0]
	default:
		n := &node{kind: PNode, mark: m, children: group}
		adopt(n, group)

		return n
	}
}

func orientEmptyFirst(z *node) {
	if firstVisible(z) == markFull {
		slices.Reverse(z.children)
	}
}

func orientFullFirst(z *node) {
	if firstVisible(z) == markEmpty {
		slices.Reverse(z.children)
	}
}

func firstVisible(z *node) mark {
	for _, c := range z.children {
		if c.mark != markIgnored {
			return c.mark
		}
	}

	return markIgnored
}

// collectFull returns the maximal full nodes below (or at) the pertinent
// root in frontier order. After a successful reduction they form one
// consecutive run under a single parent.
func collectFull(n *node) []*node {
	if n.mark == markFull {
		return []*node{n}
	}
	var out []*node
	var walk func(*node)
	walk = func(m *node) {
		for _, c := range m.children {
			switch c.mark {
			case markFull:
				out = append(out, c)
			case markPartial:
				walk(c)
			}
		}
	}
	walk(n)

	return out
}
