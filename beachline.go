package voronoi

// ArcHandle identifies one arc (beach segment) on the beach line. It remains
// valid across insertions and deletions of other arcs, so the sweep
// coordinator can hold onto handles in its event bookkeeping.
type ArcHandle = slabHandle

type arcColor uint8

const (
	arcRed arcColor = iota
	arcBlack
)

type arcNode struct {
	color  arcColor
	parent ArcHandle
	left   ArcHandle
	right  ArcHandle
	site   Site
}

// beachLine is a red-black tree ordered left to right along the sweep
// directrix, where each node is one parabolic arc. It supports predecessor
// and successor queries (the arcs adjacent to a given one determine where new
// breakpoints and circle events arise) plus handle-stable insertion and
// deletion.
type beachLine struct {
	nodes *slab[arcNode]
	root  ArcHandle
}

func newBeachLine() *beachLine {
	return &beachLine{nodes: newSlab[arcNode](), root: nullHandle}
}

// init seeds the beach line with a single arc. It panics if the beach line is
// not empty, since re-initializing a running sweep is always a bug.
func (b *beachLine) init(site Site) ArcHandle {
	if !b.root.isNull() {
		panic("voronoi: tried initializing a non-empty beach line")
	}
	h := b.nodes.insert(arcNode{color: arcBlack, parent: nullHandle, left: nullHandle, right: nullHandle, site: site})
	b.root = h
	b.insertRepair(h)
	return b.root
}

// site returns the site associated with an arc.
func (b *beachLine) site(h ArcHandle) Site {
	return b.nodes.get(h).site
}

// insertAfter inserts a new arc immediately to the right of h in the
// in-order sequence.
func (b *beachLine) insertAfter(h ArcHandle, site Site) ArcHandle {
	if b.nodes.get(h).right.isNull() {
		ptr := b.nodes.insert(newArcNode(site, h))
		b.nodes.get(h).right = ptr
		b.insertRepair(ptr)
		return ptr
	}
	successor := b.successor(h)
	return b.insertBefore(successor, site)
}

// insertBefore inserts a new arc immediately to the left of h in the
// in-order sequence.
func (b *beachLine) insertBefore(h ArcHandle, site Site) ArcHandle {
	if b.nodes.get(h).left.isNull() {
		ptr := b.nodes.insert(newArcNode(site, h))
		b.nodes.get(h).left = ptr
		b.insertRepair(ptr)
		return ptr
	}
	predecessor := b.predecessor(h)
	return b.insertAfter(predecessor, site)
}

func newArcNode(site Site, parent ArcHandle) arcNode {
	return arcNode{color: arcRed, parent: parent, left: nullHandle, right: nullHandle, site: site}
}

// search walks the tree guided by compare, which must report where the
// target lies relative to the arc at h (negative: target is left of h, zero:
// h is the target, positive: target is right of h). It returns nullHandle if
// the tree is empty or compare never settles on zero.
func (b *beachLine) search(compare func(h ArcHandle) int) ArcHandle {
	current := b.root
	for !current.isNull() {
		switch c := compare(current); {
		case c < 0:
			current = b.nodes.get(current).left
		case c > 0:
			current = b.nodes.get(current).right
		default:
			return current
		}
	}
	return nullHandle
}

// delete removes the arc at h from the beach line and returns its site.
func (b *beachLine) delete(h ArcHandle) Site {
	if h.isNull() {
		panic("voronoi: tried deleting a null arc handle")
	}

	node := b.nodes.get(h)
	if !node.left.isNull() && !node.right.isNull() {
		predecessor := b.predecessor(h)
		b.swap(predecessor, h)
		return b.delete(h)
	}

	if node.left.isNull() && node.right.isNull() {
		parent := node.parent
		if !parent.isNull() {
			if node.color == arcBlack {
				b.deleteRepair(h)
			}
			parent = b.nodes.get(h).parent
			if b.nodes.get(parent).left == h {
				b.nodes.get(parent).left = nullHandle
			} else {
				b.nodes.get(parent).right = nullHandle
			}
		} else {
			b.root = nullHandle
		}
		return b.nodes.remove(h).site
	}

	// Exactly one child.
	child := node.right
	if node.left != nullHandle {
		child = node.left
	}
	parent := node.parent
	b.nodes.get(child).parent = parent
	if parent.isNull() {
		b.root = child
	} else if b.nodes.get(parent).left == h {
		b.nodes.get(parent).left = child
	} else {
		b.nodes.get(parent).right = child
	}

	removedColor := node.color
	removed := b.nodes.remove(h)
	if removedColor == arcRed {
		// Tree stays valid: removing a red node changes no black-height.
	} else if b.nodes.get(child).color == arcRed {
		b.nodes.get(child).color = arcBlack
	} else {
		panic("voronoi: impossible case deleting a black arc with a black child")
	}
	return removed.site
}

// predecessor returns the arc immediately to the left of h, or nullHandle if
// h is the leftmost arc.
func (b *beachLine) predecessor(h ArcHandle) ArcHandle {
	if h.isNull() {
		return nullHandle
	}
	if b.nodes.get(h).left.isNull() {
		parent := b.nodes.get(h).parent
		child := h
		if parent.isNull() {
			return nullHandle
		}
		for b.nodes.get(parent).left == child {
			if b.nodes.get(parent).parent.isNull() {
				return nullHandle
			}
			child = parent
			parent = b.nodes.get(parent).parent
		}
		return parent
	}
	child := b.nodes.get(h).left
	for !b.nodes.get(child).right.isNull() {
		child = b.nodes.get(child).right
	}
	return child
}

// successor returns the arc immediately to the right of h, or nullHandle if
// h is the rightmost arc.
func (b *beachLine) successor(h ArcHandle) ArcHandle {
	if h.isNull() {
		return nullHandle
	}
	if b.nodes.get(h).right.isNull() {
		parent := b.nodes.get(h).parent
		child := h
		if parent.isNull() {
			return nullHandle
		}
		for b.nodes.get(parent).right == child {
			if b.nodes.get(parent).parent.isNull() {
				return nullHandle
			}
			child = parent
			parent = b.nodes.get(parent).parent
		}
		return parent
	}
	child := b.nodes.get(h).right
	for !b.nodes.get(child).left.isNull() {
		child = b.nodes.get(child).left
	}
	return child
}

// swap exchanges the tree positions of old and new while keeping their
// handles pointing at the same position they exchange into, so outstanding
// handles elsewhere in the sweep (event bookkeeping) remain valid after a
// two-children delete replaces a node with its predecessor.
func (b *beachLine) swap(old, new ArcHandle) {
	oldNode := *b.nodes.get(old)
	newNode := *b.nodes.get(new)

	o, n := b.nodes.get(old), b.nodes.get(new)
	if newNode.parent == old {
		o.parent = new
	} else {
		o.parent = newNode.parent
	}
	if newNode.left == old {
		o.left = new
	} else {
		o.left = newNode.left
	}
	if newNode.right == old {
		o.right = new
	} else {
		o.right = newNode.right
	}
	o.color = newNode.color

	if oldNode.parent == new {
		n.parent = old
	} else {
		n.parent = oldNode.parent
	}
	if oldNode.left == new {
		n.left = old
	} else {
		n.left = oldNode.left
	}
	if oldNode.right == new {
		n.right = old
	} else {
		n.right = oldNode.right
	}
	n.color = oldNode.color

	if b.nodes.get(new).parent.isNull() {
		b.root = new
	} else {
		p := b.nodes.get(new).parent
		if b.nodes.get(p).right == old {
			b.nodes.get(p).right = new
		} else {
			b.nodes.get(p).left = new
		}
	}
	if l := b.nodes.get(new).left; !l.isNull() {
		b.nodes.get(l).parent = new
	}
	if r := b.nodes.get(new).right; !r.isNull() {
		b.nodes.get(r).parent = new
	}

	if b.nodes.get(old).parent.isNull() {
		b.root = old
	} else {
		p := b.nodes.get(old).parent
		if b.nodes.get(p).right == new {
			b.nodes.get(p).right = old
		} else {
			b.nodes.get(p).left = old
		}
	}
	if l := b.nodes.get(old).left; !l.isNull() {
		b.nodes.get(l).parent = old
	}
	if r := b.nodes.get(old).right; !r.isNull() {
		b.nodes.get(r).parent = old
	}
}

func (b *beachLine) insertRepair(at ArcHandle) {
	uncle := b.uncle(at)
	node := b.nodes.get(at)

	switch {
	case node.parent.isNull():
		node.color = arcBlack
	case b.nodes.get(node.parent).color == arcBlack:
		// Fine as-is.
	case !uncle.isNull() && b.nodes.get(uncle).color == arcRed:
		parent := node.parent
		grandparent := b.nodes.get(parent).parent
		b.nodes.get(uncle).color = arcBlack
		b.nodes.get(parent).color = arcBlack
		b.nodes.get(grandparent).color = arcRed
		b.insertRepair(grandparent)
	default:
		newAt := at
		parent := node.parent
		grandparent := b.nodes.get(parent).parent

		if at == b.nodes.get(parent).right && parent == b.nodes.get(grandparent).left {
			b.rotateLeft(parent)
			newAt = b.nodes.get(at).left
		} else if at == b.nodes.get(parent).left && parent == b.nodes.get(grandparent).right {
			b.rotateRight(parent)
			newAt = b.nodes.get(at).right
		}

		parent = b.nodes.get(newAt).parent
		grandparent = b.nodes.get(parent).parent
		if newAt == b.nodes.get(parent).left {
			b.rotateRight(grandparent)
		} else {
			b.rotateLeft(grandparent)
		}
		b.nodes.get(parent).color = arcBlack
		b.nodes.get(grandparent).color = arcRed
	}
}

func (b *beachLine) deleteRepair(at ArcHandle) {
	if b.nodes.get(at).color != arcBlack {
		panic("voronoi: deleteRepair called on a non-black arc")
	}
	if b.root == at {
		return
	}

	sibling := b.sibling(at)
	parent := b.nodes.get(at).parent
	isLeft := b.nodes.get(parent).left == at

	if sibling.isNull() {
		panic("voronoi: black arc has a null sibling")
	}

	if b.nodes.get(sibling).color == arcRed {
		b.nodes.get(sibling).color = arcBlack
		b.nodes.get(parent).color = arcRed
		if isLeft {
			b.rotateLeft(parent)
		} else {
			b.rotateRight(parent)
		}
		sibling = b.sibling(at)
		parent = b.nodes.get(at).parent
	} else if b.nodes.get(sibling).color == arcBlack && b.nodes.get(parent).color == arcBlack && b.hasBlackChildren(sibling) {
		b.nodes.get(sibling).color = arcRed
		b.deleteRepair(parent)
		return
	}

	if b.nodes.get(parent).color == arcRed && b.nodes.get(sibling).color == arcBlack && b.hasBlackChildren(sibling) {
		b.nodes.get(sibling).color = arcRed
		b.nodes.get(parent).color = arcBlack
		return
	}

	siblingNode := b.nodes.get(sibling)
	needsCase5 := false
	if isLeft {
		needsCase5 = !siblingNode.left.isNull() && b.nodes.get(siblingNode.left).color == arcRed &&
			(siblingNode.right.isNull() || b.nodes.get(siblingNode.right).color == arcBlack)
	} else {
		needsCase5 = !siblingNode.right.isNull() && b.nodes.get(siblingNode.right).color == arcRed &&
			(siblingNode.left.isNull() || b.nodes.get(siblingNode.left).color == arcBlack)
	}
	if b.nodes.get(sibling).color == arcBlack && needsCase5 {
		if isLeft {
			left := b.nodes.get(sibling).left
			b.nodes.get(sibling).color = arcRed
			b.nodes.get(left).color = arcBlack
			b.rotateRight(sibling)
		} else {
			right := b.nodes.get(sibling).right
			b.nodes.get(sibling).color = arcRed
			b.nodes.get(right).color = arcBlack
			b.rotateLeft(sibling)
		}
		sibling = b.sibling(at)
	}

	b.nodes.get(sibling).color = b.nodes.get(parent).color
	b.nodes.get(parent).color = arcBlack
	if isLeft {
		siblingRight := b.nodes.get(sibling).right
		if !siblingRight.isNull() {
			b.nodes.get(siblingRight).color = arcBlack
		}
		b.rotateLeft(parent)
	} else {
		siblingLeft := b.nodes.get(sibling).left
		if !siblingLeft.isNull() {
			b.nodes.get(siblingLeft).color = arcBlack
		}
		b.rotateRight(parent)
	}
}

func (b *beachLine) hasBlackChildren(at ArcHandle) bool {
	node := b.nodes.get(at)
	leftOK := node.left.isNull() || b.nodes.get(node.left).color == arcBlack
	rightOK := node.right.isNull() || b.nodes.get(node.right).color == arcBlack
	return leftOK && rightOK
}

func (b *beachLine) sibling(at ArcHandle) ArcHandle {
	parent := b.nodes.get(at).parent
	if parent.isNull() {
		return nullHandle
	}
	if b.nodes.get(parent).right == at {
		return b.nodes.get(parent).left
	}
	return b.nodes.get(parent).right
}

func (b *beachLine) uncle(at ArcHandle) ArcHandle {
	parent := b.nodes.get(at).parent
	if parent.isNull() {
		return nullHandle
	}
	return b.sibling(parent)
}

func (b *beachLine) rotateLeft(at ArcHandle) {
	node := b.nodes.get(at)
	parent := node.parent
	newParent := node.right

	node.right = b.nodes.get(newParent).left
	b.nodes.get(newParent).left = at
	b.nodes.get(at).parent = newParent
	b.nodes.get(newParent).parent = parent

	if r := b.nodes.get(at).right; !r.isNull() {
		b.nodes.get(r).parent = at
	}
	if !parent.isNull() {
		if b.nodes.get(parent).left == at {
			b.nodes.get(parent).left = newParent
		} else {
			b.nodes.get(parent).right = newParent
		}
	}
	if b.root == at {
		b.root = newParent
	}
}

func (b *beachLine) rotateRight(at ArcHandle) {
	node := b.nodes.get(at)
	parent := node.parent
	newParent := node.left

	node.left = b.nodes.get(newParent).right
	b.nodes.get(newParent).right = at
	b.nodes.get(at).parent = newParent
	b.nodes.get(newParent).parent = parent

	if l := b.nodes.get(at).left; !l.isNull() {
		b.nodes.get(l).parent = at
	}
	if !parent.isNull() {
		if b.nodes.get(parent).right == at {
			b.nodes.get(parent).right = newParent
		} else {
			b.nodes.get(parent).left = newParent
		}
	}
	if b.root == at {
		b.root = newParent
	}
}

// inOrder visits every arc's site in left-to-right order.
func (b *beachLine) inOrder(visit func(Site)) {
	var walk func(at ArcHandle)
	walk = func(at ArcHandle) {
		if at.isNull() {
			return
		}
		node := b.nodes.get(at)
		walk(node.left)
		visit(node.site)
		walk(node.right)
	}
	walk(b.root)
}
