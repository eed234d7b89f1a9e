package tree

// Left-leaning red-black tree over the node model. Operations are
// package functions returning the new subtree root so that split and
// join can thread roots through recursion without a container type.
//
// Shape invariants maintained by every public operation:
//  1. no red right link,
//  2. no red node with a red left child,
//  3. every root-leaf path carries the same number of black links,
//  4. the root link is black.

// rotateLeft lifts the red right child of h.
//
//	  h                x
//	 / \      =>      / \
//	a   x            h   c
//	   / \          / \
//	  b   c        a   b
func rotateLeft(h *Node) *Node {
	if !h.right.IsRed() {
		panic( /* debug assertion */ "[tree] rotate-left requires a red right link")
	}
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = Red
	update(h)
	update(x)
	return x
}

// rotateRight lifts the red left child of h, the mirror of rotateLeft.
func rotateRight(h *Node) *Node {
	if !h.left.IsRed() {
		panic( /* debug assertion */ "[tree] rotate-right requires a red left link")
	}
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = Red
	update(h)
	update(x)
	return x
}

// flipColors inverts the colors of h and both children. Callers must
// guarantee h and its children form a 2-color configuration.
func flipColors(h *Node) {
	if h.IsEmpty() || h.left.IsEmpty() || h.right.IsEmpty() {
		panic( /* debug assertion */ "[tree] color flip on an empty node")
	}
	if h.left.color != h.right.color || h.left.color == h.color {
		panic( /* debug assertion */ "[tree] color flip without opposing colors")
	}
	h.color ^= 1
	h.left.color ^= 1
	h.right.color ^= 1
}

// balance restores the left-leaning invariants at h after a mutation in
// one of its subtrees.
func balance(h *Node) *Node {
	if h.right.IsRed() && !h.left.IsRed() {
		h = rotateLeft(h)
	}
	if h.left.IsRed() && h.left.left.IsRed() {
		h = rotateRight(h)
	}
	if h.left.IsRed() && h.right.IsRed() {
		flipColors(h)
	}
	update(h)
	return h
}

// moveRedLeft pushes a red link into h.left on the way down a removal,
// so the recursion never descends into a 2-node.
func moveRedLeft(h *Node) *Node {
	if !h.IsRed() || h.left.IsRed() || h.left.left.IsRed() {
		panic( /* debug assertion */ "[tree] move-red-left precondition violated")
	}
	flipColors(h)
	if h.right.left.IsRed() {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// moveRedRight is the mirror of moveRedLeft for right-side descents.
func moveRedRight(h *Node) *Node {
	if !h.IsRed() || h.right.IsRed() || h.right.left.IsRed() {
		panic( /* debug assertion */ "[tree] move-red-right precondition violated")
	}
	flipColors(h)
	if h.left.left.IsRed() {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

// Insert adds key to h and returns the new root. Inserting a key that
// is already present leaves the tree unchanged.
func Insert(h *Node, key int) *Node {
	h = insertRec(h, key)
	blacken(h)
	return h
}

func insertRec(h *Node, key int) *Node {
	if h.IsEmpty() {
		return NewNode(key)
	}
	switch {
	case key < h.key:
		h.left = insertRec(h.left, key)
	case key > h.key:
		h.right = insertRec(h.right, key)
	default:
		return h
	}
	return balance(h)
}

// Search walks h for key within its auxiliary tree. Both results are
// the sentinel when the key is absent; when the walk falls off an
// External boundary, that boundary node is returned so tango callers
// can splice it in.
func Search(h *Node, key int) (node, parent *Node) {
	return searchRec(h, dummy, key)
}

func searchRec(h, p *Node, key int) (*Node, *Node) {
	if h.IsDummy() {
		return dummy, dummy
	}
	if h.IsExternal() {
		return h, p
	}
	switch {
	case key < h.key:
		return searchRec(h.left, h, key)
	case key > h.key:
		return searchRec(h.right, h, key)
	}
	return h, p
}

// Contains reports whether key is a Regular member of h's auxiliary tree.
func Contains(h *Node, key int) bool {
	n, _ := Search(h, key)
	return !n.IsEmpty() && n.key == key
}

func minNode(t *Node) *Node {
	for !t.left.IsEmpty() {
		t = t.left
	}
	return t
}

func maxNode(t *Node) *Node {
	for !t.right.IsEmpty() {
		t = t.right
	}
	return t
}

// Min returns the smallest member of t, ErrEmptyTree when t is empty.
func Min(t *Node) (*Node, error) {
	if t.IsEmpty() {
		return dummy, ErrEmptyTree
	}
	return minNode(t), nil
}

// Max returns the largest member of t, ErrEmptyTree when t is empty.
func Max(t *Node) (*Node, error) {
	if t.IsEmpty() {
		return dummy, ErrEmptyTree
	}
	return maxNode(t), nil
}

// RemoveMin unlinks the smallest member of t and returns the new root.
func RemoveMin(t *Node) (*Node, error) {
	if t.IsEmpty() {
		return t, ErrEmptyTree
	}
	if !t.left.IsRed() && !t.right.IsRed() {
		t.color = Red
	}
	t = removeMinRec(t)
	blacken(t)
	return t, nil
}

func removeMinRec(h *Node) *Node {
	if h.left.IsEmpty() {
		// h.right may hold a boundary, hand it back to the parent.
		return h.right
	}
	if !h.left.IsRed() && !h.left.left.IsRed() {
		h = moveRedLeft(h)
	}
	h.left = removeMinRec(h.left)
	return balance(h)
}

// RemoveMax unlinks the largest member of t and returns the new root.
func RemoveMax(t *Node) (*Node, error) {
	if t.IsEmpty() {
		return t, ErrEmptyTree
	}
	if !t.left.IsRed() && !t.right.IsRed() {
		t.color = Red
	}
	t = removeMaxRec(t)
	blacken(t)
	return t, nil
}

func removeMaxRec(h *Node) *Node {
	if h.left.IsRed() {
		h = rotateRight(h)
	}
	if h.right.IsEmpty() {
		// h.left may hold a boundary, hand it back to the parent.
		return h.left
	}
	if !h.right.IsRed() && !h.right.left.IsRed() {
		h = moveRedRight(h)
	}
	h.right = removeMaxRec(h.right)
	return balance(h)
}

// Remove deletes key from t and returns the new root. Removing an
// absent key returns t unchanged.
func Remove(t *Node, key int) *Node {
	if !Contains(t, key) {
		return t
	}
	if !t.left.IsRed() && !t.right.IsRed() {
		t.color = Red
	}
	t = removeRec(t, key)
	blacken(t)
	return t
}

func removeRec(h *Node, key int) *Node {
	if key < h.key {
		if !h.left.IsRed() && !h.left.left.IsRed() {
			h = moveRedLeft(h)
		}
		h.left = removeRec(h.left, key)
	} else {
		if h.left.IsRed() {
			h = rotateRight(h)
		}
		if key == h.key && h.right.IsEmpty() {
			return h.right
		}
		if !h.right.IsRed() && !h.right.left.IsRed() {
			h = moveRedRight(h)
		}
		if key == h.key {
			h.key = minNode(h.right).key
			h.right = removeMinRec(h.right)
		} else {
			h.right = removeRec(h.right, key)
		}
	}
	return balance(h)
}
