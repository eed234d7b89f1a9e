package tree

// Join merges t1, x and t2 into one tree, with every key of t1 below
// x.key and every key of t2 above it. x must be fully detached. The
// merge descends the taller side until the black heights meet, links x
// red at that point and rebalances on the way out.
func Join(t1, x, t2 *Node) *Node {
	if x.IsDummy() {
		panic( /* debug assertion */ "[tree] join through the sentinel")
	}
	if !x.left.IsDummy() || !x.right.IsDummy() {
		panic( /* debug assertion */ "[tree] join pivot still linked")
	}
	if !t1.IsEmpty() && maxNode(t1).key >= x.key {
		panic( /* debug assertion */ "[tree] join order violated on the left")
	}
	if !t2.IsEmpty() && minNode(t2).key <= x.key {
		panic( /* debug assertion */ "[tree] join order violated on the right")
	}
	h := joinRec(t1, x, t2)
	blacken(h)
	return h
}

func joinRec(t1, x, t2 *Node) *Node {
	if t1.Height() < t2.Height() {
		t2.left = joinRec(t1, x, t2.left)
		return balance(t2)
	}
	if t1.Height() > t2.Height() {
		t1.right = joinRec(t1.right, x, t2)
		return balance(t1)
	}
	// Equal black heights. Linking x red keeps the height difference
	// bounded by one for the rebalance above.
	x.color = Red
	x.left, x.right = t1, t2
	return balance(x)
}

// Split divides y along key into the tree of smaller keys, the node
// carrying key itself (detached) and the tree of larger keys.
// ErrKeyNotFound is returned when key is not a member of y.
func Split(y *Node, key int) (l, x, r *Node, err error) {
	if !Contains(y, key) {
		return dummy, dummy, dummy, ErrKeyNotFound
	}
	l, x, r = splitRec(y, key)
	return l, x, r, nil
}

func splitRec(h *Node, key int) (l, x, r *Node) {
	if h.key < key {
		l, x, r = splitRec(h.right, key)
		hl, _ := Detach(h)
		blacken(hl)
		return Join(hl, h, l), x, r
	}
	if h.key > key {
		l, x, r = splitRec(h.left, key)
		_, hr := Detach(h)
		blacken(hr)
		return l, x, Join(r, h, hr)
	}
	l, r = Detach(h)
	blacken(l)
	blacken(r)
	return l, h, r
}

// ExtractMin removes the smallest member of t and hands it out fully
// detached alongside the remaining tree. A boundary hanging off the
// minimum is relinked into the remaining tree, not lost.
func ExtractMin(t *Node) (mn, rest *Node, err error) {
	if t.IsEmpty() {
		return dummy, t, ErrEmptyTree
	}
	mn = minNode(t)
	rest, _ = RemoveMin(t)
	// mn may still point at links the remaining tree now owns.
	Detach(mn)
	return mn, rest, nil
}

// ExtractMax removes the largest member of t and hands it out fully
// detached alongside the remaining tree. A boundary hanging off the
// maximum is relinked into the remaining tree, not lost.
func ExtractMax(t *Node) (rest, mx *Node, err error) {
	if t.IsEmpty() {
		return t, dummy, ErrEmptyTree
	}
	mx = maxNode(t)
	rest, _ = RemoveMax(t)
	// mx may still point at links the remaining tree now owns.
	Detach(mx)
	return rest, mx, nil
}
