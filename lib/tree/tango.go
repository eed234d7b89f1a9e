package tree

// Build allocates the perfectly balanced reference tree over the key
// universe {1..n} and returns its root. Every node starts out as the
// root of its own single-node auxiliary tree, so all of them are
// External except the root. No later operation allocates key slots.
func Build(n int) (*Node, error) {
	if n <= 0 {
		return dummy, ErrBadUniverse
	}
	root := buildRec(1, n, 0)
	root.kind = Regular
	return root, nil
}

func buildRec(l, r, d int) *Node {
	if l > r {
		return dummy
	}
	m := (l + r + 1) / 2
	x := NewNode(m)
	x.color = Black
	x.kind = External
	x.depth = d
	x.minDepth = d
	x.maxDepth = d
	x.left = buildRec(l, m-1, d+1)
	x.right = buildRec(m+1, r, d+1)
	return x
}

// Predecessor returns the greatest key of h that is smaller than every
// key of reference depth at least d, or -1 when no such key exists.
// The second result is the turning key, the key of the depth >= d node
// at which the descent turned. Requires MaxDepth(h) >= d.
func Predecessor(h *Node, d int) (pred, turn int) {
	if h.MaxDepth() < d {
		panic( /* debug assertion */ "[tree] predecessor query below the deep fringe")
	}
	return predecessorRec(h, d)
}

func predecessorRec(h *Node, d int) (pred, turn int) {
	if !h.left.IsEmpty() && h.left.MaxDepth() >= d {
		return predecessorRec(h.left, d)
	}
	if h.Depth() >= d {
		if h.left.IsEmpty() {
			return -1, h.key
		}
		return maxNode(h.left).key, h.key
	}
	pred, turn = predecessorRec(h.right, d)
	if pred == -1 {
		pred = h.key
	}
	return pred, turn
}

// Successor mirrors Predecessor: the smallest key of h greater than
// every key of reference depth at least d, or -1, plus the turning key.
func Successor(h *Node, d int) (succ, turn int) {
	if h.MaxDepth() < d {
		panic( /* debug assertion */ "[tree] successor query below the deep fringe")
	}
	return successorRec(h, d)
}

func successorRec(h *Node, d int) (succ, turn int) {
	if !h.right.IsEmpty() && h.right.MaxDepth() >= d {
		return successorRec(h.right, d)
	}
	if h.Depth() >= d {
		if h.right.IsEmpty() {
			return -1, h.key
		}
		return minNode(h.right).key, h.key
	}
	succ, turn = successorRec(h.left, d)
	if succ == -1 {
		succ = h.key
	}
	return succ, turn
}

// SearchTango looks key up in the preferred-path forest rooted at root.
// Every time the walk falls off the preferred path onto an External
// boundary, that boundary's path is spliced in and the walk restarts.
// The new root, the number of splices performed and ErrKeyNotFound for
// keys outside the universe are returned. Each onSplice callback runs
// after every splice with the intermediate root.
func SearchTango(root *Node, key int, onSplice ...func(*Node)) (*Node, int, error) {
	splices := 0
	q, p := Search(root, key)
	for q.IsExternal() {
		root = tango(root, q, p)
		splices++
		for _, cb := range onSplice {
			cb(root)
		}
		q, p = Search(root, key)
	}
	if q.IsDummy() {
		return root, splices, ErrKeyNotFound
	}
	return root, splices, nil
}

// tango splices the auxiliary tree q into its containing tree h. p is
// the member of h holding q as a child. The part of h's preferred path
// lying below q's top is cut out and evicted as a new External
// boundary, and q's path is merged in its place.
func tango(h, q, p *Node) *Node {
	if !q.IsExternal() {
		panic( /* debug assertion */ "[tree] splice target is not a boundary")
	}
	if p.left != q && p.right != q {
		panic( /* debug assertion */ "[tree] splice parent does not hold the boundary")
	}

	// The extremum of q extracted below is its min when q hangs left of
	// the cut (or, with a residue, when the turn is not below q), else
	// its max. Stash that extremum's outer boundary where q itself used
	// to hang, so the upcoming split folds it into the surrounding tree.
	// q is marked Regular only for the duration of the walk.
	left := p.left == q
	fromMin := left
	var l, r, turn int
	if h.maxDepth >= q.minDepth {
		l, turn = Predecessor(h, q.minDepth)
		r, _ = Successor(h, q.minDepth)
		fromMin = turn >= q.key
	}
	q.kind = Regular
	var stash *Node
	if fromMin {
		m := minNode(q)
		stash, m.left = m.left, dummy
	} else {
		m := maxNode(q)
		stash, m.right = m.right, dummy
	}
	if left {
		p.left = stash
	} else {
		p.right = stash
	}
	q.kind = External

	// q is still marked External here, so its stored aggregates must be
	// read directly.
	if h.maxDepth < q.minDepth {
		// The cut falls below the whole path, nothing to evict.
		tl, pp, tg, err := Split(h, p.key)
		if err != nil {
			panic( /* debug assertion */ "[tree] splice parent missing from its tree")
		}
		q.kind = Regular
		if left {
			tr := Join(q, pp, tg)
			x, hh, _ := ExtractMin(tr)
			return Join(tl, x, hh)
		}
		tr := Join(tl, pp, q)
		hh, x, _ := ExtractMax(tr)
		return Join(hh, x, tg)
	}

	var (
		tl, xl = dummy, dummy
		tg, xr = dummy, dummy
		taux   = h
		err    error
	)
	if l != -1 {
		tl, xl, taux, err = Split(h, l)
		if err != nil {
			panic( /* debug assertion */ "[tree] predecessor boundary missing from its tree")
		}
	}
	tm := taux
	if r != -1 {
		tm, xr, tg, err = Split(taux, r)
		if err != nil {
			panic( /* debug assertion */ "[tree] successor boundary missing from its tree")
		}
	}

	// tm is exactly the evicted part of the old path.
	tm.kind = External
	q.kind = Regular

	if turn < q.key {
		tp := tm
		if !xl.IsDummy() {
			tp = Join(tl, xl, tm)
		}
		tpp := Join(tp, xr, q)
		hh, x, _ := ExtractMax(tpp)
		return Join(hh, x, tg)
	}
	tp := tm
	if !xr.IsDummy() {
		tp = Join(tm, xr, tg)
	}
	tpp := Join(q, xl, tp)
	x, hh, _ := ExtractMin(tpp)
	return Join(tl, x, hh)
}
