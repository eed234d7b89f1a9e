package tree

import "math"

// depthInf stands in for the unbounded depth defaults. An empty subtree
// reports depth -inf, minDepth +inf and maxDepth -inf so that min/max
// rollups absorb it without special cases.
const depthInf = math.MaxInt32

// Node is a key slot in the preferred-path forest. Child links are never
// nil; absent children point at the shared dummy sentinel. The color is
// the color of the incoming link. size, height (black height), minDepth
// and maxDepth aggregate over the containing auxiliary tree only, so an
// External child contributes as an empty subtree.
type Node struct {
	key         int
	left, right *Node
	color       Color
	kind        NodeType
	size        int
	height      int
	depth       int
	minDepth    int
	maxDepth    int
}

// dummy is the process wide sentinel. It is allocated once and never
// mutated. Identity comparison against it is the only null test.
var dummy = func() *Node {
	d := &Node{
		key:      0,
		color:    Black,
		kind:     Dummy,
		size:     0,
		height:   -1,
		depth:    -depthInf,
		minDepth: depthInf,
		maxDepth: -depthInf,
	}
	d.left, d.right = d, d
	return d
}()

// DummyNode exposes the sentinel for callers that need to seed links.
func DummyNode() *Node { return dummy }

// NewNode allocates a red Regular leaf with both children pointing at
// the sentinel. The reference depth is unset until the builder fills it.
func NewNode(key int) *Node {
	return &Node{
		key:      key,
		left:     dummy,
		right:    dummy,
		color:    Red,
		kind:     Regular,
		size:     1,
		height:   0,
		depth:    depthInf,
		minDepth: depthInf,
		maxDepth: -depthInf,
	}
}

func (x *Node) Key() int       { return x.key }
func (x *Node) Kind() NodeType { return x.kind }
func (x *Node) Color() Color   { return x.color }
func (x *Node) Left() *Node    { return x.left }
func (x *Node) Right() *Node   { return x.right }

func (x *Node) IsDummy() bool {
	return x == nil || x == dummy
}

func (x *Node) IsExternal() bool {
	return !x.IsDummy() && x.kind == External
}

// IsEmpty reports whether x is empty from the viewpoint of a containing
// auxiliary tree. External roots are boundaries, not members.
func (x *Node) IsEmpty() bool {
	return x.IsDummy() || x.kind == External
}

func (x *Node) Size() int {
	if x.IsEmpty() {
		return 0
	}
	return x.size
}

// Height is the black height of the subtree within its auxiliary tree.
func (x *Node) Height() int {
	if x.IsEmpty() {
		return -1
	}
	return x.height
}

func (x *Node) Depth() int {
	if x.IsEmpty() {
		return -depthInf
	}
	return x.depth
}

func (x *Node) MinDepth() int {
	if x.IsEmpty() {
		return depthInf
	}
	return x.minDepth
}

func (x *Node) MaxDepth() int {
	if x.IsEmpty() {
		return -depthInf
	}
	return x.maxDepth
}

func (x *Node) IsRed() bool {
	return !x.IsEmpty() && x.color == Red
}

func (x *Node) updateSize() {
	x.size = x.left.Size() + x.right.Size() + 1
}

func (x *Node) updateHeight() {
	lh := x.left.Height()
	if !x.left.IsRed() {
		lh++
	}
	rh := 0
	if !x.right.IsEmpty() {
		rh = x.right.Height() + 1
	}
	x.height = max(lh, rh)
}

func (x *Node) updateDepth() {
	x.minDepth = min(x.depth, min(x.left.MinDepth(), x.right.MinDepth()))
	x.maxDepth = max(x.depth, max(x.left.MaxDepth(), x.right.MaxDepth()))
}

// update recomputes the aggregates of x from its children. Empty nodes
// report fixed defaults and must never be written through.
func update(x *Node) {
	if x.IsEmpty() {
		return
	}
	x.updateSize()
	x.updateHeight()
	x.updateDepth()
}

// blacken colors the incoming link of x black. Writing the sentinel is
// forbidden, so it is skipped rather than touched.
func blacken(x *Node) {
	if !x.IsDummy() {
		x.color = Black
	}
}

// Detach unlinks both children of x, blackens it and shrinks its
// aggregates to a singleton. The former children are returned in order.
func Detach(x *Node) (left, right *Node) {
	if x.IsDummy() {
		panic( /* debug assertion */ "[tree] detach on the sentinel")
	}
	left, right = x.left, x.right
	x.left, x.right = dummy, dummy
	x.color = Black
	update(x)
	return left, right
}
