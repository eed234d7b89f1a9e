package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// rbtree rule validation utilities, used by the tests.

// IsBST reports whether every key of t sits between the keys of its
// ancestors, within the auxiliary tree only.
func IsBST(t *Node) bool {
	return isBSTRec(t, dummy, dummy)
}

func isBSTRec(h, lo, hi *Node) bool {
	if h.IsEmpty() {
		return true
	}
	if !lo.IsEmpty() && h.key < lo.key {
		return false
	}
	if !hi.IsEmpty() && h.key > hi.key {
		return false
	}
	return isBSTRec(h.left, lo, h) && isBSTRec(h.right, h, hi)
}

// RedViolationValidate checks the left-leaning red rules: no red right
// link and no red node with a red left child.
func RedViolationValidate(t *Node) error {
	if t.IsEmpty() {
		return nil
	}
	if t.right.IsRed() {
		return errors.New("rbtree red violation: red right link")
	}
	if t.IsRed() && t.left.IsRed() {
		return errors.New("rbtree red violation: double red")
	}
	if err := RedViolationValidate(t.left); err != nil {
		return err
	}
	return RedViolationValidate(t.right)
}

// BlackViolationValidate checks that every path from the root to an
// empty child carries the same number of black links.
func BlackViolationValidate(t *Node) error {
	if _, err := blackDepth(t); err != nil {
		return err
	}
	return nil
}

func blackDepth(h *Node) (int, error) {
	if h.IsEmpty() {
		return 0, nil
	}
	ld, err := blackDepth(h.left)
	if err != nil {
		return 0, err
	}
	rd, err := blackDepth(h.right)
	if err != nil {
		return 0, err
	}
	if !h.left.IsRed() {
		ld++
	}
	rd++ // a right link is never red
	if ld != rd {
		return 0, errors.New("rbtree black violation")
	}
	return ld, nil
}

// AggregatesValidate recomputes the bookkeeping of every member bottom
// up and compares it with the stored fields.
func AggregatesValidate(t *Node) error {
	if t.IsEmpty() {
		return nil
	}
	if err := AggregatesValidate(t.left); err != nil {
		return err
	}
	if err := AggregatesValidate(t.right); err != nil {
		return err
	}
	if size := t.left.Size() + t.right.Size() + 1; t.size != size {
		return fmt.Errorf("rbtree aggregate violation: key %d size %d, want %d", t.key, t.size, size)
	}
	lh := t.left.Height()
	if !t.left.IsRed() {
		lh++
	}
	rh := 0
	if !t.right.IsEmpty() {
		rh = t.right.Height() + 1
	}
	if height := max(lh, rh); t.height != height {
		return fmt.Errorf("rbtree aggregate violation: key %d height %d, want %d", t.key, t.height, height)
	}
	if t.depth == depthInf {
		// Reference depths are tracked by built trees only.
		return nil
	}
	if mn := min(t.depth, min(t.left.MinDepth(), t.right.MinDepth())); t.minDepth != mn {
		return fmt.Errorf("rbtree aggregate violation: key %d minDepth %d, want %d", t.key, t.minDepth, mn)
	}
	if mx := max(t.depth, max(t.left.MaxDepth(), t.right.MaxDepth())); t.maxDepth != mx {
		return fmt.Errorf("rbtree aggregate violation: key %d maxDepth %d, want %d", t.key, t.maxDepth, mx)
	}
	return nil
}

// Validate combines every per-tree check over a single auxiliary or
// standalone tree.
func Validate(t *Node) error {
	var err error
	if !IsBST(t) {
		err = multierr.Append(err, errors.New("rbtree order violation"))
	}
	if !t.IsEmpty() && t.IsRed() {
		err = multierr.Append(err, errors.New("rbtree red violation: red root"))
	}
	return multierr.Combine(err,
		RedViolationValidate(t),
		BlackViolationValidate(t),
		AggregatesValidate(t),
	)
}

// ValidateForest validates every auxiliary tree reachable from root
// across External boundaries and checks that the forest carries the
// key universe {1..n} exactly once.
func ValidateForest(root *Node, n int) error {
	if root.IsDummy() {
		return ErrEmptyTree
	}
	seen := make(map[int]int, n)
	err := validateForestRec(root, seen)
	for k := 1; k <= n; k++ {
		if seen[k] != 1 {
			err = multierr.Append(err, fmt.Errorf("tango universe violation: key %d held %d times", k, seen[k]))
		}
	}
	if len(seen) != n {
		err = multierr.Append(err, fmt.Errorf("tango universe violation: %d keys, want %d", len(seen), n))
	}
	return err
}

func validateForestRec(aux *Node, seen map[int]int) error {
	kind := aux.kind
	aux.kind = Regular
	defer func() { aux.kind = kind }()

	err := Validate(aux)
	var walk func(h *Node)
	walk = func(h *Node) {
		if h.IsDummy() {
			return
		}
		if h.IsExternal() {
			err = multierr.Append(err, validateForestRec(h, seen))
			return
		}
		seen[h.key]++
		walk(h.left)
		walk(h.right)
	}
	walk(aux)
	return err
}
