package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/rozmar1n/RB-tree/lib/infra"
)

func isNilLeaf[K infra.OrderedKey](node RBNode[K]) bool {
	return node == nil
}

func isBlack[K infra.OrderedKey](node RBNode[K]) bool {
	return isNilLeaf[K](node) || node.Color() == Black
}

func isRed[K infra.OrderedKey](node RBNode[K]) bool {
	return !isNilLeaf[K](node) && node.Color() == Red
}

func isRoot[K infra.OrderedKey](node RBNode[K]) bool {
	return node != nil && node.Parent() == nil
}

func blackDepthTo[K infra.OrderedKey](target, to RBNode[K]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[K](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities. Diagnostics and tests only, never
// part of a query or mutation path.

// Inorder traversal to validate that the root is black and that no red
// node has a red child.
func RedViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	var aux RBNode[K] = tree.Root()
	if aux == nil {
		return nil
	}
	if isRed[K](aux) {
		return errors.New("rbtree red violation: red root")
	}

	stack := make([]RBNode[K], 0, tree.Len()>>1)
	for ; !isNilLeaf[K](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; isRed[K](aux) {
			if isRed[K](aux.Left()) || isRed[K](aux.Right()) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load the nodes owning at least one nil child; every
// root-to-nil path runs through one of them.
func bfsLeaves[K infra.OrderedKey](tree RBTree[K]) []RBNode[K] {
	var aux RBNode[K] = tree.Root()
	if isNilLeaf[K](aux) {
		return nil
	}

	leaves := make([]RBNode[K], 0, tree.Len()>>1+1)
	queue := make([]RBNode[K], 0, tree.Len()>>1)
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		queue = queue[1:]
		l, r := aux.Left(), aux.Right()
		if isNilLeaf[K](l) || isNilLeaf[K](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[K](l) {
			queue = append(queue, l)
		}
		if !isNilLeaf[K](r) {
			queue = append(queue, r)
		}
	}
	return leaves
}

// Each path from the root to a nil leaf must pass the same number of
// black nodes.
func BlackViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	leaves := bfsLeaves[K](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// Inorder traversal must yield strictly increasing keys; this covers
// both the search-tree ordering and the no-duplicates rule.
func OrderViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	var aux RBNode[K] = tree.Root()
	if aux == nil {
		return nil
	}

	stack := make([]RBNode[K], 0, tree.Len()>>1)
	for ; !isNilLeaf[K](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	var last K
	seen := false
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if seen && aux.Key() <= last {
			return errors.New("rbtree order violation")
		}
		last, seen = aux.Key(), true

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// Every node must carry size(left) + size(right) + 1, and the root
// total must match Len.
func SizeViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			return errors.New("rbtree size violation: non-zero len on empty tree")
		}
		return nil
	}
	if root.SubtreeSize() != tree.Len() {
		return errors.New("rbtree size violation: root size differs from len")
	}

	stack := make([]RBNode[K], 0, tree.Len()>>1)
	stack = append(stack, root)
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]

		var want int64 = 1
		if l := aux.Left(); !isNilLeaf[K](l) {
			want += l.SubtreeSize()
			stack = append(stack, l)
		}
		if r := aux.Right(); !isNilLeaf[K](r) {
			want += r.SubtreeSize()
			stack = append(stack, r)
		}
		if aux.SubtreeSize() != want {
			return errors.New("rbtree size violation")
		}
	}
	return nil
}

// Validate aggregates every structural check; a nil result means all
// invariants hold.
func Validate[K infra.OrderedKey](tree RBTree[K]) error {
	return multierr.Combine(
		RedViolationValidate[K](tree),
		BlackViolationValidate[K](tree),
		OrderViolationValidate[K](tree),
		SizeViolationValidate[K](tree),
	)
}

func IsValid[K infra.OrderedKey](tree RBTree[K]) bool {
	return Validate[K](tree) == nil
}
