package tree

import "github.com/rozmar1n/RB-tree/lib/infra"

// Iterator is a bidirectional cursor over the tree in ascending key
// order, driven purely by the parent links of the nodes. A nil current
// node is the distinct past-the-end position.
//
// An Iterator stays usable only as long as the owning tree is not
// mutated; Insert and Erase invalidate every outstanding Iterator.
type Iterator[K infra.OrderedKey] struct {
	tree *rbTree[K]
	cur  *rbNode[K]
}

func (tree *rbTree[K]) Begin() Iterator[K] {
	return Iterator[K]{tree: tree, cur: tree.root.minimum()}
}

func (tree *rbTree[K]) End() Iterator[K] {
	return Iterator[K]{tree: tree}
}

func (tree *rbTree[K]) LowerBound(key K) Iterator[K] {
	return Iterator[K]{tree: tree, cur: tree.boundNode(key, true)}
}

func (tree *rbTree[K]) UpperBound(key K) Iterator[K] {
	return Iterator[K]{tree: tree, cur: tree.boundNode(key, false)}
}

// boundNode finds the leftmost node whose key is >= key (inclusive) or
// > key (exclusive); nil when no such node exists.
func (tree *rbTree[K]) boundNode(key K, inclusive bool) *rbNode[K] {
	var candidate *rbNode[K]
	for aux := tree.root; !aux.isNilLeaf(); {
		res := tree.keyCompare(aux.key, key)
		if res > 0 || (inclusive && res == 0) {
			candidate = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return candidate
}

func (it Iterator[K]) Valid() bool {
	return it.cur != nil
}

func (it Iterator[K]) Key() K {
	if it.cur == nil {
		// impossible in correct use
		panic( /* debug assertion */ "[rbtree] dereference of a past-the-end iterator")
	}
	return it.cur.key
}

func (it Iterator[K]) Color() RBColor {
	if it.cur == nil {
		// impossible in correct use
		panic( /* debug assertion */ "[rbtree] dereference of a past-the-end iterator")
	}
	return it.cur.color
}

// Next advances to the in-order successor; past the maximum it reaches
// the past-the-end position. Advancing past-the-end is an error.
func (it *Iterator[K]) Next() {
	if it.cur == nil {
		// impossible in correct use
		panic( /* debug assertion */ "[rbtree] increment of a past-the-end iterator")
	}
	it.cur = it.cur.succ()
}

// Prev steps to the in-order predecessor. Stepping back from the
// past-the-end position yields the maximum element; stepping before
// the minimum is an error.
func (it *Iterator[K]) Prev() {
	if it.cur == nil {
		it.cur = it.tree.root.maximum()
		if it.cur == nil {
			// impossible in correct use
			panic( /* debug assertion */ "[rbtree] decrement within an empty tree")
		}
		return
	}
	prev := it.cur.pred()
	if prev == nil {
		// impossible in correct use
		panic( /* debug assertion */ "[rbtree] decrement of a begin iterator")
	}
	it.cur = prev
}
