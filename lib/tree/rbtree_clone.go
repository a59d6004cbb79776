package tree

// Clone deep-copies the whole tree with an explicit work stack, so the
// auxiliary space never depends on the call stack. Colors and subtree
// sizes carry over verbatim: the copy shares the exact shape of the
// source and therefore the exact augmentation values.
func (tree *rbTree[K]) Clone() RBTree[K] {
	cloned := &rbTree[K]{count: tree.count}
	if tree.root == nil {
		return cloned
	}

	cloned.root = &rbNode[K]{
		key:   tree.root.key,
		color: tree.root.color,
		size:  tree.root.size,
	}

	type pair struct {
		src *rbNode[K]
		dst *rbNode[K]
	}
	stack := make([]pair, 0, 32)
	stack = append(stack, pair{src: tree.root, dst: cloned.root})
	for size := len(stack); size > 0; size = len(stack) {
		p := stack[size-1]
		stack = stack[:size-1]
		if l := p.src.left; l != nil {
			p.dst.left = &rbNode[K]{
				key:    l.key,
				color:  l.color,
				size:   l.size,
				parent: p.dst,
			}
			stack = append(stack, pair{src: l, dst: p.dst.left})
		}
		if r := p.src.right; r != nil {
			p.dst.right = &rbNode[K]{
				key:    r.key,
				color:  r.color,
				size:   r.size,
				parent: p.dst,
			}
			stack = append(stack, pair{src: r, dst: p.dst.right})
		}
	}
	return cloned
}

// Move hands the root over to a fresh tree in O(1) and resets the
// source to empty. No node is ever shared between the two trees.
func (tree *rbTree[K]) Move() RBTree[K] {
	moved := &rbTree[K]{root: tree.root, count: tree.count}
	tree.root = nil
	tree.count = 0
	return moved
}
