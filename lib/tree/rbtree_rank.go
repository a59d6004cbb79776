package tree

// Order-statistics queries on top of the subtree-size augmentation.
// Every descent accumulates left-subtree sizes instead of walking the
// elements, so all of them are O(log n).

// rankBound counts the stored keys that compare before key: strictly
// less when inclusive is false, less-or-equal when inclusive is true.
func (tree *rbTree[K]) rankBound(key K, inclusive bool) int64 {
	var rank int64
	for aux := tree.root; !aux.isNilLeaf(); {
		res := tree.keyCompare(aux.key, key)
		if res < 0 || (inclusive && res == 0) {
			rank += aux.left.SubtreeSize() + 1
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return rank
}

func (tree *rbTree[K]) RankLower(key K) int64 {
	return tree.rankBound(key, false)
}

func (tree *rbTree[K]) RankUpper(key K) int64 {
	return tree.rankBound(key, true)
}

// Distance counts the stored keys inside the closed interval [lo, hi].
func (tree *rbTree[K]) Distance(lo, hi K) int64 {
	if tree.keyCompare(hi, lo) < 0 {
		return 0
	}
	return tree.RankUpper(hi) - tree.RankLower(lo)
}

// Rank is the 0-based in-order index of key, ok == false when the key
// is not stored.
func (tree *rbTree[K]) Rank(key K) (int64, bool) {
	if tree.search(key) == nil {
		return 0, false
	}
	return tree.RankLower(key), true
}

// Nth descends by subtree sizes to the key holding in-order index i.
func (tree *rbTree[K]) Nth(i int64) (K, bool) {
	if i < 0 || i >= tree.count {
		var zero K
		return zero, false
	}
	aux := tree.root
	for {
		leftSize := aux.left.SubtreeSize()
		if i < leftSize {
			aux = aux.left
		} else if i == leftSize {
			return aux.key, true
		} else {
			i -= leftSize + 1
			aux = aux.right
		}
	}
}
