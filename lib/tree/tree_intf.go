package tree

import "github.com/rozmar1n/RB-tree/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

type RBNode[K infra.OrderedKey] interface {
	Key() K
	Color() RBColor
	// SubtreeSize is the number of keys stored under this node,
	// the node itself included.
	SubtreeSize() int64
	Left() RBNode[K]
	Right() RBNode[K]
	Parent() RBNode[K]
}

// RBTree is an ordered set of K augmented with subtree sizes, so the
// rank queries (RankLower, RankUpper, Distance, Rank, Nth) all run in
// O(log n). It is not safe for concurrent use; callers that share a
// tree across goroutines must serialize access externally.
//
// Any Insert or Erase invalidates every Iterator obtained from the
// tree before the mutation.
type RBTree[K infra.OrderedKey] interface {
	Len() int64
	Empty() bool
	Root() RBNode[K]
	// Insert adds key to the set. It reports false and leaves the
	// tree untouched when the key is already present.
	Insert(key K) bool
	// Erase removes key from the set. It reports false when the key
	// is absent.
	Erase(key K) bool
	Contains(key K) bool
	// RankLower counts the stored keys strictly less than key.
	RankLower(key K) int64
	// RankUpper counts the stored keys less than or equal to key.
	RankUpper(key K) int64
	// Distance counts the stored keys x with lo <= x <= hi. It is 0
	// when hi < lo.
	Distance(lo, hi K) int64
	// Rank is the in-order index of key, ok == false when absent.
	Rank(key K) (int64, bool)
	// Nth is the key at in-order index i, ok == false when i is out
	// of range.
	Nth(i int64) (K, bool)
	Begin() Iterator[K]
	End() Iterator[K]
	// LowerBound positions an iterator at the first key >= key.
	LowerBound(key K) Iterator[K]
	// UpperBound positions an iterator at the first key > key.
	UpperBound(key K) Iterator[K]
	Foreach(action func(idx int64, color RBColor, key K) bool)
	// Clone deep-copies every node; the copy and the source never
	// share structure afterwards.
	Clone() RBTree[K]
	// Move transfers the whole content into a fresh tree in O(1) and
	// leaves the source empty.
	Move() RBTree[K]
	Release()
}
