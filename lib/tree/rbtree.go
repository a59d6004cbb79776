package tree

import (
	"github.com/rozmar1n/RB-tree/lib/infra"
)

// Absent children and the absent parent of the root are plain nil
// pointers; a nil node counts as black and has subtree size 0. The
// parent link is a non-owning back-reference used for traversal and
// rebalancing only.
type rbNode[K infra.OrderedKey] struct {
	parent *rbNode[K]
	left   *rbNode[K]
	right  *rbNode[K]
	key    K
	color  RBColor
	size   int64
}

func (node *rbNode[K]) Key() K {
	return node.key
}

func (node *rbNode[K]) Color() RBColor {
	return node.color
}

func (node *rbNode[K]) SubtreeSize() int64 {
	if node == nil {
		return 0
	}
	return node.size
}

func (node *rbNode[K]) Left() RBNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K]) Right() RBNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K]) Parent() RBNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K]) isNilLeaf() bool {
	return node == nil
}

func (node *rbNode[K]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[K]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[K]) isLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *rbNode[K]) Direction() RBDirection {
	if node.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K]) sibling() *rbNode[K] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:
	}
	return nil
}

func (node *rbNode[K]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K]) uncle() *rbNode[K] {
	return node.parent.sibling()
}

func (node *rbNode[K]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K]) grandpa() *rbNode[K] {
	return node.parent.parent
}

func (node *rbNode[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

// recalcSize restores invariant size = size(left) + size(right) + 1
// for this node only.
func (node *rbNode[K]) recalcSize() {
	node.size = node.left.SubtreeSize() + node.right.SubtreeSize() + 1
}

func (node *rbNode[K]) minimum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K]) maximum() *rbNode[K] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *rbNode[K]) pred() *rbNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to the first ancestor reached via a right-child step.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K]) succ() *rbNode[K] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the first ancestor reached via a left-child step.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

type rbTree[K infra.OrderedKey] struct {
	root  *rbNode[K]
	count int64
}

func (tree *rbTree[K]) keyCompare(k1, k2 K) int64 {
	if k1 == k2 {
		return 0
	} else if k1 < k2 {
		return -1
	}
	return 1
}

func (tree *rbTree[K]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K]) Empty() bool {
	return tree.root == nil
}

func (tree *rbTree[K]) Root() RBNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *rbTree[K]) search(key K) *rbNode[K] {
	for aux := tree.root; !aux.isNilLeaf(); {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil
}

func (tree *rbTree[K]) Contains(key K) bool {
	return tree.search(key) != nil
}

// updateSizeUpwards recomputes the subtree sizes of node and every
// ancestor above it, bottom-up.
func (tree *rbTree[K]) updateSizeUpwards(node *rbNode[K]) {
	for ; node != nil; node = node.parent {
		node.recalcSize()
	}
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// p6. (Augmentation) size of a node is size(left) + size(right) + 1;
//   size of a NIL node is 0.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc

A rotation moves no key in or out of the subtree, so only X and S need
their sizes recomputed; every node above keeps its total.
*/
func (tree *rbTree[K]) leftRotate(x *rbNode[K]) {
	if x == nil || x.right.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p

	x.recalcSize()
	y.recalcSize()
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K]) rightRotate(x *rbNode[K]) {
	if x == nil || x.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p

	x.recalcSize()
	y.recalcSize()
}

// i1: Empty rbtree, insert directly, but root node is painted to black.
func (tree *rbTree[K]) Insert(key K) bool {
	if /* i1 */ tree.root.isNilLeaf() {
		tree.root = &rbNode[K]{
			key:  key,
			size: 1,
		}
		tree.count = 1
		return true
	}

	var x, y *rbNode[K] = tree.root, nil
	res := int64(0)
	for !x.isNilLeaf() {
		y = x
		res = tree.keyCompare(key, x.key)
		if /* duplicate */ res == 0 {
			return false
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	z := &rbNode[K]{
		key:    key,
		color:  Red,
		parent: y,
		size:   1,
	}
	if res < 0 {
		y.left = z
	} else {
		y.right = z
	}

	tree.count++
	// Size first: the rebalance below keeps sizes consistent through
	// its rotations, but only when the ancestor path already counts z.
	tree.updateSizeUpwards(y)
	tree.insertRebalance(z)
	return true
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X is root. Paint it black, done.

im2: Current node X's parent P is black, both p3 and p4 already hold.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainting, G may collide with its own parent.
Continue the fixup from G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is the opposite direction to P ("zig-zag"). Rotate P into a
"zig-zig"; the violation persists, im5 finishes it.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: X and its parent share a direction. Rotate G the other way and
swap the colors of the old parent and grandparent. Terminal.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K]) insertRebalance(x *rbNode[K]) {
	for !x.isNilLeaf() {
		if /* im1 */ x.isRoot() {
			x.color = Black
			return
		}

		if /* im2 */ x.parent.isBlack() {
			return
		}

		// The parent is red, so it is not the root (the root stays
		// black) and the grandparent exists.
		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		dir := x.Direction()
		if /* im4 */ dir != x.parent.Direction() {
			p := x.parent
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert rebalance violate (im4)")
			}
			x = p // enter im5 to fix
		}

		switch /* im5 */ x.parent.Direction() {
		case Left:
			tree.rightRotate(x.grandpa())
		case Right:
			tree.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert rebalance violate (im5)")
		}

		x.parent.color = Black
		x.sibling().color = Red
		return
	}
}

func (tree *rbTree[K]) Erase(key K) bool {
	z := tree.search(key)
	if z == nil {
		return false
	}
	tree.removeNode(z)
	tree.count--
	return true
}

/*
r1: Only a root node, unlink it directly.

r2: Current node Z carries both children. Its in-order successor S
(minimum of the right subtree) owns Z's slot in sorted order once Z is
gone, and S itself has no left child. Move the successor's key into Z
and remove S's node instead; the color of S's slot is the one that
leaves the tree, exactly as if S had been relocated into Z's position
inheriting Z's color.

	  |                    |
	  Z                    S
	 / \                  / \
	L  ..   key swap     L  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  S  ..                Z  ..

r3: (1) The node leaving the tree is a red leaf, unlink directly.

r3: (2) The node leaving the tree is a black leaf: its paths lose one
black node, rebalance before unlinking. (black-violation)

r4: The node leaving the tree has exactly one child. That child is red
(see conclusion), it is hoisted into the vacant slot and repainted
black when needed.
*/
func (tree *rbTree[K]) removeNode(z *rbNode[K]) {
	if /* r1 */ tree.count == 1 && z.isRoot() {
		tree.root = nil
		z.left, z.right = nil, nil
		return
	}

	y := z
	if /* r2 */ !y.left.isNilLeaf() && !y.right.isNilLeaf() {
		y = z.succ()
		z.key = y.key
	}

	if y.isLeaf() {
		if /* r3 (2) */ y.isBlack() {
			// Rebalance while y is still linked and counted, so the
			// rotations below always see consistent subtree sizes.
			tree.removeRebalance(y)
		}
		p := y.parent
		switch /* r3 */ y.Direction() {
		case Left:
			p.left = nil
		case Right:
			p.right = nil
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove a leaf without parent, violate (r3)")
		}
		y.parent = nil
		tree.updateSizeUpwards(p)
		return
	}

	/* r4 */
	var replace *rbNode[K]
	if !y.right.isNilLeaf() {
		replace = y.right
	} else {
		replace = y.left
	}

	switch dir := y.Direction(); dir {
	case Root:
		tree.root = replace
		replace.parent = nil
	case Left:
		y.parent.left = replace
		replace.parent = y.parent
	case Right:
		y.parent.right = replace
		replace.parent = y.parent
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction, violate (r4)")
	}
	tree.updateSizeUpwards(replace.parent)

	if y.isBlack() {
		if replace.isRed() {
			replace.color = Black
		} else {
			tree.removeRebalance(replace)
		}
	}

	y.parent, y.left, y.right = nil, nil, nil
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X is short one black node on its paths ("double black"). Sc is X's
sibling's child on the same direction as X, Sd the opposite one.

rm1: X's sibling S is red, so the parent P and both nephews must be
black. Rotate P toward X and swap the colors of P and S. X now has a
black sibling, one of rm2..rm5 applies.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: P red, S and both nephews black. Swap the colors of P and S; the
red P absorbs the missing black. Terminal.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: P, S and both nephews black. Paint S red: both of P's subtrees
are now uniformly short, so P carries the double black upward.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: S black, near nephew Sc red, far nephew Sd black. Rotate S away
from X and swap the colors of S and Sc; the configuration becomes rm5.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: S black, far nephew Sd red. Rotate P toward X, give S the color P
had, paint P and Sd black. Terminal.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[K]) removeRebalance(x *rbNode[K]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.Direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm1)")
			}
			sibling.color = Black
			x.parent.color = Red
			sibling = x.sibling()
		}

		var sc, sd *rbNode[K]
		switch dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.color = Red
				x.parent.color = Black
				return
			}
			/* rm3 */
			sibling.color = Red
			x = x.parent
			continue
		}

		if /* rm4 */ sc.isRed() && sd.isBlack() {
			switch dir {
			case Left:
				tree.rightRotate(sibling)
			case Right:
				tree.leftRotate(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
			sc.color = Black
			sibling.color = Red
			sibling = x.sibling()
			switch dir {
			case Left:
				sd = sibling.right
			case Right:
				sd = sibling.left
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
			}
		}

		switch /* rm5 */ dir {
		case Left:
			tree.leftRotate(x.parent)
		case Right:
			tree.rightRotate(x.parent)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm5)")
		}
		sibling.color = x.parent.color
		x.parent.color = Black
		if !sd.isNilLeaf() {
			sd.color = Black
		}
		return
	}
}

// Foreach runs an iterative in-order traversal (ascending key order)
// and stops early when action returns false.
func (tree *rbTree[K]) Foreach(action func(idx int64, color RBColor, key K) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, tree.count>>1)
	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Release drops every node, visiting each exactly once with an
// explicit work stack so the auxiliary space stays independent of the
// call stack even on adversarial depths.
func (tree *rbTree[K]) Release() {
	aux := tree.root
	tree.root = nil
	tree.count = 0
	if aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, aux.size>>1)
	stack = append(stack, aux)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		aux.parent, aux.left, aux.right = nil, nil, nil
	}
}

func NewRBTree[K infra.OrderedKey]() RBTree[K] {
	return &rbTree[K]{}
}
