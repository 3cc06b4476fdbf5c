package hclust

import "fmt"

// Tree is a node of a cluster hierarchy: either a leaf holding one original
// item index, or a merge of two subtrees at a given height.
//
// A merge exclusively owns its children. Trees are built bottom-up and
// never modified afterwards.
type Tree struct {
	index       int
	left, right *Tree
	height      float64
	size        int
}

// NewLeaf returns a leaf for item index. Panics if index is negative.
func NewLeaf(index int) *Tree {
	if index < 0 {
		panic(fmt.Sprintf("hclust: leaf index must be >= 0, got %d", index))
	}
	return &Tree{index: index, size: 1}
}

// NewMerge returns a node joining left and right at height. The new node
// takes ownership of both children; they must not be reused elsewhere.
// Panics if either child is nil.
func NewMerge(left, right *Tree, height float64) *Tree {
	if left == nil || right == nil {
		panic("hclust: merge children must be non-nil")
	}
	return &Tree{
		index:  -1,
		left:   left,
		right:  right,
		height: height,
		size:   left.size + right.size,
	}
}

// IsLeaf reports whether t is a single item.
func (t *Tree) IsLeaf() bool { return t.left == nil }

// Index returns the item index of a leaf, or -1 for a merge.
func (t *Tree) Index() int { return t.index }

// Left returns the left child of a merge, or nil for a leaf.
func (t *Tree) Left() *Tree { return t.left }

// Right returns the right child of a merge, or nil for a leaf.
func (t *Tree) Right() *Tree { return t.right }

// Height returns the merge height. Leaves have height 0.
func (t *Tree) Height() float64 { return t.height }

// Size returns the number of leaves under t.
func (t *Tree) Size() int { return t.size }

// LeafIndices returns the item indices under t in left-to-right order.
func (t *Tree) LeafIndices() []int {
	out := make([]int, 0, t.size)
	return t.appendLeaves(out)
}

func (t *Tree) appendLeaves(out []int) []int {
	if t.IsLeaf() {
		return append(out, t.index)
	}
	out = t.left.appendLeaves(out)
	return t.right.appendLeaves(out)
}
