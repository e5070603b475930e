// Package tree implements an unbalanced binary search tree of distinct ints.
//
// Insertion and removal are written as functions that take a subtree and
// return the rebuilt subtree, so restructuring never needs parent pointers.
// Recursion depth is bounded by the height of the tree, which for sorted
// insertions equals the number of keys.
//
// package tree คือ binary search tree แบบไม่สมดุลที่เก็บค่า int ไม่ซ้ำกัน
package tree

import (
	"iter"

	"go.uber.org/zap"
)

type node struct {
	value       int
	left, right *node
}

// Tree is a binary search tree: every key in a node's left subtree is
// smaller than the node's key and every key in its right subtree is larger.
// The zero value is an empty tree ready to use. A Tree is not safe for
// concurrent use.
//
// Tree คือ binary search tree: key ในต้นไม้ย่อยซ้ายน้อยกว่าโหนดเสมอ
// และ key ในต้นไม้ย่อยขวามากกว่าโหนดเสมอ
type Tree struct {
	root *node
	log  *zap.Logger
}

// Option is a function that configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used for diagnostics such as rejected inserts.
// The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.log = l
		}
	}
}

// New creates an empty tree.
// New สร้างต้นไม้ว่าง
func New(opts ...Option) *Tree {
	t := &Tree{log: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree) logger() *zap.Logger {
	if t.log == nil {
		return zap.NewNop()
	}
	return t.log
}

// Destroy releases every node in post-order, children before their parent,
// and leaves the tree empty.
// Destroy ลบโหนดทั้งหมดแบบ post-order และทำให้ต้นไม้ว่าง
func (t *Tree) Destroy() {
	destroy(t.root)
	t.root = nil
}

func destroy(n *node) {
	if n == nil {
		return
	}
	destroy(n.left)
	destroy(n.right)
	n.left, n.right = nil, nil
}

// Contains reports whether v is in the tree, in O(height).
// Contains ตรวจสอบว่ามี v อยู่ในต้นไม้หรือไม่
func (t *Tree) Contains(v int) bool {
	n := t.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds v as a new leaf. It returns false, leaving the tree unchanged,
// if v is already present.
// Insert เพิ่ม v เป็นโหนดใบใหม่ คืนค่า false หากมี v อยู่แล้ว
func (t *Tree) Insert(v int) bool {
	root, ok := insert(t.root, v)
	t.root = root
	if !ok {
		t.logger().Debug("duplicate key", zap.Int("value", v))
	}
	return ok
}

func insert(n *node, v int) (*node, bool) {
	if n == nil {
		return &node{value: v}, true
	}
	var ok bool
	switch {
	case v < n.value:
		n.left, ok = insert(n.left, v)
	case v > n.value:
		n.right, ok = insert(n.right, v)
	}
	return n, ok
}

// Remove deletes v. It returns false, leaving the tree unchanged, if v is
// absent.
// A node with two children takes the key of its in-order successor, which is
// then removed from the right subtree instead.
//
// Remove ลบ v ออกจากต้นไม้ คืนค่า false หากไม่พบ v
// โหนดที่มีลูกสองข้างจะรับ key ของ in-order successor แล้วลบ successor ออกจากต้นไม้ย่อยขวาแทน
func (t *Tree) Remove(v int) bool {
	root, ok := remove(t.root, v)
	t.root = root
	if !ok {
		t.logger().Debug("absent key", zap.Int("value", v))
	}
	return ok
}

func remove(n *node, v int) (*node, bool) {
	if n == nil {
		return nil, false
	}
	var ok bool
	switch {
	case v < n.value:
		n.left, ok = remove(n.left, v)
		return n, ok
	case v > n.value:
		n.right, ok = remove(n.right, v)
		return n, ok
	}

	switch {
	case n.left == nil:
		return n.right, true
	case n.right == nil:
		return n.left, true
	}
	n.value = minNode(n.right).value
	n.right, _ = remove(n.right, n.value)
	return n, true
}

func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode(n *node) *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest key, or 0 and false when the tree is empty.
func (t *Tree) Min() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return minNode(t.root).value, true
}

// Max returns the largest key, or 0 and false when the tree is empty.
func (t *Tree) Max() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return maxNode(t.root).value, true
}

// Empty reports whether the tree has no node.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Size counts the nodes. It walks the whole tree on every call.
// Size นับจำนวนโหนดทั้งหมด (O(n) ทุกครั้งที่เรียก)
func (t *Tree) Size() int {
	return size(t.root)
}

func size(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.left) + size(n.right)
}

// Height returns the number of edges on the longest root-to-leaf path.
// Both an empty tree and a single-node tree have height 0.
// It walks the whole tree on every call.
// Height คืนค่าจำนวนเส้นเชื่อมบนเส้นทางที่ยาวที่สุดจาก root ถึงใบ
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}
	return levels(t.root) - 1
}

// levels counts the nodes on the longest downward path from n.
func levels(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(levels(n.left), levels(n.right))
}

// All returns an iterator over the keys in increasing order.
func (t *Tree) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		inOrder(t.root, yield)
	}
}

// inOrder walks n in order until yield returns false, and reports whether
// the walk ran to completion.
func inOrder(n *node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.value) && inOrder(n.right, yield)
}
