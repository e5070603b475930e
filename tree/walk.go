package tree

// WalkFunc is called once per node by the Walk methods with the node's key
// and the userData passed to the walk.
// WalkFunc คือฟังก์ชันที่ถูกเรียกหนึ่งครั้งต่อโหนด พร้อมกับ userData ที่ส่งเข้ามา
type WalkFunc func(value int, userData any)

// WalkPreOrder visits each node before its left then right subtree.
// WalkPreOrder เยี่ยมโหนดก่อน แล้วจึงต้นไม้ย่อยซ้ายและขวา
func (t *Tree) WalkPreOrder(fn WalkFunc, userData any) {
	preOrder(t.root, fn, userData)
}

// WalkInOrder visits the left subtree, the node, then the right subtree, so
// keys are reported in increasing order.
// WalkInOrder เยี่ยมต้นไม้ย่อยซ้าย โหนด แล้วต้นไม้ย่อยขวา (ได้ key เรียงจากน้อยไปมาก)
func (t *Tree) WalkInOrder(fn WalkFunc, userData any) {
	walkInOrder(t.root, fn, userData)
}

// WalkPostOrder visits the left then right subtree before the node itself.
// WalkPostOrder เยี่ยมต้นไม้ย่อยซ้ายและขวาก่อน แล้วจึงโหนด
func (t *Tree) WalkPostOrder(fn WalkFunc, userData any) {
	postOrder(t.root, fn, userData)
}

func preOrder(n *node, fn WalkFunc, userData any) {
	if n == nil {
		return
	}
	fn(n.value, userData)
	preOrder(n.left, fn, userData)
	preOrder(n.right, fn, userData)
}

func walkInOrder(n *node, fn WalkFunc, userData any) {
	if n == nil {
		return
	}
	walkInOrder(n.left, fn, userData)
	fn(n.value, userData)
	walkInOrder(n.right, fn, userData)
}

func postOrder(n *node, fn WalkFunc, userData any) {
	if n == nil {
		return
	}
	postOrder(n.left, fn, userData)
	postOrder(n.right, fn, userData)
	fn(n.value, userData)
}
