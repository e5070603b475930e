package list

import "sync"

// node คือโหนดแต่ละตัวใน list
type node struct {
	value int
	prev  *node // ตัวชี้ไปยังโหนดก่อนหน้า
	next  *node // ตัวชี้ไปยังโหนดถัดไป
}

// reset clears the node so an allocator can hand it out again.
// It drops both links so a released node never keeps its old neighbours alive.
// reset เคลียร์ข้อมูลในโหนดเพื่อให้ allocator นำกลับมาใช้ใหม่ได้อย่างปลอดภัย
func (n *node) reset() {
	n.value, n.prev, n.next = 0, nil, nil
}

// --- Node Allocator Abstraction ---

// nodeAllocator defines how nodes are obtained and released.
// A list releases a node as soon as it is unlinked (pop, remove, destroy).
// nodeAllocator คือ interface สำหรับกลยุทธ์การจัดสรรหน่วยความจำสำหรับโหนด
type nodeAllocator interface {
	Get() *node
	Put(*node)
}

// --- sync.Pool Implementation ---

// poolAllocator implements nodeAllocator using a sync.Pool, so nodes released
// by pops are recycled by later pushes. Merge sort moves every element through
// a pop and a push at each level, which makes the reuse worthwhile.
type poolAllocator struct {
	pool sync.Pool
}

func newPoolAllocator() *poolAllocator {
	return &poolAllocator{
		pool: sync.Pool{
			New: func() any { return &node{} },
		},
	}
}

func (p *poolAllocator) Get() *node {
	return p.pool.Get().(*node)
}

func (p *poolAllocator) Put(n *node) {
	// Reset the node to clear its contents before returning it to the pool.
	n.reset()
	p.pool.Put(n)
}

// --- Plain Implementation ---

// heapAllocator allocates every node with new and leaves released nodes to the
// garbage collector.
type heapAllocator struct{}

func (heapAllocator) Get() *node { return &node{} }

func (heapAllocator) Put(n *node) {
	n.reset()
}
