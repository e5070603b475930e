// Package list implements a doubly linked list of ints with positional
// access, split/merge, and a stable merge sort.
//
// package list คือ doubly linked list ที่รองรับการเข้าถึงตามตำแหน่ง
// การแยก/รวม list และ merge sort แบบ stable
package list

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrIndexOutOfRange is returned, wrapped with the offending index, by every
// positional operation that rejects its index.
var ErrIndexOutOfRange = errors.New("list: index out of range")

// List is a sequence of individually allocated nodes linked in both
// directions. The zero value is not ready to use; call New or NewFrom.
// A List is not safe for concurrent use.
//
// List คือลำดับของโหนดที่เชื่อมกันทั้งสองทิศทาง
// ค่า zero value ยังไม่พร้อมใช้งาน ต้องสร้างผ่าน New หรือ NewFrom
type List struct {
	first     *node         // โหนดแรก (nil เมื่อ list ว่าง)
	last      *node         // โหนดสุดท้าย (nil เมื่อ list ว่าง)
	length    int           // จำนวนโหนดทั้งหมด
	allocator nodeAllocator // Abstraction สำหรับการจัดสรรหน่วยความจำ
	log       *zap.Logger
}

// Option is a function that configures a List.
// Option คือฟังก์ชันสำหรับกำหนดค่าของ List
type Option func(*List)

// WithoutPool makes the list allocate every node with new instead of
// recycling released nodes through a sync.Pool.
func WithoutPool() Option {
	return func(l *List) {
		l.allocator = heapAllocator{}
	}
}

// WithLogger sets the logger used for diagnostics such as rejected indices.
// The default logger discards everything.
func WithLogger(lg *zap.Logger) Option {
	return func(l *List) {
		if lg != nil {
			l.log = lg
		}
	}
}

// New creates an empty list.
// New สร้าง list ว่าง
func New(opts ...Option) *List {
	l := &List{
		allocator: newPoolAllocator(), // Default to sync.Pool
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewFrom creates a list holding the elements of src, in order.
// NewFrom สร้าง list ที่มีสมาชิกเหมือน src ตามลำดับ
func NewFrom(src []int, opts ...Option) *List {
	l := New(opts...)
	for _, v := range src {
		l.PushBack(v)
	}
	return l
}

// sibling returns an empty list sharing l's allocator and logger.
func (l *List) sibling() *List {
	return &List{allocator: l.allocator, log: l.log}
}

// Destroy releases every node exactly once, front to back, and leaves the
// list empty.
// Destroy คืนโหนดทั้งหมดกลับสู่ allocator และทำให้ list ว่าง
func (l *List) Destroy() {
	curr := l.first
	for curr != nil {
		next := curr.next
		l.allocator.Put(curr)
		curr = next
	}
	l.first, l.last, l.length = nil, nil, 0
}

// Empty reports whether the list has no node.
func (l *List) Empty() bool {
	return l.first == nil
}

// Size returns the number of nodes.
func (l *List) Size() int {
	return l.length
}

// Equals reports whether the list holds exactly content, in order.
func (l *List) Equals(content []int) bool {
	if l.length != len(content) {
		return false
	}
	curr := l.first
	for _, v := range content {
		if curr.value != v {
			return false
		}
		curr = curr.next
	}
	return true
}

// Front returns the first value, or 0 and false when the list is empty.
func (l *List) Front() (int, bool) {
	if l.first == nil {
		return 0, false
	}
	return l.first.value, true
}

// Back returns the last value, or 0 and false when the list is empty.
func (l *List) Back() (int, bool) {
	if l.last == nil {
		return 0, false
	}
	return l.last.value, true
}

func (l *List) newNode(v int) *node {
	n := l.allocator.Get()
	n.value = v
	return n
}

// PushFront adds v before the first node.
// PushFront เพิ่ม v ไว้หน้าสุดของ list
func (l *List) PushFront(v int) {
	n := l.newNode(v)
	n.next = l.first
	if l.first != nil {
		l.first.prev = n
	} else {
		l.last = n
	}
	l.first = n
	l.length++
}

// PushBack adds v after the last node.
// PushBack เพิ่ม v ไว้ท้ายสุดของ list
func (l *List) PushBack(v int) {
	n := l.newNode(v)
	n.prev = l.last
	if l.last != nil {
		l.last.next = n
	} else {
		l.first = n
	}
	l.last = n
	l.length++
}

// PopFront removes the first node. It returns false if the list is empty.
// PopFront ลบโหนดแรกออก คืนค่า false หาก list ว่าง
func (l *List) PopFront() bool {
	if l.first == nil {
		return false
	}
	l.unlink(l.first)
	return true
}

// PopBack removes the last node. It returns false if the list is empty.
// PopBack ลบโหนดสุดท้ายออก คืนค่า false หาก list ว่าง
func (l *List) PopBack() bool {
	if l.last == nil {
		return false
	}
	l.unlink(l.last)
	return true
}

// unlink detaches n from the list, re-links its neighbours, updates the
// endpoints and releases n.
// unlink ตัดโหนด n ออกจาก list และเชื่อมโหนดข้างเคียงเข้าหากัน
func (l *List) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.last = n.prev
	}
	l.allocator.Put(n)
	l.length--
}

// nodeAt walks from the first node to position index. The caller guarantees
// 0 <= index < Size().
func (l *List) nodeAt(index int) *node {
	curr := l.first
	for i := 0; i < index; i++ {
		curr = curr.next
	}
	return curr
}

// Insert places v at position index, between the nodes currently at index-1
// and index. The valid range is 0 <= index <= Size(); index == Size() appends.
// Insert แทรก v ที่ตำแหน่ง index (index == Size() คือการต่อท้าย)
func (l *List) Insert(v int, index int) error {
	switch {
	case index < 0 || index > l.length:
		return l.outOfRange("insert", index)
	case index == 0:
		l.PushFront(v)
		return nil
	case index == l.length:
		l.PushBack(v)
		return nil
	}

	at := l.nodeAt(index)
	n := l.newNode(v)
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	l.length++
	return nil
}

// Remove deletes the node at position index. The valid range is
// 0 <= index < Size().
// Remove ลบโหนดที่ตำแหน่ง index
func (l *List) Remove(index int) error {
	if index < 0 || index >= l.length {
		return l.outOfRange("remove", index)
	}
	l.unlink(l.nodeAt(index))
	return nil
}

// Get returns the value at position index.
// An invalid index yields the sentinel 0 and false.
// Get คืนค่าที่ตำแหน่ง index; หาก index ไม่ถูกต้องจะคืนค่า 0 และ false
func (l *List) Get(index int) (int, bool) {
	if index < 0 || index >= l.length {
		l.outOfRange("get", index)
		return 0, false
	}
	return l.nodeAt(index).value, true
}

// Set overwrites the value at position index.
func (l *List) Set(index int, v int) error {
	if index < 0 || index >= l.length {
		return l.outOfRange("set", index)
	}
	l.nodeAt(index).value = v
	return nil
}

// Search returns the position of the first node holding v, or Size() if
// there is none.
// Search คืนค่าตำแหน่งแรกที่พบ v หรือ Size() หากไม่พบ
func (l *List) Search(v int) int {
	i := 0
	for curr := l.first; curr != nil; curr = curr.next {
		if curr.value == v {
			return i
		}
		i++
	}
	return i
}

// IsSorted reports whether the values are in non-decreasing order.
// IsSorted ตรวจสอบว่า list เรียงจากน้อยไปมากหรือไม่
func (l *List) IsSorted() bool {
	if l.length < 2 {
		return true
	}
	// a sorted list cannot end lower than it starts
	if l.first.value > l.last.value {
		return false
	}
	for curr := l.first; curr.next != nil; curr = curr.next {
		if curr.value > curr.next.value {
			return false
		}
	}
	return true
}

// outOfRange logs a rejected index and builds the matching error.
func (l *List) outOfRange(op string, index int) error {
	l.log.Debug("index out of bounds",
		zap.String("op", op),
		zap.Int("index", index),
		zap.Int("size", l.length),
	)
	return errors.Wrapf(ErrIndexOutOfRange, "%s at %d (size %d)", op, index, l.length)
}
