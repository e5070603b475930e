package list

import "iter"

// Iterator provides a way to walk a List in either direction.
// The typical use is:
//
//	it := l.NewIterator()
//	for it.Next() {
//		v := it.Value()
//		// ...
//	}
//
// Mutating the list while iterating invalidates the iterator.
//
// Iterator คือโครงสร้างที่ใช้สำหรับวนลูปผ่าน list ได้ทั้งสองทิศทาง
type Iterator struct {
	l       *List // อ้างอิงถึง list ที่กำลังวนลูป
	current *node // โหนดปัจจุบันที่ Iterator ชี้อยู่
	started bool  // false คือยังอยู่ก่อนรายการแรก
}

// NewIterator creates a new iterator positioned before the first element.
// A call to Next() is required to advance to the first element.
// NewIterator สร้าง Iterator ใหม่ที่ชี้ไปยังตำแหน่งก่อนรายการแรก
func (l *List) NewIterator() *Iterator {
	return &Iterator{l: l}
}

// Next moves the iterator to the next element and returns true if the move
// was successful. It returns false if there are no more elements.
// Next เลื่อน Iterator ไปยังรายการถัดไป คืนค่า false หากไม่มีรายการเหลือแล้ว
func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
		it.current = it.l.first
		return it.current != nil
	}
	if it.current == nil {
		return false
	}
	it.current = it.current.next
	return it.current != nil
}

// Prev moves the iterator to the previous element and returns true if the
// move was successful. To begin reverse iteration, position the iterator with
// Last() first.
// Prev เลื่อน Iterator ไปยังรายการก่อนหน้า หากต้องการวนย้อนกลับให้เรียก Last() ก่อน
func (it *Iterator) Prev() bool {
	if it.current == nil {
		return false
	}
	it.current = it.current.prev
	return it.current != nil
}

// First moves the iterator to the first element. It returns false if the
// list is empty.
func (it *Iterator) First() bool {
	it.started = true
	it.current = it.l.first
	return it.current != nil
}

// Last moves the iterator to the last element. It returns false if the list
// is empty.
func (it *Iterator) Last() bool {
	it.started = true
	it.current = it.l.last
	return it.current != nil
}

// Value returns the value at the current position.
// It should only be called after a positioning call has returned true.
// Value คืนค่าของรายการปัจจุบัน ควรเรียกหลังจาก Next/Prev/First/Last คืนค่า true เท่านั้น
func (it *Iterator) Value() int {
	return it.current.value
}

// Reset moves the iterator back before the first element.
func (it *Iterator) Reset() {
	it.started = false
	it.current = nil
}

// Clone creates an independent copy of the iterator at its current position.
// Clone สร้างสำเนาของ Iterator ณ ตำแหน่งปัจจุบัน
func (it *Iterator) Clone() *Iterator {
	c := *it
	return &c
}

// All returns an iterator over the values from front to back.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for curr := l.first; curr != nil; curr = curr.next {
			if !yield(curr.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from back to front.
func (l *List) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for curr := l.last; curr != nil; curr = curr.prev {
			if !yield(curr.value) {
				return
			}
		}
	}
}
