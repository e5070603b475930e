// Package array implements a growable array of ints that can also be used,
// in place, as a binary max-heap.
// The array grows and shrinks one slot at a time: every PushBack beyond the
// current capacity costs exactly one reallocation.
//
// package array คืออาร์เรย์แบบขยายขนาดได้ ซึ่งสามารถใช้เป็น max-heap ได้ในตัว
package array

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultCapacity is the capacity of an array created without WithCapacity.
// DefaultCapacity คือความจุเริ่มต้นของอาร์เรย์ที่สร้างโดยไม่ระบุ WithCapacity
const DefaultCapacity = 20

// ErrIndexOutOfRange is returned, wrapped with the offending index, by every
// positional operation that rejects its index.
var ErrIndexOutOfRange = errors.New("array: index out of range")

// Array is a contiguous buffer of Cap() slots whose first Size() slots hold
// live elements in index order.
// An Array is not safe for concurrent use.
//
// Array คือบัฟเฟอร์ต่อเนื่องขนาด Cap() ช่อง โดย Size() ช่องแรกเก็บข้อมูลจริง
type Array struct {
	data     []int       // len(data) คือความจุ (capacity)
	size     int         // จำนวนสมาชิกที่ใช้งานอยู่
	capacity int         // ความจุที่ขอไว้ตอนสร้าง (ใช้โดย Option เท่านั้น)
	log      *zap.Logger // ตัวบันทึกข้อความวินิจฉัย
}

// Option is a function that configures an Array.
// Option คือฟังก์ชันสำหรับกำหนดค่าของ Array
type Option func(*Array)

// WithCapacity seeds the initial capacity of the array.
// Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(a *Array) {
		if n > 0 {
			a.capacity = n
		}
	}
}

// WithLogger sets the logger used for diagnostics such as rejected indices.
// The default logger discards everything.
// WithLogger กำหนด logger สำหรับข้อความวินิจฉัย (ค่าเริ่มต้นคือไม่บันทึกอะไรเลย)
func WithLogger(l *zap.Logger) Option {
	return func(a *Array) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates an empty array with DefaultCapacity slots, or the capacity
// given by WithCapacity.
// New สร้างอาร์เรย์ว่างด้วยความจุเริ่มต้น
func New(opts ...Option) *Array {
	a := &Array{
		capacity: DefaultCapacity,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.data = make([]int, a.capacity)
	return a
}

// NewFrom creates an array holding exactly the elements of src, in order.
// The capacity is raised to len(src) when the default is too small.
// NewFrom สร้างอาร์เรย์ที่มีสมาชิกเหมือน src ทุกตัวตามลำดับ
func NewFrom(src []int, opts ...Option) *Array {
	a := New(opts...)
	if len(src) > len(a.data) {
		a.realloc(len(src))
	}
	copy(a.data, src)
	a.size = len(src)
	return a
}

// Destroy releases the buffer and resets size and capacity to zero.
// Destroy คืนหน่วยความจำของบัฟเฟอร์และรีเซ็ตขนาดกับความจุเป็นศูนย์
func (a *Array) Destroy() {
	a.data = nil
	a.size = 0
}

// realloc moves the live elements into a fresh buffer of exactly n slots.
// A capacity of zero leaves the buffer unallocated.
func (a *Array) realloc(n int) {
	if n == 0 {
		a.data = nil
		return
	}
	buf := make([]int, n)
	copy(buf, a.data[:a.size])
	a.data = buf
}

// Empty reports whether the array holds no element.
func (a *Array) Empty() bool {
	return a.data == nil || a.size == 0
}

// Size returns the number of live elements.
func (a *Array) Size() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array) Cap() int {
	return len(a.data)
}

// Equals reports whether the live elements are exactly content, in order.
func (a *Array) Equals(content []int) bool {
	if a.size != len(content) {
		return false
	}
	for i, v := range content {
		if a.data[i] != v {
			return false
		}
	}
	return true
}

// Values returns a copy of the live elements.
func (a *Array) Values() []int {
	out := make([]int, a.size)
	copy(out, a.data[:a.size])
	return out
}

// PushBack appends v, growing the buffer by a single slot when it is full.
// PushBack เพิ่ม v ต่อท้าย และขยายบัฟเฟอร์ทีละหนึ่งช่องเมื่อเต็ม
func (a *Array) PushBack(v int) {
	if a.size >= len(a.data) {
		a.realloc(len(a.data) + 1)
	}
	a.data[a.size] = v
	a.size++
}

// PopBack removes the last element and gives back one slot of capacity.
// It returns false if the array is empty.
// PopBack ลบสมาชิกตัวสุดท้ายและลดความจุลงหนึ่งช่อง คืนค่า false หากอาร์เรย์ว่าง
func (a *Array) PopBack() bool {
	if a.size == 0 {
		return false
	}
	a.size--
	a.realloc(len(a.data) - 1)
	return true
}

// Insert places v at index, shifting every element at or after index one slot
// to the right. The valid range is 0 <= index <= Size().
// Insert แทรก v ที่ตำแหน่ง index โดยเลื่อนสมาชิกที่อยู่ตั้งแต่ index ไปทางขวาหนึ่งช่อง
func (a *Array) Insert(v int, index int) error {
	if index < 0 || index > a.size {
		return a.outOfRange("insert", index)
	}
	if a.size >= len(a.data) {
		a.realloc(len(a.data) + 1)
	}
	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = v
	a.size++
	return nil
}

// Remove deletes the element at index, shifting the following elements one
// slot to the left. Capacity is left unchanged.
// Remove ลบสมาชิกที่ตำแหน่ง index และเลื่อนสมาชิกที่ตามมาไปทางซ้ายหนึ่งช่อง
func (a *Array) Remove(index int) error {
	if index < 0 || index >= a.size {
		return a.outOfRange("remove", index)
	}
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	a.size--
	return nil
}

// Get returns the element at index.
// An invalid index yields the sentinel 0 and false, so callers can tell a
// stored 0 apart from a miss.
// Get คืนค่าสมาชิกที่ index; หาก index ไม่ถูกต้องจะคืนค่า 0 และ false
func (a *Array) Get(index int) (int, bool) {
	if index < 0 || index >= a.size {
		a.outOfRange("get", index)
		return 0, false
	}
	return a.data[index], true
}

// Set overwrites the element at index with v.
func (a *Array) Set(index int, v int) error {
	if index < 0 || index >= a.size {
		return a.outOfRange("set", index)
	}
	a.data[index] = v
	return nil
}

// Search returns the index of the first element equal to v, or Size() if
// there is none.
// Search คืนค่าตำแหน่งแรกที่พบ v หรือ Size() หากไม่พบ
func (a *Array) Search(v int) int {
	for i := 0; i < a.size; i++ {
		if a.data[i] == v {
			return i
		}
	}
	return a.size
}

// SearchSorted is a binary search for v. The array must already be sorted;
// the result is meaningless otherwise. It returns Size() when v is absent.
// SearchSorted ค้นหาแบบ binary search (อาร์เรย์ต้องเรียงลำดับแล้ว)
func (a *Array) SearchSorted(v int) int {
	lo, hi := 0, a.size-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case a.data[mid] == v:
			return mid
		case a.data[mid] > v:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return a.size
}

// IsSorted reports whether the elements are in non-decreasing order.
func (a *Array) IsSorted() bool {
	for i := 1; i < a.size; i++ {
		if a.data[i-1] > a.data[i] {
			return false
		}
	}
	return true
}

// outOfRange logs a rejected index and builds the matching error.
func (a *Array) outOfRange(op string, index int) error {
	a.log.Debug("index out of bounds",
		zap.String("op", op),
		zap.Int("index", index),
		zap.Int("size", a.size),
	)
	return errors.Wrapf(ErrIndexOutOfRange, "%s at %d (size %d)", op, index, a.size)
}
