package array

// The heap view reuses the array buffer: data[0] is the maximum and the
// children of i are 2i+1 and 2i+2. Mixing heap operations with the sorted
// view (SearchSorted, IsSorted) on one instance is not supported.

// IsHeap reports whether every parent in [0, Size()) is >= its children.
// IsHeap ตรวจสอบว่าอาร์เรย์มีคุณสมบัติของ max-heap หรือไม่
func (a *Array) IsHeap() bool {
	for i := 1; i < a.size; i++ {
		if a.data[i] > a.data[(i-1)/2] {
			return false
		}
	}
	return true
}

// HeapAdd inserts v into the heap and sifts it up, in O(log n).
// HeapAdd เพิ่ม v เข้า heap แล้วเลื่อนขึ้นจนคุณสมบัติ heap ถูกต้อง
func (a *Array) HeapAdd(v int) {
	a.PushBack(v)
	a.siftUp(a.size - 1)
}

// HeapTop returns the largest element. It returns 0 and false on an empty heap.
// HeapTop คืนค่าสมาชิกที่มากที่สุด คืนค่า 0 และ false หาก heap ว่าง
func (a *Array) HeapTop() (int, bool) {
	if a.size == 0 {
		return 0, false
	}
	return a.data[0], true
}

// HeapRemoveTop removes the largest element: the last element takes the
// root's place and is sifted down. It returns false on an empty heap.
// HeapRemoveTop ลบสมาชิกที่มากที่สุดออกจาก heap
func (a *Array) HeapRemoveTop() bool {
	if a.size == 0 {
		a.log.Debug("heap remove on empty heap")
		return false
	}
	a.size--
	a.data[0] = a.data[a.size]
	a.siftDown(0, a.size)
	return true
}

// siftUp swaps data[i] with its parent while the parent is smaller.
func (a *Array) siftUp(i int) {
	d := a.data
	for i > 0 {
		parent := (i - 1) / 2
		if d[i] <= d[parent] {
			break
		}
		d[i], d[parent] = d[parent], d[i]
		i = parent
	}
}

// siftDown swaps data[i] with its larger child while that child is bigger,
// considering only the first n slots.
func (a *Array) siftDown(i, n int) {
	d := a.data
	for {
		largest := i
		if l := 2*i + 1; l < n && d[l] > d[largest] {
			largest = l
		}
		if r := 2*i + 2; r < n && d[r] > d[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		d[i], d[largest] = d[largest], d[i]
		i = largest
	}
}
