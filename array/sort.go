package array

// QuickSort sorts the array in place using a Hoare-style partition around the
// first element of each range.
// Average cost is O(n log n); already ordered or reverse ordered input
// degrades to O(n²). Only the smaller partition is recursed into, so stack
// depth stays O(log n).
//
// QuickSort เรียงลำดับอาร์เรย์แบบ in-place โดยใช้สมาชิกตัวแรกของช่วงเป็น pivot
func (a *Array) QuickSort() {
	if a.size <= 1 {
		return
	}
	a.quickSort(0, a.size-1)
}

func (a *Array) quickSort(low, high int) {
	for low < high {
		p := a.partition(low, high)
		// recurse on the smaller side, loop on the larger one
		if p-low < high-p {
			a.quickSort(low, p-1)
			low = p + 1
		} else {
			a.quickSort(p+1, high)
			high = p - 1
		}
	}
}

// partition rearranges data[i..j] around data[i] and returns the pivot's
// final index. Elements left of it are <= pivot, elements right of it >= pivot.
func (a *Array) partition(i, j int) int {
	d := a.data
	pivot := d[i]
	left, right := i, j
	for left <= right {
		for left <= right && d[left] <= pivot {
			left++
		}
		for left <= right && d[right] >= pivot {
			right--
		}
		if left <= right {
			d[left], d[right] = d[right], d[left]
		}
	}
	d[i], d[right] = d[right], d[i]
	return right
}

// HeapSort sorts the array in ascending order in O(n log n).
// It builds a max-heap over the whole buffer, then repeatedly moves the root
// behind the shrinking heap.
// HeapSort เรียงลำดับจากน้อยไปมากด้วย heap sort
func (a *Array) HeapSort() {
	n := a.size
	for i := n/2 - 1; i >= 0; i-- {
		a.siftDown(i, n)
	}
	for end := n - 1; end > 0; end-- {
		a.data[0], a.data[end] = a.data[end], a.data[0]
		a.siftDown(0, end)
	}
}
