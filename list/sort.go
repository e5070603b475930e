package list

// Split moves the first Size()/2 values to the back of out1 and the rest to
// the back of out2, leaving l empty. l, out1 and out2 must be distinct lists.
// Split แบ่ง list ออกเป็นสองส่วน: ครึ่งแรกไปยัง out1 ที่เหลือไปยัง out2 และ l จะว่างเปล่า
func (l *List) Split(out1, out2 *List) {
	half := l.length / 2
	for i := 0; l.first != nil; i++ {
		v := l.first.value
		l.PopFront()
		if i < half {
			out1.PushBack(v)
		} else {
			out2.PushBack(v)
		}
	}
}

// Merge consumes two sorted lists, appending their values to l in
// non-decreasing order. On equal fronts in1 wins, which keeps the merge
// stable. Both inputs end empty.
// Merge รวม list ที่เรียงแล้วสองชุดต่อท้าย l โดยค่าที่เท่ากันจะเลือกจาก in1 ก่อน
func (l *List) Merge(in1, in2 *List) {
	for in1.first != nil && in2.first != nil {
		from := in1
		if in2.first.value < in1.first.value {
			from = in2
		}
		l.PushBack(from.first.value)
		from.PopFront()
	}
	for _, rest := range [...]*List{in1, in2} {
		for rest.first != nil {
			l.PushBack(rest.first.value)
			rest.PopFront()
		}
	}
}

// MergeSort sorts the list in non-decreasing order, keeping equal values in
// their original relative order.
// MergeSort เรียงลำดับ list แบบ stable ด้วย merge sort
func (l *List) MergeSort() {
	if l.length < 2 {
		return
	}
	left, right := l.sibling(), l.sibling()
	l.Split(left, right)
	left.MergeSort()
	right.MergeSort()
	l.Merge(left, right)
}
