package arrays

// Each visits every element of s in ascending index order.
// The visitor's return value, if any, is ignored; the traversal always
// completes. Use EachUntil when early termination is needed.
func Each[T any, FN visitorFunc[T]](s []T, fn FN) {
	visit := toVisitor[T](fn)
	if visit == nil {
		return
	}
	snapshot := snapshotOf(s)
	for i, v := range snapshot {
		visit(v, i, snapshot)
	}
}

// EachUntil visits elements of s in ascending index order,
// stopping immediately the first time the visitor returns false.
// All remaining indices are skipped.
//
// The traversal runs over a private snapshot of s: a visitor that mutates
// the original slice cannot affect which elements are visited.
func EachUntil[T any, FN untilFunc[T]](s []T, fn FN) {
	visit := toUntil[T](fn)
	if visit == nil {
		return
	}
	snapshot := snapshotOf(s)
	for i, v := range snapshot {
		if !visit(v, i, snapshot) {
			return
		}
	}
}

// EachInReverse visits every element of s in descending index order.
// The visitor's return value, if any, is ignored.
func EachInReverse[T any, FN visitorFunc[T]](s []T, fn FN) {
	visit := toVisitor[T](fn)
	if visit == nil {
		return
	}
	snapshot := snapshotOf(s)
	for i := len(snapshot) - 1; 0 <= i; i-- {
		visit(snapshot[i], i, snapshot)
	}
}

// EachInReverseUntil visits elements of s in descending index order,
// stopping immediately the first time the visitor returns false.
//
// Like EachUntil, it traverses a private snapshot of s.
func EachInReverseUntil[T any, FN untilFunc[T]](s []T, fn FN) {
	visit := toUntil[T](fn)
	if visit == nil {
		return
	}
	snapshot := snapshotOf(s)
	for i := len(snapshot) - 1; 0 <= i; i-- {
		if !visit(snapshot[i], i, snapshot) {
			return
		}
	}
}
