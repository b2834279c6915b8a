package arbor

// allocatorPageSize is the number of records reserved per page. Pages are
// never reallocated, so records keep a stable address until freed or the
// pool is reset.
const allocatorPageSize = 64

// allocator is a page-backed pool of fixed-size records. Allocation and free
// are O(1) amortized; the pool grows on demand and never fails. Reset
// invalidates every outstanding pointer at once.
type allocator[T any] struct {
	pages [][]T
	free  []*T
}

// allocate returns a zeroed record, reusing a freed slot when one exists.
func (a *allocator[T]) allocate() *T {
	if n := len(a.free); n > 0 {
		p := a.free[n-1]
		a.free = a.free[:n-1]
		return p
	}

	if len(a.pages) == 0 || len(a.pages[len(a.pages)-1]) == allocatorPageSize {
		a.pages = append(a.pages, make([]T, 0, allocatorPageSize))
	}
	page := &a.pages[len(a.pages)-1]
	*page = append(*page, *new(T))
	return &(*page)[len(*page)-1]
}

// release returns a record to the pool. The record is zeroed immediately so
// a freed slot does not retain references to the objects it once held. The
// caller must not use p afterward.
func (a *allocator[T]) release(p *T) {
	var zero T
	*p = zero
	a.free = append(a.free, p)
}

// reset drops every page and freed slot. All records handed out so far
// become invalid.
func (a *allocator[T]) reset() {
	a.pages = nil
	a.free = nil
}
