package arbor

import "testing"

func TestAllocatorGrowsAcrossPages(t *testing.T) {
	var a allocator[Octant]
	const n = allocatorPageSize*2 + 5

	seen := make(map[*Octant]bool, n)
	for i := 0; i < n; i++ {
		p := a.allocate()
		if seen[p] {
			t.Fatalf("allocation %d returned an already-live record", i)
		}
		seen[p] = true
	}
	if len(a.pages) != 3 {
		t.Errorf("pages = %d, want 3", len(a.pages))
	}
}

func TestAllocatorAddressesStayStable(t *testing.T) {
	var a allocator[Octant]
	first := a.allocate()
	first.level = 42

	// Growing past the first page must not move earlier records.
	for i := 0; i < allocatorPageSize*3; i++ {
		a.allocate()
	}
	if first.level != 42 {
		t.Error("record moved or was clobbered by later allocations")
	}
}

func TestAllocatorReusesFreedRecords(t *testing.T) {
	var a allocator[Octant]
	p := a.allocate()
	p.level = 7
	a.release(p)

	q := a.allocate()
	if q != p {
		t.Error("freed record should be reused first")
	}
	if q.level != 0 {
		t.Error("reused record should be zeroed")
	}
}

func TestAllocatorReleaseClearsRecord(t *testing.T) {
	var a allocator[Octant]
	parent := a.allocate()
	p := a.allocate()
	p.parent = parent
	p.nodes = []Node{newTestNode(Vec3{}, 1)}
	p.numNodes = 1

	a.release(p)

	// A freed slot must not retain references to the objects or octants it
	// once held while it waits on the free list.
	if p.nodes != nil || p.parent != nil || p.numNodes != 0 {
		t.Error("released record should be zeroed immediately")
	}
}

func TestAllocatorReset(t *testing.T) {
	var a allocator[Octant]
	for i := 0; i < allocatorPageSize+1; i++ {
		a.allocate()
	}
	a.release(a.allocate())
	a.reset()

	if len(a.pages) != 0 || len(a.free) != 0 {
		t.Error("reset should drop all pages and freed slots")
	}
	if a.allocate() == nil {
		t.Error("allocator should keep working after reset")
	}
}
