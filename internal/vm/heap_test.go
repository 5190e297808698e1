package vm

import "testing"

func TestNewHeapRoundsUpToPageSize(t *testing.T) {
	h := NewHeap(1)
	if h.Cap()*cellAlignment < pageSize {
		t.Errorf("heap capacity %d cells (%d bytes) is smaller than one page", h.Cap(), h.Cap()*cellAlignment)
	}
}

func TestAllocReturnsDistinctNonOverlappingCells(t *testing.T) {
	h := NewHeap(pageSize)
	a, ok := h.Alloc()
	if !ok {
		t.Fatal("first Alloc failed on a fresh heap")
	}
	b, ok := h.Alloc()
	if !ok {
		t.Fatal("second Alloc failed")
	}
	if a == b {
		t.Fatal("two allocations returned the same cell")
	}
	a.Kind = CellNumber
	a.Number = 42
	if b.Kind == CellNumber && b.Number == 42 {
		t.Fatal("writing through one cell pointer is visible through another: allocations overlap")
	}
}

func TestAllocExhaustsArena(t *testing.T) {
	h := NewHeap(pageSize)
	count := 0
	for {
		_, ok := h.Alloc()
		if !ok {
			break
		}
		count++
	}
	if count != h.Cap() {
		t.Errorf("allocated %d cells before exhaustion, want exactly Cap()=%d", count, h.Cap())
	}
	if _, ok := h.Alloc(); ok {
		t.Fatal("Alloc succeeded past capacity")
	}
}

func TestCellTypeOfMatchesJSSemantics(t *testing.T) {
	cases := []struct {
		kind CellKind
		want string
	}{
		{CellUndefined, "undefined"},
		{CellNull, "object"},
		{CellBoolean, "boolean"},
		{CellNumber, "number"},
		{CellString, "string"},
		{CellFunction, "function"},
		{CellNativeFunction, "function"},
		{CellObject, "object"},
	}
	for _, c := range cases {
		cell := &Cell{Kind: c.kind}
		if got := cell.TypeOf(); got != c.want {
			t.Errorf("Cell{Kind: %v}.TypeOf() = %q, want %q", c.kind, got, c.want)
		}
	}
}
