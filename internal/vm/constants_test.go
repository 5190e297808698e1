package vm

import "testing"

func TestConstantTableRoundTrips(t *testing.T) {
	tbl := NewConstantTable()
	idx := tbl.Add("hello")
	if got := tbl.Get(idx); got != "hello" {
		t.Errorf("Get(Add(%q)) = %q, want %q", "hello", got, "hello")
	}
}

func TestConstantTableDedupes(t *testing.T) {
	tbl := NewConstantTable()
	a := tbl.Add("x")
	b := tbl.Add("x")
	if a != b {
		t.Errorf("Add(%q) returned different indices %d, %d for the same string", "x", a, b)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after inserting a duplicate", tbl.Len())
	}
}

func TestExecutionContextBindOverwritesExistingBinding(t *testing.T) {
	ec := NewExecutionContext()
	cellA := &Cell{Kind: CellNumber, Number: 1}
	ec.Bind("x", cellA)
	if got, ok := ec.Resolve("x"); !ok || got != cellA {
		t.Fatalf("Resolve(x) = %v, %v", got, ok)
	}

	cellB := &Cell{Kind: CellNumber, Number: 2}
	ec.Bind("x", cellB)
	if got, ok := ec.Resolve("x"); !ok || got != cellB {
		t.Fatalf("Resolve(x) after rebind = %v, %v, want %v", got, ok, cellB)
	}
}

func TestExecutionContextResolveMissingNameFails(t *testing.T) {
	ec := NewExecutionContext()
	if _, ok := ec.Resolve("y"); ok {
		t.Error("Resolve found a name that was never bound")
	}
}
