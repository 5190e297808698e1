package runtime

import "testing"

func TestScopeAssignFallsBackToVar(t *testing.T) {
	s := NewScope()
	if err := s.Assign("x", Number(1)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	v, ok := s.Get("x")
	if !ok || v.Value.Number != 1 {
		t.Fatalf("Get(x) = %+v, %v", v, ok)
	}
	if v.VarKind != KindVar {
		t.Errorf("VarKind = %v, want KindVar", v.VarKind)
	}
}

func TestScopeConstReassignmentErrors(t *testing.T) {
	s := NewScope()
	s.Declare("a", KindConst, Number(1))
	if err := s.Assign("a", Number(2)); err == nil {
		t.Fatal("expected error assigning to const")
	}
}

func TestScopeDoesNotLeakAfterPop(t *testing.T) {
	s := NewScope()
	s.Declare("outer", KindLet, Number(1))
	s.Push()
	s.Declare("inner", KindLet, Number(2))
	if _, ok := s.Get("inner"); !ok {
		t.Fatal("expected inner to resolve inside block")
	}
	s.Pop()
	if _, ok := s.Get("inner"); ok {
		t.Fatal("inner leaked out of its block")
	}
	if _, ok := s.Get("outer"); !ok {
		t.Fatal("outer should still resolve")
	}
}

func TestAssignWritesDeclaringFrame(t *testing.T) {
	s := NewScope()
	s.Declare("x", KindLet, Number(1))
	s.Push()
	if err := s.Assign("x", Number(5)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	s.Pop()
	v, _ := s.Get("x")
	if v.Value.Number != 5 {
		t.Errorf("x = %v, want 5", v.Value.Number)
	}
}

func TestObjectPrototypeChainLookup(t *testing.T) {
	proto := NewObject()
	proto.Set("greet", String("hi"))
	child := NewObject()
	child.SetPrototype(proto)

	if got := child.Get("greet"); got.Str != "hi" {
		t.Errorf("child.Get(greet) = %v, want hi", got)
	}
	if got := child.Get("missing"); got.Kind != KindUndefined {
		t.Errorf("child.Get(missing) = %v, want undefined", got)
	}
}

func TestTruthiness(t *testing.T) {
	falsy := []Value{Bool(false), Number(0), String(""), Null(), Undefined()}
	for _, v := range falsy {
		if ToBoolean(v) {
			t.Errorf("ToBoolean(%v) = true, want false", v)
		}
	}
	truthy := []Value{Bool(true), Number(1), Number(-1), String("x"), Obj(NewObject())}
	for _, v := range truthy {
		if !ToBoolean(v) {
			t.Errorf("ToBoolean(%v) = false, want true", v)
		}
	}
}

func TestStrictVsLooseEquals(t *testing.T) {
	if StrictEquals(Number(1), String("1")) {
		t.Error("1 === '1' should be false")
	}
	if !LooseEquals(Number(1), String("1")) {
		t.Error("1 == '1' should be true")
	}
	if !LooseEquals(Null(), Undefined()) {
		t.Error("null == undefined should be true")
	}
	if LooseEquals(Null(), Number(0)) {
		t.Error("null == 0 should be false")
	}
}
