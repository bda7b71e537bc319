package option

import "testing"

func TestSomeAndNone(t *testing.T) {
	s := Some(12.5)
	if !s.IsSome() || s.IsNone() {
		t.Fatalf("expected some")
	}
	if s.Get() != 12.5 {
		t.Fatalf("unexpected value %v", s.Get())
	}

	n := None[float64]()
	if n.IsSome() || !n.IsNone() {
		t.Fatalf("expected none")
	}
}

func TestGetOnNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	n := None[int]()
	_ = n.Get()
}
