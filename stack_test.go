package isometry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	rotX90 = NewMatrix3(1, 0, 0, 0, 0, -1, 0, 1, 0)
	rotZ90 = NewMatrix3(0, -1, 0, 1, 0, 0, 0, 0, 1)
)

func TestStack_ZeroValue(t *testing.T) {
	var s Stack
	if diff := cmp.Diff(Identity, s.Current()); diff != "" {
		t.Error("zero Stack is not the identity:", diff)
	}
	if err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Pop on empty stack error = %v, want ErrEmptyStack", err)
	}
}

func TestStack_ConcatOrder(t *testing.T) {
	var s Stack
	s.Concat(rotZ90)
	s.Concat(rotX90)

	// rotX90 acts first: y -> z, which rotZ90 leaves alone.
	if got := s.Apply(UnitY); !got.Equal(UnitZ) {
		t.Errorf("Apply(UnitY) = %v, want %v", got, UnitZ)
	}
	if diff := cmp.Diff(rotZ90.MatMul(rotX90), s.Current()); diff != "" {
		t.Error("current transform did not match expectation:", diff)
	}
}

func TestStack_PushPop(t *testing.T) {
	var s Stack
	s.Concat(rotZ90)
	s.Push()
	s.Concat(rotZ90)

	if got := s.Apply(UnitX); !got.Equal(UnitX.Neg()) {
		t.Errorf("two quarter turns took UnitX to %v, want %v", got, UnitX.Neg())
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}

	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if got := s.Apply(UnitX); !got.Equal(UnitY) {
		t.Errorf("after Pop, Apply(UnitX) = %v, want %v", got, UnitY)
	}
	if err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("second Pop error = %v, want ErrEmptyStack", err)
	}
}

func TestStack_SavedCopiesAreIndependent(t *testing.T) {
	var s Stack
	s.Push()
	s.Concat(rotX90)
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Identity, s.Current()); diff != "" {
		t.Error("Pop did not restore the identity:", diff)
	}
}
