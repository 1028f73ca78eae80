package isometry

import "errors"

// ErrEmptyStack is returned by Pop when nothing has been pushed.
var ErrEmptyStack = errors.New("isometry: pop from empty transform stack")

// Stack holds a current transform and the transforms saved below it. The zero
// Stack has the identity as its current transform.
//
// Transforms are composed the way nested frames are: after Concat(a) then
// Concat(b), Apply(v) is a·b·v, so b acts first.
type Stack struct {
	current *Matrix3
	saved   []Matrix3
}

func (s *Stack) Current() Matrix3 {
	if s.current == nil {
		return Identity
	}
	return *s.current
}

// Push saves the current transform.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.Current())
}

// Pop restores the most recently saved transform.
func (s *Stack) Pop() error {
	n := len(s.saved)
	if n == 0 {
		return ErrEmptyStack
	}
	m := s.saved[n-1]
	s.current = &m
	s.saved = s.saved[:n-1]
	return nil
}

func (s *Stack) Depth() int { return len(s.saved) }

// Concat composes m onto the current transform.
func (s *Stack) Concat(m Matrix3) {
	if s.current == nil {
		s.current = &m
		return
	}
	c := s.current.MatMul(m)
	s.current = &c
}

// Apply maps v through the current transform.
func (s *Stack) Apply(v Vector3) Vector3 {
	return s.Current().MulVec(v)
}
