package core

import (
	"github.com/sarchlab/stackc/diag"
)

// Stack is the compile-time evaluation stack. It keeps integers and
// string-table references on separate tracks. Stack only tracks where
// operands come from; nothing here runs at program run time.
type Stack struct {
	ints  []int64
	strs  []int
	limit int
}

// NewStack creates a stack. A positive limit bounds the depth of each track;
// zero or less means the tracks grow as needed.
func NewStack(limit int) *Stack {
	return &Stack{limit: limit}
}

// PushInt pushes an integer.
func (s *Stack) PushInt(v int64) error {
	if s.limit > 0 && len(s.ints) >= s.limit {
		return diag.StackOverflow.New(
			"integer stack overflow: depth limit %d reached", s.limit)
	}

	s.ints = append(s.ints, v)
	return nil
}

// PushStringRef pushes a string-table ID.
func (s *Stack) PushStringRef(id int) error {
	if s.limit > 0 && len(s.strs) >= s.limit {
		return diag.StackOverflow.New(
			"string stack overflow: depth limit %d reached", s.limit)
	}

	s.strs = append(s.strs, id)
	return nil
}

// PopInt pops the most recently pushed integer.
func (s *Stack) PopInt() (int64, error) {
	if len(s.ints) == 0 {
		return 0, diag.StackUnderflow.New("pop from empty integer stack")
	}

	v := s.ints[len(s.ints)-1]
	s.ints = s.ints[:len(s.ints)-1]
	return v, nil
}

// PopStringRef pops the most recently pushed string-table ID.
func (s *Stack) PopStringRef() (int, error) {
	if len(s.strs) == 0 {
		return 0, diag.StackUnderflow.New("pop from empty string stack")
	}

	id := s.strs[len(s.strs)-1]
	s.strs = s.strs[:len(s.strs)-1]
	return id, nil
}

// Depth returns the depth of the integer track.
func (s *Stack) Depth() int {
	return len(s.ints)
}

// StringDepth returns the depth of the string track.
func (s *Stack) StringDepth() int {
	return len(s.strs)
}

// Ints returns a copy of the integer track, bottom first.
func (s *Stack) Ints() []int64 {
	return append([]int64(nil), s.ints...)
}

// StringRefs returns a copy of the string track, bottom first.
func (s *Stack) StringRefs() []int {
	return append([]int(nil), s.strs...)
}

// AddInts returns a + b, or an IntOverflow error when the sum does not fit
// in an int64.
func AddInts(a, b int64) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, diag.IntOverflow.New("integer overflow: %d + %d", b, a)
	}
	return sum, nil
}
