package core

import "github.com/sarchlab/stackc/arena"

// StringTable binds generator-assigned IDs to string operands. IDs are
// distributed from 0 in registration order and never reused.
type StringTable struct {
	// idToRef[i] is the string bound to ID i.
	idToRef []arena.Ref
}

// NewStringTable creates an empty table.
func NewStringTable() *StringTable {
	return &StringTable{}
}

// Register binds ref to the next ID and returns the ID.
func (t *StringTable) Register(ref arena.Ref) int {
	t.idToRef = append(t.idToRef, ref)
	return len(t.idToRef) - 1
}

// Lookup returns the string bound to id.
func (t *StringTable) Lookup(id int) (arena.Ref, bool) {
	if id < 0 || id >= len(t.idToRef) {
		return arena.Ref{}, false
	}
	return t.idToRef[id], true
}

// Len returns the number of IDs distributed.
func (t *StringTable) Len() int {
	return len(t.idToRef)
}
