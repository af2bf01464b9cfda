package api

// NameIDBinding binds source names to task IDs. IDs are distributed from 0
// and never reused; registering a name again binds it to a fresh ID.
type NameIDBinding struct {
	// distributed is the number of IDs that have been distributed
	distributed int
	// nameToID maps a name to its most recent ID
	nameToID map[string]int
	// IDToName maps every distributed ID to its name
	IDToName map[int]string
}

// NewNameIDBinding creates an empty binding.
func NewNameIDBinding() *NameIDBinding {
	return &NameIDBinding{
		nameToID: make(map[string]int),
		IDToName: make(map[int]string),
	}
}

// RegisterName registers a name and returns its ID.
func (n *NameIDBinding) RegisterName(name string) int {
	id := n.distributed
	n.nameToID[name] = id
	n.IDToName[id] = name
	n.distributed++
	return id
}

// LookupName returns the most recent ID bound to name.
func (n *NameIDBinding) LookupName(name string) (int, bool) {
	id, ok := n.nameToID[name]
	return id, ok
}

// Len returns the number of IDs distributed.
func (n *NameIDBinding) Len() int {
	return n.distributed
}
