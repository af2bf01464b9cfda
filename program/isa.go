// Package program defines the instruction set of the stack language and the
// instruction stream passed from the lexer to the code generator.
package program

import "sort"

// Keyword describes how a source keyword affects the instruction being
// assembled by the lexer.
type Keyword struct {
	Name string
	Kind Kind
	// Intrinsic is meaningful only when Kind is KindIntrinsic.
	Intrinsic Intrinsic
	// Replaces marks keywords that reset the pending instruction to a
	// complete one, dropping operands attached earlier in the statement.
	Replaces bool
}

// Inst returns the complete instruction a replacing keyword stands for.
func (k Keyword) Inst() Inst {
	switch k.Kind {
	case KindAddInt:
		return AddInt{}
	case KindIntrinsic:
		return CallIntrinsic{ID: k.Intrinsic}
	case KindPushInt:
		return PushInt{}
	case KindPushString:
		return PushString{}
	}
	return nil
}

// ISA is a set of keywords recognized by the lexer.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from keyword to its behavior.
	nameToKeyword map[string]Keyword
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:       name,
		nameToKeyword: make(map[string]Keyword),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Register adds a keyword. Registering an existing name replaces it.
func (isa *ISA) Register(kw Keyword) {
	isa.nameToKeyword[kw.Name] = kw
}

// Lookup finds a keyword. Matching is case-sensitive.
func (isa *ISA) Lookup(word string) (Keyword, bool) {
	kw, ok := isa.nameToKeyword[word]
	return kw, ok
}

// Names returns the registered keywords in sorted order.
func (isa *ISA) Names() []string {
	names := make([]string, 0, len(isa.nameToKeyword))
	for name := range isa.nameToKeyword {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
