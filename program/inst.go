package program

import (
	"fmt"

	"github.com/sarchlab/stackc/arena"
)

// Kind identifies the variant of an instruction.
type Kind uint8

const (
	KindPushInt Kind = iota + 1
	KindAddInt
	KindPushString
	KindIntrinsic
)

func (k Kind) String() string {
	switch k {
	case KindPushInt:
		return "OPType::PUSHI"
	case KindAddInt:
		return "OPType::PLUSI"
	case KindPushString:
		return "OPType::PUSHS"
	case KindIntrinsic:
		return "OPType::INTRINSIC"
	default:
		return fmt.Sprintf("OPType(%d)", uint8(k))
	}
}

// Intrinsic selects a built-in operation lowered to an external call.
type Intrinsic int

const (
	Exit Intrinsic = iota
	Puts
)

func (i Intrinsic) String() string {
	switch i {
	case Exit:
		return "IntrinsicType::EXIT"
	case Puts:
		return "IntrinsicType::PUTS"
	default:
		return "Unknown intrinsic."
	}
}

// Valid reports whether i is a known selector.
func (i Intrinsic) Valid() bool {
	return i == Exit || i == Puts
}

// Inst is one instruction of a program. The set of implementations is closed:
// PushInt, AddInt, PushString and CallIntrinsic.
type Inst interface {
	Kind() Kind
	String() string

	isInst()
}

// PushInt pushes an integer literal.
type PushInt struct {
	Value int64
}

func (PushInt) Kind() Kind { return KindPushInt }
func (PushInt) String() string { return KindPushInt.String() }
func (PushInt) isInst() {}

// AddInt pops two integers and pushes their sum.
type AddInt struct{}

func (AddInt) Kind() Kind { return KindAddInt }
func (AddInt) String() string { return KindAddInt.String() }
func (AddInt) isInst() {}

// PushString pushes a decoded string literal owned by the program's arena.
type PushString struct {
	Str arena.Ref
}

func (PushString) Kind() Kind { return KindPushString }
func (PushString) String() string { return KindPushString.String() }
func (PushString) isInst() {}

// CallIntrinsic invokes a built-in operation.
type CallIntrinsic struct {
	ID Intrinsic
}

func (CallIntrinsic) Kind() Kind { return KindIntrinsic }
func (c CallIntrinsic) String() string { return c.ID.String() }
func (CallIntrinsic) isInst() {}
