// Package diag defines the error taxonomy and source positions shared by the
// compilation pipeline.
//
// Errors are errorx errors in the "stackc" namespace:
//
//	stackc.lexical               report and continue
//	stackc.generation            fatal for one compilation
//	  stackc.generation.stack_underflow
//	  stackc.generation.stack_overflow
//	  stackc.generation.unimplemented
//	  stackc.generation.int_overflow
//	stackc.io                    fatal
package diag

import (
	"fmt"

	"github.com/joomcode/errorx"
)

var (
	Namespace = errorx.NewNamespace("stackc")

	Lexical    = Namespace.NewType("lexical")
	Generation = Namespace.NewType("generation")
	IO         = Namespace.NewType("io")

	StackUnderflow = Generation.NewSubtype("stack_underflow")
	StackOverflow  = Generation.NewSubtype("stack_overflow")
	Unimplemented  = Generation.NewSubtype("unimplemented")
	IntOverflow    = Generation.NewSubtype("int_overflow")

	// PropPos carries the Pos of the offending token or instruction.
	PropPos = errorx.RegisterPrintableProperty("pos")
	// PropToken carries the offending source text.
	PropToken = errorx.RegisterPrintableProperty("token")
)

// Pos is a 1-based line and column in the source text.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether p was set.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// PosOf returns the position attached to err, if any.
func PosOf(err error) (Pos, bool) {
	v, ok := errorx.ExtractProperty(err, PropPos)
	if !ok {
		return Pos{}, false
	}

	pos, ok := v.(Pos)
	return pos, ok
}

// TokenOf returns the offending token attached to err, if any.
func TokenOf(err error) (string, bool) {
	v, ok := errorx.ExtractProperty(err, PropToken)
	if !ok {
		return "", false
	}

	tok, ok := v.(string)
	return tok, ok
}

// IsFatal reports whether err must halt the compilation. Lexical errors are
// the only recoverable category.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errorx.IsOfType(err, Lexical)
}
