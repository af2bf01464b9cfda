// Package qbe assembles the textual IR consumed by the QBE backend.
//
// A Module holds a data section and the body of the exported entry function.
// The rendered text is the data section, a blank line, then the function:
//
//	data $str0 = { b  "hi", b 0}
//
//	export function w $main() {
//	@start
//	   %r =w call $puts(l $str0)
//	   ret 0
//	}
package qbe

import (
	"strconv"
	"strings"
)

const (
	// EntryName is the exported entry function.
	EntryName = "main"
	// EntryLabel starts the entry block.
	EntryLabel = "start"
	// ResultTemp receives the discarded result of every call.
	ResultTemp = "r"

	indent = "   "
)

// Arg is a call argument.
type Arg struct {
	text string
}

// Sym refers to a global symbol.
func Sym(name string) Arg {
	return Arg{text: "$" + name}
}

// Int is an integer constant.
func Int(v int64) Arg {
	return Arg{text: strconv.FormatInt(v, 10)}
}

func (a Arg) String() string {
	return a.text
}

// Module accumulates IR text. The zero value is ready to use.
type Module struct {
	data  strings.Builder
	body  strings.Builder
	calls int
	decls int
}

// DataString declares sym as the raw bytes of b followed by a zero byte.
func (m *Module) DataString(sym string, b []byte) {
	m.data.WriteString("data $")
	m.data.WriteString(sym)
	m.data.WriteString(" = { b  \"")
	m.data.Write(b)
	m.data.WriteString("\", b 0}\n")
	m.decls++
}

// Call appends a call to the external function fn with one long argument.
func (m *Module) Call(fn string, arg Arg) {
	m.body.WriteString(indent)
	m.body.WriteString("%" + ResultTemp + " =w call $")
	m.body.WriteString(fn)
	m.body.WriteString("(l ")
	m.body.WriteString(arg.text)
	m.body.WriteString(")\n")
	m.calls++
}

// NumCalls returns the number of call steps emitted.
func (m *Module) NumCalls() int {
	return m.calls
}

// NumData returns the number of data declarations emitted.
func (m *Module) NumData() int {
	return m.decls
}

// String renders the module. The entry function always ends with `ret 0`,
// even when an earlier call never returns.
func (m *Module) String() string {
	var sb strings.Builder

	sb.WriteString(m.data.String())
	sb.WriteString("\n")
	sb.WriteString("export function w $" + EntryName + "() {\n")
	sb.WriteString("@" + EntryLabel + "\n")
	sb.WriteString(m.body.String())
	sb.WriteString(indent + "ret 0\n")
	sb.WriteString("}\n")

	return sb.String()
}
