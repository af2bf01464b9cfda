package program

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/stackc/arena"
	"github.com/sarchlab/stackc/diag"
)

// Program is the instruction stream of one compilation unit. Insts and Pos
// are parallel; insertion order is execution order. Strings owns every
// string operand referenced by the instructions.
type Program struct {
	Insts   []Inst
	Pos     []diag.Pos
	Strings *arena.Arena
}

// New creates an empty program with a fresh arena.
func New() *Program {
	return &Program{Strings: arena.New()}
}

// Append adds inst, terminated at pos, to the end of the stream.
func (p *Program) Append(inst Inst, pos diag.Pos) {
	p.Insts = append(p.Insts, inst)
	p.Pos = append(p.Pos, pos)
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Insts)
}

// At returns the i-th instruction and its position.
func (p *Program) At(i int) (Inst, diag.Pos) {
	var pos diag.Pos
	if i < len(p.Pos) {
		pos = p.Pos[i]
	}
	return p.Insts[i], pos
}

// Str resolves a string operand.
func (p *Program) Str(r arena.Ref) string {
	return p.Strings.String(r)
}

// Describe renders inst as source-like text with its operand resolved, for
// diagnostics and dumps.
func (p *Program) Describe(inst Inst) string {
	switch v := inst.(type) {
	case PushInt:
		return "pushi " + strconv.FormatInt(v.Value, 10)
	case PushString:
		return "pushs " + strconv.Quote(p.Str(v.Str))
	case nil:
		return "<nil>"
	default:
		return Mnemonic(inst)
	}
}

// PrintProgram writes the instruction stream as a table.
func PrintProgram(w io.Writer, p *Program) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Program (%d instructions)", p.Len())
	t.AppendHeader(table.Row{"#", "Pos", "Kind", "Instruction"})

	for i := range p.Insts {
		inst, pos := p.At(i)
		t.AppendRow(table.Row{i, pos.String(), inst.String(), p.Describe(inst)})
	}

	t.Render()
}

// String implements fmt.Stringer for debugging.
func (p *Program) String() string {
	return fmt.Sprintf("Program{%d insts, %d string bytes}", p.Len(), p.Strings.Len())
}
