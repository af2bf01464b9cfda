package core

import (
	"github.com/sarchlab/stackc/program"
	"github.com/sarchlab/stackc/qbe"
	"github.com/sarchlab/stackc/util/valgen"
)

// genState is everything one Generate call mutates. It is created fresh for
// every call, so generations never share numbering or stack contents.
type genState struct {
	PC      int
	Stack   *Stack
	Strings *StringTable
	Module  qbe.Module

	prog    *program.Program
	nextSym func() string
}

func newGenState(p *program.Program, stackLimit int, symPrefix string) *genState {
	return &genState{
		Stack:   NewStack(stackLimit),
		Strings: NewStringTable(),
		prog:    p,
		nextSym: valgen.MakeNameGen(symPrefix),
	}
}
