// Package core lowers a lexed program to QBE IR by simulating the operand
// stack at compile time.
//
// Only the intrinsics produce IR. Integer arithmetic is folded while
// simulating, so `pushi 2; pushi 3; plusi; exit;` emits a single
// `call $exit(l 5)`.
package core

import (
	"io"

	"github.com/joomcode/errorx"
	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/program"
)

// Generator turns programs into IR text. A Generator holds no per-program
// state and may be reused.
type Generator struct {
	name       string
	stackLimit int
	symPrefix  string
	trace      io.Writer

	emu *instEmulator
}

// Name returns the name given at build time.
func (g *Generator) Name() string {
	return g.name
}

// Generate simulates p from the first instruction to the last and returns
// the rendered IR. On error, no IR is returned.
func (g *Generator) Generate(p *program.Program) (string, error) {
	state := newGenState(p, g.stackLimit, g.symPrefix)

	for state.PC = 0; state.PC < p.Len(); state.PC++ {
		inst, pos := p.At(state.PC)

		Trace("Inst",
			"Generator", g.name,
			"PC", state.PC,
			"Pos", pos,
			"Inst", p.Describe(inst),
		)

		if err := g.emu.RunInst(inst, state); err != nil {
			return "", decorate(err, p.Describe(inst), state.PC, pos)
		}

		LogState(state)
		if g.trace != nil {
			PrintState(g.trace, state)
		}
	}

	return state.Module.String(), nil
}

func decorate(err error, desc string, pc int, pos diag.Pos) error {
	return errorx.Decorate(err, "instruction %d (%s) at %s", pc, desc, pos).
		WithProperty(diag.PropPos, pos).
		WithProperty(diag.PropToken, desc)
}

// Generate lowers p with a default generator.
func Generate(p *program.Program) (string, error) {
	return NewBuilder().Build("Generator").Generate(p)
}
