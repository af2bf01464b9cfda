package verify

import (
	"io"

	"github.com/joomcode/errorx"
	"github.com/sarchlab/stackc/arena"
	"github.com/sarchlab/stackc/core"
	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/program"
)

// Interpreter executes a program without generating IR.
type Interpreter struct {
	prog    *program.Program
	stdout  io.Writer
	stack   *core.Stack
	strings *core.StringTable

	PC int

	TraceInstPre  func(pc int, inst program.Inst)
	TraceInstPost func(pc int, inst program.Inst, stack *core.Stack)
}

// NewInterpreter creates an interpreter that writes program output to stdout.
func NewInterpreter(p *program.Program, stdout io.Writer) *Interpreter {
	return &Interpreter{
		prog:    p,
		stdout:  stdout,
		stack:   core.NewStack(0),
		strings: core.NewStringTable(),
	}
}

// WithStackLimit bounds each track of the runtime stack. It must be called
// before Run.
func (it *Interpreter) WithStackLimit(limit int) *Interpreter {
	it.stack = core.NewStack(limit)
	return it
}

// Stack exposes the runtime stack.
func (it *Interpreter) Stack() *core.Stack {
	return it.stack
}

// Run executes the program from its current PC. It returns the exit code of
// the first exit executed, or 0 when the program falls off the end.
func (it *Interpreter) Run() (int, error) {
	for ; it.PC < it.prog.Len(); it.PC++ {
		inst, pos := it.prog.At(it.PC)

		if it.TraceInstPre != nil {
			it.TraceInstPre(it.PC, inst)
		}

		code, exited, err := it.step(inst)
		if err != nil {
			return 0, errorx.Decorate(err, "interpreting %s at %s",
				it.prog.Describe(inst), pos).
				WithProperty(diag.PropPos, pos)
		}

		if it.TraceInstPost != nil {
			it.TraceInstPost(it.PC, inst, it.stack)
		}

		if exited {
			it.PC++
			return code, nil
		}
	}

	return 0, nil
}

func (it *Interpreter) step(inst program.Inst) (code int, exited bool, err error) {
	switch v := inst.(type) {
	case program.PushInt:
		return 0, false, it.stack.PushInt(v.Value)
	case program.AddInt:
		a, err := it.stack.PopInt()
		if err != nil {
			return 0, false, err
		}
		b, err := it.stack.PopInt()
		if err != nil {
			return 0, false, err
		}
		sum, err := core.AddInts(a, b)
		if err != nil {
			return 0, false, err
		}
		return 0, false, it.stack.PushInt(sum)
	case program.PushString:
		return 0, false, it.stack.PushStringRef(it.strings.Register(v.Str))
	case program.CallIntrinsic:
		return it.intrinsic(v.ID)
	}

	return 0, false, diag.Unimplemented.New("Not implemented yet: %v", inst)
}

func (it *Interpreter) intrinsic(id program.Intrinsic) (int, bool, error) {
	switch id {
	case program.Puts:
		ref, err := it.popString()
		if err != nil {
			return 0, false, err
		}

		b := append(it.prog.Strings.Bytes(ref), '\n')
		if _, err := it.stdout.Write(b); err != nil {
			return 0, false, diag.IO.Wrap(err, "failed to write program output")
		}
		return 0, false, nil
	case program.Exit:
		code, err := it.stack.PopInt()
		if err != nil {
			return 0, false, err
		}
		return int(code), true, nil
	}

	return 0, false, diag.Unimplemented.New("Not implemented yet: %s", id)
}

func (it *Interpreter) popString() (ref arena.Ref, err error) {
	id, err := it.stack.PopStringRef()
	if err != nil {
		return ref, err
	}

	ref, ok := it.strings.Lookup(id)
	if !ok {
		return ref, diag.Generation.New("string %d is not in the string table", id)
	}
	return ref, nil
}
