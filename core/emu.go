package core

import (
	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/program"
	"github.com/sarchlab/stackc/qbe"
)

// instEmulator applies one instruction to the generator state: it updates the
// abstract stack and emits IR for intrinsics.
type instEmulator struct {
	instFuncs      map[program.Kind]func(program.Inst, *genState) error
	intrinsicFuncs map[program.Intrinsic]func(*genState) error
}

func newInstEmulator() *instEmulator {
	i := &instEmulator{}

	i.instFuncs = map[program.Kind]func(program.Inst, *genState) error{
		program.KindPushInt:    i.runPushInt,
		program.KindAddInt:     i.runAddInt,
		program.KindPushString: i.runPushString,
		program.KindIntrinsic:  i.runIntrinsic,
	}

	i.intrinsicFuncs = map[program.Intrinsic]func(*genState) error{
		program.Puts: i.runPuts,
		program.Exit: i.runExit,
	}

	return i
}

// RunInst dispatches inst to its handler.
func (i *instEmulator) RunInst(inst program.Inst, state *genState) error {
	if inst == nil {
		return diag.Unimplemented.New("Not implemented yet: empty instruction")
	}

	instFunc, ok := i.instFuncs[inst.Kind()]
	if !ok {
		return diag.Unimplemented.New("Not implemented yet: %s", inst)
	}

	return instFunc(inst, state)
}

func (i *instEmulator) runPushInt(inst program.Inst, state *genState) error {
	return state.Stack.PushInt(inst.(program.PushInt).Value)
}

// runAddInt folds the two topmost integers. The first pop is the most recently
// pushed value.
func (i *instEmulator) runAddInt(_ program.Inst, state *genState) error {
	a, err := state.Stack.PopInt()
	if err != nil {
		return err
	}

	b, err := state.Stack.PopInt()
	if err != nil {
		return err
	}

	sum, err := AddInts(a, b)
	if err != nil {
		return err
	}

	return state.Stack.PushInt(sum)
}

func (i *instEmulator) runPushString(inst program.Inst, state *genState) error {
	id := state.Strings.Register(inst.(program.PushString).Str)
	return state.Stack.PushStringRef(id)
}

func (i *instEmulator) runIntrinsic(inst program.Inst, state *genState) error {
	call := inst.(program.CallIntrinsic)

	intrinsicFunc, ok := i.intrinsicFuncs[call.ID]
	if !ok {
		return diag.Unimplemented.New("Not implemented yet: %s", call)
	}

	return intrinsicFunc(state)
}

func (i *instEmulator) runPuts(state *genState) error {
	id, err := state.Stack.PopStringRef()
	if err != nil {
		return err
	}

	ref, ok := state.Strings.Lookup(id)
	if !ok {
		return diag.Generation.New("string %d is not in the string table", id)
	}

	sym := state.nextSym()
	state.Module.DataString(sym, state.prog.Strings.Bytes(ref))
	state.Module.Call("puts", qbe.Sym(sym))

	return nil
}

func (i *instEmulator) runExit(state *genState) error {
	code, err := state.Stack.PopInt()
	if err != nil {
		return err
	}

	state.Module.Call("exit", qbe.Int(code))

	return nil
}
