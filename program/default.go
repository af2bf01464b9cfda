package program

// DefaultISA returns a fresh copy of the stack language keyword set.
func DefaultISA() *ISA {
	isa := NewISA("stack language")

	isa.Register(Keyword{Name: "pushi", Kind: KindPushInt})
	isa.Register(Keyword{Name: "pushs", Kind: KindPushString})
	isa.Register(Keyword{Name: "plusi", Kind: KindAddInt, Replaces: true})
	isa.Register(Keyword{Name: "puts", Kind: KindIntrinsic, Intrinsic: Puts, Replaces: true})
	isa.Register(Keyword{Name: "exit", Kind: KindIntrinsic, Intrinsic: Exit, Replaces: true})

	return isa
}

// Mnemonic returns the source keyword for inst.
func Mnemonic(inst Inst) string {
	switch v := inst.(type) {
	case PushInt:
		return "pushi"
	case AddInt:
		return "plusi"
	case PushString:
		return "pushs"
	case CallIntrinsic:
		switch v.ID {
		case Exit:
			return "exit"
		case Puts:
			return "puts"
		}
		return v.ID.String()
	}
	return "?"
}
