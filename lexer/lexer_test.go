package lexer_test

import (
	"github.com/joomcode/errorx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/lexer"
	"github.com/sarchlab/stackc/program"
)

// describeAll renders every instruction of p as source-like text.
func describeAll(p *program.Program) []string {
	out := make([]string, 0, p.Len())
	for _, inst := range p.Insts {
		out = append(out, p.Describe(inst))
	}
	return out
}

var _ = Describe("Lexer", func() {
	Context("well-formed statements", func() {
		It("should lex every keyword", func() {
			p, errs := lexer.Lex(`pushi 2; pushi 3; plusi; pushs "hi"; puts; exit;`)

			Expect(errs).To(BeEmpty())
			Expect(describeAll(p)).To(Equal([]string{
				"pushi 2", "pushi 3", "plusi", `pushs "hi"`, "puts", "exit",
			}))
			Expect(p.Insts[4]).To(Equal(program.CallIntrinsic{ID: program.Puts}))
			Expect(p.Insts[5]).To(Equal(program.CallIntrinsic{ID: program.Exit}))
		})

		It("should ignore spaces, newlines, tabs and carriage returns", func() {
			p, errs := lexer.Lex("pushi\t7 ;\r\n\n   exit\n;")

			Expect(errs).To(BeEmpty())
			Expect(describeAll(p)).To(Equal([]string{"pushi 7", "exit"}))
		})

		It("should record the position of each terminating semicolon", func() {
			p, _ := lexer.Lex("pushi 1;\n  exit;")

			Expect(p.Pos).To(Equal([]diag.Pos{{Line: 1, Col: 8}, {Line: 2, Col: 7}}))
		})

		It("should accept operands before keywords", func() {
			p, errs := lexer.Lex(`"hi" pushs; 5 pushi;`)

			Expect(errs).To(BeEmpty())
			Expect(describeAll(p)).To(Equal([]string{`pushs "hi"`, "pushi 5"}))
		})

		It("should split a keyword glued to a number", func() {
			p, errs := lexer.Lex("pushi42;")

			Expect(errs).To(BeEmpty())
			Expect(describeAll(p)).To(Equal([]string{"pushi 42"}))
		})

		It("should default missing operands", func() {
			p, errs := lexer.Lex("pushi; pushs;")

			Expect(errs).To(BeEmpty())
			Expect(p.Insts).To(Equal([]program.Inst{
				program.PushInt{Value: 0},
				program.PushString{},
			}))
			Expect(p.Str(p.Insts[1].(program.PushString).Str)).To(Equal(""))
		})

		It("should let replacing keywords discard earlier operands", func() {
			p, errs := lexer.Lex(`pushi 9 plusi; "x" puts;`)

			Expect(errs).To(BeEmpty())
			Expect(p.Insts).To(Equal([]program.Inst{
				program.AddInt{},
				program.CallIntrinsic{ID: program.Puts},
			}))
		})

		It("should keep the last operand of a statement", func() {
			p, errs := lexer.Lex("pushi 1 2;")

			Expect(errs).To(BeEmpty())
			Expect(p.Insts).To(Equal([]program.Inst{program.PushInt{Value: 2}}))
		})
	})

	Context("string literals", func() {
		It("should decode newline and tab escapes", func() {
			p, errs := lexer.Lex(`pushs "a\nb\tc"; puts;`)

			Expect(errs).To(BeEmpty())
			s := p.Insts[0].(program.PushString)
			Expect(p.Strings.Bytes(s.Str)).To(Equal([]byte{'a', 0x0A, 'b', 0x09, 'c'}))
		})

		It("should drop unknown escapes", func() {
			p, errs := lexer.Lex(`pushs "a\qb\\c\"d"; puts;`)

			Expect(errs).To(BeEmpty())
			Expect(p.Str(p.Insts[0].(program.PushString).Str)).To(Equal("abcd"))
		})

		It("should keep whitespace and semicolons inside literals", func() {
			p, errs := lexer.Lex(`pushs " ; x ;"; puts;`)

			Expect(errs).To(BeEmpty())
			Expect(p.Len()).To(Equal(2))
			Expect(p.Str(p.Insts[0].(program.PushString).Str)).To(Equal(" ; x ;"))
		})

		It("should own the decoded bytes in the program arena", func() {
			p, _ := lexer.Lex(`pushs "one"; pushs "two";`)

			Expect(p.Strings.Len()).To(Equal(6))
			Expect(p.Str(p.Insts[1].(program.PushString).Str)).To(Equal("two"))
		})

		It("should report unterminated literals", func() {
			p, errs := lexer.Lex(`pushs "open`)

			Expect(p.Len()).To(Equal(0))
			Expect(errs).To(HaveLen(1))
			Expect(errorx.IsOfType(errs[0], diag.Lexical)).To(BeTrue())
			Expect(errs[0].Error()).To(ContainSubstring("unterminated string literal"))
			pos, ok := diag.PosOf(errs[0])
			Expect(ok).To(BeTrue())
			Expect(pos).To(Equal(diag.Pos{Line: 1, Col: 7}))
		})

		It("should report a trailing backslash as unterminated", func() {
			_, errs := lexer.Lex(`pushs "ab\`)

			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Error()).To(ContainSubstring("unterminated"))
		})
	})

	Context("lexical errors", func() {
		It("should report unknown keywords and continue", func() {
			p, errs := lexer.Lex("pushi 1; dup; pushi 2; plusi; exit;")

			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Error()).To(ContainSubstring("Not a valid instruction: dup"))
			tok, ok := diag.TokenOf(errs[0])
			Expect(ok).To(BeTrue())
			Expect(tok).To(Equal("dup"))
			Expect(describeAll(p)).To(Equal([]string{"pushi 1", "pushi 2", "plusi", "exit"}))
		})

		It("should leave the pending instruction untouched on unknown keywords", func() {
			p, errs := lexer.Lex("pushi Pushi 4;")

			Expect(errs).To(HaveLen(1))
			Expect(describeAll(p)).To(Equal([]string{"pushi 4"}))
		})

		It("should report malformed integers and keep the previous operand", func() {
			p, errs := lexer.Lex("pushi 3 12ab; exit;")

			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Error()).To(ContainSubstring(`malformed integer literal "12ab"`))
			Expect(describeAll(p)).To(Equal([]string{"pushi 3", "exit"}))
		})

		It("should report integers that overflow", func() {
			_, errs := lexer.Lex("pushi 99999999999999999999;")

			Expect(errs).To(HaveLen(1))
			Expect(errorx.IsOfType(errs[0], diag.Lexical)).To(BeTrue())
		})

		It("should report and skip unexpected characters", func() {
			p, errs := lexer.Lex("pushi 1; + exit;")

			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Error()).To(ContainSubstring("unexpected character"))
			pos, _ := diag.PosOf(errs[0])
			Expect(pos).To(Equal(diag.Pos{Line: 1, Col: 10}))
			Expect(describeAll(p)).To(Equal([]string{"pushi 1", "exit"}))
		})

		It("should report operands without an instruction", func() {
			p, errs := lexer.Lex(`5; "x"; exit;`)

			Expect(errs).To(HaveLen(2))
			Expect(errs[0].Error()).To(ContainSubstring("operand without instruction"))
			Expect(describeAll(p)).To(Equal([]string{"exit"}))
		})
	})

	Context("statement boundaries", func() {
		It("should drop empty statements", func() {
			p, errs := lexer.Lex(";;pushi 1;; ;exit;")

			Expect(errs).To(BeEmpty())
			Expect(describeAll(p)).To(Equal([]string{"pushi 1", "exit"}))
		})

		It("should drop a final statement without semicolon", func() {
			p, errs := lexer.Lex("pushi 1; exit")

			Expect(errs).To(BeEmpty())
			Expect(describeAll(p)).To(Equal([]string{"pushi 1"}))
		})

		It("should produce an empty program for empty input", func() {
			p, errs := lexer.Lex("")

			Expect(errs).To(BeEmpty())
			Expect(p.Len()).To(Equal(0))
		})
	})

	Context("custom keyword sets", func() {
		It("should lex with the provided ISA", func() {
			isa := program.NewISA("tiny")
			isa.Register(program.Keyword{Name: "halt", Kind: program.KindIntrinsic,
				Intrinsic: program.Exit, Replaces: true})

			l := lexer.NewWithISA("halt; exit;", isa)
			p := l.Run()

			Expect(p.Insts).To(Equal([]program.Inst{program.CallIntrinsic{ID: program.Exit}}))
			Expect(l.Errors()).To(HaveLen(1))
		})

		It("should return the same program when run twice", func() {
			l := lexer.New("exit;")

			Expect(l.Run()).To(BeIdenticalTo(l.Run()))
		})
	})
})
