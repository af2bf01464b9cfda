package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/stackc/core"
	"github.com/sarchlab/stackc/lexer"
	"github.com/sarchlab/stackc/program"
	"github.com/tebeka/atexit"
)

//go:embed arith.stk
var source string

func main() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: core.LevelTrace,
	})

	slog.SetDefault(slog.New(handler))

	p, errs := lexer.Lex(source)
	if len(errs) > 0 {
		atexit.Fatalf("%d lexical error(s)", len(errs))
	}

	program.PrintProgram(os.Stdout, p)

	ir, err := core.NewBuilder().
		WithTrace(os.Stdout).
		Build("Generator").
		Generate(p)
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	fmt.Print(ir)
	atexit.Exit(0)
}
