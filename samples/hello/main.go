package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/stackc/core"
	"github.com/sarchlab/stackc/lexer"
	"github.com/sarchlab/stackc/verify"
	"github.com/tebeka/atexit"
)

//go:embed hello.stk
var source string

func hello() int {
	p, errs := lexer.Lex(source)
	for _, err := range errs {
		slog.Error("Lexical error", "Error", err)
	}

	ir, err := core.Generate(p)
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	fmt.Println("========================")
	fmt.Print(ir)
	fmt.Println("========================")

	code, err := verify.NewInterpreter(p, os.Stdout).Run()
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	return code
}

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})

	slog.SetDefault(slog.New(handler))

	atexit.Exit(hello())
}
