// Command stackc compiles a stack language program to QBE IR.
//
// Usage:
//
//	stackc [flags] <file>
//
// Without a file, stackc does nothing and exits successfully.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarchlab/stackc/api"
	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/core"
	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/lexer"
	"github.com/sarchlab/stackc/program"
	"github.com/sarchlab/stackc/verify"
	"github.com/tebeka/atexit"
)

var (
	outputFlag     = flag.String("o", "", "output file (default ./build/output.ssa, or $STACKC_OUTPUT)")
	checkFlag      = flag.Bool("check", false, "print the verification report instead of writing IR")
	runFlag        = flag.Bool("run", false, "interpret the program and exit with its exit code")
	dumpFlag       = flag.Bool("dump", false, "print the instruction stream")
	traceFlag      = flag.Bool("trace", false, "print the simulator state after every instruction")
	strictFlag     = flag.Bool("strict", false, "treat lexical errors as fatal")
	stackLimitFlag = flag.Int("stack-limit", 0, "maximum depth of each stack track (0 is unbounded)")
	verboseFlag    = flag.Bool("v", false, "enable debug logs")
)

func main() {
	flag.Parse()
	setupLogger()

	inputFile := flag.Arg(0)
	if inputFile == "" {
		atexit.Exit(0)
	}

	src, err := os.ReadFile(inputFile)
	if err != nil {
		atexit.Fatalf("%v", diag.IO.Wrap(err, "failed to read %s", inputFile))
	}

	cfg := buildConfig()

	switch {
	case *checkFlag:
		check(cfg, string(src))
	case *runFlag:
		run(cfg, string(src))
	default:
		compile(cfg, inputFile, string(src))
	}

	atexit.Exit(0)
}

func setupLogger() {
	level := parseLevel(os.Getenv(config.EnvLogLevel))
	if *verboseFlag {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "trace":
		return core.LevelTrace
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func buildConfig() config.Config {
	b := config.FromEnv(config.MakeBuilder()).
		WithStackLimit(*stackLimitFlag).
		WithStrictLex(*strictFlag).
		WithTrace(*traceFlag)

	if *outputFlag != "" {
		b = b.WithOutputPath(*outputFlag)
	}

	return b.Build()
}

func compile(cfg config.Config, name, src string) {
	driver := api.MakeDriverBuilder().
		WithConfig(cfg).
		Build("Driver")

	driver.AddSource(filepath.Base(name), src)

	for _, r := range driver.Run() {
		if *dumpFlag {
			program.PrintProgram(os.Stdout, r.Program)
		}

		if !r.OK() {
			atexit.Fatalf("%v", r.Err)
		}

		slog.Info("Wrote IR", "Source", r.Name, "Output", cfg.OutputPath)
	}
}

func check(cfg config.Config, src string) {
	p, lexErrs := lexer.Lex(src)
	if *dumpFlag {
		program.PrintProgram(os.Stdout, p)
	}

	report := verify.GenerateReportWithConfig(p, lexErrs, cfg)
	report.WriteReport(os.Stdout)

	if !report.Passed() {
		atexit.Exit(1)
	}
}

func run(cfg config.Config, src string) {
	p, lexErrs := lexer.Lex(src)
	for _, err := range lexErrs {
		slog.Error("Lexical error", "Error", err)
	}

	if cfg.StrictLex && len(lexErrs) > 0 {
		atexit.Fatalf("%d lexical error(s)", len(lexErrs))
	}

	it := verify.NewInterpreter(p, os.Stdout).WithStackLimit(cfg.StackLimit)
	if cfg.Trace {
		it.TraceInstPre = func(pc int, inst program.Inst) {
			fmt.Fprintf(os.Stderr, "#%d %s\n", pc, p.Describe(inst))
		}
	}

	code, err := it.Run()
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	atexit.Exit(code)
}
