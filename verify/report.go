package verify

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/core"
	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/program"
)

// VerificationReport represents a complete verification report.
type VerificationReport struct {
	InstCount     int
	LexErrors     []error
	LintIssues    []Issue
	ErrorIssues   []Issue
	WarningIssues []Issue
	GenerationErr error
	IRSize        int
	SimulationErr error
	SimulationOK  bool
	ExitCode      int
	Output        string
	Program       *program.Program
}

// GenerateReport runs lint, generation and interpretation, and returns a
// report. lexErrs are the diagnostics collected while lexing p.
func GenerateReport(p *program.Program, lexErrs []error) *VerificationReport {
	return GenerateReportWithConfig(p, lexErrs, config.MakeBuilder().Build())
}

// GenerateReportWithConfig is GenerateReport with the stack limit and symbol
// prefix taken from cfg.
func GenerateReportWithConfig(
	p *program.Program,
	lexErrs []error,
	cfg config.Config,
) *VerificationReport {
	report := &VerificationReport{
		InstCount: p.Len(),
		LexErrors: lexErrs,
		Program:   p,
	}

	report.LintIssues = RunLintWithStackLimit(p, cfg.StackLimit)
	report.ErrorIssues = filterIssues(report.LintIssues, SeverityError)
	report.WarningIssues = filterIssues(report.LintIssues, SeverityWarning)

	gen := core.NewBuilder().WithStackLimit(cfg.StackLimit)
	if cfg.SymbolPrefix != "" {
		gen = gen.WithSymbolPrefix(cfg.SymbolPrefix)
	}

	ir, err := gen.Build("Verifier").Generate(p)
	report.GenerationErr = err
	report.IRSize = len(ir)

	var out bytes.Buffer
	report.ExitCode, report.SimulationErr = NewInterpreter(p, &out).
		WithStackLimit(cfg.StackLimit).
		Run()
	report.SimulationOK = report.SimulationErr == nil
	report.Output = out.String()

	return report
}

// Passed reports whether the program lexed cleanly, has no lint errors and
// could be generated and interpreted.
func (r *VerificationReport) Passed() bool {
	return len(r.LexErrors) == 0 &&
		len(r.ErrorIssues) == 0 &&
		r.GenerationErr == nil &&
		r.SimulationOK
}

// WriteReport writes a formatted report to a writer.
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "STACK PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\n✓ Loaded %d instructions\n", r.InstCount)

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: LEXICAL DIAGNOSTICS")
	fmt.Fprintln(w, separator)

	if len(r.LexErrors) == 0 {
		fmt.Fprintln(w, "✓ No lexical errors")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lexical errors:\n", len(r.LexErrors))
		for _, err := range r.LexErrors {
			pos, _ := diag.PosOf(err)
			fmt.Fprintf(w, "  [%s] %v\n", pos, err)
		}
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lint issues (%d errors, %d warnings):\n",
			len(r.LintIssues), len(r.ErrorIssues), len(r.WarningIssues))

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Type", "Severity", "#", "Pos", "Message"})
		for _, issue := range r.LintIssues {
			index, pos := "-", "-"
			if issue.Index >= 0 {
				index = fmt.Sprint(issue.Index)
				pos = issue.Pos.String()
			}
			t.AppendRow(table.Row{issue.Type, issue.Severity, index, pos, issue.Message})
		}
		t.Render()
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 3: GENERATION")
	fmt.Fprintln(w, separator)

	if r.GenerationErr == nil {
		fmt.Fprintf(w, "✓ Generated %d bytes of IR\n", r.IRSize)
	} else {
		fmt.Fprintf(w, "⚠ Generation error: %v\n", r.GenerationErr)
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 4: INTERPRETATION")
	fmt.Fprintln(w, separator)

	if r.SimulationOK {
		fmt.Fprintf(w, "✓ Program exited with code %d\n", r.ExitCode)
		if r.Output != "" {
			fmt.Fprintln(w, "Output:")
			for _, line := range strings.SplitAfter(r.Output, "\n") {
				if line != "" {
					fmt.Fprintf(w, "  | %s", line)
				}
			}
		}
	} else {
		fmt.Fprintf(w, "⚠ Interpretation error: %v\n", r.SimulationErr)
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)

	if r.Passed() {
		fmt.Fprintln(w, "✓ PROGRAM PASSED ALL CHECKS")
	} else {
		fmt.Fprintln(w, "⚠ PROGRAM FAILED VERIFICATION")
	}

	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return diag.IO.Wrap(err, "failed to create report file")
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
