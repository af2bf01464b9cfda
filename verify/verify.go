// Package verify provides debugging tools for stack programs.
//
// Two complementary stages are offered:
//
// 1. Static Lint (lint.go): counts the depth of both stack tracks across the
// instruction stream without running anything.
//   - STACK: an instruction pops an empty track, or pushes past the limit
//   - INTRINSIC: an intrinsic selector nothing can lower
//   - DEAD: instructions after the first exit
//   - LEFTOVER: values still on a track when the stream ends
//
// 2. Interpreter (funcsim.go): executes the program directly. puts writes
// the string and a newline, exit stops with its code, and falling off the
// end returns 0. Comparing its behavior with the generated IR separates
// generator bugs from program bugs.
//
// # Usage Example
//
//	p, lexErrs := lexer.Lex(src)
//
//	issues := verify.RunLint(p)
//	if verify.HasErrors(issues) {
//	    for _, issue := range issues {
//	        log.Printf("[%s] #%d %s: %s", issue.Type, issue.Index, issue.Pos, issue.Message)
//	    }
//	}
//
//	code, err := verify.NewInterpreter(p, os.Stdout).Run()
//
//	report := verify.GenerateReport(p, lexErrs)
//	report.WriteReport(os.Stdout)
package verify

import (
	"github.com/sarchlab/stackc/diag"
)

// IssueType categorizes lint issues.
type IssueType string

const (
	IssueStack     IssueType = "STACK"     // Pop from an empty track or push past the limit
	IssueIntrinsic IssueType = "INTRINSIC" // Unknown instruction or intrinsic selector
	IssueDead      IssueType = "DEAD"      // Unreachable after exit
	IssueLeftover  IssueType = "LEFTOVER"  // Values left on the stack
)

// Severity tells whether an issue stops generation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue represents a single lint issue.
type Issue struct {
	Type     IssueType
	Severity Severity
	Index    int      // Instruction index, or -1 for the whole program
	Pos      diag.Pos // Zero when Index is -1
	Message  string
	Details  map[string]interface{}
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// filterIssues returns the issues of the given severity.
func filterIssues(issues []Issue, sev Severity) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}
