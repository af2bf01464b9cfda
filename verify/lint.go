package verify

import (
	"fmt"

	"github.com/sarchlab/stackc/program"
)

type trackDepth struct {
	ints int
	strs int
}

// RunLint performs static checks on an instruction stream with unbounded
// stack tracks. Returns a list of issues found, or an empty list.
func RunLint(p *program.Program) []Issue {
	return RunLintWithStackLimit(p, 0)
}

// RunLintWithStackLimit is RunLint with each track bounded to limit entries.
// A limit of zero or less means unbounded.
func RunLintWithStackLimit(p *program.Program, limit int) []Issue {
	var issues []Issue

	depth := trackDepth{}
	firstExit := -1

	for i := 0; i < p.Len(); i++ {
		inst, pos := p.At(i)

		stackIssue := func(format string, args ...interface{}) {
			issues = append(issues, Issue{
				Type:     IssueStack,
				Severity: SeverityError,
				Index:    i,
				Pos:      pos,
				Message:  fmt.Sprintf(format, args...),
				Details: map[string]interface{}{
					"inst":      p.Describe(inst),
					"intDepth":  depth.ints,
					"strDepth":  depth.strs,
					"stackSize": limit,
				},
			})
		}

		pushInt := func() {
			if limit > 0 && depth.ints >= limit {
				stackIssue("%s overflows the integer stack (limit %d)", p.Describe(inst), limit)
				return
			}
			depth.ints++
		}

		popInt := func() bool {
			if depth.ints == 0 {
				stackIssue("%s pops an empty integer stack", p.Describe(inst))
				return false
			}
			depth.ints--
			return true
		}

		switch v := inst.(type) {
		case program.PushInt:
			pushInt()
		case program.AddInt:
			if popInt() && popInt() {
				pushInt()
			}
		case program.PushString:
			if limit > 0 && depth.strs >= limit {
				stackIssue("%s overflows the string stack (limit %d)", p.Describe(inst), limit)
				break
			}
			depth.strs++
		case program.CallIntrinsic:
			switch v.ID {
			case program.Exit:
				popInt()
				if firstExit < 0 {
					firstExit = i
				}
			case program.Puts:
				if depth.strs == 0 {
					stackIssue("puts pops an empty string stack")
					break
				}
				depth.strs--
			default:
				issues = append(issues, Issue{
					Type:     IssueIntrinsic,
					Severity: SeverityError,
					Index:    i,
					Pos:      pos,
					Message:  fmt.Sprintf("Not implemented yet: %s", v.ID),
				})
			}
		default:
			issues = append(issues, Issue{
				Type:     IssueIntrinsic,
				Severity: SeverityError,
				Index:    i,
				Pos:      pos,
				Message:  fmt.Sprintf("Not implemented yet: %v", inst),
			})
		}
	}

	if firstExit >= 0 && firstExit < p.Len()-1 {
		_, pos := p.At(firstExit + 1)
		issues = append(issues, Issue{
			Type:     IssueDead,
			Severity: SeverityWarning,
			Index:    firstExit + 1,
			Pos:      pos,
			Message: fmt.Sprintf("%d instruction(s) after exit at #%d never run",
				p.Len()-firstExit-1, firstExit),
			Details: map[string]interface{}{"exit": firstExit},
		})
	}

	if depth.ints > 0 || depth.strs > 0 {
		issues = append(issues, Issue{
			Type:     IssueLeftover,
			Severity: SeverityWarning,
			Index:    -1,
			Message: fmt.Sprintf("%d integer(s) and %d string(s) left on the stack",
				depth.ints, depth.strs),
			Details: map[string]interface{}{
				"intDepth": depth.ints,
				"strDepth": depth.strs,
			},
		})
	}

	return issues
}
