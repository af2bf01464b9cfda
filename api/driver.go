// Package api defines the driver API of the stack language compiler.
package api

import (
	"io"
	"log/slog"

	"github.com/joomcode/errorx"
	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/core"
	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/lexer"
	"github.com/sarchlab/stackc/program"
)

// Driver compiles stack programs and hands the IR to a sink.
type Driver interface {
	// AddSource queues the source text src under name and returns the ID of
	// the compilation task.
	AddSource(name string, src string) int

	// TaskID returns the ID of the most recent task added under name.
	TaskID(name string) (int, bool)

	// Run compiles all the queued tasks in the order they were added. Tasks
	// are independent; a failing task does not stop the others.
	Run() []Result
}

// Result is the outcome of one compilation task.
type Result struct {
	ID        int
	Name      string
	Program   *program.Program
	IR        string
	LexErrors []error

	// Err is the error that stopped the task, or nil if the IR was written.
	Err error
}

// OK reports whether the IR reached the sink.
func (r Result) OK() bool {
	return r.Err == nil
}

type compileTask struct {
	id  int
	src string
}

type driverImpl struct {
	name    string
	cfg     config.Config
	sink    Sink
	trace   io.Writer
	binding *NameIDBinding

	tasks []*compileTask
}

func (d *driverImpl) AddSource(name string, src string) int {
	id := d.binding.RegisterName(name)
	d.tasks = append(d.tasks, &compileTask{id: id, src: src})

	return id
}

func (d *driverImpl) TaskID(name string) (int, bool) {
	return d.binding.LookupName(name)
}

func (d *driverImpl) Run() []Result {
	results := make([]Result, 0, len(d.tasks))

	for _, task := range d.tasks {
		results = append(results, d.doOneTask(task))
	}
	d.tasks = nil

	return results
}

func (d *driverImpl) doOneTask(task *compileTask) Result {
	r := Result{
		ID:   task.id,
		Name: d.binding.IDToName[task.id],
	}

	r.Program, r.LexErrors = lexer.Lex(task.src)
	for _, err := range r.LexErrors {
		pos, _ := diag.PosOf(err)
		slog.Error("Lexical error",
			"Driver", d.name,
			"Source", r.Name,
			"Pos", pos,
			"Error", err,
		)
	}

	if d.cfg.StrictLex && len(r.LexErrors) > 0 {
		r.Err = errorx.Decorate(r.LexErrors[0],
			"%s: %d lexical error(s) in strict mode", r.Name, len(r.LexErrors))
		return r
	}

	gen := d.generatorBuilder().Build(r.Name)
	ir, err := gen.Generate(r.Program)
	if err != nil {
		r.Err = errorx.Decorate(err, "failed to compile %s", r.Name)
		slog.Error("Generation failed", "Driver", d.name, "Source", r.Name, "Error", err)
		return r
	}
	r.IR = ir

	if err := d.sink.Write(r.Name, []byte(ir)); err != nil {
		r.Err = errorx.Decorate(err, "failed to emit %s", r.Name)
		return r
	}

	slog.Debug("Compiled",
		"Driver", d.name,
		"Source", r.Name,
		"Instructions", r.Program.Len(),
		"Bytes", len(ir),
	)

	return r
}

func (d *driverImpl) generatorBuilder() core.Builder {
	b := core.NewBuilder().WithStackLimit(d.cfg.StackLimit)

	if d.cfg.SymbolPrefix != "" {
		b = b.WithSymbolPrefix(d.cfg.SymbolPrefix)
	}

	if d.cfg.Trace && d.trace != nil {
		b = b.WithTrace(d.trace)
	}

	return b
}
