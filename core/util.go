package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

// Trace logs at LevelTrace through the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState renders the simulator state as tables.
func PrintState(w io.Writer, state *genState) {
	fmt.Fprintf(w, "==============State@PC=%d==============\n", state.PC)

	stackTable := table.NewWriter()
	stackTable.SetTitle("Stack (top last)")
	stackTable.AppendHeader(table.Row{"Slot", "Int", "String ID"})

	ints := state.Stack.Ints()
	strs := state.Stack.StringRefs()
	rows := len(ints)
	if len(strs) > rows {
		rows = len(strs)
	}
	for i := 0; i < rows; i++ {
		row := table.Row{i, "", ""}
		if i < len(ints) {
			row[1] = strconv.FormatInt(ints[i], 10)
		}
		if i < len(strs) {
			row[2] = strconv.Itoa(strs[i])
		}
		stackTable.AppendRow(row)
	}

	fmt.Fprintln(w, stackTable.Render())

	strTable := table.NewWriter()
	strTable.SetTitle("String Table")
	strTable.AppendHeader(table.Row{"ID", "Bytes", "Value"})
	for id := 0; id < state.Strings.Len(); id++ {
		ref, _ := state.Strings.Lookup(id)
		strTable.AppendRow(table.Row{id, ref.Len(), strconv.Quote(state.prog.Str(ref))})
	}

	fmt.Fprintln(w, strTable.Render())
	fmt.Fprintln(w, "================================================")
}

// LogState writes a debug checkpoint of the simulator state.
func LogState(state *genState) {
	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Ints", state.Stack.Ints(),
		"StringRefs", state.Stack.StringRefs(),
		"Strings", state.Strings.Len(),
		"Calls", state.Module.NumCalls(),
		"Data", state.Module.NumData(),
	)
}
