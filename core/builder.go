package core

import "io"

// Builder can create new generators.
type Builder struct {
	stackLimit int
	symPrefix  string
	trace      io.Writer
}

// WithStackLimit bounds the depth of each stack track. Zero means unbounded.
func (b Builder) WithStackLimit(limit int) Builder {
	if limit < 0 {
		panic("stack limit cannot be negative")
	}
	b.stackLimit = limit
	return b
}

// WithSymbolPrefix sets the prefix of string data symbols.
func (b Builder) WithSymbolPrefix(prefix string) Builder {
	if prefix == "" {
		panic("symbol prefix cannot be empty")
	}
	b.symPrefix = prefix
	return b
}

// WithTrace makes the generator print its state after every instruction.
func (b Builder) WithTrace(w io.Writer) Builder {
	b.trace = w
	return b
}

func NewBuilder() Builder {
	return Builder{
		symPrefix: "str",
	}
}

// Build creates a generator.
func (b Builder) Build(name string) *Generator {
	return &Generator{
		name:       name,
		stackLimit: b.stackLimit,
		symPrefix:  b.symPrefix,
		trace:      b.trace,
		emu:        newInstEmulator(),
	}
}
