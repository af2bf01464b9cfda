// Package config provides the default compilation settings.
package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultOutputPath is where the IR is written when nothing else is set.
	DefaultOutputPath = "./build/output.ssa"
	// DefaultSymbolPrefix names string data symbols str0, str1, ...
	DefaultSymbolPrefix = "str"

	// EnvOutput overrides the default output path.
	EnvOutput = "STACKC_OUTPUT"
	// EnvLogLevel selects the log level of the command line tool.
	EnvLogLevel = "STACKC_LOG_LEVEL"
)

// Config holds the settings of one compilation.
type Config struct {
	OutputPath   string
	StackLimit   int
	SymbolPrefix string
	StrictLex    bool
	Trace        bool
}

// OutputDir returns the directory that receives the output.
func (c Config) OutputDir() string {
	return filepath.Dir(c.OutputPath)
}

// Builder can build configurations.
type Builder struct {
	outputPath   string
	stackLimit   int
	symbolPrefix string
	strictLex    bool
	trace        bool
}

// MakeBuilder creates a builder with default values.
func MakeBuilder() Builder {
	return Builder{
		outputPath:   DefaultOutputPath,
		symbolPrefix: DefaultSymbolPrefix,
	}
}

// WithOutputPath sets the output file.
func (b Builder) WithOutputPath(path string) Builder {
	b.outputPath = path
	return b
}

// WithStackLimit bounds each stack track. Zero means unbounded.
func (b Builder) WithStackLimit(limit int) Builder {
	b.stackLimit = limit
	return b
}

// WithSymbolPrefix sets the prefix of string data symbols.
func (b Builder) WithSymbolPrefix(prefix string) Builder {
	b.symbolPrefix = prefix
	return b
}

// WithStrictLex makes lexical errors fatal.
func (b Builder) WithStrictLex(strict bool) Builder {
	b.strictLex = strict
	return b
}

// WithTrace enables per-instruction state dumps.
func (b Builder) WithTrace(trace bool) Builder {
	b.trace = trace
	return b
}

// Build creates the configuration. Empty or negative settings fall back to
// their defaults.
func (b Builder) Build() Config {
	c := Config{
		OutputPath:   b.outputPath,
		StackLimit:   b.stackLimit,
		SymbolPrefix: b.symbolPrefix,
		StrictLex:    b.strictLex,
		Trace:        b.trace,
	}

	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.SymbolPrefix == "" {
		c.SymbolPrefix = DefaultSymbolPrefix
	}
	if c.StackLimit < 0 {
		c.StackLimit = 0
	}

	return c
}

// FromEnv applies the environment to b.
func FromEnv(b Builder) Builder {
	if path, ok := os.LookupEnv(EnvOutput); ok && path != "" {
		b = b.WithOutputPath(path)
	}
	return b
}
