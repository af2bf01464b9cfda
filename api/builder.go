package api

import (
	"io"
	"os"

	"github.com/sarchlab/stackc/config"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	cfg   config.Config
	sink  Sink
	trace io.Writer
}

// MakeDriverBuilder creates a builder with the default configuration.
func MakeDriverBuilder() DriverBuilder {
	return DriverBuilder{
		cfg:   config.MakeBuilder().Build(),
		trace: os.Stderr,
	}
}

// WithConfig sets the compilation settings.
func (b DriverBuilder) WithConfig(cfg config.Config) DriverBuilder {
	b.cfg = cfg
	return b
}

// WithSink sets where the IR goes. Defaults to a FileSink on the configured
// output path.
func (b DriverBuilder) WithSink(sink Sink) DriverBuilder {
	b.sink = sink
	return b
}

// WithTraceWriter sets where state dumps go when tracing is enabled.
func (b DriverBuilder) WithTraceWriter(w io.Writer) DriverBuilder {
	b.trace = w
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.cfg == (config.Config{}) {
		b.cfg = config.MakeBuilder().Build()
	}

	sink := b.sink
	if sink == nil {
		sink = FileSink{Path: b.cfg.OutputPath}
	}

	return &driverImpl{
		name:    name,
		cfg:     b.cfg,
		sink:    sink,
		trace:   b.trace,
		binding: NewNameIDBinding(),
	}
}
