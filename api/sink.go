package api

import (
	"os"
	"path/filepath"

	"github.com/sarchlab/stackc/diag"
)

// Sink receives the IR of successful compilations.
type Sink interface {
	// Write stores the IR produced for the source called name.
	Write(name string, ir []byte) error
}

// FileSink writes every compilation to the same file.
type FileSink struct {
	Path string
}

// Write replaces the file at Path with ir.
func (s FileSink) Write(_ string, ir []byte) error {
	return writeFileAtomic(s.Path, ir)
}

// DirSink writes each compilation to Dir/<name><Ext>.
type DirSink struct {
	Dir string
	Ext string
}

// Write replaces the file of name with ir.
func (s DirSink) Write(name string, ir []byte) error {
	ext := s.Ext
	if ext == "" {
		ext = ".ssa"
	}

	base := filepath.Base(name)
	base = base[:len(base)-len(filepath.Ext(base))]

	return writeFileAtomic(filepath.Join(s.Dir, base+ext), ir)
}

// writeFileAtomic writes data next to path and renames it into place, so
// path either keeps its old content or holds all of data.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".stackc-*")
	if err != nil {
		return diag.IO.Wrap(err, "failed to create output for %s", path)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return diag.IO.Wrap(err, "failed to write %s", path)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return diag.IO.Wrap(err, "failed to write %s", path)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return diag.IO.Wrap(err, "failed to write %s", path)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return diag.IO.Wrap(err, "failed to write %s", path)
	}

	return nil
}
