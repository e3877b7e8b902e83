package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/origadmin/tryfrom/internal/analyzer"
	"github.com/origadmin/tryfrom/internal/config"
	"github.com/origadmin/tryfrom/internal/diff"
	"github.com/origadmin/tryfrom/internal/generator"
)

// runner writes, prints or checks the generated file of each package.
type runner struct {
	out       io.Writer
	generator *generator.Generator
	colors    *diff.Colors
	check     bool
	stdout    bool
}

// process handles one analyzed package. It reports whether the file on disk
// differs from the generated code.
func (r *runner) process(res *analyzer.Result) (bool, error) {
	src, err := r.generator.Generate(res.Package, res.Config)
	if err != nil {
		return false, err
	}
	path := res.OutputPath()

	if r.stdout {
		if src == nil {
			return false, nil
		}
		_, err := r.out.Write(src)
		return false, err
	}

	current, err := os.ReadFile(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if src == nil {
		// Nothing is annotated any more; a file we wrote earlier is stale.
		if !exists || !ours(current) {
			return false, nil
		}
		if r.check {
			fmt.Fprint(r.out, diff.Render(display(path), current, nil, r.colors))
			return true, nil
		}
		slog.Info("Removing stale generated file", "file", path)
		if err := os.Remove(path); err != nil {
			return false, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		return true, nil
	}

	if exists && bytes.Equal(current, src) {
		slog.Debug("Generated file is up to date", "file", path)
		return false, nil
	}
	if exists && !ours(current) {
		return false, fmt.Errorf("%s exists and was not generated by %s; choose another output file", path, config.Application)
	}
	if r.check {
		fmt.Fprint(r.out, diff.Render(display(path), current, src, r.colors))
		return true, nil
	}

	slog.Info("Writing generated code", "file", path, "types", len(res.Package.Types))
	if err := os.WriteFile(path, src, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// ours reports whether src starts with the header of a tryfrom output file.
func ours(src []byte) bool {
	return bytes.HasPrefix(src, []byte(config.Header))
}

// display shortens path relative to the working directory when possible.
func display(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}
