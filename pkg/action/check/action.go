// Package check converts files without writing them and compares the result
// with the TypeScript files already next to them.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cmmoran/flowts/pkg/action/convert"
	flowts "github.com/cmmoran/flowts/pkg/convert"
	"github.com/cmmoran/flowts/pkg/manifest"
)

// File is the comparison for one source file.
type File struct {
	Source   string
	Expected string
	// Missing is set when no existing output was found.
	Missing bool
	Diff    string
	Added   int
	Removed int
	Err     error
}

func (f File) Clean() bool {
	return f.Err == nil && !f.Missing && f.Diff == ""
}

type Report struct {
	Files []File
}

// Clean reports whether every file converted to exactly its existing output.
func (r *Report) Clean() bool {
	for _, f := range r.Files {
		if !f.Clean() {
			return false
		}
	}
	return true
}

// Run converts the files matched by patterns and diffs each result with the
// output recorded for it in the manifest at manifestPath, or else with the
// .ts or .tsx file next to the source.
func Run(ctx context.Context, patterns []string, opts *flowts.Options, manifestPath string) (*Report, error) {
	m := &manifest.Manifest{}
	if manifestPath != "" {
		var err error
		if m, err = manifest.Load(manifestPath); err != nil {
			return nil, err
		}
	}

	converted, err := convert.Run(ctx, patterns, &convert.Options{Convert: opts, Jobs: 1})
	if err != nil {
		return nil, err
	}

	r := &Report{Files: make([]File, 0, len(converted.Files))}
	for _, c := range converted.Files {
		f := File{Source: c.Source, Err: c.Err}
		if c.Err == nil {
			f.compare(c, m.Output(c.Source))
		}
		r.Files = append(r.Files, f)
	}
	return r, nil
}

func (f *File) compare(c convert.File, recorded string) {
	candidates := []string{c.Output, convert.OutputPath(c.Source, ".ts"), convert.OutputPath(c.Source, ".tsx")}
	if recorded != "" {
		candidates = append([]string{recorded}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			f.Err = fmt.Errorf("read %s: %w", path, err)
			return
		}
		f.Expected = path
		f.Diff = cmp.Diff(string(data), c.Code)
		if f.Diff != "" {
			f.Added, f.Removed = lineStats(string(data), c.Code)
		}
		return
	}
	f.Missing = true
}

// lineStats counts the lines added to and removed from want to get got.
func lineStats(want, got string) (added, removed int) {
	dmp := diffmatchpatch.New()
	src, dst, _ := dmp.DiffLinesToRunes(want, got)
	for _, d := range dmp.DiffMainRunes(src, dst, false) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len([]rune(d.Text))
		case diffmatchpatch.DiffDelete:
			removed += len([]rune(d.Text))
		}
	}
	return added, removed
}

var (
	okColor   = color.New(color.FgGreen)
	diffColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// Print writes one line per file. When verbose is set the diff of every
// mismatch follows its line.
func (r *Report) Print(w io.Writer, verbose bool) {
	mismatched := 0
	for _, f := range r.Files {
		switch {
		case f.Err != nil:
			failColor.Fprintf(w, "failed     %v\n", f.Err)
		case f.Missing:
			diffColor.Fprintf(w, "missing    %s\n", f.Source)
		case f.Diff != "":
			diffColor.Fprintf(w, "differs    %s (+%d -%d)\n", f.Expected, f.Added, f.Removed)
			if verbose {
				fmt.Fprintln(w, f.Diff)
			}
		default:
			okColor.Fprintf(w, "up to date %s\n", f.Expected)
			continue
		}
		mismatched++
	}
	fmt.Fprintf(w, "%s checked, %d out of date\n", convert.Count(len(r.Files), "file"), mismatched)
}
