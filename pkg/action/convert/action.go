// Package convert runs conversions over files matched by glob patterns.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/cmmoran/flowts/internal/parser"
	"github.com/cmmoran/flowts/internal/transform"
	flowts "github.com/cmmoran/flowts/pkg/convert"
	"github.com/cmmoran/flowts/pkg/manifest"
)

// ErrNoInputs is returned when no pattern matches a file.
var ErrNoInputs = errors.New("no input files")

// Options control a batch run.
//
// Write        – write each result next to its source instead of only
// returning it.
// DeleteSource – remove the source after its output was written.
// Jobs         – files converted in parallel.
// Manifest     – path of a manifest updated with every written file.
type Options struct {
	Convert      *flowts.Options `json:"convert" yaml:"convert" mapstructure:"convert"`
	Write        bool            `json:"write,omitempty" yaml:"write,omitempty" mapstructure:"write,omitempty"`
	DeleteSource bool            `json:"delete_source,omitempty" yaml:"delete_source,omitempty" mapstructure:"delete_source,omitempty"`
	Jobs         int             `json:"jobs,omitempty" yaml:"jobs,omitempty" mapstructure:"jobs,omitempty"`
	Manifest     string          `json:"manifest,omitempty" yaml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
}

// File is the outcome for one source file. Err is set when the file could
// not be read, parsed or written; the other files of the run are unaffected.
type File struct {
	Source   string
	Output   string
	Code     string
	JSX      bool
	InBytes  int
	OutBytes int
	Warnings []transform.Warning
	Written  bool
	Deleted  bool
	Err      error
}

// Resolve expands patterns into a sorted list of distinct files. A pattern
// without glob meta characters names a single file.
func Resolve(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			files = append(files, filepath.Clean(m))
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// OutputPath returns src with its extension replaced by ext.
func OutputPath(src, ext string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ext
}

// Run converts every file matched by patterns. Failures are recorded per
// file; the returned error is reserved for bad patterns, bad options, an
// empty match set, cancellation and manifest I/O.
func Run(ctx context.Context, patterns []string, o *Options) (*Report, error) {
	if o.Convert == nil {
		o.Convert = flowts.NewOptions()
	}
	if err := o.Convert.Normalize(); err != nil {
		return nil, err
	}
	files, err := Resolve(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoInputs
	}

	l := o.Convert.Logger
	l.With("files", len(files), "jobs", max(o.Jobs, 1)).Debug("converting")

	report := &Report{Files: make([]File, len(files))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.Jobs, 1))
	for i, src := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Files[i] = o.convertFile(src)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return report, err
	}

	if o.Manifest != "" && o.Write {
		if err = o.record(report); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (o *Options) convertFile(src string) File {
	f := File{Source: src}
	l := o.Convert.Logger.With("file", src)

	data, err := os.ReadFile(src)
	if err != nil {
		f.Err = fmt.Errorf("read %s: %w", src, err)
		l.With("error", err).Error("unable to read source")
		return f
	}
	f.InBytes = len(data)

	opts := *o.Convert
	opts.Logger = l
	res, err := flowts.ConvertWithOpts(string(data), &opts)
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			f.Err = fmt.Errorf("parse %s: %w", src, err)
		} else {
			f.Err = fmt.Errorf("convert %s: %w", src, err)
		}
		l.With("error", err).Error("unable to convert")
		return f
	}
	f.Code = res.Code
	f.JSX = res.JSX
	f.Warnings = res.Warnings
	f.OutBytes = len(res.Code)
	f.Output = OutputPath(src, res.Extension())

	if !o.Write {
		return f
	}
	if err = os.WriteFile(f.Output, []byte(res.Code), 0o644); err != nil {
		f.Err = fmt.Errorf("write %s: %w", f.Output, err)
		l.With("error", err, "output", f.Output).Error("unable to write output")
		return f
	}
	f.Written = true
	l.With("output", f.Output, "warnings", len(f.Warnings)).Info("converted")

	if o.DeleteSource && f.Output != src {
		if err = os.Remove(src); err != nil {
			f.Err = fmt.Errorf("delete %s: %w", src, err)
			l.With("error", err).Error("unable to delete source")
			return f
		}
		f.Deleted = true
	}
	return f
}

func (o *Options) record(r *Report) error {
	m, err := manifest.Load(o.Manifest)
	if err != nil {
		return err
	}
	for _, f := range r.Files {
		if !f.Written {
			continue
		}
		m.Add(manifest.Entry{
			Source:   f.Source,
			Output:   f.Output,
			JSX:      f.JSX,
			Bytes:    f.OutBytes,
			Warnings: len(f.Warnings),
			Deleted:  f.Deleted,
		})
	}
	return m.Save(o.Manifest)
}
