package convert

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jinzhu/inflection"
)

// Report collects the per-file outcomes of a run in input order.
type Report struct {
	Files []File
}

func (r *Report) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

func (r *Report) Warnings() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Warnings)
	}
	return n
}

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// Status writes one line per file, followed by its warnings.
func (r *Report) Status(w io.Writer) {
	for _, f := range r.Files {
		switch {
		case f.Err != nil:
			failColor.Fprintf(w, "failed     %v\n", f.Err)
		case len(f.Warnings) > 0:
			warnColor.Fprintf(w, "converted  %s -> %s (%s)\n", f.Source, f.Output, Count(len(f.Warnings), "warning"))
			for _, wn := range f.Warnings {
				warnColor.Fprintf(w, "  %s\n", wn)
			}
		default:
			okColor.Fprintf(w, "converted  %s -> %s\n", f.Source, f.Output)
		}
	}
}

// Summary writes a table of all files with their sizes and warning counts.
func (r *Report) Summary(w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"Source", "Output", "Size", "Warnings", "Status"})

	var in, out uint64
	for _, f := range r.Files {
		status := "ok"
		switch {
		case f.Err != nil:
			status = "failed"
		case f.Deleted:
			status = "moved"
		case f.Written:
			status = "written"
		}
		tbl.AppendRow(table.Row{
			f.Source,
			f.Output,
			humanize.Bytes(uint64(f.OutBytes)),
			len(f.Warnings),
			status,
		})
		in += uint64(f.InBytes)
		out += uint64(f.OutBytes)
	}
	tbl.AppendFooter(table.Row{
		fmt.Sprintf("Total: %s", Count(len(r.Files), "file")),
		fmt.Sprintf("%s failed", Count(r.Failed(), "file")),
		fmt.Sprintf("%s -> %s", humanize.Bytes(in), humanize.Bytes(out)),
		r.Warnings(),
		"",
	})
	tbl.Render()
}

// Count formats n followed by noun, pluralized unless n is one.
func Count(n int, noun string) string {
	if n != 1 {
		noun = inflection.Plural(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}
