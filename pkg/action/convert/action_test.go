package convert

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flowts "github.com/cmmoran/flowts/pkg/convert"
	"github.com/cmmoran/flowts/pkg/manifest"
)

func quietOptions() *flowts.Options {
	o := flowts.NewOptions()
	o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return o
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func TestResolve(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js":       "",
		"sub/b.js":   "",
		"sub/c.jsx":  "",
		"sub/d.json": "",
	})
	got, err := Resolve([]string{
		filepath.Join(dir, "**", "*.js"),
		filepath.Join(dir, "sub", "*.{js,jsx}"),
		filepath.Join(dir, "missing.js"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "sub", "b.js"),
		filepath.Join(dir, "sub", "c.jsx"),
	}, got)

	_, err = Resolve([]string{"[a"})
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "src/a.ts", OutputPath("src/a.js", ".ts"))
	assert.Equal(t, "src/a.b.tsx", OutputPath("src/a.b.jsx", ".tsx"))
}

func TestRunNoInputs(t *testing.T) {
	_, err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "*.js")}, &Options{Convert: quietOptions()})
	assert.ErrorIs(t, err, ErrNoInputs)
}

func TestRunWithoutWrite(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.js": "let a: ?string;\n"})
	r, err := Run(context.Background(), []string{filepath.Join(dir, "*.js")}, &Options{Convert: quietOptions()})
	require.NoError(t, err)
	require.Len(t, r.Files, 1)
	f := r.Files[0]
	require.NoError(t, f.Err)
	assert.Equal(t, "let a: string | null | undefined;\n", f.Code)
	assert.Equal(t, filepath.Join(dir, "a.ts"), f.Output)
	assert.False(t, f.Written)
	assert.NoFileExists(t, f.Output)
}

func TestRunWrites(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js":     "let a: ?string;\n",
		"b.js":     "const el = <div />;\n",
		"c.js":     "let = ;\n",
		"d/e.js":   "type T = {| a: number |};\n",
		"d/f.json": "{}",
	})
	mf := filepath.Join(dir, "out", "manifest.yaml")
	r, err := Run(context.Background(), []string{filepath.Join(dir, "**", "*.js")}, &Options{
		Convert:      quietOptions(),
		Write:        true,
		DeleteSource: true,
		Jobs:         3,
		Manifest:     mf,
	})
	require.NoError(t, err)
	require.Len(t, r.Files, 4)
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 1, r.Warnings())

	assert.FileExists(t, filepath.Join(dir, "a.ts"))
	assert.NoFileExists(t, filepath.Join(dir, "a.js"))
	assert.FileExists(t, filepath.Join(dir, "b.tsx"))
	assert.FileExists(t, filepath.Join(dir, "d", "e.ts"))

	c := r.Files[2]
	require.Error(t, c.Err)
	assert.Contains(t, c.Err.Error(), "parse "+filepath.Join(dir, "c.js"))
	assert.FileExists(t, filepath.Join(dir, "c.js"))
	assert.NoFileExists(t, filepath.Join(dir, "c.ts"))

	m, err := manifest.Load(mf)
	require.NoError(t, err)
	require.Len(t, m.Entries, 3)
	assert.Equal(t, filepath.Join(dir, "b.tsx"), m.Output(filepath.Join(dir, "b.js")))
	assert.True(t, m.Entries[0].Deleted)
}

func TestReportOutput(t *testing.T) {
	color.NoColor = true
	dir := writeTree(t, map[string]string{
		"a.js": "let a: *;\n",
		"b.js": "let b = 1;\n",
	})
	r, err := Run(context.Background(), []string{filepath.Join(dir, "*.js")}, &Options{Convert: quietOptions()})
	require.NoError(t, err)

	var status bytes.Buffer
	r.Status(&status)
	assert.Contains(t, status.String(), "(1 warning)")
	assert.Contains(t, status.String(), "  1:8: ")
	assert.Contains(t, status.String(), "converted  "+filepath.Join(dir, "b.js"))

	var summary bytes.Buffer
	r.Summary(&summary)
	assert.Contains(t, summary.String(), "Total: 2 files")
	assert.Contains(t, summary.String(), "0 files failed")
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 file", Count(1, "file"))
	assert.Equal(t, "0 warnings", Count(0, "warning"))
	assert.Equal(t, "3 entries", Count(3, "entry"))
}
