package check

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

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "same.js"), "let a: ?string;\n")
	write(t, filepath.Join(dir, "same.ts"), "let a: string | null | undefined;\n")
	write(t, filepath.Join(dir, "stale.js"), "let a: number;\nlet b: ?number;\n")
	write(t, filepath.Join(dir, "stale.ts"), "let a: number;\nlet b: number;\n")
	write(t, filepath.Join(dir, "new.js"), "let a = 1;\n")

	r, err := Run(context.Background(), []string{filepath.Join(dir, "*.js")}, quietOptions(), "")
	require.NoError(t, err)
	require.Len(t, r.Files, 3)
	assert.False(t, r.Clean())

	byName := map[string]File{}
	for _, f := range r.Files {
		byName[filepath.Base(f.Source)] = f
	}
	assert.True(t, byName["same.js"].Clean())
	assert.True(t, byName["new.js"].Missing)

	stale := byName["stale.js"]
	assert.NotEmpty(t, stale.Diff)
	assert.Equal(t, 1, stale.Added)
	assert.Equal(t, 1, stale.Removed)

	color.NoColor = true
	var out bytes.Buffer
	r.Print(&out, false)
	assert.Contains(t, out.String(), "differs    "+filepath.Join(dir, "stale.ts")+" (+1 -1)")
	assert.Contains(t, out.String(), "3 files checked, 2 out of date")
}

func TestCheckUsesManifest(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "a.js")
	out := filepath.Join(dir, "dist", "a.ts")
	write(t, src, "let a: ?string;\n")
	write(t, out, "let a: string | null | undefined;\n")

	mf := filepath.Join(dir, "manifest.yaml")
	m := &manifest.Manifest{}
	m.Add(manifest.Entry{Source: src, Output: out})
	require.NoError(t, m.Save(mf))

	r, err := Run(context.Background(), []string{src}, quietOptions(), mf)
	require.NoError(t, err)
	require.Len(t, r.Files, 1)
	assert.Equal(t, out, r.Files[0].Expected)
	assert.True(t, r.Clean())
}

func TestLineStats(t *testing.T) {
	added, removed := lineStats("a\nb\nc\n", "a\nx\ny\nc\n")
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
}
