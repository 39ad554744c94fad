package convert

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/flowts/internal/parser"
)

const fixtures = "testdata/fixtures"

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// TestFixtures converts every testdata/fixtures/<suite>/<case>/flow.js and
// compares the result with ts.js next to it. An options.yaml in the case
// directory overrides the default options.
func TestFixtures(ttt *testing.T) {
	suites, err := os.ReadDir(fixtures)
	require.NoError(ttt, err)
	for _, suite := range suites {
		if !suite.IsDir() {
			continue
		}
		cases, err := os.ReadDir(filepath.Join(fixtures, suite.Name()))
		require.NoError(ttt, err)
		for _, c := range cases {
			dir := filepath.Join(fixtures, suite.Name(), c.Name())
			ttt.Run(suite.Name()+"/"+c.Name(), func(t *testing.T) {
				t.Parallel()
				o := NewOptions()
				if raw, err := os.ReadFile(filepath.Join(dir, "options.yaml")); err == nil {
					require.NoError(t, yaml.Unmarshal(raw, o))
				}
				o.Logger = quiet

				in, err := os.ReadFile(filepath.Join(dir, "flow.js"))
				require.NoError(t, err)
				want, err := os.ReadFile(filepath.Join(dir, "ts.js"))
				require.NoError(t, err)

				got, err := ConvertWithOpts(string(in), o)
				require.NoError(t, err)
				diff := cmp.Diff(string(want), got.Code)
				require.Emptyf(t, diff, "Convert() got=%s, expected=%s, diff = %s", got.Code, want, diff)
			})
		}
	}
}

func TestJSXSelectsExtension(t *testing.T) {
	tests := []struct {
		src  string
		jsx  bool
		want string
	}{
		{"const a = <div />;", true, ".tsx"},
		{"const a = <><b /></>;", true, ".tsx"},
		{"const a = b < c;", false, ".ts"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			r, err := Convert(tt.src, WithLogger(quiet))
			require.NoError(t, err)
			assert.Equal(t, tt.jsx, r.JSX)
			assert.Equal(t, tt.want, r.Extension())
		})
	}
}

func TestSyntaxError(t *testing.T) {
	r, err := Convert("let a = ;", WithLogger(quiet))
	assert.Nil(t, r)
	var se *parser.SyntaxError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, 1, se.Line)
}

func TestWarningsReturned(t *testing.T) {
	r, err := Convert("type T = {| a: number |};\nlet b: *;", WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, "type T = { a: number };\nlet b: any;\n", r.Code)
	require.Len(t, r.Warnings, 2)
	assert.Equal(t, 1, r.Warnings[0].Span.Start.Line)
	assert.Equal(t, 2, r.Warnings[1].Span.Start.Line)
}

func TestPrettierOptions(t *testing.T) {
	src := "const f = x => 'a';"

	r, err := Convert(src, WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, "const f = x => 'a';\n", r.Code)

	r, err = Convert(src, WithLogger(quiet), WithPrettier())
	require.NoError(t, err)
	assert.Equal(t, "const f = (x) => \"a\";\n", r.Code)

	r, err = Convert(src, WithLogger(quiet), WithPrettier(), WithSingleQuote(),
		WithSemicolons(false), WithArrowParens("avoid"))
	require.NoError(t, err)
	assert.Equal(t, "const f = x => 'a'\n", r.Code)
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"trailing comma", WithTrailingComma("some")},
		{"arrow parens", WithArrowParens("never")},
		{"tab width", WithTabWidth(3)},
		{"print width", WithPrintWidth(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert("let a = 1;", WithPrettier(), tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	o := &Options{}
	require.NoError(t, o.Normalize())
	assert.Equal(t, 2, o.TabWidth)
	assert.Equal(t, 80, o.PrintWidth)
	assert.NotNil(t, o.Logger)
}
