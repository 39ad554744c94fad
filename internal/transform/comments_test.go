package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/flowts/internal/model"
)

func TestPragmaRemoved(t *testing.T) {
	p, st := run(t, "// @flow\nlet a: number = 5;", Options{})
	require.Len(t, p.Body, 1)
	assert.Empty(t, p.Body[0].Base().Leading)
	assert.Empty(t, st.Attachments)
}

func TestPragmaVariants(t *testing.T) {
	p, _ := run(t, "/* @noflow */\nlet a = 1;\n// $FlowIssue\nlet b = 2;", Options{})
	for _, s := range p.Body {
		assert.Empty(t, s.Base().Leading)
		assert.Empty(t, s.Base().Trailing)
	}
}

func TestPragmaInsideProse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"mention", "/** @flowtype docs about @flow usage */\nlet a = 1;", "* @flowtype docs about @flow usage "},
		{"line", "// see @flow docs\nlet a = 1;", " see @flow docs"},
		{"docblock", "/**\n * Copyright\n * @flow strict\n */\nlet a = 1;", "*\n * Copyright\n "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := run(t, tt.src, Options{})
			lead := p.Body[0].Base().Leading
			require.Len(t, lead, 1)
			assert.Equal(t, tt.want, lead[0].Text)
		})
	}
}

func TestPragmaOnlyDocblockDropped(t *testing.T) {
	p, _ := run(t, "/**\n * @flow\n */\nlet a = 1;", Options{})
	assert.Empty(t, p.Body[0].Base().Leading)
}

func TestSuppressionsRewritten(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"// $FlowFixMe: bad\nlet a = 1;", " @ts-expect-error: bad"},
		{"// $FlowExpectedError\nlet a = 1;", " @ts-expect-error"},
		{"/* $FlowExpectError */\nlet a = 1;", " @ts-expect-error "},
		{"// $FlowIgnore why\nlet a = 1;", " @ts-ignore why"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p, _ := run(t, tt.src, Options{})
			lead := p.Body[0].Base().Leading
			require.Len(t, lead, 1)
			assert.Equal(t, tt.want, lead[0].Text)
		})
	}
}

func TestDuplicateCommentKeptAsTrailing(t *testing.T) {
	p, _ := run(t, "let a = 1;\n// between\nlet b = 2;", Options{})
	a, b := p.Body[0].Base(), p.Body[1].Base()
	require.Len(t, a.Trailing, 1)
	assert.Equal(t, " between", a.Trailing[0].Text)
	assert.Empty(t, b.Leading)
}

func TestSameLineCommentStays(t *testing.T) {
	p, _ := run(t, "let a = 1; // one\nlet b = 2;", Options{})
	a, b := p.Body[0].Base(), p.Body[1].Base()
	require.Len(t, a.Trailing, 1)
	assert.Equal(t, " one", a.Trailing[0].Text)
	assert.Empty(t, b.Leading)
}

func TestReplacedStatementKeepsComments(t *testing.T) {
	p, st := run(t, "// alias\ntype A = string;\n// next\nlet b = 2;", Options{})
	a := p.Body[0]
	require.IsType(t, &model.TSTypeAliasDeclaration{}, a)
	require.Len(t, a.Base().Leading, 1)
	assert.Equal(t, " alias", a.Base().Leading[0].Text)

	require.Len(t, a.Base().Trailing, 1)
	assert.Empty(t, p.Body[1].Base().Leading)

	att := st.Attachments[a.Base().Leading[0].Key()]
	require.NotNil(t, att)
	assert.Same(t, a, att.Leading)
}

func TestLastMemberCommentRecovered(t *testing.T) {
	src := `type T = {
  a: number,
  // dangling
};`
	p, _ := run(t, src, Options{})
	lit := aliasType(t, p, 0).(*model.TSTypeLiteral)
	require.Len(t, lit.Members, 1)
	tr := lit.Members[0].Base().Trailing
	require.Len(t, tr, 1)
	assert.Equal(t, " dangling", tr[0].Text)
}

func TestSplitImportComments(t *testing.T) {
	src := `// lead
import React, {type Node, useState} from 'react'; // trail`
	p, _ := run(t, src, Options{})
	require.Len(t, p.Body, 2)
	typ, val := p.Body[0].(*model.ImportDeclaration), p.Body[1].(*model.ImportDeclaration)
	require.Len(t, typ.Leading, 1)
	assert.Equal(t, " lead", typ.Leading[0].Text)
	assert.Empty(t, typ.Trailing)
	assert.Empty(t, val.Leading)
	require.Len(t, val.Trailing, 1)
	assert.Equal(t, " trail", val.Trailing[0].Text)
}
