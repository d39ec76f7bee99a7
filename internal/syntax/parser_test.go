package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "plain declarations",
			input: "import Foundation\n\nstruct S {\n    let x = 1\n}\n",
		},
		{
			name:  "no final newline",
			input: "let x = 1",
		},
		{
			name:  "empty file",
			input: "",
		},
		{
			name:  "whitespace-only blank line survives verbatim",
			input: "let a = 1\n   \nlet b = 2\n",
		},
		{
			name:  "line comments and blank runs",
			input: "// header\n\n\n// more\nlet x = 1\n",
		},
		{
			name:  "block comment spanning lines",
			input: "/* one\n   two */\nlet x = 1\n",
		},
		{
			name:  "conditional block",
			input: "#if FLAG\nlet x = 1\n#elseif OTHER\nlet y = 2\n#else\nlet z = 3\n#endif\n",
		},
		{
			name:  "nested conditional",
			input: "#if A\na()\n#if B\nb()\n#endif\nc()\n#endif\n",
		},
		{
			name:  "indented directives keep indentation",
			input: "func f() {\n    #if FLAG\n    g()\n    #endif\n}\n",
		},
		{
			name:  "trivia before elseif and endif",
			input: "#if FLAG\nx()\n\n// trailing note\n#else\ny()\n\n#endif\n",
		},
		{
			name:  "trailing trivia at end of file",
			input: "let x = 1\n\n// done\n",
		},
		{
			name:  "directive-looking lines inside a multiline string",
			input: "let s = \"\"\"\n#if FLAG\n\n// not a comment\n#endif\n\"\"\"\nlet x = 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFile([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.input, f.Text())
		})
	}
}

func TestParseStructure(t *testing.T) {
	src := "import Foundation\n#if FLAG\nlet x = 1\n#elseif OTHER\nlet y = 2\n#else\nlet z = 3\n#endif\n"
	f, err := ParseFile([]byte(src))
	require.NoError(t, err)
	require.Len(t, f.Decls, 2)

	_, ok := f.Decls[0].(*Raw)
	require.True(t, ok)

	block, ok := f.Decls[1].(*CondBlock)
	require.True(t, ok)
	require.Len(t, block.Clauses, 3)
	assert.Equal(t, ClauseIf, block.Clauses[0].Kind)
	assert.Equal(t, ClauseElseIf, block.Clauses[1].Kind)
	assert.Equal(t, ClauseElse, block.Clauses[2].Kind)
	assert.Equal(t, Ident{Name: "FLAG"}, block.Clauses[0].Cond)
	assert.Equal(t, Ident{Name: "OTHER"}, block.Clauses[1].Cond)
	assert.Nil(t, block.Clauses[2].Cond)
	assert.Equal(t, "#endif", block.EndifLine)
}

func TestParseConditions(t *testing.T) {
	tests := []struct {
		name        string
		cond        string
		want        Expr
		unsupported bool
	}{
		{name: "identifier", cond: "FLAG", want: Ident{Name: "FLAG"}},
		{name: "negation", cond: "!FLAG", want: Not{X: Ident{Name: "FLAG"}}},
		{name: "integer literal", cond: "1", want: IntLit{Value: 1}},
		{
			name: "conjunction",
			cond: "FLAG && DEBUG",
			want: Binary{Op: OpAnd, Left: Ident{Name: "FLAG"}, Right: Ident{Name: "DEBUG"}},
		},
		{
			name: "left associative chain without precedence",
			cond: "A || B && C",
			want: Binary{
				Op:    OpAnd,
				Left:  Binary{Op: OpOr, Left: Ident{Name: "A"}, Right: Ident{Name: "B"}},
				Right: Ident{Name: "C"},
			},
		},
		{
			name: "parenthesized",
			cond: "(FLAG)",
			want: Paren{Inner: Ident{Name: "FLAG"}},
		},
		{
			name: "trailing comment ignored",
			cond: "FLAG // remove me later",
			want: Ident{Name: "FLAG"},
		},
		{name: "platform condition", cond: "os(iOS)", unsupported: true},
		{name: "compiler version", cond: "swift(>=5.9)", unsupported: true},
		{name: "mixed with call", cond: "FLAG && canImport(UIKit)", unsupported: true},
		{name: "stray operator", cond: "FLAG &&", unsupported: true},
		{name: "empty condition", cond: "", unsupported: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, unsupported := parseCondition(tt.cond)
			if tt.unsupported {
				assert.True(t, unsupported)
				assert.Nil(t, expr)
				return
			}
			require.False(t, unsupported)
			assert.Equal(t, tt.want, expr)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing endif", input: "#if FLAG\nlet x = 1\n"},
		{name: "stray endif", input: "let x = 1\n#endif\n"},
		{name: "stray elseif", input: "#elseif FLAG\n"},
		{name: "elseif after else", input: "#if A\nx\n#else\ny\n#elseif B\nz\n#endif\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile([]byte(tt.input))
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestMultilineStringIsOpaque(t *testing.T) {
	// a lone #endif inside a string must not be taken for a directive
	src := "let s = \"\"\"\n#endif\nplain text\n\"\"\"\n"
	f, err := ParseFile([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, f.Text())
	for _, d := range f.Decls {
		_, ok := d.(*Raw)
		assert.True(t, ok)
	}
}

func TestClassifyDirectiveBoundary(t *testing.T) {
	// identifiers that merely start with a directive keyword are not directives
	f, err := ParseFile([]byte("#iffy\n"))
	require.NoError(t, err)
	require.Len(t, f.Decls, 1)
	_, ok := f.Decls[0].(*Raw)
	assert.True(t, ok)
}
