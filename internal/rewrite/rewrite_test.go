package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daonguyenios/SwiftFlagCleaner/internal/syntax"
)

const targetFlag = "NEW_CHECKOUT"

func rewriteText(t *testing.T, input string) (string, bool) {
	t.Helper()
	f, err := syntax.ParseFile([]byte(input))
	require.NoError(t, err)
	out, edited := RewriteFile(f, targetFlag)
	return out.Text(), edited
}

func TestRewriteFile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		edited   bool
	}{
		{
			name:     "plain block keeps if body",
			input:    "#if NEW_CHECKOUT\nshowNewCheckout()\n#endif\n",
			expected: "showNewCheckout()\n",
			edited:   true,
		},
		{
			name:     "negated block keeps else body",
			input:    "#if !NEW_CHECKOUT\nlegacy()\n#else\nmodern()\n#endif\n",
			expected: "modern()\n",
			edited:   true,
		},
		{
			name:     "negated block without else disappears",
			input:    "let a = 1\n#if !NEW_CHECKOUT\nlegacy()\n#endif\nlet b = 2\n",
			expected: "let a = 1\nlet b = 2\n",
			edited:   true,
		},
		{
			name:     "elseif chain picks first true clause",
			input:    "#if !NEW_CHECKOUT\na()\n#elseif NEW_CHECKOUT\nb()\n#else\nc()\n#endif\n",
			expected: "b()\n",
			edited:   true,
		},
		{
			name:     "unrelated flag is untouched",
			input:    "#if OTHER_FLAG\nx()\n#endif\n",
			expected: "#if OTHER_FLAG\nx()\n#endif\n",
			edited:   false,
		},
		{
			name:     "mixed flags are untouched",
			input:    "#if NEW_CHECKOUT && OTHER_FLAG\nx()\n#endif\n",
			expected: "#if NEW_CHECKOUT && OTHER_FLAG\nx()\n#endif\n",
			edited:   false,
		},
		{
			name:     "literal-only condition is untouched",
			input:    "#if 0\nx()\n#endif\n",
			expected: "#if 0\nx()\n#endif\n",
			edited:   false,
		},
		{
			name:     "unsupported condition is untouched",
			input:    "#if os(iOS)\nx()\n#endif\n",
			expected: "#if os(iOS)\nx()\n#endif\n",
			edited:   false,
		},
		{
			name:     "unsupported operand alongside flag is untouched",
			input:    "#if NEW_CHECKOUT && canImport(UIKit)\nx()\n#endif\n",
			expected: "#if NEW_CHECKOUT && canImport(UIKit)\nx()\n#endif\n",
			edited:   false,
		},
		{
			name:     "flag with literal conjunction",
			input:    "#if NEW_CHECKOUT && 1\nx()\n#endif\n",
			expected: "x()\n",
			edited:   true,
		},
		{
			name:     "false conjunction removes block",
			input:    "let k = 0\n#if NEW_CHECKOUT && 0\nx()\n#endif\n",
			expected: "let k = 0\n",
			edited:   true,
		},
		{
			name:     "nested target inside unrelated outer",
			input:    "#if OTHER_FLAG\na()\n#if NEW_CHECKOUT\nb()\n#endif\n#endif\n",
			expected: "#if OTHER_FLAG\na()\nb()\n#endif\n",
			edited:   true,
		},
		{
			name:     "nested target inside target winner",
			input:    "#if NEW_CHECKOUT\na()\n#if !NEW_CHECKOUT\nb()\n#endif\nc()\n#endif\n",
			expected: "a()\nc()\n",
			edited:   true,
		},
		{
			name:     "double negation",
			input:    "#if !!NEW_CHECKOUT\nx()\n#else\ny()\n#endif\n",
			expected: "x()\n",
			edited:   true,
		},
		{
			name:     "parenthesized condition",
			input:    "#if (NEW_CHECKOUT)\nx()\n#endif\n",
			expected: "x()\n",
			edited:   true,
		},
		{
			name: "operators collapse left to right without precedence",
			// (NEW_CHECKOUT || 0) && 0 is false; a precedence-correct
			// evaluator would pick x() instead.
			input:    "#if NEW_CHECKOUT || 0 && 0\nx()\n#else\ny()\n#endif\n",
			expected: "y()\n",
			edited:   true,
		},
		{
			name:     "leading blank collapses with directive line",
			input:    "#if NEW_CHECKOUT\n\n    x()\n#endif\n",
			expected: "\n    x()\n",
			edited:   true,
		},
		{
			name:     "blank before block is kept",
			input:    "a()\n\n#if NEW_CHECKOUT\nx()\n#endif\n",
			expected: "a()\n\nx()\n",
			edited:   true,
		},
		{
			name:     "blank after block is kept",
			input:    "#if NEW_CHECKOUT\nx()\n#endif\n\ny()\n",
			expected: "x()\n\ny()\n",
			edited:   true,
		},
		{
			name:     "comment above block stays above spliced body",
			input:    "// checkout path\n#if NEW_CHECKOUT\nx()\n#endif\n",
			expected: "// checkout path\nx()\n",
			edited:   true,
		},
		{
			name:     "indented body keeps its indentation",
			input:    "func f() {\n    #if NEW_CHECKOUT\n    g()\n    #endif\n}\n",
			expected: "func f() {\n    g()\n}\n",
			edited:   true,
		},
		{
			name:     "directive text inside a multiline string is untouched",
			input:    "let s = \"\"\"\n#if NEW_CHECKOUT\ncontent\n#endif\n\"\"\"\n",
			expected: "let s = \"\"\"\n#if NEW_CHECKOUT\ncontent\n#endif\n\"\"\"\n",
			edited:   false,
		},
		{
			name:     "no conditional blocks at all",
			input:    "// NEW_CHECKOUT mentioned in prose only\nlet x = 1\n",
			expected: "// NEW_CHECKOUT mentioned in prose only\nlet x = 1\n",
			edited:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, edited := rewriteText(t, tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.edited, edited)
		})
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	inputs := []string{
		"#if NEW_CHECKOUT\nx()\n#endif\n",
		"#if OTHER_FLAG\na()\n#if NEW_CHECKOUT\nb()\n#endif\n#endif\n",
		"#if !NEW_CHECKOUT\na()\n#elseif NEW_CHECKOUT\nb()\n#else\nc()\n#endif\n",
	}
	for _, input := range inputs {
		once, _ := rewriteText(t, input)
		twice, edited := rewriteText(t, once)
		assert.Equal(t, once, twice)
		assert.False(t, edited, "second pass must find nothing to resolve in %q", once)
	}
}

func TestProcessSource(t *testing.T) {
	t.Run("rewritten file", func(t *testing.T) {
		res, err := ProcessSource([]byte("#if NEW_CHECKOUT\nfunc f() {}\n#endif\n"), targetFlag)
		require.NoError(t, err)
		assert.True(t, res.Edited)
		assert.False(t, res.DeleteRequested)
		assert.Equal(t, "func f() {}\n", string(res.NewText))
	})

	t.Run("unchanged file", func(t *testing.T) {
		res, err := ProcessSource([]byte("#if OTHER_FLAG\nfunc f() {}\n#endif\n"), targetFlag)
		require.NoError(t, err)
		assert.False(t, res.Edited)
		assert.Nil(t, res.NewText)
	})

	t.Run("comment-only body requests deletion", func(t *testing.T) {
		res, err := ProcessSource([]byte("#if NEW_CHECKOUT\n// note\n#endif\n"), targetFlag)
		require.NoError(t, err)
		assert.True(t, res.Edited)
		assert.True(t, res.DeleteRequested)
	})

	t.Run("imports alone do not keep a file", func(t *testing.T) {
		src := "import Foundation\n\n#if !NEW_CHECKOUT\nstruct Legacy {}\n#endif\n"
		res, err := ProcessSource([]byte(src), targetFlag)
		require.NoError(t, err)
		assert.True(t, res.Edited)
		assert.True(t, res.DeleteRequested)
	})

	t.Run("parse failure", func(t *testing.T) {
		_, err := ProcessSource([]byte("#if NEW_CHECKOUT\nx()\n"), targetFlag)
		require.Error(t, err)
	})
}
