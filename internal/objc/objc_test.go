package objc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	flag := "NEW_CHECKOUT"
	tests := []struct {
		name     string
		input    string
		expected string
		edited   bool
	}{
		{
			name:     "plain block keeps body",
			input:    "#if NEW_CHECKOUT\nfoo();\n#endif\n",
			expected: "foo();\n",
			edited:   true,
		},
		{
			name:     "block with else keeps if branch",
			input:    "#if NEW_CHECKOUT\nfoo();\n#else\nbar();\n#endif\n",
			expected: "foo();\n",
			edited:   true,
		},
		{
			name:     "negated block is removed",
			input:    "a();\n#if !NEW_CHECKOUT\nfoo();\n#endif\nb();\n",
			expected: "a();\nb();\n",
			edited:   true,
		},
		{
			name:     "negated block with else keeps else branch",
			input:    "#if !NEW_CHECKOUT\nfoo();\n#else\nbar();\n#endif\n",
			expected: "bar();\n",
			edited:   true,
		},
		{
			name:     "mixed condition is untouched",
			input:    "#if NEW_CHECKOUT && DEBUG\nfoo();\n#endif\n",
			expected: "#if NEW_CHECKOUT && DEBUG\nfoo();\n#endif\n",
			edited:   false,
		},
		{
			name:     "other flag is untouched",
			input:    "#if OTHER\nfoo();\n#endif\n",
			expected: "#if OTHER\nfoo();\n#endif\n",
			edited:   false,
		},
		{
			name:     "prefix of another macro is untouched",
			input:    "#if NEW_CHECKOUT_V2\nfoo();\n#endif\n",
			expected: "#if NEW_CHECKOUT_V2\nfoo();\n#endif\n",
			edited:   false,
		},
		{
			name:     "elif chain is untouched",
			input:    "#if NEW_CHECKOUT\nA();\n#elif OTHER\nB();\n#endif\n",
			expected: "#if NEW_CHECKOUT\nA();\n#elif OTHER\nB();\n#endif\n",
			edited:   false,
		},
		{
			name:     "unterminated block is untouched",
			input:    "#if NEW_CHECKOUT\nfoo();\n",
			expected: "#if NEW_CHECKOUT\nfoo();\n",
			edited:   false,
		},
		{
			name:     "indented directives",
			input:    "  #if NEW_CHECKOUT\n  foo();\n  #endif\n",
			expected: "  foo();\n",
			edited:   true,
		},
		{
			name:     "endif at end of file without newline",
			input:    "#if NEW_CHECKOUT\nfoo();\n#endif",
			expected: "foo();\n",
			edited:   true,
		},
		{
			name:     "nested same-flag blocks resolve over repeated passes",
			input:    "#if NEW_CHECKOUT\nA();\n#if NEW_CHECKOUT\nB();\n#endif\nC();\n#endif\n",
			expected: "A();\nB();\nC();\n",
			edited:   true,
		},
		{
			name:     "nested unrelated block survives inside kept branch",
			input:    "#if NEW_CHECKOUT\n#if DEBUG\na();\n#else\nb();\n#endif\n#endif\n",
			expected: "#if DEBUG\na();\n#else\nb();\n#endif\n",
			edited:   true,
		},
		{
			name:     "nested block inside removed negated block goes with it",
			input:    "#if !NEW_CHECKOUT\n#if DEBUG\na();\n#else\nb();\n#endif\n#endif\n",
			expected: "",
			edited:   true,
		},
		{
			name:     "nested ifdef does not steal the matching endif",
			input:    "#if NEW_CHECKOUT\n#ifdef DEBUG\nlog();\n#endif\nrun();\n#endif\nafter();\n",
			expected: "#ifdef DEBUG\nlog();\n#endif\nrun();\nafter();\n",
			edited:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, edited := Transform([]byte(tt.input), flag)
			assert.Equal(t, tt.expected, string(out))
			assert.Equal(t, tt.edited, edited)
		})
	}
}
