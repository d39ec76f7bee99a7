// Package objc resolves a feature flag in Objective-C sources. These
// files are not structurally parsed; the transform recognizes
// preprocessor blocks whose opening condition is exactly the flag or its
// negation, walks to the block's own #else/#endif tracking directive
// nesting, and splices whole lines. Conditions mentioning any other macro
// never match, so mixed blocks survive.
package objc

import (
	"fmt"
	"regexp"
	"strings"
)

// Extensions lists the file extensions handled by this transform.
var Extensions = map[string]bool{
	".h":  true,
	".m":  true,
	".mm": true,
}

// form is one supported opening-directive shape. keepIf selects the if
// branch of a matched block; otherwise the else branch survives, or
// nothing when the block has none.
type form struct {
	open   func(flag string) *regexp.Regexp
	keepIf bool
}

// forms are tried in order. The opening patterns are anchored to the whole
// line, so `#if FLAG && DEBUG` and `#if FLAG_V2` never match.
var forms = []form{
	{ // #if !FLAG
		open: func(flag string) *regexp.Regexp {
			return regexp.MustCompile(fmt.Sprintf(
				`^[ \t]*#if[ \t]+![ \t]*%s[ \t]*$`, regexp.QuoteMeta(flag)))
		},
		keepIf: false,
	},
	{ // #if FLAG
		open: func(flag string) *regexp.Regexp {
			return regexp.MustCompile(fmt.Sprintf(
				`^[ \t]*#if[ \t]+%s[ \t]*$`, regexp.QuoteMeta(flag)))
		},
		keepIf: true,
	},
}

var (
	openDirective  = regexp.MustCompile(`^[ \t]*#if(n?def)?\b`)
	elifDirective  = regexp.MustCompile(`^[ \t]*#elif\b`)
	elseDirective  = regexp.MustCompile(`^[ \t]*#else\b`)
	endifDirective = regexp.MustCompile(`^[ \t]*#endif\b`)
)

// Transform resolves flag to permanently-true in Objective-C source text.
// It returns the new text and whether anything changed. Objective-C files
// are rewritten in place, never deleted, so there is no emptiness check.
func Transform(src []byte, flag string) ([]byte, bool) {
	lines := splitLines(string(src))
	edited := false

	for _, f := range forms {
		re := f.open(flag)
		for {
			out, changed := resolveOnce(lines, re, f.keepIf)
			if !changed {
				break
			}
			lines = out
			edited = true
		}
	}

	if !edited {
		return src, false
	}
	return []byte(strings.Join(lines, "")), true
}

// resolveOnce splices the first block whose opening line matches open and
// whose body can be walked to a matching #endif.
func resolveOnce(lines []string, open *regexp.Regexp, keepIf bool) ([]string, bool) {
	for i := range lines {
		if !open.MatchString(chomp(lines[i])) {
			continue
		}
		elseAt, endifAt, ok := scanBlock(lines, i)
		if !ok {
			continue
		}

		var kept []string
		switch {
		case keepIf && elseAt >= 0:
			kept = lines[i+1 : elseAt]
		case keepIf:
			kept = lines[i+1 : endifAt]
		case elseAt >= 0:
			kept = lines[elseAt+1 : endifAt]
		}

		out := make([]string, 0, len(lines)-(endifAt+1-i)+len(kept))
		out = append(out, lines[:i]...)
		out = append(out, kept...)
		out = append(out, lines[endifAt+1:]...)
		return out, true
	}
	return lines, false
}

// scanBlock walks from the opening directive at start to its matching
// #endif, skipping nested conditionals whole. It reports the block's own
// #else line (-1 when absent) and its #endif line. ok is false when the
// block is unterminated or carries a same-depth #elif; an #elif condition
// mentions another macro, so such a block must survive untouched.
func scanBlock(lines []string, start int) (elseAt, endifAt int, ok bool) {
	depth := 0
	elseAt = -1
	for j := start + 1; j < len(lines); j++ {
		line := chomp(lines[j])
		switch {
		case openDirective.MatchString(line):
			depth++
		case endifDirective.MatchString(line):
			if depth == 0 {
				return elseAt, j, true
			}
			depth--
		case depth > 0:
			// branch directives of a nested block
		case elifDirective.MatchString(line):
			return 0, 0, false
		case elseDirective.MatchString(line):
			if elseAt >= 0 {
				return 0, 0, false
			}
			elseAt = j
		}
	}
	return 0, 0, false
}

// splitLines splits source into lines, each keeping its terminator, so a
// splice is a pure deletion of whole elements.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

func chomp(line string) string {
	return strings.TrimRight(line, "\r\n")
}
