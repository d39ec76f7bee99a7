package syntax

import "strings"

// declKeywords are the introducers of declarations that keep a file alive.
// Imports, comments and closing braces do not.
var declKeywords = map[string]bool{
	"struct":         true,
	"enum":           true,
	"class":          true,
	"protocol":       true,
	"extension":      true,
	"actor":          true,
	"typealias":      true,
	"associatedtype": true,
	"func":           true,
	"init":           true,
	"deinit":         true,
	"subscript":      true,
	"var":            true,
	"let":            true,
	"macro":          true,
	"case":           true,
	"operator":       true,
}

// declModifiers may precede a declaration keyword and are skipped when
// classifying a line.
var declModifiers = map[string]bool{
	"public":      true,
	"private":     true,
	"fileprivate": true,
	"internal":    true,
	"open":        true,
	"package":     true,
	"final":       true,
	"static":      true,
	"override":    true,
	"required":    true,
	"convenience": true,
	"lazy":        true,
	"weak":        true,
	"unowned":     true,
	"indirect":    true,
	"dynamic":     true,
	"mutating":    true,
	"nonmutating": true,
	"nonisolated": true,
	"distributed": true,
	"optional":    true,
	"prefix":      true,
	"postfix":     true,
	"infix":       true,
}

// IsMeaningfulDecl reports whether a raw declaration introduces something
// that should keep its file from being deleted: a type, type alias,
// function, variable, constant, or macro declaration or expansion.
// Import statements and stray syntax like closing braces do not count.
func IsMeaningfulDecl(r *Raw) bool {
	if len(r.Lines) == 0 {
		return false
	}
	fields := strings.Fields(r.Lines[0])
	for i := 0; i < len(fields); i++ {
		word := fields[i]
		switch {
		case strings.HasPrefix(word, "@"):
			// Skip an attribute; a parenthesized argument list may span
			// several fields, e.g. @available(iOS 13.0, *).
			if strings.Contains(word, "(") && !balancedParens(word) {
				for i+1 < len(fields) && !strings.Contains(fields[i+1], ")") {
					i++
				}
				i++
			}
		case strings.HasPrefix(word, "#"):
			// Freestanding macro expansions are declarations; #warning and
			// #error only emit diagnostics.
			name := strings.TrimPrefix(word, "#")
			if j := strings.IndexAny(name, "( "); j >= 0 {
				name = name[:j]
			}
			return name != "warning" && name != "error"
		case declModifiers[word]:
			// keep scanning
		default:
			return declKeywords[word]
		}
	}
	return false
}

func balancedParens(s string) bool {
	return strings.Count(s, "(") == strings.Count(s, ")")
}
