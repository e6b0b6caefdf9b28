package parser

import (
	"regexp"
	"strings"
)

// codeSection marks where a brace-delimited block used to be. Whatever the
// block belonged to (function body, struct, enum, initializer) is never a
// prototype, so the marker only has to keep the surrounding statement from
// accidentally re-joining into something parseable.
const codeSection = " ##CODE_SECTION## "

var (
	// Comments and string/char literals in a single alternation. Matching
	// both classes together means a comment opener inside a literal (or a
	// quote inside a comment) is claimed by whichever region starts first,
	// which is as close to a real C lexer as this tool gets.
	commentOrLiteralRe = regexp.MustCompile(`(?sm)//.*?$|/\*.*?\*/|'(?:\\.|[^\\'])*'|"(?:\\.|[^\\"])*"`)

	preprocessorRe = regexp.MustCompile(`(?m)^[ \t]*#.*$`)

	// Innermost balanced brace block: an open brace, a run with no further
	// open brace, and the close. Applied repeatedly so nesting collapses
	// from the inside out.
	braceBlockRe = regexp.MustCompile(`\{[^{]*?\}`)
)

// Sanitize strips comments, preprocessor directives and brace-delimited
// blocks from raw header text, leaving only statement-like residue for the
// splitter. String and character literals are preserved verbatim; comments
// are replaced by their own newline count so the vertical structure of the
// file survives the rewrite.
func Sanitize(raw string) string {
	text := commentOrLiteralRe.ReplaceAllStringFunc(raw, func(s string) string {
		if strings.HasPrefix(s, "/") {
			return strings.Repeat("\n", strings.Count(s, "\n"))
		}
		return s
	})

	text = preprocessorRe.ReplaceAllString(text, "\n")

	// A stray unbalanced '{' is left in place on purpose: the statements
	// spanning it will fail prototype matching downstream and be skipped.
	for braceBlockRe.MatchString(text) {
		text = braceBlockRe.ReplaceAllString(text, codeSection)
	}

	return text
}
