// Package parser extracts C function prototypes from header text.
//
// It is not a C parser. The headers this tool targets are stylistically
// consistent enough that a sanitize-then-pattern-match pipeline recovers
// every public prototype: comments, preprocessor lines and braced bodies
// are stripped, the remainder is split on ';', and each candidate is
// matched against the shape of a function declaration. Macros, variadics,
// function-pointer parameters and multi-declarator lines are out of scope.
package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	ignoreRe = regexp.MustCompile(`^\s*(?:static|typedef)`)

	// Overall prototype shape. The return type is everything up to the
	// last space before the name, so multi-word types ("unsigned char *")
	// and pointer returns need no dedicated capture. The parameter list is
	// whatever sits between the parentheses that close the statement.
	prototypeRe = regexp.MustCompile(`^(.+ \*?)(.*)\((.*)\)$`)

	// One parameter: type up to the last space, optional '*', then the
	// identifier. Same greedy split as the return type.
	parameterRe = regexp.MustCompile(`^(.+ \*?)(\w+)$`)
)

// Extract sanitizes header text and returns every function prototype found,
// in declaration order. Statements that are not prototypes are skipped; a
// prototype-shaped statement whose parameter list cannot be decomposed
// aborts extraction with an error.
func Extract(text string) ([]FunctionSignature, error) {
	var sigs []FunctionSignature

	for _, stmt := range SplitStatements(Sanitize(text)) {
		sig, ok, err := ParsePrototype(stmt)
		if err != nil {
			return nil, err
		}
		if ok {
			sigs = append(sigs, sig)
		}
	}

	return sigs, nil
}

// SplitStatements flattens sanitized text onto one line and splits it into
// ';'-delimited candidate declarations. Empty candidates (for example the
// fragment after the final ';') are yielded as-is and rejected later by
// ParsePrototype.
func SplitStatements(sanitized string) []string {
	flat := strings.NewReplacer("\n", "", "\r", "").Replace(sanitized)
	return strings.Split(flat, ";")
}

// ParsePrototype classifies one candidate statement. It reports ok=false
// for anything that is not a function prototype, which is the normal
// outcome for most of a header. An error is returned only when a candidate
// matches the prototype shape but carries an unparsable parameter list.
func ParsePrototype(candidate string) (FunctionSignature, bool, error) {
	// Forward declarations and typedefs share the prototype shape but
	// must not get stubs.
	if ignoreRe.MatchString(candidate) {
		return FunctionSignature{}, false, nil
	}

	m := prototypeRe.FindStringSubmatch(candidate)
	if m == nil {
		return FunctionSignature{}, false, nil
	}

	params, err := ParseParameters(m[3])
	if err != nil {
		return FunctionSignature{}, false, err
	}

	return FunctionSignature{
		ReturnType:   strings.TrimSpace(m[1]),
		Name:         m[2],
		Parameters:   params,
		RawParamText: m[3],
	}, true, nil
}

// ParseParameters decomposes a parameter list into (type, name) pairs. A
// bare "void" means no parameters. A non-empty fragment that does not
// split into type and name is an error the caller must treat as fatal: a
// stub emitted with a malformed parameter would fail to compile against
// the declaring header and quietly corrupt the rest of the output.
func ParseParameters(paramText string) ([]Parameter, error) {
	if strings.TrimSpace(paramText) == "void" {
		return nil, nil
	}

	var params []Parameter

	for _, piece := range strings.Split(paramText, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		m := parameterRe.FindStringSubmatch(piece)
		if m == nil {
			return nil, fmt.Errorf("unparsable parameter %q in parameter list %q", piece, paramText)
		}

		params = append(params, Parameter{
			Type: strings.TrimSpace(m[1]),
			Name: m[2],
		})
	}

	return params, nil
}
