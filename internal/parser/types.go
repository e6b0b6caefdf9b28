package parser

// Parameter is one (type, name) pair from a prototype's parameter list.
// The type keeps any trailing '*', so "char *" and "char*" both round-trip.
type Parameter struct {
	Type string
	Name string
}

// FunctionSignature is a C function prototype decomposed into its parts.
type FunctionSignature struct {
	ReturnType string
	Name       string
	Parameters []Parameter

	// RawParamText is the parameter list exactly as it appeared in the
	// header. It is reused verbatim in the generated stub signature so
	// the stub stays compatible with the declaring header.
	RawParamText string
}
