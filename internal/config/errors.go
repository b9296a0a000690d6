package config

import "fmt"

// The three failure kinds a scenario can be rejected with. Each is terminal:
// there is no partial acceptance or default substitution, the caller drops
// the configuration and reports the error.

// ParseError reports a scenario file that could not be read or decoded as
// YAML. The data never became a mapping, so no validation was attempted.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse scenario file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StructuralError reports raw scenario data whose shape is wrong: missing or
// extra keys, a field of the wrong primitive type, or a value outside its
// declared range. Value echoes the offending raw data.
type StructuralError struct {
	Field string
	Value any
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

// SemanticError reports a fully-built scenario that violates a cross-field
// invariant, such as an overlap, an unreachable goal, or an insufficient
// episode time limit. Value echoes the offending values.
type SemanticError struct {
	Invariant string
	Value     any
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %v", e.Invariant, e.Value)
}
