package parser

import "fmt"

// ParseError describes a parse failure: the byte offset into the input where
// the failure was detected and a human-readable message.
//
// Parsing aborts at the first failure; no partial tree is returned and no
// recovery is attempted.
type ParseError struct {
	// Pos is the byte offset into the input at the point of failure.
	Pos int

	// Message describes the failure.
	Message string
}

var _ error = (*ParseError)(nil)

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON parse error at position %d: %s", e.Pos, e.Message)
}
