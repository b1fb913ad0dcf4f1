package vexgen

import "fmt"

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// ErrorKind classifies a parse error.
type ErrorKind int

const (
	// UnexpectedToken means the input at the error position matched no
	// expected alternative.
	UnexpectedToken ErrorKind = iota
	// UnterminatedEmbedded means an embedded {expr} span never returned
	// to brace depth zero before end of input.
	UnterminatedEmbedded
	// UnterminatedString means a string literal is missing its closing quote.
	UnterminatedString
	// UnterminatedTag means a paired tag is missing its closing > or its
	// </...> marker.
	UnterminatedTag
	// TrailingInput means non-whitespace content follows the top-level tag.
	TrailingInput
)

// kindNames maps error kinds to their string names.
var kindNames = map[ErrorKind]string{
	UnexpectedToken:      "unexpected token",
	UnterminatedEmbedded: "unterminated embedded expression",
	UnterminatedString:   "unterminated string literal",
	UnterminatedTag:      "unterminated tag",
	TrailingInput:        "trailing input",
}

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is a parse error with its kind, source location, and a description
// of the construct that was expected. Parsing is all-or-nothing: the first
// error aborts the parse and no partial tree is returned.
type Error struct {
	Kind    ErrorKind
	Pos     Position
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: error: %s: %s", e.Pos, e.Kind, e.Message)
}

// NewError creates a new Error with the given kind, position, and message.
func NewError(kind ErrorKind, pos Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(kind ErrorKind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
