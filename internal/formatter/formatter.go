// Package formatter provides code formatting for .vex template files.
//
// It parses .vex source, normalizes whitespace and indentation, then
// pretty-prints the result. Used by the "vex fmt" command. Printing is a
// faithful serializer: re-parsing the output yields a structurally
// identical tree.
package formatter

import (
	"github.com/vexlang/vex/internal/vexgen"
)

// Formatter formats .vex source code.
type Formatter struct {
	// IndentString is the string used for indentation (default: tab).
	IndentString string
}

// New creates a new Formatter with default settings.
func New() *Formatter {
	return &Formatter{
		IndentString: "\t",
	}
}

// Format parses and reformats the given .vex source code.
// Returns the formatted code and any error encountered during parsing.
func (f *Formatter) Format(filename, source string) (string, error) {
	doc, err := vexgen.Parse(filename, source)
	if err != nil {
		return "", err
	}

	printer := newPrinter(f.IndentString)
	return printer.PrintDocument(doc), nil
}

// FormatResult contains the result of formatting a file.
type FormatResult struct {
	// Content is the formatted content.
	Content string
	// Changed indicates if the content was different from the original.
	Changed bool
}

// FormatWithResult formats the source and indicates if it changed.
func (f *Formatter) FormatWithResult(filename, source string) (FormatResult, error) {
	formatted, err := f.Format(filename, source)
	if err != nil {
		return FormatResult{}, err
	}

	return FormatResult{
		Content: formatted,
		Changed: formatted != source,
	}, nil
}
