// Package vexgen compiles .vex template files into Go code that builds
// vex view trees.
//
// The pipeline consists of:
//   - [Lexer]: a rune cursor over the source with the low-level scanning
//     primitives (identifiers, string literals, balanced embedded spans)
//   - [Parser]: recursive descent over the cursor, building the AST
//   - [Generator]: emits Go source code from the parsed AST
//
// A .vex file contains exactly one top-level tag. Brace-delimited spans
// embed Go expressions; the parser only balances their braces and carries
// the text through verbatim for the generator to splice into the output.
package vexgen
