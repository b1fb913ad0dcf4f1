package vexgen

import (
	"bytes"
	"fmt"
	"go/format"

	"golang.org/x/tools/imports"
)

// modulePath is the import path of the vex runtime emitted into generated
// files.
const modulePath = "github.com/vexlang/vex"

// Generator transforms a parsed Document into Go source code.
type Generator struct {
	buf        bytes.Buffer
	indent     int
	varCounter int
	sourceFile string // original .vex filename for the header comment

	// PackageName is the package clause of the generated file.
	PackageName string

	// FuncName is the name of the generated view function. When empty it
	// is derived from the source filename (header.vex -> HeaderView).
	FuncName string

	// HandlerPrefix marks attributes that declare event handlers. An
	// attribute like onclick={fn} with the default prefix "on" becomes a
	// "click" handler instead of an attribute.
	HandlerPrefix string

	// SkipImports uses format.Source instead of imports.Process (faster
	// for tests).
	SkipImports bool
}

// NewGenerator creates a new code generator with default settings.
func NewGenerator() *Generator {
	return &Generator{
		PackageName:   "views",
		HandlerPrefix: "on",
	}
}

// Generate produces Go source code from a parsed document. Returns the
// generated code as a byte slice, or an error if generation fails.
func (g *Generator) Generate(doc *Document, sourceFile string) ([]byte, error) {
	if err := checkSplices(doc.Root); err != nil {
		return nil, err
	}

	g.buf.Reset()
	g.varCounter = 0
	g.sourceFile = sourceFile

	funcName := g.FuncName
	if funcName == "" {
		funcName = ViewFuncName(sourceFile)
	}

	g.generateHeader()
	g.writef("package %s\n\n", g.PackageName)
	g.writef("import vex %q\n\n", modulePath)

	g.writef("// %s builds the view defined in %s.\n", funcName, g.sourceFile)
	g.writef("func %s() vex.View {\n", funcName)
	g.indent++
	rootVar := g.generateTag(doc.Root)
	g.writef("return %s\n", rootVar)
	g.indent--
	g.writeln("}")

	// For tests: format without import processing (much faster).
	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}

	// For production: format and fix imports with goimports, which also
	// resolves imports needed by spliced expressions where it can.
	return imports.Process(g.sourceFile, g.buf.Bytes(), nil)
}

// GenerateString is a convenience method that returns the generated code
// as a string.
func (g *Generator) GenerateString(doc *Document, sourceFile string) (string, error) {
	data, err := g.Generate(doc, sourceFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseAndGenerate parses source and generates Go code in one step.
func ParseAndGenerate(filename, source string) ([]byte, error) {
	return parseAndGenerate(filename, source, false)
}

// parseAndGenerateSkipImports is like ParseAndGenerate but uses
// format.Source instead of imports.Process.
func parseAndGenerateSkipImports(filename, source string) ([]byte, error) {
	return parseAndGenerate(filename, source, true)
}

func parseAndGenerate(filename, source string, skipImports bool) ([]byte, error) {
	doc, err := Parse(filename, source)
	if err != nil {
		return nil, err
	}

	gen := NewGenerator()
	gen.SkipImports = skipImports
	return gen.Generate(doc, filename)
}

// generateHeader writes the "DO NOT EDIT" comment.
func (g *Generator) generateHeader() {
	g.writeln("// Code generated by vex generate. DO NOT EDIT.")
	if g.sourceFile != "" {
		g.writef("// Source: %s\n", g.sourceFile)
	}
	g.writeln("")
}

// nextVar returns the next unique variable name.
func (g *Generator) nextVar() string {
	name := fmt.Sprintf("__vex_%d", g.varCounter)
	g.varCounter++
	return name
}

// writef writes a formatted string with indentation.
func (g *Generator) writef(format string, args ...interface{}) {
	g.writeIndent()
	g.buf.WriteString(fmt.Sprintf(format, args...))
}

// writeln writes a line with indentation.
func (g *Generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteByte('\t')
	}
}
