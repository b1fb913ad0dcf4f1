package formatter

import (
	"strings"

	"github.com/vexlang/vex/internal/vexgen"
)

// printer generates formatted .vex source from an AST.
type printer struct {
	indent string
	depth  int
	buf    strings.Builder
}

// newPrinter creates a new printer with the given indent string.
func newPrinter(indent string) *printer {
	return &printer{
		indent: indent,
	}
}

// PrintDocument formats an entire .vex document.
func (p *printer) PrintDocument(doc *vexgen.Document) string {
	p.buf.Reset()
	p.printTag(doc.Root)
	p.buf.WriteByte('\n')
	return p.buf.String()
}

// printTag outputs a tag. Paired tags always close with their opening
// name, so a mismatched closer in the input is normalized here.
func (p *printer) printTag(tag *vexgen.Tag) {
	p.buf.WriteByte('<')
	p.buf.WriteString(tag.Name)

	for _, attr := range tag.Attributes {
		p.buf.WriteByte(' ')
		p.buf.WriteString(attr.Name)
		p.buf.WriteByte('=')
		p.printAttrValue(attr.Value)
	}

	if tag.SelfClose {
		p.buf.WriteString("/>")
		return
	}

	p.buf.WriteByte('>')
	p.printChildren(tag.Children)
	p.buf.WriteString("</")
	p.buf.WriteString(tag.Name)
	p.buf.WriteByte('>')
}

// printChildren outputs a tag's children. Text runs absorb adjacent
// whitespace when re-parsed, so any tag containing text is printed inline,
// exactly as captured. Tags and embedded spans tolerate surrounding
// whitespace and get one line each, indented.
func (p *printer) printChildren(children []vexgen.Node) {
	if len(children) == 0 {
		return
	}

	if containsText(children) {
		for _, child := range children {
			p.printInlineChild(child)
		}
		return
	}

	p.depth++
	for _, child := range children {
		p.buf.WriteByte('\n')
		p.writeIndent()
		p.printInlineChild(child)
	}
	p.depth--
	p.buf.WriteByte('\n')
	p.writeIndent()
}

// printInlineChild outputs one child node without surrounding whitespace.
func (p *printer) printInlineChild(child vexgen.Node) {
	switch c := child.(type) {
	case *vexgen.Tag:
		p.printTag(c)
	case *vexgen.Text:
		p.buf.WriteString(c.Text)
	case *vexgen.GoExpr:
		p.buf.WriteByte('{')
		p.buf.WriteString(c.Code)
		p.buf.WriteByte('}')
	}
}

// printAttrValue outputs an attribute value.
func (p *printer) printAttrValue(value vexgen.Node) {
	switch v := value.(type) {
	case *vexgen.StringLit:
		// The grammar has no escapes; the value cannot contain '"'.
		p.buf.WriteByte('"')
		p.buf.WriteString(v.Value)
		p.buf.WriteByte('"')
	case *vexgen.BoolLit:
		if v.Value {
			p.buf.WriteString("true")
		} else {
			p.buf.WriteString("false")
		}
	case *vexgen.GoExpr:
		p.buf.WriteByte('{')
		p.buf.WriteString(v.Code)
		p.buf.WriteByte('}')
	}
}

// writeIndent writes the current indentation.
func (p *printer) writeIndent() {
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString(p.indent)
	}
}

// containsText reports whether any child is a text run.
func containsText(children []vexgen.Node) bool {
	for _, child := range children {
		if _, ok := child.(*vexgen.Text); ok {
			return true
		}
	}
	return false
}
