package vexgen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// checkSplices rejects empty (or whitespace-only) embedded spans. The
// grammar accepts `{}`, but splicing it produces a call with a missing
// argument in the generated Go.
func checkSplices(tag *Tag) error {
	for _, attr := range tag.Attributes {
		if e, ok := attr.Value.(*GoExpr); ok && strings.TrimSpace(e.Code) == "" {
			return fmt.Errorf("%s: empty expression splice in attribute %q", e.Position, attr.Name)
		}
	}
	for _, child := range tag.Children {
		switch c := child.(type) {
		case *Tag:
			if err := checkSplices(c); err != nil {
				return err
			}
		case *GoExpr:
			if strings.TrimSpace(c.Code) == "" {
				return fmt.Errorf("%s: empty expression splice", c.Position)
			}
		}
	}
	return nil
}

// generateTag emits code for a tag and returns the variable holding its
// view. Children are emitted first since vex.NewView takes them at
// construction time.
func (g *Generator) generateTag(tag *Tag) string {
	var childVars []string
	for _, child := range tag.Children {
		switch c := child.(type) {
		case *Tag:
			childVars = append(childVars, g.generateTag(c))
		case *Text:
			v := g.nextVar()
			g.writef("%s := vex.Text(%q)\n", v, c.Text)
			childVars = append(childVars, v)
		case *GoExpr:
			v := g.nextVar()
			g.writef("%s := vex.Dynamic(%s)\n", v, c.Code)
			childVars = append(childVars, v)
		}
	}

	attrs, handlers := g.splitAttributes(tag.Attributes)

	varName := g.nextVar()
	g.writef("%s := vex.NewView(%q,\n", varName, tag.Name)
	g.indent++

	if len(attrs) == 0 {
		g.writeln("nil,")
	} else {
		g.writeln("[]vex.Attribute{")
		g.indent++
		for _, attr := range attrs {
			g.writef("{Key: %q, Value: %s},\n", attr.Name, g.attributeValue(attr.Value))
		}
		g.indent--
		g.writeln("},")
	}

	if len(handlers) == 0 {
		g.writeln("nil,")
	} else {
		g.writeln("[]vex.ViewHandler{")
		g.indent++
		for _, h := range handlers {
			expr := h.Value.(*GoExpr)
			g.writef("vex.On(%q, %s),\n", g.handlerKind(h.Name), expr.Code)
		}
		g.indent--
		g.writeln("},")
	}

	for _, v := range childVars {
		g.writef("%s,\n", v)
	}

	g.indent--
	g.writeln(")")

	return varName
}

// splitAttributes separates event-handler attributes from plain ones.
// A handler attribute has the configured prefix, a non-empty remainder,
// and an embedded-expression value.
func (g *Generator) splitAttributes(attrs []*Attribute) (plain, handlers []*Attribute) {
	for _, attr := range attrs {
		if g.isHandlerAttribute(attr) {
			handlers = append(handlers, attr)
		} else {
			plain = append(plain, attr)
		}
	}
	return plain, handlers
}

func (g *Generator) isHandlerAttribute(attr *Attribute) bool {
	prefix := g.HandlerPrefix
	if prefix == "" {
		return false
	}
	if !strings.HasPrefix(attr.Name, prefix) || len(attr.Name) == len(prefix) {
		return false
	}
	_, isExpr := attr.Value.(*GoExpr)
	return isExpr
}

// handlerKind maps a handler attribute name to its event kind:
// onclick or onClick -> click.
func (g *Generator) handlerKind(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, g.HandlerPrefix))
}

// attributeValue emits the expression for a plain attribute value.
func (g *Generator) attributeValue(value Node) string {
	switch v := value.(type) {
	case *StringLit:
		return fmt.Sprintf("vex.String(%q)", v.Value)
	case *BoolLit:
		return fmt.Sprintf("vex.Bool(%t)", v.Value)
	case *GoExpr:
		return fmt.Sprintf("vex.AttrValue(%s)", v.Code)
	}
	return `vex.String("")`
}

// ViewFuncName derives the generated function name from a .vex filename:
// header.vex -> HeaderView, user-card.vex -> UserCardView.
func ViewFuncName(filename string) string {
	name := strings.TrimSuffix(filename, ".vex")

	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if r == '-' || r == '_' || r == '.' || r == ' ' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	if out == "" {
		return "View"
	}
	// A leading digit cannot start a Go identifier.
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		out = "V" + out
	}
	return out + "View"
}
