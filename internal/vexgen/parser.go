package vexgen

// Parser parses .vex source files into an AST.
//
// All alternatives are tried in a fixed priority order and at most one can
// match at any position, so the parser never backtracks past a committed
// rule. The first failure aborts the parse: there is no recovery and no
// partial tree.
type Parser struct {
	lexer *Lexer
}

// NewParser creates a new Parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{lexer: lexer}
}

// Parse is a convenience function that parses source in one step.
func Parse(filename, source string) (*Document, error) {
	return NewParser(NewLexer(filename, source)).ParseDocument()
}

// ParseDocument parses a complete .vex document: optional leading
// whitespace, exactly one tag, optional trailing whitespace, end of input.
func (p *Parser) ParseDocument() (*Document, error) {
	p.lexer.skipWhitespace()
	pos := p.lexer.position()

	root, perr := p.parseTag()
	if perr != nil {
		return nil, perr
	}

	p.lexer.skipWhitespace()
	if !p.lexer.atEOF() {
		return nil, NewError(TrailingInput, p.lexer.position(),
			"unexpected content after the top-level tag")
	}

	return &Document{Root: root, Position: pos}, nil
}

// parseAttributes parses zero or more key=value attributes. It stops
// without error at the first position where no "key =" pattern matches,
// leaving the cursor on the first non-whitespace character after the list.
// Duplicate keys are kept in source order.
func (p *Parser) parseAttributes() ([]*Attribute, *Error) {
	var attrs []*Attribute

	for {
		p.lexer.skipWhitespace()
		if !isIdentRune(p.lexer.ch) {
			return attrs, nil
		}

		// The only lookahead in the grammar: an identifier here is an
		// attribute key only if '=' follows. Otherwise rewind so the tag
		// parser reports the error at the identifier, not past it.
		saved := p.lexer.mark()
		pos := p.lexer.position()
		name := p.lexer.readIdentifier()

		p.lexer.skipWhitespace()
		if p.lexer.ch != '=' {
			p.lexer.reset(saved)
			return attrs, nil
		}
		p.lexer.readChar() // consume =
		p.lexer.skipWhitespace()

		value, perr := p.parseAttributeValue()
		if perr != nil {
			return nil, perr
		}

		attrs = append(attrs, &Attribute{
			Name:          name,
			Value:         value,
			Position:      pos,
			ValuePosition: value.Pos(),
		})
	}
}

// parseAttributeValue parses an attribute value. Alternatives are tried in
// priority order: string literal, boolean keyword, embedded span. They are
// disambiguated by their leading character, so the choice is deterministic.
func (p *Parser) parseAttributeValue() (Node, *Error) {
	pos := p.lexer.position()

	switch {
	case p.lexer.ch == '"':
		value, perr := p.lexer.readString()
		if perr != nil {
			return nil, perr
		}
		return &StringLit{Value: value, Position: pos}, nil

	case isIdentRune(p.lexer.ch):
		word := p.lexer.readIdentifier()
		switch word {
		case "true":
			return &BoolLit{Value: true, Position: pos}, nil
		case "false":
			return &BoolLit{Value: false, Position: pos}, nil
		}
		return nil, NewErrorf(UnexpectedToken, pos,
			"expected attribute value (string, boolean, or {expression}), got %q", word)

	case p.lexer.ch == '{':
		p.lexer.readChar() // consume {
		span, perr := p.lexer.readEmbedded(pos)
		if perr != nil {
			return nil, perr
		}
		return &GoExpr{Code: span, Position: pos}, nil

	default:
		return nil, NewError(UnexpectedToken, pos,
			"expected attribute value (string, boolean, or {expression})")
	}
}
