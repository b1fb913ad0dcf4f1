package vexgen

// parseTag parses a tag: either self-closing <name attrs/> or paired
// <name attrs>children</...>. The two forms are disambiguated by the '/'
// before '>'.
func (p *Parser) parseTag() (*Tag, *Error) {
	pos := p.lexer.position()

	if p.lexer.ch != '<' {
		return nil, NewError(UnexpectedToken, pos, "expected '<'")
	}
	p.lexer.readChar()
	p.lexer.skipWhitespace()

	namePos := p.lexer.position()
	name := p.lexer.readIdentifier()
	if name == "" {
		return nil, NewError(UnexpectedToken, namePos, "expected tag name")
	}

	tag := &Tag{
		Name:     name,
		Position: pos,
	}

	attrs, perr := p.parseAttributes()
	if perr != nil {
		return nil, perr
	}
	tag.Attributes = attrs

	// parseAttributes leaves the cursor past any whitespace.
	switch {
	case p.lexer.ch == '/':
		p.lexer.readChar()
		if p.lexer.ch != '>' {
			return nil, NewError(UnexpectedToken, p.lexer.position(), "expected '>' after '/'")
		}
		p.lexer.readChar()
		tag.SelfClose = true
		return tag, nil

	case p.lexer.ch == '>':
		p.lexer.readChar()

		children, perr := p.parseChildren()
		if perr != nil {
			return nil, perr
		}
		tag.Children = children

		if perr := p.parseCloseMarker(pos); perr != nil {
			return nil, perr
		}
		return tag, nil

	case p.lexer.atEOF():
		return nil, NewError(UnterminatedTag, pos, "missing '>' or '/>'")

	default:
		return nil, NewError(UnexpectedToken, p.lexer.position(),
			"expected attribute, '>', or '/>'")
	}
}

// parseChildren parses a paired tag's children: a mixed sequence of nested
// tags, embedded spans, and text runs, tried in that priority order. The
// loop ends when none match, which means either the closing marker or end
// of input is next; the caller decides which is an error.
func (p *Parser) parseChildren() ([]Node, *Error) {
	var children []Node

	for {
		p.lexer.skipWhitespace()

		switch {
		case p.lexer.atEOF():
			return children, nil

		case p.lexer.ch == '<':
			if p.lexer.peekChar() == '/' {
				return children, nil
			}
			tag, perr := p.parseTag()
			if perr != nil {
				return nil, perr
			}
			children = append(children, tag)

		case p.lexer.ch == '{':
			pos := p.lexer.position()
			p.lexer.readChar() // consume {
			span, perr := p.lexer.readEmbedded(pos)
			if perr != nil {
				return nil, perr
			}
			children = append(children, &GoExpr{Code: span, Position: pos})

		default:
			// A text run is never empty here: the cursor is on a
			// non-whitespace character that is neither '<' nor '{'.
			pos := p.lexer.position()
			children = append(children, &Text{
				Text:     p.lexer.readTextRun(),
				Position: pos,
			})
		}
	}
}

// parseCloseMarker consumes a closing tag marker: "</", any characters up
// to the terminating '>', and the '>' itself. The interior text is scanned
// only to find the '>' and is otherwise discarded; it is not matched
// against the opening tag's name. openPos is the opening tag's position,
// reported when the marker is missing or unterminated.
func (p *Parser) parseCloseMarker(openPos Position) *Error {
	if p.lexer.atEOF() {
		return NewError(UnterminatedTag, openPos, "missing closing tag")
	}

	// parseChildren only stops at EOF or "</".
	p.lexer.readChar() // consume <
	p.lexer.readChar() // consume /

	for p.lexer.ch != '>' && p.lexer.ch != 0 {
		p.lexer.readChar()
	}
	if p.lexer.ch == 0 {
		return NewError(UnterminatedTag, openPos, "missing '>' in closing tag")
	}
	p.lexer.readChar() // consume >
	return nil
}
