package vexgen

// readEmbedded reads the body of an embedded expression span, handling
// nested braces. The opening '{' has already been consumed, so scanning
// starts at depth one and stops on the '}' that returns the depth to zero.
// Interior brace pairs are captured verbatim: the span is opaque host
// text, and no attempt is made to understand it beyond balancing. Nesting
// depth is unbounded.
func (l *Lexer) readEmbedded(openPos Position) (string, *Error) {
	startPos := l.pos
	braceDepth := 1

	for braceDepth > 0 && l.ch != 0 {
		switch l.ch {
		case '{':
			braceDepth++
		case '}':
			braceDepth--
		}
		if braceDepth > 0 {
			l.readChar()
		}
	}

	if braceDepth != 0 {
		return "", NewError(UnterminatedEmbedded, openPos, "missing matching '}'")
	}

	span := l.source[startPos:l.pos]
	l.readChar() // consume closing }
	return span, nil
}
