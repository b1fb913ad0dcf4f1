package vexgen

import (
	"unicode"
	"unicode/utf8"
)

// Lexer is a rune cursor over .vex source. It provides the scanning
// primitives the parser composes: whitespace skipping, identifiers, string
// literals, and balanced embedded spans. It carries no grammar state, so a
// parse is a pure function of the input.
type Lexer struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based)
	column   int  // current column (1-based)
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(filename, source string) *Lexer {
	l := &Lexer{
		filename: filename,
		source:   source,
		line:     1,
		column:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0 // EOF
		l.pos = l.readPos
		if prevWasNewline {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		return
	}

	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// position returns the current Position for error reporting.
func (l *Lexer) position() Position {
	return Position{
		File:   l.filename,
		Line:   l.line,
		Column: l.column,
	}
}

// atEOF reports whether the cursor has consumed all input.
func (l *Lexer) atEOF() bool {
	return l.ch == 0
}

// lexerState is a snapshot of the cursor, used by the parser for the one
// bounded lookahead the grammar needs (deciding whether an identifier
// starts a key=value attribute).
type lexerState struct {
	pos     int
	readPos int
	ch      rune
	line    int
	column  int
}

// mark saves the current cursor state.
func (l *Lexer) mark() lexerState {
	return lexerState{
		pos:     l.pos,
		readPos: l.readPos,
		ch:      l.ch,
		line:    l.line,
		column:  l.column,
	}
}

// reset restores a previously saved cursor state.
func (l *Lexer) reset(s lexerState) {
	l.pos = s.pos
	l.readPos = s.readPos
	l.ch = s.ch
	l.line = s.line
	l.column = s.column
}

// skipWhitespace skips spaces, tabs, and newlines. The grammar allows
// whitespace between any two tokens, so the parser calls this at every
// rule boundary. It never runs inside an identifier, string literal, or
// embedded span.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readIdentifier reads a run of identifier characters. Returns the empty
// string (without advancing) if the current character is not part of the
// identifier class.
func (l *Lexer) readIdentifier() string {
	startPos := l.pos
	for isIdentRune(l.ch) {
		l.readChar()
	}
	return l.source[startPos:l.pos]
}

// readString reads a double-quoted string literal. The grammar performs no
// escape processing: the literal is everything up to the next '"', so a
// quote cannot appear inside a string value. The cursor must be on the
// opening quote.
func (l *Lexer) readString() (string, *Error) {
	openPos := l.position()
	l.readChar() // consume opening "

	startPos := l.pos
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}

	if l.ch == 0 {
		return "", NewError(UnterminatedString, openPos, `missing closing '"'`)
	}

	value := l.source[startPos:l.pos]
	l.readChar() // consume closing "
	return value, nil
}

// readTextRun reads a run of text content: one or more characters that are
// neither '<' nor '{'. Returns the empty string (without advancing) if the
// run would be empty.
func (l *Lexer) readTextRun() string {
	startPos := l.pos
	for l.ch != 0 && l.ch != '<' && l.ch != '{' {
		l.readChar()
	}
	return l.source[startPos:l.pos]
}

// isIdentRune reports whether the rune belongs to the identifier class:
// letters, digits, '_', and '-'.
func isIdentRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '-'
}
