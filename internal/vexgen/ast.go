package vexgen

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()         // marker method to ensure type safety
	Pos() Position // returns the source position of the node
}

// Document represents a complete .vex source file: exactly one top-level tag.
type Document struct {
	Root     *Tag
	Position Position
}

func (d *Document) node()         {}
func (d *Document) Pos() Position { return d.Position }

// Tag represents a tag element: <name attrs>children</...> or <name attrs/>.
//
// A paired tag's closing marker is scanned only to find its terminating '>'
// and is otherwise discarded; it is not matched against the opening name.
type Tag struct {
	Name       string
	Attributes []*Attribute
	Children   []Node // *Tag, *GoExpr, *Text
	SelfClose  bool
	Position   Position
}

func (t *Tag) node()         {}
func (t *Tag) Pos() Position { return t.Position }

// Attribute represents a key=value pair. Value is a *StringLit, *BoolLit,
// or *GoExpr. Duplicate keys are preserved in source order.
type Attribute struct {
	Name          string
	Value         Node
	Position      Position // position of the attribute name
	ValuePosition Position // position of the attribute value, after '='
}

func (a *Attribute) node()         {}
func (a *Attribute) Pos() Position { return a.Position }

// StringLit represents a string literal "...". The grammar performs no
// escape processing, so the value is the raw text between the quotes.
type StringLit struct {
	Value    string
	Position Position
}

func (s *StringLit) node()         {}
func (s *StringLit) Pos() Position { return s.Position }

// BoolLit represents a boolean literal (true/false).
type BoolLit struct {
	Value    bool
	Position Position
}

func (b *BoolLit) node()         {}
func (b *BoolLit) Pos() Position { return b.Position }

// GoExpr represents a Go expression embedded in {braces}, captured verbatim
// with any interior brace pairs intact.
type GoExpr struct {
	Code     string
	Position Position
}

func (g *GoExpr) node()         {}
func (g *GoExpr) Pos() Position { return g.Position }

// Text represents a literal text run inside a tag's children.
type Text struct {
	Text     string
	Position Position
}

func (t *Text) node()         {}
func (t *Text) Pos() Position { return t.Position }
