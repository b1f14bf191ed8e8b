package tokens

// TokenKind discriminates the variants of a Token.
type TokenKind int

const (
	// Tag is a [section] line.
	Tag TokenKind = iota
	// Set is a key = value... line.
	Set
	// Declare is any other non-empty, non-comment line.
	Declare
)

func (k TokenKind) String() string {
	switch k {
	case Tag:
		return "tag"
	case Set:
		return "set"
	case Declare:
		return "declare"
	default:
		return "unknown"
	}
}

// Token is one meaningful line of a projup file.
type Token struct {
	Kind TokenKind
	// Line is the 0-based index of the source line.
	Line int
	// Name is the trimmed section name of a Tag.
	Name string
	// Key is the left-hand side of a Set.
	Key Object
	// Values holds the right-hand side of a Set or the objects of a Declare.
	Values []Object
}

// NewTag returns a Tag token.
func NewTag(line int, name string) Token {
	return Token{Kind: Tag, Line: line, Name: name}
}

// NewSet returns a Set token.
func NewSet(line int, key Object, values ...Object) Token {
	return Token{Kind: Set, Line: line, Key: key, Values: values}
}

// NewDeclare returns a Declare token.
func NewDeclare(line int, values ...Object) Token {
	return Token{Kind: Declare, Line: line, Values: values}
}

// SetKey returns the property name of a Set token whose key is an Absolute.
func (t Token) SetKey() (string, bool) {
	if t.Kind != Set || t.Key.Kind != Absolute {
		return "", false
	}
	return t.Key.Text, true
}

// LiteralValue concatenates the values of the token when none of them is a
// variable reference.
func (t Token) LiteralValue() (string, bool) {
	var out []byte
	for _, v := range t.Values {
		text, ok := v.Literal()
		if !ok {
			return "", false
		}
		out = append(out, text...)
	}
	return string(out), true
}

// String renders the token as a single projup line.
func (t Token) String() string {
	return encodeToken(t)
}
