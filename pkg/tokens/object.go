package tokens

// ObjectKind discriminates the variants of an Object.
type ObjectKind int

const (
	// Absolute is an unquoted bareword.
	Absolute ObjectKind = iota
	// String is a double-quoted literal with its escapes decoded.
	String
	// Variable is a bare $name reference.
	Variable
	// VariableFormat is a $name:"format" reference.
	VariableFormat
)

func (k ObjectKind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case String:
		return "string"
	case Variable:
		return "variable"
	case VariableFormat:
		return "variable_format"
	default:
		return "unknown"
	}
}

// Object is the smallest decoded unit of a projup line. Text holds the
// literal text for Absolute and String objects and the variable name for
// Variable and VariableFormat objects.
type Object struct {
	Kind   ObjectKind
	Text   string
	Format string
}

// Abs returns an Absolute object.
func Abs(text string) Object {
	return Object{Kind: Absolute, Text: text}
}

// Str returns a String object.
func Str(text string) Object {
	return Object{Kind: String, Text: text}
}

// Var returns a Variable object.
func Var(name string) Object {
	return Object{Kind: Variable, Text: name}
}

// VarFormat returns a VariableFormat object.
func VarFormat(name, format string) Object {
	return Object{Kind: VariableFormat, Text: name, Format: format}
}

// IsVariable reports whether the object references a variable.
func (o Object) IsVariable() bool {
	return o.Kind == Variable || o.Kind == VariableFormat
}

// Literal returns the plain text of Absolute and String objects. The second
// result is false for variable references.
func (o Object) Literal() (string, bool) {
	if o.IsVariable() {
		return "", false
	}
	return o.Text, true
}

// String renders the object in projup syntax.
func (o Object) String() string {
	return encodeObject(o)
}
