package tokens

import (
	"strings"
	"unicode"
)

// Serialize renders tokens back into projup source, one token per line.
// Semantic values survive a Tokenize round trip; whitespace layout and the
// choice between bareword and quoted form do not.
func Serialize(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(encodeToken(t))
		b.WriteByte('\n')
	}
	return b.String()
}

func encodeToken(t Token) string {
	switch t.Kind {
	case Tag:
		return "[" + t.Name + "]"
	case Set:
		line := encodeObject(t.Key) + " ="
		if len(t.Values) > 0 {
			line += " " + encodeObjects(t.Values)
		}
		return line
	default:
		return encodeObjects(t.Values)
	}
}

func encodeObjects(objs []Object) string {
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = encodeObject(o)
	}
	return strings.Join(parts, " ")
}

func encodeObject(o Object) string {
	switch o.Kind {
	case String:
		return quote(o.Text)
	case Variable:
		return "$" + o.Text
	case VariableFormat:
		return "$" + o.Text + ":" + quote(o.Format)
	default:
		return encodeBareword(o.Text)
	}
}

// encodeBareword quotes words that are empty or contain whitespace and
// escapes the remaining special characters.
func encodeBareword(s string) string {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return quote(s)
	}

	var b strings.Builder
	for i, c := range s {
		switch {
		case c == '\\' || c == '"' || c == '=' || c == '$' || c == ':':
			b.WriteByte('\\')
		case i == 0 && (c == '[' || c == '/'):
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, c := range s {
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('"')
	return b.String()
}
