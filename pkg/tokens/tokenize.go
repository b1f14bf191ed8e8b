package tokens

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/projup/projup/pkg/logging"
)

type mode int

const (
	modeNormal mode = iota
	modeString
	modeVariable
	modePostVariable
	modePostColon
	modeVariableFormat
)

// Tokenize splits projup source into tokens, one per meaningful line.
// Comment lines (starting with //) and blank lines produce nothing.
// Tokenize never fails: malformed lines still yield a best-effort token and
// semantic checks are left to the caller.
// Content is read as UTF-8; invalid bytes decode as U+FFFD.
func Tokenize(content string) []Token {
	var result []Token

	if !utf8.ValidString(content) {
		logger := logging.GetLogger("tokens")
		logger.Warn().Msg("content is not valid UTF-8, invalid bytes read as U+FFFD")
	}

	for index, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			name := ""
			if len(line) > 1 {
				name = strings.TrimSpace(line[1 : len(line)-1])
			}
			result = append(result, NewTag(index, name))
			continue
		}

		result = append(result, decodeLine(index, line))
	}

	return result
}

// lineDecoder holds the state of a single line scan.
type lineDecoder struct {
	line     string
	mode     mode
	varStart int
	buf      strings.Builder
	objs     []Object
	key      *Object
}

func decodeLine(index int, line string) Token {
	d := &lineDecoder{line: line}
	escaped := false

	for i, c := range line {
		if escaped {
			escaped = false
			d.buf.WriteRune(c)
			continue
		}

		if d.shouldClose(c) && !d.close(c, i) {
			continue
		}

		switch d.mode {
		case modeNormal:
			switch {
			case unicode.IsSpace(c):
				d.flushAbsolute()
			case c == '\\':
				escaped = true
			case c == '"':
				d.flushAbsolute()
				d.mode = modeString
			case c == '$':
				d.flushAbsolute()
				d.mode = modeVariable
				d.varStart = i + 1
			case c == '=' && d.key == nil && d.canStartSet():
				d.startSet()
			default:
				d.buf.WriteRune(c)
			}
		case modeString, modeVariableFormat:
			if c == '\\' {
				escaped = true
				continue
			}
			d.buf.WriteRune(c)
		}
		// modeVariable accumulates by position; post-variable modes only see
		// whitespace here, which is skipped.
	}
	d.finish()

	if d.key != nil {
		return NewSet(index, *d.key, d.objs...)
	}
	return NewDeclare(index, d.objs...)
}

func (d *lineDecoder) shouldClose(c rune) bool {
	switch d.mode {
	case modeString, modeVariableFormat:
		return c == '"'
	case modeVariable:
		return !isNameRune(c)
	case modePostVariable, modePostColon:
		return !unicode.IsSpace(c)
	default:
		return false
	}
}

// close leaves the current mode on character c found at byte offset i.
// It reports whether c still has to be processed in the new mode.
func (d *lineDecoder) close(c rune, i int) bool {
	switch d.mode {
	case modeString:
		d.objs = append(d.objs, Str(d.popBuffer()))
		d.mode = modeNormal
		return false
	case modeVariable:
		d.objs = append(d.objs, Var(d.line[d.varStart:i]))
		switch {
		case c == ':':
			d.mode = modePostColon
			return false
		case unicode.IsSpace(c):
			d.mode = modePostVariable
			return false
		}
		d.mode = modeNormal
		return true
	case modePostVariable:
		if c == ':' {
			d.mode = modePostColon
			return false
		}
		d.mode = modeNormal
		return true
	case modePostColon:
		if c == '"' {
			d.mode = modeVariableFormat
			return false
		}
		// A colon without a format string becomes part of the next bareword.
		d.buf.WriteByte(':')
		d.mode = modeNormal
		return true
	case modeVariableFormat:
		d.closeFormat()
		d.mode = modeNormal
		return false
	}
	return true
}

// finish force-closes whatever is open at the end of the line.
func (d *lineDecoder) finish() {
	switch d.mode {
	case modeNormal:
		d.flushAbsolute()
	case modeString:
		d.objs = append(d.objs, Str(d.popBuffer()))
	case modeVariable:
		d.objs = append(d.objs, Var(d.line[d.varStart:]))
	case modePostColon:
		d.buf.WriteByte(':')
		d.flushAbsolute()
	case modeVariableFormat:
		d.closeFormat()
	}
	d.mode = modeNormal
}

func (d *lineDecoder) closeFormat() {
	format := d.popBuffer()
	last := len(d.objs) - 1
	if last >= 0 && d.objs[last].Kind == Variable {
		d.objs[last] = VarFormat(d.objs[last].Text, format)
		return
	}
	d.objs = append(d.objs, Str(format))
}

// canStartSet reports whether the key built so far is at most one object.
func (d *lineDecoder) canStartSet() bool {
	if len(d.objs) == 0 {
		return true
	}
	return len(d.objs) == 1 && d.buf.Len() == 0
}

func (d *lineDecoder) startSet() {
	var key Object
	if len(d.objs) == 0 {
		key = Abs(d.popBuffer())
	} else {
		key = d.objs[0]
		d.objs = nil
	}
	d.key = &key
}

func (d *lineDecoder) flushAbsolute() {
	if d.buf.Len() == 0 {
		return
	}
	d.objs = append(d.objs, Abs(d.popBuffer()))
}

func (d *lineDecoder) popBuffer() string {
	s := d.buf.String()
	d.buf.Reset()
	return s
}

func isNameRune(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsNumber(c)
}
