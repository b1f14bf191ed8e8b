// Package cases splits identifiers into words and recombines them using
// common casing conventions (camelCase, snake_case, Title Case, ...).
package cases

import (
	"strings"
	"unicode"

	"github.com/projup/projup/pkg/errors"
)

// Case is a target identifier casing convention.
type Case int

const (
	Camel Case = iota
	Pascal
	Snake
	Macro
	CamelSnake
	PascalSnake
	Kebab
	Cobol
	Train
	Title
	Sentence
)

// formatting describes how words are recombined.
type formatting struct {
	// firstWordFirstUpper applies to the first character of the first word
	firstWordFirstUpper bool
	// firstUpper applies to the first character of every other word
	firstUpper bool
	// restUpper applies to all remaining characters
	restUpper bool
	// separator is written between words, 0 for none
	separator rune
}

var formats = map[Case]formatting{
	Camel:       {false, true, false, 0},
	Pascal:      {true, true, false, 0},
	Snake:       {false, false, false, '_'},
	Macro:       {true, true, true, '_'},
	CamelSnake:  {false, true, false, '_'},
	PascalSnake: {true, true, false, '_'},
	Kebab:       {false, false, false, '-'},
	Cobol:       {true, true, true, '-'},
	Train:       {true, true, false, '-'},
	Title:       {true, true, false, ' '},
	Sentence:    {true, false, false, ' '},
}

var names = map[Case]string{
	Camel:       "camel",
	Pascal:      "pascal",
	Snake:       "snake",
	Macro:       "macro",
	CamelSnake:  "camel_snake",
	PascalSnake: "pascal_snake",
	Kebab:       "kebab",
	Cobol:       "cobol",
	Train:       "train",
	Title:       "title",
	Sentence:    "sentence",
}

// String returns the name accepted by Parse.
func (c Case) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

// All returns every supported case in declaration order.
func All() []Case {
	return []Case{Camel, Pascal, Snake, Macro, CamelSnake, PascalSnake, Kebab, Cobol, Train, Title, Sentence}
}

// Parse looks a case up by name, ignoring ASCII case.
func Parse(name string) (Case, error) {
	for c, n := range names {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}
	return Camel, errors.Newf(errors.ErrInvalidCase, "invalid casing: %s", name).
		WithDetail("case", name)
}

// Convert re-cases text.
func Convert(text string, c Case) string {
	return Join(Split(text), c)
}

// Split breaks text into words. A word is a run of letters or a run of
// digits; a letter run is also broken where the letter case changes after
// its first two characters (so "beansARE" gives "beans", "ARE" but "Hello"
// stays whole). Every other character separates words and is dropped.
func Split(text string) []string {
	var words []string

	start := 0
	inWord := false
	isFirst := true
	numeric := false
	lastUpper := false

	flush := func(end int) {
		words = append(words, text[start:end])
	}

	for i, c := range text {
		alpha := unicode.IsLetter(c)
		number := unicode.IsNumber(c)

		if !inWord {
			if alpha || number {
				numeric = number
				inWord = true
				start = i
				isFirst = true
				lastUpper = unicode.IsUpper(c)
			}
			continue
		}

		upper := unicode.IsUpper(c)
		caseChanged := !isFirst && upper != lastUpper
		lastUpper = upper

		if caseChanged || !(alpha || number) || numeric != number {
			flush(i)
			if alpha || number {
				numeric = number
				start = i
				isFirst = true
				continue
			}
			inWord = false
		}
		isFirst = false
	}
	if inWord {
		flush(len(text))
	}

	return words
}

// Join recombines words using the given case. When the first word starts
// with a digit an underscore is written before it so the result remains a
// valid identifier.
func Join(words []string, c Case) string {
	f, ok := formats[c]
	if !ok {
		f = formats[Camel]
	}

	var b strings.Builder
	for wi, w := range words {
		if wi > 0 && f.separator != 0 {
			b.WriteRune(f.separator)
		}

		for ci, r := range w {
			switch {
			case ci > 0:
				writeCased(&b, r, f.restUpper)
			case wi == 0:
				if unicode.IsNumber(r) {
					b.WriteByte('_')
				}
				writeCased(&b, r, f.firstWordFirstUpper)
			default:
				writeCased(&b, r, f.firstUpper)
			}
		}
	}
	return b.String()
}

func writeCased(b *strings.Builder, r rune, upper bool) {
	if upper {
		b.WriteRune(unicode.ToUpper(r))
		return
	}
	b.WriteRune(unicode.ToLower(r))
}
