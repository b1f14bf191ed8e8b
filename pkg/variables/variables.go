// Package variables resolves the $name and $name:"format" references found
// in .projup files.
//
// A Map is supplied by the caller of the config parser. Env is the map used
// when a project is created from a template: it knows the built-in date,
// time and name variables plus any user defines. Recorder is used when only
// the set of referenced variables is of interest.
package variables

import (
	"strings"

	"github.com/projup/projup/pkg/errors"
)

// Ref is a single variable reference as it appears in a token.
type Ref struct {
	// Line is the 0-based line index of the token holding the reference
	Line int
	// Name is the variable name without the leading $
	Name string
	// Format is the quoted text following the colon, if any
	Format string
	// HasFormat distinguishes $x:"" from $x
	HasFormat bool
}

// Map resolves variable references to text.
type Map interface {
	Resolve(ref Ref) (string, error)
}

// MapFunc adapts a plain function to Map.
type MapFunc func(ref Ref) (string, error)

// Resolve calls f.
func (f MapFunc) Resolve(ref Ref) (string, error) {
	return f(ref)
}

// UnknownVariable returns the error reported for a reference no map can
// resolve. line is 0-based; the error carries it 1-based.
func UnknownVariable(line int, name string) error {
	return errors.Newf(errors.ErrUnknownVariable, "unknown variable $%s on line %d", name, line+1).
		WithDetail("line", line+1).
		WithDetail("name", name)
}

// ParseDefine splits a "key=value" command line definition.
func ParseDefine(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", errors.Newf(errors.ErrInvalidDefinition, "invalid KEY=value: no `=` found in `%s`", s).
			WithDetail("define", s)
	}
	if key == "" {
		return "", "", errors.Newf(errors.ErrInvalidDefinition, "invalid KEY=value: empty key in `%s`", s).
			WithDetail("define", s)
	}
	return key, value, nil
}

// ParseDefines parses every definition, later keys overriding earlier ones.
func ParseDefines(defs []string) (map[string]string, error) {
	out := make(map[string]string, len(defs))
	for _, d := range defs {
		k, v, err := ParseDefine(d)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
