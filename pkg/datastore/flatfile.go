// Package datastore persists the lists of known templates and registered
// projects.
//
// Both live in flat files using the .projup token syntax: one
// `location = "<dir>"` line plus one `name = "<value>"` line per entry.
// Entries are held in a registry.Registry while loaded and are written back
// sorted by name.
package datastore

import (
	"path/filepath"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/registry"
	"github.com/projup/projup/pkg/tokens"
	"github.com/spf13/afero"
)

// LocationKey is the reserved key holding a list's directory.
const LocationKey = "location"

// flatFile is the shared shape of templates.txt and projects.txt.
type flatFile struct {
	location string
	entries  *registry.Registry[string]
}

// newFlatFile returns an empty list; entry names the kind of item it holds.
func newFlatFile(location, entry string) flatFile {
	return flatFile{location: location, entries: registry.New[string](entry)}
}

func parseFlatFile(content, kind, entry string) (flatFile, error) {
	f := newFlatFile("", entry)
	hasLocation := false

	for _, t := range tokens.Tokenize(content) {
		key, keyOK := t.Key.Literal()
		value, valueOK := t.LiteralValue()
		if t.Kind != tokens.Set || !keyOK || !valueOK {
			return f, invalidRegistry(kind, t.Line, "expected name = value")
		}

		if key == LocationKey {
			if hasLocation {
				return f, invalidRegistry(kind, t.Line, "location is set more than once")
			}
			f.location = value
			hasLocation = true
			continue
		}

		if err := f.entries.Register(key, value); err != nil {
			return f, invalidRegistry(kind, t.Line, err.Error())
		}
	}

	if !hasLocation {
		return f, errors.Newf(errors.ErrRegistryInvalid, "%s has no location", kind).
			WithDetail("registry", kind)
	}
	return f, nil
}

func (f *flatFile) content() string {
	toks := []tokens.Token{
		tokens.NewSet(0, tokens.Abs(LocationKey), tokens.Str(f.location)),
	}
	for i, name := range f.entries.List() {
		value, _ := f.entries.Get(name)
		toks = append(toks, tokens.NewSet(i+1, tokens.Abs(name), tokens.Str(value)))
	}
	return tokens.Serialize(toks)
}

func (f *flatFile) save(fs afero.Fs, file string) error {
	if err := fs.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(file)).
			WithDetail("path", filepath.Dir(file))
	}
	if err := afero.WriteFile(fs, file, []byte(f.content()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", file).
			WithDetail("path", file)
	}
	return nil
}

// readFlatFile returns the file content, or ok=false if it does not exist.
func readFlatFile(fs afero.Fs, file string) (string, bool, error) {
	exists, err := afero.Exists(fs, file)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", file).
			WithDetail("path", file)
	}
	if !exists {
		return "", false, nil
	}

	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", file).
			WithDetail("path", file)
	}
	return string(data), true, nil
}

func invalidRegistry(kind string, line int, reason string) error {
	return errors.Newf(errors.ErrRegistryInvalid, "invalid %s on line %d: %s", kind, line+1, reason).
		WithDetail("registry", kind).
		WithDetail("line", line+1)
}
