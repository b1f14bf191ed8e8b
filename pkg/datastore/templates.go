package datastore

import (
	"path/filepath"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/projfile"
	"github.com/spf13/afero"
)

const templatesKind = "templates list"

// Templates maps template names to their directory under a common
// location.
type Templates struct {
	flatFile
}

// InvalidTemplate is a template directory skipped by Scan.
type InvalidTemplate struct {
	Dir string
	Err error
}

// NewTemplates returns an empty list rooted at location.
func NewTemplates(location string) *Templates {
	return &Templates{flatFile: newFlatFile(location, "template")}
}

// ParseTemplates reads a templates list.
func ParseTemplates(content string) (*Templates, error) {
	f, err := parseFlatFile(content, templatesKind, "template")
	if err != nil {
		return nil, err
	}
	return &Templates{flatFile: f}, nil
}

// LoadTemplates reads file, or returns an empty list rooted at
// defaultLocation when it does not exist yet.
func LoadTemplates(fs afero.Fs, file, defaultLocation string) (*Templates, error) {
	content, ok, err := readFlatFile(fs, file)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewTemplates(defaultLocation), nil
	}
	return ParseTemplates(content)
}

// Save writes the list to file.
func (t *Templates) Save(fs afero.Fs, file string) error {
	return t.save(fs, file)
}

// Content renders the list.
func (t *Templates) Content() string {
	return t.content()
}

// Location returns the directory holding the templates.
func (t *Templates) Location() string {
	return t.location
}

// SetLocation changes the template directory. Known templates are kept;
// call Scan to refresh them.
func (t *Templates) SetLocation(location string) {
	t.location = location
}

// Names returns the known template names, sorted.
func (t *Templates) Names() []string {
	return t.entries.List()
}

// Dir returns the directory of the named template.
func (t *Templates) Dir(name string) (string, error) {
	dir, err := t.entries.Get(name)
	if err != nil {
		return "", errors.Newf(errors.ErrTemplateNotFound, "template %s not found", name).
			WithDetail("name", name)
	}
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	return filepath.Join(t.location, dir), nil
}

// Scan replaces the known templates with every directory under Location
// holding a valid .projup file. Directories without one are ignored and
// those whose file does not parse are returned. Two templates declaring
// the same name fail the scan.
func (t *Templates) Scan(fs afero.Fs) ([]InvalidTemplate, error) {
	logger := logging.GetLogger("datastore.templates")

	entries, err := afero.ReadDir(fs, t.location)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read template location %s", t.location).
			WithDetail("path", t.location)
	}

	found := newFlatFile(t.location, "template")
	var invalid []InvalidTemplate

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(t.location, entry.Name())
		file := filepath.Join(dir, projfile.FileName)

		content, ok, err := readFlatFile(fs, file)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Debug().Str("dir", dir).Msg("no project file, skipping")
			continue
		}

		cfg, err := projfile.ParseContent(content, nil)
		if err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("invalid template")
			invalid = append(invalid, InvalidTemplate{Dir: dir, Err: err})
			continue
		}
		if cfg.Name == LocationKey {
			invalid = append(invalid, InvalidTemplate{
				Dir: dir,
				Err: errors.Newf(errors.ErrTemplateInvalid, "template name %s is reserved", LocationKey).
					WithDetail("name", cfg.Name),
			})
			continue
		}

		if found.entries.Has(cfg.Name) {
			other, _ := found.entries.Get(cfg.Name)
			return nil, errors.Newf(errors.ErrDuplicateTemplate, "template %s is defined in both %s and %s", cfg.Name, other, entry.Name()).
				WithDetail("name", cfg.Name)
		}
		_ = found.entries.Register(cfg.Name, entry.Name())
		logger.Debug().Str("name", cfg.Name).Str("dir", dir).Msg("found template")
	}

	t.flatFile = found
	return invalid, nil
}
