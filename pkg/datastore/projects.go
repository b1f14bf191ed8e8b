package datastore

import (
	"path/filepath"

	"github.com/projup/projup/pkg/errors"
	"github.com/spf13/afero"
)

const projectsKind = "projects list"

// Project is a registered project.
type Project struct {
	Name string
	Path string
}

// Projects maps project names to their working directory. Each project is
// backed up to a bare repository named after it under Location.
type Projects struct {
	flatFile
}

// NewProjects returns an empty list backing up to location.
func NewProjects(location string) *Projects {
	return &Projects{flatFile: newFlatFile(location, "project")}
}

// ParseProjects reads a projects list.
func ParseProjects(content string) (*Projects, error) {
	f, err := parseFlatFile(content, projectsKind, "project")
	if err != nil {
		return nil, err
	}
	return &Projects{flatFile: f}, nil
}

// LoadProjects reads file, or returns an empty list backing up to
// defaultLocation when it does not exist yet.
func LoadProjects(fs afero.Fs, file, defaultLocation string) (*Projects, error) {
	content, ok, err := readFlatFile(fs, file)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewProjects(defaultLocation), nil
	}
	return ParseProjects(content)
}

// Save writes the list to file.
func (p *Projects) Save(fs afero.Fs, file string) error {
	return p.save(fs, file)
}

// Content renders the list.
func (p *Projects) Content() string {
	return p.content()
}

// Location returns the backup directory.
func (p *Projects) Location() string {
	return p.location
}

// SetLocation changes the backup directory.
func (p *Projects) SetLocation(location string) {
	p.location = location
}

// List returns every project sorted by name.
func (p *Projects) List() []Project {
	names := p.entries.List()
	out := make([]Project, 0, len(names))
	for _, name := range names {
		path, _ := p.entries.Get(name)
		out = append(out, Project{Name: name, Path: path})
	}
	return out
}

// Path returns the working directory of the named project.
func (p *Projects) Path(name string) (string, error) {
	path, err := p.entries.Get(name)
	if err != nil {
		return "", unknownProject(name)
	}
	return path, nil
}

// Lookup finds the project registered at path.
func (p *Projects) Lookup(path string) (string, bool) {
	clean := filepath.Clean(path)
	for _, project := range p.List() {
		if filepath.Clean(project.Path) == clean {
			return project.Name, true
		}
	}
	return "", false
}

// Backup returns the backup repository of the named project.
func (p *Projects) Backup(name string) (string, error) {
	if !p.entries.Has(name) {
		return "", unknownProject(name)
	}
	if p.location == "" {
		return "", errors.New(errors.ErrBackupNotSet, "backup location is not set")
	}
	return filepath.Join(p.location, name), nil
}

// NameFor returns the project name used for path: its base name.
func NameFor(path string) (string, error) {
	name := filepath.Base(filepath.Clean(path))
	switch name {
	case ".", "..", string(filepath.Separator), LocationKey:
		return "", errors.Newf(errors.ErrInvalidProject, "invalid project name %q", name).
			WithDetail("path", path)
	}
	return name, nil
}

// Add registers the project at path and returns its name.
func (p *Projects) Add(path string) (string, error) {
	name, err := NameFor(path)
	if err != nil {
		return "", err
	}
	if p.entries.Has(name) {
		existing, _ := p.entries.Get(name)
		return "", errors.Newf(errors.ErrProjectExists, "project %s already exists at %s", name, existing).
			WithDetail("name", name)
	}
	if err := p.entries.Register(name, path); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to register project")
	}
	return name, nil
}

// Remove unregisters the named project and returns its path.
func (p *Projects) Remove(name string) (string, error) {
	path, err := p.entries.Remove(name)
	if err != nil {
		return "", unknownProject(name)
	}
	return path, nil
}

// Move re-registers the project at src as living at dst. The name follows
// the new base name; it returns the old and new names.
func (p *Projects) Move(src, dst string) (string, string, error) {
	oldName, ok := p.Lookup(src)
	if !ok {
		return "", "", unknownProject(src)
	}
	newName, err := NameFor(dst)
	if err != nil {
		return "", "", err
	}
	if newName != oldName && p.entries.Has(newName) {
		return "", "", errors.Newf(errors.ErrProjectExists, "project %s already exists", newName).
			WithDetail("name", newName)
	}

	if err := p.entries.Rename(oldName, newName, dst); err != nil {
		return "", "", errors.Wrap(err, errors.ErrInternal, "failed to register project")
	}
	return oldName, newName, nil
}

func unknownProject(name string) error {
	return errors.Newf(errors.ErrUnknownProject, "unknown project %s", name).
		WithDetail("name", name)
}
