// Package workspace bundles what every projup command works with: the
// filesystem, XDG paths, resolved settings and the git client.
package workspace

import (
	"path/filepath"
	"time"

	"github.com/projup/projup/pkg/config"
	"github.com/projup/projup/pkg/datastore"
	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/git"
	"github.com/projup/projup/pkg/paths"
	"github.com/projup/projup/pkg/projfile"
	"github.com/spf13/afero"
)

// Workspace is shared by all commands of one invocation.
type Workspace struct {
	FS     afero.Fs
	Paths  paths.Paths
	Config *config.Config
	Git    *git.Client
	// Clock defaults to time.Now
	Clock func() time.Time
	// WorkDir resolves relative paths; the process working directory when
	// empty
	WorkDir string
}

// New returns a workspace on the OS filesystem running the git binary.
func New(p paths.Paths, cfg *config.Config) *Workspace {
	return &Workspace{
		FS:     filesystem.NewOS(),
		Paths:  p,
		Config: cfg,
		Git:    git.New(git.NewExecRunner()),
		Clock:  time.Now,
	}
}

// Now returns the current time of the workspace clock.
func (w *Workspace) Now() time.Time {
	if w.Clock == nil {
		return time.Now()
	}
	return w.Clock()
}

// Remote returns the name of the backup remote.
func (w *Workspace) Remote() string {
	if w.Config == nil || w.Config.Backup.Remote == "" {
		return git.DefaultRemote
	}
	return w.Config.Backup.Remote
}

// Workers returns the template worker count.
func (w *Workspace) Workers() int {
	if w.Config == nil {
		return 0
	}
	return w.Config.Workers()
}

// Abs makes path absolute and clean.
func (w *Workspace) Abs(path string) (string, error) {
	if w.WorkDir != "" && path != "" && !filepath.IsAbs(path) && path[0] != '~' {
		return filepath.Join(w.WorkDir, path), nil
	}
	return paths.NormalizePath(path)
}

// Templates loads the templates list.
func (w *Workspace) Templates() (*datastore.Templates, error) {
	return datastore.LoadTemplates(w.FS, w.Paths.TemplatesFile(), w.defaultTemplates())
}

// SaveTemplates writes the templates list.
func (w *Workspace) SaveTemplates(t *datastore.Templates) error {
	return t.Save(w.FS, w.Paths.TemplatesFile())
}

// Projects loads the projects list.
func (w *Workspace) Projects() (*datastore.Projects, error) {
	return datastore.LoadProjects(w.FS, w.Paths.ProjectsFile(), w.defaultBackups())
}

// SaveProjects writes the projects list.
func (w *Workspace) SaveProjects(p *datastore.Projects) error {
	return p.Save(w.FS, w.Paths.ProjectsFile())
}

// TemplateDir resolves ref to a template directory: either a directory
// holding a .projup file or the name of a known template.
func (w *Workspace) TemplateDir(ref string) (string, error) {
	if dir, err := w.Abs(ref); err == nil {
		if ok, _ := afero.Exists(w.FS, filepath.Join(dir, projfile.FileName)); ok {
			return dir, nil
		}
	}

	templates, err := w.Templates()
	if err != nil {
		return "", err
	}
	return templates.Dir(ref)
}

func (w *Workspace) defaultTemplates() string {
	if w.Config != nil && w.Config.Templates.Location != "" {
		return w.Config.Templates.Location
	}
	return w.Paths.DefaultTemplatesDir()
}

func (w *Workspace) defaultBackups() string {
	if w.Config != nil && w.Config.Backup.Location != "" {
		return w.Config.Backup.Location
	}
	return w.Paths.DefaultBackupsDir()
}
