// Package clone implements `projup clone`: check out a project from its
// backup repository.
package clone

import (
	"context"
	"path/filepath"

	"github.com/projup/projup/pkg/datastore"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
	"github.com/spf13/afero"
)

// CloneOptions holds options for the clone command
type CloneOptions struct {
	Workspace *workspace.Workspace
	Name      string
	// Path is the checkout directory; defaults to Name in the working
	// directory
	Path string
}

// Clone clones <backup location>/<name>. The project does not have to be
// registered, which makes it the way back after a soft remove or on a new
// machine sharing the backup location.
func Clone(ctx context.Context, opts CloneOptions) (*types.CloneResult, error) {
	logger := logging.GetLogger("commands.clone")
	ws := opts.Workspace

	name, err := datastore.NameFor(opts.Name)
	if err != nil || name != opts.Name {
		return nil, errors.Newf(errors.ErrInvalidProject, "invalid project name %q", opts.Name).
			WithDetail("name", opts.Name)
	}

	projects, err := ws.Projects()
	if err != nil {
		return nil, err
	}
	if projects.Location() == "" {
		return nil, errors.New(errors.ErrBackupNotSet, "backup location is not set")
	}

	source := filepath.Join(projects.Location(), name)
	exists, err := afero.DirExists(ws.FS, source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", source).
			WithDetail("path", source)
	}
	if !exists {
		return nil, errors.Newf(errors.ErrUnknownProject, "no backup of %s in %s", name, projects.Location()).
			WithDetail("name", name)
	}

	target := opts.Path
	if target == "" {
		target = name
	}
	destination, err := ws.Abs(target)
	if err != nil {
		return nil, err
	}
	if err := filesystem.EnsureAbsent(ws.FS, destination); err != nil {
		return nil, err
	}

	if err := ws.Git.Clone(ctx, ws.WorkDir, source, destination); err != nil {
		return nil, err
	}

	logger.Info().Str("name", name).Str("destination", destination).Msg("project cloned")
	return &types.CloneResult{Name: name, Source: source, Destination: destination}, nil
}
