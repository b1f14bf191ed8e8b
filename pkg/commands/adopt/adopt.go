// Package adopt implements `projup adopt`: register an existing directory
// as a project.
package adopt

import (
	"context"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
	"github.com/spf13/afero"
)

// AdoptOptions holds options for the adopt command
type AdoptOptions struct {
	Workspace *workspace.Workspace
	Path      string
	// Backup pushes the project right away
	Backup bool
}

// Adopt creates a bare backup repository for the git repository at Path
// and points its backup remote at it.
func Adopt(ctx context.Context, opts AdoptOptions) (result *types.AdoptResult, err error) {
	logger := logging.GetLogger("commands.adopt")
	ws := opts.Workspace

	path, err := ws.Abs(opts.Path)
	if err != nil {
		return nil, err
	}
	exists, err := afero.DirExists(ws.FS, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path).
			WithDetail("path", path)
	}
	if !exists {
		return nil, errors.Newf(errors.ErrFileNotFound, "%s is not a directory", path).
			WithDetail("path", path)
	}

	projects, err := ws.Projects()
	if err != nil {
		return nil, err
	}
	if name, ok := projects.Lookup(path); ok {
		return nil, errors.Newf(errors.ErrProjectExists, "%s is already registered as %s", path, name).
			WithDetail("name", name)
	}
	name, err := projects.Add(path)
	if err != nil {
		return nil, err
	}
	backup, err := projects.Backup(name)
	if err != nil {
		return nil, err
	}
	if err := filesystem.EnsureAbsent(ws.FS, backup); err != nil {
		return nil, err
	}

	defer func() {
		if err == nil {
			return
		}
		if rmErr := ws.FS.RemoveAll(backup); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", backup).Msg("failed to clean up")
		}
	}()

	if err := filesystem.EnsureDir(ws.FS, backup); err != nil {
		return nil, err
	}
	if err := ws.Git.InitBare(ctx, backup); err != nil {
		return nil, err
	}
	if err := ws.Git.AddRemote(ctx, path, ws.Remote(), backup); err != nil {
		return nil, err
	}

	result = &types.AdoptResult{Name: name, Path: path, Backup: backup}
	if opts.Backup {
		if err := ws.Git.PushAll(ctx, path, ws.Remote()); err != nil {
			return nil, err
		}
		result.Pushed = true
	}

	if err := ws.SaveProjects(projects); err != nil {
		return nil, err
	}

	logger.Info().Str("name", name).Str("path", path).Bool("pushed", result.Pushed).Msg("project adopted")
	return result, nil
}
