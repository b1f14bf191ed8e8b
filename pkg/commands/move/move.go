// Package move implements `projup move`: relocate a registered project.
package move

import (
	"context"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
	"github.com/spf13/afero"
)

// MoveOptions holds options for the move command
type MoveOptions struct {
	Workspace *workspace.Workspace
	// Source is the project directory or the project name
	Source      string
	Destination string
}

// Move moves the project directory. The project is renamed after the new
// base name; its backup repository follows and the backup remote is
// re-pointed.
func Move(ctx context.Context, opts MoveOptions) (*types.MoveResult, error) {
	logger := logging.GetLogger("commands.move")
	ws := opts.Workspace

	projects, err := ws.Projects()
	if err != nil {
		return nil, err
	}

	src, err := ws.Abs(opts.Source)
	if err != nil {
		return nil, err
	}
	if _, ok := projects.Lookup(src); !ok {
		if path, err := projects.Path(opts.Source); err == nil {
			src = path
		}
	}
	dst, err := ws.Abs(opts.Destination)
	if err != nil {
		return nil, err
	}

	oldName, ok := projects.Lookup(src)
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownProject, "%s is not a registered project", opts.Source).
			WithDetail("name", opts.Source)
	}
	oldBackup, backupErr := projects.Backup(oldName)

	_, newName, err := projects.Move(src, dst)
	if err != nil {
		return nil, err
	}

	if err := filesystem.Move(ws.FS, src, dst); err != nil {
		return nil, err
	}
	logger.Info().Str("from", src).Str("to", dst).Msg("moved project")

	result := &types.MoveResult{OldName: oldName, NewName: newName, Source: src, Destination: dst}

	renameBackup := false
	if newName != oldName && backupErr == nil {
		exists, err := afero.DirExists(ws.FS, oldBackup)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", oldBackup).
				WithDetail("path", oldBackup)
		}
		renameBackup = exists
	}

	if renameBackup {
		newBackup, err := projects.Backup(newName)
		if err != nil {
			return nil, err
		}
		if err := filesystem.Move(ws.FS, oldBackup, newBackup); err != nil {
			return nil, err
		}
		result.OldBackup = oldBackup
		result.NewBackup = newBackup
		logger.Info().Str("from", oldBackup).Str("to", newBackup).Msg("moved backup")
	}

	if err := ws.SaveProjects(projects); err != nil {
		return nil, err
	}

	if renameBackup {
		if err := ws.Git.SetRemote(ctx, dst, ws.Remote(), result.NewBackup); err != nil {
			return result, errors.Wrapf(err, errors.ErrGitCommand, "moved %s but failed to update its %s remote", newName, ws.Remote()).
				WithDetail("name", newName)
		}
	}

	return result, nil
}
