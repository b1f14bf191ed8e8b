// Package remove implements `projup remove`: unregister a project and,
// unless soft, delete its backup repository.
package remove

import (
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
)

// RemoveProjectOptions holds options for the remove command
type RemoveProjectOptions struct {
	Workspace *workspace.Workspace
	Name      string
	// Soft keeps the backup repository
	Soft bool
}

// RemoveProject unregisters the named project. Its working directory is
// never touched.
func RemoveProject(opts RemoveProjectOptions) (*types.RemoveResult, error) {
	logger := logging.GetLogger("commands.remove")
	ws := opts.Workspace

	projects, err := ws.Projects()
	if err != nil {
		return nil, err
	}

	// resolved before removal; Backup needs the entry
	backup, backupErr := projects.Backup(opts.Name)

	path, err := projects.Remove(opts.Name)
	if err != nil {
		return nil, err
	}

	result := &types.RemoveResult{Name: opts.Name, Path: path}

	if !opts.Soft && backupErr == nil {
		if err := ws.FS.RemoveAll(backup); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to delete backup %s", backup).
				WithDetail("path", backup)
		}
		result.Backup = backup
		result.BackupDeleted = true
		logger.Info().Str("backup", backup).Msg("deleted backup")
	}

	if err := ws.SaveProjects(projects); err != nil {
		return nil, err
	}

	logger.Info().Str("name", opts.Name).Bool("soft", opts.Soft).Msg("project removed")
	return result, nil
}
