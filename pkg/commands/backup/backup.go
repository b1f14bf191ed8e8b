// Package backup implements `projup backup`: force push every registered
// project to its backup remote.
package backup

import (
	"context"

	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
	"golang.org/x/sync/errgroup"
)

// BackupOptions holds options for the backup command
type BackupOptions struct {
	Workspace *workspace.Workspace
}

// Backup pushes all projects. A failing project does not stop the others;
// the result lists every outcome and the error counts the failures.
func Backup(ctx context.Context, opts BackupOptions) (*types.BackupResult, error) {
	logger := logging.GetLogger("commands.backup")
	ws := opts.Workspace

	projects, err := ws.Projects()
	if err != nil {
		return nil, err
	}

	list := projects.List()
	result := &types.BackupResult{Projects: make([]types.BackupStatus, len(list))}
	remote := ws.Remote()

	g := new(errgroup.Group)
	if workers := ws.Workers(); workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range list {
		i, p := i, p
		g.Go(func() error {
			status := types.BackupStatus{Name: p.Name, Path: p.Path}
			if err := ws.Git.PushAll(ctx, p.Path, remote); err != nil {
				status.Error = err.Error()
				logger.Warn().Err(err).Str("name", p.Name).Msg("backup failed")
			} else {
				logger.Debug().Str("name", p.Name).Msg("backed up")
			}
			result.Projects[i] = status
			return nil
		})
	}
	_ = g.Wait()

	if failed := result.Failed(); failed > 0 {
		return result, errors.Newf(errors.ErrGitCommand, "%d of %d projects failed to back up", failed, len(list)).
			WithDetail("failed", failed)
	}

	logger.Info().Int("projects", len(list)).Msg("backup complete")
	return result, nil
}
