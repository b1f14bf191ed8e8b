// Package configure implements `projup config`: change where templates and
// backups live.
package configure

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/projup/projup/pkg/config"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
	"github.com/spf13/afero"
)

// ConfigureOptions holds options for the config command
type ConfigureOptions struct {
	Workspace        *workspace.Workspace
	TemplateLocation string
	BackupLocation   string
	// Soft only records the new locations; nothing is moved and no remote
	// is touched
	Soft bool
	// Init writes a commented config.toml when none exists
	Init bool
}

// Configure applies the requested location changes and reports the
// resulting settings.
func Configure(ctx context.Context, opts ConfigureOptions) (*types.ConfigResult, error) {
	logger := logging.GetLogger("commands.config")
	ws := opts.Workspace
	result := &types.ConfigResult{}

	if opts.Init {
		file, err := writeConfigFile(ws)
		if err != nil {
			return nil, err
		}
		result.ConfigFile = file
	}

	templates, err := ws.Templates()
	if err != nil {
		return nil, err
	}
	if opts.TemplateLocation != "" {
		location, err := ws.Abs(opts.TemplateLocation)
		if err != nil {
			return nil, err
		}
		if location != templates.Location() {
			moved, err := relocate(ws, templates.Location(), location, opts.Soft)
			if err != nil {
				return nil, err
			}
			if moved {
				result.Moved = append(result.Moved, location)
			}
			templates.SetLocation(location)
			if err := ws.SaveTemplates(templates); err != nil {
				return nil, err
			}
			logger.Info().Str("location", location).Bool("moved", moved).Msg("templates location changed")
		}
	}
	result.TemplatesLocation = templates.Location()

	projects, err := ws.Projects()
	if err != nil {
		return nil, err
	}
	if opts.BackupLocation != "" {
		location, err := ws.Abs(opts.BackupLocation)
		if err != nil {
			return nil, err
		}
		if location != projects.Location() {
			moved, err := relocate(ws, projects.Location(), location, opts.Soft)
			if err != nil {
				return nil, err
			}
			if moved {
				result.Moved = append(result.Moved, location)
			}
			projects.SetLocation(location)
			if err := ws.SaveProjects(projects); err != nil {
				return nil, err
			}
			logger.Info().Str("location", location).Bool("moved", moved).Msg("backup location changed")

			if !opts.Soft {
				for _, p := range projects.List() {
					backup, err := projects.Backup(p.Name)
					if err == nil {
						err = ws.Git.SetRemote(ctx, p.Path, ws.Remote(), backup)
					}
					if err != nil {
						logger.Warn().Err(err).Str("name", p.Name).Msg("failed to update remote")
						result.RemoteErrors = append(result.RemoteErrors, fmt.Sprintf("%s: %v", p.Name, err))
						continue
					}
					result.RemotesUpdated = append(result.RemotesUpdated, p.Name)
				}
			}
		}
	}
	result.BackupLocation = projects.Location()

	return result, nil
}

// relocate moves the directory old to location unless soft or old does not
// exist; either way location exists afterwards. It reports whether anything
// was moved.
func relocate(ws *workspace.Workspace, old, location string, soft bool) (bool, error) {
	if !soft && old != "" {
		exists, err := afero.DirExists(ws.FS, old)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", old).
				WithDetail("path", old)
		}
		if exists {
			if err := filesystem.Move(ws.FS, old, location); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, filesystem.EnsureDir(ws.FS, location)
}

func writeConfigFile(ws *workspace.Workspace) (string, error) {
	file := ws.Paths.ConfigFile()
	if err := filesystem.EnsureAbsent(ws.FS, file); err != nil {
		return "", err
	}
	if err := filesystem.EnsureDir(ws.FS, filepath.Dir(file)); err != nil {
		return "", err
	}
	if err := afero.WriteFile(ws.FS, file, []byte(config.GenerateConfigContent()), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", file).
			WithDetail("path", file)
	}
	return file, nil
}
