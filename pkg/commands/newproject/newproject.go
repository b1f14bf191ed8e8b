// Package newproject implements `projup new`: create a project directory,
// optionally from a template, and register it for backups.
package newproject

import (
	"context"

	"github.com/projup/projup/pkg/filesystem"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/projfile"
	"github.com/projup/projup/pkg/template"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/variables"
	"github.com/projup/projup/pkg/workspace"
)

// NewProjectOptions holds options for the new command
type NewProjectOptions struct {
	Workspace *workspace.Workspace
	// Path is the project directory to create
	Path string
	// Template is a template name or directory; empty creates an empty project
	Template string
	// Defines are the -D variables handed to the template
	Defines map[string]string
}

// NewProject creates the project, its git repository and its bare backup
// repository. Nothing is written when the template fails to parse.
func NewProject(ctx context.Context, opts NewProjectOptions) (result *types.NewResult, err error) {
	logger := logging.GetLogger("commands.new")
	ws := opts.Workspace

	path, err := ws.Abs(opts.Path)
	if err != nil {
		return nil, err
	}
	if err := filesystem.EnsureAbsent(ws.FS, path); err != nil {
		return nil, err
	}

	projects, err := ws.Projects()
	if err != nil {
		return nil, err
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

	logger.Info().
		Str("name", name).
		Str("path", path).
		Str("template", opts.Template).
		Msg("creating project")

	var cfg *projfile.Config
	var source string
	if opts.Template != "" {
		if source, err = ws.TemplateDir(opts.Template); err != nil {
			return nil, err
		}
		env := variables.NewEnv(variables.Options{
			Clock:   ws.Now,
			Name:    name,
			Defines: opts.Defines,
		})
		if cfg, err = template.Load(ws.FS, source, env); err != nil {
			return nil, err
		}
	}

	defer func() {
		if err == nil {
			return
		}
		for _, dir := range []string{path, backup} {
			if rmErr := ws.FS.RemoveAll(dir); rmErr != nil {
				logger.Warn().Err(rmErr).Str("path", dir).Msg("failed to clean up")
			}
		}
	}()

	result = &types.NewResult{Name: name, Path: path, Backup: backup, Files: []string{}}

	if cfg != nil {
		applied, err := template.Apply(ctx, template.Options{
			FS:          ws.FS,
			Source:      source,
			Destination: path,
			Config:      cfg,
			Workers:     ws.Workers(),
		})
		if err != nil {
			return nil, err
		}
		result.Template = cfg.Name
		result.Files = applied.Files
	} else if err := filesystem.EnsureDir(ws.FS, path); err != nil {
		return nil, err
	}

	if err := ws.Git.Init(ctx, path); err != nil {
		return nil, err
	}
	if err := filesystem.EnsureDir(ws.FS, backup); err != nil {
		return nil, err
	}
	if err := ws.Git.InitBare(ctx, backup); err != nil {
		return nil, err
	}
	if err := ws.Git.AddRemote(ctx, path, ws.Remote(), backup); err != nil {
		return nil, err
	}

	if cfg != nil {
		for _, dep := range cfg.Deps {
			if err := ws.Git.SubmoduleAdd(ctx, path, dep.URL, dep.Path); err != nil {
				return nil, err
			}
			result.Dependencies = append(result.Dependencies, types.DependencyInfo{Path: dep.Path, URL: dep.URL})
		}
	}

	if err := ws.SaveProjects(projects); err != nil {
		return nil, err
	}

	logger.Info().Str("name", name).Int("files", len(result.Files)).Msg("project created")
	return result, nil
}
