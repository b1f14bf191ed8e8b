// Package commands provides the command implementations behind the projup
// CLI.
//
// Each command is implemented in its own subdirectory:
//   - newproject/ - NewProject, create a project from a template
//   - check/      - Check, validate a template
//   - vars/       - Vars, list the variables a template expects
//   - templates/  - Templates, rescan the template location
//   - list/       - ListProjects
//   - remove/     - RemoveProject
//   - backup/     - Backup, push every project
//   - clone/      - Clone a project from its backup
//   - adopt/      - Adopt an existing directory
//   - move/       - Move a project
//   - configure/  - Configure the template and backup locations
//
// This file re-exports them so the CLI depends on a single package.
package commands

import (
	"context"

	"github.com/projup/projup/pkg/commands/adopt"
	"github.com/projup/projup/pkg/commands/backup"
	"github.com/projup/projup/pkg/commands/check"
	"github.com/projup/projup/pkg/commands/clone"
	"github.com/projup/projup/pkg/commands/configure"
	"github.com/projup/projup/pkg/commands/list"
	"github.com/projup/projup/pkg/commands/move"
	"github.com/projup/projup/pkg/commands/newproject"
	"github.com/projup/projup/pkg/commands/remove"
	"github.com/projup/projup/pkg/commands/templates"
	"github.com/projup/projup/pkg/commands/vars"
	"github.com/projup/projup/pkg/types"
)

// NewProject creates a project, optionally from a template.
type NewProjectOptions = newproject.NewProjectOptions

func NewProject(ctx context.Context, opts NewProjectOptions) (*types.NewResult, error) {
	return newproject.NewProject(ctx, opts)
}

// Check validates the project section of a template.
type CheckOptions = check.CheckOptions

func Check(opts CheckOptions) (*types.CheckResult, error) {
	return check.Check(opts)
}

// Vars lists the variables a template uses.
type VarsOptions = vars.VarsOptions

func Vars(opts VarsOptions) (*types.VarsResult, error) {
	return vars.Vars(opts)
}

// Templates rescans the template location.
type TemplatesOptions = templates.TemplatesOptions

func Templates(opts TemplatesOptions) (*types.TemplatesResult, error) {
	return templates.Templates(opts)
}

// ListProjects lists registered projects.
type ListProjectsOptions = list.ListProjectsOptions

func ListProjects(opts ListProjectsOptions) (*types.ProjectsResult, error) {
	return list.ListProjects(opts)
}

// RemoveProject unregisters a project.
type RemoveProjectOptions = remove.RemoveProjectOptions

func RemoveProject(opts RemoveProjectOptions) (*types.RemoveResult, error) {
	return remove.RemoveProject(opts)
}

// Backup pushes every project to its backup remote.
type BackupOptions = backup.BackupOptions

func Backup(ctx context.Context, opts BackupOptions) (*types.BackupResult, error) {
	return backup.Backup(ctx, opts)
}

// Clone checks a project out of the backup location.
type CloneOptions = clone.CloneOptions

func Clone(ctx context.Context, opts CloneOptions) (*types.CloneResult, error) {
	return clone.Clone(ctx, opts)
}

// Adopt registers an existing directory as a project.
type AdoptOptions = adopt.AdoptOptions

func Adopt(ctx context.Context, opts AdoptOptions) (*types.AdoptResult, error) {
	return adopt.Adopt(ctx, opts)
}

// Move relocates a registered project.
type MoveOptions = move.MoveOptions

func Move(ctx context.Context, opts MoveOptions) (*types.MoveResult, error) {
	return move.Move(ctx, opts)
}

// Configure changes the template and backup locations.
type ConfigureOptions = configure.ConfigureOptions

func Configure(ctx context.Context, opts ConfigureOptions) (*types.ConfigResult, error) {
	return configure.Configure(ctx, opts)
}
