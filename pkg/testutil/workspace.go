package testutil

import (
	"time"

	"github.com/projup/projup/pkg/config"
	"github.com/projup/projup/pkg/git"
	"github.com/projup/projup/pkg/git/gittest"
	"github.com/projup/projup/pkg/paths"
	"github.com/projup/projup/pkg/workspace"
)

// Fixed locations of a test workspace.
const (
	DataDir      = "/data"
	ConfigDir    = "/config"
	StateDir     = "/state"
	TemplatesDir = "/templates"
	BackupsDir   = "/backups"
	WorkDir      = "/work"
)

// Clock is the fixed time of a test workspace: 2024-03-05 14:07:09 UTC.
func Clock() time.Time {
	return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
}

// NewWorkspace returns a workspace on an in-memory filesystem whose git
// invocations go to the returned mock.
func NewWorkspace() (*workspace.Workspace, *gittest.MockRunner) {
	runner := &gittest.MockRunner{}
	cfg := &config.Config{}
	cfg.Templates.Location = TemplatesDir
	cfg.Backup.Location = BackupsDir
	cfg.Backup.Remote = git.DefaultRemote
	cfg.Apply.Workers = 2
	cfg.Output.Format = "text"

	return &workspace.Workspace{
		FS:      NewMemFS(),
		Paths:   paths.NewWithRoots(DataDir, ConfigDir, StateDir),
		Config:  cfg,
		Git:     git.New(runner),
		Clock:   Clock,
		WorkDir: WorkDir,
	}, runner
}
