// Package check implements `projup check`: validate the project section of
// a template without resolving any variable.
package check

import (
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/template"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
)

// CheckOptions holds options for the check command
type CheckOptions struct {
	Workspace *workspace.Workspace
	// Template is a template name or directory
	Template string
}

// Check parses the template's .projup file in lightweight mode.
func Check(opts CheckOptions) (*types.CheckResult, error) {
	logger := logging.GetLogger("commands.check")

	dir, err := opts.Workspace.TemplateDir(opts.Template)
	if err != nil {
		return nil, err
	}

	cfg, err := template.Load(opts.Workspace.FS, dir, nil)
	if err != nil {
		logger.Debug().Err(err).Str("dir", dir).Msg("template is invalid")
		return nil, err
	}

	return &types.CheckResult{
		Dir:       dir,
		Name:      cfg.Name,
		Version:   cfg.Version.String(),
		FileNames: cfg.FileNames,
	}, nil
}
