// Package templates implements `projup templates`: rescan the template
// location and persist what was found.
package templates

import (
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
)

// TemplatesOptions holds options for the templates command
type TemplatesOptions struct {
	Workspace *workspace.Workspace
}

// Templates rescans the template location, saves the templates list and
// returns its content. Invalid templates are reported, not fatal.
func Templates(opts TemplatesOptions) (*types.TemplatesResult, error) {
	logger := logging.GetLogger("commands.templates")
	ws := opts.Workspace

	list, err := ws.Templates()
	if err != nil {
		return nil, err
	}
	if err := ws.FS.MkdirAll(list.Location(), 0755); err != nil {
		return nil, err
	}

	invalid, err := list.Scan(ws.FS)
	if err != nil {
		return nil, err
	}
	if err := ws.SaveTemplates(list); err != nil {
		return nil, err
	}

	result := &types.TemplatesResult{Location: list.Location(), Templates: []types.TemplateInfo{}}
	for _, name := range list.Names() {
		dir, err := list.Dir(name)
		if err != nil {
			return nil, err
		}
		result.Templates = append(result.Templates, types.TemplateInfo{Name: name, Dir: dir})
	}
	for _, t := range invalid {
		result.Invalid = append(result.Invalid, types.InvalidTemplate{Dir: t.Dir, Error: t.Err.Error()})
	}

	logger.Info().
		Int("templates", len(result.Templates)).
		Int("invalid", len(result.Invalid)).
		Msg("templates scanned")
	return result, nil
}
