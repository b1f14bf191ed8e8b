// Package vars implements `projup vars`: list the variables a template
// expects.
package vars

import (
	"github.com/projup/projup/pkg/template"
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/variables"
	"github.com/projup/projup/pkg/workspace"
)

// VarsOptions holds options for the vars command
type VarsOptions struct {
	Workspace *workspace.Workspace
	Template  string
}

// Vars parses the template recording every variable reference instead of
// resolving it.
func Vars(opts VarsOptions) (*types.VarsResult, error) {
	dir, err := opts.Workspace.TemplateDir(opts.Template)
	if err != nil {
		return nil, err
	}

	rec := variables.NewRecorder()
	cfg, err := template.Load(opts.Workspace.FS, dir, rec)
	if err != nil {
		return nil, err
	}

	result := &types.VarsResult{Dir: dir, Name: cfg.Name, Variables: []types.Variable{}}
	for _, v := range rec.Variables() {
		result.Variables = append(result.Variables, types.Variable{
			Name:    v.Name,
			Format:  v.Format,
			Builtin: v.Builtin(),
			Line:    v.Line + 1,
		})
	}
	return result, nil
}
