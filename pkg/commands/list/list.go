// Package list implements `projup ls`.
package list

import (
	"github.com/projup/projup/pkg/types"
	"github.com/projup/projup/pkg/workspace"
)

// ListProjectsOptions holds options for the ls command
type ListProjectsOptions struct {
	Workspace *workspace.Workspace
}

// ListProjects returns every registered project sorted by name.
func ListProjects(opts ListProjectsOptions) (*types.ProjectsResult, error) {
	projects, err := opts.Workspace.Projects()
	if err != nil {
		return nil, err
	}

	result := &types.ProjectsResult{Location: projects.Location(), Projects: []types.ProjectInfo{}}
	for _, p := range projects.List() {
		result.Projects = append(result.Projects, types.ProjectInfo{Name: p.Name, Path: p.Path})
	}
	return result, nil
}
