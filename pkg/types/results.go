// Package types holds the results returned by projup commands. Every
// result renders itself as text and marshals as YAML or TOML.
package types

import (
	"fmt"
	"strings"

	"github.com/projup/projup/pkg/ui"
)

// CheckResult is the summary of a template's project section.
type CheckResult struct {
	Dir       string `yaml:"dir" toml:"dir"`
	Name      string `yaml:"name" toml:"name"`
	Version   string `yaml:"version" toml:"version"`
	FileNames bool   `yaml:"file_names" toml:"file_names"`
}

func (r *CheckResult) Render(s ui.Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", s.Success.Render("valid"), s.Name.Render(r.Name), r.Version)
	fmt.Fprintf(&b, "  %s %s\n", s.Muted.Render("dir:"), s.Path.Render(r.Dir))
	fmt.Fprintf(&b, "  %s %t\n", s.Muted.Render("file names:"), r.FileNames)
	return b.String()
}

// Variable is a variable a template expects.
type Variable struct {
	Name    string `yaml:"name" toml:"name"`
	Format  string `yaml:"format,omitempty" toml:"format,omitempty"`
	Builtin bool   `yaml:"builtin" toml:"builtin"`
	Line    int    `yaml:"line" toml:"line"`
}

// VarsResult lists the variables used by a template.
type VarsResult struct {
	Dir       string     `yaml:"dir" toml:"dir"`
	Name      string     `yaml:"name" toml:"name"`
	Variables []Variable `yaml:"variables" toml:"variables"`
}

func (r *VarsResult) Render(s ui.Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Heading.Render("Variables of"), s.Name.Render(r.Name))
	if len(r.Variables) == 0 {
		fmt.Fprintf(&b, "  %s\n", s.Muted.Render("none"))
		return b.String()
	}
	for _, v := range r.Variables {
		ref := "$" + v.Name
		if v.Format != "" {
			ref += fmt.Sprintf(":%q", v.Format)
		}
		kind := s.Warning.Render("define with -D " + v.Name + "=...")
		if v.Builtin {
			kind = s.Muted.Render("built-in")
		}
		fmt.Fprintf(&b, "  %-24s %s\n", ref, kind)
	}
	return b.String()
}

// TemplateInfo is a known template.
type TemplateInfo struct {
	Name string `yaml:"name" toml:"name"`
	Dir  string `yaml:"dir" toml:"dir"`
}

// InvalidTemplate is a template directory that failed to parse.
type InvalidTemplate struct {
	Dir   string `yaml:"dir" toml:"dir"`
	Error string `yaml:"error" toml:"error"`
}

// TemplatesResult lists the known templates.
type TemplatesResult struct {
	Location  string            `yaml:"location" toml:"location"`
	Templates []TemplateInfo    `yaml:"templates" toml:"templates"`
	Invalid   []InvalidTemplate `yaml:"invalid,omitempty" toml:"invalid,omitempty"`
}

func (r *TemplatesResult) Render(s ui.Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Heading.Render("Templates in"), s.Path.Render(r.Location))
	if len(r.Templates) == 0 {
		fmt.Fprintf(&b, "  %s\n", s.Muted.Render("none found"))
	}
	for _, t := range r.Templates {
		fmt.Fprintf(&b, "  %s %s\n", s.Name.Render(t.Name), s.Path.Render(t.Dir))
	}
	for _, t := range r.Invalid {
		fmt.Fprintf(&b, "  %s %s: %s\n", s.Error.Render("invalid"), s.Path.Render(t.Dir), t.Error)
	}
	return b.String()
}

// ProjectInfo is a registered project.
type ProjectInfo struct {
	Name string `yaml:"name" toml:"name"`
	Path string `yaml:"path" toml:"path"`
}

// ProjectsResult lists the registered projects.
type ProjectsResult struct {
	Location string        `yaml:"backup_location" toml:"backup_location"`
	Projects []ProjectInfo `yaml:"projects" toml:"projects"`
}

func (r *ProjectsResult) Render(s ui.Styles) string {
	var b strings.Builder
	if len(r.Projects) == 0 {
		fmt.Fprintf(&b, "%s\n", s.Muted.Render("No projects registered."))
		return b.String()
	}
	for _, p := range r.Projects {
		fmt.Fprintf(&b, "%q exists at %s\n", p.Name, s.Path.Render(p.Path))
	}
	return b.String()
}

// DependencyInfo is a submodule added to a new project.
type DependencyInfo struct {
	Path string `yaml:"path" toml:"path"`
	URL  string `yaml:"url" toml:"url"`
}

// NewResult describes a created project.
type NewResult struct {
	Name         string           `yaml:"name" toml:"name"`
	Path         string           `yaml:"path" toml:"path"`
	Template     string           `yaml:"template,omitempty" toml:"template,omitempty"`
	Backup       string           `yaml:"backup" toml:"backup"`
	Files        []string         `yaml:"files" toml:"files"`
	Dependencies []DependencyInfo `yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
}

func (r *NewResult) Render(s ui.Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s at %s\n", s.Success.Render("Created"), s.Name.Render(r.Name), s.Path.Render(r.Path))
	if r.Template != "" {
		fmt.Fprintf(&b, "  %s %s (%d files)\n", s.Muted.Render("template:"), r.Template, len(r.Files))
	}
	fmt.Fprintf(&b, "  %s %s\n", s.Muted.Render("backup:"), s.Path.Render(r.Backup))
	for _, d := range r.Dependencies {
		fmt.Fprintf(&b, "  %s %s <- %s\n", s.Muted.Render("submodule:"), d.Path, d.URL)
	}
	return b.String()
}

// AdoptResult describes an existing directory registered as a project.
type AdoptResult struct {
	Name   string `yaml:"name" toml:"name"`
	Path   string `yaml:"path" toml:"path"`
	Backup string `yaml:"backup" toml:"backup"`
	Pushed bool   `yaml:"pushed" toml:"pushed"`
}

func (r *AdoptResult) Render(s ui.Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s at %s\n", s.Success.Render("Registered"), s.Name.Render(r.Name), s.Path.Render(r.Path))
	fmt.Fprintf(&b, "  %s %s\n", s.Muted.Render("backup:"), s.Path.Render(r.Backup))
	if r.Pushed {
		fmt.Fprintf(&b, "  %s\n", s.Success.Render("backed up"))
	}
	return b.String()
}

// RemoveResult describes an unregistered project.
type RemoveResult struct {
	Name          string `yaml:"name" toml:"name"`
	Path          string `yaml:"path" toml:"path"`
	Backup        string `yaml:"backup,omitempty" toml:"backup,omitempty"`
	BackupDeleted bool   `yaml:"backup_deleted" toml:"backup_deleted"`
}

func (r *RemoveResult) Render(s ui.Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Success.Render("Removed"), s.Name.Render(r.Name))
	if r.BackupDeleted {
		fmt.Fprintf(&b, "  %s %s\n", s.Muted.Render("deleted backup"), s.Path.Render(r.Backup))
	}
	return b.String()
}

// BackupStatus is the outcome of backing up one project.
type BackupStatus struct {
	Name  string `yaml:"name" toml:"name"`
	Path  string `yaml:"path" toml:"path"`
	Error string `yaml:"error,omitempty" toml:"error,omitempty"`
}

// BackupResult lists the outcome of a backup run.
type BackupResult struct {
	Projects []BackupStatus `yaml:"projects" toml:"projects"`
}

// Failed returns how many projects failed to back up.
func (r *BackupResult) Failed() int {
	n := 0
	for _, p := range r.Projects {
		if p.Error != "" {
			n++
		}
	}
	return n
}

func (r *BackupResult) Render(s ui.Styles) string {
	var b strings.Builder
	if len(r.Projects) == 0 {
		fmt.Fprintf(&b, "%s\n", s.Muted.Render("No projects registered."))
		return b.String()
	}
	for _, p := range r.Projects {
		if p.Error != "" {
			fmt.Fprintf(&b, "%s %s: %s\n", s.Error.Render("failed"), s.Name.Render(p.Name), p.Error)
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", s.Success.Render("backed up"), s.Name.Render(p.Name))
	}
	return b.String()
}

// CloneResult describes a project cloned from its backup.
type CloneResult struct {
	Name        string `yaml:"name" toml:"name"`
	Source      string `yaml:"source" toml:"source"`
	Destination string `yaml:"destination,omitempty" toml:"destination,omitempty"`
}

func (r *CloneResult) Render(s ui.Styles) string {
	dst := r.Destination
	if dst == "" {
		dst = r.Name
	}
	return fmt.Sprintf("%s %s into %s\n", s.Success.Render("Cloned"), s.Name.Render(r.Name), s.Path.Render(dst))
}

// MoveResult describes a moved project.
type MoveResult struct {
	OldName     string `yaml:"old_name" toml:"old_name"`
	NewName     string `yaml:"new_name" toml:"new_name"`
	Source      string `yaml:"source" toml:"source"`
	Destination string `yaml:"destination" toml:"destination"`
	OldBackup   string `yaml:"old_backup,omitempty" toml:"old_backup,omitempty"`
	NewBackup   string `yaml:"new_backup,omitempty" toml:"new_backup,omitempty"`
}

func (r *MoveResult) Render(s ui.Styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s to %s\n", s.Success.Render("Moved"), s.Path.Render(r.Source), s.Path.Render(r.Destination))
	if r.NewBackup != "" {
		fmt.Fprintf(&b, "  %s %s\n", s.Muted.Render("backup:"), s.Path.Render(r.NewBackup))
	}
	return b.String()
}

// ConfigResult describes changed settings.
type ConfigResult struct {
	TemplatesLocation string   `yaml:"templates_location" toml:"templates_location"`
	BackupLocation    string   `yaml:"backup_location" toml:"backup_location"`
	Moved             []string `yaml:"moved,omitempty" toml:"moved,omitempty"`
	RemotesUpdated    []string `yaml:"remotes_updated,omitempty" toml:"remotes_updated,omitempty"`
	RemoteErrors      []string `yaml:"remote_errors,omitempty" toml:"remote_errors,omitempty"`
	ConfigFile        string   `yaml:"config_file,omitempty" toml:"config_file,omitempty"`
}

func (r *ConfigResult) Render(s ui.Styles) string {
	var b strings.Builder
	if r.ConfigFile != "" {
		fmt.Fprintf(&b, "%s %s\n", s.Success.Render("Wrote"), s.Path.Render(r.ConfigFile))
	}
	fmt.Fprintf(&b, "%s %s\n", s.Muted.Render("templates:"), s.Path.Render(r.TemplatesLocation))
	fmt.Fprintf(&b, "%s %s\n", s.Muted.Render("backups:  "), s.Path.Render(r.BackupLocation))
	for _, m := range r.Moved {
		fmt.Fprintf(&b, "  %s %s\n", s.Muted.Render("moved"), s.Path.Render(m))
	}
	for _, name := range r.RemotesUpdated {
		fmt.Fprintf(&b, "  %s %s\n", s.Muted.Render("updated remote of"), s.Name.Render(name))
	}
	for _, e := range r.RemoteErrors {
		fmt.Fprintf(&b, "  %s %s\n", s.Warning.Render("warning:"), e)
	}
	return b.String()
}
