// Package projfile parses the .projup file found at the root of every
// template.
//
// A .projup file has three sections:
//
//	[project]
//	name = "my-template"
//	version = 1.2
//	file_names = true
//
//	[subs]
//	PROJECT_NAME = $name:"snake"
//	YEAR = $date:"%Y"
//
//	[deps]
//	vendor/lib = https://example.com/lib.git
//
// [project] holds literal properties. [subs] lists pattern/replacement
// pairs applied to every file of the template and [deps] lists git
// repositories added as submodules. Variables are only resolved in [subs]
// and [deps].
package projfile

import (
	"strconv"
	"strings"

	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/substitute"
	"github.com/projup/projup/pkg/tokens"
	"github.com/projup/projup/pkg/variables"
	"github.com/projup/projup/pkg/version"
)

// FileName is the name of the template configuration file.
const FileName = ".projup"

// Section is the part of the file a token belongs to.
type Section int

const (
	SectionNone Section = iota
	SectionProject
	SectionSubs
	SectionDeps
)

var sectionNames = map[string]Section{
	"project": SectionProject,
	"subs":    SectionSubs,
	"deps":    SectionDeps,
}

func (s Section) String() string {
	for name, sec := range sectionNames {
		if sec == s {
			return name
		}
	}
	return "none"
}

// Project properties.
const (
	PropName      = "name"
	PropVersion   = "version"
	PropFileNames = "file_names"
)

// Dependency is a repository added to the project as a git submodule.
type Dependency struct {
	// Path is relative to the project root
	Path string `yaml:"path" toml:"path"`
	URL  string `yaml:"url" toml:"url"`
}

// Config is the validated content of a .projup file.
type Config struct {
	Name      string
	Version   version.Version
	FileNames bool
	// Keys are the substitutions in file order
	Keys []substitute.Pair
	// Deps are the dependencies in file order
	Deps []Dependency
}

// Table builds the substitution table for the config's keys.
func (c *Config) Table() (*substitute.Table, error) {
	return substitute.NewTable(c.Keys)
}

// ParseContent tokenizes and parses a .projup file.
func ParseContent(content string, vars variables.Map) (*Config, error) {
	return Parse(tokens.Tokenize(content), vars)
}

// Parse builds a Config from tokens. When vars is nil only the [project]
// section is validated; [subs] and [deps] are skipped and the returned
// config has no keys or deps.
func Parse(toks []tokens.Token, vars variables.Map) (*Config, error) {
	logger := logging.GetLogger("projfile")

	p := &parser{vars: vars, cfg: &Config{Version: version.One}}
	for _, t := range toks {
		if err := p.token(t); err != nil {
			logger.Debug().Err(err).Int("line", t.Line+1).Msg("parse failed")
			return nil, err
		}
	}

	if !p.seen[PropName] {
		return nil, errMissingName()
	}

	logger.Debug().
		Str("name", p.cfg.Name).
		Str("version", p.cfg.Version.String()).
		Int("keys", len(p.cfg.Keys)).
		Int("deps", len(p.cfg.Deps)).
		Msg("parsed project file")

	return p.cfg, nil
}

type parser struct {
	vars    variables.Map
	cfg     *Config
	section Section
	seen    map[string]bool
}

func (p *parser) token(t tokens.Token) error {
	if t.Kind == tokens.Tag {
		sec, ok := sectionNames[t.Name]
		if !ok {
			return errUnknownTag(t.Line, t.Name)
		}
		p.section = sec
		return nil
	}

	switch p.section {
	case SectionProject:
		return p.property(t)
	case SectionSubs:
		if p.vars == nil {
			return nil
		}
		return p.substitution(t)
	case SectionDeps:
		if p.vars == nil {
			return nil
		}
		return p.dependency(t)
	default:
		if p.vars == nil {
			return nil
		}
		return errInvalidSyntax(t.Line, "expected a [section] first")
	}
}

func (p *parser) property(t tokens.Token) error {
	if t.Kind != tokens.Set {
		return errInvalidSyntax(t.Line, "expected property = value")
	}
	key, ok := t.SetKey()
	if !ok {
		return errInvalidSyntax(t.Line, "property name must be a bare word")
	}

	switch key {
	case PropName, PropVersion, PropFileNames:
	default:
		return errUnknownProperty(t.Line, key)
	}

	if p.seen == nil {
		p.seen = make(map[string]bool)
	}
	if p.seen[key] {
		return errDuplicateProperty(t.Line, key)
	}

	value, ok := t.LiteralValue()
	if !ok {
		return errInvalidSyntax(t.Line, "project properties cannot use variables")
	}

	switch key {
	case PropName:
		if value == "" {
			return errInvalidSyntax(t.Line, "project name cannot be empty")
		}
		p.cfg.Name = value
	case PropVersion:
		v, err := version.Parse(value)
		if err != nil {
			return errInvalidSyntax(t.Line, "invalid version "+strconv.Quote(value))
		}
		p.cfg.Version = v
	case PropFileNames:
		switch value {
		case "true":
			p.cfg.FileNames = true
		case "false":
			p.cfg.FileNames = false
		default:
			return errInvalidSyntax(t.Line, "file_names must be true or false")
		}
	}

	p.seen[key] = true
	return nil
}

func (p *parser) substitution(t tokens.Token) error {
	if t.Kind != tokens.Set {
		return errInvalidSyntax(t.Line, "expected pattern = replacement")
	}

	pattern, ok := t.Key.Literal()
	if !ok {
		return errInvalidSyntax(t.Line, "substitution pattern cannot be a variable")
	}
	if pattern == "" {
		return errInvalidSyntax(t.Line, "substitution pattern cannot be empty")
	}

	replacement, err := p.resolve(t.Line, t.Values)
	if err != nil {
		return err
	}

	p.cfg.Keys = append(p.cfg.Keys, substitute.Pair{Pattern: pattern, Replacement: replacement})
	return nil
}

func (p *parser) dependency(t tokens.Token) error {
	if t.Kind != tokens.Set {
		return errInvalidSyntax(t.Line, "expected path = url")
	}

	path, err := p.resolve(t.Line, []tokens.Object{t.Key})
	if err != nil {
		return err
	}
	url, err := p.resolve(t.Line, t.Values)
	if err != nil {
		return err
	}

	if path == "" {
		return errInvalidSyntax(t.Line, "dependency path cannot be empty")
	}
	if !InsideRoot(path) {
		return errDependencyOutside(t.Line, path)
	}

	p.cfg.Deps = append(p.cfg.Deps, Dependency{Path: path, URL: url})
	return nil
}

// resolve concatenates objects, looking variables up in the map.
func (p *parser) resolve(line int, objs []tokens.Object) (string, error) {
	var b strings.Builder
	for _, o := range objs {
		switch o.Kind {
		case tokens.Absolute, tokens.String:
			b.WriteString(o.Text)
		case tokens.Variable, tokens.VariableFormat:
			ref := variables.Ref{
				Line:      line,
				Name:      o.Text,
				Format:    o.Format,
				HasFormat: o.Kind == tokens.VariableFormat,
			}
			v, err := p.vars.Resolve(ref)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
		}
	}
	return b.String(), nil
}

// InsideRoot reports whether a relative path stays within its root at every
// step. "." and empty components are ignored, ".." climbs one level and
// anything else descends one. Absolute paths are never inside.
func InsideRoot(path string) bool {
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) {
		return false
	}

	depth := 0
	for _, comp := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		switch comp {
		case ".":
		case "..":
			depth--
			if depth < 0 {
				return false
			}
		default:
			depth++
		}
	}
	return true
}
