package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/projup/projup/pkg/errors"
)

// Environment variable names
const (
	// EnvProjupDataDir overrides the XDG data directory for projup
	EnvProjupDataDir = "PROJUP_DATA_DIR"

	// EnvProjupConfigDir overrides the XDG config directory for projup
	EnvProjupConfigDir = "PROJUP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the projup directories. These are not user
// configurable; locations that are live in pkg/config.
const (
	// ProjupDirName is the directory name for projup-specific files
	ProjupDirName = "projup"

	// TemplatesFileName lists known templates
	TemplatesFileName = "templates.txt"

	// ProjectsFileName lists registered projects
	ProjectsFileName = "projects.txt"

	// TemplatesDirName is the default template location
	TemplatesDirName = "templates"

	// BackupsDirName is the default backup location
	BackupsDirName = "backups"

	// ConfigFileName is the user settings file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "projup.log"
)

// Paths provides centralized path management for projup
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	TemplatesFile() string
	ProjectsFile() string
	DefaultTemplatesDir() string
	DefaultBackupsDir() string
	ConfigFile() string
	LogFilePath() string
}

type paths struct {
	xdgData   string
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance from the environment.
func New() (Paths, error) {
	p := &paths{}

	if dataDir := os.Getenv(EnvProjupDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, ProjupDirName)
	}

	if configDir := os.Getenv(EnvProjupConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, ProjupDirName)
	}

	// XDG doesn't reload StateHome after init, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, ProjupDirName)
	} else {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		p.xdgState = filepath.Join(homeDir, ".local", "state", ProjupDirName)
	}

	return p, nil
}

// NewWithRoots creates a Paths instance rooted at explicit directories.
func NewWithRoots(dataDir, configDir, stateDir string) Paths {
	return &paths{xdgData: dataDir, xdgConfig: configDir, xdgState: stateDir}
}

func (p *paths) DataDir() string {
	return p.xdgData
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) TemplatesFile() string {
	return filepath.Join(p.xdgData, TemplatesFileName)
}

func (p *paths) ProjectsFile() string {
	return filepath.Join(p.xdgData, ProjectsFileName)
}

func (p *paths) DefaultTemplatesDir() string {
	return filepath.Join(p.xdgData, TemplatesDirName)
}

func (p *paths) DefaultBackupsDir() string {
	return filepath.Join(p.xdgData, BackupsDirName)
}

func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		// Can't expand, return as-is
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// NormalizePath expands ~ and makes the path absolute and clean.
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path).
			WithDetail("path", path)
	}
	return filepath.Clean(abs), nil
}

// GetHomeDirectory returns the user's home directory, falling back to $HOME.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir, nil
	}

	if homeDir = os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}

	return "", errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
}
