package config

import (
	_ "embed"
	"errors"
	"runtime"
	"strings"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Templates holds template related settings
type Templates struct {
	Location string `koanf:"location"`
}

// Backup holds backup related settings
type Backup struct {
	Location string `koanf:"location"`
	Remote   string `koanf:"remote"`
}

// Apply holds template application settings
type Apply struct {
	Workers int `koanf:"workers"`
}

// Output holds output settings
type Output struct {
	Format string `koanf:"format"`
}

// Config is the resolved projup configuration
type Config struct {
	Templates Templates `koanf:"templates"`
	Backup    Backup    `koanf:"backup"`
	Apply     Apply     `koanf:"apply"`
	Output    Output    `koanf:"output"`
}

// Workers returns the effective worker count.
func (c *Config) Workers() int {
	if c.Apply.Workers > 0 {
		return c.Apply.Workers
	}
	return runtime.NumCPU()
}

// GetDefaultsContent returns the embedded defaults file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// GenerateConfigContent returns the defaults with every value commented out,
// suitable as a starting config.toml
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			result = append(result, line)
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		// Keep section headers (e.g., [backup]) as-is
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
