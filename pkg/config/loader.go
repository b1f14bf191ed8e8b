package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/projup/projup/pkg/errors"
	"github.com/projup/projup/pkg/logging"
	"github.com/projup/projup/pkg/paths"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "PROJUP_"

// Load resolves the configuration for the given paths.
func Load(p paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. User config file if it exists
	configFile := p.ConfigFile()
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("loaded user configuration")
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	// 4. Locations left empty fall back to the data directory
	fallbacks := map[string]interface{}{}
	if k.String("templates.location") == "" {
		fallbacks["templates.location"] = p.DefaultTemplatesDir()
	}
	if k.String("backup.location") == "" {
		fallbacks["backup.location"] = p.DefaultBackupsDir()
	}
	if err := k.Load(confmap.Provider(fallbacks, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply default locations")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Templates.Location = paths.ExpandHome(cfg.Templates.Location)
	cfg.Backup.Location = paths.ExpandHome(cfg.Backup.Location)
	if cfg.Backup.Remote == "" {
		return nil, errors.New(errors.ErrConfigParse, "backup.remote cannot be empty")
	}

	return &cfg, nil
}

// envKey maps PROJUP_BACKUP_REMOTE to backup.remote.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
