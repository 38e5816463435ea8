package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/booklist/internal/util"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "booklist", "config.yml")
}

// ResolvePath picks the config file: the explicit path if given, then
// $BOOKLIST_CONFIG, then DefaultPath.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return util.ExpandHome(explicit)
	}
	if p := os.Getenv("BOOKLIST_CONFIG"); p != "" {
		return util.ExpandHome(p)
	}
	return DefaultPath()
}

// Load reads the config from disk and BOOKLIST_* env vars. A missing file is
// not an error; defaults apply.
func Load(path string) (*Config, error) {
	def := Default()
	v := viper.New()

	v.SetDefault("catalog.source", def.Catalog.Source)
	v.SetDefault("catalog.format", def.Catalog.Format)
	v.SetDefault("catalog.timeout", def.Catalog.Timeout)
	v.SetDefault("browse.per_page", def.Browse.PerPage)
	v.SetDefault("browse.sort", def.Browse.Sort)
	v.SetDefault("browse.locale", def.Browse.Locale)
	v.SetDefault("serve.host", def.Serve.Host)
	v.SetDefault("serve.port", def.Serve.Port)
	v.SetDefault("serve.cors_origins", def.Serve.CORSOrigins)
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix("BOOKLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(ResolvePath(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if !strings.Contains(cfg.Catalog.Source, "://") {
		cfg.Catalog.Source = util.ExpandHome(cfg.Catalog.Source)
	}

	return &cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
