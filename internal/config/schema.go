package config

import (
	"time"

	"golang.org/x/text/language"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/pager"
)

// Config is the top-level booklist configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Browse  BrowseConfig  `mapstructure:"browse" yaml:"browse"`
	Serve   ServeConfig   `mapstructure:"serve" yaml:"serve"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CatalogConfig says where the book list comes from.
type CatalogConfig struct {
	Source  string        `mapstructure:"source" yaml:"source"`           // path or http(s) URL
	Format  string        `mapstructure:"format" yaml:"format,omitempty"` // "json" or "yaml"; guessed when empty
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// MarshalYAML writes Timeout as a duration string such as "30s".
func (c CatalogConfig) MarshalYAML() (any, error) {
	return struct {
		Source  string `yaml:"source"`
		Format  string `yaml:"format,omitempty"`
		Timeout string `yaml:"timeout"`
	}{c.Source, c.Format, c.Timeout.String()}, nil
}

// BrowseConfig holds the initial browsing state.
type BrowseConfig struct {
	PerPage int    `mapstructure:"per_page" yaml:"per_page"`
	Sort    string `mapstructure:"sort" yaml:"sort"`
	Locale  string `mapstructure:"locale" yaml:"locale"`
}

// ServeConfig holds HTTP listener settings.
type ServeConfig struct {
	Host        string   `mapstructure:"host" yaml:"host"`
	Port        int      `mapstructure:"port" yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Source: "books.json", Timeout: 30 * time.Second},
		Browse:  BrowseConfig{PerPage: pager.DefaultPerPage, Sort: string(catalog.SortTitle), Locale: "en"},
		Serve:   ServeConfig{Host: "127.0.0.1", Port: 8080, CORSOrigins: []string{"*"}},
		Log:     LogConfig{Level: "info"},
	}
}

// CatalogFormat returns the configured catalog format, or "" to guess from
// the source location. Unknown names are treated as unset.
func (c CatalogConfig) CatalogFormat() catalog.Format {
	f, err := catalog.ParseFormat(c.Format)
	if err != nil {
		return ""
	}
	return f
}

// SortKey returns the configured initial sort key.
func (b BrowseConfig) SortKey() catalog.SortKey {
	return catalog.ParseSortKey(b.Sort)
}

// EffectivePerPage returns the configured page size or the default.
func (b BrowseConfig) EffectivePerPage() int {
	if b.PerPage > 0 {
		return b.PerPage
	}
	return pager.DefaultPerPage
}

// LocaleTag parses the configured locale, falling back to English.
func (b BrowseConfig) LocaleTag() language.Tag {
	if b.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(b.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
