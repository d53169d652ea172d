// Package config loads blparse settings from TOML or YAML files.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ava12/bl"
	"github.com/ava12/bl/parser"
	"github.com/ava12/bl/tokenizer"
)

const (
	ReadError = bl.ConfigErrors + iota
	FormatError
	ValidationError
)

type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

type Tokenizer struct {
	Separators string `toml:"separators" yaml:"separators"`
}

type Parser struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

type Config struct {
	Tokenizer Tokenizer `toml:"tokenizer" yaml:"tokenizer"`
	Parser    Parser    `toml:"parser" yaml:"parser"`
	Log       Log       `toml:"log" yaml:"log"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Tokenizer.Separators == "" {
		c.Tokenizer.Separators = tokenizer.DefaultSeparators
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = parser.DefaultMaxDepth
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// DetectFormat chooses format by file extension, TOML is the default.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads, decodes, completes with defaults, and validates a config file.
func Load(path string) (*Config, error) {
	content, e := os.ReadFile(path)
	if e != nil {
		return nil, bl.FormatError(ReadError, "cannot read config: %s", e)
	}

	return Parse(content, DetectFormat(path))
}

func Parse(content []byte, format Format) (*Config, error) {
	cfg := &Config{}
	var e error
	if format == FormatYAML {
		e = yaml.Unmarshal(content, cfg)
	} else {
		e = toml.Unmarshal(content, cfg)
	}
	if e != nil {
		return nil, bl.FormatError(FormatError, "%s config parse error: %s", format, e)
	}

	cfg.applyDefaults()
	if e = cfg.Validate(); e != nil {
		return nil, e
	}

	return cfg, nil
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func (c *Config) Validate() error {
	seps := tokenizer.NewSeparators(c.Tokenizer.Separators)
	switch {
	case seps.IsEmpty():
		return bl.FormatError(ValidationError, "tokenizer.separators must not be empty")
	case !seps.Splits(tokenizer.EndOfInput):
		return bl.FormatError(ValidationError, "tokenizer.separators must contain a character of %q, usually a space", tokenizer.EndOfInput)
	case strings.ContainsRune(c.Tokenizer.Separators, '-'):
		return bl.FormatError(ValidationError, "tokenizer.separators must not contain \"-\", it is a part of condition names")
	case c.Parser.MaxDepth < 0:
		return bl.FormatError(ValidationError, "parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	case !oneOf(c.Log.Level, logLevels):
		return bl.FormatError(ValidationError, "log.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Log.Level)
	case !oneOf(c.Log.Format, logFormats):
		return bl.FormatError(ValidationError, "log.format must be one of %s, got %q", strings.Join(logFormats, ", "), c.Log.Format)
	}
	return nil
}

// ParserOptions converts settings to parser options, logger may be nil.
func (c *Config) ParserOptions(logger *slog.Logger) parser.Options {
	return parser.Options{
		MaxDepth:   c.Parser.MaxDepth,
		Logger:     logger,
		Separators: tokenizer.NewSeparators(c.Tokenizer.Separators),
	}
}
