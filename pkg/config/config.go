package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/guidex/pkg/errors"
)

// Config is the runtime configuration of the registry and its storage
// candidates.
type Config struct {
	Extract Extract `koanf:"extract"`
	Store   Store   `koanf:"store"`
}

// Extract configures the dispatch engine.
type Extract struct {
	// MaxHandlers bounds the number of simultaneously registered decoders.
	MaxHandlers int `koanf:"max_handlers"`
}

// Store configures the candidate storage locations.
type Store struct {
	// Order lists candidates in probing order: "static", "shared".
	Order  []string `koanf:"order"`
	Static Static   `koanf:"static"`
	Shared Shared   `koanf:"shared"`
}

// Static configures the module-local candidate.
type Static struct {
	ReadOnly bool `koanf:"read_only"`
}

// Shared configures the well-known shared candidate.
type Shared struct {
	Address uint64 `koanf:"address"`
	Backed  bool   `koanf:"backed"`
}

// Load builds the configuration: embedded defaults first, then an optional
// guidex.toml (or .guidex.toml) under root. An empty root means the current
// directory.
func Load(root string) (*Config, error) {
	if root == "" {
		root = "."
	}

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading embedded defaults")
	}

	for _, filename := range []string{".guidex.toml", "guidex.toml"} {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "loading %s", path)
			}
			break
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Extract.MaxHandlers < 1 {
		return errors.Newf(errors.ErrConfigParse,
			"extract.max_handlers must be at least 1, got %d", c.Extract.MaxHandlers)
	}
	if len(c.Store.Order) == 0 {
		return errors.New(errors.ErrConfigParse, "store.order must list at least one candidate")
	}
	for _, name := range c.Store.Order {
		switch name {
		case "static", "shared":
		default:
			return errors.Newf(errors.ErrConfigParse,
				"unknown storage candidate %q in store.order", name)
		}
	}
	return nil
}
