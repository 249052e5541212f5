package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

const (
	EnvPrefix       = "TUMORCHECK_"
	EnvConfigFile   = "TUMORCHECK_CONFIG"
	EnvDelimiter    = "__"
	ConfigDelimiter = "."

	BackendLocal    = "local"
	BackendMLEngine = "mlengine"
)

type Config struct {
	Port      string   `koanf:"port"`
	AppEngine bool     `koanf:"appengine"`
	Model     Model    `koanf:"model"`
	MLEngine  MLEngine `koanf:"mlengine"`
	Cache     Cache    `koanf:"cache"`
	Log       Log      `koanf:"log"`
	Errors    Errors   `koanf:"errors"`
}

type Model struct {
	Backend string `koanf:"backend"`
	Path    string `koanf:"path"`
}

type MLEngine struct {
	Model string  `koanf:"model"`
	Rate  float64 `koanf:"rate"`
	Burst int     `koanf:"burst"`
}

type Cache struct {
	Size int `koanf:"size"`
}

type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type Errors struct {
	Expose bool `koanf:"expose"`
}

var defaults = map[string]interface{}{
	"port":           "8080",
	"appengine":      false,
	"model.backend":  BackendLocal,
	"model.path":     "model/breast_cancer_model.json",
	"mlengine.model": "",
	"mlengine.rate":  10.0,
	"mlengine.burst": 5,
	"cache.size":     1024,
	"log.level":      "info",
	"log.format":     "text",
	"errors.expose":  false,
}

// Load layers defaults, the YAML file named by TUMORCHECK_CONFIG if any, and
// TUMORCHECK_ environment variables, in that order. Nested keys use "__" in
// the environment: TUMORCHECK_MODEL__PATH sets model.path. A bare PORT is
// honoured as well, since hosting platforms set it.
func Load() (*Config, error) {
	k := koanf.New(ConfigDelimiter)

	if err := k.Load(confmap.Provider(defaults, ConfigDelimiter), nil); err != nil {
		return nil, errors.Wrap(err, "couldn't load default config")
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "couldn't load config file %s", path)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		if err := k.Load(confmap.Provider(map[string]interface{}{"port": port}, ConfigDelimiter), nil); err != nil {
			return nil, errors.Wrap(err, "couldn't load PORT")
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ConfigDelimiter, envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't load environment config")
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, errors.Wrap(err, "couldn't parse config")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	if s == strings.TrimPrefix(EnvConfigFile, EnvPrefix) {
		return ""
	}
	return strings.Replace(strings.ToLower(s), EnvDelimiter, ConfigDelimiter, -1)
}

func (c *Config) validate() error {
	switch c.Model.Backend {
	case BackendLocal:
		if c.Model.Path == "" {
			return errors.New("model.path must be set for the local backend")
		}
	case BackendMLEngine:
		if c.MLEngine.Model == "" {
			return errors.New("mlengine.model must be set for the mlengine backend")
		}
		if c.Cache.Size <= 0 {
			return errors.New("cache.size must be positive")
		}
	default:
		return errors.Errorf("unknown model.backend %q", c.Model.Backend)
	}
	return nil
}
