package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the bot configuration. Values come from environment
// variables, then the YAML file, then env-default tags.
//
// The file is CONFIG_PATH, or ./config.yaml when that is unset. A missing
// ./config.yaml is fine and leaves ENV plus defaults; a missing CONFIG_PATH
// file is an error, since the operator asked for it.
func Load() (*Config, error) {
	var cfg Config

	file, explicit := os.LookupEnv(pathEnv)
	if !explicit || file == "" {
		file, explicit = defaultPath, false
	}

	_, statErr := os.Stat(file)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: %s=%s: %w", pathEnv, file, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.Web.RootPath = normalizeRootPath(cfg.Web.RootPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// normalizeRootPath turns "soundboard/", "/soundboard" and "//soundboard//"
// into "/soundboard". The site root becomes "".
func normalizeRootPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = path.Clean("/" + p)
	if p == "/" {
		return ""
	}
	return p
}
