package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func loadTOML(path string, out any) error {
	_, err := toml.DecodeFile(path, out)
	return err
}

// Load reads a SimConfig from a .yaml/.yml or .toml file. Values missing
// from the file keep their defaults. An empty path returns Default().
func Load(path string) (*SimConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = loadYAML(path, cfg)
	case ".toml":
		err = loadTOML(path, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format", path)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
