package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the immutable startup configuration. Fields left out of a
// config file keep their defaults.
type Config struct {
	Host       string `toml:"host" yaml:"host"`
	Port       int    `toml:"port" yaml:"port"`
	BufferSize int    `toml:"buffer_size" yaml:"buffer_size"`
	Backlog    int    `toml:"backlog" yaml:"backlog"`
	HomeDir    string `toml:"home_dir" yaml:"home_dir"`
	Page404    string `toml:"page_404" yaml:"page_404"`
	LogFile    string `toml:"log_file" yaml:"log_file"`
}

func DefaultConfig() Config {
	return Config{
		Port:       DefaultPort,
		BufferSize: 1024,
		Backlog:    5,
		HomeDir:    ".",
	}
}

// LoadConfig reads a config file on top of the defaults. The format
// is picked by extension: .toml, .yaml or .yml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, err
}
