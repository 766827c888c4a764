package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown config file format")

// Driver decodes a config file on top of a base configuration, so keys that
// are absent from the file keep their base values.
type Driver interface {
	Exists() (bool, error)
	Read(base Config) (Config, error)
}

// DriverFor picks a driver from the file extension.
func DriverFor(path string) (Driver, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAML(path), nil
	case ".toml":
		return NewTOML(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func NewYAML(filePath string) YAML {
	return YAML{filePath: filePath}
}

type YAML struct {
	filePath string
}

func (y YAML) Exists() (bool, error) {
	return fileExists(y.filePath)
}

func (y YAML) Read(base Config) (Config, error) {
	file, err := os.Open(y.filePath)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	cfg := base
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

func NewTOML(filePath string) TOML {
	return TOML{filePath: filePath}
}

type TOML struct {
	filePath string
}

func (t TOML) Exists() (bool, error) {
	return fileExists(t.filePath)
}

func (t TOML) Read(base Config) (Config, error) {
	cfg := base
	if _, err := toml.DecodeFile(t.filePath, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
