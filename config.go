package kmedoids

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of a run configuration:
//
//	workers: 8
//	tile_size: 256
//	metric: manhattan
//	log:
//	  level: info
//	  format: text
type FileConfig struct {
	Workers  int       `yaml:"workers"`
	TileSize int       `yaml:"tile_size"`
	Metric   string    `yaml:"metric"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig selects the log level (debug, info, warn, error) and the handler
// format (text or json).
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultFileConfig returns the configuration used when no file is given.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		TileSize: DefaultTileSize,
		Metric:   "manhattan",
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// LoadFileConfig reads a YAML configuration file. Fields missing from the
// file keep their DefaultFileConfig values; an empty file is allowed and
// unknown fields are an error.
func LoadFileConfig(path string) (FileConfig, error) {
	fc := DefaultFileConfig()
	f, err := os.Open(path)
	if err != nil {
		return fc, fmt.Errorf("kmedoids: open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("kmedoids: parse config %s: %w", path, err)
	}
	return fc, nil
}

// Config converts the file form into a search Config.
func (fc FileConfig) Config() (Config, error) {
	metric, err := MetricByName(fc.Metric)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Metric:   metric,
		Workers:  fc.Workers,
		TileSize: fc.TileSize,
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
