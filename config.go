package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the run settings that are not per-command flags.
type Config struct {
	SingleThreshold float64
	DoubleThreshold float64
}

// LoadConfig reads a TOML config file, keeping the defaults for any
// field the file leaves out. An empty filename means defaults only.
func LoadConfig(filename string) (Config, error) {
	conf := Config{
		SingleThreshold: SingleThreshold,
		DoubleThreshold: DoubleThreshold,
	}
	if filename == "" {
		return conf, nil
	}
	cont, err := os.ReadFile(filename)
	if err != nil {
		return conf, err
	}
	if err := toml.Unmarshal(cont, &conf); err != nil {
		return conf, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return conf, nil
}
