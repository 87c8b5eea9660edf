package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Op is one scripted cache call.
type Op struct {
	Op    string `toml:"op"` // "set" or "get"
	Key   string `toml:"key"`
	Value int    `toml:"value"`
}

// Config is the demo scenario read from a TOML file.
type Config struct {
	Capacity int  `toml:"capacity"`
	Ops      []Op `toml:"ops"`
}

// defaultConfig replays the capacity 5 walkthrough: keys 1 and 2 are read
// back before 5 and 6 arrive, so 3 is the one evicted.
func defaultConfig() Config {
	return Config{
		Capacity: 5,
		Ops: []Op{
			{Op: "set", Key: "1", Value: 1},
			{Op: "set", Key: "2", Value: 2},
			{Op: "set", Key: "3", Value: 3},
			{Op: "set", Key: "4", Value: 4},
			{Op: "get", Key: "1"},
			{Op: "get", Key: "2"},
			{Op: "get", Key: "9"},
			{Op: "set", Key: "5", Value: 5},
			{Op: "set", Key: "6", Value: 6},
			{Op: "get", Key: "3"},
			{Op: "get", Key: "1"},
			{Op: "get", Key: "2"},
		},
	}
}

// loadConfig decodes path, or returns defaultConfig when path is empty.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for i, op := range c.Ops {
		switch op.Op {
		case "set", "get":
		default:
			return fmt.Errorf("ops[%d]: unknown op %q", i, op.Op)
		}
		if op.Key == "" {
			return fmt.Errorf("ops[%d]: %w", i, errEmptyKey)
		}
	}
	return nil
}

var errEmptyKey = errors.New("empty key")
