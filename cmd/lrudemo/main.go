package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"lrustore"
	"lrustore/store"
)

var errNegative = errors.New("value must not be negative")

func nonNegative(v int) error {
	if v < 0 {
		return errNegative
	}
	return nil
}

// run replays cfg against a fresh cache and reports every result through logf.
func run(cfg Config, logf func(format string, args ...any)) error {
	c, err := lrustore.NewWithOnEvict[string, int](cfg.Capacity,
		func(key string, value int) {
			logf("evicted %s=%d", key, value)
		},
		store.WithValidator[string, int](nonNegative),
		store.WithEqual[string, int](store.Comparable[int]),
	)
	if err != nil {
		return err
	}

	for _, op := range cfg.Ops {
		switch op.Op {
		case "set":
			if _, err := c.Set(op.Key, op.Value); err != nil {
				if errors.Is(err, lrustore.ErrInvalidValue) {
					logf("SET %s=%d rejected: %v", op.Key, op.Value, err)
					continue
				}
				return err
			}
			logf("SET %s=%d", op.Key, op.Value)
		case "get":
			if v, ok := c.Get(op.Key); ok {
				logf("GET %s = %d", op.Key, v)
			} else {
				logf("GET %s: miss", op.Key)
			}
		}
	}
	logf("keys (oldest->newest): %v", c.Keys())
	return nil
}

func main() {
	configPath := flag.String("config", "", "TOML scenario file (built-in scenario when empty)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("lru demo starting: capacity=%d ops=%d", cfg.Capacity, len(cfg.Ops))
	if err := run(cfg, log.Printf); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Done.")
}
