// Package config loads tagid CLI defaults from the environment.
//
// Every field can be overridden by the matching command-line flag; the
// environment only supplies the starting value.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/roach88/tagid"
	"github.com/roach88/tagid/internal/store"
)

// Config holds CLI defaults.
type Config struct {
	// Driver and DSN select the database the conformance checks run on.
	Driver string `env:"TAGID_DRIVER" envDefault:"sqlite3"`
	DSN    string `env:"TAGID_DSN" envDefault:":memory:"`

	// StoreDriver and StorePath select the SQLite run log.
	StoreDriver string `env:"TAGID_STORE_DRIVER" envDefault:"sqlite3"`
	StorePath   string `env:"TAGID_STORE" envDefault:"tagid-runs.db"`

	// Batch narrows "runs" to one batch. Parsed through the ID text bridge.
	Batch tagid.ID[store.Batch, string] `env:"TAGID_BATCH"`

	Seed    uint64        `env:"TAGID_SEED" envDefault:"1"`
	Format  string        `env:"TAGID_FORMAT" envDefault:"text"`
	Timeout time.Duration `env:"TAGID_TIMEOUT" envDefault:"1m"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
