// Package config resolves sol2ink's run configuration. Adapted from the
// teacher's internal/config.LoadConfig: the environment-variable-with-
// defaults shape is kept for the ambient settings (manifest DSN, output
// root), layered under a pflag-based CLI layer for the flags a single
// invocation actually varies by run. The legacy fileman-flag surface
// (query/op/repl/lang and friends) this package used to carry belonged
// to the teacher's DSL-rewrite CLI and has no analogue here, so it is
// not carried forward.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds one invocation's resolved settings. Flags take
// precedence over environment variables, which take precedence over
// the defaults below.
type Config struct {
	OutDir      string
	ManifestDSN string
	Verbose     bool
	DryRun      bool
	Workers     int // accepted for compatibility, always ignored: translation is sequential
}

// LoadConfig loads .env (if present), layers environment variables over
// the defaults, then layers CLI flags over that, and returns the
// resolved Config plus the positional (file/dir) arguments.
func LoadConfig(args []string) (*Config, []string, error) {
	_ = godotenv.Load() // optional; a missing .env is not an error

	cfg := &Config{
		OutDir:      envOr("SOL2INK_OUT_DIR", "."),
		ManifestDSN: os.Getenv("SOL2INK_MANIFEST_DSN"),
		Workers:     envInt("SOL2INK_WORKERS", 0),
	}

	fs := pflag.NewFlagSet("sol2ink", pflag.ContinueOnError)
	out := fs.StringP("out", "o", cfg.OutDir, "Directory to write translated output into.")
	manifestDSN := fs.String("manifest-dsn", cfg.ManifestDSN, "SQLite DSN (path or libsql URL) for the run manifest; empty disables the manifest.")
	verbose := fs.BoolP("verbose", "v", false, "Enable verbose diagnostics.")
	dryRun := fs.BoolP("dry-run", "d", false, "Translate and report without writing any files.")
	workers := fs.IntP("workers", "w", cfg.Workers, "Ignored: sol2ink always translates sequentially.")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if fs.Changed("workers") && *workers != 0 {
		fmt.Fprintln(os.Stderr, "sol2ink: --workers is ignored, translation always runs sequentially")
	}

	cfg.OutDir = *out
	cfg.ManifestDSN = *manifestDSN
	cfg.Verbose = *verbose
	cfg.DryRun = *dryRun
	cfg.Workers = *workers

	return cfg, fs.Args(), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (c *Config) String() string {
	return fmt.Sprintf("out=%s manifest=%s verbose=%t dry-run=%t", c.OutDir, c.ManifestDSN, c.Verbose, c.DryRun)
}
