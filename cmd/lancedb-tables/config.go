package main

import (
	"flag"
	"os"
)

// Config holds runtime settings for the lancedb-tables CLI.
//
// Fields:
//   - URI: database URI, e.g. db://my-database.
//   - APIKey: LanceDB Cloud API key. Set via LANCEDB_API_KEY; there is no
//     flag for it so the key stays out of shell history.
//   - Region: LanceDB Cloud region the database lives in.
//   - HostOverride: explicit endpoint instead of the derived host.
//   - Verbose: enables debug logging of every request.
type Config struct {
	URI          string
	APIKey       string
	Region       string
	HostOverride string
	Verbose      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Region = "us-east-1"
}

// loadEnv overlays values from the environment.
func (c *Config) loadEnv() {
	if v := os.Getenv("LANCEDB_URI"); v != "" {
		c.URI = v
	}
	if v := os.Getenv("LANCEDB_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("LANCEDB_REGION"); v != "" {
		c.Region = v
	}
	if v := os.Getenv("LANCEDB_HOST_OVERRIDE"); v != "" {
		c.HostOverride = v
	}
}

// parseFlags overlays values from command-line flags and returns the
// remaining arguments: the subcommand and everything after it.
func (c *Config) parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	fs.StringVar(&c.URI, "uri", c.URI, "database URI (db://<database>)")
	fs.StringVar(&c.Region, "region", c.Region, "LanceDB Cloud region")
	fs.StringVar(&c.HostOverride, "host-override", c.HostOverride, "explicit endpoint instead of the derived host")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags. Later sources take
// precedence over earlier ones. The returned slice holds the arguments left
// after flag parsing.
func LoadConfig(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.loadEnv()
	rest, err := cfg.parseFlags(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}
