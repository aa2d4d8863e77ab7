package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/levelup/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the identity backend (default from Config)
//	-p string   base URL of the product catalog API (default from Config)
//	-d string   SQLite DSN of the local store (default from Config)
//	-t int      outbound request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendEndpointAddr, "a", cfg.BackendEndpointAddr, "base URL of the identity backend")
	fs.StringVar(&cfg.CatalogEndpointAddr, "p", cfg.CatalogEndpointAddr, "base URL of the product catalog API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite DSN of the local store")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "outbound request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
