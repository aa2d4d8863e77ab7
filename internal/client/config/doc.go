// Package config loads runtime configuration for the LevelUp CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the identity backend
//	-p string   base URL of the product catalog API
//	-d string   SQLite DSN of the local store
//	-t int      outbound request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "10s" or integer nanoseconds:
//
//	{
//	  "backend_endpoint_addr": "http://127.0.0.1:8080",
//	  "catalog_endpoint_addr": "https://fakestoreapi.com",
//	  "database_dsn": "levelup.db",
//	  "request_timeout": "10s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
