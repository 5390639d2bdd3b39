// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel: slog level name (default: info)
  - EnvFile: .env path (default: .env)
  - DBMaxOpenConns: connection pool size (default: 5)

# CLI Flags

	-p, --port          Server port
	-d, --database-url  Database URL
	-t, --database-type Database type
	    --log-level     Log level
	    --env-file      .env file path

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	LOG_LEVEL         → --log-level
	DB_MAX_OPEN_CONNS (environment only)

CLI flags take precedence over environment variables, and environment
variables take precedence over the .env file. A missing .env file is not an
error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is not provided
  - the database type is not sqlite or postgres
  - the log level is unknown
  - PORT or DB_MAX_OPEN_CONNS is not a valid number
*/
package cliparse
