/*
Clrserver starts the clrgen HTTP API and begins listening for requests.

Usage:

	clrserver [flags]

By default it listens on localhost:8080 with an in-memory store. A TOML
configuration file can be given with --config; CLI flags override values
from that file, which in turn override environment variables, which
override the built-in defaults.

The flags are:

	-v, --version
		Print the clrserver version and exit.

	-c, --config FILE
		Path to a TOML configuration file.

	-l, --listen ADDRESS
		Listen on the given address, overriding the config file.

	--db DRIVER[:PATH]
		Use the given DB driver ("inmem" or "sqlite:PATH"), overriding the
		config file.
*/
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/api"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/config"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/store"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/store/sqlite"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/version"
)

const (
	ExitSuccess = iota
	ExitConfigError
	ExitServerError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Print the clrserver version and exit.")
	flagConfig  = pflag.StringP("config", "c", "", "Path to a TOML configuration file.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagDB      = pflag.String("db", "", `Use the given DB driver ("inmem" or "sqlite:PATH").`)
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("clrserver %s\n", version.Current)
		os.Exit(ExitSuccess)
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL %s\n", err)
		os.Exit(ExitConfigError)
	}

	if pflag.Lookup("listen").Changed {
		cfg.ListenAddress = *flagListen
	}

	if pflag.Lookup("db").Changed {
		parts := strings.SplitN(*flagDB, ":", 2)
		switch parts[0] {
		case "inmem":
			cfg.Database = config.Database{Type: config.DatabaseInMemory}
		case "sqlite":
			if len(parts) != 2 || parts[1] == "" {
				fmt.Fprintf(os.Stderr, "FATAL sqlite DB driver requires a data directory: --db sqlite:PATH\n")
				os.Exit(ExitConfigError)
			}
			cfg.Database = config.Database{Type: config.DatabaseSQLite, DataDir: parts[1]}
		default:
			fmt.Fprintf(os.Stderr, "FATAL unsupported DB driver: %q\n", parts[0])
			os.Exit(ExitConfigError)
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL invalid configuration: %s\n", err)
		os.Exit(ExitConfigError)
	}

	var st store.Store
	switch cfg.Database.Type {
	case config.DatabaseSQLite:
		if err := os.MkdirAll(cfg.Database.DataDir, 0770); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL could not create data directory: %s\n", err)
			os.Exit(ExitConfigError)
		}
		sq, err := sqlite.NewStore(cfg.Database.DataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL could not open sqlite store: %s\n", err)
			os.Exit(ExitConfigError)
		}
		st = sq
	default:
		st = store.NewInMemory()
	}

	if cfg.JWTSecret == "" {
		fmt.Fprintf(os.Stderr, "WARN  no JWT secret configured; write endpoints will reject all tokens\n")
	}

	router := api.NewRouter(api.Options{
		Store:      st,
		JWTSecret:  cfg.JWTSecret,
		APIKeyHash: cfg.APIKeyHash,
	})

	fmt.Printf("INFO  clrserver listening on %s\n", cfg.ListenAddress)
	if err := http.ListenAndServe(cfg.ListenAddress, router); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL %s\n", err)
		os.Exit(ExitServerError)
	}
}
