/*
Clrgen builds the canonical LR(1) tables for a grammar and drives parses
against it.

Usage:

	clrgen [flags] GRAMMAR_FILE

Once the grammar is read, parsed, and compiled, clrgen prints its
ACTION/GOTO table (and any conflicts found) to stdout. If a token string is
given with --tokens, a single parse is run and its trace is printed;
otherwise clrgen starts an interactive readline session where each line
entered is parsed as whitespace-separated input against the compiled
table.

The flags are:

	-v, --version
		Print the clrgen version and exit.

	-t, --tokens TOKENS
		Run a single parse against the given whitespace-separated token
		string instead of starting an interactive session.

	--serve
		Instead of compiling a single file, launch the HTTP API (see
		clrserver) using the configuration file given by --config.

	-c, --config FILE
		Path to a TOML configuration file, used only with --serve.
*/
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/api"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/automaton"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/config"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/grammar"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrparse"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrtable"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/store"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/store/sqlite"
	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/version"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitGrammarError
	ExitServerError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Print the clrgen version and exit.")
	flagTokens  = pflag.StringP("tokens", "t", "", "Run a single parse against the given token string.")
	flagServe   = pflag.Bool("serve", false, "Launch the HTTP API instead of compiling a single file.")
	flagConfig  = pflag.StringP("config", "c", "", "Path to a TOML configuration file (used with --serve).")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("clrgen %s\n", version.Current)
		os.Exit(ExitSuccess)
	}

	if *flagServe {
		if err := serve(*flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL %s\n", err)
			os.Exit(ExitServerError)
		}
		return
	}

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: clrgen [flags] GRAMMAR_FILE\nDo -h for help.\n")
		os.Exit(ExitUsageError)
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL could not read grammar file: %s\n", err)
		os.Exit(ExitGrammarError)
	}

	g, err := grammar.Parse(string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL could not parse grammar: %s\n", err)
		os.Exit(ExitGrammarError)
	}

	coll := automaton.Build(g)
	tbl := lrtable.Build(g, coll)

	fmt.Println(tbl.String())
	if tbl.Conflicted() {
		fmt.Fprintf(os.Stderr, "WARN  grammar is not LR(1): %d conflict(s) found\n", len(tbl.Conflicts))
	}

	if *flagTokens != "" {
		runOnce(g, tbl, *flagTokens)
		return
	}

	if err := runInteractive(g, tbl); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL %s\n", err)
		os.Exit(ExitGrammarError)
	}
}

func runOnce(g grammar.Grammar, tbl lrtable.Table, tokenStr string) {
	tokens := strings.Fields(tokenStr)
	res := lrparse.Run(g, tbl, tokens)
	printTrace(res)
}

func runInteractive(g grammar.Grammar, tbl lrtable.Table) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "tokens> "})
	if err != nil {
		return fmt.Errorf("create readline session: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res := lrparse.Run(g, tbl, strings.Fields(line))
		printTrace(res)
	}
}

func printTrace(res lrparse.Result) {
	for _, step := range res.Steps {
		fmt.Println(step.String())
	}
	if res.Accepted {
		fmt.Println("ACCEPTED")
		fmt.Println(res.Tree.String())
	} else {
		fmt.Printf("REJECTED: %s\n", res.Err)
	}
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var st store.Store
	switch cfg.Database.Type {
	case config.DatabaseSQLite:
		sq, err := sqlite.NewStore(cfg.Database.DataDir)
		if err != nil {
			return fmt.Errorf("open sqlite store: %w", err)
		}
		st = sq
	default:
		st = store.NewInMemory()
	}

	router := api.NewRouter(api.Options{
		Store:      st,
		JWTSecret:  cfg.JWTSecret,
		APIKeyHash: cfg.APIKeyHash,
	})

	fmt.Printf("INFO  listening on %s\n", cfg.ListenAddress)
	return http.ListenAndServe(cfg.ListenAddress, router)
}
