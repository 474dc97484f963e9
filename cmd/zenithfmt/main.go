// Command zenithfmt validates Zenith scan formulas and prints them in
// canonical form.
//
// Usage:
//
//	zenithfmt [-kind boolean|numeric] [-sql] [-config config.yaml] [-save name] [file]
//
// The formula is read from file, or from stdin when no file is given.
// On a decode failure the error and the decode trail are printed and the
// exit status is 1.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/joho/godotenv"

	"github.com/hugr-lab/zenith-scan/filter"
	"github.com/hugr-lab/zenith-scan/formula"
	"github.com/hugr-lab/zenith-scan/internal/config"
	"github.com/hugr-lab/zenith-scan/scan"
	"github.com/hugr-lab/zenith-scan/zenith"
)

func main() {
	_ = godotenv.Load() // best-effort: .env is optional

	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	kind       string
	sql        bool
	configPath string
	save       string
	input      string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("zenithfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.kind, "kind", "", "formula kind: boolean or numeric (default from config)")
	fs.BoolVar(&opts.sql, "sql", false, "also print the DuckDB SQL encoding")
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.save, "save", "", "save the criteria as a scan with this name")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.input = fs.Arg(0)
	default:
		return opts, errors.New("at most one input file")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "zenithfmt: %v\n", err)
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "zenithfmt: config: %v\n", err)
		return 1
	}
	if opts.kind != "" {
		cfg.Kind = strings.ToLower(opts.kind)
	}

	logger := config.NewLogger(cfg.LogLevel, stderr)

	data, err := readInput(opts.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "zenithfmt: %v\n", err)
		return 1
	}

	enc := filter.NewDuckDBEncoder(&filter.EncoderOptions{ColumnMapping: cfg.ColumnMapping})

	switch cfg.Kind {
	case config.KindBoolean:
		node, progress, err := zenith.ParseBoolean(data)
		if err != nil {
			reportFailure(stderr, err, progress)
			return 1
		}
		text, err := zenith.MarshalBoolean(node)
		if err != nil {
			fmt.Fprintf(stderr, "zenithfmt: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s\n", text)
		if opts.sql {
			fmt.Fprintln(stdout, enc.Encode(node))
		}
		if opts.save != "" {
			if err := save(ctx, cfg, logger, opts.save, node); err != nil {
				fmt.Fprintf(stderr, "zenithfmt: save: %v\n", err)
				return 1
			}
		}
	case config.KindNumeric:
		if opts.save != "" {
			fmt.Fprintln(stderr, "zenithfmt: -save requires boolean criteria")
			return 2
		}
		node, progress, err := zenith.ParseNumeric(data)
		if err != nil {
			reportFailure(stderr, err, progress)
			return 1
		}
		text, err := zenith.MarshalNumeric(node)
		if err != nil {
			fmt.Fprintf(stderr, "zenithfmt: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s\n", text)
		if opts.sql {
			fmt.Fprintln(stdout, enc.EncodeNumeric(node))
		}
	default:
		fmt.Fprintf(stderr, "zenithfmt: unknown kind %q\n", cfg.Kind)
		return 2
	}

	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// reportFailure prints the decode error and the trail of tuple nodes
// visited, indented by depth, marking the node that failed.
func reportFailure(w io.Writer, err error, progress *zenith.DecodeProgress) {
	fmt.Fprintf(w, "zenithfmt: %v\n", err)
	if progress.TupleNodeCount() == 0 {
		return
	}

	nodes := progress.DecodedNodes()
	failed := -1
	for i, n := range nodes {
		if !n.Resolved {
			failed = i
		}
	}

	fmt.Fprintf(w, "decoded %d tuple nodes:\n", progress.TupleNodeCount())
	for i, n := range nodes {
		indent := strings.Repeat("  ", n.TupleNodeDepth+1)
		switch {
		case n.Resolved:
			fmt.Fprintf(w, "%s%s => %v\n", indent, n.TupleNodeType, n.NodeTypeID)
		case i == failed:
			fmt.Fprintf(w, "%s%s <- failed here\n", indent, n.TupleNodeType)
		default:
			fmt.Fprintf(w, "%s%s\n", indent, n.TupleNodeType)
		}
	}
}

// save stores criteria as the scan named name, updating an existing scan
// with the same name.
func save(ctx context.Context, cfg config.Config, logger *slog.Logger, name string, criteria formula.BooleanNode) error {
	if dir := filepath.Dir(cfg.StorePath); cfg.StorePath != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	path := cfg.StorePath
	if path == ":memory:" {
		path = ""
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := scan.NewDuckDBStore(ctx, db, scan.StoreConfig{Table: cfg.StoreTable, Logger: logger})
	if err != nil {
		return err
	}
	defer store.Close()

	def := &scan.Definition{Name: name, Criteria: criteria}
	existing, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, d := range existing {
		if d.Name == name {
			def.ID = d.ID
			def.Description = d.Description
			def.Rank = d.Rank
			break
		}
	}

	if err := store.Save(ctx, def); err != nil {
		return err
	}
	logger.Info("Scan saved",
		slog.String("name", def.Name),
		slog.String("id", def.ID.String()),
		slog.Int("version", def.Version),
	)
	return nil
}
