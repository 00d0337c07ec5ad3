// Command lancedb-tables manages tables in a LanceDB Cloud database.
//
// Usage:
//
//	lancedb-tables [flags] <command> [command flags] [args]
//
// Commands:
//
//	list                      list tables (paginate with -limit/-start-after, or -all)
//	describe <name>           confirm a table exists
//	create <name> -schema S   create an empty table from a schema spec
//	drop <name>               drop a table
//
// The database URI comes from -uri or LANCEDB_URI; the API key from
// LANCEDB_API_KEY.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	lancedb "github.com/lancedb/lancedb-cloud-go/pkg"
	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
)

func main() {
	fs := flag.NewFlagSet("lancedb-tables", flag.ContinueOnError)
	cfg, args, err := LoadConfig(fs, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), cfg, logger, args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given; want one of list, describe, create, drop")
	}
	if cfg.URI == "" {
		return fmt.Errorf("no database URI; set -uri or LANCEDB_URI")
	}

	conn, err := lancedb.Connect(ctx, cfg.URI, &contracts.ConnectionOptions{
		APIKey:       cfg.APIKey,
		Region:       cfg.Region,
		HostOverride: cfg.HostOverride,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	command, rest := args[0], args[1:]
	switch command {
	case "list":
		return runList(ctx, conn, rest)
	case "describe":
		return runDescribe(ctx, conn, rest)
	case "create":
		return runCreate(ctx, conn, rest)
	case "drop":
		return runDrop(ctx, conn, rest)
	default:
		return fmt.Errorf("unknown command %q; want one of list, describe, create, drop", command)
	}
}

func runList(ctx context.Context, conn contracts.IConnection, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	limit := fs.Int("limit", 0, "page size; 0 uses the server default")
	startAfter := fs.String("start-after", "", "resume listing after this table name")
	all := fs.Bool("all", false, "follow pagination to the end")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *all && *limit <= 0 {
		return fmt.Errorf("-all needs a positive -limit to page with")
	}

	cursor := *startAfter
	for {
		var opts []contracts.TableNamesOption
		if *limit > 0 {
			opts = append(opts, contracts.WithLimit(*limit))
		}
		if cursor != "" {
			opts = append(opts, contracts.WithStartAfter(cursor))
		}

		names, err := conn.TableNames(ctx, opts...)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}

		// A short page means the listing is exhausted.
		if !*all || len(names) < *limit {
			return nil
		}
		cursor = names[len(names)-1]
	}
}

func runDescribe(ctx context.Context, conn contracts.IConnection, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("describe wants exactly one table name")
	}

	table, err := conn.OpenTable(ctx, args[0])
	if err != nil {
		return err
	}
	defer table.Close()

	fmt.Printf("table %s exists\n", table.Name())
	return nil
}

func runCreate(ctx context.Context, conn contracts.IConnection, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("create wants a table name")
	}
	name, rest := args[0], args[1:]

	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	schemaSpec := fs.String("schema", "", `field list, e.g. "id:int32,embedding:vector[128],text:string?"`)
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if *schemaSpec == "" {
		return fmt.Errorf("create needs -schema")
	}

	schema, err := parseSchemaSpec(*schemaSpec)
	if err != nil {
		return err
	}

	table, err := conn.CreateTable(ctx, name, schema)
	if err != nil {
		return err
	}
	defer table.Close()

	fmt.Printf("created table %s\n", table.Name())
	return nil
}

func runDrop(ctx context.Context, conn contracts.IConnection, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("drop wants exactly one table name")
	}

	if err := conn.DropTable(ctx, args[0]); err != nil {
		return err
	}

	fmt.Printf("dropped table %s\n", args[0])
	return nil
}
