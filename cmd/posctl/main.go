// posctl opens the point-of-sale store, applies schema migrations and
// runs read-only maintenance commands against it. The repositories
// themselves are consumed in-process by the desktop shell; this tool is
// the operator's way to reach the same store from a terminal.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/persistence"
)

func main() {
	var (
		dataDir  string
		logLevel string
	)

	flag.StringVar(&dataDir, "data", "", "Preferred base directory for the database file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	command := "migrate"
	if len(args) > 0 {
		command = args[0]
	}

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	cfg.Log.Level = logLevel

	db, err := persistence.Open(cfg, dataDir, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()
	log.Info("Store opened and migrated", zap.String("path", db.Path))

	ctx := context.Background()

	switch command {
	case "migrate":
		// Open already migrated; nothing further to do.

	case "summary":
		start, end := "", ""
		if len(args) > 1 {
			start = args[1]
		}
		if len(args) > 2 {
			end = args[2]
		}
		summary, err := persistence.NewGormSummaryRepository(db.DB).Summarize(ctx, start, end)
		if err != nil {
			log.Fatal("Failed to summarize", zap.Error(err))
		}
		printJSON(summary)

	case "pending":
		entries, err := persistence.NewGormOutboxRepository(db.DB).FindPending(ctx, 0)
		if err != nil {
			log.Fatal("Failed to list pending outbox entries", zap.Error(err))
		}
		printJSON(entries)

	default:
		printUsage()
		os.Exit(1)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println(`Usage: posctl [flags] <command>

Commands:
  migrate              Open the store and apply schema migrations (default)
  summary [start end]  Print the sales summary for a date range (YYYY-MM-DD)
  pending              Print pending sync-outbox entries

Flags:
  -data string         Preferred base directory for the database file
  -log-level string    Log level (default "info")`)
}
