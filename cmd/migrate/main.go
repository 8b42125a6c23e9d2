package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/execdash/backend/internal/infrastructure/config"
	"github.com/execdash/backend/internal/infrastructure/logger"
	"github.com/execdash/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	var (
		migrationsPath = flag.String("path", "", "path to migrations directory (default: auto-detect)")
		logLevel       = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      *logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	path, err := resolveMigrationsPath(*migrationsPath)
	if err != nil {
		log.Fatal("Failed to locate migrations directory", zap.Error(err))
	}

	// create and list work on the filesystem only
	switch command {
	case "create":
		if len(args) < 2 {
			log.Fatal("Usage: migrate create <name> [description]")
		}
		description := ""
		if len(args) > 2 {
			description = args[2]
		}
		file, err := migration.CreateMigration(path, args[1], description)
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.String("up", file.UpPath),
			zap.String("down", file.DownPath),
		)
		return
	case "list":
		names, err := migration.ListMigrations(path)
		if err != nil {
			log.Fatal("Failed to list migrations", zap.Error(err))
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := migration.New(db, path, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal("Rollback failed", zap.Error(err))
		}
	case "step":
		if len(args) < 2 {
			log.Fatal("Usage: migrate step <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid step count", zap.String("value", args[1]))
		}
		if err := migrator.Steps(n); err != nil {
			log.Fatal("Migration steps failed", zap.Error(err))
		}
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal("Failed to get version", zap.Error(err))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	case "force":
		if len(args) < 2 {
			log.Fatal("Usage: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version", zap.String("value", args[1]))
		}
		if err := migrator.Force(version); err != nil {
			log.Fatal("Force failed", zap.Error(err))
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

// resolveMigrationsPath finds the migrations directory when no explicit
// path is given: first the working directory, then relative to the binary.
func resolveMigrationsPath(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}

	if info, err := os.Stat("migrations"); err == nil && info.IsDir() {
		return filepath.Abs("migrations")
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	candidate := filepath.Join(filepath.Dir(exe), "..", "..", "migrations")
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return filepath.Abs(candidate)
	}

	return "", fmt.Errorf("migrations directory not found; use -path")
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command>

Commands:
  up                       Apply all pending migrations
  down                     Roll back all migrations
  step <n>                 Apply n migrations (negative rolls back)
  version                  Show the current migration version
  force <version>          Set the version without running migrations
  create <name> [desc]     Create a new migration file pair
  list                     List migration files

Flags:
  -path <dir>              Migrations directory (default: auto-detect)
  -log-level <level>       Log level (default: info)`)
}
