package main

import (
	"flag"
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down or version")
		steps   = flag.Int("steps", 1, "Number of migrations to revert with -command=down")
		all     = flag.Bool("all", false, "Revert every migration with -command=down")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	l.Info("Running migrations", zap.String("command", *command), zap.String("driver", cfg.DB.Driver))

	switch *command {
	case "up":
		err = database.RunMigrations(cfg)
	case "down":
		n := *steps
		if *all {
			n = 0
		}
		err = database.RollbackMigrations(cfg, n)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = database.MigrationVersion(cfg)
		if err == nil {
			l.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	default:
		l.Fatal("Unknown migration command", zap.String("command", *command))
	}

	if err != nil {
		l.Fatal("Migration failed", zap.Error(err))
	}
}
