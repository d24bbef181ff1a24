package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"campaign-server/internal/config"
	"campaign-server/internal/migrations"
	"campaign-server/internal/observability"
)

func main() {
	direction := flag.String("direction", "up", "up applies all migrations, down rolls back one step, version prints the current version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "direction", Value: *direction},
		observability.Field{Key: "db_host", Value: cfg.Database.Host},
	)

	addr := cfg.Database.ConnectionString()

	switch *direction {
	case "up":
		err = migrations.Migrate(addr)
	case "down":
		err = migrations.Rollback(addr)
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = migrations.CurrentVersion(addr)
		if err == nil {
			fmt.Fprintf(os.Stdout, "version=%d dirty=%t latest=%d\n", version, dirty, migrations.Version)
		}
	default:
		err = fmt.Errorf("unknown direction %q", *direction)
	}
	if err != nil {
		logger.Fatal(ctx, "migration failed", err)
	}

	logger.Info(ctx, "migration finished")
}
