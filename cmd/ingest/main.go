package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/orderflow-etl/internal/canonical"
	"github.com/angelmondragon/orderflow-etl/internal/ingest"
	"github.com/angelmondragon/orderflow-etl/pkg/config"
	"github.com/angelmondragon/orderflow-etl/pkg/db"
	"github.com/angelmondragon/orderflow-etl/pkg/logger"
	"github.com/angelmondragon/orderflow-etl/pkg/migrate"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "ingest"})

	_ = godotenv.Load()

	csvPath := flag.String("csv", "", "source CSV file to ingest (required)")
	dbPath := flag.String("db", "", "destination store path (overrides ORDERFLOW_DB_PATH)")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		requireResource(ctx, logg, "source file", errors.New("missing -csv flag"))
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)
	if *dbPath != "" {
		cfg.DB.Path = *dbPath
	}

	logg = logger.New(logger.Options{
		ServiceName: "ingest",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	err = migrate.AutoRun(context.Background(), logg, dbClient)
	requireResource(ctx, logg, "schema", err)

	canon := canonical.New(canonical.DefaultTables())
	loader := ingest.NewLoader(dbClient, cfg.Ingest.BatchSize)
	service := ingest.NewService(canon, loader, logg)

	runCtx := logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"db":  cfg.DB.Path,
	})
	logg.Info(runCtx, "ingest ready")

	report, err := service.Run(runCtx, *csvPath)
	if err != nil {
		logg.Error(runCtx, "ingest run failed", err)
		os.Exit(1)
	}

	fmt.Printf("run %s: %d rows read, %d clean, %d bad, %d duplicates dropped, %d conflicting\n",
		report.RunID, report.RowsRead, report.Clean, report.Bad,
		report.ExactDuplicates, report.ConflictRows)
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
