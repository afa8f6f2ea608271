package migrate

import (
	"context"

	"github.com/angelmondragon/orderflow-etl/pkg/db"
	"github.com/angelmondragon/orderflow-etl/pkg/errors"
	"github.com/angelmondragon/orderflow-etl/pkg/logger"
)

// AutoRun brings the destination store up to the embedded schema before a
// pipeline run. The schema is a fixed contract, so this runs unconditionally.
func AutoRun(ctx context.Context, logg *logger.Logger, client *db.Client) error {
	sqlDB, err := client.DB().DB()
	if err != nil {
		return errors.Wrap(errors.CodeSchema, err, "extracting sql.DB")
	}

	ctx = logg.WithStage(ctx, "migrate")
	logg.Info(ctx, "running schema migrations")

	if err := Up(ctx, sqlDB); err != nil {
		return errors.Wrap(errors.CodeSchema, err, "migrating destination schema")
	}

	logg.Info(ctx, "schema migrations completed")
	return nil
}
