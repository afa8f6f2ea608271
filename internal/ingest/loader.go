package ingest

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/orderflow-etl/pkg/db"
	"github.com/angelmondragon/orderflow-etl/pkg/db/models"
	"github.com/angelmondragon/orderflow-etl/pkg/errors"
)

// LoadSet is everything one run persists: the three streams plus the
// dimension and fact rows derived from the clean stream.
type LoadSet struct {
	Raw       []models.TransactionRaw
	Bad       []models.TransactionBad
	Clean     []models.TransactionCleaned
	Customers []models.Customer
	Products  []models.Product
	Orders    []models.OrderInfo
	Details   []models.OrderDetail
}

// Loader persists a LoadSet in one transaction. Raw and bad are append-only;
// clean and the derived tables are upserts on their natural keys, so an
// identical rerun leaves them in an identical final state. Any write error
// aborts the whole run with nothing committed.
type Loader struct {
	client    *db.Client
	batchSize int
}

func NewLoader(client *db.Client, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Loader{client: client, batchSize: batchSize}
}

func (l *Loader) Load(ctx context.Context, set LoadSet) error {
	err := l.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := l.appendStreams(tx, &set); err != nil {
			return err
		}
		if err := l.upsertClean(tx, set.Clean); err != nil {
			return err
		}
		return l.upsertDerived(tx, set)
	})
	if err != nil {
		return errors.Wrap(errors.CodeStorage, err, "persisting run")
	}
	return nil
}

func (l *Loader) appendStreams(tx *gorm.DB, set *LoadSet) error {
	if len(set.Raw) > 0 {
		version, err := nextVersion(tx, models.TransactionRaw{}.TableName())
		if err != nil {
			return err
		}
		for i := range set.Raw {
			set.Raw[i].Version = version
		}
		if err := tx.CreateInBatches(&set.Raw, l.batchSize).Error; err != nil {
			return fmt.Errorf("appending raw stream: %w", err)
		}
	}

	if len(set.Bad) > 0 {
		version, err := nextVersion(tx, models.TransactionBad{}.TableName())
		if err != nil {
			return err
		}
		for i := range set.Bad {
			set.Bad[i].Version = version
		}
		if err := tx.CreateInBatches(&set.Bad, l.batchSize).Error; err != nil {
			return fmt.Errorf("appending bad stream: %w", err)
		}
	}
	return nil
}

func (l *Loader) upsertClean(tx *gorm.DB, clean []models.TransactionCleaned) error {
	if len(clean) == 0 {
		return nil
	}
	version, err := nextVersion(tx, models.TransactionCleaned{}.TableName())
	if err != nil {
		return err
	}
	for i := range clean {
		clean[i].Version = version
	}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "item_sku"}},
		DoUpdates: clause.AssignmentColumns(models.TransactionCleaned{}.NonKeyColumns()),
	}).CreateInBatches(&clean, l.batchSize).Error
	if err != nil {
		return fmt.Errorf("upserting clean stream: %w", err)
	}
	return nil
}

func (l *Loader) upsertDerived(tx *gorm.DB, set LoadSet) error {
	if len(set.Customers) > 0 {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: coalesceAssignments("customer", []string{
				"customer_name", "email", "phone", "country", "state", "city",
				"address", "postal_code",
			}),
		}).CreateInBatches(&set.Customers, l.batchSize).Error
		if err != nil {
			return fmt.Errorf("upserting customer dimension: %w", err)
		}
	}

	if len(set.Products) > 0 {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_sku"}},
			DoUpdates: coalesceAssignments("product", []string{"item_name"}),
		}).CreateInBatches(&set.Products, l.batchSize).Error
		if err != nil {
			return fmt.Errorf("upserting product dimension: %w", err)
		}
	}

	if len(set.Orders) > 0 {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_id", "order_date", "ship_date", "ship_mode",
				"discount_code", "order_notes",
			}),
		}).CreateInBatches(&set.Orders, l.batchSize).Error
		if err != nil {
			return fmt.Errorf("upserting order headers: %w", err)
		}
	}

	if len(set.Details) > 0 {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}, {Name: "item_sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"quantity", "unit_price", "currency",
			}),
		}).CreateInBatches(&set.Details, l.batchSize).Error
		if err != nil {
			return fmt.Errorf("upserting order details: %w", err)
		}
	}
	return nil
}

// coalesceAssignments overwrites a dimension attribute only when the
// incoming row supplies a non-null value.
func coalesceAssignments(table string, columns []string) clause.Set {
	assignments := make(map[string]any, len(columns))
	for _, col := range columns {
		assignments[col] = gorm.Expr(fmt.Sprintf("COALESCE(excluded.%s, %s.%s)", col, table, col))
	}
	return clause.Assignments(assignments)
}

// nextVersion returns the run tag for a stream table: one more than the
// highest tag already present.
func nextVersion(tx *gorm.DB, table string) (string, error) {
	var current int64
	query := fmt.Sprintf("SELECT COALESCE(MAX(CAST(version AS INTEGER)), 0) FROM %s", table)
	if err := tx.Raw(query).Scan(&current).Error; err != nil {
		return "", fmt.Errorf("reading %s version: %w", table, err)
	}
	return strconv.FormatInt(current+1, 10), nil
}
