package ingest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/orderflow-etl/internal/canonical"
	"github.com/angelmondragon/orderflow-etl/pkg/db/models"
	pkgerrors "github.com/angelmondragon/orderflow-etl/pkg/errors"
)

// messyCSV mixes the quality cases one run has to sort out: two good rows,
// an exact duplicate, a date ordering failure, a conflicting duplicate pair,
// and a row with no way to contact the customer.
const messyCSV = "order_id,customer_id,customer_name,email,order_date,ship_date,item_sku,item_name,quantity,unit_price,currency\n" +
	`ORD-1001,C-1,Alice,a@example.com,2024-01-05,2024-01-07,A1,Widget,two,"$1,234.56",` + "\n" +
	`5,C-2,Bob,b@example.com,2024-02-01,2024-02-03,B2,Gadget,1,"1.234,56 €",` + "\n" +
	`5,C-2,Bob,b@example.com,2024-02-01,2024-02-03,B2,Gadget,1,"1.234,56 €",` + "\n" +
	"7,C-3,Cara,c@example.com,2024-03-10,2024-03-01,C3,Lamp,1,10.00,USD\n" +
	"9,C-4,Dan,d@example.com,2024-04-01,2024-04-02,D4,Desk,1,20.00,USD\n" +
	"9,C-4,Dan,d@example.com,2024-04-01,2024-04-02,D4,Desk,2,20.00,USD\n" +
	"11,C-5,Eve,,2024-05-01,2024-05-02,E5,Chair,1,30.00,USD\n"

func TestServiceRunPartitionsEveryRow(t *testing.T) {
	client := newTestClient(t)
	service := NewService(canonical.New(canonical.DefaultTables()), NewLoader(client, 50), testLogger())
	path := writeCSV(t, messyCSV)

	report, err := service.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 7, report.RowsRead)
	assert.Equal(t, 2, report.Clean)
	assert.Equal(t, 4, report.Bad)
	assert.Equal(t, 1, report.ExactDuplicates)
	assert.Equal(t, 2, report.ConflictRows)
	assert.Equal(t, report.RowsRead, report.Clean+report.Bad+report.ExactDuplicates,
		"every row lands in exactly one of clean, bad, or silent-duplicate")

	assert.Equal(t, int64(7), countRows(t, client, "transaction_raw"))
	assert.Equal(t, int64(2), countRows(t, client, "transaction_cleaned"))
	assert.Equal(t, int64(4), countRows(t, client, "transaction_bad"))
}

func TestServiceRunCanonicalizesCleanRows(t *testing.T) {
	client := newTestClient(t)
	service := NewService(canonical.New(canonical.DefaultTables()), NewLoader(client, 50), testLogger())
	path := writeCSV(t, messyCSV)

	_, err := service.Run(context.Background(), path)
	require.NoError(t, err)

	var row models.TransactionCleaned
	require.NoError(t, client.DB().First(&row, "order_id = ?", "1001").Error)

	assert.Equal(t, "A1", row.ItemSKU)
	require.NotNil(t, row.Quantity)
	assert.Equal(t, int64(2), *row.Quantity, "quantity spelled out as a word")
	require.NotNil(t, row.UnitPrice)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(*row.UnitPrice))
	require.NotNil(t, row.Currency)
	assert.Equal(t, "USD", *row.Currency, "currency inferred from the $ symbol")
	require.NotNil(t, row.OrderDate)
	assert.Equal(t, "2024-01-05", *row.OrderDate)

	var euro models.TransactionCleaned
	require.NoError(t, client.DB().First(&euro, "order_id = ?", "5").Error)
	require.NotNil(t, euro.UnitPrice)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(*euro.UnitPrice))
	require.NotNil(t, euro.Currency)
	assert.Equal(t, "EUR", *euro.Currency)
}

func TestServiceRunDerivesDimensions(t *testing.T) {
	client := newTestClient(t)
	service := NewService(canonical.New(canonical.DefaultTables()), NewLoader(client, 50), testLogger())
	path := writeCSV(t, messyCSV)

	_, err := service.Run(context.Background(), path)
	require.NoError(t, err)

	// Only the two clean rows feed the derived tables.
	assert.Equal(t, int64(2), countRows(t, client, "customer"))
	assert.Equal(t, int64(2), countRows(t, client, "product"))
	assert.Equal(t, int64(2), countRows(t, client, "order_info"))
	assert.Equal(t, int64(2), countRows(t, client, "order_detail"))

	var customer models.Customer
	require.NoError(t, client.DB().First(&customer, "customer_id = ?", "C-1").Error)
	require.NotNil(t, customer.CustomerName)
	assert.Equal(t, "Alice", *customer.CustomerName)
}

func TestServiceRerunConvergesKeyedTables(t *testing.T) {
	client := newTestClient(t)
	service := NewService(canonical.New(canonical.DefaultTables()), NewLoader(client, 50), testLogger())
	path := writeCSV(t, messyCSV)
	ctx := context.Background()

	first, err := service.Run(ctx, path)
	require.NoError(t, err)
	second, err := service.Run(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, first.Clean, second.Clean)
	assert.Equal(t, first.Bad, second.Bad)

	// Streams accumulate; keyed tables do not.
	assert.Equal(t, int64(14), countRows(t, client, "transaction_raw"))
	assert.Equal(t, int64(8), countRows(t, client, "transaction_bad"))
	assert.Equal(t, int64(2), countRows(t, client, "transaction_cleaned"))
	assert.Equal(t, int64(2), countRows(t, client, "customer"))
	assert.Equal(t, int64(2), countRows(t, client, "product"))
	assert.Equal(t, int64(2), countRows(t, client, "order_info"))
	assert.Equal(t, int64(2), countRows(t, client, "order_detail"))
}

func TestServiceRejectedRowsKeepReasonsAndPayload(t *testing.T) {
	client := newTestClient(t)
	service := NewService(canonical.New(canonical.DefaultTables()), NewLoader(client, 50), testLogger())
	path := writeCSV(t, messyCSV)

	_, err := service.Run(context.Background(), path)
	require.NoError(t, err)

	var lateShip models.TransactionBad
	require.NoError(t, client.DB().First(&lateShip, "order_id = ?", "7").Error)
	assert.Contains(t, lateShip.ErrorReasons, "ship_date_before_order_date")
	assert.Contains(t, lateShip.RawRowJSON, `"order_date":"2024-03-10"`)

	var conflicts []models.TransactionBad
	require.NoError(t, client.DB().Find(&conflicts, "order_id = ?", "9").Error)
	require.Len(t, conflicts, 2, "a conflicting key rejects every row in the group")
	for _, row := range conflicts {
		assert.Contains(t, row.ErrorReasons, "conflicting_duplicate_key")
	}

	var noContact models.TransactionBad
	require.NoError(t, client.DB().First(&noContact, "order_id = ?", "11").Error)
	assert.Contains(t, noContact.ErrorReasons, "no_contact_method")
}

func TestServiceRunMissingFileFailsWholeRun(t *testing.T) {
	client := newTestClient(t)
	service := NewService(canonical.New(canonical.DefaultTables()), NewLoader(client, 50), testLogger())

	_, err := service.Run(context.Background(), "does-not-exist.csv")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInput, typed.Code())
	assert.Equal(t, int64(0), countRows(t, client, "transaction_raw"))
}
