package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/angelmondragon/orderflow-etl/internal/canonical"
	"github.com/angelmondragon/orderflow-etl/pkg/errors"
)

// ReadCSV reads the whole input file as raw text: no type coercion, every
// cell text-normalized as it comes in. The first line names the columns;
// unknown columns are ignored and missing ones read as empty.
func ReadCSV(path string) ([]canonical.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInput, err, "opening source file").
			WithDetails(map[string]any{"file": path})
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.CodeInput, "source file has no header row").
			WithDetails(map[string]any{"file": path})
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeInput, err, "reading header row")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeHeader(name)] = i
	}

	var rows []canonical.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.CodeInput, err, "reading source row")
		}
		rows = append(rows, rowFromRecord(columns, record))
	}
	return rows, nil
}

// normalizeHeader maps a header cell to its canonical column name: BOM
// stripped, trimmed, lowercased, internal spaces as underscores.
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\uFEFF")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

func rowFromRecord(columns map[string]int, record []string) canonical.RawRow {
	cell := func(column string) string {
		i, ok := columns[column]
		if !ok || i >= len(record) {
			return ""
		}
		return canonical.NormalizeText(record[i])
	}

	return canonical.RawRow{
		OrderID:      cell("order_id"),
		CustomerID:   cell("customer_id"),
		CustomerName: cell("customer_name"),
		Email:        cell("email"),
		Phone:        cell("phone"),
		Country:      cell("country"),
		State:        cell("state"),
		City:         cell("city"),
		Address:      cell("address"),
		PostalCode:   cell("postal_code"),
		OrderDate:    cell("order_date"),
		ShipDate:     cell("ship_date"),
		ShipMode:     cell("ship_mode"),
		ItemSKU:      cell("item_sku"),
		ItemName:     cell("item_name"),
		Quantity:     cell("quantity"),
		UnitPrice:    cell("unit_price"),
		Currency:     cell("currency"),
		DiscountCode: cell("discount_code"),
		OrderNotes:   cell("order_notes"),
	}
}
