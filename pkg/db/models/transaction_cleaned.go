package models

import "github.com/shopspring/decimal"

// TransactionCleaned is one canonicalized, validated order line. Upserted by
// its natural key so reprocessing an input file is idempotent.
type TransactionCleaned struct {
	OrderID      string           `gorm:"column:order_id;primaryKey"`
	ItemSKU      string           `gorm:"column:item_sku;primaryKey"`
	CustomerID   *string          `gorm:"column:customer_id"`
	CustomerName *string          `gorm:"column:customer_name"`
	Email        *string          `gorm:"column:email"`
	Phone        *string          `gorm:"column:phone"`
	Country      *string          `gorm:"column:country"`
	State        *string          `gorm:"column:state"`
	City         *string          `gorm:"column:city"`
	Address      *string          `gorm:"column:address"`
	PostalCode   *string          `gorm:"column:postal_code"`
	OrderDate    *string          `gorm:"column:order_date"`
	ShipDate     *string          `gorm:"column:ship_date"`
	ShipMode     *string          `gorm:"column:ship_mode"`
	ItemName     *string          `gorm:"column:item_name"`
	Quantity     *int64           `gorm:"column:quantity"`
	UnitPrice    *decimal.Decimal `gorm:"column:unit_price;type:numeric"`
	Currency     *string          `gorm:"column:currency"`
	DiscountCode *string          `gorm:"column:discount_code"`
	OrderNotes   *string          `gorm:"column:order_notes"`
	IngestedAt   string           `gorm:"column:ingested_at;not null"`
	SourceFile   string           `gorm:"column:source_file;not null"`
	Version      string           `gorm:"column:version;not null"`
}

func (TransactionCleaned) TableName() string {
	return "transaction_cleaned"
}

// NonKeyColumns lists every column refreshed when an upsert hits an existing
// natural key.
func (TransactionCleaned) NonKeyColumns() []string {
	return []string{
		"customer_id", "customer_name", "email", "phone", "country", "state",
		"city", "address", "postal_code", "order_date", "ship_date",
		"ship_mode", "item_name", "quantity", "unit_price", "currency",
		"discount_code", "order_notes", "ingested_at", "source_file", "version",
	}
}
