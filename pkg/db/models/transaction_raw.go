package models

// TransactionRaw is the untouched textual copy of one input row plus
// ingestion metadata. Append-only; duplicates across runs are expected,
// so there is no primary key.
type TransactionRaw struct {
	OrderID      *string `gorm:"column:order_id"`
	CustomerID   *string `gorm:"column:customer_id"`
	CustomerName *string `gorm:"column:customer_name"`
	Email        *string `gorm:"column:email"`
	Phone        *string `gorm:"column:phone"`
	Country      *string `gorm:"column:country"`
	State        *string `gorm:"column:state"`
	City         *string `gorm:"column:city"`
	Address      *string `gorm:"column:address"`
	PostalCode   *string `gorm:"column:postal_code"`
	OrderDate    *string `gorm:"column:order_date"`
	ShipDate     *string `gorm:"column:ship_date"`
	ShipMode     *string `gorm:"column:ship_mode"`
	ItemSKU      *string `gorm:"column:item_sku"`
	ItemName     *string `gorm:"column:item_name"`
	Quantity     *string `gorm:"column:quantity"`
	UnitPrice    *string `gorm:"column:unit_price"`
	Currency     *string `gorm:"column:currency"`
	DiscountCode *string `gorm:"column:discount_code"`
	OrderNotes   *string `gorm:"column:order_notes"`
	IngestedAt   string  `gorm:"column:ingested_at;not null"`
	SourceFile   string  `gorm:"column:source_file;not null"`
	Version      string  `gorm:"column:version;not null"`
}

func (TransactionRaw) TableName() string {
	return "transaction_raw"
}
