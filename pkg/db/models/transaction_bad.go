package models

// TransactionBad is one rejected input row: the original raw field values as
// JSON plus the serialized reason-code list. Append-only.
type TransactionBad struct {
	OrderID      *string `gorm:"column:order_id"`
	ItemSKU      *string `gorm:"column:item_sku"`
	ErrorReasons string  `gorm:"column:error_reasons;not null"`
	RawRowJSON   string  `gorm:"column:raw_row_json;not null"`
	IngestedAt   string  `gorm:"column:ingested_at;not null"`
	SourceFile   string  `gorm:"column:source_file;not null"`
	Version      string  `gorm:"column:version;not null"`
}

func (TransactionBad) TableName() string {
	return "transaction_bad"
}
