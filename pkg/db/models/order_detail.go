package models

import "github.com/shopspring/decimal"

// OrderDetail is the fact row for one order line.
type OrderDetail struct {
	OrderID   string           `gorm:"column:order_id;primaryKey"`
	ItemSKU   string           `gorm:"column:item_sku;primaryKey"`
	Quantity  *int64           `gorm:"column:quantity"`
	UnitPrice *decimal.Decimal `gorm:"column:unit_price;type:numeric"`
	Currency  *string          `gorm:"column:currency"`
}

func (OrderDetail) TableName() string {
	return "order_detail"
}
