package models

// Product is the product dimension, keyed by SKU.
type Product struct {
	ItemSKU  string  `gorm:"column:item_sku;primaryKey"`
	ItemName *string `gorm:"column:item_name"`
}

func (Product) TableName() string {
	return "product"
}
