package models

// OrderInfo is the order header, keyed by order id. When several clean lines
// share an order, the later line's header fields win.
type OrderInfo struct {
	OrderID      string  `gorm:"column:order_id;primaryKey"`
	CustomerID   *string `gorm:"column:customer_id"`
	OrderDate    *string `gorm:"column:order_date"`
	ShipDate     *string `gorm:"column:ship_date"`
	ShipMode     *string `gorm:"column:ship_mode"`
	DiscountCode *string `gorm:"column:discount_code"`
	OrderNotes   *string `gorm:"column:order_notes"`
}

func (OrderInfo) TableName() string {
	return "order_info"
}
