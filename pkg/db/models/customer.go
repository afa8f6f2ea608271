package models

// Customer is the customer dimension, keyed by the upstream customer id.
// Attributes follow a last-write-wins policy: a later load only overwrites
// an attribute when it supplies a non-null value.
type Customer struct {
	CustomerID   string  `gorm:"column:customer_id;primaryKey"`
	CustomerName *string `gorm:"column:customer_name"`
	Email        *string `gorm:"column:email"`
	Phone        *string `gorm:"column:phone"`
	Country      *string `gorm:"column:country"`
	State        *string `gorm:"column:state"`
	City         *string `gorm:"column:city"`
	Address      *string `gorm:"column:address"`
	PostalCode   *string `gorm:"column:postal_code"`
}

func (Customer) TableName() string {
	return "customer"
}
