package ingest

import (
	"github.com/angelmondragon/orderflow-etl/pkg/db/models"
)

// Derive builds the dimension and fact rows for one clean batch, in
// first-seen order. Later lines for the same customer, product, or order
// header win; for customer and product attributes only a non-null value
// overwrites an earlier one. Lines without a customer id derive no customer
// row: a name alone is not an identity.
func Derive(clean []models.TransactionCleaned) (
	customers []models.Customer,
	products []models.Product,
	orders []models.OrderInfo,
	details []models.OrderDetail,
) {
	customerIdx := make(map[string]int)
	productIdx := make(map[string]int)
	orderIdx := make(map[string]int)

	for _, line := range clean {
		if line.CustomerID != nil {
			if i, ok := customerIdx[*line.CustomerID]; ok {
				mergeCustomer(&customers[i], line)
			} else {
				customerIdx[*line.CustomerID] = len(customers)
				customers = append(customers, models.Customer{
					CustomerID:   *line.CustomerID,
					CustomerName: line.CustomerName,
					Email:        line.Email,
					Phone:        line.Phone,
					Country:      line.Country,
					State:        line.State,
					City:         line.City,
					Address:      line.Address,
					PostalCode:   line.PostalCode,
				})
			}
		}

		if i, ok := productIdx[line.ItemSKU]; ok {
			if line.ItemName != nil {
				products[i].ItemName = line.ItemName
			}
		} else {
			productIdx[line.ItemSKU] = len(products)
			products = append(products, models.Product{
				ItemSKU:  line.ItemSKU,
				ItemName: line.ItemName,
			})
		}

		header := models.OrderInfo{
			OrderID:      line.OrderID,
			CustomerID:   line.CustomerID,
			OrderDate:    line.OrderDate,
			ShipDate:     line.ShipDate,
			ShipMode:     line.ShipMode,
			DiscountCode: line.DiscountCode,
			OrderNotes:   line.OrderNotes,
		}
		if i, ok := orderIdx[line.OrderID]; ok {
			orders[i] = header
		} else {
			orderIdx[line.OrderID] = len(orders)
			orders = append(orders, header)
		}

		details = append(details, models.OrderDetail{
			OrderID:   line.OrderID,
			ItemSKU:   line.ItemSKU,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Currency:  line.Currency,
		})
	}

	return customers, products, orders, details
}

func mergeCustomer(existing *models.Customer, line models.TransactionCleaned) {
	if line.CustomerName != nil {
		existing.CustomerName = line.CustomerName
	}
	if line.Email != nil {
		existing.Email = line.Email
	}
	if line.Phone != nil {
		existing.Phone = line.Phone
	}
	if line.Country != nil {
		existing.Country = line.Country
	}
	if line.State != nil {
		existing.State = line.State
	}
	if line.City != nil {
		existing.City = line.City
	}
	if line.Address != nil {
		existing.Address = line.Address
	}
	if line.PostalCode != nil {
		existing.PostalCode = line.PostalCode
	}
}
