// Package view maps stored entities to the JSON shapes returned by the API.
package view

import (
	"time"

	"github.com/shopspring/decimal"
	"order_management/constants"
	"order_management/model"
)

type CustomerView struct {
	CustomerId uint    `json:"customer_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Status     string  `json:"status"`
}

type ProductView struct {
	ProductId uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}

type OrderDetailView struct {
	OrderDetailId uint    `json:"order_detail_id"`
	OrderId       uint    `json:"order_id"`
	ProductId     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	PricePerUnit  float64 `json:"price_per_unit"`
	LineTotal     float64 `json:"line_total"`
}

type OrderView struct {
	OrderId      uint              `json:"order_id"`
	CustomerId   uint              `json:"customer_id"`
	CustomerName string            `json:"customer_name"`
	OrderDate    time.Time         `json:"order_date"`
	TotalPrice   float64           `json:"total_price"`
	Details      []OrderDetailView `json:"details"`
}

// Number converts a decimal to a display number with two fraction digits.
func Number(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func Customer(c model.Customer) CustomerView {
	return CustomerView{
		CustomerId: c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Status:     customerStatus(c.Status),
	}
}

func Customers(customers []model.Customer) []CustomerView {
	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, Customer(c))
	}
	return views
}

func Product(p model.Product) ProductView {
	return ProductView{
		ProductId: p.ID,
		Name:      p.Name,
		Price:     Number(p.Price),
		Status:    productStatus(p.Status),
	}
}

func Products(products []model.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, Product(p))
	}
	return views
}

// OrderDetail falls back to "Unknown" when the product relation is not loaded.
func OrderDetail(d model.OrderDetail) OrderDetailView {
	productName := constants.UNKNOWN_NAME
	if d.Product != nil && d.Product.Name != "" {
		productName = d.Product.Name
	}
	return OrderDetailView{
		OrderDetailId: d.ID,
		OrderId:       d.OrderID,
		ProductId:     d.ProductID,
		ProductName:   productName,
		Quantity:      d.Quantity,
		PricePerUnit:  Number(d.PricePerUnit),
		LineTotal:     Number(d.LineTotal()),
	}
}

func OrderDetails(details []model.OrderDetail) []OrderDetailView {
	views := make([]OrderDetailView, 0, len(details))
	for _, d := range details {
		views = append(views, OrderDetail(d))
	}
	return views
}

// Order falls back to "Unknown" when the customer relation is not loaded.
func Order(o model.Order) OrderView {
	customerName := constants.UNKNOWN_NAME
	if o.Customer != nil && o.Customer.Name != "" {
		customerName = o.Customer.Name
	}
	return OrderView{
		OrderId:      o.ID,
		CustomerId:   o.CustomerID,
		CustomerName: customerName,
		OrderDate:    o.OrderDate,
		TotalPrice:   Number(o.TotalPrice),
		Details:      OrderDetails(o.Details),
	}
}

func Orders(orders []model.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, Order(o))
	}
	return views
}

func customerStatus(s model.Status) string {
	switch s {
	case model.StatusActive:
		return "Active"
	case model.StatusInactive:
		return "Inactive"
	}
	return s.String()
}

func productStatus(s model.Status) string {
	switch s {
	case model.StatusActive:
		return "Available"
	case model.StatusInactive:
		return "Unavailable"
	}
	return s.String()
}
