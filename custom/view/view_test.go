package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"order_management/model"
)

func TestOrderUnknownRelations(t *testing.T) {
	order := model.Order{
		ID:         3,
		CustomerID: 9,
		OrderDate:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		TotalPrice: decimal.RequireFromString("26.00"),
		Details: []model.OrderDetail{
			{ID: 1, OrderID: 3, ProductID: 5, Quantity: 2, PricePerUnit: decimal.RequireFromString("10.50")},
			{ID: 2, OrderID: 3, ProductID: 6, Quantity: 1, PricePerUnit: decimal.RequireFromString("5.00"),
				Product: &model.Product{ID: 6, Name: "Ink"}},
		},
	}

	v := Order(order)
	assert.Equal(t, "Unknown", v.CustomerName)
	assert.Equal(t, 26.0, v.TotalPrice)
	assert.Equal(t, "Unknown", v.Details[0].ProductName)
	assert.Equal(t, "Ink", v.Details[1].ProductName)
	assert.Equal(t, 21.0, v.Details[0].LineTotal)
	assert.Equal(t, 10.5, v.Details[0].PricePerUnit)
	assert.Nil(t, order.Customer, "projection must not mutate its input")
}

func TestOrderLineTotalsReconcileWithTotal(t *testing.T) {
	order := model.Order{
		Customer:   &model.Customer{Name: "Alice"},
		TotalPrice: decimal.RequireFromString("0.30"),
		Details: []model.OrderDetail{
			{Quantity: 1, PricePerUnit: decimal.RequireFromString("0.10")},
			{Quantity: 2, PricePerUnit: decimal.RequireFromString("0.10")},
		},
	}
	v := Order(order)

	sum := decimal.Zero
	for _, d := range v.Details {
		sum = sum.Add(decimal.NewFromFloat(d.LineTotal))
	}
	assert.True(t, sum.Equal(order.TotalPrice))
	assert.Equal(t, "Alice", v.CustomerName)
}

func TestOrderEmptyDetails(t *testing.T) {
	v := Order(model.Order{})
	assert.NotNil(t, v.Details)
	assert.Empty(t, v.Details)
	assert.Empty(t, Orders(nil))
}

func TestCustomerAndProduct(t *testing.T) {
	c := Customer(model.Customer{ID: 1, Name: "Alice", Email: "a@b.co", Status: model.StatusInactive})
	assert.Equal(t, "Inactive", c.Status)
	assert.Nil(t, c.Phone)

	p := Product(model.Product{ID: 2, Name: "Pen", Price: decimal.RequireFromString("1.005"), Status: model.StatusActive})
	assert.Equal(t, "Available", p.Status)
	assert.Equal(t, 1.01, p.Price)

	assert.Len(t, Products([]model.Product{{}, {}}), 2)
	assert.Len(t, Customers([]model.Customer{{}}), 1)
}
