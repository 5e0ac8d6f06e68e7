package model

import (
	"time"

	"github.com/shopspring/decimal"
)

var AllTables []interface{} = []interface{}{
	Customer{}, Product{}, Order{}, OrderDetail{},
}

// Status is the soft-delete flag shared by customers and products.
type Status int8

const (
	StatusInactive = Status(0)
	StatusActive   = Status(1)
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusInactive:
		return "INACTIVE"
	}
	return "UNKNOWN"
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

func StatusPtr(s Status) *Status {
	return &s
}

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"index;not null"`
	Phone     *string   `json:"phone,omitempty"`
	Status    Status    `json:"status" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdTime"`
	UpdatedAt time.Time `json:"updatedTime"`
}

func (c *Customer) GetID() uint        { return c.ID }
func (c *Customer) GetStatus() Status  { return c.Status }
func (c *Customer) SetStatus(s Status) { c.Status = s }

type Product struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Status    Status          `json:"status" gorm:"index;not null"`
	CreatedAt time.Time       `json:"createdTime"`
	UpdatedAt time.Time       `json:"updatedTime"`
}

func (p *Product) GetID() uint        { return p.ID }
func (p *Product) GetStatus() Status  { return p.Status }
func (p *Product) SetStatus(s Status) { p.Status = s }

// Order owns its details; TotalPrice is always derived from them.
type Order struct {
	ID         uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint            `json:"customer_id" gorm:"index;not null"`
	Customer   *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	OrderDate  time.Time       `json:"order_date" gorm:"not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Details    []OrderDetail   `json:"details,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `json:"createdTime"`
	UpdatedAt  time.Time       `json:"updatedTime"`
}

// OrderDetail is one line item. PricePerUnit is a snapshot taken at write time.
type OrderDetail struct {
	ID           uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID      uint            `json:"order_id" gorm:"index;not null"`
	ProductID    uint            `json:"product_id" gorm:"index;not null"`
	Product      *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" gorm:"type:decimal(10,2);not null"`
}

// LineTotal is Quantity * PricePerUnit.
func (d OrderDetail) LineTotal() decimal.Decimal {
	return d.PricePerUnit.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
