package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"order_management/constants"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.True(t, IsEmail("user.name@mail.example.com"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("a b@c.de"))
	assert.False(t, IsEmail("a@@b.co"))
}

func TestValidateCustomer(t *testing.T) {
	assert.NoError(t, ValidateCustomer("Alice", "a@b.co"))

	err := ValidateCustomer("", "a@b.co")
	assert.ErrorIs(t, err, constants.ErrMissingField)

	err = ValidateCustomer("Alice", "")
	assert.ErrorIs(t, err, constants.ErrMissingField)

	err = ValidateCustomer("   ", "a@b.co")
	assert.ErrorIs(t, err, constants.ErrMissingField)

	err = ValidateCustomer("Alice", "a@b")
	assert.ErrorIs(t, err, constants.ErrInvalidEmailFormat)
}

func TestValidateProduct(t *testing.T) {
	assert.NoError(t, ValidateProduct("Pen", decimalPtr("1.50")))
	assert.NoError(t, ValidateProduct("Free sample", decimalPtr("0")))

	assert.ErrorIs(t, ValidateProduct("", decimalPtr("1")), constants.ErrMissingField)
	assert.ErrorIs(t, ValidateProduct("Pen", nil), constants.ErrInvalidPrice)
	assert.ErrorIs(t, ValidateProduct("Pen", decimalPtr("-0.01")), constants.ErrInvalidPrice)
}

func TestValidateProductSubCentPrice(t *testing.T) {
	assert.NoError(t, ValidateProduct("Pen", decimalPtr("1.500")))
	assert.ErrorIs(t, ValidateProduct("Pen", decimalPtr("0.333")), constants.ErrInvalidPrice)
	assert.ErrorIs(t, ValidateProduct("Pen", decimalPtr("19.999")), constants.ErrInvalidPrice)
}

func TestValidateOrderRequest(t *testing.T) {
	details := []DetailInput{{ProductId: 1, Quantity: 2, PricePerUnit: decimalPtr("10.50")}}
	assert.NoError(t, ValidateOrderRequest(1, details))

	assert.ErrorIs(t, ValidateOrderRequest(0, details), constants.ErrMissingField)
	assert.ErrorIs(t, ValidateOrderRequest(1, nil), constants.ErrMissingField)
	assert.ErrorIs(t, ValidateOrderRequest(1, []DetailInput{}), constants.ErrMissingField)

	// trailing zeros beyond the cent are still whole cents
	assert.NoError(t, ValidateOrderRequest(1, []DetailInput{{ProductId: 1, Quantity: 3, PricePerUnit: decimalPtr("0.330")}}))
}

func TestValidateOrderRequestLineItems(t *testing.T) {
	cases := []struct {
		name   string
		detail DetailInput
		want   error
	}{
		{"missing product", DetailInput{Quantity: 1, PricePerUnit: decimalPtr("1")}, constants.ErrMissingField},
		{"zero quantity", DetailInput{ProductId: 1, PricePerUnit: decimalPtr("1")}, constants.ErrInvalidQuantity},
		{"negative quantity", DetailInput{ProductId: 1, Quantity: -1, PricePerUnit: decimalPtr("1")}, constants.ErrInvalidQuantity},
		{"missing price", DetailInput{ProductId: 1, Quantity: 1}, constants.ErrInvalidPrice},
		{"negative price", DetailInput{ProductId: 1, Quantity: 1, PricePerUnit: decimalPtr("-3")}, constants.ErrInvalidPrice},
		{"sub-cent price", DetailInput{ProductId: 1, Quantity: 3, PricePerUnit: decimalPtr("0.333")}, constants.ErrInvalidPrice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateOrderRequest(1, []DetailInput{c.detail})
			assert.ErrorIs(t, err, c.want)
			assert.True(t, constants.IsValidationError(err))
		})
	}
}
