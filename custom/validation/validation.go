package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"order_management/constants"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DetailInput is one requested line item of an order.
type DetailInput struct {
	ProductId    uint             `json:"product_id"`
	Quantity     int              `json:"quantity"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

// MoneyPlaces is the scale of every stored money column.
const MoneyPlaces = 2

func IsEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isMoney reports whether price is stored as given, with no rounding to MoneyPlaces.
func isMoney(price decimal.Decimal) bool {
	return price.Equal(price.Round(MoneyPlaces))
}

func ValidateCustomer(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", constants.ErrMissingField)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email", constants.ErrMissingField)
	}
	if !IsEmail(email) {
		return fmt.Errorf("%w: %q", constants.ErrInvalidEmailFormat, email)
	}
	return nil
}

func ValidateProduct(name string, price *decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", constants.ErrMissingField)
	}
	if price == nil {
		return fmt.Errorf("%w: price is required", constants.ErrInvalidPrice)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: %s is negative", constants.ErrInvalidPrice, price.String())
	}
	if !isMoney(*price) {
		return fmt.Errorf("%w: %s has more than %d decimal places", constants.ErrInvalidPrice, price.String(), MoneyPlaces)
	}
	return nil
}

// ValidateOrderRequest checks the order header and every line item.
func ValidateOrderRequest(customerId uint, details []DetailInput) error {
	if customerId == 0 {
		return fmt.Errorf("%w: customer_id", constants.ErrMissingField)
	}
	if len(details) == 0 {
		return fmt.Errorf("%w: details", constants.ErrMissingField)
	}
	for i, detail := range details {
		if detail.ProductId == 0 {
			return fmt.Errorf("%w: details[%d].product_id", constants.ErrMissingField, i)
		}
		if detail.Quantity <= 0 {
			return fmt.Errorf("%w: details[%d].quantity must be positive", constants.ErrInvalidQuantity, i)
		}
		if detail.PricePerUnit == nil {
			return fmt.Errorf("%w: details[%d].price_per_unit is required", constants.ErrInvalidPrice, i)
		}
		if detail.PricePerUnit.IsNegative() {
			return fmt.Errorf("%w: details[%d].price_per_unit is negative", constants.ErrInvalidPrice, i)
		}
		if !isMoney(*detail.PricePerUnit) {
			return fmt.Errorf("%w: details[%d].price_per_unit has more than %d decimal places", constants.ErrInvalidPrice, i, MoneyPlaces)
		}
	}
	return nil
}
