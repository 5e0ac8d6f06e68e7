package product

import (
	"order_management/custom/lifecycle"
	"order_management/custom/store"
	"order_management/custom/validation"
	"order_management/model"
)

type Service = lifecycle.Service[model.Product, *model.Product]

// Policy hides unavailable products from direct lookup as well as listings,
// unlike customers.
var Policy = lifecycle.Policy[model.Product]{
	Name: "product",
	Validate: func(p *model.Product) error {
		return validation.ValidateProduct(p.Name, &p.Price)
	},
	Fields: func(p *model.Product) map[string]interface{} {
		return map[string]interface{}{
			"name":  p.Name,
			"price": p.Price,
		}
	},
	MaskInactive: true,
}

func NewService(repo store.Repository[model.Product]) *Service {
	return lifecycle.NewService[model.Product, *model.Product](repo, Policy)
}
