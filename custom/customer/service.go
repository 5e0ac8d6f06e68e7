package customer

import (
	"order_management/custom/lifecycle"
	"order_management/custom/store"
	"order_management/custom/validation"
	"order_management/model"
)

type Service = lifecycle.Service[model.Customer, *model.Customer]

// Policy keeps inactive customers reachable by id; only listings hide them.
var Policy = lifecycle.Policy[model.Customer]{
	Name: "customer",
	Validate: func(c *model.Customer) error {
		return validation.ValidateCustomer(c.Name, c.Email)
	},
	Fields: func(c *model.Customer) map[string]interface{} {
		return map[string]interface{}{
			"name":  c.Name,
			"email": c.Email,
			"phone": c.Phone,
		}
	},
	MaskInactive: false,
}

func NewService(repo store.Repository[model.Customer]) *Service {
	return lifecycle.NewService[model.Customer, *model.Customer](repo, Policy)
}
