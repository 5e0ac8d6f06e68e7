package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"order_management/custom/util"
	"order_management/custom/view"
	"order_management/model"
)

type HandlerContext struct {
	service *Service
}

type CustomerRequest struct {
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Phone  *string       `json:"phone,omitempty"`
	Status *model.Status `json:"status,omitempty"`
}

func (req CustomerRequest) toModel() *model.Customer {
	return &model.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
}

func (ctx *HandlerContext) InitialHandlerContext(service *Service) {
	ctx.service = service
}

func (ctx *HandlerContext) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/customers")
	group.POST("", ctx.CreateCustomer)
	group.GET("", ctx.ListCustomers)
	group.GET("/:id", ctx.QueryCustomer)
	group.PUT("/:id", ctx.UpdateCustomer)
	group.DELETE("/:id", ctx.DeleteCustomer)
}

// CreateCustomer Create a new customer
func (ctx *HandlerContext) CreateCustomer(c *gin.Context) {
	req := CustomerRequest{}
	if !util.BindJSON(c, &req) {
		return
	}

	created, err := ctx.service.Create(c.Request.Context(), req.toModel(), req.Status)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view.Customer(*created))
}

// ListCustomers List active customers
func (ctx *HandlerContext) ListCustomers(c *gin.Context) {
	customers, err := ctx.service.ListActive(c.Request.Context())
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Customers(customers))
}

// QueryCustomer Query customer, inactive ones included
func (ctx *HandlerContext) QueryCustomer(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}

	customerInfo, err := ctx.service.GetByID(c.Request.Context(), id)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Customer(*customerInfo))
}

func (ctx *HandlerContext) UpdateCustomer(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}
	req := CustomerRequest{}
	if !util.BindJSON(c, &req) {
		return
	}

	updated, err := ctx.service.Update(c.Request.Context(), id, req.toModel(), req.Status)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Customer(*updated))
}

// DeleteCustomer Soft delete, the row stays with status inactive
func (ctx *HandlerContext) DeleteCustomer(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}

	if err := ctx.service.SoftDelete(c.Request.Context(), id); err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
