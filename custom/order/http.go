package order

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"order_management/custom/util"
	"order_management/custom/validation"
	"order_management/custom/view"
	"order_management/model"
)

type HandlerContext struct {
	service *Service
}

// OrderRequest carries no total price; it is always derived from the details.
type OrderRequest struct {
	CustomerId uint                     `json:"customer_id"`
	Details    []validation.DetailInput `json:"details"`
}

func (ctx *HandlerContext) InitialHandlerContext(service *Service) {
	ctx.service = service
}

func (ctx *HandlerContext) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/orders")
	group.POST("", ctx.CreateOrder)
	group.GET("", ctx.ListOrders)
	group.GET("/:id", ctx.QueryOrder)
	group.PUT("/:id", ctx.UpdateOrder)
	group.GET("/:id/details", ctx.QueryOrderDetails)
}

// CreateOrder Create a new Order with its details
func (ctx *HandlerContext) CreateOrder(c *gin.Context) {
	req := OrderRequest{}
	if !util.BindJSON(c, &req) {
		return
	}

	newOrder, err := ctx.service.CreateOrder(c.Request.Context(), req.CustomerId, req.Details)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ctx.reload(c, newOrder))
}

// UpdateOrder Replace the customer and details of an order
func (ctx *HandlerContext) UpdateOrder(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}
	req := OrderRequest{}
	if !util.BindJSON(c, &req) {
		return
	}

	updOrder, err := ctx.service.UpdateOrder(c.Request.Context(), id, req.CustomerId, req.Details)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctx.reload(c, updOrder))
}

// reload re-reads a written order so the response carries customer and product names.
func (ctx *HandlerContext) reload(c *gin.Context, written *model.Order) view.OrderView {
	orderInfo, err := ctx.service.GetOrder(c.Request.Context(), written.ID)
	if err != nil {
		rlog.Warnf("Reload order %d failed: %s", written.ID, err.Error())
		return view.Order(*written)
	}
	return *orderInfo
}

func (ctx *HandlerContext) ListOrders(c *gin.Context) {
	orders, err := ctx.service.ListOrders(c.Request.Context())
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// QueryOrder Fetch one order with its details
func (ctx *HandlerContext) QueryOrder(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}

	orderInfo, err := ctx.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderInfo)
}

func (ctx *HandlerContext) QueryOrderDetails(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}

	details, err := ctx.service.GetOrderDetails(c.Request.Context(), id)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
