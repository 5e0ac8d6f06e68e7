package product

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"order_management/custom/util"
	"order_management/custom/validation"
	"order_management/custom/view"
	"order_management/model"
)

type HandlerContext struct {
	service *Service
}

type ProductRequest struct {
	Name   string           `json:"name"`
	Price  *decimal.Decimal `json:"price"`
	Status *model.Status    `json:"status,omitempty"`
}

// toModel rejects a missing price here, the model itself cannot represent one.
func (req ProductRequest) toModel() (*model.Product, error) {
	if err := validation.ValidateProduct(req.Name, req.Price); err != nil {
		return nil, err
	}
	return &model.Product{
		Name:  req.Name,
		Price: *req.Price,
	}, nil
}

func (ctx *HandlerContext) InitialHandlerContext(service *Service) {
	ctx.service = service
}

func (ctx *HandlerContext) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/products")
	group.POST("", ctx.CreateProduct)
	group.GET("", ctx.ListProducts)
	group.GET("/:id", ctx.QueryProduct)
	group.PUT("/:id", ctx.UpdateProduct)
	group.DELETE("/:id", ctx.DeleteProduct)
}

// CreateProduct Create a new product
func (ctx *HandlerContext) CreateProduct(c *gin.Context) {
	req := ProductRequest{}
	if !util.BindJSON(c, &req) {
		return
	}
	newProduct, err := req.toModel()
	if err != nil {
		util.WriteError(c, err)
		return
	}

	created, err := ctx.service.Create(c.Request.Context(), newProduct, req.Status)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view.Product(*created))
}

// ListProducts List available products
func (ctx *HandlerContext) ListProducts(c *gin.Context) {
	products, err := ctx.service.ListActive(c.Request.Context())
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Products(products))
}

// QueryProduct Query product, unavailable ones answer 404
func (ctx *HandlerContext) QueryProduct(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}

	productInfo, err := ctx.service.GetByID(c.Request.Context(), id)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Product(*productInfo))
}

func (ctx *HandlerContext) UpdateProduct(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}
	req := ProductRequest{}
	if !util.BindJSON(c, &req) {
		return
	}
	changes, err := req.toModel()
	if err != nil {
		util.WriteError(c, err)
		return
	}

	updated, err := ctx.service.Update(c.Request.Context(), id, changes, req.Status)
	if err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Product(*updated))
}

func (ctx *HandlerContext) DeleteProduct(c *gin.Context) {
	id, ok := util.ParseID(c, "id")
	if !ok {
		return
	}

	if err := ctx.service.SoftDelete(c.Request.Context(), id); err != nil {
		util.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
