package order

import (
	"context"
	"time"

	"github.com/romana/rlog"
	"github.com/shopspring/decimal"
	"order_management/constants"
	"order_management/custom/store"
	"order_management/custom/validation"
	"order_management/custom/view"
	"order_management/model"
)

// Service composes orders with their details and keeps TotalPrice derived from them.
type Service struct {
	repo store.OrderRepository
	now  func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of order dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo store.OrderRepository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TotalPrice sums quantity * price per unit over details.
func TotalPrice(details []validation.DetailInput) decimal.Decimal {
	total := decimal.Zero
	for _, detail := range details {
		total = total.Add(detail.PricePerUnit.Mul(decimal.NewFromInt(int64(detail.Quantity))))
	}
	return total
}

func toDetails(inputs []validation.DetailInput) []model.OrderDetail {
	details := make([]model.OrderDetail, 0, len(inputs))
	for _, input := range inputs {
		details = append(details, model.OrderDetail{
			ProductID:    input.ProductId,
			Quantity:     input.Quantity,
			PricePerUnit: *input.PricePerUnit,
		})
	}
	return details
}

func (s *Service) CreateOrder(ctx context.Context, customerId uint, details []validation.DetailInput) (*model.Order, error) {
	if err := validation.ValidateOrderRequest(customerId, details); err != nil {
		return nil, err
	}

	newOrder := model.Order{
		CustomerID: customerId,
		OrderDate:  s.now(),
		TotalPrice: TotalPrice(details),
		Details:    toDetails(details),
	}
	if err := s.repo.CreateAggregate(ctx, &newOrder); err != nil {
		return nil, err
	}

	rlog.Infof("Order %d created with %d details, total %s", newOrder.ID, len(newOrder.Details), newOrder.TotalPrice.StringFixed(2))
	return &newOrder, nil
}

// UpdateOrder replaces the customer and the whole detail set of order orderId.
func (s *Service) UpdateOrder(ctx context.Context, orderId uint, customerId uint, details []validation.DetailInput) (*model.Order, error) {
	if err := validation.ValidateOrderRequest(customerId, details); err != nil {
		return nil, err
	}

	updOrder := model.Order{
		ID:         orderId,
		CustomerID: customerId,
		TotalPrice: TotalPrice(details),
		Details:    toDetails(details),
	}
	if err := s.repo.ReplaceAggregate(ctx, &updOrder); err != nil {
		return nil, err
	}

	rlog.Infof("Order %d replaced with %d details, total %s", updOrder.ID, len(updOrder.Details), updOrder.TotalPrice.StringFixed(2))
	return &updOrder, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]view.OrderView, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return view.Orders(orders), nil
}

func (s *Service) GetOrder(ctx context.Context, orderId uint) (*view.OrderView, error) {
	orderInfo, err := s.repo.FindOrder(ctx, orderId)
	if err != nil {
		return nil, err
	}
	orderView := view.Order(*orderInfo)
	return &orderView, nil
}

// GetOrderDetails answers ErrNotFound only when the order row itself is missing;
// an existing order without details yields an empty list.
func (s *Service) GetOrderDetails(ctx context.Context, orderId uint) ([]view.OrderDetailView, error) {
	exists, err := s.repo.OrderExists(ctx, orderId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, constants.ErrNotFound
	}

	details, err := s.repo.FindDetails(ctx, orderId)
	if err != nil {
		return nil, err
	}
	return view.OrderDetails(details), nil
}
