package store

import (
	"context"

	"gorm.io/gorm"
	"order_management/dal"
	"order_management/model"
)

// Filter selects rows by column equality, e.g. {"status": model.StatusActive}.
type Filter map[string]interface{}

// Repository is the persistence port for single-table entities.
type Repository[T any] interface {
	Insert(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindMany(ctx context.Context, filter Filter) ([]T, error)
	// Update writes fields on row id and returns the stored row.
	// It is a state-set: writing unchanged values succeeds.
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*T, error)
}

// OrderRepository is the persistence port of the order aggregate. The aggregate
// writes run in one transaction: all rows are visible or none are.
type OrderRepository interface {
	CreateAggregate(ctx context.Context, order *model.Order) error
	ReplaceAggregate(ctx context.Context, order *model.Order) error
	FindOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	FindDetails(ctx context.Context, orderId uint) ([]model.OrderDetail, error)
	OrderExists(ctx context.Context, id uint) (bool, error)
}

type GormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) Insert(ctx context.Context, entity *T) error {
	return TranslateError(r.db.WithContext(ctx).Create(entity).Error)
}

func (r *GormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &entity, nil
}

func (r *GormRepository[T]) FindMany(ctx context.Context, filter Filter) ([]T, error) {
	entities := make([]T, 0)
	query := r.db.WithContext(ctx)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if err := query.Order("id").Find(&entities).Error; err != nil {
		return nil, TranslateError(err)
	}
	return entities, nil
}

func (r *GormRepository[T]) Update(ctx context.Context, id uint, fields map[string]interface{}) (*T, error) {
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, TranslateError(gorm.ErrRecordNotFound)
	}
	return r.FindByID(ctx, id)
}

// GormOrderRepository runs the aggregate reads and writes through the generated dal query API.
type GormOrderRepository struct {
	q *dal.Query
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{q: dal.Use(db)}
}

func detailPointers(details []model.OrderDetail) []*model.OrderDetail {
	pointers := make([]*model.OrderDetail, len(details))
	for i := range details {
		pointers[i] = &details[i]
	}
	return pointers
}

// insertDetails attaches details to orderId and writes them with tx.
func insertDetails(ctx context.Context, tx *dal.Query, orderId uint, details []model.OrderDetail) error {
	for i := range details {
		details[i].ID = 0
		details[i].OrderID = orderId
	}
	return tx.OrderDetail.WithContext(ctx).
		Omit(tx.OrderDetail.Product.Field()).
		Create(detailPointers(details)...)
}

func (r *GormOrderRepository) CreateAggregate(ctx context.Context, order *model.Order) error {
	err := r.q.Transaction(func(tx *dal.Query) error {
		details := order.Details
		order.Details = nil
		if err := tx.Order.WithContext(ctx).Omit(tx.Order.Customer.Field()).Create(order); err != nil {
			order.Details = details
			return err
		}
		order.Details = details
		return insertDetails(ctx, tx, order.ID, order.Details)
	})
	return TranslateError(err)
}

func (r *GormOrderRepository) ReplaceAggregate(ctx context.Context, order *model.Order) error {
	err := r.q.Transaction(func(tx *dal.Query) error {
		result, err := tx.Order.WithContext(ctx).Where(tx.Order.ID.Eq(order.ID)).Updates(map[string]interface{}{
			"customer_id": order.CustomerID,
			"total_price": order.TotalPrice,
		})
		if err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if _, err = tx.OrderDetail.WithContext(ctx).Where(tx.OrderDetail.OrderID.Eq(order.ID)).Delete(); err != nil {
			return err
		}
		if err = insertDetails(ctx, tx, order.ID, order.Details); err != nil {
			return err
		}
		stored, err := tx.Order.WithContext(ctx).
			Preload(tx.Order.Details.Order(tx.OrderDetail.ID)).
			Where(tx.Order.ID.Eq(order.ID)).
			First()
		if err != nil {
			return err
		}
		*order = *stored
		return nil
	})
	return TranslateError(err)
}

func (r *GormOrderRepository) FindOrder(ctx context.Context, id uint) (*model.Order, error) {
	o := r.q.Order
	order, err := o.WithContext(ctx).
		Preload(o.Customer, o.Details.Order(r.q.OrderDetail.ID), o.Details.Product).
		Where(o.ID.Eq(id)).
		First()
	if err != nil {
		return nil, TranslateError(err)
	}
	return order, nil
}

func (r *GormOrderRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	o := r.q.Order
	found, err := o.WithContext(ctx).
		Preload(o.Customer, o.Details.Order(r.q.OrderDetail.ID), o.Details.Product).
		Order(o.ID).
		Find()
	if err != nil {
		return nil, TranslateError(err)
	}
	orders := make([]model.Order, 0, len(found))
	for _, order := range found {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindDetails(ctx context.Context, orderId uint) ([]model.OrderDetail, error) {
	d := r.q.OrderDetail
	found, err := d.WithContext(ctx).
		Preload(d.Product).
		Where(d.OrderID.Eq(orderId)).
		Order(d.ID).
		Find()
	if err != nil {
		return nil, TranslateError(err)
	}
	details := make([]model.OrderDetail, 0, len(found))
	for _, detail := range found {
		details = append(details, *detail)
	}
	return details, nil
}

func (r *GormOrderRepository) OrderExists(ctx context.Context, id uint) (bool, error) {
	count, err := r.q.Order.WithContext(ctx).Where(r.q.Order.ID.Eq(id)).Count()
	if err != nil {
		return false, TranslateError(err)
	}
	return count > 0, nil
}
