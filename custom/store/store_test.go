package store

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"order_management/constants"
	"order_management/custom/util"
	"order_management/custom/util/testutil"
	"order_management/model"
)

var (
	testCustomer = model.Customer{
		ID:     1,
		Name:   "Test Customer",
		Email:  "user@mail.com",
		Phone:  util.GetStringPtr("555-0100"),
		Status: model.StatusActive,
	}
	testProduct = model.Product{
		ID:     1,
		Name:   "test product",
		Price:  decimal.RequireFromString("10.50"),
		Status: model.StatusActive,
	}
)

func TestFindByIDSuccess(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormRepository[model.Customer](gormDB)

	returnData, _ := testutil.ObjectToRows(testCustomer)
	expectedSQL := `^SELECT \* FROM "customers" WHERE id = .* ORDER BY "customers"\."id" LIMIT .*`
	mock.ExpectQuery(expectedSQL).WithArgs(testCustomer.ID, 1).WillReturnRows(returnData)

	customer, err := repo.FindByID(context.Background(), testCustomer.ID)

	assert.Nil(t, mock.ExpectationsWereMet())
	require.NoError(t, err)
	assert.Equal(t, testCustomer.Name, customer.Name)
	assert.Equal(t, testCustomer.Email, customer.Email)
	assert.Equal(t, model.StatusActive, customer.Status)
}

func TestFindByIDNotFound(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormRepository[model.Customer](gormDB)

	expectedSQL := `^SELECT \* FROM "customers" WHERE id = .* LIMIT .*`
	mock.ExpectQuery(expectedSQL).WithArgs(testCustomer.ID, 1).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), testCustomer.ID)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, constants.ErrNotFound, err)
}

func TestFindManyByStatus(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormRepository[model.Product](gormDB)

	returnData, _ := testutil.ObjectToRows(testProduct)
	expectedSQL := `^SELECT \* FROM "products" WHERE "status" = .* ORDER BY id`
	mock.ExpectQuery(expectedSQL).WithArgs(model.StatusActive).WillReturnRows(returnData)

	products, err := repo.FindMany(context.Background(), Filter{"status": model.StatusActive})

	assert.Nil(t, mock.ExpectationsWereMet())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, testProduct.Price.Equal(products[0].Price))
}

func TestInsertSuccess(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormRepository[model.Customer](gormDB)

	insertSQL := `INSERT INTO "customers" .+ VALUES .+`
	mock.ExpectBegin()
	mock.ExpectQuery(insertSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	newCustomer := testCustomer
	newCustomer.ID = 0
	err := repo.Insert(context.Background(), &newCustomer)

	assert.Nil(t, mock.ExpectationsWereMet())
	require.NoError(t, err)
	assert.Equal(t, uint(7), newCustomer.ID)
}

func TestInsertStoreFailure(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormRepository[model.Customer](gormDB)

	insertSQL := `INSERT INTO "customers" .+ VALUES .+`
	mock.ExpectBegin()
	mock.ExpectQuery(insertSQL).WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key"})
	mock.ExpectRollback()

	newCustomer := testCustomer
	newCustomer.ID = 0
	err := repo.Insert(context.Background(), &newCustomer)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, constants.ErrStorePersistence)
}

func TestUpdateNotFound(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormRepository[model.Product](gormDB)

	updateSQL := `UPDATE "products" SET .+ WHERE id = .+`
	mock.ExpectBegin()
	mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.Update(context.Background(), 42, map[string]interface{}{"status": model.StatusInactive})

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, constants.ErrNotFound, err)
}

func TestUpdateSuccess(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormRepository[model.Product](gormDB)

	inactive := testProduct
	inactive.Status = model.StatusInactive
	returnData, _ := testutil.ObjectToRows(inactive)

	updateSQL := `UPDATE "products" SET .+ WHERE id = .+`
	selectSQL := `^SELECT \* FROM "products" WHERE id = .* LIMIT .*`
	mock.ExpectBegin()
	mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(selectSQL).WithArgs(testProduct.ID, 1).WillReturnRows(returnData)

	product, err := repo.Update(context.Background(), testProduct.ID, map[string]interface{}{"status": model.StatusInactive})

	assert.Nil(t, mock.ExpectationsWereMet())
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, product.Status)
}

func TestCreateAggregateCustomerMissing(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormOrderRepository(gormDB)

	insertSQL := `INSERT INTO "orders" .+ VALUES .+`
	mock.ExpectBegin()
	mock.ExpectQuery(insertSQL).WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	order := model.Order{
		CustomerID: 99,
		OrderDate:  time.Now(),
		TotalPrice: decimal.NewFromInt(9),
		Details: []model.OrderDetail{
			{ProductID: 1, Quantity: 1, PricePerUnit: decimal.NewFromInt(9)},
		},
	}
	err := repo.CreateAggregate(context.Background(), &order)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, constants.ErrReferenceNotFound)
	assert.Len(t, order.Details, 1)
}

func TestCreateAggregateSingleTransaction(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders" .+ VALUES .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`INSERT INTO "order_details" .+ VALUES .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))
	mock.ExpectCommit()

	order := model.Order{
		CustomerID: 1,
		OrderDate:  time.Now(),
		TotalPrice: decimal.RequireFromString("26.00"),
		Details: []model.OrderDetail{
			{ProductID: 1, Quantity: 2, PricePerUnit: decimal.RequireFromString("10.50")},
			{ProductID: 2, Quantity: 1, PricePerUnit: decimal.RequireFromString("5.00")},
		},
	}
	err := repo.CreateAggregate(context.Background(), &order)

	assert.Nil(t, mock.ExpectationsWereMet())
	require.NoError(t, err)
	assert.Equal(t, uint(5), order.ID)
	for _, detail := range order.Details {
		assert.Equal(t, uint(5), detail.OrderID)
	}
}

func TestOrderExistsUsesTypedCondition(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormOrderRepository(gormDB)

	countSQL := `^SELECT count\(\*\) FROM "orders" WHERE "orders"\."id" = \$1`
	mock.ExpectQuery(countSQL).WithArgs(5).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(countSQL).WithArgs(6).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.OrderExists(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.OrderExists(context.Background(), 6)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestReplaceAggregateMissingOrderRollsBack(t *testing.T) {
	sqlDB, gormDB, mock := testutil.DbMock(t)
	defer sqlDB.Close()
	repo := NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE "orders"\."id" = .+`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	order := model.Order{
		ID:         42,
		CustomerID: 1,
		TotalPrice: decimal.NewFromInt(9),
		Details:    []model.OrderDetail{{ProductID: 1, Quantity: 1, PricePerUnit: decimal.NewFromInt(9)}},
	}
	err := repo.ReplaceAggregate(context.Background(), &order)

	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, constants.ErrNotFound, err)
}
