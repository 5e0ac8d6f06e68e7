package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"order_management/constants"
	"order_management/custom/store"
	"order_management/custom/util"
	"order_management/custom/util/testutil"
	"order_management/custom/view"
	"order_management/model"
)

var (
	testCustomer = CustomerRequest{
		Name:  "Test Customer",
		Email: "user@mail.com",
		Phone: util.GetStringPtr("555-0100"),
	}
)

func setupService(t *testing.T) *Service {
	db := testutil.SqliteDB(t)
	return NewService(store.NewGormRepository[model.Customer](db))
}

func setupRouter(t *testing.T) (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	service := setupService(t)
	handlerCtx := HandlerContext{}
	handlerCtx.InitialHandlerContext(service)
	router := gin.New()
	handlerCtx.RegisterRoutes(router)
	return router, service
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	reqBody, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, url, bytes.NewBuffer(reqBody))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)
	return w
}

func TestSoftDeletedCustomerStillFetchable(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, testCustomer.toModel(), nil)
	require.NoError(t, err)
	require.NoError(t, service.SoftDelete(ctx, created.ID))

	active, err := service.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	found, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, found.Status)
}

func TestSoftDeleteTwiceKeepsInactive(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, testCustomer.toModel(), nil)
	require.NoError(t, err)
	require.NoError(t, service.SoftDelete(ctx, created.ID))
	require.NoError(t, service.SoftDelete(ctx, created.ID))

	found, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, found.Status)
	assert.Equal(t, constants.ErrNotFound, service.SoftDelete(ctx, created.ID+100))
}

func TestUpdateCustomerClearsPhone(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, testCustomer.toModel(), nil)
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, &model.Customer{Name: "Renamed", Email: "new@mail.com"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "new@mail.com", updated.Email)
	assert.Nil(t, updated.Phone)
	assert.Equal(t, model.StatusActive, updated.Status)
}

func TestCreateCustomerSuccess(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/customers", testCustomer)

	actualResp := view.CustomerView{}
	json.Unmarshal(w.Body.Bytes(), &actualResp)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotZero(t, actualResp.CustomerId)
	assert.Equal(t, testCustomer.Name, actualResp.Name)
	assert.Equal(t, "Active", actualResp.Status)
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	router, _ := setupRouter(t)

	req := testCustomer
	req.Email = "a@b"
	w := doRequest(router, http.MethodPost, "/customers", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), constants.INVALID_EMAIL_FORMAT)
}

func TestCreateCustomerMissingName(t *testing.T) {
	router, _ := setupRouter(t)

	req := testCustomer
	req.Name = ""
	w := doRequest(router, http.MethodPost, "/customers", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), constants.MISSING_FIELD)
}

func TestCreateCustomerBadBody(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString("{not json"))
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryCustomerNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQueryCustomerInvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/customers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCustomerFlow(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/customers", testCustomer)
	require.Equal(t, http.StatusCreated, w.Code)
	created := view.CustomerView{}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doRequest(router, http.MethodDelete, "/customers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/customers", nil)
	listed := []view.CustomerView{}
	json.Unmarshal(w.Body.Bytes(), &listed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, listed)

	w = doRequest(router, http.MethodGet, "/customers/1", nil)
	fetched := view.CustomerView{}
	json.Unmarshal(w.Body.Bytes(), &fetched)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.CustomerId, fetched.CustomerId)
	assert.Equal(t, "Inactive", fetched.Status)

	w = doRequest(router, http.MethodPut, "/customers/1", testCustomer)
	updated := view.CustomerView{}
	json.Unmarshal(w.Body.Bytes(), &updated)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Active", updated.Status)
}
