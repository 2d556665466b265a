package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerUsecase struct {
	customer *entity.Customer
	err      error

	gotInput     *usecase.UpdateCustomerInput
	gotRelations []string
}

func (f *fakeCustomerUsecase) GetCustomer(ctx context.Context, id uuid.UUID, relations []string) (*entity.Customer, error) {
	f.gotRelations = relations

	return f.customer, f.err
}

func (f *fakeCustomerUsecase) UpdateCustomer(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerInput, relations []string) (*entity.Customer, error) {
	f.gotInput = input
	f.gotRelations = relations

	return f.customer, f.err
}

func newHandlerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUpdateCustomer_ReturnsEntityEnvelope(t *testing.T) {
	customerID := uuid.New()
	uc := &fakeCustomerUsecase{customer: &entity.Customer{ID: customerID, Email: "jane@example.com"}}
	h := NewCustomerHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newHandlerContext(t, http.MethodPost, "/admin/customers/"+customerID.String(), `{"first_name":"Janet"}`)
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())

	require.NoError(t, h.UpdateCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Contains(t, envelope, "customer")
	assert.Len(t, envelope, 1)

	require.NotNil(t, uc.gotInput)
	require.NotNil(t, uc.gotInput.FirstName)
	assert.Equal(t, "Janet", *uc.gotInput.FirstName)
	assert.Equal(t, entity.DefaultCustomerRelations, uc.gotRelations)
}

func TestUpdateCustomer_ForwardsExpandList(t *testing.T) {
	customerID := uuid.New()
	uc := &fakeCustomerUsecase{customer: &entity.Customer{ID: customerID}}
	h := NewCustomerHandler(uc, slog.New(slog.DiscardHandler))

	c, _ := newHandlerContext(t, http.MethodPost, "/admin/customers/"+customerID.String()+"?expand=groups", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())

	require.NoError(t, h.UpdateCustomer(c))
	assert.Equal(t, []string{"groups"}, uc.gotRelations)
}

func TestUpdateCustomer_UnknownExpandRejected(t *testing.T) {
	customerID := uuid.New()
	uc := &fakeCustomerUsecase{}
	h := NewCustomerHandler(uc, slog.New(slog.DiscardHandler))

	c, _ := newHandlerContext(t, http.MethodPost, "/admin/customers/"+customerID.String()+"?expand=orders", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())

	err := h.UpdateCustomer(c)
	require.Error(t, err)
	assert.Nil(t, uc.gotInput)
}

func TestUpdateCustomer_InvalidEmailFailsValidation(t *testing.T) {
	customerID := uuid.New()
	uc := &fakeCustomerUsecase{}
	h := NewCustomerHandler(uc, slog.New(slog.DiscardHandler))

	c, _ := newHandlerContext(t, http.MethodPost, "/admin/customers/"+customerID.String(), `{"email":"not-an-email"}`)
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())

	err := h.UpdateCustomer(c)
	require.Error(t, err)
	assert.Nil(t, uc.gotInput)
}

func TestUpdateCustomer_InvalidIDReturns400(t *testing.T) {
	uc := &fakeCustomerUsecase{}
	h := NewCustomerHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newHandlerContext(t, http.MethodPost, "/admin/customers/not-a-uuid", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.UpdateCustomer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCustomer_ReturnsEntityEnvelope(t *testing.T) {
	customerID := uuid.New()
	uc := &fakeCustomerUsecase{customer: &entity.Customer{ID: customerID}}
	h := NewCustomerHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newHandlerContext(t, http.MethodGet, "/admin/customers/"+customerID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())

	require.NoError(t, h.GetCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Contains(t, envelope, "customer")
}

// The serialized customer must never leak the password hash.
func TestCustomerSerialization_OmitsPasswordHash(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "secret"}

	raw, err := json.Marshal(customer)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}
