package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/londonlets/api/internal/entity"
	"github.com/londonlets/api/internal/usecase"
)

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockLeadRepo) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *mockLeadRepo) FindAll(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *mockLeadRepo) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func submitRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleSubmit_Success(t *testing.T) {
	repo := new(mockLeadRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := NewLeadHandler(usecase.NewSubmitLeadUseCase(repo, nil, nil))

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, submitRequest(`{"name":"Sarah Johnson","email":"sarah@example.com","interested_in":"rent"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SubmitLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
}

func TestHandleSubmit_InvalidJSON(t *testing.T) {
	repo := new(mockLeadRepo)
	h := NewLeadHandler(usecase.NewSubmitLeadUseCase(repo, nil, nil))

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, submitRequest(`{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleSubmit_ValidationFailure(t *testing.T) {
	repo := new(mockLeadRepo)
	h := NewLeadHandler(usecase.NewSubmitLeadUseCase(repo, nil, nil))

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, submitRequest(`{"email":"sarah@example.com","interested_in":"rent"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp SubmitLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "name is required", resp.Message)
}

func TestHandleSubmit_StoreFailure(t *testing.T) {
	repo := new(mockLeadRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	h := NewLeadHandler(usecase.NewSubmitLeadUseCase(repo, nil, nil))

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, submitRequest(`{"name":"Sarah","email":"sarah@example.com","interested_in":"rent"}`))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other clients are counted separately.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1:1234", getClientIP(req))

	req.Header.Set("X-Real-IP", "2.2.2.2")
	assert.Equal(t, "2.2.2.2", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	assert.Equal(t, "1.1.1.1", getClientIP(req))
}
