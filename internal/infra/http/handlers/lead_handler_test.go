package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/xavierca1/leadtrack/internal/entity"
	"github.com/xavierca1/leadtrack/internal/infra/database"
	"github.com/xavierca1/leadtrack/internal/usecase"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func newLeadHandler(repo entity.LeadRepositoryInterface) *LeadHandler {
	logger := zap.NewNop()
	return NewLeadHandler(
		usecase.NewCreateLeadUseCase(repo, nil, logger),
		usecase.NewListLeadsUseCase(repo, logger),
	)
}

func postLead(t *testing.T, h *LeadHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.HandleCreate(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp messageResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Message
}

func TestCreateLeadHandlerSuccess(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	h := newLeadHandler(repo)

	w := postLead(t, h, `{"name":"Jane Doe","email":"JANE@X.COM"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var lead entity.Lead
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "jane@x.com", lead.Email)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestCreateLeadHandlerDuplicateEmail(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	h := newLeadHandler(repo)

	assert.Equal(t, http.StatusCreated, postLead(t, h, `{"name":"Jane","email":"jane@x.com"}`).Code)

	w := postLead(t, h, `{"name":"Other","email":" jane@x.com "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decodeMessage(t, w))
	assert.Equal(t, 1, repo.Count())
}

func TestCreateLeadHandlerMissingFields(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	h := newLeadHandler(repo)

	w := postLead(t, h, `{"name":"","email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and email are required", decodeMessage(t, w))
	assert.Equal(t, 0, repo.Count())
}

func TestCreateLeadHandlerInvalidStatus(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	h := newLeadHandler(repo)

	w := postLead(t, h, `{"name":"A","email":"a@b.com","status":"Bogus"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "`Bogus` is not a valid status", decodeMessage(t, w))
	assert.Equal(t, 0, repo.Count())
}

func TestCreateLeadHandlerInvalidJSON(t *testing.T) {
	h := newLeadHandler(database.NewMemoryLeadRepository())

	w := postLead(t, h, `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON", decodeMessage(t, w))
}

func TestCreateLeadHandlerStoreFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByEmail", mock.Anything, "a@b.com").Return(nil, entity.ErrLeadNotFound)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("write concern error"))

	h := newLeadHandler(repo)

	w := postLead(t, h, `{"name":"A","email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to create lead", decodeMessage(t, w))
}

func TestListLeadsHandlerEmptyStore(t *testing.T) {
	h := newLeadHandler(database.NewMemoryLeadRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	w := httptest.NewRecorder()
	h.HandleList(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListLeadsHandlerNewestFirst(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	h := newLeadHandler(repo)
	ctx := context.Background()

	base := time.Now().UTC()
	first := entity.NewLead("First", "first@x.com", "")
	first.CreatedAt = base
	second := entity.NewLead("Second", "second@x.com", "")
	second.CreatedAt = base.Add(time.Minute)
	assert.NoError(t, repo.Insert(ctx, first))
	assert.NoError(t, repo.Insert(ctx, second))

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	w := httptest.NewRecorder()
	h.HandleList(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var leads []entity.Lead
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&leads))
	assert.Len(t, leads, 2)
	assert.Equal(t, "second@x.com", leads[0].Email)
	assert.Equal(t, "first@x.com", leads[1].Email)
}

func TestListLeadsHandlerStoreFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindAll", mock.Anything).Return(nil, errors.New("no reachable servers"))

	h := newLeadHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	w := httptest.NewRecorder()
	h.HandleList(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to retrieve leads", decodeMessage(t, w))
}

func TestCreateThenListRoundTrip(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	h := newLeadHandler(repo)

	w := postLead(t, h, `{"name":"Jane Doe","email":"jane@x.com","status":"Engaged"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created entity.Lead
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	lw := httptest.NewRecorder()
	h.HandleList(lw, req)

	var leads []entity.Lead
	assert.NoError(t, json.NewDecoder(lw.Body).Decode(&leads))
	assert.Len(t, leads, 1)
	assert.Equal(t, created, leads[0])
}
