package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server/store"
)

func TestPendingReportersRequiresAdmin(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	// no token
	rec := doJSON(srv, http.MethodGet, "/api/admin/requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// reporter token
	rec = doJSON(srv, http.MethodGet, "/api/admin/requests", bearerToken(t, 7, model.RoleReporter), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admins only", decodeMsg(t, rec))

	accounts.AssertNotCalled(t, "PendingReporters")
}

func TestPendingReporters(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	now := time.Now()
	accounts.On("PendingReporters").Return([]model.Account{
		{
			ID: 2, Name: "Alice", Email: "alice@example.com",
			Role: model.RoleReporter, PhoneNumber: "555-0100",
			CitizenshipNumber: "C-12345",
			ProfilePhotoURL:   "https://cdn.example.com/alice.jpg",
			IDCardURL:         "https://cdn.example.com/alice-id.jpg",
			CreatedAt:         now,
		},
	}, nil)

	rec := doJSON(srv, http.MethodGet, "/api/admin/requests", bearerToken(t, 1, model.RoleAdmin), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0]["name"])
	assert.Equal(t, "C-12345", list[0]["citizenship_number"])
	assert.Equal(t, "https://cdn.example.com/alice-id.jpg", list[0]["reporter_id_card_url"])
	assert.NotEmpty(t, list[0]["created_at"])
}

func TestReporterDetails(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("ByID", int64(2)).Return(&model.Account{
		ID: 2, Name: "Alice", Email: "alice@example.com",
		Role: model.RoleReporter, IsApproved: true,
	}, nil)

	rec := doJSON(srv, http.MethodGet, "/api/admin/user/2", bearerToken(t, 1, model.RoleAdmin), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeObject(t, rec)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, true, body["is_approved"])
}

func TestReporterDetailsNotFound(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("ByID", int64(99)).Return(nil, store.ErrAccountNotFound)

	rec := doJSON(srv, http.MethodGet, "/api/admin/user/99", bearerToken(t, 1, model.RoleAdmin), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeMsg(t, rec))
}

func TestReporterDetailsNotAReporter(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("ByID", int64(1)).Return(&model.Account{
		ID: 1, Name: "Root", Role: model.RoleAdmin,
	}, nil)

	rec := doJSON(srv, http.MethodGet, "/api/admin/user/1", bearerToken(t, 1, model.RoleAdmin), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User is not a reporter", decodeMsg(t, rec))
}

func TestApproveReporter(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("Approve", int64(2)).Return("2026-AB12", nil)

	rec := doJSON(srv, http.MethodPost, "/api/admin/approve", bearerToken(t, 1, model.RoleAdmin),
		map[string]interface{}{"user_id": 2})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeObject(t, rec)
	assert.Equal(t, "Reporter approved", body["msg"])
	assert.Equal(t, "2026-AB12", body["license_key"])
	accounts.AssertExpectations(t)
}

func TestApproveMissingUserID(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	rec := doJSON(srv, http.MethodPost, "/api/admin/approve", bearerToken(t, 1, model.RoleAdmin),
		map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user_id is required", decodeMsg(t, rec))
	accounts.AssertNotCalled(t, "Approve", mock.Anything)
}

func TestApproveUnknownUser(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("Approve", int64(99)).Return("", store.ErrAccountNotFound)

	rec := doJSON(srv, http.MethodPost, "/api/admin/approve", bearerToken(t, 1, model.RoleAdmin),
		map[string]interface{}{"user_id": 99})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeMsg(t, rec))
}

func TestApproveNonReporter(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("Approve", int64(1)).Return("", store.ErrNotReporter)

	rec := doJSON(srv, http.MethodPost, "/api/admin/approve", bearerToken(t, 1, model.RoleAdmin),
		map[string]interface{}{"user_id": 1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User is not a reporter", decodeMsg(t, rec))
}

func TestApprovedReportersAnyAuthenticated(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	key := "2026-AB12"
	accounts.On("ApprovedReporters").Return([]model.Account{
		{
			ID: 2, Name: "Alice", Email: "alice@example.com",
			Role: model.RoleReporter, IsApproved: true, LicenseKey: &key,
			CreatedAt: time.Now(),
		},
	}, nil)

	// a reporter token is enough
	rec := doJSON(srv, http.MethodGet, "/api/admin/reporters", bearerToken(t, 7, model.RoleReporter), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "2026-AB12", list[0]["license"])
}

func TestApprovedReportersRequiresAuth(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	rec := doJSON(srv, http.MethodGet, "/api/admin/reporters", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRevokeReporter(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("Revoke", int64(2)).Return(nil)

	rec := doJSON(srv, http.MethodPost, "/api/admin/revoke", bearerToken(t, 1, model.RoleAdmin),
		map[string]interface{}{"user_id": 2})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Reporter revoked", decodeMsg(t, rec))
}

func TestRevokeRequiresAdmin(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	rec := doJSON(srv, http.MethodPost, "/api/admin/revoke", bearerToken(t, 7, model.RoleReporter),
		map[string]interface{}{"user_id": 2})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admins only", decodeMsg(t, rec))
	accounts.AssertNotCalled(t, "Revoke", mock.Anything)
}

func TestRevokeNotAReporter(t *testing.T) {
	accounts := NewMockAccountsStore()
	srv := newTestServer(accounts, NewMockArticlesStore(), NewMockHealthStore())

	accounts.On("Revoke", int64(1)).Return(store.ErrNotReporter)

	rec := doJSON(srv, http.MethodPost, "/api/admin/revoke", bearerToken(t, 1, model.RoleAdmin),
		map[string]interface{}{"user_id": 1})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found or not a reporter", decodeMsg(t, rec))
}
