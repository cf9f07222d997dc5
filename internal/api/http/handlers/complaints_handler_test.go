package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/ThellaPrasanthi/complain-system/internal/api/http"
	"github.com/ThellaPrasanthi/complain-system/internal/api/http/handlers"
	"github.com/ThellaPrasanthi/complain-system/internal/auth"
	"github.com/ThellaPrasanthi/complain-system/internal/config"
	"github.com/ThellaPrasanthi/complain-system/internal/domain"
	"github.com/ThellaPrasanthi/complain-system/internal/events"
	"github.com/ThellaPrasanthi/complain-system/internal/observability"
	"github.com/ThellaPrasanthi/complain-system/internal/repository"
	"github.com/ThellaPrasanthi/complain-system/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	userStore := repository.NewMemoryUserStore(
		domain.User{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		domain.User{Username: "user", Password: "user123", Role: domain.RoleUser},
	)
	complaintRepo := repository.NewMemoryComplaintStore()

	authService := service.NewAuthService(config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 6}, service.AuthDependencies{
		UserStore: userStore,
	})
	complaintService := service.NewComplaintService(complaintRepo, events.NewInMemoryDispatcher())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("complaint-service", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Complaints:     handlers.NewComplaintsHandler(complaintService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func listComplaints(t *testing.T, app *fiber.App, token string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var items []map[string]any
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func complaintBody(title string) map[string]string {
	return map[string]string{
		"name":        "Jordan Doe",
		"email":       "jordan@example.com",
		"phone":       "555-0101",
		"category":    "billing",
		"title":       title,
		"description": "charged twice",
	}
}

func TestStatusEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["status"])
}

func TestLoginSuccessAndFailure(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", body["role"])
	assert.NotEmpty(t, body["token"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestComplaintEndpointsRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/complaints", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_MISSING", body["code"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/complaints", "garbage-token", complaintBody("x"))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_INVALID", body["code"])
}

func TestCreateAndListComplaints(t *testing.T) {
	app := newTestApp(t)
	userToken := login(t, app, "user", "user123")
	adminToken := login(t, app, "admin", "admin123")

	resp, body := doJSON(t, app, http.MethodPost, "/api/complaints", userToken, complaintBody("first"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Complaint added", body["message"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/complaints", userToken, complaintBody("second"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	items := listComplaints(t, app, adminToken)
	require.Len(t, items, 2)
	assert.Equal(t, "CMP001", items[0]["id"])
	assert.Equal(t, "CMP002", items[1]["id"])
	assert.Equal(t, "Pending", items[0]["status"])
	assert.Equal(t, "user", items[0]["username"])
	assert.Equal(t, "first", items[0]["title"])
}

func TestListScopedToOwnerForNonAdmin(t *testing.T) {
	app := newTestApp(t)
	userToken := login(t, app, "user", "user123")
	adminToken := login(t, app, "admin", "admin123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/complaints", userToken, complaintBody("user's"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/complaints", adminToken, complaintBody("admin's"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	userItems := listComplaints(t, app, userToken)
	require.Len(t, userItems, 1)
	assert.Equal(t, "user", userItems[0]["username"])

	adminItems := listComplaints(t, app, adminToken)
	assert.Len(t, adminItems, 2)
}

func TestCreateMissingFieldRejected(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "user", "user123")

	body := complaintBody("incomplete")
	delete(body, "phone")

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/complaints", token, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MALFORMED_REQUEST", decoded["code"])
}

func TestUpdateStatusAdminOnly(t *testing.T) {
	app := newTestApp(t)
	userToken := login(t, app, "user", "user123")
	adminToken := login(t, app, "admin", "admin123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/complaints", userToken, complaintBody("gate check"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPut, "/api/complaints/CMP001", userToken, map[string]string{"status": "Resolved"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACCESS_DENIED", body["code"])

	// status must be unchanged after the denied attempt
	items := listComplaints(t, app, adminToken)
	require.Len(t, items, 1)
	assert.Equal(t, "Pending", items[0]["status"])

	resp, body = doJSON(t, app, http.MethodPut, "/api/complaints/CMP001", adminToken, map[string]string{"status": "Resolved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Status updated", body["message"])

	items = listComplaints(t, app, adminToken)
	assert.Equal(t, "Resolved", items[0]["status"])
}

func TestUpdateStatusMissingIDSilentNoOp(t *testing.T) {
	app := newTestApp(t)
	adminToken := login(t, app, "admin", "admin123")

	resp, body := doJSON(t, app, http.MethodPut, "/api/complaints/CMP999", adminToken, map[string]string{"status": "Resolved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Status updated", body["message"])
}

func TestUpdateStatusUnparseableID(t *testing.T) {
	app := newTestApp(t)
	adminToken := login(t, app, "admin", "admin123")

	resp, body := doJSON(t, app, http.MethodPut, "/api/complaints/CMPxyz", adminToken, map[string]string{"status": "Resolved"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MALFORMED_REQUEST", body["code"])
}

func TestDeleteAdminOnlyAndSilentNoOp(t *testing.T) {
	app := newTestApp(t)
	userToken := login(t, app, "user", "user123")
	adminToken := login(t, app, "admin", "admin123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/complaints", userToken, complaintBody("to delete"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/complaints/CMP001", userToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACCESS_DENIED", body["code"])

	resp, body = doJSON(t, app, http.MethodDelete, "/api/complaints/CMP001", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Deleted", body["message"])

	assert.Empty(t, listComplaints(t, app, adminToken))

	// deleting again is still a success per the no-error policy
	resp, body = doJSON(t, app, http.MethodDelete, "/api/complaints/CMP001", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Deleted", body["message"])
}

func TestBearerPrefixTolerated(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "user", "user123")

	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
