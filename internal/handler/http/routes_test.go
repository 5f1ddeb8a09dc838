package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/models"
)

const (
	adminToken  = "admin-token"
	tenantToken = "tenant-token"
)

func testIdentities() identities {
	return identities{
		adminToken:  {ID: "admin-1", Name: "Admin", Role: models.RoleAdmin, Status: models.UserActive},
		tenantToken: {ID: "user-1", Name: "Ali Khan", Role: models.RoleUser, Status: models.UserActive},
	}
}

func doRequest(t *testing.T, handler *Handler, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.Init().ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestRoutes_AuthenticationLadder(t *testing.T) {
	handler := newTestHandler(testIdentities(), nil)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "missing header", method: http.MethodGet, path: "/api/users", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", method: http.MethodGet, path: "/api/users", token: "garbage", wantStatus: http.StatusUnauthorized},
		{name: "tenant on admin route", method: http.MethodGet, path: "/api/users", token: tenantToken, wantStatus: http.StatusForbidden},
		{name: "admin on admin route", method: http.MethodGet, path: "/api/users", token: adminToken, wantStatus: http.StatusOK},
		{name: "tenant reads own rent", method: http.MethodGet, path: "/api/rent/user/user-1", token: tenantToken, wantStatus: http.StatusOK},
		{name: "tenant reads other rent", method: http.MethodGet, path: "/api/rent/user/user-2", token: tenantToken, wantStatus: http.StatusForbidden},
		{name: "tenant on payment stats", method: http.MethodGet, path: "/api/payments/stats", token: tenantToken, wantStatus: http.StatusForbidden},
		{name: "admin on master report", method: http.MethodGet, path: "/api/users/master", token: adminToken, wantStatus: http.StatusOK},
		{name: "admin on master data alias", method: http.MethodGet, path: "/api/users/master-data", token: adminToken, wantStatus: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			recorder := doRequest(t, handler, test.method, test.path, test.token, nil)
			assert.Equal(t, test.wantStatus, recorder.Code)

			body := decodeBody(t, recorder)
			assert.Equal(t, test.wantStatus < 400, body["success"])
		})
	}
}

func TestRoutes_DeletedTokenSubject(t *testing.T) {
	handler := newTestHandler(testIdentities(), &service.Services{
		AuthService: &fakeAuthService{
			identityFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
		},
	})

	recorder := doRequest(t, handler, http.MethodGet, "/api/auth/me", tenantToken, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "no longer exists")
}

func TestRoutes_RoleMismatchMessage(t *testing.T) {
	handler := newTestHandler(testIdentities(), nil)

	recorder := doRequest(t, handler, http.MethodGet, "/api/users", tenantToken, nil)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "user role 'user' is not authorized to access this route", body["message"])
}

func TestRoutes_MasterReport(t *testing.T) {
	handler := newTestHandler(testIdentities(), &service.Services{
		ReportService: &fakeReportService{
			masterFn: func(_ context.Context) (models.MasterReport, error) {
				return models.MasterReport{Summary: models.MasterSummary{TotalTenants: 2}}, nil
			},
		},
	})

	for _, path := range []string{"/api/users/master", "/api/users/master-data"} {
		recorder := doRequest(t, handler, http.MethodGet, path, adminToken, nil)
		require.Equal(t, http.StatusOK, recorder.Code, path)

		body := decodeBody(t, recorder)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok, path)
		summary, ok := data["summary"].(map[string]any)
		require.True(t, ok, path)
		assert.Equal(t, float64(2), summary["totalTenants"], path)
	}
}

func TestRoutes_Welcome(t *testing.T) {
	handler := newTestHandler(testIdentities(), nil)

	recorder := doRequest(t, handler, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["message"], "running")
}

func TestRoutes_NotFoundIsJSON(t *testing.T) {
	handler := newTestHandler(testIdentities(), nil)

	recorder := doRequest(t, handler, http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestRoutes_Login(t *testing.T) {
	handler := newTestHandler(testIdentities(), &service.Services{
		AuthService: &fakeAuthService{
			loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
				if req.Email == "ali@example.com" && req.Password == "secret1" {
					return models.User{ID: "user-1", Email: req.Email, Role: models.RoleUser}, nil
				}
				return models.User{}, service.ErrWrongPassword
			},
		},
	})

	t.Run("success returns token and user", func(t *testing.T) {
		payload := strings.NewReader(`{"email":"ali@example.com","password":"secret1"}`)
		recorder := doRequest(t, handler, http.MethodPost, "/api/auth/login", "", payload)
		require.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody(t, recorder)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "signed-token-user-1", data["token"])
		assert.NotContains(t, recorder.Body.String(), "passwordHash")
		assert.NotContains(t, recorder.Body.String(), "password_hash")
	})

	t.Run("wrong credentials", func(t *testing.T) {
		payload := strings.NewReader(`{"email":"ali@example.com","password":"wrong"}`)
		recorder := doRequest(t, handler, http.MethodPost, "/api/auth/login", "", payload)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/api/auth/login", "", strings.NewReader("{"))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestRoutes_Me(t *testing.T) {
	handler := newTestHandler(testIdentities(), nil)

	recorder := doRequest(t, handler, http.MethodGet, "/api/auth/me", tenantToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user-1", data["id"])
}

func TestRoutes_CreateUser_DuplicateEmail(t *testing.T) {
	handler := newTestHandler(testIdentities(), &service.Services{
		UserService: &fakeUserService{
			createFn: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
		},
	})

	payload := strings.NewReader(`{"name":"Ali","email":"ali@example.com","phone":"1","shopName":"s"}`)
	recorder := doRequest(t, handler, http.MethodPost, "/api/users", adminToken, payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRoutes_DeleteUser_Self(t *testing.T) {
	handler := newTestHandler(testIdentities(), &service.Services{
		UserService: &fakeUserService{
			deleteFn: func(_ context.Context, acting models.User, id string) error {
				if acting.ID == id {
					return service.ErrSelfDelete
				}
				return nil
			},
		},
	})

	recorder := doRequest(t, handler, http.MethodDelete, "/api/users/admin-1", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, handler, http.MethodDelete, "/api/users/user-1", adminToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRoutes_ListPayments_Pagination(t *testing.T) {
	handler := newTestHandler(testIdentities(), &service.Services{
		PaymentService: &fakePaymentService{
			listFn: func(_ context.Context, filter models.PaymentFilter) ([]models.Payment, int, error) {
				assert.Equal(t, 2, filter.Page)
				assert.Equal(t, 5, filter.Limit)
				return []models.Payment{{ID: "pay-6"}}, 23, nil
			},
		},
	})

	recorder := doRequest(t, handler, http.MethodGet, "/api/payments?page=2&limit=5", adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, float64(23), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(5), body["pages"])
	assert.Equal(t, float64(1), body["count"])
}

func TestRoutes_VerifyPayment(t *testing.T) {
	handler := newTestHandler(testIdentities(), nil)

	payload := strings.NewReader(`{"status":"verified"}`)
	recorder := doRequest(t, handler, http.MethodPut, "/api/payments/pay-1/verify", adminToken, payload)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "Payment verified successfully", body["message"])
}

func TestRoutes_UploadReceipt(t *testing.T) {
	handler := newTestHandler(testIdentities(), nil)
	handler.uploadsDir = t.TempDir()

	buildForm := func(t *testing.T, filename string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("amount", "15000"))
		require.NoError(t, writer.WriteField("month", "August 2026"))
		if filename != "" {
			part, err := writer.CreateFormFile("receipt", filename)
			require.NoError(t, err)
			_, err = part.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
		require.NoError(t, writer.Close())
		return &buf, writer.FormDataContentType()
	}

	t.Run("stores file and creates pending payment", func(t *testing.T) {
		buf, contentType := buildForm(t, "receipt.png")
		req := httptest.NewRequest(http.MethodPost, "/api/payments/upload-receipt", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+tenantToken)

		recorder := httptest.NewRecorder()
		handler.Init().ServeHTTP(recorder, req)
		require.Equal(t, http.StatusCreated, recorder.Code)

		body := decodeBody(t, recorder)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "user-1", data["userId"])
		assert.Equal(t, "pending", data["status"])
		assert.Contains(t, data["receiptFile"], "uploads/receipt-")
	})

	t.Run("missing file", func(t *testing.T) {
		buf, contentType := buildForm(t, "")
		req := httptest.NewRequest(http.MethodPost, "/api/payments/upload-receipt", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+tenantToken)

		recorder := httptest.NewRecorder()
		handler.Init().ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("oversized body", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("receipt", "receipt.png")
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), maxReceiptSize+1))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/payments/upload-receipt", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+tenantToken)

		recorder := httptest.NewRecorder()
		handler.Init().ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unsupported file type", func(t *testing.T) {
		buf, contentType := buildForm(t, "receipt.exe")
		req := httptest.NewRequest(http.MethodPost, "/api/payments/upload-receipt", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+tenantToken)

		recorder := httptest.NewRecorder()
		handler.Init().ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
