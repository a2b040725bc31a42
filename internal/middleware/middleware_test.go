package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/internal/auth"
	"github.com/mmynk/shuttlecash/internal/models"
)

func TestRequireBearer(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u1", Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	roleless, err := jwtManager.Generate(&models.User{ID: "u2", Username: "legacy"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var gotUser string
	handler := RequireBearer(jwtManager, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = GetUsername(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"token without role", "Bearer " + roleless, http.StatusForbidden},
		{"valid token", "Bearer " + token, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = ""
			req := httptest.NewRequest(http.MethodGet, "/export/settlements.xlsx", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusNoContent && gotUser != "admin" {
				t.Errorf("username in context = %q, want admin", gotUser)
			}
		})
	}
}

func TestRequireAuth_Codes(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	admin, err := jwtManager.Generate(&models.User{ID: "u1", Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	roleless, err := jwtManager.Generate(&models.User{ID: "u2", Username: "legacy"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var gotUser string
	call := RequireAuth(jwtManager)(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		gotUser = GetUserID(ctx)
		return connect.NewResponse(&struct{}{}), nil
	})

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
	}{
		{"missing token", "", connect.CodeUnauthenticated},
		{"garbage token", "Bearer nope", connect.CodeUnauthenticated},
		{"token without role", "Bearer " + roleless, connect.CodePermissionDenied},
		{"admin token", "Bearer " + admin, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = ""
			req := connect.NewRequest(&struct{}{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}
			_, err := call(context.Background(), req)

			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if gotUser != "u1" {
					t.Errorf("user in context = %q, want u1", gotUser)
				}
				return
			}
			var connectErr *connect.Error
			if !errors.As(err, &connectErr) || connectErr.Code() != tt.wantCode {
				t.Errorf("error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/shuttlecash.v1.FinanceService/Pay", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if called {
		t.Error("preflight should not reach the wrapped handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin header")
	}
}

func TestHTTPLogging_PassesThroughStatus(t *testing.T) {
	handler := HTTPLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}
