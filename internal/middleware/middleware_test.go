package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func doRequest(r *gin.Engine, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if value != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
	}{
		{name: "valid_api_key", configuredKey: "secret", requestKey: "secret", wantStatus: http.StatusOK},
		{name: "invalid_api_key", configuredKey: "secret", requestKey: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "missing_api_key", configuredKey: "secret", requestKey: "", wantStatus: http.StatusUnauthorized},
		{name: "open_when_not_configured", configuredKey: "", requestKey: "", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(APIKeyAuth(tt.configuredKey))
			r.GET("/test", okHandler)

			rec := doRequest(r, APIKeyHeader, tt.requestKey)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				errObj := parseBody(t, rec)["error"].(map[string]interface{})
				if errObj["code"] != "UNAUTHORIZED" {
					t.Errorf("expected UNAUTHORIZED, got %v", errObj["code"])
				}
			}
		})
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", okHandler)

	t.Run("issues a request id", func(t *testing.T) {
		rec := doRequest(r, "", "")
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
	})

	t.Run("reuses incoming request id", func(t *testing.T) {
		id := "0190a5b2-7c3e-7d4f-8a1b-2c3d4e5f6a7b"
		rec := doRequest(r, "X-Request-ID", id)
		if got := rec.Header().Get("X-Request-ID"); got != id {
			t.Errorf("expected %s, got %q", id, got)
		}
	})

	t.Run("replaces a malformed request id", func(t *testing.T) {
		rec := doRequest(r, "X-Request-ID", "abc-123")
		if got := rec.Header().Get("X-Request-ID"); got == "abc-123" || got == "" {
			t.Errorf("expected a fresh id, got %q", got)
		}
	})
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app_error", apperrors.ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_NOT_FOUND"},
		{"wrapped_app_error", apperrors.Wrap(apperrors.ErrStorageUnavailable, errors.New("dial tcp")), http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/test", func(c *gin.Context) { _ = c.Error(tt.err) })

			rec := doRequest(r, "", "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			errObj := parseBody(t, rec)["error"].(map[string]interface{})
			if errObj["code"] != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, errObj["code"])
			}
		})
	}
}
