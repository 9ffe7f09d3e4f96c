package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/waylo/companion/backend/internal/apierror"
	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/repository"
	"github.com/waylo/companion/backend/internal/service"
	"github.com/waylo/companion/backend/pkg/supabase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

type stubVerifier map[string]string // token -> user id

func (s stubVerifier) VerifyToken(ctx context.Context, token string) (*supabase.User, error) {
	id, ok := s[token]
	if !ok {
		return nil, &supabase.Error{Status: http.StatusUnauthorized}
	}
	return &supabase.User{ID: id, Email: id + "@example.com"}, nil
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) apierror.ProblemDetails {
	t.Helper()
	var p apierror.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestAuth(t *testing.T) {
	r := gin.New()
	r.Use(Auth(stubVerifier{"good": "u1"}))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, "%s/%s", c.GetString("user_id"), logger.UserIDFromContext(c.Request.Context()))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "u1/u1", w.Body.String())
			} else {
				assert.Equal(t, apierror.TypeUnauthorized, decodeProblem(t, w).Type)
			}
		})
	}
}

func TestRequireDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	devices := repository.NewMockDeviceRepository(ctrl)
	devices.EXPECT().GetForUser(gomock.Any(), "u1", "C0:F5:35:ED:FD:25").
		Return(&models.Device{UserID: "u1", DeviceID: "C0:F5:35:ED:FD:25"}, nil)
	devices.EXPECT().GetForUser(gomock.Any(), "u1", "AA:BB:CC:DD:EE:FF").
		Return(nil, fmt.Errorf("device: %w", repository.ErrNotFound))
	devices.EXPECT().GetForUser(gomock.Any(), "u1", "11:22:33:44:55:66").
		Return(nil, &repository.RecordSourceError{Collection: repository.CollectionDevices, Op: "get_for_user", Err: errors.New("timeout")})

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u1") })
	r.GET("/devices/:device_id/logs", RequireDevice(service.NewDeviceService(devices)), func(c *gin.Context) {
		c.String(http.StatusOK, "%s|%s", c.GetString(DeviceKey), logger.DeviceIDFromContext(c.Request.Context()))
	})

	tests := []struct {
		name    string
		device  string
		status  int
		problem string
	}{
		{name: "paired, lower case", device: "c0:f5:35:ed:fd:25", status: http.StatusOK},
		{name: "not paired", device: "AA:BB:CC:DD:EE:FF", status: http.StatusNotFound, problem: apierror.TypeNotFound},
		{name: "source down", device: "11:22:33:44:55:66", status: http.StatusBadGateway, problem: apierror.TypeRecordSource},
		{name: "garbage", device: "hello", status: http.StatusBadRequest, problem: apierror.TypeInvalidDevice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/devices/"+tt.device+"/logs", nil))

			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.problem == "" {
				assert.Equal(t, "C0:F5:35:ED:FD:25|C0:F5:35:ED:FD:25", w.Body.String())
				return
			}
			assert.Equal(t, tt.problem, decodeProblem(t, w).Type)
		})
	}
}

func TestRateLimitHandler(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, "test-handler")
	defer limiter.Stop()

	r := gin.New()
	r.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	var last *httptest.ResponseRecorder
	for i := range codes {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes[i] = last.Code
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, apierror.TypeRateLimit, decodeProblem(t, last).Type)
}

func TestLoggerPropagatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	cfg := logger.DefaultConfig()
	cfg.Output = &buf
	base := logger.NewSlogLogger(cfg)

	r := gin.New()
	r.Use(Logger(base))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "%s", logger.RequestIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "/ping", entry["route"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	for _, production := range []bool{false, true} {
		r := gin.New()
		r.Use(SecurityHeaders(production))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.Equal(t, production, w.Header().Get("Strict-Transport-Security") != "")
	}
}
