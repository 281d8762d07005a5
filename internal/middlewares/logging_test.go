package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/career-toolkit/internal/logger"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
		body   string
	}{
		{name: "login accepted", method: http.MethodPost, target: "/auth/login", status: http.StatusOK, body: `{"access_token":"t"}`},
		{name: "register rejected", method: http.MethodPost, target: "/auth/register", status: http.StatusBadRequest, body: `{"error":"Email is required"}`},
		{name: "profile read without writing a status", method: http.MethodGet, target: "/profile?fields=all", body: `{}`},
		{name: "internal error", method: http.MethodGet, target: "/auth/me", status: http.StatusInternalServerError, body: `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			wantStatus := tt.status
			if wantStatus == 0 {
				wantStatus = http.StatusOK
			}
			assert.Equal(t, wantStatus, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			reqID := rr.Header().Get("X-Request-ID")
			require.NotEmpty(t, strings.TrimSpace(reqID))

			entries := logs.All()
			require.Len(t, entries, 2)

			request := entries[0].ContextMap()
			assert.Equal(t, "request", entries[0].Message)
			assert.Equal(t, reqID, request["request_id"])
			assert.Equal(t, tt.method, request["method"])
			assert.Equal(t, tt.target, request["uri"])

			response := entries[1].ContextMap()
			assert.Equal(t, "response", entries[1].Message)
			assert.Equal(t, reqID, response["request_id"])
			assert.EqualValues(t, wantStatus, response["status"])
			assert.Equal(t, strconv.Itoa(len(tt.body))+"B", response["response_size"])
		})
	}
}

func TestLoggingMiddleware_RequestIDInContext(t *testing.T) {
	var fromCtx string
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.NotEmpty(t, fromCtx)
	assert.Equal(t, rr.Header().Get("X-Request-ID"), fromCtx)
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestNewResponseWriter_Reuses(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	assert.Same(t, rw, newResponseWriter(rw))
	assert.Equal(t, http.StatusOK, rw.statusCode)
}
