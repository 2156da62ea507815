package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func setupDiagnosticsEngine(p Pinger) *gin.Engine {
	h := &DiagnosticsHandler{Store: p, Timeout: time.Second}
	engine := gin.New()
	engine.GET("/diagnostics/ping", h.Ping)
	engine.GET("/health", h.Health)
	return engine
}

func TestPing_Connected(t *testing.T) {
	engine := setupDiagnosticsEngine(pingerFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}))

	w, env := perform(t, engine, http.MethodGet, "/diagnostics/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Connected to MongoDB!", env.Message)
}

func TestPing_FailureStillAnswers200(t *testing.T) {
	engine := setupDiagnosticsEngine(pingerFunc(func(context.Context) error {
		return errors.New("server selection error: context deadline exceeded")
	}))

	w, env := perform(t, engine, http.MethodGet, "/diagnostics/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "server selection error")
}

func TestHealth(t *testing.T) {
	up := setupDiagnosticsEngine(pingerFunc(func(context.Context) error { return nil }))
	w := httptest.NewRecorder()
	up.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	down := setupDiagnosticsEngine(pingerFunc(func(context.Context) error { return errors.New("no reachable servers") }))
	w = httptest.NewRecorder()
	down.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unavailable", body.Status)
	assert.Equal(t, "down", body.Checks["database"])
}
