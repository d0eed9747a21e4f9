package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/templates"
)

func TestRouterPublicRoutes(t *testing.T) {
	catalog, err := templates.Default()
	require.NoError(t, err)
	router := NewRouter(RouterDeps{
		Config:          config.Config{Env: "dev"},
		Health:          health.NewService(nil),
		TemplateHandler: templates.NewHandler(catalog),
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var st health.Status
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &st))
	assert.Equal(t, "OK", st.Status)
	assert.Equal(t, "Resume Builder API is running", st.Message)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Hello from Resume Maker Backend!", resp.Body.String())

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/templates", nil))
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "http_requests_total")
}

func TestRouterUnknownRoute(t *testing.T) {
	router := NewRouter(RouterDeps{Health: health.NewService(nil)})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"Route not found"}}`, resp.Body.String())
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":5000", Addr(""))
	assert.Equal(t, ":8080", Addr("8080"))
	assert.Equal(t, ":9000", Addr(":9000"))
}
