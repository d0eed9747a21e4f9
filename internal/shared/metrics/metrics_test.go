package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestResumeOpCounter(t *testing.T) {
	before := testutil.ToFloat64(resumeOps.WithLabelValues("create", "ok"))
	ObserveResumeOp("create", "ok")
	after := testutil.ToFloat64(resumeOps.WithLabelValues("create", "ok"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestHandlerRendersRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncVersionConflict()
	ObserveHTTPRequest(http.MethodGet, "/resume/:version", http.StatusOK, 20*time.Millisecond)

	r := gin.New()
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{
		"resume_builder_resume_version_conflicts_total",
		"resume_builder_http_requests_total",
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}
