package middleware

import (
	"Commons/internal/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceMiddlewareKeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	var fromCtx any
	r.GET("/x", func(c *gin.Context) {
		fromCtx = c.Request.Context().Value(logger.TraceIDKey)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(TraceHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if fromCtx != "abc-123" {
		t.Fatalf("context trace id = %v", fromCtx)
	}
	if got := w.Header().Get(TraceHeader); got != "abc-123" {
		t.Fatalf("response trace header = %q", got)
	}
}

func TestTraceMiddlewareGeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if len(w.Header().Get(TraceHeader)) != 36 {
		t.Fatalf("expected generated uuid, got %q", w.Header().Get(TraceHeader))
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "https://example.org" {
		t.Fatalf("missing allow origin")
	}
}

func TestAuditPassesResponseThrough(t *testing.T) {
	r := gin.New()
	r.Use(AuditMiddleware())
	big := make([]byte, maxAuditBody*2)
	for i := range big {
		big[i] = 'a'
	}
	r.GET("/x", func(c *gin.Context) { c.Data(http.StatusOK, "text/plain", big) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Body.Len() != len(big) {
		t.Fatalf("body len = %d", w.Body.Len())
	}
}

func TestTraceMiddlewareReplacesMalformedID(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(TraceHeader, `bad"id with spaces`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(TraceHeader); got == `bad"id with spaces` || len(got) != 36 {
		t.Fatalf("malformed trace id kept: %q", got)
	}
}
