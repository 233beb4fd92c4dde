package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRecordsRequestFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/things", func(c *gin.Context) {
		c.Header("x-folio-cache", "hit")
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/things?limit=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	got := entries[0].ContextMap()
	if got["method"] != "GET" || got["path"] != "/things?limit=3" {
		t.Errorf("method/path = %v / %v", got["method"], got["path"])
	}
	if got["status"] != int64(http.StatusOK) {
		t.Errorf("status = %v", got["status"])
	}
	if got["cache"] != "hit" {
		t.Errorf("cache marker not logged: %v", got["cache"])
	}
}

func TestLoggerOmitsCacheFieldWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/plain", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	got := logs.All()[0].ContextMap()
	if _, present := got["cache"]; present {
		t.Error("cache field must be absent when no marker was set")
	}
	if _, present := got["errors"]; present {
		t.Error("errors field must be absent on a clean request")
	}
}
