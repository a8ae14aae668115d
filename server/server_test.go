package server

import (
	"dyzs/hkcamera/route/hk"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func serve(hs *HttpServer, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	hs.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestDebugLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	defer log.SetLevel(log.InfoLevel)
	hs := NewHttpServer("0", &hk.Api{})

	if rec := serve(hs, "/debug?level=debug"); rec.Code != http.StatusOK {
		t.Errorf("code = %d", rec.Code)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
	if rec := serve(hs, "/debug?level=loud"); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown level code = %d", rec.Code)
	}
	if rec := serve(hs, "/debug"); rec.Code != http.StatusBadRequest {
		t.Errorf("empty level code = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hs := NewHttpServer("0", &hk.Api{})
	rec := serve(hs, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hkcamera_") {
		t.Error("hkcamera metrics missing")
	}
}
