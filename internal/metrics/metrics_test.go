package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/users/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", m.Handler())
	stations := r.Group("/api/stations", m.Mutations("stations"))
	stations.POST("/create", func(c *gin.Context) { c.Status(http.StatusCreated) })
	stations.PUT("/update/:id", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users/64b7f0c2a1b2c3d4e5f60718", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/stations/create", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/stations/update/x", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	if !strings.Contains(body, `hapsay_http_requests_total{method="GET",route="/api/users/:id",status="404"} 1`) {
		t.Errorf("request counter missing:\n%s", body)
	}
	if strings.Contains(body, "64b7f0c2a1b2c3d4e5f60718") {
		t.Error("raw id leaked into labels")
	}
	if !strings.Contains(body, `hapsay_records_mutated_total{kind="stations",method="POST"} 1`) {
		t.Error("mutation counter missing")
	}
	if strings.Contains(body, `kind="stations",method="PUT"`) {
		t.Error("failed update counted as a mutation")
	}
}
