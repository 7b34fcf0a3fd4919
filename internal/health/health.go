package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

// Pinger reports whether a dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type Response struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	database  Pinger
	version   string
	startTime time.Time
}

func NewHandler(database Pinger, version string) *Handler {
	if version == "" {
		version = "unknown"
	}
	return &Handler{database: database, version: version, startTime: time.Now()}
}

// Live confirms the process is serving.
func (h *Handler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, h.response(statusUp, map[string]Check{"process": {Status: statusUp}}))
}

// Ready additionally requires the database to answer.
func (h *Handler) Ready(c *gin.Context) {
	check := Check{Status: statusUp}
	if h.database == nil {
		check = Check{Status: statusDown, Message: "database is not initialized"}
	} else if err := h.database.Ping(c.Request.Context()); err != nil {
		check = Check{Status: statusDown, Message: "database ping failed"}
	}

	status, code := statusUp, http.StatusOK
	if check.Status != statusUp {
		status, code = statusDown, http.StatusServiceUnavailable
	}
	c.JSON(code, h.response(status, map[string]Check{"database": check}))
}

func (h *Handler) response(status string, checks map[string]Check) Response {
	return Response{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks:    checks,
	}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.Live)
	r.GET("/health/live", h.Live)
	r.GET("/health/ready", h.Ready)
}
