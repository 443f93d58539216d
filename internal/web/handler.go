package web

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/page"
	"folio/internal/view"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Handler serves the page over HTTP. Every request mounts a fresh dark view
// state; the toggle runs in the browser and never reaches the server.
type Handler struct {
	page     page.Page
	assetDir string
	logger   *log.Logger
}

func NewHandler(pg page.Page, assetDir string, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{page: pg, assetDir: assetDir, logger: logger}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLog(h.logger))
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the page and, open to any origin, the health probe
// and static assets.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)

	shared := r.Group("", cors.Default())
	shared.GET("/healthz", h.healthz)
	if h.assetDir != "" {
		shared.Static("/assets", h.assetDir)
	}
}

func (h *Handler) index(c *gin.Context) {
	var buf bytes.Buffer
	if err := Render(&buf, h.page, view.NewState()); err != nil {
		h.logger.Error("render failed", "event", "render_failed", "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

const requestIDHeader = "X-Request-Id"

func requestLog(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set(requestIDHeader, rid)

		started := time.Now()
		c.Next()
		logger.Info("http request",
			"event", "http_request",
			"request_id", rid,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(started).Milliseconds(),
			"remote", c.ClientIP(),
		)
	}
}
