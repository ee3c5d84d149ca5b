package handler

import (
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/version"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and store status.
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(hc HealthChecker) *HealthHandler {
	return &HealthHandler{checker: hc}
}

// Check handles the health probe.
func (h *HealthHandler) Check(c *gin.Context) {
	body := map[string]any{
		"status":  "healthy",
		"version": version.GetVersionInfo().Version,
	}
	if h.checker != nil {
		store := h.checker.Health(c.Request.Context())
		body["store"] = store
		if store["status"] != "healthy" {
			body["status"] = "degraded"
			resp.Fail(c.Writer, resp.ServiceUnavailable("store unavailable", body))
			return
		}
	}
	resp.Success(c.Writer, body)
}
