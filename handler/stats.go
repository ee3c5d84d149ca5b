package handler

import (
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the dashboard and statistics views.
type StatsHandler struct {
	svc    *service.StatsService
	logger *logger.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(svc *service.StatsService, l *logger.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, logger: l}
}

// Dashboard handles the dashboard summary.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	d, err := h.svc.Dashboard(c.Request.Context(), owner)
	if err != nil {
		fail(c, h.logger, err, "failed to build dashboard")
		return
	}
	resp.Success(c.Writer, d)
}

// Statistics handles the chart bundle.
func (h *StatsHandler) Statistics(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	s, err := h.svc.Statistics(c.Request.Context(), owner)
	if err != nil {
		fail(c, h.logger, err, "failed to generate stats")
		return
	}
	resp.Success(c.Writer, s)
}
