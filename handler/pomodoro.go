package handler

import (
	"net/http"

	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/service"

	"github.com/gin-gonic/gin"
)

// PomodoroHandler handles HTTP requests for session logs.
type PomodoroHandler struct {
	svc    *service.PomodoroService
	logger *logger.Logger
}

// NewPomodoroHandler creates a new pomodoro handler.
func NewPomodoroHandler(svc *service.PomodoroService, l *logger.Logger) *PomodoroHandler {
	return &PomodoroHandler{svc: svc, logger: l}
}

// Log records a finished interval.
func (h *PomodoroHandler) Log(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, h.logger, err)
		return
	}

	log, err := h.svc.LogSession(c.Request.Context(), owner, &req)
	if err != nil {
		fail(c, h.logger, err, "failed to log pomodoro")
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, log)
}

// Today lists the current day's sessions.
func (h *PomodoroHandler) Today(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	logs, err := h.svc.TodaySessions(c.Request.Context(), owner)
	if err != nil {
		fail(c, h.logger, err, "failed to list pomodoro logs")
		return
	}
	resp.Success(c.Writer, logs)
}
