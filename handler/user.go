package handler

import (
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the caller's profile.
type UserHandler struct {
	svc    *service.UserService
	logger *logger.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService, l *logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: l}
}

// GetMe handles profile retrieval.
func (h *UserHandler) GetMe(c *gin.Context) {
	id, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.svc.GetMe(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err, "failed to get profile")
		return
	}
	resp.Success(c.Writer, profile)
}

// UpdateMe handles profile updates.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	id, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, h.logger, err)
		return
	}

	profile, err := h.svc.UpdateMe(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, h.logger, err, "failed to update profile")
		return
	}
	resp.Success(c.Writer, profile)
}
