package handler

import (
	"net/http"

	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	svc    *service.AuthService
	logger *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: l}
}

// Register handles sign-up.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, h.logger, err)
		return
	}

	result, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err, "failed to register user")
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, result)
}

// Login handles sign-in.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, h.logger, err)
		return
	}

	result, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err, "failed to login")
		return
	}
	resp.Success(c.Writer, result)
}
