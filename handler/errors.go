package handler

import (
	"errors"

	"github.com/ncobase/studyverse/ctxutil"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/logging/observes"
	"github.com/ncobase/studyverse/middleware"
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/service"
	"github.com/ncobase/studyverse/validation/validator"

	"github.com/gin-gonic/gin"
)

// fail writes the response for a service error. Unknown errors are logged,
// reported and answered with a generic 500.
func fail(c *gin.Context, l *logger.Logger, err error, op string) {
	msg := service.Message(err)
	switch {
	case errors.Is(err, service.ErrValidation):
		resp.Fail(c.Writer, resp.BadRequest(msg))
	case errors.Is(err, service.ErrNotFound):
		resp.Fail(c.Writer, resp.NotFound(msg))
	case errors.Is(err, service.ErrUnauthorized):
		resp.Fail(c.Writer, resp.UnAuthorized(msg))
	case errors.Is(err, service.ErrConflict):
		resp.Fail(c.Writer, resp.Conflict(msg))
	default:
		ctx := c.Request.Context()
		l.Error(ctx, op, "error", err)
		observes.CaptureError(ctx, err, ctxutil.GetTraceID(ctx))
		resp.Fail(c.Writer, resp.InternalServer(""))
	}
}

// bindFail answers a malformed or invalid request body.
func bindFail(c *gin.Context, l *logger.Logger, err error) {
	l.Warn(c.Request.Context(), "invalid request", "error", err)
	if fields := validator.Messages(err); fields != nil {
		resp.Fail(c.Writer, resp.BadRequest("validation failed", fields))
		return
	}
	resp.Fail(c.Writer, resp.BadRequest(err.Error()))
}

// currentUser returns the authenticated user id or answers 401.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		resp.Fail(c.Writer, resp.UnAuthorized(middleware.MsgNoToken))
		return "", false
	}
	return userID, true
}
