// Package middleware provides the gin middleware chain: trace ids, request
// logging, panic recovery, CORS and the bearer identity gate.
package middleware

import (
	"context"
	"strings"

	"github.com/ncobase/studyverse/consts"
	"github.com/ncobase/studyverse/ctxutil"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/net/resp"

	"github.com/gin-gonic/gin"
)

// Identity gate messages.
const (
	MsgNoToken      = "No token. Not authorized."
	MsgInvalidToken = "Invalid token."
	MsgUserNotFound = "User not found."
)

// ContextUserIDKey is the gin context key of the authenticated user id.
const ContextUserIDKey = "user_id"

// TokenVerifier resolves an access token to a user id.
type TokenVerifier interface {
	VerifyAccessToken(token string) (string, error)
}

// UserChecker reports whether a user still exists.
type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Authenticate rejects requests without a valid bearer token for an
// existing user and records the user id on the request.
func Authenticate(tokens TokenVerifier, users UserChecker, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader(consts.AuthorizationKey)
		if !strings.HasPrefix(authHeader, consts.BearerKey) {
			resp.Fail(c.Writer, resp.UnAuthorized(MsgNoToken))
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, consts.BearerKey))
		if token == "" {
			resp.Fail(c.Writer, resp.UnAuthorized(MsgNoToken))
			c.Abort()
			return
		}

		userID, err := tokens.VerifyAccessToken(token)
		if err != nil {
			l.Warn(ctx, "Invalid token", "error", err)
			resp.Fail(c.Writer, resp.UnAuthorized(MsgInvalidToken))
			c.Abort()
			return
		}

		exists, err := users.Exists(ctx, userID)
		if err != nil {
			l.Error(ctx, "failed to resolve token user", "user_id", userID, "error", err)
			resp.Fail(c.Writer, resp.InternalServer(""))
			c.Abort()
			return
		}
		if !exists {
			resp.Fail(c.Writer, resp.UnAuthorized(MsgUserNotFound))
			c.Abort()
			return
		}

		ctx = ctxutil.WithGinContext(ctx, c)
		ctx = ctxutil.SetToken(ctx, token)
		ctx = ctxutil.SetUserID(ctx, userID)
		c.Set(ContextUserIDKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetCurrentUserID retrieves the current user ID from context.
func GetCurrentUserID(c *gin.Context) (string, bool) {
	if userID := c.GetString(ContextUserIDKey); userID != "" {
		return userID, true
	}
	if userID := ctxutil.GetUserID(c.Request.Context()); userID != "" {
		return userID, true
	}
	return "", false
}
