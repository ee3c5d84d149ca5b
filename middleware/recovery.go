package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/ncobase/studyverse/ctxutil"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/logging/observes"
	"github.com/ncobase/studyverse/net/resp"

	"github.com/gin-gonic/gin"
)

// Recovery answers panics with a generic 500 and reports them.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			l.Error(ctx, "panic recovered", "error", err, "stack", string(debug.Stack()))
			observes.CaptureError(ctx, err, ctxutil.GetTraceID(ctx))

			if !c.Writer.Written() {
				resp.Fail(c.Writer, resp.InternalServer(""))
			}
			c.Abort()
		}()
		c.Next()
	}
}
