package daemon

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ginLogger logs every request through logrus. Failed requests log their
// gin errors, everything else is logged at a level picked by status code.
func ginLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// handlers may rewrite the path
		path := c.Request.URL.Path
		start := time.Now()

		c.Next()

		took := time.Since(start)
		status := c.Writer.Status()
		size := max(c.Writer.Size(), 0)

		entry := logger.WithFields(logrus.Fields{
			"status":  status,
			"latency": took.Milliseconds(),
			"method":  c.Request.Method,
			"path":    path,
			"bytes":   size,
			"client":  c.ClientIP(),
		})

		if len(c.Errors) > 0 {
			entry.Warn(c.Errors.ByType(gin.ErrorTypePrivate).String())
			return
		}

		msg := fmt.Sprintf("%s %s %d (%s)", c.Request.Method, path, status, took.Round(time.Microsecond))
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error(msg)
		case status >= http.StatusBadRequest:
			entry.Warn(msg)
		default:
			entry.Debug(msg)
		}
	}
}
