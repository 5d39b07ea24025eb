package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/requestdata"
)

// RequestLogger must run after AttachRequestContext.
func RequestLogger(baseLog *logger.Logger) gin.HandlerFunc {
	log := baseLog.With("middleware", "RequestLogger")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
		}
		if rd := requestdata.GetRequestData(ctx); rd != nil {
			kv = append(kv, "requestID", rd.RequestID)
			if rd.AccountID != uuid.Nil {
				kv = append(kv, "accountID", rd.AccountID)
			}
		}
		if ed := errordata.GetErrorData(ctx); ed != nil && ed.HasMessage() {
			kv = append(kv, "error", ed.Message)
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Request failed", kv...)
		case status >= http.StatusBadRequest:
			log.Warn("Request rejected", kv...)
		default:
			log.Info("Request served", kv...)
		}
	}
}
