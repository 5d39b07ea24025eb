package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/requestdata"
)

const RequestIDHeader = "X-Request-ID"

// AttachRequestContext gives every request its RequestData and ErrorData.
// An incoming X-Request-ID is kept when it parses as a uuid.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, err := uuid.Parse(c.GetHeader(RequestIDHeader))
		if err != nil {
			requestID = uuid.New()
		}
		ctx := c.Request.Context()
		ctx = requestdata.WithRequestData(ctx, &requestdata.RequestData{RequestID: requestID})
		ctx = errordata.WithErrorData(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID.String())
		c.Next()
	}
}
