package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
)

// respondError writes the {error} body and records it for the request logger.
func respondError(c *gin.Context, err error) {
	status := errordata.HTTPStatus(err)
	if ed := errordata.GetErrorData(c.Request.Context()); ed != nil {
		ed.SetError(status, err)
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": errordata.UserMessage(err)})
}

func respondBadBody(c *gin.Context) {
	respondError(c, errordata.Validation("invalid request body"))
}
