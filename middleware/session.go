package middleware

import (
	"careerguide/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware tạo sessionId nếu chưa có và gán vào context
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(constants.SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(constants.SessionContext, sessionID)
		c.Writer.Header().Set(constants.SessionHeader, sessionID)

		c.Next()
	}
}

// SessionID trả về sessionId đã được middleware gán
func SessionID(c *gin.Context) string {
	return c.GetString(constants.SessionContext)
}
