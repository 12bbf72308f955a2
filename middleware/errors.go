package middleware

import (
	stderrors "errors"
	"net/http"

	"careerguide/errors"
	"careerguide/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler xử lý lỗi do controller đẩy vào c.Errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		switch {
		case stderrors.Is(err, errors.ErrUserNotFound):
			response.NotFound(c, "User not found")
			return
		case stderrors.Is(err, errors.ErrUserAlreadyExists):
			response.Conflict(c, "Username already exists")
			return
		}

		if appErr := errors.GetAppError(err); appErr != nil {
			switch appErr.Code {
			case errors.ErrCodeValidation, errors.ErrCodeRequiredField,
				errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidUserID:
				c.JSON(http.StatusBadRequest, response.Response{
					Code: 0,
					Mess: appErr.Message,
					Data: appErr.Fields,
				})
				return
			}
		}

		response.ServerError(c)
	}
}
