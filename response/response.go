package response

import (
	"net/http"

	"careerguide/errors"

	"github.com/gin-gonic/gin"
)

// Response là envelope dùng cho các route quản lý user
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// MessageBody is the plain error body of the assistant routes.
type MessageBody struct {
	Message string              `json:"message"`
	Errors  []errors.FieldError `json:"errors,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// Created trả về 201 kèm dữ liệu vừa tạo
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// Error trả về response lỗi
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// Payload writes v as the bare 200 body.
func Payload(c *gin.Context, v interface{}) {
	c.JSON(http.StatusOK, v)
}

// Message writes {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}

// ValidationError writes 400 {"message", "errors": [{field, message}]}.
func ValidationError(c *gin.Context, message string, fields []errors.FieldError) {
	c.JSON(http.StatusBadRequest, MessageBody{Message: message, Errors: fields})
}
