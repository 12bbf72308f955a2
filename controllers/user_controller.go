package controllers

import (
	"strconv"

	"careerguide/dto"
	"careerguide/errors"
	"careerguide/response"
	"careerguide/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service services.UserServiceInterface
}

func NewUserController(service services.UserServiceInterface) *UserController {
	return &UserController{service: service}
}

// CreateUser godoc
// @Summary  Register a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body dto.CreateUserRequest true "User"
// @Success  201 {object} response.Response{data=dto.UserResponse}
// @Failure  400 {object} response.Response
// @Failure  409 {object} response.Response
// @Router   /api/users [post]
func (u *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	user, err := u.service.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, user)
}

// GetUser godoc
// @Summary  Get a user by id
// @Tags     users
// @Produce  json
// @Param    id path int true "User id"
// @Success  200 {object} response.Response{data=dto.UserResponse}
// @Failure  404 {object} response.Response
// @Router   /api/users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	user, err := u.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, user)
}

// GetUserByUsername godoc
// @Summary  Get a user by username
// @Tags     users
// @Produce  json
// @Param    username path string true "Username"
// @Success  200 {object} response.Response{data=dto.UserResponse}
// @Failure  404 {object} response.Response
// @Router   /api/users/by-username/{username} [get]
func (u *UserController) GetUserByUsername(c *gin.Context) {
	user, err := u.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, user)
}

// GetUserCareers godoc
// @Summary  Recorded career recommendations of a user
// @Tags     users
// @Produce  json
// @Param    id path int true "User id"
// @Success  200 {object} response.Response{data=[]dto.CareerRecord}
// @Failure  404 {object} response.Response
// @Router   /api/users/{id}/careers [get]
func (u *UserController) GetUserCareers(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	careers, err := u.service.Careers(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, careers)
}

// GetUserChatHistory godoc
// @Summary  Recorded chat history of a user
// @Tags     users
// @Produce  json
// @Param    id path int true "User id"
// @Success  200 {object} response.Response{data=[]dto.ChatHistoryRecord}
// @Failure  404 {object} response.Response
// @Router   /api/users/{id}/chat-history [get]
func (u *UserController) GetUserChatHistory(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	history, err := u.service.ChatHistory(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, history)
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(errors.NewAppError(errors.ErrCodeInvalidUserID, "Invalid user id", err))
		return 0, false
	}
	return uint(id), true
}
