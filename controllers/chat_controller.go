package controllers

import (
	"net/http"

	"careerguide/constants"
	"careerguide/dto"
	"careerguide/errors"
	"careerguide/middleware"
	"careerguide/response"
	"careerguide/services"
	"careerguide/services/logger"
	"careerguide/validator"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
	socket  *services.ChatSocket
	logger  logger.Logger
}

type ChatControllerOptions struct {
	Service *services.ChatService
	Socket  *services.ChatSocket
	Logger  logger.Logger
}

func NewChatController(opts ChatControllerOptions) *ChatController {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ChatController{service: opts.Service, socket: opts.Socket, logger: opts.Logger}
}

// Chat godoc
// @Summary  Ask the career assistant
// @Tags     chat
// @Accept   json
// @Produce  json
// @Param    X-Session-ID header string false "Chat session id"
// @Param    body body dto.ChatRequest true "Message"
// @Success  200 {object} dto.ChatResponse
// @Failure  400 {object} response.MessageBody
// @Router   /api/chat [post]
func (cc *ChatController) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cc.logger.Debug("chat: body rejected: %v", err)
		response.Message(c, http.StatusBadRequest, validator.MessageRequiredMessage)
		return
	}

	out, source, err := cc.service.Reply(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		msg := validator.MessageRequiredMessage
		if appErr := errors.GetAppError(err); appErr != nil {
			msg = appErr.Message
		}
		response.Message(c, http.StatusBadRequest, msg)
		return
	}

	c.Header(constants.SourceHeader, source)
	response.Payload(c, out)
}

// History godoc
// @Summary  Transcript of the current chat session
// @Tags     chat
// @Produce  json
// @Param    X-Session-ID header string false "Chat session id"
// @Success  200 {object} dto.ChatHistoryResponse
// @Router   /api/chat/history [get]
func (cc *ChatController) History(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	turns, err := cc.service.History(c.Request.Context(), sessionID)
	if err != nil {
		cc.logger.Error("chat history of session %s: %v", sessionID, err)
		turns = []dto.ChatTurn{}
	}
	response.Payload(c, dto.ChatHistoryResponse{SessionID: sessionID, Turns: turns})
}

// ClearHistory godoc
// @Summary  Drop the transcript of the current chat session
// @Tags     chat
// @Param    X-Session-ID header string false "Chat session id"
// @Success  204
// @Router   /api/chat/history [delete]
func (cc *ChatController) ClearHistory(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if err := cc.service.ClearHistory(c.Request.Context(), sessionID); err != nil {
		cc.logger.Error("clear chat session %s: %v", sessionID, err)
	}
	c.Status(http.StatusNoContent)
}

// WebSocket nâng cấp kết nối cho chat qua websocket
func (cc *ChatController) WebSocket(c *gin.Context) {
	sessionID := c.GetHeader(constants.SessionHeader)
	if sessionID == "" {
		sessionID = c.Query("session")
	}
	if err := cc.socket.Upgrade(sessionID, c.Writer, c.Request); err != nil {
		cc.logger.Error("ws chat upgrade failed: %v", err)
	}
}
