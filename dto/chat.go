package dto

import "time"

// ChatRequest is the chat request body. A non-string message fails binding
// and is reported the same way as a missing one.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  *uint  `json:"userId,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatTurn is one entry of a session transcript.
type ChatTurn struct {
	Message string `json:"message"`
	IsBot   bool   `json:"isBot"`
}

type ChatHistoryResponse struct {
	SessionID string     `json:"sessionId"`
	Turns     []ChatTurn `json:"turns"`
}

type ChatHistoryRecord struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// IncomingMessage is a websocket chat frame.
type IncomingMessage struct {
	Text   string `json:"text"`
	UserID *uint  `json:"userId,omitempty"`
}
