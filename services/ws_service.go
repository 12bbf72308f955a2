package services

import (
	"bytes"
	"context"
	"net/http"

	"careerguide/constants"
	"careerguide/dto"
	"careerguide/errors"
	"careerguide/services/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/olahol/melody"
)

// ChatSocket serves the chat assistant over websocket frames. Each text frame
// is answered by the same pipeline as POST /api/chat.
type ChatSocket struct {
	m      *melody.Melody
	chat   *ChatService
	logger logger.Logger
}

func NewChatSocket(m *melody.Melody, chat *ChatService, log logger.Logger) *ChatSocket {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	s := &ChatSocket{m: m, chat: chat, logger: log}
	m.HandleConnect(func(session *melody.Session) {
		s.logger.Debug("ws chat connected: %s", sessionIDOf(session))
	})
	m.HandleMessage(func(session *melody.Session, msg []byte) {
		ctx := context.Background()
		if session.Request != nil {
			ctx = session.Request.Context()
		}
		if err := session.Write(s.Reply(ctx, sessionIDOf(session), msg)); err != nil {
			s.logger.Error("ws chat write failed: %v", err)
		}
	})
	return s
}

// Upgrade chuyển request sang websocket, giữ session id của client nếu có
func (s *ChatSocket) Upgrade(sessionID string, w http.ResponseWriter, r *http.Request) error {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return s.m.HandleRequestWithKeys(w, r, map[string]any{constants.SessionContext: sessionID})
}

// Reply answers one frame. The frame is a raw message or {"text": "..."}.
func (s *ChatSocket) Reply(ctx context.Context, sessionID string, frame []byte) []byte {
	req := dto.ChatRequest{Message: string(frame)}
	if trimmed := bytes.TrimSpace(frame); len(trimmed) > 0 && trimmed[0] == '{' {
		var in dto.IncomingMessage
		if err := json.Unmarshal(trimmed, &in); err == nil {
			req = dto.ChatRequest{Message: in.Text, UserID: in.UserID}
		}
	}

	resp, _, err := s.chat.Reply(ctx, sessionID, req)
	if err != nil {
		msg := "Invalid input data"
		if appErr := errors.GetAppError(err); appErr != nil {
			msg = appErr.Message
		}
		return mustJSON(map[string]string{"message": msg})
	}
	return mustJSON(resp)
}

func sessionIDOf(session *melody.Session) string {
	if v, ok := session.Get(constants.SessionContext); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"message":"internal error"}`)
	}
	return b
}
