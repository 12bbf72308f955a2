package services

import (
	"context"

	"careerguide/builders"
	"careerguide/commands"
	"careerguide/constants"
	"careerguide/dto"
	"careerguide/services/logger"
	"careerguide/validator"
)

// ChatService answers assistant messages with the model, or with a
// keyword-matched canned reply when the model is unavailable.
type ChatService struct {
	inference *InferenceClient
	sessions  SessionStore
	storage   Storage
	logger    logger.Logger
}

type ChatServiceOptions struct {
	Inference *InferenceClient
	Sessions  SessionStore
	Storage   Storage
	Logger    logger.Logger
}

func NewChatService(opts ChatServiceOptions) *ChatService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ChatService{
		inference: opts.Inference,
		sessions:  opts.Sessions,
		storage:   opts.Storage,
		logger:    opts.Logger,
	}
}

// Reply returns the assistant answer and its source. An empty message is the
// only error.
func (s *ChatService) Reply(ctx context.Context, sessionID string, req dto.ChatRequest) (out dto.ChatResponse, source string, err error) {
	if err := validator.ValidateChat(&req); err != nil {
		return dto.ChatResponse{}, "", err
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("chat panicked, using fallback response: %v", r)
			out, source, err = dto.ChatResponse{Response: FallbackChat(req.Message)}, constants.SourceFallback, nil
		}
	}()

	prompt := builders.NewChatPrompt().WithMessage(req.Message).Build()
	reply, err := s.inference.Chat(ctx, prompt)
	if err != nil {
		s.logger.Error("inference error, using fallback response: %v", err)
		reply, source = FallbackChat(req.Message), constants.SourceFallback
	} else {
		source = constants.SourceModel
	}

	s.remember(ctx, sessionID, req.Message, reply)
	if req.UserID != nil {
		s.record(ctx, *req.UserID, req.Message, reply)
	}
	return dto.ChatResponse{Response: reply}, source, nil
}

// History returns the transcript of sessionID.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]dto.ChatTurn, error) {
	if s.sessions == nil || sessionID == "" {
		return []dto.ChatTurn{}, nil
	}
	return s.sessions.History(ctx, sessionID)
}

// ClearHistory drops the transcript of sessionID.
func (s *ChatService) ClearHistory(ctx context.Context, sessionID string) error {
	if s.sessions == nil || sessionID == "" {
		return nil
	}
	return s.sessions.Clear(ctx, sessionID)
}

func (s *ChatService) remember(ctx context.Context, sessionID, message, reply string) {
	if s.sessions == nil || sessionID == "" {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("chat session %s not updated: panic: %v", sessionID, r)
		}
	}()
	err := s.sessions.Append(ctx, sessionID,
		dto.ChatTurn{Message: message, IsBot: false},
		dto.ChatTurn{Message: reply, IsBot: true},
	)
	if err != nil {
		s.logger.Error("chat session %s not updated: %v", sessionID, err)
	}
}

func (s *ChatService) record(ctx context.Context, userID uint, message, reply string) {
	if s.storage == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("chat history not recorded: panic: %v", r)
		}
	}()
	if err := commands.NewRecordChatCommand(s.storage, userID, message, reply).Execute(ctx); err != nil {
		s.logger.Error("chat history not recorded: %v", err)
	}
}
