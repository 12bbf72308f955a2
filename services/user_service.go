package services

import (
	"context"
	"fmt"
	"strings"

	"careerguide/dto"
	"careerguide/errors"
	"careerguide/models"
	"careerguide/services/logger"
	"careerguide/validator"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceInterface interface {
	Register(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetByID(ctx context.Context, id uint) (dto.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (dto.UserResponse, error)
	Careers(ctx context.Context, userID uint) ([]dto.CareerRecord, error)
	ChatHistory(ctx context.Context, userID uint) ([]dto.ChatHistoryRecord, error)
}

type UserService struct {
	storage Storage
	logger  logger.Logger
}

type UserServiceOptions struct {
	Storage Storage
	Logger  logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{
		storage: opts.Storage,
		logger:  opts.Logger,
	}
}

// Register tạo user mới, mật khẩu được hash bằng bcrypt
func (s *UserService) Register(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validator.ValidateUser(&req); err != nil {
		return dto.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, errors.NewAppError(errors.ErrCodeValidation, "password cannot be hashed", err)
	}

	user, err := s.storage.CreateUser(ctx, models.User{
		Username:    req.Username,
		Password:    string(hashed),
		Name:        req.Name,
		Education:   req.Education,
		Skills:      pq.StringArray(req.Skills),
		Interests:   pq.StringArray(req.Interests),
		CareerGoals: req.CareerGoals,
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	s.logger.Info("user %d registered as %s", user.ID, user.Username)
	return toUserResponse(user), nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (dto.UserResponse, error) {
	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (dto.UserResponse, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// Careers trả về các gợi ý nghề nghiệp đã lưu của user
func (s *UserService) Careers(ctx context.Context, userID uint) ([]dto.CareerRecord, error) {
	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.storage.ListCareersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list careers of user %d: %w", userID, err)
	}
	out := make([]dto.CareerRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CareerRecord{
			ID:     r.ID,
			UserID: r.UserID,
			CareerRecommendation: dto.CareerRecommendation{
				Title:              r.Title,
				MatchPercentage:    r.MatchPercentage,
				RequiredSkills:     nonNil(r.RequiredSkills),
				SkillGaps:          nonNil(r.SkillGaps),
				RecommendedCourses: nonNil(r.RecommendedCourses),
			},
		})
	}
	return out, nil
}

// ChatHistory trả về lịch sử chat đã lưu của user
func (s *UserService) ChatHistory(ctx context.Context, userID uint) ([]dto.ChatHistoryRecord, error) {
	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.storage.ListChatByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list chat history of user %d: %w", userID, err)
	}
	out := make([]dto.ChatHistoryRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ChatHistoryRecord{
			ID:        r.ID,
			UserID:    r.UserID,
			Message:   r.Message,
			Response:  r.Response,
			Timestamp: r.Timestamp,
		})
	}
	return out, nil
}

func toUserResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Education:   u.Education,
		Skills:      nonNil(u.Skills),
		Interests:   nonNil(u.Interests),
		CareerGoals: u.CareerGoals,
	}
}

func nonNil(s pq.StringArray) []string {
	if s == nil {
		return []string{}
	}
	return []string(s)
}
