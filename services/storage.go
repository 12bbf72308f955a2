package services

import (
	"context"
	stderrors "errors"
	"time"

	"careerguide/errors"
	"careerguide/models"

	"gorm.io/gorm"
)

// Storage is the persistence gateway for users, recorded careers and chat
// history. Rows are only inserted and read.
type Storage interface {
	GetUserByID(ctx context.Context, id uint) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	ListCareersByUser(ctx context.Context, userID uint) ([]models.Career, error)
	CreateCareer(ctx context.Context, career models.Career) (models.Career, error)
	ListChatByUser(ctx context.Context, userID uint) ([]models.ChatHistory, error)
	CreateChatEntry(ctx context.Context, entry models.ChatHistory) (models.ChatHistory, error)
}

// GormStorage implements Storage on gorm.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// Migrate creates or updates the users, careers and chat_history tables.
func (s *GormStorage) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.User{}, &models.Career{}, &models.ChatHistory{})
}

// DB exposes the handle for health checks.
func (s *GormStorage) DB() *gorm.DB { return s.db }

func (s *GormStorage) GetUserByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, translateDBError(err)
	}
	return user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, translateDBError(err)
	}
	return user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = 0
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, translateDBError(err)
	}
	return user, nil
}

func (s *GormStorage) ListCareersByUser(ctx context.Context, userID uint) ([]models.Career, error) {
	var careers []models.Career
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&careers).Error; err != nil {
		return nil, translateDBError(err)
	}
	return careers, nil
}

func (s *GormStorage) CreateCareer(ctx context.Context, career models.Career) (models.Career, error) {
	if err := s.userExists(ctx, career.UserID); err != nil {
		return models.Career{}, err
	}
	career.ID = 0
	if err := s.db.WithContext(ctx).Create(&career).Error; err != nil {
		return models.Career{}, translateDBError(err)
	}
	return career, nil
}

func (s *GormStorage) ListChatByUser(ctx context.Context, userID uint) ([]models.ChatHistory, error) {
	var entries []models.ChatHistory
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return nil, translateDBError(err)
	}
	return entries, nil
}

func (s *GormStorage) CreateChatEntry(ctx context.Context, entry models.ChatHistory) (models.ChatHistory, error) {
	if err := s.userExists(ctx, entry.UserID); err != nil {
		return models.ChatHistory{}, err
	}
	entry.ID = 0
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return models.ChatHistory{}, translateDBError(err)
	}
	return entry, nil
}

func (s *GormStorage) userExists(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return translateDBError(err)
	}
	if count == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}

func translateDBError(err error) error {
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return errors.ErrUserNotFound
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return errors.ErrUserAlreadyExists
	default:
		return errors.NewAppError(errors.ErrCodeDBError, "database error", err)
	}
}
