package services

import (
	"context"
	"sync"
	"time"

	"careerguide/errors"
	"careerguide/models"

	"github.com/lib/pq"
)

// MemoryStorage is an in-process Storage used when no database is configured.
type MemoryStorage struct {
	mu       sync.RWMutex
	users    []models.User
	careers  []models.Career
	chats    []models.ChatHistory
	now      func() time.Time
	nextUser uint
	nextCar  uint
	nextChat uint
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{now: func() time.Time { return time.Now().UTC() }}
}

func (m *MemoryStorage) GetUserByID(_ context.Context, id uint) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return models.User{}, errors.ErrUserNotFound
}

func (m *MemoryStorage) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return models.User{}, errors.ErrUserNotFound
}

func (m *MemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return models.User{}, errors.ErrUserAlreadyExists
		}
	}
	m.nextUser++
	user = cloneUser(user)
	user.ID = m.nextUser
	m.users = append(m.users, user)
	return cloneUser(user), nil
}

func (m *MemoryStorage) ListCareersByUser(_ context.Context, userID uint) ([]models.Career, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Career{}
	for _, c := range m.careers {
		if c.UserID == userID {
			out = append(out, cloneCareer(c))
		}
	}
	return out, nil
}

func (m *MemoryStorage) CreateCareer(_ context.Context, career models.Career) (models.Career, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasUser(career.UserID) {
		return models.Career{}, errors.ErrUserNotFound
	}
	m.nextCar++
	career = cloneCareer(career)
	career.ID = m.nextCar
	m.careers = append(m.careers, career)
	return cloneCareer(career), nil
}

func (m *MemoryStorage) ListChatByUser(_ context.Context, userID uint) ([]models.ChatHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.ChatHistory{}
	for _, c := range m.chats {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemoryStorage) CreateChatEntry(_ context.Context, entry models.ChatHistory) (models.ChatHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasUser(entry.UserID) {
		return models.ChatHistory{}, errors.ErrUserNotFound
	}
	m.nextChat++
	entry.ID = m.nextChat
	if entry.Timestamp.IsZero() {
		entry.Timestamp = m.now()
	}
	m.chats = append(m.chats, entry)
	return entry, nil
}

// caller holds m.mu
func (m *MemoryStorage) hasUser(id uint) bool {
	for _, u := range m.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func cloneStrings(s pq.StringArray) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return append(pq.StringArray{}, s...)
}

func cloneUser(u models.User) models.User {
	u.Skills = cloneStrings(u.Skills)
	u.Interests = cloneStrings(u.Interests)
	return u
}

func cloneCareer(c models.Career) models.Career {
	c.RequiredSkills = cloneStrings(c.RequiredSkills)
	c.SkillGaps = cloneStrings(c.SkillGaps)
	c.RecommendedCourses = cloneStrings(c.RecommendedCourses)
	return c
}
