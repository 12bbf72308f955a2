package commands

import (
	"context"
	"fmt"

	"careerguide/dto"
	"careerguide/models"

	"github.com/lib/pq"
)

// RecordCommand định nghĩa interface cho các command ghi dữ liệu
type RecordCommand interface {
	Execute(ctx context.Context) error
}

type CareerWriter interface {
	CreateCareer(ctx context.Context, career models.Career) (models.Career, error)
}

type ChatWriter interface {
	CreateChatEntry(ctx context.Context, entry models.ChatHistory) (models.ChatHistory, error)
}

// RecordCareersCommand inserts one careers row per recommendation.
type RecordCareersCommand struct {
	store   CareerWriter
	userID  uint
	careers []dto.CareerRecommendation
}

func NewRecordCareersCommand(store CareerWriter, userID uint, careers []dto.CareerRecommendation) *RecordCareersCommand {
	return &RecordCareersCommand{
		store:   store,
		userID:  userID,
		careers: careers,
	}
}

func (c *RecordCareersCommand) Execute(ctx context.Context) error {
	for _, rec := range c.careers {
		row := models.Career{
			UserID:             c.userID,
			Title:              rec.Title,
			MatchPercentage:    rec.MatchPercentage,
			RequiredSkills:     pq.StringArray(append([]string{}, rec.RequiredSkills...)),
			SkillGaps:          pq.StringArray(append([]string{}, rec.SkillGaps...)),
			RecommendedCourses: pq.StringArray(append([]string{}, rec.RecommendedCourses...)),
		}
		if _, err := c.store.CreateCareer(ctx, row); err != nil {
			return fmt.Errorf("record career %q for user %d: %w", rec.Title, c.userID, err)
		}
	}
	return nil
}

// RecordChatCommand inserts one chat_history row.
type RecordChatCommand struct {
	store    ChatWriter
	userID   uint
	message  string
	response string
}

func NewRecordChatCommand(store ChatWriter, userID uint, message, response string) *RecordChatCommand {
	return &RecordChatCommand{
		store:    store,
		userID:   userID,
		message:  message,
		response: response,
	}
}

func (c *RecordChatCommand) Execute(ctx context.Context) error {
	_, err := c.store.CreateChatEntry(ctx, models.ChatHistory{
		UserID:   c.userID,
		Message:  c.message,
		Response: c.response,
	})
	if err != nil {
		return fmt.Errorf("record chat for user %d: %w", c.userID, err)
	}
	return nil
}
