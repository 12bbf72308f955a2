package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"careerguide/constants"
	"careerguide/dto"
	"careerguide/errors"
	"careerguide/models"
	"careerguide/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annProfile() dto.ProfileInput {
	return dto.ProfileInput{
		Name:        "Ann",
		Education:   "BSc",
		Skills:      "Python",
		Interests:   "Data",
		CareerGoals: "ML",
	}
}

func newCareerService(model ChatModel, store Storage) *CareerService {
	return NewCareerService(CareerServiceOptions{
		Inference: NewInferenceClient(model, time.Second),
		Storage:   store,
		Logger:    logger.Nop{},
	})
}

func TestCareerServiceModelSuccess(t *testing.T) {
	svc := newCareerService(&fakeModel{reply: validCareerReply}, nil)

	out, source, err := svc.Analyze(context.Background(), annProfile())
	require.NoError(t, err)
	assert.Equal(t, constants.SourceModel, source)
	require.Len(t, out.Careers, 3)
	for _, c := range out.Careers {
		assert.GreaterOrEqual(t, c.MatchPercentage, 75)
		assert.LessOrEqual(t, c.MatchPercentage, 95)
	}
}

func TestCareerServiceFallsBack(t *testing.T) {
	svc := newCareerService(&fakeModel{err: fmt.Errorf("quota exceeded")}, nil)

	out, source, err := svc.Analyze(context.Background(), annProfile())
	require.NoError(t, err)
	assert.Equal(t, constants.SourceFallback, source)
	assert.Equal(t, FallbackCareers(), out)
}

func TestCareerServiceFallsBackOnPanic(t *testing.T) {
	svc := newCareerService(&fakeModel{panics: true}, nil)

	out, source, err := svc.Analyze(context.Background(), annProfile())
	require.NoError(t, err)
	assert.Equal(t, constants.SourceFallback, source)
	assert.Equal(t, FallbackCareers(), out)
}

func TestCareerServiceInvalidInputSkipsInference(t *testing.T) {
	model := &fakeModel{reply: validCareerReply}
	svc := newCareerService(model, nil)

	input := annProfile()
	input.Skills = ""
	_, _, err := svc.Analyze(context.Background(), input)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, []errors.FieldError{{Field: "skills", Message: "Skills are required"}}, appErr.Fields)
	assert.Zero(t, model.Calls())
}

func TestCareerServiceRecordsForUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	user, err := store.CreateUser(ctx, models.User{Username: "ann"})
	require.NoError(t, err)

	svc := newCareerService(&fakeModel{reply: validCareerReply}, store)
	input := annProfile()
	input.UserID = &user.ID
	_, _, err = svc.Analyze(ctx, input)
	require.NoError(t, err)

	rows, err := store.ListCareersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Data Engineer", rows[0].Title)
}

func TestCareerServiceUnknownUserStillAnswers(t *testing.T) {
	svc := newCareerService(&fakeModel{reply: validCareerReply}, NewMemoryStorage())
	missing := uint(404)
	input := annProfile()
	input.UserID = &missing

	out, source, err := svc.Analyze(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, constants.SourceModel, source)
	assert.Len(t, out.Careers, 3)
}
