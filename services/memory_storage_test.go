package services

import (
	"context"
	"testing"

	"careerguide/errors"
	"careerguide/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	ann, err := store.CreateUser(ctx, models.User{Username: "ann", Password: "hash", Skills: pq.StringArray{"Python"}})
	require.NoError(t, err)
	assert.Equal(t, uint(1), ann.ID)

	_, err = store.CreateUser(ctx, models.User{Username: "ann"})
	assert.ErrorIs(t, err, errors.ErrUserAlreadyExists)

	byName, err := store.GetUserByUsername(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, byName.ID)
	assert.Equal(t, pq.StringArray{"Python"}, byName.Skills)

	byName.Skills[0] = "COBOL"
	again, err := store.GetUserByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Python", again.Skills[0])

	_, err = store.GetUserByID(ctx, 99)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	_, err = store.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestMemoryStorageRecordsRequireUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	_, err := store.CreateCareer(ctx, models.Career{UserID: 7, Title: "Pilot"})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	_, err = store.CreateChatEntry(ctx, models.ChatHistory{UserID: 7, Message: "hi"})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	user, err := store.CreateUser(ctx, models.User{Username: "ann"})
	require.NoError(t, err)

	_, err = store.CreateCareer(ctx, models.Career{UserID: user.ID, Title: "Pilot", MatchPercentage: 80})
	require.NoError(t, err)
	_, err = store.CreateCareer(ctx, models.Career{UserID: user.ID, Title: "Chef", MatchPercentage: 77})
	require.NoError(t, err)
	entry, err := store.CreateChatEntry(ctx, models.ChatHistory{UserID: user.ID, Message: "hi", Response: "hello"})
	require.NoError(t, err)
	assert.False(t, entry.Timestamp.IsZero())

	careers, err := store.ListCareersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, careers, 2)
	assert.Equal(t, "Pilot", careers[0].Title)
	assert.Equal(t, "Chef", careers[1].Title)

	chats, err := store.ListChatByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	none, err := store.ListCareersByUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
