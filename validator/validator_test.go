package validator

import (
	"testing"

	"careerguide/dto"
	"careerguide/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile(t *testing.T) {
	valid := dto.ProfileInput{Name: "Ann", Education: "BSc", Skills: "Python", Interests: "Data", CareerGoals: "ML"}
	assert.NoError(t, ValidateProfile(&valid))

	err := ValidateProfile(&dto.ProfileInput{Name: "Ann", Skills: "Python"})
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, InvalidInputMessage, appErr.Message)
	assert.Equal(t, []errors.FieldError{
		{Field: "education", Message: "Education is required"},
		{Field: "interests", Message: "Interests are required"},
		{Field: "careerGoals", Message: "Career goals are required"},
	}, appErr.Fields)
}

func TestValidateProfileAllMissing(t *testing.T) {
	appErr := errors.GetAppError(ValidateProfile(&dto.ProfileInput{}))
	require.NotNil(t, appErr)
	assert.Len(t, appErr.Fields, 5)
	assert.Equal(t, "name", appErr.Fields[0].Field)
	assert.Equal(t, "Name is required", appErr.Fields[0].Message)

	nilErr := errors.GetAppError(ValidateProfile(nil))
	require.NotNil(t, nilErr)
	assert.Equal(t, "body", nilErr.Fields[0].Field)
}

func TestValidateChat(t *testing.T) {
	assert.NoError(t, ValidateChat(&dto.ChatRequest{Message: "hi"}))
	// whitespace is still a message
	assert.NoError(t, ValidateChat(&dto.ChatRequest{Message: "   "}))

	for _, req := range []*dto.ChatRequest{nil, {}} {
		appErr := errors.GetAppError(ValidateChat(req))
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)
		assert.Equal(t, "Message is required", appErr.Message)
	}
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, ValidateUser(&dto.CreateUserRequest{Username: "ann", Password: "secret1"}))

	appErr := errors.GetAppError(ValidateUser(&dto.CreateUserRequest{Password: "12"}))
	require.NotNil(t, appErr)
	assert.Equal(t, []errors.FieldError{
		{Field: "username", Message: "Username is required"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}, appErr.Fields)
}
