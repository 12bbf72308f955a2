package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"careerguide/dto"
	"careerguide/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requiredMessages giữ thông báo cho từng trường bắt buộc
var requiredMessages = map[string]string{
	"name":        "Name is required",
	"education":   "Education is required",
	"skills":      "Skills are required",
	"interests":   "Interests are required",
	"careerGoals": "Career goals are required",
	"message":     "Message is required",
	"username":    "Username is required",
	"password":    "Password is required",
}

const (
	InvalidInputMessage    = "Invalid input data"
	MessageRequiredMessage = "Message is required"
)

// ValidateProfile checks that every profile field is present and non-empty.
func ValidateProfile(input *dto.ProfileInput) error {
	if input == nil {
		return errors.NewValidationError(InvalidInputMessage, []errors.FieldError{
			{Field: "body", Message: "Request body is required"},
		})
	}
	return check(input)
}

// ValidateChat checks the chat message. Chat reports a single message with
// no per-field detail.
func ValidateChat(req *dto.ChatRequest) error {
	if req == nil || req.Message == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, MessageRequiredMessage, nil)
	}
	return nil
}

// ValidateUser validate thông tin user
func ValidateUser(req *dto.CreateUserRequest) error {
	return check(req)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, InvalidInputMessage, err)
	}
	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return errors.NewValidationError(InvalidInputMessage, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
