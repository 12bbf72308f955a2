package services

import (
	"context"
	"fmt"

	"careerguide/builders"
	"careerguide/commands"
	"careerguide/constants"
	"careerguide/dto"
	"careerguide/services/logger"
	"careerguide/validator"
)

// CareerService runs the career-analysis pipeline:
// validate, build prompt, infer, and fall back to fixed data on any failure
// after validation.
type CareerService struct {
	inference *InferenceClient
	storage   Storage
	logger    logger.Logger
}

type CareerServiceOptions struct {
	Inference *InferenceClient
	Storage   Storage
	Logger    logger.Logger
}

func NewCareerService(opts CareerServiceOptions) *CareerService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &CareerService{
		inference: opts.Inference,
		storage:   opts.Storage,
		logger:    opts.Logger,
	}
}

// Analyze returns the recommendations and their source. The only error it
// returns is a validation error; inference problems yield the fallback set.
func (s *CareerService) Analyze(ctx context.Context, input dto.ProfileInput) (out dto.CareerAnalysisResponse, source string, err error) {
	if err := validator.ValidateProfile(&input); err != nil {
		return dto.CareerAnalysisResponse{}, "", err
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("career analysis panicked, using fallback response: %v", r)
			out, source, err = FallbackCareers(), constants.SourceFallback, nil
		}
	}()

	prompt := builders.NewCareerPrompt().WithProfile(input).Build()
	out, err = s.inference.AnalyzeCareer(ctx, prompt)
	if err != nil {
		s.logger.Error("inference error, using fallback response: %v", err)
		out, source = FallbackCareers(), constants.SourceFallback
	} else {
		source = constants.SourceModel
	}

	if input.UserID != nil {
		s.record(ctx, *input.UserID, out.Careers)
	}
	return out, source, nil
}

func (s *CareerService) record(ctx context.Context, userID uint, careers []dto.CareerRecommendation) {
	if s.storage == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("career recommendations not recorded: panic: %v", r)
		}
	}()
	cmd := commands.NewRecordCareersCommand(s.storage, userID, careers)
	if err := cmd.Execute(ctx); err != nil {
		s.logger.Error("%v", fmt.Errorf("career recommendations not recorded: %w", err))
	}
}
