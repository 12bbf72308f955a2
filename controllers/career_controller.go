package controllers

import (
	"careerguide/constants"
	"careerguide/dto"
	"careerguide/errors"
	"careerguide/response"
	"careerguide/services"
	"careerguide/services/logger"
	"careerguide/validator"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	service *services.CareerService
	logger  logger.Logger
}

type CareerControllerOptions struct {
	Service *services.CareerService
	Logger  logger.Logger
}

func NewCareerController(opts CareerControllerOptions) *CareerController {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &CareerController{service: opts.Service, logger: opts.Logger}
}

// AnalyzeCareer godoc
// @Summary  Recommend career paths for a profile
// @Tags     career
// @Accept   json
// @Produce  json
// @Param    body body dto.ProfileInput true "Profile"
// @Success  200 {object} dto.CareerAnalysisResponse
// @Failure  400 {object} response.MessageBody
// @Router   /api/analyze-career [post]
func (cc *CareerController) AnalyzeCareer(c *gin.Context) {
	var input dto.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		cc.logger.Debug("analyze-career: body rejected: %v", err)
		response.ValidationError(c, validator.InvalidInputMessage, []errors.FieldError{
			{Field: "body", Message: "Request body must be a JSON object with string fields"},
		})
		return
	}

	out, source, err := cc.service.Analyze(c.Request.Context(), input)
	if err != nil {
		appErr := errors.GetAppError(err)
		if appErr == nil {
			response.ValidationError(c, validator.InvalidInputMessage, nil)
			return
		}
		response.ValidationError(c, appErr.Message, appErr.Fields)
		return
	}

	c.Header(constants.SourceHeader, source)
	response.Payload(c, out)
}
