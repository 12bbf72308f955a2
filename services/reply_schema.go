package services

import (
	"fmt"
	"strings"

	"careerguide/constants"
	"careerguide/dto"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

var careerReplySchema = gojsonschema.NewStringLoader(fmt.Sprintf(`{
  "type": "object",
  "required": ["careers"],
  "properties": {
    "careers": {
      "type": "array",
      "minItems": %[1]d,
      "maxItems": %[1]d,
      "items": {
        "type": "object",
        "required": ["title", "matchPercentage", "requiredSkills", "skillGaps", "recommendedCourses"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "matchPercentage": {"type": "integer", "minimum": %[2]d, "maximum": %[3]d},
          "requiredSkills": {"type": "array", "minItems": %[4]d, "maxItems": %[5]d, "items": {"$ref": "#/definitions/label"}},
          "skillGaps": {"type": "array", "minItems": %[6]d, "maxItems": %[7]d, "items": {"$ref": "#/definitions/label"}},
          "recommendedCourses": {"type": "array", "minItems": %[8]d, "maxItems": %[8]d, "items": {"$ref": "#/definitions/label"}}
        }
      }
    }
  },
  "definitions": {
    "label": {"type": "string", "minLength": 1}
  }
}`,
	constants.CareerCount,
	constants.MinMatchPercentage, constants.MaxMatchPercentage,
	constants.MinRequiredSkills, constants.MaxRequiredSkills,
	constants.MinSkillGaps, constants.MaxSkillGaps,
	constants.RecommendedCourseSize,
))

// extractJSONObject strips markdown fences and returns the outermost {...}.
func extractJSONObject(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	i := strings.Index(raw, "{")
	j := strings.LastIndex(raw, "}")
	if i < 0 || j <= i {
		return "", fmt.Errorf("no JSON object in model reply")
	}
	return raw[i : j+1], nil
}

// DecodeCareerReply validates the model's JSON reply against the career
// schema and decodes it.
func DecodeCareerReply(raw string) (dto.CareerAnalysisResponse, error) {
	body, err := extractJSONObject(raw)
	if err != nil {
		return dto.CareerAnalysisResponse{}, err
	}
	res, err := gojsonschema.Validate(careerReplySchema, gojsonschema.NewStringLoader(body))
	if err != nil {
		return dto.CareerAnalysisResponse{}, fmt.Errorf("parse model reply: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return dto.CareerAnalysisResponse{}, fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
	}
	var out dto.CareerAnalysisResponse
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return dto.CareerAnalysisResponse{}, fmt.Errorf("decode model reply: %w", err)
	}
	return out, nil
}
