package builders

import (
	"fmt"
	"strings"

	"careerguide/constants"
	"careerguide/dto"
)

// Prompt is what the inference client sends to the model. JSON asks the
// provider for a JSON-object reply; MaxTokens caps the reply when positive.
type Prompt struct {
	System    string
	User      string
	JSON      bool
	MaxTokens int
}

const careerTemplate = `I need career recommendations based on the following profile:
Name: %s
Education Level: %s
Skills: %s
Interests: %s
Career Goals: %s

Please provide %d career path recommendations with the following information:
1. Career title
2. Match percentage (between %d-%d%%)
3. Required skills (list of %d-%d skills)
4. Skill gaps (list of %d-%d skills the person doesn't have but needs)
5. Recommended courses (list of %d courses or certifications)

Format the response as a JSON object with the structure:
{
  "careers": [
    {
      "title": "Career Title",
      "matchPercentage": 85,
      "requiredSkills": ["Skill 1", "Skill 2", "Skill 3", "Skill 4"],
      "skillGaps": ["Gap Skill 1", "Gap Skill 2"],
      "recommendedCourses": ["Course 1", "Course 2"]
    }
  ]
}`

var chatSystemPrompt = fmt.Sprintf(
	"You are %s, a cyberpunk-styled AI career assistant. Provide concise, helpful career advice with a futuristic tone. "+
		"Focus on emerging tech careers, skill development, and learning resources. "+
		"Keep responses under %d words and include specific, actionable advice.",
	constants.AssistantName, constants.ChatWordLimit,
)

// CareerPromptBuilder giúp tạo prompt phân tích nghề nghiệp theo từng bước
type CareerPromptBuilder struct {
	profile dto.ProfileInput
}

func NewCareerPrompt() *CareerPromptBuilder {
	return &CareerPromptBuilder{}
}

// WithProfile thêm hồ sơ người dùng
func (b *CareerPromptBuilder) WithProfile(p dto.ProfileInput) *CareerPromptBuilder {
	b.profile = p
	return b
}

// Build tạo prompt hoàn chỉnh
func (b *CareerPromptBuilder) Build() Prompt {
	p := b.profile
	user := fmt.Sprintf(careerTemplate,
		strings.TrimSpace(p.Name),
		strings.TrimSpace(p.Education),
		strings.TrimSpace(p.Skills),
		strings.TrimSpace(p.Interests),
		strings.TrimSpace(p.CareerGoals),
		constants.CareerCount,
		constants.MinMatchPercentage, constants.MaxMatchPercentage,
		constants.MinRequiredSkills, constants.MaxRequiredSkills,
		constants.MinSkillGaps, constants.MaxSkillGaps,
		constants.RecommendedCourseSize,
	)
	return Prompt{User: user, JSON: true}
}

// ChatPromptBuilder pairs the fixed assistant persona with the raw user message.
type ChatPromptBuilder struct {
	message string
}

func NewChatPrompt() *ChatPromptBuilder {
	return &ChatPromptBuilder{}
}

func (b *ChatPromptBuilder) WithMessage(message string) *ChatPromptBuilder {
	b.message = message
	return b
}

func (b *ChatPromptBuilder) Build() Prompt {
	return Prompt{System: chatSystemPrompt, User: b.message}
}

// ChatSystemPrompt returns the assistant persona instruction.
func ChatSystemPrompt() string {
	return chatSystemPrompt
}
