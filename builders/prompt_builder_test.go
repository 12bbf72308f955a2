package builders

import (
	"strings"
	"testing"

	"careerguide/dto"

	"github.com/stretchr/testify/assert"
)

func TestCareerPrompt(t *testing.T) {
	p := NewCareerPrompt().WithProfile(dto.ProfileInput{
		Name:        "  Ann ",
		Education:   "BSc",
		Skills:      "Python, SQL",
		Interests:   "Data",
		CareerGoals: "ML",
	}).Build()

	assert.True(t, p.JSON)
	assert.Empty(t, p.System)
	assert.Contains(t, p.User, "Name: Ann\n")
	assert.Contains(t, p.User, "Skills: Python, SQL")
	assert.Contains(t, p.User, "Please provide 3 career path recommendations")
	assert.Contains(t, p.User, "between 75-95%")
	assert.Contains(t, p.User, "list of 4-6 skills")
	assert.Contains(t, p.User, "list of 2-3 skills")
	assert.Contains(t, p.User, "list of 2 courses")
	assert.Contains(t, p.User, `"careers": [`)
}

func TestChatPrompt(t *testing.T) {
	p := NewChatPrompt().WithMessage("What should I learn?").Build()

	assert.False(t, p.JSON)
	assert.Equal(t, "What should I learn?", p.User)
	assert.True(t, strings.HasPrefix(p.System, "You are NEXUS"))
	assert.Contains(t, p.System, "under 150 words")
	assert.Equal(t, ChatSystemPrompt(), p.System)
}
