package services

import (
	"strings"

	"careerguide/dto"
)

// Canned assistant replies used when the model cannot answer.
const (
	FallbackGreeting = "Greetings, human. I am NEXUS, your cyberpunk career guide through the neon-lit pathways of professional development. How can I assist in augmenting your career trajectory today?"
	FallbackSkills   = "In this digital age, skill augmentation is critical. Focus on hybrid skills combining tech with human elements: AI ethics, data storytelling, or human-centered design. These meta-skills will make you irreplaceable even as automation accelerates. Consider project-based learning over passive consumption of content."
	FallbackCareer   = "The most resilient career paths in our cybernetic future involve human-AI collaboration. Consider roles in AI oversight, digital experience design, or technological ethics. These sectors are projected to expand by 300% in the next decade while remaining resistant to automation."
	FallbackGeneric  = "The neural networks of tomorrow's workforce require continuous adaptation. I recommend focusing on transferable meta-skills like systems thinking, ethical judgment, and technological fluency. These will serve you regardless of how rapidly specific tools evolve."
)

var fallbackCareers = []dto.CareerRecommendation{
	{
		Title:              "Full-Stack Developer",
		MatchPercentage:    92,
		RequiredSkills:     []string{"JavaScript", "React", "Node.js", "CSS", "Git", "API Design"},
		SkillGaps:          []string{"GraphQL", "DevOps"},
		RecommendedCourses: []string{"Advanced React Patterns", "Microservices Architecture"},
	},
	{
		Title:              "Machine Learning Engineer",
		MatchPercentage:    87,
		RequiredSkills:     []string{"Python", "TensorFlow", "Statistics", "Data Structures", "Algorithms", "Neural Networks"},
		SkillGaps:          []string{"Cloud ML Infrastructure", "Production ML Systems"},
		RecommendedCourses: []string{"Deep Learning Specialization", "MLOps Engineering"},
	},
	{
		Title:              "Cybersecurity Analyst",
		MatchPercentage:    84,
		RequiredSkills:     []string{"Networking", "Security Protocols", "Linux", "Risk Assessment", "Penetration Testing"},
		SkillGaps:          []string{"Cloud Security", "Threat Intelligence"},
		RecommendedCourses: []string{"Certified Ethical Hacker", "Cloud Security Architecture"},
	},
}

// FallbackCareers returns a fresh copy of the fixed recommendation set.
func FallbackCareers() dto.CareerAnalysisResponse {
	out := make([]dto.CareerRecommendation, len(fallbackCareers))
	for i, c := range fallbackCareers {
		out[i] = dto.CareerRecommendation{
			Title:              c.Title,
			MatchPercentage:    c.MatchPercentage,
			RequiredSkills:     append([]string(nil), c.RequiredSkills...),
			SkillGaps:          append([]string(nil), c.SkillGaps...),
			RecommendedCourses: append([]string(nil), c.RecommendedCourses...),
		}
	}
	return dto.CareerAnalysisResponse{Careers: out}
}

type chatRule struct {
	keywords []string
	reply    string
}

// Checked in order, first match wins.
var chatRules = []chatRule{
	{keywords: []string{"hello", "hi"}, reply: FallbackGreeting},
	{keywords: []string{"skill", "learn"}, reply: FallbackSkills},
	{keywords: []string{"job", "career"}, reply: FallbackCareer},
}

// FallbackChat picks a canned reply by case-insensitive substring match.
func FallbackChat(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return FallbackGeneric
}
