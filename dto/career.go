package dto

// ProfileInput is the career-analysis request body.
type ProfileInput struct {
	Name        string `json:"name" validate:"required"`
	Education   string `json:"education" validate:"required"`
	Skills      string `json:"skills" validate:"required"`
	Interests   string `json:"interests" validate:"required"`
	CareerGoals string `json:"careerGoals" validate:"required"`
	// UserID, when set, records the recommendations for that user.
	UserID *uint `json:"userId,omitempty"`
}

type CareerRecommendation struct {
	Title              string   `json:"title"`
	MatchPercentage    int      `json:"matchPercentage"`
	RequiredSkills     []string `json:"requiredSkills"`
	SkillGaps          []string `json:"skillGaps"`
	RecommendedCourses []string `json:"recommendedCourses"`
}

type CareerAnalysisResponse struct {
	Careers []CareerRecommendation `json:"careers"`
}

// CareerRecord is a persisted recommendation as returned by the user routes.
type CareerRecord struct {
	ID     uint `json:"id"`
	UserID uint `json:"userId"`
	CareerRecommendation
}
