package models

import (
	"github.com/lib/pq"
)

// Career is one recommendation recorded for a user.
type Career struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             uint           `gorm:"not null;index" json:"userId"`
	Title              string         `gorm:"not null" json:"title"`
	MatchPercentage    int            `gorm:"not null" json:"matchPercentage"`
	RequiredSkills     pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"requiredSkills"`
	SkillGaps          pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"skillGaps"`
	RecommendedCourses pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"recommendedCourses"`
}

func (Career) TableName() string { return "careers" }
