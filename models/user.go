package models

import (
	"github.com/lib/pq"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"unique;not null" json:"username"`
	Password    string         `gorm:"not null" json:"-"`
	Name        string         `gorm:"not null;default:''" json:"name"`
	Education   string         `gorm:"not null;default:''" json:"education"`
	Skills      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"skills"`
	Interests   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"interests"`
	CareerGoals string         `gorm:"column:career_goals;not null;default:''" json:"careerGoals"`
}

func (User) TableName() string { return "users" }
