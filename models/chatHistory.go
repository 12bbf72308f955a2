package models

import "time"

type ChatHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"not null"`
	Response  string    `json:"response" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;autoCreateTime"`
}

func (ChatHistory) TableName() string { return "chat_history" }
