package model

import "time"

// Prompt is a logged analytics prompt and its output for a collection.
type Prompt struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID int64     `gorm:"column:collection_id;not null"`
	PromptText   string    `gorm:"column:prompt_text;not null"`
	PromptOut    string    `gorm:"column:prompt_out"`
	UserName     string    `gorm:"column:user_name"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Prompt) TableName() string {
	return "prompts"
}
