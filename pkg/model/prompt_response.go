package model

import "time"

// PromptResponse caches the output of the analytics pipeline for a prompt,
// keyed by a hash of the prompt and its inputs. The pipeline itself is
// external; this subsystem only stores and serves the cache rows.
type PromptResponse struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID int64     `gorm:"column:collection_id;not null"`
	PromptText   string    `gorm:"column:prompt_text;not null"`
	PromptOut    string    `gorm:"column:prompt_out;type:jsonb"`
	HashKey      string    `gorm:"column:hash_key;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (PromptResponse) TableName() string {
	return "prompt_responses"
}
