package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// Ensure PromptsStore implements store.PromptsStore
var _ store.PromptsStore = (*PromptsStore)(nil)

// PromptsStore implements store.PromptsStore using GORM
type PromptsStore struct {
	db *gorm.DB
}

// NewPromptsStore creates a new PromptsStore
func NewPromptsStore(db *gorm.DB) *PromptsStore {
	return &PromptsStore{db: db}
}

func (s *PromptsStore) CreatePrompt(p *model.Prompt) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		INSERT INTO prompts (collection_id, prompt_text, prompt_out, user_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, p.CollectionID, p.PromptText, p.PromptOut, p.UserName, p.CreatedAt, p.UpdatedAt).Scan(&row)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	p.ID = row.ID
	return nil
}

func (s *PromptsStore) ListPrompts(collectionID int64) ([]model.Prompt, error) {
	var prompts []model.Prompt
	err := s.db.Raw(`
		SELECT id, collection_id, prompt_text, prompt_out, user_name, created_at, updated_at
		FROM prompts WHERE collection_id = ?
		ORDER BY id
	`, collectionID).Scan(&prompts).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return prompts, nil
}

// FetchCachedResponse looks up a cached pipeline response by hash key.
func (s *PromptsStore) FetchCachedResponse(collectionID int64, hashKey string) (*model.PromptResponse, error) {
	var r model.PromptResponse
	result := s.db.Raw(`
		SELECT id, collection_id, prompt_text, prompt_out, hash_key, created_at, updated_at
		FROM prompt_responses WHERE collection_id = ? AND hash_key = ?
	`, collectionID, hashKey).Scan(&r)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &r, nil
}

// StoreCachedResponse upserts a cached pipeline response keyed by
// (collection, hash key).
func (s *PromptsStore) StoreCachedResponse(r *model.PromptResponse) error {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	err := s.db.Exec(`
		INSERT INTO prompt_responses (collection_id, prompt_text, prompt_out, hash_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (collection_id, hash_key)
		DO UPDATE SET prompt_text = EXCLUDED.prompt_text,
		              prompt_out = EXCLUDED.prompt_out,
		              updated_at = EXCLUDED.updated_at
	`, r.CollectionID, r.PromptText, r.PromptOut, r.HashKey, r.CreatedAt, r.UpdatedAt).Error
	if err != nil {
		return store.OperationFailed(err)
	}
	return nil
}
