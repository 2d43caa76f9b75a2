package store

import "github.com/workdeck/workdeck/pkg/model"

// PromptsStore abstracts the prompt log and the response cache for the
// external analytics pipeline.
type PromptsStore interface {
	CreatePrompt(p *model.Prompt) error
	ListPrompts(collectionID int64) ([]model.Prompt, error)

	// FetchCachedResponse looks up a cached pipeline response by hash key,
	// or ErrNotFound.
	FetchCachedResponse(collectionID int64, hashKey string) (*model.PromptResponse, error)

	// StoreCachedResponse upserts a cached pipeline response by
	// (collection, hash key).
	StoreCachedResponse(r *model.PromptResponse) error
}
