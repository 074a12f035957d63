package repository

import (
	"context"

	"github.com/sangkips/kuittikone/internal/domain/entity"
)

// DocumentRepository loads and saves the store document as one unit
type DocumentRepository interface {
	// Load returns the stored document, or nil when nothing was saved yet
	Load(ctx context.Context) (*entity.Document, error)
	// Save replaces the stored document
	Save(ctx context.Context, doc *entity.Document) error
}
