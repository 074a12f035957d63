package repository

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	domainRepo "github.com/sangkips/kuittikone/internal/domain/repository"
	"gorm.io/gorm"
)

// DefaultDocumentID names the row of a single-store deployment
const DefaultDocumentID = "default"

type documentPostgresRepository struct {
	db *gorm.DB
	id string
}

// NewDocumentPostgresRepository stores the document as one jsonb row
func NewDocumentPostgresRepository(db *gorm.DB, id string) domainRepo.DocumentRepository {
	if id == "" {
		id = DefaultDocumentID
	}
	return &documentPostgresRepository{db: db, id: id}
}

func (r *documentPostgresRepository) Load(ctx context.Context) (*entity.Document, error) {
	var row entity.StoredDocument
	err := r.db.WithContext(ctx).Where("id = ?", r.id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load document %s", r.id)
	}

	var doc entity.Document
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode document %s", r.id)
	}
	return &doc, nil
}

func (r *documentPostgresRepository) Save(ctx context.Context, doc *entity.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	row := entity.StoredDocument{ID: r.id, Data: data}
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return errors.Wrapf(err, "save document %s", r.id)
	}
	return nil
}
