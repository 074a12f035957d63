package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/repository"
	"github.com/sangkips/kuittikone/pkg/apperror"
)

// DocumentStore keeps the store document in memory and writes every change
// through the repository. A change is visible only after it was saved.
type DocumentStore struct {
	mu       sync.RWMutex
	repo     repository.DocumentRepository
	doc      *entity.Document
	activeID string
}

// NewDocumentStore creates a store holding an empty document until Load
func NewDocumentStore(repo repository.DocumentRepository) *DocumentStore {
	return &DocumentStore{
		repo: repo,
		doc:  entity.NewDocument(),
	}
}

// Load reads the persisted document. When nothing is stored yet, the seed
// profiles are inserted and the new document is saved. Every profile must
// validate; otherwise nothing is loaded. The active profile becomes the
// lowest profile id.
func (s *DocumentStore) Load(ctx context.Context, seeds []*entity.MerchantProfile) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return apperror.NewPersistenceError("load", err)
	}

	if doc == nil {
		doc = entity.NewDocument()
		for _, p := range seeds {
			doc.Presets[p.PresetID] = p.Clone()
		}
		if err := s.repo.Save(ctx, doc); err != nil {
			return apperror.NewPersistenceError("save", err)
		}
		log.Info().Int("profiles", len(seeds)).Msg("initialized new store document")
	}
	for _, id := range doc.PresetIDs() {
		if err := doc.Presets[id].Validate(); err != nil {
			log.Error().Err(err).Str("profile", id).Msg("stored profile is invalid")
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.activeID = firstID(doc)

	log.Info().
		Int("profiles", len(doc.Presets)).
		Int("warranties", len(doc.WarrantyDatabase)).
		Int("history", len(doc.History)).
		Str("active", s.activeID).
		Msg("store document loaded")
	return nil
}

// View runs fn against the current document under a read lock. fn must not
// keep or modify the document.
func (s *DocumentStore) View(fn func(doc *entity.Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}

// Snapshot returns a deep copy of the current document
func (s *DocumentStore) Snapshot() *entity.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Update applies fn to a copy of the document and saves it. The copy
// replaces the current document only when fn and the save both succeed.
func (s *DocumentStore) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		log.Error().Err(err).Msg("failed to save store document")
		return apperror.NewPersistenceError("save", err)
	}

	s.doc = next
	if _, ok := next.Presets[s.activeID]; !ok {
		s.activeID = ""
	}
	return nil
}

// Replace saves doc as the whole store document, dropping the current one
func (s *DocumentStore) Replace(ctx context.Context, doc *entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := doc.Clone()
	if err := s.repo.Save(ctx, next); err != nil {
		log.Error().Err(err).Msg("failed to save replaced store document")
		return apperror.NewPersistenceError("save", err)
	}

	s.doc = next
	if _, ok := next.Presets[s.activeID]; !ok {
		s.activeID = firstID(next)
	}
	return nil
}

// ActiveID returns the selected profile id, or "" when none is selected
func (s *DocumentStore) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// SetActive selects id. It returns false and keeps the previous selection
// when no profile has that id.
func (s *DocumentStore) SetActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doc.Presets[id]; !ok {
		return false
	}
	s.activeID = id
	return true
}

func firstID(doc *entity.Document) string {
	ids := doc.PresetIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
