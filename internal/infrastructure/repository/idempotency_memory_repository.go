package repository

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	domainRepo "github.com/sangkips/kuittikone/internal/domain/repository"
)

type idempotencyMemoryRepository struct {
	mu   sync.RWMutex
	keys map[string]entity.IdempotencyKey
	now  func() time.Time
}

// NewIdempotencyMemoryRepository keeps idempotency keys in process memory,
// for deployments without a database
func NewIdempotencyMemoryRepository() domainRepo.IdempotencyRepository {
	return &idempotencyMemoryRepository{
		keys: make(map[string]entity.IdempotencyKey),
		now:  time.Now,
	}
}

func memoryKey(key, scope string) string {
	return scope + "\x00" + key
}

func (r *idempotencyMemoryRepository) GetByKey(_ context.Context, key, scope string) (*entity.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ikey, ok := r.keys[memoryKey(key, scope)]
	if !ok {
		return nil, nil
	}
	return &ikey, nil
}

func (r *idempotencyMemoryRepository) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *ikey
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now()
	}
	r.keys[memoryKey(ikey.Key, ikey.Scope)] = stored
	return nil
}

func (r *idempotencyMemoryRepository) DeleteExpired(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, ikey := range r.keys {
		if ikey.IsExpired(now) {
			delete(r.keys, k)
		}
	}
	return nil
}
