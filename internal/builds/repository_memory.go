package builds

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository keeps builds for the no-database fallback.
// Everything in it is lost on restart.
type InMemoryRepository struct {
	mu     sync.Mutex
	builds []*BuildRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		builds: make([]*BuildRecord, 0),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, build *BuildRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Generate UUID if not already set
	if build.ID == "" {
		build.ID = uuid.New().String()
	}

	stored := *build
	r.builds = append(r.builds, &stored)
	return build.ID, nil
}

func (r *InMemoryRepository) ListRecent(ctx context.Context, limit int) ([]*BuildRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit > len(r.builds) {
		limit = len(r.builds)
	}

	// newest first
	recent := make([]*BuildRecord, 0, limit)
	for i := len(r.builds) - 1; i >= 0 && len(recent) < limit; i-- {
		stored := *r.builds[i]
		recent = append(recent, &stored)
	}

	return recent, nil
}
