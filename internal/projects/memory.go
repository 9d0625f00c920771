package projects

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

// MemoryStore keeps projects in process. Used for dry runs and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	recs   []domain.ProjectRecord
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) InsertProject(_ context.Context, rec *domain.ProjectRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	rec.ID = m.nextID
	rec.CreatedAt = m.now().UTC()

	stored := *rec
	stored.Features = append([]string(nil), rec.Features...)
	stored.Technologies = append([]string(nil), rec.Technologies...)
	stored.Components = append([]string(nil), rec.Components...)
	m.recs = append(m.recs, stored)
	return nil
}

func (m *MemoryStore) ListProjects(_ context.Context, owner int64) ([]domain.ProjectSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ProjectSummary, 0)
	for _, r := range m.recs {
		if r.OwnerID != owner {
			continue
		}
		out = append(out, domain.ProjectSummary{
			ID: r.ID, Name: r.Name, Type: r.Type, Description: r.Description, CreatedAt: r.CreatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetProject(_ context.Context, owner, id int64) (*domain.ProjectRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.recs {
		if r.ID == id && r.OwnerID == owner {
			rec := r
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Len reports how many projects have been stored.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.recs)
}
