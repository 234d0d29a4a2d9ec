package memory

import (
	"context"
	"sync"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
)

// MatchStore 每局只保留最新版本的记录。
type MatchStore struct {
	mu      sync.RWMutex
	records map[entity.WorldID]port.MatchRecord
	order   []entity.WorldID
}

var _ port.MatchStore = (*MatchStore)(nil)

func NewMatchStore() *MatchStore {
	return &MatchStore{records: make(map[entity.WorldID]port.MatchRecord)}
}

// Save 版本不比已有记录新时忽略。
func (s *MatchStore) Save(ctx context.Context, r *port.MatchRecord) error {
	if r == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.records[r.WorldID]
	if ok && cur.Version >= r.Version {
		return nil
	}
	if !ok {
		s.order = append(s.order, r.WorldID)
	}
	s.records[r.WorldID] = *r
	return nil
}

// List 按首次保存的顺序返回。
func (s *MatchStore) List(ctx context.Context) ([]port.MatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]port.MatchRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *MatchStore) Get(id entity.WorldID) (port.MatchRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	return r, ok
}
