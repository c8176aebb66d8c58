package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/polkiloo/personauth/internal/domain/model"
	"github.com/polkiloo/personauth/internal/domain/repository"
)

// Storage keeps persons in process memory. It is used when no database is configured.
type Storage struct {
	mu      sync.RWMutex
	persons map[int64]model.Person
	nextID  int64
}

var _ repository.PersonRepository = (*Storage)(nil)
var _ repository.HealthChecker = (*Storage)(nil)

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{persons: make(map[int64]model.Person), nextID: 1}
}

func (s *Storage) FindByID(ctx context.Context, id int64) (*model.Person, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.persons[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (s *Storage) FindAll(ctx context.Context) ([]model.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Person, 0, len(s.persons))
	for _, p := range s.persons {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Storage) Save(ctx context.Context, person *model.Person) (*model.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *person
	if stored.ID == 0 {
		stored.ID = s.nextID
	}
	// keep the sequence ahead of explicitly saved ids
	if stored.ID >= s.nextID {
		s.nextID = stored.ID + 1
	}
	s.persons[stored.ID] = stored
	return &stored, nil
}

func (s *Storage) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.persons, id)
	return nil
}

// HealthCheck always succeeds for in-memory storage.
func (s *Storage) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op kept for parity with the PostgreSQL storage.
func (s *Storage) Close() {}
