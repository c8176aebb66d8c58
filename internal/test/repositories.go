package test

import (
	"context"
	"sync"

	"github.com/polkiloo/personauth/internal/domain/model"
)

// PersonRepositoryStub records repository calls and serves lookups from a map.
type PersonRepositoryStub struct {
	FindByIDFn   func(context.Context, int64) (*model.Person, bool, error)
	FindAllFn    func(context.Context) ([]model.Person, error)
	SaveFn       func(context.Context, *model.Person) (*model.Person, error)
	DeleteByIDFn func(context.Context, int64) error

	Persons map[int64]model.Person
	Saved   []model.Person
	Deleted []int64
	Next    int64

	mu sync.Mutex
}

// NewPersonRepositoryStub constructs stub pre-populated with the given persons.
func NewPersonRepositoryStub(persons ...model.Person) *PersonRepositoryStub {
	s := &PersonRepositoryStub{Persons: make(map[int64]model.Person), Next: 1}
	for _, p := range persons {
		s.Persons[p.ID] = p
		if p.ID >= s.Next {
			s.Next = p.ID + 1
		}
	}
	return s
}

// FindByID returns stored person or not found flag.
func (s *PersonRepositoryStub) FindByID(ctx context.Context, id int64) (*model.Person, bool, error) {
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Persons[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

// FindAll returns stored persons in unspecified order.
func (s *PersonRepositoryStub) FindAll(ctx context.Context) ([]model.Person, error) {
	if s.FindAllFn != nil {
		return s.FindAllFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Person, 0, len(s.Persons))
	for _, p := range s.Persons {
		result = append(result, p)
	}
	return result, nil
}

// Save captures the argument and upserts it into the map.
func (s *PersonRepositoryStub) Save(ctx context.Context, person *model.Person) (*model.Person, error) {
	s.mu.Lock()
	s.Saved = append(s.Saved, *person)
	s.mu.Unlock()
	if s.SaveFn != nil {
		return s.SaveFn(ctx, person)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Persons == nil {
		s.Persons = make(map[int64]model.Person)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *person
	if stored.ID == 0 {
		stored.ID = s.Next
	}
	if stored.ID >= s.Next {
		s.Next = stored.ID + 1
	}
	s.Persons[stored.ID] = stored
	return &stored, nil
}

// DeleteByID records the id and removes it from the map.
func (s *PersonRepositoryStub) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.Deleted = append(s.Deleted, id)
	s.mu.Unlock()
	if s.DeleteByIDFn != nil {
		return s.DeleteByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Persons, id)
	return nil
}

// LastSaved returns the most recent Save argument.
func (s *PersonRepositoryStub) LastSaved() (model.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Saved) == 0 {
		return model.Person{}, false
	}
	return s.Saved[len(s.Saved)-1], true
}

// HealthCheckerStub reports a fixed health state.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
