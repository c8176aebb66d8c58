package app

import (
	"context"

	"github.com/polkiloo/personauth/internal/domain/model"
	"github.com/polkiloo/personauth/internal/domain/repository"
	"github.com/polkiloo/personauth/internal/usecase"
)

// PersonFacade exposes person use cases and store health to the HTTP layer.
type PersonFacade struct {
	persons *usecase.PersonUseCase
	health  repository.HealthChecker
}

// NewPersonFacade constructs PersonFacade.
func NewPersonFacade(persons *usecase.PersonUseCase, health repository.HealthChecker) *PersonFacade {
	return &PersonFacade{persons: persons, health: health}
}

// ListPersons returns every stored person.
func (f *PersonFacade) ListPersons(ctx context.Context) ([]model.Person, error) {
	return f.persons.ListAll(ctx)
}

// GetPerson returns the person with id or ErrNotFound.
func (f *PersonFacade) GetPerson(ctx context.Context, id int64) (*model.Person, error) {
	return f.persons.GetByID(ctx, id)
}

// CreatePerson stores a new person with a store-assigned id.
func (f *PersonFacade) CreatePerson(ctx context.Context, login, password string) (*model.Person, error) {
	return f.persons.Create(ctx, login, password)
}

// UpdatePerson replaces an existing person.
func (f *PersonFacade) UpdatePerson(ctx context.Context, person model.Person) (*model.Person, error) {
	return f.persons.Update(ctx, person)
}

// DeletePerson removes an existing person.
func (f *PersonFacade) DeletePerson(ctx context.Context, id int64) error {
	return f.persons.Delete(ctx, id)
}

// Ready reports whether the backing store is reachable.
func (f *PersonFacade) Ready(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
