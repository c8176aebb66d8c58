package handlers

import (
	"context"

	"github.com/polkiloo/personauth/internal/domain/model"
)

// PersonFacade describes person operations exposed via HTTP.
type PersonFacade interface {
	ListPersons(ctx context.Context) ([]model.Person, error)
	GetPerson(ctx context.Context, id int64) (*model.Person, error)
	CreatePerson(ctx context.Context, login, password string) (*model.Person, error)
	UpdatePerson(ctx context.Context, person model.Person) (*model.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	Ready(ctx context.Context) error
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	PersonFacade
	HealthFacade
}
