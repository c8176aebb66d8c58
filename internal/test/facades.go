package test

import (
	"context"

	"github.com/polkiloo/personauth/internal/domain/model"
)

// PersonFacadeStub provides controllable behaviour for person endpoints.
type PersonFacadeStub struct {
	ListFn   func(context.Context) ([]model.Person, error)
	GetFn    func(context.Context, int64) (*model.Person, error)
	CreateFn func(context.Context, string, string) (*model.Person, error)
	UpdateFn func(context.Context, model.Person) (*model.Person, error)
	DeleteFn func(context.Context, int64) error
	ReadyFn  func(context.Context) error
}

// ListPersons returns configured list or a single default person.
func (s PersonFacadeStub) ListPersons(ctx context.Context) ([]model.Person, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Person{{ID: 1, Login: "username", Password: "password"}}, nil
}

// GetPerson returns configured person or a default one with the given id.
func (s PersonFacadeStub) GetPerson(ctx context.Context, id int64) (*model.Person, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Person{ID: id, Login: "username", Password: "password"}, nil
}

// CreatePerson echoes the credentials with id 1.
func (s PersonFacadeStub) CreatePerson(ctx context.Context, login, password string) (*model.Person, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, login, password)
	}
	return &model.Person{ID: 1, Login: login, Password: password}, nil
}

// UpdatePerson echoes the person.
func (s PersonFacadeStub) UpdatePerson(ctx context.Context, person model.Person) (*model.Person, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, person)
	}
	return &person, nil
}

// DeletePerson executes configured handler.
func (s PersonFacadeStub) DeletePerson(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Ready executes configured readiness probe.
func (s PersonFacadeStub) Ready(ctx context.Context) error {
	if s.ReadyFn != nil {
		return s.ReadyFn(ctx)
	}
	return nil
}
