package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/personauth/internal/domain/errors"
	"github.com/polkiloo/personauth/internal/domain/model"
	"github.com/polkiloo/personauth/internal/domain/repository"
)

// PersonUseCase validates person requests and maps store outcomes to domain errors.
type PersonUseCase struct {
	persons repository.PersonRepository
}

// NewPersonUseCase constructs PersonUseCase.
func NewPersonUseCase(persons repository.PersonRepository) *PersonUseCase {
	return &PersonUseCase{persons: persons}
}

// ListAll returns every stored person.
func (u *PersonUseCase) ListAll(ctx context.Context) ([]model.Person, error) {
	persons, err := u.persons.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if persons == nil {
		persons = []model.Person{}
	}
	return persons, nil
}

// GetByID returns the person or ErrNotFound.
func (u *PersonUseCase) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	person, found, err := u.persons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return person, nil
}

// Create stores a new person; the store assigns the id.
func (u *PersonUseCase) Create(ctx context.Context, login, password string) (*model.Person, error) {
	person := model.NewPerson(strings.TrimSpace(login), password)
	if !person.Valid() {
		return nil, domainErrors.ErrInvalidPerson
	}
	return u.persons.Save(ctx, person)
}

// Update replaces an existing person. Unknown ids, including zero, yield ErrNotFound.
func (u *PersonUseCase) Update(ctx context.Context, person model.Person) (*model.Person, error) {
	person.Login = strings.TrimSpace(person.Login)
	if !person.Valid() {
		return nil, domainErrors.ErrInvalidPerson
	}
	if person.ID <= 0 {
		return nil, domainErrors.ErrNotFound
	}

	if _, err := u.GetByID(ctx, person.ID); err != nil {
		return nil, err
	}
	return u.persons.Save(ctx, &person)
}

// Delete removes an existing person or returns ErrNotFound.
func (u *PersonUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.persons.DeleteByID(ctx, id)
}
