package repository

import (
	"context"

	"github.com/polkiloo/personauth/internal/domain/model"
)

// PersonRepository describes persistence operations for persons.
type PersonRepository interface {
	// FindByID reports found=false with a nil error when id does not resolve.
	FindByID(ctx context.Context, id int64) (*model.Person, bool, error)
	FindAll(ctx context.Context) ([]model.Person, error)
	// Save inserts when person.ID is zero and overwrites (or creates) the record otherwise.
	Save(ctx context.Context, person *model.Person) (*model.Person, error)
	// DeleteByID is a no-op for unknown ids.
	DeleteByID(ctx context.Context, id int64) error
}

// HealthChecker is implemented by stores able to report connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
