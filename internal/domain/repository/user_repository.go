package repository

import (
	"context"

	"github.com/davidmtz/usuarios-api/internal/domain/entity"
)

// UserUpdate carries the optional fields an update may touch. Nil means
// "leave unchanged". The password hash is deliberately not updatable here.
type UserUpdate struct {
	Nombre   *string
	Telefono *string
	Edad     *int
}

// UserRepository defines the interface for user persistence.
//
// Create fails with apperrors.ErrEmailTaken when the email is already
// registered (case-insensitively); the storage layer is the arbiter of that
// invariant, not the callers. Lookups return apperrors.ErrUserNotFound on a
// miss; any other storage problem surfaces as apperrors.ErrStorage.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, fields UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
