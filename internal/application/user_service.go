package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/davidmtz/usuarios-api/internal/domain/entity"
	"github.com/davidmtz/usuarios-api/internal/domain/repository"
)

// ProfileCache is a read-through cache of sanitized profiles. Implementations
// must be safe to skip entirely; the store stays the source of truth.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*entity.UserProfile, bool)
	Set(ctx context.Context, p *entity.UserProfile)
	Del(ctx context.Context, id string)
}

// UserService implements the profile flow plus the update/delete contract
// surface.
type UserService struct {
	Repo   repository.UserRepository
	Cache  ProfileCache // optional
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, cache ProfileCache, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Cache: cache, Logger: logger}
}

// GetProfile resolves an authenticated identity to its sanitized record. The
// id comes from a verified claim, never from caller input.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if s.Cache != nil {
		if p, ok := s.Cache.Get(ctx, userID); ok {
			return p, nil
		}
	}

	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := u.Profile()
	if s.Cache != nil {
		s.Cache.Set(ctx, p)
	}
	return p, nil
}

type UpdateProfileInput struct {
	Nombre   *string
	Telefono *string
	Edad     *int
}

// UpdateProfile patches the given fields, refreshes the stored timestamps and
// drops the cached projection.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.UserProfile, error) {
	u, err := s.Repo.Update(ctx, userID, repository.UserUpdate{
		Nombre:   in.Nombre,
		Telefono: in.Telefono,
		Edad:     in.Edad,
	})
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Del(ctx, userID)
	}
	return u.Profile(), nil
}

// DeleteUser removes the user and its cached projection. The bool reports
// whether a record existed.
func (s *UserService) DeleteUser(ctx context.Context, userID string) (bool, error) {
	ok, err := s.Repo.Delete(ctx, userID)
	if err != nil {
		return false, err
	}
	if ok && s.Cache != nil {
		s.Cache.Del(ctx, userID)
	}
	return ok, nil
}
