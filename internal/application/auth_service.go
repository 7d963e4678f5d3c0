package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/davidmtz/usuarios-api/internal/domain/entity"
	"github.com/davidmtz/usuarios-api/internal/domain/repository"
	"github.com/davidmtz/usuarios-api/internal/domain/service"
	"github.com/davidmtz/usuarios-api/pkg/apperrors"
	"github.com/davidmtz/usuarios-api/pkg/mailer"
)

// Publisher is the slice of the queue client the auth flow needs.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService implements the registration and login flows.
type AuthService struct {
	Repo   repository.UserRepository
	Hasher service.PasswordHasher
	Tokens service.TokenService
	Pub    Publisher // optional; welcome emails are fire-and-forget
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, hasher service.PasswordHasher, tokens service.TokenService, pub Publisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Hasher: hasher, Tokens: tokens, Pub: pub, Logger: logger}
}

type RegisterInput struct {
	Nombre   string
	Email    string
	Password string
	Telefono string
	Edad     int
}

// AuthResult is what register and login hand back: the sanitized user and a
// signed token.
type AuthResult struct {
	User  *entity.UserProfile `json:"user"`
	Token string              `json:"token"`
}

// Register validates the candidate, ensures the email is free, hashes the
// password, persists the user and issues a token. The pre-check is advisory;
// the store's uniqueness constraint decides races.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	_, err := s.Repo.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	u := &entity.User{
		Nombre:       strings.TrimSpace(in.Nombre),
		Email:        in.Email,
		PasswordHash: hash,
		Telefono:     strings.TrimSpace(in.Telefono),
		Edad:         in.Edad,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(service.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		// Registration and token issuance are one logical operation; roll the
		// insert back so a failed registration leaves no user behind.
		if _, delErr := s.Repo.Delete(ctx, u.ID); delErr != nil && s.Logger != nil {
			s.Logger.WithError(delErr).WithField("user_id", u.ID).Error("rollback after token failure")
		}
		return nil, apperrors.Storage(err)
	}

	s.enqueueWelcome(ctx, u)

	return &AuthResult{User: u.Profile(), Token: token}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.Hasher.Check(password, u.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(service.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	return &AuthResult{User: u.Profile(), Token: token}, nil
}

func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	if err := s.Pub.PublishJSON(ctx, mailer.WelcomeJob(u.Email, u.Nombre)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}
