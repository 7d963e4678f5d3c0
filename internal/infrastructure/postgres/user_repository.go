package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/davidmtz/usuarios-api/internal/domain/entity"
	"github.com/davidmtz/usuarios-api/internal/domain/repository"
	"github.com/davidmtz/usuarios-api/pkg/apperrors"
)

// UserRepository implements repository.UserRepository on PostgreSQL. The
// unique index on lower(email) is the arbiter of email uniqueness; a
// violation surfaces as apperrors.ErrEmailTaken no matter how the race went.
type UserRepository struct {
	conn Conn
}

func NewUserRepository(conn Conn) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = `id, nombre, email, password_hash, telefono, edad, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO users (nombre, email, password_hash, telefono, edad)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, u.Nombre, strings.ToLower(u.Email), u.PasswordHash, u.Telefono, u.Edad)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmailTaken
		}
		return apperrors.Storage(err)
	}
	u.Email = strings.ToLower(u.Email)
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE lower(email) = lower($1)
	`, email)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

// Update patches the given fields and refreshes updated_at. Nil fields keep
// their stored value.
func (r *UserRepository) Update(ctx context.Context, id string, fields repository.UserUpdate) (*entity.User, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE users
		SET nombre     = COALESCE($2, nombre),
		    telefono   = COALESCE($3, telefono),
		    edad       = COALESCE($4, edad),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, fields.Nombre, fields.Telefono, fields.Edad)
	return scanUser(row)
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isMalformedID(err) {
			return false, nil
		}
		return false, apperrors.Storage(err)
	}
	return res.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash,
		&u.Telefono, &u.Edad, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Storage(err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// isMalformedID matches the error postgres raises when a value cannot be cast
// to uuid. A malformed id behaves like an absent record.
func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}

var _ repository.UserRepository = (*UserRepository)(nil)
