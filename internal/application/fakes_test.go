package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/davidmtz/usuarios-api/internal/domain/entity"
	"github.com/davidmtz/usuarios-api/internal/domain/repository"
	"github.com/davidmtz/usuarios-api/internal/domain/service"
	"github.com/davidmtz/usuarios-api/pkg/apperrors"
)

// fakeRepo is an in-memory UserRepository honoring the same error contract as
// the postgres implementation, including atomic uniqueness under concurrency.
type fakeRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User // keyed by id

	failWith error // when set, every call fails with this
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*entity.User{}}
}

func (r *fakeRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for _, ex := range r.users {
		if strings.EqualFold(ex.Email, u.Email) {
			return apperrors.ErrEmailTaken
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("u-%d", r.seq)
	u.Email = strings.ToLower(u.Email)
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, id string, fields repository.UserUpdate) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if fields.Nombre != nil {
		u.Nombre = *fields.Nombre
	}
	if fields.Telefono != nil {
		u.Telefono = *fields.Telefono
	}
	if fields.Edad != nil {
		u.Edad = *fields.Edad
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.users[id]
	delete(r.users, id)
	return ok, nil
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Check(password, hash string) bool     { return hash == "hashed:"+password }

type fakeTokens struct {
	failWith error
}

func (f fakeTokens) Issue(c service.Claims) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	return "tok:" + c.UserID + ":" + c.Email, nil
}

func (f fakeTokens) Verify(token string) (*service.Claims, error) {
	var c service.Claims
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[0] != "tok" {
		return nil, apperrors.ErrInvalidToken
	}
	c.UserID, c.Email = parts[1], parts[2]
	return &c, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads []any
	failWith error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failWith != nil {
		return p.failWith
	}
	p.payloads = append(p.payloads, body)
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*entity.UserProfile
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*entity.UserProfile{}}
}

func (c *fakeCache) Get(_ context.Context, id string) (*entity.UserProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[id]
	if ok {
		c.hits++
	}
	return p, ok
}

func (c *fakeCache) Set(_ context.Context, p *entity.UserProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[p.ID] = p
}

func (c *fakeCache) Del(_ context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}
