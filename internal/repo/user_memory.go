package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  []models.User{},
		nextID: 1,
	}
}

func (r *InMemoryUserRepository) find(match func(models.User) bool) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if match(user) {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id int) (models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *InMemoryUserRepository) GetByGoogleIDOrEmail(_ context.Context, googleID, email string) (models.User, error) {
	return r.find(func(u models.User) bool {
		return (u.GoogleID != nil && *u.GoogleID == googleID) || strings.EqualFold(u.Email, email)
	})
}

func (r *InMemoryUserRepository) CreateUser(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, u.Email) {
			return models.User{}, ErrDuplicatedValueUnique
		}
		if u.GoogleID != nil && user.GoogleID != nil && *user.GoogleID == *u.GoogleID {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}

	now := time.Now().UTC()
	u.ID = r.nextID
	r.nextID++
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	u.CreatedAt, u.UpdatedAt = now, now
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) update(id int, apply func(*models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			apply(&r.users[i])
			r.users[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *InMemoryUserRepository) LinkGoogleAccount(_ context.Context, id int, googleID string, profileImage *string) error {
	return r.update(id, func(u *models.User) {
		u.GoogleID = &googleID
		u.ProfileImage = profileImage
	})
}

func (r *InMemoryUserRepository) SetRole(_ context.Context, id int, role string) error {
	return r.update(id, func(u *models.User) { u.Role = role })
}

// Delete exists for tests that need a token whose user is gone.
func (r *InMemoryUserRepository) Delete(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return
		}
	}
}
