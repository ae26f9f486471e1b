package memstore

import (
	"context"
	"sync"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

// UserStore is the in-memory implementation of models.UserStore. The admin
// module has no persistence requirement; state lives for the process
// lifetime only.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

var _ models.UserStore = &UserStore{}

func NewUserStore(seed []models.User) *UserStore {
	users := make([]models.User, len(seed))
	copy(users, seed)
	return &UserStore{users: users}
}

func (s *UserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *UserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *user
	created.ID = uuid.New().String()
	if created.LastActive == "" {
		created.LastActive = "только что"
	}
	s.users = append(s.users, created)
	return &created, nil
}

// Update merges non-zero fields of the patch into the stored user.
func (s *UserStore) Update(_ context.Context, id string, patch *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		updated := s.users[i]
		if err := mergo.Merge(&updated, *patch, mergo.WithOverride); err != nil {
			return nil, err
		}
		updated.ID = id
		s.users[i] = updated
		return &updated, nil
	}
	return nil, models.NewNotFoundError("user")
}

func (s *UserStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("user")
}
