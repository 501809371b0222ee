package adapters

import (
	"context"
	"sync"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

// memoryUserStore is the ephemeral store used when no DynamoDB table is
// configured. Contents are lost on restart.
type memoryUserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemoryUserStore() outbound.UserStorePort {
	return &memoryUserStore{
		users: make(map[string]domain.User),
	}
}

func (s *memoryUserStore) State() string {
	return "memory"
}

func (s *memoryUserStore) Find(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, outbound.ErrUserNotFound
	}
	return &user, nil
}

func (s *memoryUserStore) Insert(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return outbound.ErrEmailTaken
	}
	s.users[user.Email] = user
	return nil
}

func (s *memoryUserStore) Update(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; !ok {
		return outbound.ErrUserNotFound
	}
	s.users[user.Email] = user
	return nil
}

func (s *memoryUserStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; !ok {
		return outbound.ErrUserNotFound
	}
	delete(s.users, email)
	return nil
}
