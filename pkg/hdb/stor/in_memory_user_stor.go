package stor

import (
	"time"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type InMemoryUserStor struct {
	tables *InMemoryTables
}

func NewInMemoryUserStor(tables *InMemoryTables) *InMemoryUserStor {
	return &InMemoryUserStor{tables: tables}
}

func (s *InMemoryUserStor) CreateUser(user *model.User) (*model.User, error) {
	var err error

	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, u := range t.users {
		if u.Name == user.Name {
			return nil, ErrDuplicateUser
		}
	}

	if user.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	user.ID = t.nextID()
	user.Slug = slug.Make(user.Name)
	user.TeamID = nil
	user.CreatedAt = time.Now()

	t.users[user.ID] = copyUser(user)
	return user, nil
}

func (s *InMemoryUserStor) Authenticate(name, password string) (*model.User, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, u := range t.users {
		if u.Name == name {
			if u.Password != password {
				return nil, ErrInvalidCredentials
			}
			return copyUser(u), nil
		}
	}

	return nil, ErrUserNotFound
}

func (s *InMemoryUserStor) GetUserByID(userID int64) (*model.User, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	u, ok := t.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	return copyUser(u), nil
}

func (s *InMemoryUserStor) GetUserByName(name string) (*model.User, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, u := range t.users {
		if u.Name == name {
			return copyUser(u), nil
		}
	}

	return nil, ErrUserNotFound
}

func (s *InMemoryUserStor) GetUserBySlug(userSlug string) (*model.User, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, u := range t.users {
		if u.Slug == userSlug {
			return copyUser(u), nil
		}
	}

	return nil, ErrUserNotFound
}
