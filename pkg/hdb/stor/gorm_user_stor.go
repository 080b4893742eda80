package stor

import (
	"errors"
	"time"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type GormUserStor struct {
	db *gorm.DB
}

func NewGormUserStor(db *gorm.DB) *GormUserStor {
	return &GormUserStor{db: db}
}

// CreateUser creates a new user. The name must be unused; email defaults to
// empty and the user starts with no team.
func (s *GormUserStor) CreateUser(user *model.User) (*model.User, error) {
	var err error

	var existing model.User
	if err = s.db.Where("name = ?", user.Name).First(&existing).Error; err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	user.Slug = slug.Make(user.Name)
	user.TeamID = nil
	user.CreatedAt = time.Now()

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *GormUserStor) Authenticate(name, password string) (*model.User, error) {
	user, err := s.GetUserByName(name)
	if err != nil {
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *GormUserStor) GetUserByID(userID int64) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *GormUserStor) GetUserByName(name string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *GormUserStor) GetUserBySlug(userSlug string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("slug = ?", userSlug).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
