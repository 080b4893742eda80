package stor

import (
	"errors"
	"time"

	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type GormTeamStor struct {
	db *gorm.DB
}

func NewGormTeamStor(db *gorm.DB) *GormTeamStor {
	return &GormTeamStor{db: db}
}

// CreateTeamWithLeader creates the team and points the leader's TeamID at it
// in a single transaction. The leader is always the first member.
func (s *GormTeamStor) CreateTeamWithLeader(name string, leaderID int64) (*model.Team, error) {
	var err error

	team := &model.Team{
		Name:      name,
		Code:      GenerateTeamCode(),
		LeaderID:  leaderID,
		Members:   model.IDList{leaderID},
		CreatedAt: time.Now(),
	}

	if team.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", leaderID).Update("team_id", team.ID).Error
	})

	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *GormTeamStor) GetTeamByID(teamID int64) (*model.Team, error) {
	var team model.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

func (s *GormTeamStor) GetTeamByCode(code string) (*model.Team, error) {
	var team model.Team
	if err := s.db.Where("code = ?", code).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

func (s *GormTeamStor) GetTeamMembers(team *model.Team) ([]model.User, error) {
	var members []model.User
	if len(team.Members) == 0 {
		return members, nil
	}

	result := s.db.Where("id IN ?", []int64(team.Members)).Find(&members)
	return members, result.Error
}

// AddMemberByCode joins the user to the team identified by the invite code.
// Adding an existing member is a no-op; the user's back-reference is updated
// either way.
func (s *GormTeamStor) AddMemberByCode(code string, userID int64) (*model.Team, error) {
	var team model.Team

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("code = ?", code).First(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}

		if !team.Members.Contains(userID) {
			team.Members = append(team.Members, userID)
			if err := tx.Save(&team).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.User{}).Where("id = ?", userID).Update("team_id", team.ID).Error
	})

	if err != nil {
		return nil, err
	}

	return &team, nil
}

// RemoveMember takes the user out of their current team. A user without a
// team is a no-op.
func (s *GormTeamStor) RemoveMember(userID int64) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if user.TeamID == nil {
			return nil
		}

		var team model.Team
		if err := tx.First(&team, *user.TeamID).Error; err == nil {
			team.Members = team.Members.Without(userID)
			if err := tx.Save(&team).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Model(&model.User{}).Where("id = ?", userID).Update("team_id", nil).Error
	})
}

func (s *GormTeamStor) RenameTeam(teamID int64, name string) (*model.Team, error) {
	var team model.Team

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}

		team.Name = name
		return tx.Save(&team).Error
	})

	if err != nil {
		return nil, err
	}

	return &team, nil
}

// DeleteTeam removes the team and everything hanging off it. The cascade
// runs tasks, then messages, then user back-references, then the team row,
// so a partial failure never leaves a task or message pointing at a team
// that reads as live.
func (s *GormTeamStor) DeleteTeam(teamID int64) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		var team model.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}

		if err := tx.Where("team_id = ?", team.ID).Delete(&model.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("team_id = ?", team.ID).Delete(&model.Message{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.User{}).Where("team_id = ?", team.ID).Update("team_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&team).Error
	})
}
