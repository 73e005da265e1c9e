package user_service

import (
	"fmt"
	"time"

	"group-timetable-bot/internal/models"
	"group-timetable-bot/internal/repository"
	"group-timetable-bot/internal/service"
	"group-timetable-bot/internal/timetable"
)

type userService struct {
	userRepo     repository.UserRepository
	timetables   *timetable.Set
	defaultGroup string
}

func NewUserService(userRepo repository.UserRepository, timetables *timetable.Set, defaultGroup string) service.UserService {
	return &userService{
		userRepo:     userRepo,
		timetables:   timetables,
		defaultGroup: defaultGroup,
	}
}

func (s *userService) RegisterOrUpdate(telegramID int64, firstName, lastName, username string) (*models.User, error) {
	user := &models.User{
		TelegramID:   telegramID,
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		GroupName:    s.defaultGroup,
		RegisteredAt: time.Now(),
	}

	if err := s.userRepo.CreateOrUpdate(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SetGroup(telegramID int64, groupName string) error {
	if !s.timetables.Has(groupName) {
		return fmt.Errorf("%w: %s", timetable.ErrUnknownGroup, groupName)
	}
	return s.userRepo.UpdateGroup(telegramID, groupName)
}

// GroupFor returns the user's chosen group, falling back to the default for
// unknown users or users without a choice.
func (s *userService) GroupFor(telegramID int64) string {
	user, err := s.userRepo.GetByTelegramID(telegramID)
	if err != nil || user == nil || user.GroupName == "" {
		return s.defaultGroup
	}
	return user.GroupName
}
