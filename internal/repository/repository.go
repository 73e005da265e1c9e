package repository

import (
	"group-timetable-bot/internal/models"
)

type UserRepository interface {
	CreateOrUpdate(user *models.User) error
	GetByTelegramID(telegramID int64) (*models.User, error)
	UpdateGroup(telegramID int64, groupName string) error
}

type ChatRepository interface {
	Remember(chat *models.Chat) error
	GetAll() ([]*models.Chat, error)
}

type SubscriberRepository interface {
	Upsert(subscriber *models.Subscriber) (bool, error)
	Delete(chatID int64) (bool, error)
	GetAll() ([]*models.Subscriber, error)
	SetLastNotified(chatID int64, key string) error
}
