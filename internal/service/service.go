package service

import (
	"context"

	"group-timetable-bot/internal/models"
)

// Sender delivers one message to one chat. Implemented on the Telegram API
// handle; services depend on this instead of the bot so reminder fan-out and
// broadcasts can be tested without Telegram.
type Sender interface {
	Send(chatID int64, text string) error
}

type UserService interface {
	RegisterOrUpdate(telegramID int64, firstName, lastName, username string) (*models.User, error)
	SetGroup(telegramID int64, groupName string) error
	GroupFor(telegramID int64) string
}

type SubscriberService interface {
	// Subscribe returns true when the chat was newly added.
	Subscribe(chatID int64, groupName string) (bool, error)
	// Unsubscribe returns true when the chat was actually subscribed.
	Unsubscribe(chatID int64) (bool, error)
}

type BroadcastService interface {
	RememberChat(chatID int64, title, kind string) error
	// Announce fans the message out to every known chat. Delivery failures
	// are counted and skipped, never aborting the remaining sends.
	Announce(text string) (sent int, failed int, err error)
}

type ReminderService interface {
	// Run polls until ctx is cancelled, notifying each subscriber once per
	// upcoming class start.
	Run(ctx context.Context)
}
