package models

import "time"

// Subscriber is a chat that opted into pre-class reminders.
// LastNotifiedKey is the date|start|subject key of the last class this chat
// was reminded about; the reminder poller uses it to send at most one
// notification per class start.
type Subscriber struct {
	ChatID          int64     `db:"chat_id" json:"chat_id"`
	GroupName       string    `db:"group_name" json:"group_name"`
	LastNotifiedKey string    `db:"last_notified_key" json:"last_notified_key"`
	SubscribedAt    time.Time `db:"subscribed_at" json:"subscribed_at"`
}

// CREATE TABLE subscribers (
//     chat_id BIGINT PRIMARY KEY,
//     group_name TEXT NOT NULL DEFAULT '',
//     last_notified_key TEXT NOT NULL DEFAULT '',
//     subscribed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
// );
