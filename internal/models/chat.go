package models

import "time"

// Chat is any chat the bot has seen. /announce broadcasts to all of them.
type Chat struct {
	ChatID    int64     `db:"chat_id" json:"chat_id"`
	Title     string    `db:"title" json:"title"`
	Kind      string    `db:"kind" json:"kind"` // "private", "group", "supergroup", "channel"
	FirstSeen time.Time `db:"first_seen" json:"first_seen"`
}

// CREATE TABLE chats (
//     chat_id BIGINT PRIMARY KEY,
//     title TEXT NOT NULL DEFAULT '',
//     kind TEXT NOT NULL DEFAULT '',
//     first_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP
// );
