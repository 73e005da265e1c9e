package models

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	TelegramID   int64     `db:"telegram_id" json:"telegram_id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Username     string    `db:"username" json:"username"`
	GroupName    string    `db:"group_name" json:"group_name"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CREATE TABLE users (
//     id SERIAL PRIMARY KEY,
//     telegram_id BIGINT UNIQUE NOT NULL,
//     first_name TEXT NOT NULL DEFAULT '',
//     last_name TEXT NOT NULL DEFAULT '',
//     username TEXT NOT NULL DEFAULT '',
//     group_name TEXT NOT NULL DEFAULT '',
//     registered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
//     updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
// );
