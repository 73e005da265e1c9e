package chat

import (
	"group-timetable-bot/internal/models"
	"group-timetable-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type chatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Remember(chat *models.Chat) error {
	query := `
        INSERT INTO chats (chat_id, title, kind, first_seen)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (chat_id) DO UPDATE
        SET title = EXCLUDED.title, kind = EXCLUDED.kind
    `
	_, err := r.db.Exec(query, chat.ChatID, chat.Title, chat.Kind, chat.FirstSeen)
	return err
}

func (r *chatRepository) GetAll() ([]*models.Chat, error) {
	var chats []*models.Chat
	query := `SELECT * FROM chats ORDER BY first_seen`

	err := r.db.Select(&chats, query)
	if err != nil {
		return nil, err
	}

	return chats, nil
}
