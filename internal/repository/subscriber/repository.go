package subscriber

import (
	"database/sql"

	"group-timetable-bot/internal/models"
	"group-timetable-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type subscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) repository.SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Upsert adds a subscriber or updates its group. Returns true when the chat
// was not subscribed before.
func (r *subscriberRepository) Upsert(subscriber *models.Subscriber) (bool, error) {
	query := `
        INSERT INTO subscribers (chat_id, group_name, last_notified_key, subscribed_at)
        VALUES ($1, $2, '', $3)
        ON CONFLICT (chat_id) DO UPDATE
        SET group_name = EXCLUDED.group_name
        RETURNING (xmax = 0)
    `
	var inserted bool
	err := r.db.QueryRow(query, subscriber.ChatID, subscriber.GroupName, subscriber.SubscribedAt).Scan(&inserted)
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *subscriberRepository) Delete(chatID int64) (bool, error) {
	query := `DELETE FROM subscribers WHERE chat_id = $1`
	result, err := r.db.Exec(query, chatID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *subscriberRepository) GetAll() ([]*models.Subscriber, error) {
	var subscribers []*models.Subscriber
	query := `SELECT * FROM subscribers ORDER BY subscribed_at`

	err := r.db.Select(&subscribers, query)
	if err != nil {
		return nil, err
	}

	return subscribers, nil
}

func (r *subscriberRepository) SetLastNotified(chatID int64, key string) error {
	query := `UPDATE subscribers SET last_notified_key = $1 WHERE chat_id = $2`
	result, err := r.db.Exec(query, key, chatID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
