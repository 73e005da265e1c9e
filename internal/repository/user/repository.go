package user

import (
	"database/sql"
	"errors"

	"group-timetable-bot/internal/models"
	"group-timetable-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateOrUpdate(user *models.User) error {
	query := `
        INSERT INTO users (telegram_id, first_name, last_name, username, group_name, registered_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $6)
        ON CONFLICT (telegram_id) DO UPDATE
        SET first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            username = EXCLUDED.username,
            updated_at = EXCLUDED.updated_at
        RETURNING id, group_name
    `
	return r.db.QueryRow(
		query,
		user.TelegramID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.GroupName,
		user.RegisteredAt,
	).Scan(&user.ID, &user.GroupName)
}

func (r *userRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE telegram_id = $1`
	err := r.db.Get(&user, query, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateGroup(telegramID int64, groupName string) error {
	query := `UPDATE users SET group_name = $1, updated_at = CURRENT_TIMESTAMP WHERE telegram_id = $2`
	result, err := r.db.Exec(query, groupName, telegramID)
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
