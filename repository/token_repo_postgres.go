package repository

import (
	"database/sql"

	"bookstore/models"
)

type PostgresTokenRepo struct {
	DB *sql.DB
}

func NewPostgresTokenRepo(db *sql.DB) *PostgresTokenRepo {
	return &PostgresTokenRepo{DB: db}
}

func (r *PostgresTokenRepo) ReplaceResetToken(token *models.UserToken) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		DELETE FROM user_tokens WHERE user_id=$1 AND token_type=$2
	`, token.UserID, token.TokenType); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO user_tokens (user_id, token, token_type, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token.UserID, token.Token, token.TokenType, token.ExpiresAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresTokenRepo) GetToken(token, tokenType string) (*models.UserToken, error) {
	row := &models.UserToken{}
	err := r.DB.QueryRow(`
		SELECT user_id, token, token_type, expires_at
		FROM user_tokens
		WHERE token=$1 AND token_type=$2
	`, token, tokenType).Scan(&row.UserID, &row.Token, &row.TokenType, &row.ExpiresAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
