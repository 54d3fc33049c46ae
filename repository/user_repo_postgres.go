package repository

import (
	"database/sql"
	"time"

	"bookstore/models"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	err := r.DB.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, last_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id
	`, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role, user.CreatedAt).
		Scan(&user.ID)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.getUser(`
		SELECT id, email, password_hash, first_name, last_name, role, created_at, last_login
		FROM users WHERE email=$1
	`, email)
}

func (r *PostgresUserRepo) GetUserByID(id int64) (*models.User, error) {
	return r.getUser(`
		SELECT id, email, password_hash, first_name, last_name, role, created_at, last_login
		FROM users WHERE id=$1
	`, id)
}

func (r *PostgresUserRepo) getUser(query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.Role, &user.CreatedAt, &user.LastLogin,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepo) UpdateLastLogin(id int64) error {
	_, err := r.DB.Exec(`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id=$1`, id)
	return err
}

func (r *PostgresUserRepo) ResetPassword(id int64, passwordHash string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		DELETE FROM user_tokens WHERE user_id=$1 AND token_type=$2
	`, id, models.TokenTypePasswordReset); err != nil {
		return err
	}

	return tx.Commit()
}
