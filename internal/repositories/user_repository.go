package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) FindByPhone(phone string) (models.User, error) {
	var u models.User
	var name sql.NullString
	err := r.DB.QueryRow(`
		SELECT id, phone, name, created_at FROM users WHERE phone = ? LIMIT 1
	`, phone).Scan(&u.ID, &u.Phone, &name, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user: %w", err)
	}
	u.Name = name.String
	return u, nil
}

func (r UserRepository) Insert(phone, name string) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO users (phone, name) VALUES (?, ?)`, phone, nullIfEmpty(name))
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (r UserRepository) UpdateName(id int64, name string) error {
	_, err := r.DB.Exec(`UPDATE users SET name = ? WHERE id = ?`, name, id)
	return err
}

func (r UserRepository) FindAdminByUsername(username string) (models.Admin, error) {
	var a models.Admin
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, role FROM admins WHERE username = ? LIMIT 1
	`, strings.ToLower(strings.TrimSpace(username))).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role)
	if err == sql.ErrNoRows {
		return models.Admin{}, domain.NotFoundError{Resource: "admin"}
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("query admin: %w", err)
	}
	return a, nil
}
