package store

import (
	"database/sql"

	"certdash/internal/models"
)

// InsertUser adds a user to the reference data
func (s *Store) InsertUser(u models.User) error {
	_, err := s.Exec(`
		INSERT INTO users (id, name, email, department, avatar) VALUES (?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Department, u.Avatar)
	return err
}

// Users returns all users in seed order
func (s *Store) Users() ([]models.User, error) {
	rows, err := s.Query(`
		SELECT id, name, email, department, avatar FROM users ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Department, &u.Avatar); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UserByID retrieves a user by ID. A missing ID is not an error: it
// returns (nil, nil) and callers render the record as unassigned.
func (s *Store) UserByID(id string) (*models.User, error) {
	u := &models.User{}
	err := s.QueryRow(`
		SELECT id, name, email, department, avatar FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Department, &u.Avatar)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
