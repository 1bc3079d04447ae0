package store

import (
	"database/sql"

	"certdash/internal/models"
)

// InsertCertification adds a certification with its standards and tasks
// in one transaction. Task order and standard order are preserved.
func (s *Store) InsertCertification(c models.Certification) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM certifications`).Scan(&seq); err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO certifications (
			id, tire_model_id, tire_model_name, description, due_date, status,
			assigned_to, priority, type, region, body, seq
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.TireModelID, c.TireModelName, c.Description, c.DueDate, c.Status,
		c.AssignedTo, c.Priority, c.Type, c.Region, c.Body, seq)
	if err != nil {
		return err
	}

	for i, std := range c.Standards {
		if _, err := tx.Exec(`
			INSERT INTO cert_standards (cert_id, pos, name) VALUES (?, ?, ?)
		`, c.ID, i, std); err != nil {
			return err
		}
	}

	for i, t := range c.Tasks {
		if _, err := tx.Exec(`
			INSERT INTO tasks (id, cert_id, pos, description, due_date, completed, assigned_to)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, t.ID, c.ID, i, t.Description, t.DueDate, t.Completed, t.AssignedTo); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Certifications returns all certifications in seed order with their
// standards and tasks populated.
func (s *Store) Certifications() ([]models.Certification, error) {
	return s.listCertifications(`
		SELECT id, tire_model_id, tire_model_name, description, due_date, status,
			assigned_to, priority, type, region, body
		FROM certifications ORDER BY seq
	`)
}

// CertificationsForTireModel returns the certifications scoped to one
// tire model. Scoping happens here, before any in-memory filtering.
func (s *Store) CertificationsForTireModel(tireModelID string) ([]models.Certification, error) {
	return s.listCertifications(`
		SELECT id, tire_model_id, tire_model_name, description, due_date, status,
			assigned_to, priority, type, region, body
		FROM certifications WHERE tire_model_id = ? ORDER BY seq
	`, tireModelID)
}

// CertificationByID retrieves a certification by ID, (nil, nil) when absent
func (s *Store) CertificationByID(id string) (*models.Certification, error) {
	list, err := s.listCertifications(`
		SELECT id, tire_model_id, tire_model_name, description, due_date, status,
			assigned_to, priority, type, region, body
		FROM certifications WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (s *Store) listCertifications(query string, args ...any) ([]models.Certification, error) {
	rows, err := s.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []models.Certification
	for rows.Next() {
		var c models.Certification
		if err := rows.Scan(&c.ID, &c.TireModelID, &c.TireModelName, &c.Description,
			&c.DueDate, &c.Status, &c.AssignedTo, &c.Priority, &c.Type, &c.Region, &c.Body); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range certs {
		standards, err := s.certStandards(certs[i].ID)
		if err != nil {
			return nil, err
		}
		certs[i].Standards = standards

		tasks, err := s.certTasks(certs[i].ID)
		if err != nil {
			return nil, err
		}
		certs[i].Tasks = tasks
	}

	return certs, nil
}

func (s *Store) certStandards(certID string) ([]string, error) {
	rows, err := s.Query(`
		SELECT name FROM cert_standards WHERE cert_id = ? ORDER BY pos
	`, certID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standards []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		standards = append(standards, name)
	}
	return standards, rows.Err()
}

func (s *Store) certTasks(certID string) ([]models.Task, error) {
	rows, err := s.Query(`
		SELECT id, description, due_date, completed, assigned_to
		FROM tasks WHERE cert_id = ? ORDER BY pos
	`, certID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var completed sql.NullBool
		if err := rows.Scan(&t.ID, &t.Description, &t.DueDate, &completed, &t.AssignedTo); err != nil {
			return nil, err
		}
		t.Completed = completed.Bool
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
