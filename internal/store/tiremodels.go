package store

import (
	"database/sql"

	"certdash/internal/models"
)

// InsertTireModel adds a tire model
func (s *Store) InsertTireModel(m models.TireModel) error {
	_, err := s.Exec(`
		INSERT INTO tire_models (
			id, name, manufacturer, launch_date, end_of_life_date, value, status,
			owner_id, spec_size, spec_type, spec_load_index, spec_speed, spec_season
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Manufacturer, m.LaunchDate, m.EndOfLifeDate, m.Value, m.Status,
		m.OwnerID, m.Specs.Size, m.Specs.Type, m.Specs.LoadIndex, m.Specs.SpeedRating, m.Specs.Season)
	return err
}

// TireModels returns all tire models in seed order
func (s *Store) TireModels() ([]models.TireModel, error) {
	rows, err := s.Query(`
		SELECT id, name, manufacturer, launch_date, end_of_life_date, value, status,
			owner_id, spec_size, spec_type, spec_load_index, spec_speed, spec_season
		FROM tire_models ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.TireModel
	for rows.Next() {
		m, err := scanTireModel(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// TireModelByID retrieves a tire model by ID, (nil, nil) when absent
func (s *Store) TireModelByID(id string) (*models.TireModel, error) {
	row := s.QueryRow(`
		SELECT id, name, manufacturer, launch_date, end_of_life_date, value, status,
			owner_id, spec_size, spec_type, spec_load_index, spec_speed, spec_season
		FROM tire_models WHERE id = ?
	`, id)
	m, err := scanTireModel(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTireModel(r rowScanner) (models.TireModel, error) {
	var m models.TireModel
	var owner sql.NullString
	err := r.Scan(&m.ID, &m.Name, &m.Manufacturer, &m.LaunchDate, &m.EndOfLifeDate,
		&m.Value, &m.Status, &owner,
		&m.Specs.Size, &m.Specs.Type, &m.Specs.LoadIndex, &m.Specs.SpeedRating, &m.Specs.Season)
	if err != nil {
		return m, err
	}
	m.OwnerID = owner.String
	return m, nil
}
