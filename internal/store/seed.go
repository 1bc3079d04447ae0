package store

import (
	"time"

	"certdash/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seed loads the session dataset. Everything below lives for the
// process lifetime only.
func (s *Store) seed() error {
	for _, u := range SeedUsers() {
		if err := s.InsertUser(u); err != nil {
			return err
		}
	}
	for _, m := range SeedTireModels() {
		if err := s.InsertTireModel(m); err != nil {
			return err
		}
	}
	for _, c := range SeedCertifications() {
		if err := s.InsertCertification(c); err != nil {
			return err
		}
	}
	return nil
}

// SeedUsers returns the reference user dataset
func SeedUsers() []models.User {
	return []models.User{
		{ID: "user-001", Name: "Alice Johnson", Email: "alice@example.com", Department: "Legal"},
		{ID: "user-002", Name: "Bob Smith", Email: "bob@example.com", Department: "Finance"},
		{ID: "user-003", Name: "Carol Taylor", Email: "carol@example.com", Department: "Procurement"},
		{ID: "user-004", Name: "David Wilson", Email: "david@example.com", Department: "Operations"},
		{ID: "user-005", Name: "Emma Chen", Email: "emma@example.com", Department: "IT Operations"},
		{ID: "user-006", Name: "Frank Martinez", Email: "frank@example.com", Department: "Security"},
		{ID: "user-007", Name: "Grace Lee", Email: "grace@example.com", Department: "Legal"},
		{ID: "user-008", Name: "Henry Brown", Email: "henry@example.com", Department: "Customer Success"},
	}
}

// SeedTireModels returns the tire model dataset
func SeedTireModels() []models.TireModel {
	return []models.TireModel{
		{
			ID:            "tire-001",
			Name:          "Pilot Sport 5",
			Manufacturer:  "Michelin",
			LaunchDate:    date(2025, time.March, 15),
			EndOfLifeDate: date(2029, time.March, 14),
			Value:         250000,
			Status:        models.ModelActive,
			OwnerID:       "user-001",
			Specs: models.Specifications{
				Size: "225/45R17", Type: "Performance", LoadIndex: "91Y", SpeedRating: "Y", Season: "summer",
			},
		},
		{
			ID:            "tire-002",
			Name:          "CrossClimate 2",
			Manufacturer:  "Michelin",
			LaunchDate:    date(2023, time.September, 1),
			EndOfLifeDate: date(2028, time.August, 31),
			Value:         320000,
			Status:        models.ModelActive,
			OwnerID:       "user-003",
			Specs: models.Specifications{
				Size: "205/55R16", Type: "All-Season", LoadIndex: "91H", SpeedRating: "H", Season: "all-season",
			},
		},
		{
			ID:            "tire-003",
			Name:          "Alpin 6",
			Manufacturer:  "Michelin",
			LaunchDate:    date(2025, time.January, 1),
			EndOfLifeDate: date(2029, time.December, 31),
			Value:         180000,
			Status:        models.ModelActive,
			OwnerID:       "user-004",
			Specs: models.Specifications{
				Size: "215/55R17", Type: "Winter", LoadIndex: "98V", SpeedRating: "V", Season: "winter",
			},
		},
	}
}

// SeedCertifications returns the certification dataset with nested tasks
func SeedCertifications() []models.Certification {
	return []models.Certification{
		{
			ID:            "cert-001",
			TireModelID:   "tire-001",
			TireModelName: "Pilot Sport 5",
			Description:   "EU Type Approval Certification",
			DueDate:       date(2025, time.June, 15),
			Status:        models.StatusPending,
			AssignedTo:    "user-002",
			Priority:      models.PriorityHigh,
			Type:          models.TypeHomologation,
			Region:        "European Union",
			Body:          "TÜV SÜD",
			Standards:     []string{"ECE R30", "ECE R54"},
			Tasks: []models.Task{
				{ID: "task-001-1", Description: "Submit technical documentation", DueDate: date(2025, time.June, 10), Completed: true, AssignedTo: "user-002"},
				{ID: "task-001-2", Description: "Schedule wet grip testing", DueDate: date(2025, time.June, 12), AssignedTo: "user-002"},
				{ID: "task-001-3", Description: "Complete noise testing", DueDate: date(2025, time.June, 14), AssignedTo: "user-002"},
			},
		},
		{
			ID:            "cert-002",
			TireModelID:   "tire-001",
			TireModelName: "Pilot Sport 5",
			Description:   "US DOT Certification",
			DueDate:       date(2025, time.June, 5),
			Status:        models.StatusPending,
			AssignedTo:    "user-004",
			Priority:      models.PriorityMedium,
			Type:          models.TypeCompliance,
			Region:        "United States",
			Body:          "NHTSA",
			Standards:     []string{"FMVSS 109", "FMVSS 119"},
			Tasks: []models.Task{
				{ID: "task-002-1", Description: "Prepare DOT marking documentation", DueDate: date(2025, time.June, 1), Completed: true, AssignedTo: "user-004"},
				{ID: "task-002-2", Description: "Complete endurance testing", DueDate: date(2025, time.June, 3), AssignedTo: "user-004"},
				{ID: "task-002-3", Description: "Submit certification application", DueDate: date(2025, time.June, 4), AssignedTo: "user-004"},
			},
		},
		{
			ID:            "cert-003",
			TireModelID:   "tire-002",
			TireModelName: "CrossClimate 2",
			Description:   "China CCC Certification",
			DueDate:       date(2025, time.June, 1),
			Status:        models.StatusPending,
			AssignedTo:    "user-002",
			Priority:      models.PriorityHigh,
			Type:          models.TypeHomologation,
			Region:        "China",
			Body:          "CQC",
			Standards:     []string{"GB 9743", "GB 9744"},
			Tasks: []models.Task{
				{ID: "task-003-1", Description: "Prepare Chinese technical documentation", DueDate: date(2025, time.May, 28), Completed: true, AssignedTo: "user-002"},
				{ID: "task-003-2", Description: "Schedule local testing", DueDate: date(2025, time.May, 30), AssignedTo: "user-002"},
			},
		},
	}
}
