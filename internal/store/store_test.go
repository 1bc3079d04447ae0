package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdash/internal/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsReferenceData(t *testing.T) {
	s := openStore(t)

	users, err := s.Users()
	require.NoError(t, err)
	assert.Len(t, users, 8)

	tires, err := s.TireModels()
	require.NoError(t, err)
	assert.Len(t, tires, 3)

	certs, err := s.Certifications()
	require.NoError(t, err)
	assert.Len(t, certs, 3)
}

func TestCertificationsPreserveSeedOrder(t *testing.T) {
	s := openStore(t)

	certs, err := s.Certifications()
	require.NoError(t, err)
	require.Len(t, certs, 3)
	assert.Equal(t, "cert-001", certs[0].ID)
	assert.Equal(t, "cert-002", certs[1].ID)
	assert.Equal(t, "cert-003", certs[2].ID)
}

func TestCertificationsPopulateChildren(t *testing.T) {
	s := openStore(t)

	cert, err := s.CertificationByID("cert-001")
	require.NoError(t, err)
	require.NotNil(t, cert)

	assert.Equal(t, "EU Type Approval Certification", cert.Description)
	assert.Equal(t, []string{"ECE R30", "ECE R54"}, cert.Standards)
	require.Len(t, cert.Tasks, 3)
	assert.True(t, cert.Tasks[0].Completed)
	assert.False(t, cert.Tasks[1].Completed)
}

func TestCertificationsForTireModelScopes(t *testing.T) {
	s := openStore(t)

	certs, err := s.CertificationsForTireModel("tire-001")
	require.NoError(t, err)
	require.Len(t, certs, 2)
	for _, c := range certs {
		assert.Equal(t, "tire-001", c.TireModelID)
	}

	none, err := s.CertificationsForTireModel("tire-999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserByIDMissingIsNotAnError(t *testing.T) {
	s := openStore(t)

	u, err := s.UserByID("user-999")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserByID(t *testing.T) {
	s := openStore(t)

	u, err := s.UserByID("user-001")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Alice Johnson", u.Name)
	assert.Equal(t, "Legal", u.Department)
}

func TestTireModelByID(t *testing.T) {
	s := openStore(t)

	m, err := s.TireModelByID("tire-002")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "CrossClimate 2", m.Name)
	assert.Equal(t, int64(320000), m.Value)
	assert.Equal(t, "205/55R16", m.Specs.Size)

	missing, err := s.TireModelByID("tire-999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInsertCertificationAppendsInOrder(t *testing.T) {
	s := openStore(t)

	cert := models.Certification{
		ID:            "cert-100",
		TireModelID:   "tire-003",
		TireModelName: "Alpin 6",
		Description:   "Winter performance certification",
		DueDate:       time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		Status:        models.StatusPending,
		Priority:      models.PriorityLow,
		Type:          models.TypeTesting,
		Region:        "Nordics",
		Body:          "STRO",
		Standards:     []string{"ECE R117"},
		Tasks: []models.Task{
			{ID: "task-100-1", Description: "Book test track", DueDate: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	require.NoError(t, s.InsertCertification(cert))

	certs, err := s.Certifications()
	require.NoError(t, err)
	require.Len(t, certs, 4)
	assert.Equal(t, "cert-100", certs[3].ID)
	assert.Equal(t, []string{"ECE R117"}, certs[3].Standards)
	require.Len(t, certs[3].Tasks, 1)
	assert.Equal(t, "Book test track", certs[3].Tasks[0].Description)
}

func TestCertificationByIDMissing(t *testing.T) {
	s := openStore(t)

	cert, err := s.CertificationByID("cert-999")
	require.NoError(t, err)
	assert.Nil(t, cert)
}
