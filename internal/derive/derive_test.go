package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdash/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCountsByStatusSumsToTotal(t *testing.T) {
	certs := []models.Certification{
		{ID: "a", Status: models.StatusPending},
		{ID: "b", Status: models.StatusPending},
		{ID: "c", Status: models.StatusCompleted},
		{ID: "d", Status: models.StatusOverdue},
		{ID: "e", Status: models.StatusAtRisk},
		{ID: "f", Status: models.Status("archived")}, // outside the known set
	}

	counts := CountsByStatus(certs)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 1, counts.Overdue)
	assert.Equal(t, 1, counts.AtRisk)
	assert.Equal(t, 1, counts.Unknown)
	assert.Equal(t, len(certs), counts.Total())
}

func TestCountsByStatusEmpty(t *testing.T) {
	counts := CountsByStatus(nil)
	assert.Equal(t, 0, counts.Total())
}

func TestCountsByTypeSumsToTotal(t *testing.T) {
	certs := []models.Certification{
		{Type: models.TypeHomologation},
		{Type: models.TypeHomologation},
		{Type: models.TypeCompliance},
		{Type: models.TypeRenewal},
		{Type: models.CertType("mystery")},
	}

	counts := CountsByType(certs)
	assert.Equal(t, 2, counts.Homologation)
	assert.Equal(t, 1, counts.Compliance)
	assert.Equal(t, 1, counts.Renewal)
	assert.Equal(t, 1, counts.Unknown)
	assert.Equal(t, len(certs), counts.Total())
}

func TestDaysUntil(t *testing.T) {
	today := day(2025, time.June, 1)

	assert.Equal(t, 0, DaysUntil(day(2025, time.June, 1), today))
	assert.Equal(t, 4, DaysUntil(day(2025, time.June, 5), today))
	assert.Equal(t, 14, DaysUntil(day(2025, time.June, 15), today))
	assert.Equal(t, -3, DaysUntil(day(2025, time.May, 29), today))
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// A late-evening "today" must not shave a day off the difference
	today := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC)
	due := time.Date(2025, time.June, 2, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(due, today))
}

func TestUpcomingDeadlinesOrdering(t *testing.T) {
	certs := []models.Certification{
		{ID: "cert-001", DueDate: day(2025, time.June, 15), Status: models.StatusPending},
		{ID: "cert-002", DueDate: day(2025, time.June, 5), Status: models.StatusPending},
	}
	today := day(2025, time.June, 1)

	upcoming := UpcomingDeadlines(certs, 30, today)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "cert-002", upcoming[0].ID)
	assert.Equal(t, "cert-001", upcoming[1].ID)
}

func TestUpcomingDeadlinesBounds(t *testing.T) {
	today := day(2025, time.June, 1)
	certs := []models.Certification{
		{ID: "past", DueDate: day(2025, time.May, 31), Status: models.StatusPending},
		{ID: "today", DueDate: day(2025, time.June, 1), Status: models.StatusPending},
		{ID: "edge", DueDate: day(2025, time.July, 1), Status: models.StatusPending},
		{ID: "beyond", DueDate: day(2025, time.July, 2), Status: models.StatusPending},
		{ID: "done", DueDate: day(2025, time.June, 10), Status: models.StatusCompleted},
	}

	upcoming := UpcomingDeadlines(certs, 30, today)

	ids := make([]string, 0, len(upcoming))
	for _, cert := range upcoming {
		assert.NotEqual(t, models.StatusCompleted, cert.Status)
		days := DaysUntil(cert.DueDate, today)
		assert.GreaterOrEqual(t, days, 0)
		assert.LessOrEqual(t, days, 30)
		ids = append(ids, cert.ID)
	}
	assert.Equal(t, []string{"today", "edge"}, ids)
}

func TestUpcomingDeadlinesStableTies(t *testing.T) {
	due := day(2025, time.June, 10)
	certs := []models.Certification{
		{ID: "first", DueDate: due, Status: models.StatusPending},
		{ID: "second", DueDate: due, Status: models.StatusPending},
	}

	upcoming := UpcomingDeadlines(certs, 30, day(2025, time.June, 1))
	require.Len(t, upcoming, 2)
	assert.Equal(t, "first", upcoming[0].ID)
	assert.Equal(t, "second", upcoming[1].ID)
}

func TestTaskProgress(t *testing.T) {
	cert := models.Certification{
		Tasks: []models.Task{
			{Completed: true},
			{Completed: false},
			{Completed: true},
		},
	}

	p := TaskProgress(cert)
	assert.Equal(t, 2, p.Done)
	assert.Equal(t, 3, p.Total)
	assert.InDelta(t, 2.0/3.0, p.Ratio(), 1e-9)
}

func TestTaskProgressNoTasks(t *testing.T) {
	p := TaskProgress(models.Certification{})
	assert.Equal(t, 0.0, p.Ratio())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jun 15, 2025", FormatDate(day(2025, time.June, 15)))
	assert.Equal(t, "Jan 2, 2026", FormatDate(day(2026, time.January, 2)))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$250,000", FormatCurrency(250000))
	assert.Equal(t, "$1,000,000", FormatCurrency(1000000))
	assert.Equal(t, "$0", FormatCurrency(0))
}
