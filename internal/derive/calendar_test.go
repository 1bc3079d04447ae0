package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdash/internal/models"
)

func TestBucketByDaySharesBucketAcrossTimes(t *testing.T) {
	morning := models.Certification{
		ID:      "morning",
		DueDate: time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC),
	}
	evening := models.Certification{
		ID:      "evening",
		DueDate: time.Date(2025, time.June, 15, 20, 0, 0, 0, time.UTC),
	}

	buckets := BucketByDay([]models.Certification{morning, evening})
	require.Len(t, buckets, 1)

	day := Date{Year: 2025, Month: time.June, Day: 15}
	require.Len(t, buckets[day], 2)
	assert.Equal(t, "morning", buckets[day][0].ID)
	assert.Equal(t, "evening", buckets[day][1].ID)
}

func TestBucketByDaySeparatesDays(t *testing.T) {
	certs := []models.Certification{
		{ID: "a", DueDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", DueDate: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)},
	}

	buckets := BucketByDay(certs)
	assert.Len(t, buckets, 2)
}

func TestDueOn(t *testing.T) {
	certs := []models.Certification{
		{ID: "a", DueDate: time.Date(2025, time.June, 5, 9, 0, 0, 0, time.UTC)},
		{ID: "b", DueDate: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)},
	}

	due := DueOn(certs, Date{Year: 2025, Month: time.June, Day: 5})
	require.Len(t, due, 1)
	assert.Equal(t, "a", due[0].ID)

	assert.Empty(t, DueOn(certs, Date{Year: 2025, Month: time.June, Day: 6}))
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2025, Month: time.June, Day: 5}
	assert.Equal(t, "2025-06-05", d.String())
}

func TestDateOfAndTimeRoundTrip(t *testing.T) {
	at := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	d := DateOf(at)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), d.Time(time.UTC))
}
