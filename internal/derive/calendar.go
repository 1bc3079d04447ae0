package derive

import (
	"time"

	"certdash/internal/models"
)

// Date is a calendar day with no time component, usable as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar day in t's location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight of the date in the given location
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String renders the date as "2025-06-15"
func (d Date) String() string {
	return d.Time(time.UTC).Format("2006-01-02")
}

// BucketByDay maps each calendar day to the certifications due on it.
// Bucketing is by truncated date, so records due at different times of
// the same day share a bucket. Order within a bucket follows input order.
func BucketByDay(certs []models.Certification) map[Date][]models.Certification {
	buckets := make(map[Date][]models.Certification)
	for _, cert := range certs {
		day := DateOf(cert.DueDate)
		buckets[day] = append(buckets[day], cert)
	}
	return buckets
}

// DueOn returns the certifications due on the given calendar day
func DueOn(certs []models.Certification, day Date) []models.Certification {
	var out []models.Certification
	for _, cert := range certs {
		if DateOf(cert.DueDate) == day {
			out = append(out, cert)
		}
	}
	return out
}
