// Package derive computes read-only views over the certification
// collections: status and type tallies, deadline windows, calendar
// buckets and the filter/group engine. Every function here is pure.
package derive

import (
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"certdash/internal/models"
)

// StatusCounts tallies certifications by stored status. Unrecognized
// status values land in Unknown, so the buckets always sum to the size
// of the input collection.
type StatusCounts struct {
	Pending   int
	Completed int
	Overdue   int
	AtRisk    int
	Unknown   int
}

// Total returns the sum of all buckets
func (c StatusCounts) Total() int {
	return c.Pending + c.Completed + c.Overdue + c.AtRisk + c.Unknown
}

// CountsByStatus tallies the collection by exact status match
func CountsByStatus(certs []models.Certification) StatusCounts {
	var counts StatusCounts
	for _, cert := range certs {
		switch cert.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusCompleted:
			counts.Completed++
		case models.StatusOverdue:
			counts.Overdue++
		case models.StatusAtRisk:
			counts.AtRisk++
		default:
			counts.Unknown++
		}
	}
	return counts
}

// TypeCounts tallies certifications by type, Unknown catching values
// outside the six known types.
type TypeCounts struct {
	Homologation int
	Warranty     int
	Testing      int
	Compliance   int
	Renewal      int
	Other        int
	Unknown      int
}

// Total returns the sum of all buckets
func (c TypeCounts) Total() int {
	return c.Homologation + c.Warranty + c.Testing + c.Compliance + c.Renewal + c.Other + c.Unknown
}

// CountsByType tallies the collection by exact type match
func CountsByType(certs []models.Certification) TypeCounts {
	var counts TypeCounts
	for _, cert := range certs {
		switch cert.Type {
		case models.TypeHomologation:
			counts.Homologation++
		case models.TypeWarranty:
			counts.Warranty++
		case models.TypeTesting:
			counts.Testing++
		case models.TypeCompliance:
			counts.Compliance++
		case models.TypeRenewal:
			counts.Renewal++
		case models.TypeOther:
			counts.Other++
		default:
			counts.Unknown++
		}
	}
	return counts
}

// DaysUntil returns the signed whole-day difference between due and
// today at calendar-day granularity. Both instants are truncated to
// midnight in today's location before differencing, so the result never
// shifts near midnight the way a raw elapsed-time division would.
// Negative means overdue, zero means due today.
func DaysUntil(due, today time.Time) int {
	loc := today.Location()
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	return int(d.Sub(t) / (24 * time.Hour))
}

// UpcomingDeadlines returns the non-completed certifications due within
// windowDays of today (inclusive at both ends, day granularity), sorted
// ascending by due date. The sort is stable; ties keep input order.
func UpcomingDeadlines(certs []models.Certification, windowDays int, today time.Time) []models.Certification {
	var upcoming []models.Certification
	for _, cert := range certs {
		if cert.Status == models.StatusCompleted {
			continue
		}
		days := DaysUntil(cert.DueDate, today)
		if days < 0 || days > windowDays {
			continue
		}
		upcoming = append(upcoming, cert)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming
}

// Progress summarizes task completion for a certification
type Progress struct {
	Done  int
	Total int
}

// Ratio returns completion in [0, 1]; a certification with no tasks
// reports zero rather than dividing by zero.
func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

// TaskProgress counts completed tasks against the total
func TaskProgress(cert models.Certification) Progress {
	p := Progress{Total: len(cert.Tasks)}
	for _, t := range cert.Tasks {
		if t.Completed {
			p.Done++
		}
	}
	return p
}

var enUS = message.NewPrinter(language.AmericanEnglish)

// FormatDate renders a date as "Jun 15, 2025"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatCurrency renders a whole-dollar USD amount with digit grouping,
// e.g. 250000 -> "$250,000".
func FormatCurrency(value int64) string {
	return enUS.Sprintf("$%d", value)
}
