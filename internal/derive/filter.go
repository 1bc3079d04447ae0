package derive

import (
	"strings"

	"certdash/internal/models"
)

// Filter is a conjunctive filter specification over a certification
// collection. Zero-value fields do not filter; the literal value "all"
// is treated the same as empty. Enum fields match exactly, so a value
// outside the known set matches nothing rather than failing.
type Filter struct {
	Search      string // case-insensitive substring on description or tire model name
	Status      string
	Priority    string
	Type        string
	TireModelID string // scoping filter, applied before the rest
}

func active(value string) bool {
	return value != "" && value != "all"
}

// Match reports whether a single certification passes the filter
func (f Filter) Match(cert models.Certification) bool {
	if active(f.TireModelID) && cert.TireModelID != f.TireModelID {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(cert.Description), needle) &&
			!strings.Contains(strings.ToLower(cert.TireModelName), needle) {
			return false
		}
	}
	if active(f.Status) && string(cert.Status) != f.Status {
		return false
	}
	if active(f.Priority) && string(cert.Priority) != f.Priority {
		return false
	}
	if active(f.Type) && string(cert.Type) != f.Type {
		return false
	}
	return true
}

// Apply returns the subset of certs passing the filter, in input order.
// An empty input yields an empty result, never an error.
func (f Filter) Apply(certs []models.Certification) []models.Certification {
	var out []models.Certification
	for _, cert := range certs {
		if f.Match(cert) {
			out = append(out, cert)
		}
	}
	return out
}

// Grouped is an ordered partition of certifications by region. Regions
// appear in order of first occurrence; each group preserves input order.
type Grouped struct {
	Regions []string
	Groups  map[string][]models.Certification
}

// Flatten concatenates the groups in region order
func (g Grouped) Flatten() []models.Certification {
	var out []models.Certification
	for _, region := range g.Regions {
		out = append(out, g.Groups[region]...)
	}
	return out
}

// GroupByRegion partitions certs by their region field
func GroupByRegion(certs []models.Certification) Grouped {
	g := Grouped{Groups: make(map[string][]models.Certification)}
	for _, cert := range certs {
		if _, seen := g.Groups[cert.Region]; !seen {
			g.Regions = append(g.Regions, cert.Region)
		}
		g.Groups[cert.Region] = append(g.Groups[cert.Region], cert)
	}
	return g
}

// RegionSummary aggregates certification counts and the distinct
// standards seen per region, sorted by descending count.
type RegionSummary struct {
	Region    string
	Count     int
	Standards []string
}

// SummarizeByRegion builds per-region rollups for the sync report view
func SummarizeByRegion(certs []models.Certification) []RegionSummary {
	grouped := GroupByRegion(certs)

	var out []RegionSummary
	for _, region := range grouped.Regions {
		summary := RegionSummary{Region: region}
		seen := make(map[string]bool)
		for _, cert := range grouped.Groups[region] {
			summary.Count++
			for _, std := range cert.Standards {
				if !seen[std] {
					seen[std] = true
					summary.Standards = append(summary.Standards, std)
				}
			}
		}
		out = append(out, summary)
	}

	// Stable: equal counts keep first-occurrence region order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Count > out[j-1].Count; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
