package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdash/internal/models"
)

func seedCerts() []models.Certification {
	return []models.Certification{
		{
			ID: "cert-001", TireModelID: "tire-001", TireModelName: "Pilot Sport 5",
			Description: "EU Type Approval Certification",
			DueDate:     time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusPending, Priority: models.PriorityHigh,
			Type: models.TypeHomologation, Region: "European Union",
			Standards: []string{"ECE R30", "ECE R54"},
		},
		{
			ID: "cert-002", TireModelID: "tire-001", TireModelName: "Pilot Sport 5",
			Description: "US DOT Certification",
			DueDate:     time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusPending, Priority: models.PriorityMedium,
			Type: models.TypeCompliance, Region: "United States",
			Standards: []string{"FMVSS 109", "FMVSS 119"},
		},
		{
			ID: "cert-003", TireModelID: "tire-002", TireModelName: "CrossClimate 2",
			Description: "China CCC Certification",
			DueDate:     time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusPending, Priority: models.PriorityHigh,
			Type: models.TypeHomologation, Region: "China",
			Standards: []string{"GB 9743", "GB 9744"},
		},
	}
}

func ids(certs []models.Certification) []string {
	out := make([]string, 0, len(certs))
	for _, c := range certs {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterZeroValueMatchesAll(t *testing.T) {
	certs := seedCerts()
	assert.Equal(t, ids(certs), ids(Filter{}.Apply(certs)))
}

func TestFilterAllIsNoFilter(t *testing.T) {
	certs := seedCerts()
	f := Filter{Status: "all", Priority: "all", Type: "all"}
	assert.Equal(t, ids(certs), ids(f.Apply(certs)))
}

func TestFilterByPriorityHigh(t *testing.T) {
	got := Filter{Priority: "high"}.Apply(seedCerts())
	assert.Equal(t, []string{"cert-001", "cert-003"}, ids(got))
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	certs := seedCerts()

	byDesc := Filter{Search: "dot"}.Apply(certs)
	assert.Equal(t, []string{"cert-002"}, ids(byDesc))

	byModel := Filter{Search: "PILOT"}.Apply(certs)
	assert.Equal(t, []string{"cert-001", "cert-002"}, ids(byModel))
}

func TestFilterConjunction(t *testing.T) {
	f := Filter{Priority: "high", Type: "homologation", TireModelID: "tire-001"}
	got := f.Apply(seedCerts())
	assert.Equal(t, []string{"cert-001"}, ids(got))
}

func TestFilterUnknownEnumValueMatchesNothing(t *testing.T) {
	got := Filter{Status: "archived"}.Apply(seedCerts())
	assert.Empty(t, got)
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter{Priority: "high"}.Apply(nil))
}

func TestFilterIdempotent(t *testing.T) {
	f := Filter{Search: "certification", Priority: "high"}
	once := f.Apply(seedCerts())
	twice := f.Apply(once)
	assert.Equal(t, ids(once), ids(twice))
}

func TestGroupByRegionFirstOccurrenceOrder(t *testing.T) {
	grouped := GroupByRegion(seedCerts())
	assert.Equal(t, []string{"European Union", "United States", "China"}, grouped.Regions)
	assert.Len(t, grouped.Groups["European Union"], 1)
}

func TestGroupFlattenIsPermutation(t *testing.T) {
	certs := seedCerts()
	flat := GroupByRegion(certs).Flatten()

	require.Len(t, flat, len(certs))
	assert.ElementsMatch(t, ids(certs), ids(flat))
}

func TestSummarizeByRegion(t *testing.T) {
	// Two EU certs sharing a standard: counts descend, standards dedupe
	certs := seedCerts()
	certs = append(certs, models.Certification{
		ID: "cert-004", Region: "European Union",
		Standards: []string{"ECE R30", "ECE R117"},
	})

	summaries := SummarizeByRegion(certs)
	require.Len(t, summaries, 3)

	assert.Equal(t, "European Union", summaries[0].Region)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, []string{"ECE R30", "ECE R54", "ECE R117"}, summaries[0].Standards)

	// Equal counts keep first-occurrence region order
	assert.Equal(t, "United States", summaries[1].Region)
	assert.Equal(t, "China", summaries[2].Region)
}
