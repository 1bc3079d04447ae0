package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certdash/internal/models"
)

func fixedSource(certs []models.Certification) CertSource {
	return func() []models.Certification { return certs }
}

func TestRespondSyncRule(t *testing.T) {
	r := NewResponder(fixedSource(nil))

	reply := r.Respond("Are my certifications in sync with the ERP?")
	assert.Contains(t, reply.Text, "synchronized")
	assert.Nil(t, reply.Cards)
}

func TestRespondOverdueReturnsCards(t *testing.T) {
	certs := []models.Certification{
		{ID: "cert-001", Status: models.StatusPending},
		{ID: "cert-002", Status: models.StatusOverdue},
		{ID: "cert-003", Status: models.StatusOverdue},
	}
	r := NewResponder(fixedSource(certs))

	reply := r.Respond("show me overdue certifications")
	assert.Empty(t, reply.Text)
	require.Len(t, reply.Cards, 2)
	assert.Equal(t, "cert-002", reply.Cards[0].ID)
	assert.Equal(t, "cert-003", reply.Cards[1].ID)
}

func TestRespondOverdueEmpty(t *testing.T) {
	r := NewResponder(fixedSource([]models.Certification{
		{ID: "cert-001", Status: models.StatusPending},
	}))

	reply := r.Respond("anything overdue?")
	assert.Nil(t, reply.Cards)
	assert.Contains(t, reply.Text, "no certifications")
}

func TestRespondPerformanceRule(t *testing.T) {
	r := NewResponder(fixedSource(nil))

	assert.Contains(t, r.Respond("how are the SLAs doing").Text, "SLA")
	assert.Contains(t, r.Respond("performance summary please").Text, "SLA")
}

func TestRespondFallback(t *testing.T) {
	r := NewResponder(fixedSource(nil))

	reply := r.Respond("what's the weather like")
	assert.Contains(t, reply.Text, "What specific information")
}

func TestRespondSyncNeedsBothKeywords(t *testing.T) {
	r := NewResponder(fixedSource(nil))

	// "sync" alone does not trigger the sync rule
	reply := r.Respond("sync status?")
	assert.Equal(t, fallbackReply, reply.Text)
}

func TestRespondCaseInsensitive(t *testing.T) {
	r := NewResponder(fixedSource([]models.Certification{
		{ID: "cert-002", Status: models.StatusOverdue},
	}))

	reply := r.Respond("OVERDUE items")
	assert.Len(t, reply.Cards, 1)
}
