// Package chat implements the canned-response assistant. There is no
// model behind it: replies come from keyword rules over the user input,
// and the only data it can surface is the overdue-certification list.
package chat

import (
	"strings"

	"certdash/internal/models"
)

// Reply is one assistant response. Cards is non-nil only for the
// overdue query, which answers with structured certification cards
// instead of prose.
type Reply struct {
	Text  string
	Cards []models.Certification
}

// CertSource yields the current certification collection
type CertSource func() []models.Certification

// Responder matches user input against keyword rules
type Responder struct {
	certs CertSource
}

// NewResponder creates a responder reading certifications from source
func NewResponder(source CertSource) *Responder {
	return &Responder{certs: source}
}

// Welcome is the greeting shown when the chat opens
const Welcome = "Hello! How can I help you with your certifications today?"

const (
	syncReply = "I've checked the ERP system. All certifications are currently synchronized. " +
		"The last sync was completed 10 minutes ago."
	slaReply = "Currently tracking 12 SLAs across vendor certifications. All performance metrics " +
		"are within acceptable ranges except for the Cloud Storage Provider which is showing " +
		"98.7% uptime (target: 99.9%)."
	fallbackReply = "I can help you to understand product catalogues, track certifications, or " +
		"monitor performance measurements. What specific information would you like me to provide?"
	overdueEmptyReply = "Good news: no certifications are currently marked overdue."
)

// Respond produces the reply for one user message. First matching rule
// wins; anything unmatched gets the generic help line.
func (r *Responder) Respond(input string) Reply {
	lowered := strings.ToLower(input)

	switch {
	case strings.Contains(lowered, "certification") && strings.Contains(lowered, "sync"):
		return Reply{Text: syncReply}

	case strings.Contains(lowered, "overdue"):
		var cards []models.Certification
		for _, cert := range r.certs() {
			if cert.Status == models.StatusOverdue {
				cards = append(cards, cert)
			}
		}
		if len(cards) == 0 {
			return Reply{Text: overdueEmptyReply}
		}
		return Reply{Cards: cards}

	case strings.Contains(lowered, "performance") || strings.Contains(lowered, "sla"):
		return Reply{Text: slaReply}
	}

	return Reply{Text: fallbackReply}
}
