package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"certdash/internal/chat"
	"certdash/internal/derive"
	"certdash/internal/models"
	"certdash/internal/store"
	"certdash/internal/ui/keys"
	"certdash/internal/ui/styles"
)

// chatMessage is one entry in the transcript. Assistant replies may
// carry certification cards instead of text.
type chatMessage struct {
	fromUser bool
	text     string
	cards    []models.Certification
}

// ChatView is the assistant drawer: a transcript plus an input line
type ChatView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	responder *chat.Responder
	renderer  *glamour.TermRenderer

	messages []chatMessage
	input    textinput.Model
	scrollY  int

	certs  []models.Certification
	loaded bool

	width  int
	height int
}

// NewChatView creates the chat view
func NewChatView(st *store.Store) *ChatView {
	input := textinput.New()
	input.Placeholder = "Ask about your certifications..."
	input.CharLimit = 400
	input.Focus()

	v := &ChatView{
		store:  st,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		input:  input,
		messages: []chatMessage{
			{text: chat.Welcome},
		},
	}
	v.responder = chat.NewResponder(func() []models.Certification { return v.certs })
	return v
}

type chatLoadedMsg struct {
	certs []models.Certification
}

// Init loads the certifications the responder can surface
func (v *ChatView) Init() tea.Cmd {
	return v.load
}

func (v *ChatView) load() tea.Msg {
	certs, err := v.store.Certifications()
	if err != nil {
		return err
	}
	return chatLoadedMsg{certs: certs}
}

// InputActive reports whether the view is capturing text input
func (v *ChatView) InputActive() bool { return v.input.Focused() }

// Update handles messages
func (v *ChatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		// Re-wrap markdown at the new width
		wrap := clamp(styles.ContentWidth(v.width)-8, 30, 80)
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			v.renderer = renderer
		}
		return v, nil

	case chatLoadedMsg:
		v.certs = msg.certs
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Enter):
			v.send()
			return v, nil
		case key.Matches(msg, v.keys.Up):
			if v.scrollY > 0 {
				v.scrollY--
			}
			return v, nil
		case key.Matches(msg, v.keys.Down):
			v.scrollY++
			return v, nil
		default:
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

func (v *ChatView) send() {
	text := strings.TrimSpace(v.input.Value())
	if text == "" {
		return
	}

	v.messages = append(v.messages, chatMessage{fromUser: true, text: text})
	reply := v.responder.Respond(text)
	v.messages = append(v.messages, chatMessage{
		text:  reply.Text,
		cards: reply.Cards,
	})
	v.input.Reset()
	v.scrollY = 0
}

// View renders the transcript and input line
func (v *ChatView) View() string {
	s := v.styles

	var parts []string
	parts = append(parts,
		s.Title.Render("Compliance Assistant"),
		s.TitleMuted.Render("Keyword-matched replies, no model attached"),
		"",
	)
	for _, m := range v.messages {
		parts = append(parts, v.renderMessage(m))
	}

	transcript := v.clipTranscript(strings.Join(parts, "\n"))

	inputBox := s.InputFocused.
		Width(clamp(styles.ContentWidth(v.width)-6, 30, 80)).
		Render(v.input.View())

	help := s.Help.Render(fmt.Sprintf("%s send · %s scroll",
		s.HelpKey.Render("↵"), s.HelpKey.Render("↑↓")))

	return styles.CenterView(
		lipgloss.JoinVertical(lipgloss.Left, transcript, "", inputBox, help),
		v.width, v.height,
	)
}

// clipTranscript keeps the transcript within the space left above the
// input line, honoring manual scroll.
func (v *ChatView) clipTranscript(transcript string) string {
	lines := strings.Split(transcript, "\n")
	available := v.height - 7
	if available < 5 {
		available = 5
	}
	if len(lines) <= available {
		return transcript
	}

	start := len(lines) - available - v.scrollY
	if start < 0 {
		start = 0
		v.scrollY = len(lines) - available
	}
	return strings.Join(lines[start:start+available], "\n")
}

func (v *ChatView) renderMessage(m chatMessage) string {
	if m.fromUser {
		return lipgloss.NewStyle().Foreground(styles.Current.Accent).Render("You: ") +
			m.text
	}

	if len(m.cards) > 0 {
		cards := make([]string, 0, len(m.cards))
		for _, cert := range m.cards {
			cards = append(cards, v.renderCard(cert))
		}
		return lipgloss.NewStyle().Foreground(styles.Current.Secondary).Render("Assistant:") +
			"\n" + lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	body := m.text
	if v.renderer != nil {
		if rendered, err := v.renderer.Render(m.text); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}
	return lipgloss.NewStyle().Foreground(styles.Current.Secondary).Render("Assistant:") +
		"\n" + body
}

// renderCard renders one overdue certification as a bordered card
func (v *ChatView) renderCard(cert models.Certification) string {
	s := v.styles
	daysLeft := derive.DaysUntil(cert.DueDate, time.Now())

	overdueBy := ""
	if daysLeft < 0 {
		overdueBy = lipgloss.NewStyle().Foreground(styles.Current.Error).
			Render(fmt.Sprintf("Overdue by %d days", -daysLeft))
	}

	return s.Card.BorderForeground(styles.Current.Error).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			s.CardValue.Render(cert.Description),
			s.TitleMuted.Render(cert.TireModelName+" · "+cert.Region+" · "+cert.Body),
			s.TitleMuted.Render("Due: "+derive.FormatDate(cert.DueDate)),
			overdueBy,
		),
	)
}
