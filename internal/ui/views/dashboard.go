package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"certdash/internal/derive"
	"certdash/internal/models"
	"certdash/internal/store"
	"certdash/internal/ui/styles"
)

// DeadlineWindowDays is the lookahead for the upcoming deadlines panel
const DeadlineWindowDays = 30

// DashboardView shows the summary cards, type distribution and the
// upcoming deadline list.
type DashboardView struct {
	store  *store.Store
	styles *styles.Styles

	certs  []models.Certification
	users  []models.User
	tires  []models.TireModel
	loaded bool

	bar progress.Model

	width  int
	height int
}

// NewDashboardView creates the dashboard view
func NewDashboardView(st *store.Store) *DashboardView {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	return &DashboardView{
		store:  st,
		styles: styles.NewStyles(),
		bar:    bar,
	}
}

type dashboardLoadedMsg struct {
	certs []models.Certification
	users []models.User
	tires []models.TireModel
}

// Init loads the collections
func (v *DashboardView) Init() tea.Cmd {
	return v.load
}

func (v *DashboardView) load() tea.Msg {
	certs, err := v.store.Certifications()
	if err != nil {
		return err
	}
	users, err := v.store.Users()
	if err != nil {
		return err
	}
	tires, err := v.store.TireModels()
	if err != nil {
		return err
	}
	return dashboardLoadedMsg{certs: certs, users: users, tires: tires}
}

// InputActive reports whether the view is capturing text input
func (v *DashboardView) InputActive() bool { return false }

// Update handles messages
func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.bar.Width = clamp(styles.ContentWidth(v.width)/2-10, 10, 40)
		return v, nil

	case dashboardLoadedMsg:
		v.certs = msg.certs
		v.users = msg.users
		v.tires = msg.tires
		v.loaded = true
		return v, nil
	}
	return v, nil
}

// View renders the dashboard
func (v *DashboardView) View() string {
	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(v.renderSummaryCards())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		v.renderTypeDistribution(),
		"   ",
		v.renderUpcomingDeadlines(),
	))
	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *DashboardView) renderSummaryCards() string {
	s := v.styles
	counts := derive.CountsByStatus(v.certs)
	total := len(v.certs)

	completionRate := 0.0
	if total > 0 {
		completionRate = float64(counts.Completed) / float64(total) * 100
	}

	card := func(title, value, sub string) string {
		return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.CardTitle.Render(title),
			s.CardValue.Render(value),
			s.TitleMuted.Render(sub),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Certifications", fmt.Sprintf("%d", total),
			fmt.Sprintf("Across %d tire models", len(v.tires))),
		" ",
		card("Pending", fmt.Sprintf("%d", counts.Pending),
			fmt.Sprintf("%d at risk", counts.AtRisk)),
		" ",
		card("Completed", fmt.Sprintf("%d", counts.Completed),
			fmt.Sprintf("%.1f%% completion rate", completionRate)),
		" ",
		card("Overdue", fmt.Sprintf("%d", counts.Overdue),
			fmt.Sprintf("%d at risk", counts.AtRisk)),
	)
}

func (v *DashboardView) renderTypeDistribution() string {
	s := v.styles
	counts := derive.CountsByType(v.certs)
	total := len(v.certs)

	rows := []struct {
		label string
		count int
	}{
		{"homologation", counts.Homologation},
		{"warranty", counts.Warranty},
		{"testing", counts.Testing},
		{"compliance", counts.Compliance},
		{"renewal", counts.Renewal},
		{"other", counts.Other},
	}

	lines := []string{s.Title.Render("Certification Types"), ""}
	for _, row := range rows {
		ratio := 0.0
		if total > 0 {
			ratio = float64(row.count) / float64(total)
		}
		lines = append(lines, fmt.Sprintf("%-14s %s %3d",
			row.label, v.bar.ViewAs(ratio), row.count))
	}

	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (v *DashboardView) renderUpcomingDeadlines() string {
	s := v.styles
	today := time.Now()
	upcoming := derive.UpcomingDeadlines(v.certs, DeadlineWindowDays, today)

	lines := []string{
		s.Title.Render("Upcoming Deadlines"),
		s.TitleMuted.Render(fmt.Sprintf("Due in the next %d days", DeadlineWindowDays)),
		"",
	}

	if len(upcoming) == 0 {
		lines = append(lines, s.TitleMuted.Render("Nothing due in this window"))
	}

	shown := upcoming
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for _, cert := range shown {
		p := derive.TaskProgress(cert)
		lines = append(lines,
			lipgloss.NewStyle().Foreground(styles.StatusColor(cert.Status)).Render("● ")+
				s.CardValue.Render(cert.Description),
			s.TitleMuted.Render("  "+cert.TireModelName),
			s.TitleMuted.Render(fmt.Sprintf("  Due: %s · %s",
				derive.FormatDate(cert.DueDate), v.assigneeName(cert.AssignedTo))),
			fmt.Sprintf("  %s %d/%d tasks", v.bar.ViewAs(p.Ratio()), p.Done, p.Total),
			"",
		)
	}

	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// assigneeName resolves a user id for display; unknown ids render as
// Unassigned rather than erroring.
func (v *DashboardView) assigneeName(userID string) string {
	for _, u := range v.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return "Unassigned"
}
