package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"certdash/internal/derive"
	"certdash/internal/models"
	"certdash/internal/store"
	"certdash/internal/ui/keys"
	"certdash/internal/ui/styles"
)

// CalendarView shows due dates on a month grid with a per-day detail
// panel.
type CalendarView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	certs   []models.Certification
	users   []models.User
	buckets map[derive.Date][]models.Certification
	loaded  bool

	month    time.Time // first of the displayed month
	selected derive.Date

	width  int
	height int
}

// NewCalendarView creates the calendar view anchored on today
func NewCalendarView(st *store.Store) *CalendarView {
	now := time.Now()
	return &CalendarView{
		store:    st,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		month:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		selected: derive.DateOf(now),
	}
}

type calendarLoadedMsg struct {
	certs []models.Certification
	users []models.User
}

// Init loads the certifications
func (v *CalendarView) Init() tea.Cmd {
	return v.load
}

func (v *CalendarView) load() tea.Msg {
	certs, err := v.store.Certifications()
	if err != nil {
		return err
	}
	users, err := v.store.Users()
	if err != nil {
		return err
	}
	return calendarLoadedMsg{certs: certs, users: users}
}

// InputActive reports whether the view is capturing text input
func (v *CalendarView) InputActive() bool { return false }

// Update handles messages
func (v *CalendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case calendarLoadedMsg:
		v.certs = msg.certs
		v.users = msg.users
		v.buckets = derive.BucketByDay(msg.certs)
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *CalendarView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	loc := v.month.Location()

	switch {
	case key.Matches(msg, v.keys.Left):
		v.moveSelected(-1, loc)
	case key.Matches(msg, v.keys.Right):
		v.moveSelected(1, loc)
	case key.Matches(msg, v.keys.Up):
		v.moveSelected(-7, loc)
	case key.Matches(msg, v.keys.Down):
		v.moveSelected(7, loc)
	case msg.String() == "[":
		v.month = v.month.AddDate(0, -1, 0)
	case msg.String() == "]":
		v.month = v.month.AddDate(0, 1, 0)
	}
	return v, nil
}

// moveSelected shifts the selection by days, following it across month
// boundaries.
func (v *CalendarView) moveSelected(days int, loc *time.Location) {
	t := v.selected.Time(loc).AddDate(0, 0, days)
	v.selected = derive.DateOf(t)
	if t.Year() != v.month.Year() || t.Month() != v.month.Month() {
		v.month = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	}
}

// View renders the calendar
func (v *CalendarView) View() string {
	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		v.renderMonth(),
		"   ",
		v.renderDayDetail(),
	)
	help := v.styles.Help.Render(fmt.Sprintf("%s move · %s month",
		v.styles.HelpKey.Render("↑↓←→"), v.styles.HelpKey.Render("[ ]")))

	return styles.CenterView(
		lipgloss.JoinVertical(lipgloss.Left, content, help),
		v.width, v.height,
	)
}

func (v *CalendarView) renderMonth() string {
	s := v.styles
	today := derive.DateOf(time.Now())

	var b strings.Builder
	b.WriteString(s.Title.Render(v.month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(s.TitleMuted.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	first := v.month
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	col := 0
	b.WriteString(strings.Repeat("    ", offset))
	col = offset

	for day := 1; day <= daysInMonth; day++ {
		d := derive.Date{Year: first.Year(), Month: first.Month(), Day: day}
		cell := fmt.Sprintf("%3d", day)

		style := lipgloss.NewStyle()
		switch {
		case d == v.selected:
			style = style.Foreground(styles.Current.Background).Background(styles.Current.Primary).Bold(true)
		case d == today:
			style = style.Foreground(styles.Current.Accent).Bold(true)
		}
		b.WriteString(style.Render(cell))

		// Due-date marker
		if len(v.buckets[d]) > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(styles.Current.Warning).Render("•"))
		} else {
			b.WriteString(" ")
		}

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}

	return s.Card.Render(b.String())
}

func (v *CalendarView) renderDayDetail() string {
	s := v.styles
	loc := v.month.Location()
	due := derive.DueOn(v.certs, v.selected)

	lines := []string{
		s.Title.Render("Certifications for " + derive.FormatDate(v.selected.Time(loc))),
		"",
	}

	if len(due) == 0 {
		lines = append(lines, s.TitleMuted.Render(
			"No certifications due on "+derive.FormatDate(v.selected.Time(loc))))
	}

	today := time.Now()
	for _, cert := range due {
		daysLeft := derive.DaysUntil(cert.DueDate, today)
		p := derive.TaskProgress(cert)

		marker := lipgloss.NewStyle().Foreground(styles.StatusColor(cert.Status)).Render("●")
		lines = append(lines,
			fmt.Sprintf("%s %s", marker, s.CardValue.Render(cert.Description)),
			s.TitleMuted.Render("  "+cert.TireModelName),
			s.TitleMuted.Render("  Assigned to: "+v.assigneeName(cert.AssignedTo)),
			"  "+v.renderBadges(cert),
			s.TitleMuted.Render(fmt.Sprintf("  %d/%d tasks complete", p.Done, p.Total)),
		)
		if daysLeft < 0 {
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.Current.Error).
				Render(fmt.Sprintf("  Overdue by %d days", -daysLeft)))
		}
		lines = append(lines, "")
	}

	return s.Card.Width(clamp(styles.ContentWidth(v.width)-38, 30, 60)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (v *CalendarView) renderBadges(cert models.Certification) string {
	s := v.styles
	parts := []string{
		s.BadgeOutline.Render(cert.Region),
		s.BadgeOutline.Render(cert.Body),
	}
	for _, std := range cert.Standards {
		parts = append(parts, s.Badge.Background(styles.Current.Secondary).Render(std))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (v *CalendarView) assigneeName(userID string) string {
	for _, u := range v.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return "Unassigned"
}
