package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"certdash/internal/derive"
	"certdash/internal/models"
	"certdash/internal/store"
	"certdash/internal/ui/keys"
	"certdash/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// cycle steps through options; the empty leading entry means no filter
func cycle(current string, options []string) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

var (
	statusOptions   = []string{"", "pending", "completed", "overdue", "at-risk"}
	priorityOptions = []string{"", "low", "medium", "high"}
	typeOptions     = []string{"", "homologation", "warranty", "testing", "compliance", "renewal", "other"}
)

// CertListView shows the filterable certification list
type CertListView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	certs  []models.Certification
	users  []models.User
	loaded bool

	filter        derive.Filter
	groupByRegion bool

	searchInput textinput.Model
	searching   bool

	cursor  int
	scrollY int

	bar progress.Model

	width  int
	height int
}

// NewCertListView creates the certification list view. tireModelID
// scopes the list to one tire model when non-empty.
func NewCertListView(st *store.Store, tireModelID string) *CertListView {
	search := textinput.New()
	search.Placeholder = "Search by description or tire model..."
	search.CharLimit = 100

	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	bar.Width = 20

	return &CertListView{
		store:       st,
		styles:      styles.NewStyles(),
		keys:        keys.DefaultKeyMap(),
		filter:      derive.Filter{TireModelID: tireModelID},
		searchInput: search,
		bar:         bar,
	}
}

type certsLoadedMsg struct {
	certs []models.Certification
	users []models.User
}

// Init loads the certifications
func (v *CertListView) Init() tea.Cmd {
	return v.load
}

func (v *CertListView) load() tea.Msg {
	// Tire model scoping happens in the store, ahead of the in-memory
	// filters.
	var certs []models.Certification
	var err error
	if v.filter.TireModelID != "" {
		certs, err = v.store.CertificationsForTireModel(v.filter.TireModelID)
	} else {
		certs, err = v.store.Certifications()
	}
	if err != nil {
		return err
	}

	users, err := v.store.Users()
	if err != nil {
		return err
	}
	return certsLoadedMsg{certs: certs, users: users}
}

// InputActive reports whether the view is capturing text input
func (v *CertListView) InputActive() bool { return v.searching }

// Update handles messages
func (v *CertListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case certsLoadedMsg:
		v.certs = msg.certs
		v.users = msg.users
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearching(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *CertListView) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
		v.searching = false
		v.searchInput.Blur()
		return v, nil
	default:
		var cmd tea.Cmd
		v.searchInput, cmd = v.searchInput.Update(msg)
		v.filter.Search = v.searchInput.Value()
		v.cursor = 0
		v.scrollY = 0
		return v, cmd
	}
}

func (v *CertListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtered := v.filter.Apply(v.certs)

	switch {
	case key.Matches(msg, v.keys.Search):
		v.searching = true
		v.searchInput.Focus()
		return v, textinput.Blink

	case msg.String() == "s":
		v.filter.Status = cycle(v.filter.Status, statusOptions)
		v.cursor = 0
		v.scrollY = 0
		return v, nil

	case msg.String() == "p":
		v.filter.Priority = cycle(v.filter.Priority, priorityOptions)
		v.cursor = 0
		v.scrollY = 0
		return v, nil

	case msg.String() == "t":
		v.filter.Type = cycle(v.filter.Type, typeOptions)
		v.cursor = 0
		v.scrollY = 0
		return v, nil

	case key.Matches(msg, v.keys.Group):
		v.groupByRegion = !v.groupByRegion
		return v, nil

	case msg.String() == "r":
		// Reset all filters, keeping any tire model scoping
		scope := v.filter.TireModelID
		v.filter = derive.Filter{TireModelID: scope}
		v.searchInput.Reset()
		v.cursor = 0
		v.scrollY = 0
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(filtered)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil
	}
	return v, nil
}

func (v *CertListView) ensureVisible() {
	// Each row renders as 4 lines plus a separator
	availableHeight := v.height - 12
	if availableHeight < 5 {
		availableHeight = 5
	}
	visibleItems := availableHeight / 5
	if visibleItems < 1 {
		visibleItems = 1
	}

	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

// View renders the list
func (v *CertListView) View() string {
	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(v.renderFilterBar())
	b.WriteString("\n\n")

	filtered := v.filter.Apply(v.certs)
	if len(filtered) == 0 {
		b.WriteString(v.styles.Title.Render("No certifications found"))
		b.WriteString("\n")
		b.WriteString(v.styles.TitleMuted.Render("Try adjusting your filters"))
	} else if v.groupByRegion {
		b.WriteString(v.renderGrouped(filtered))
	} else {
		b.WriteString(v.renderRows(filtered, true))
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *CertListView) renderFilterBar() string {
	s := v.styles

	searchStyle := s.Input
	if v.searching {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(styles.ContentWidth(v.width)-50, 15, 40)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	chip := func(label, value string) string {
		if value == "" {
			value = "all"
		}
		return s.Button.Render(fmt.Sprintf("%s: %s", label, value))
	}

	group := s.Button
	if v.groupByRegion {
		group = s.ButtonFocused
	}

	title := "Certifications"
	if v.filter.TireModelID != "" {
		title = fmt.Sprintf("Certifications · %s", v.filter.TireModelID)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Center,
			searchBox, " ",
			chip("status", v.filter.Status), " ",
			chip("priority", v.filter.Priority), " ",
			chip("type", v.filter.Type), " ",
			group.Render("region groups"),
		),
	)
}

func (v *CertListView) renderGrouped(filtered []models.Certification) string {
	grouped := derive.GroupByRegion(filtered)

	var sections []string
	idx := 0
	for _, region := range grouped.Regions {
		var rows []string
		rows = append(rows, v.styles.Title.Render(region))
		for _, cert := range grouped.Groups[region] {
			rows = append(rows, v.renderRow(cert, idx == v.cursor))
			idx++
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func (v *CertListView) renderRows(filtered []models.Certification, scroll bool) string {
	start := 0
	if scroll {
		start = v.scrollY
	}

	var rows []string
	for i := start; i < len(filtered); i++ {
		rows = append(rows, v.renderRow(filtered[i], i == v.cursor))
	}
	return strings.Join(rows, "\n")
}

func (v *CertListView) renderRow(cert models.Certification, selected bool) string {
	s := v.styles
	today := time.Now()
	daysLeft := derive.DaysUntil(cert.DueDate, today)
	p := derive.TaskProgress(cert)

	due := "Due: " + derive.FormatDate(cert.DueDate)
	switch {
	case daysLeft < 0:
		due += lipgloss.NewStyle().Foreground(styles.Current.Error).Render(" · Overdue")
	case daysLeft == 0:
		due += lipgloss.NewStyle().Foreground(styles.Current.Warning).Render(" · Due today")
	case daysLeft <= 7:
		due += lipgloss.NewStyle().Foreground(styles.Current.Warning).
			Render(fmt.Sprintf(" · Due in %d days", daysLeft))
	}

	marker := lipgloss.NewStyle().Foreground(styles.StatusColor(cert.Status)).Render("●")
	priority := s.Badge.Background(styles.PriorityColor(cert.Priority)).Render(string(cert.Priority))
	certType := s.Badge.Background(styles.Current.Secondary).Render(string(cert.Type))

	titleStyle := s.ListItem
	if selected {
		titleStyle = s.ListSelected
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("%s %s", marker, cert.Description)),
		s.TitleMuted.Render("  "+cert.TireModelName+" · "+due),
		"  "+priority+certType+
			s.TitleMuted.Render(fmt.Sprintf(" %d/%d tasks %s", p.Done, p.Total, v.bar.ViewAs(p.Ratio()))),
		s.TitleMuted.Render("  Assigned to: "+v.assigneeName(cert.AssignedTo)),
	)
}

func (v *CertListView) assigneeName(userID string) string {
	for _, u := range v.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return "Unassigned"
}

func (v *CertListView) renderHelp() string {
	s := v.styles
	return s.Help.Render(fmt.Sprintf(
		"%s search · %s status · %s priority · %s type · %s group · %s reset",
		s.HelpKey.Render("/"),
		s.HelpKey.Render("s"),
		s.HelpKey.Render("p"),
		s.HelpKey.Render("t"),
		s.HelpKey.Render("g"),
		s.HelpKey.Render("r"),
	))
}
