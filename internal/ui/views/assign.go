package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"certdash/internal/models"
	"certdash/internal/store"
	"certdash/internal/ui/keys"
	"certdash/internal/ui/styles"
)

// taskForm is the typed form state for a new obligation. Values are
// read from the inputs into this struct and validated before anything
// is constructed from them.
type taskForm struct {
	CertificationID string
	Description     string
	Type            string
	Priority        string
	DueDate         string
	AssignedTo      string
}

// missing returns the required fields that are empty
func (f taskForm) missing() []string {
	var out []string
	if f.CertificationID == "" {
		out = append(out, "certification")
	}
	if strings.TrimSpace(f.Description) == "" {
		out = append(out, "description")
	}
	if f.DueDate == "" {
		out = append(out, "due date")
	}
	if f.AssignedTo == "" {
		out = append(out, "assignee")
	}
	return out
}

// parseDueDate validates the date format
func (f taskForm) parseDueDate() (time.Time, error) {
	return time.Parse("2006-01-02", f.DueDate)
}

const (
	assignFocusCert = iota
	assignFocusDesc
	assignFocusType
	assignFocusPriority
	assignFocusDue
	assignFocusAssignee
	assignFocusSubmit
	assignFocusCount
)

// AssignView is the task assignment form
type AssignView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	certs  []models.Certification
	users  []models.User
	loaded bool

	focusIdx    int
	certIdx     int
	typeIdx     int
	priorityIdx int
	userIdx     int
	descInput   textarea.Model
	dueInput    textinput.Model

	notice      string
	noticeError bool

	width  int
	height int
}

// NewAssignView creates the assignment form view
func NewAssignView(st *store.Store) *AssignView {
	desc := textarea.New()
	desc.Placeholder = "Describe the obligation or task"
	desc.CharLimit = 1000
	desc.SetWidth(50)
	desc.SetHeight(3)
	desc.ShowLineNumbers = false

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10

	return &AssignView{
		store:     st,
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		descInput: desc,
		dueInput:  due,
	}
}

type assignLoadedMsg struct {
	certs []models.Certification
	users []models.User
}

// Init loads the pickable certifications and users
func (v *AssignView) Init() tea.Cmd {
	return v.load
}

func (v *AssignView) load() tea.Msg {
	certs, err := v.store.Certifications()
	if err != nil {
		return err
	}
	users, err := v.store.Users()
	if err != nil {
		return err
	}
	return assignLoadedMsg{certs: certs, users: users}
}

// InputActive reports whether the view is capturing text input
func (v *AssignView) InputActive() bool {
	return v.focusIdx == assignFocusDesc || v.focusIdx == assignFocusDue
}

// Update handles messages
func (v *AssignView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.descInput.SetWidth(clamp(styles.ContentWidth(v.width)-10, 20, 50))
		return v, nil

	case assignLoadedMsg:
		v.certs = msg.certs
		v.users = msg.users
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *AssignView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % assignFocusCount
		v.updateFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + assignFocusCount - 1) % assignFocusCount
		v.updateFocus()
		return v, nil

	case msg.String() == "ctrl+s":
		v.submit()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.focusIdx {
		case assignFocusSubmit:
			v.submit()
		case assignFocusDesc:
			// Let enter insert newlines in the textarea
		default:
			v.focusIdx = (v.focusIdx + 1) % assignFocusCount
			v.updateFocus()
		}
		if v.focusIdx != assignFocusDesc {
			return v, nil
		}

	case key.Matches(msg, v.keys.Left), key.Matches(msg, v.keys.Right):
		dir := 1
		if key.Matches(msg, v.keys.Left) {
			dir = -1
		}
		switch v.focusIdx {
		case assignFocusCert:
			if len(v.certs) > 0 {
				v.certIdx = (v.certIdx + dir + len(v.certs)) % len(v.certs)
			}
			return v, nil
		case assignFocusType:
			n := len(typeOptions)
			v.typeIdx = (v.typeIdx + dir + n) % n
			return v, nil
		case assignFocusPriority:
			n := len(priorityOptions)
			v.priorityIdx = (v.priorityIdx + dir + n) % n
			return v, nil
		case assignFocusAssignee:
			n := len(v.users) + 1 // leading "none"
			v.userIdx = (v.userIdx + dir + n) % n
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case assignFocusDesc:
		v.descInput, cmd = v.descInput.Update(msg)
	case assignFocusDue:
		v.dueInput, cmd = v.dueInput.Update(msg)
	}
	return v, cmd
}

func (v *AssignView) updateFocus() {
	v.descInput.Blur()
	v.dueInput.Blur()
	switch v.focusIdx {
	case assignFocusDesc:
		v.descInput.Focus()
	case assignFocusDue:
		v.dueInput.Focus()
	}
}

// form snapshots the current input state
func (v *AssignView) form() taskForm {
	f := taskForm{
		Description: v.descInput.Value(),
		Type:        typeOptions[v.typeIdx],
		Priority:    priorityOptions[v.priorityIdx],
		DueDate:     strings.TrimSpace(v.dueInput.Value()),
	}
	if len(v.certs) > 0 {
		f.CertificationID = v.certs[v.certIdx].ID
	}
	if v.userIdx > 0 && v.userIdx <= len(v.users) {
		f.AssignedTo = v.users[v.userIdx-1].ID
	}
	return f
}

// submit validates the form. Failures surface as an advisory notice,
// never as an error.
func (v *AssignView) submit() {
	f := v.form()

	if missing := f.missing(); len(missing) > 0 {
		v.notice = "Missing information: " + strings.Join(missing, ", ")
		v.noticeError = true
		return
	}
	if _, err := f.parseDueDate(); err != nil {
		v.notice = "Due date must be YYYY-MM-DD"
		v.noticeError = true
		return
	}

	v.notice = "Task assigned successfully"
	v.noticeError = false
	v.descInput.Reset()
	v.dueInput.Reset()
	v.typeIdx = 0
	v.priorityIdx = 0
	v.userIdx = 0
	v.focusIdx = assignFocusCert
	v.updateFocus()
}

// View renders the form
func (v *AssignView) View() string {
	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}
	s := v.styles

	pick := func(focused bool, label, value string) string {
		style := s.Button
		if focused {
			style = s.ButtonFocused
		}
		if value == "" {
			value = "—"
		}
		return label + ": " + style.Render("◂ "+value+" ▸")
	}

	certLabel := "—"
	if len(v.certs) > 0 {
		certLabel = v.certs[v.certIdx].TireModelName + " · " + v.certs[v.certIdx].Description
	}

	assignee := "Unassigned"
	if v.userIdx > 0 && v.userIdx <= len(v.users) {
		u := v.users[v.userIdx-1]
		assignee = fmt.Sprintf("%s (%s)", u.Name, u.Department)
	}

	descStyle := s.Input
	if v.focusIdx == assignFocusDesc {
		descStyle = s.InputFocused
	}
	dueStyle := s.Input
	if v.focusIdx == assignFocusDue {
		dueStyle = s.InputFocused
	}
	submitStyle := s.Button
	if v.focusIdx == assignFocusSubmit {
		submitStyle = s.ButtonFocused
	}

	notice := ""
	if v.notice != "" {
		color := styles.Current.Success
		if v.noticeError {
			color = styles.Current.Error
		}
		notice = lipgloss.NewStyle().Foreground(color).Render(v.notice)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Assign Task"),
		s.TitleMuted.Render("Create a new obligation and assign it to a team member"),
		"",
		pick(v.focusIdx == assignFocusCert, "Certification", certLabel),
		"",
		"Description:",
		descStyle.Render(v.descInput.View()),
		"",
		pick(v.focusIdx == assignFocusType, "Type", typeOptions[v.typeIdx]),
		pick(v.focusIdx == assignFocusPriority, "Priority", priorityOptions[v.priorityIdx]),
		"",
		"Due date:",
		dueStyle.Width(16).Render(v.dueInput.View()),
		"",
		pick(v.focusIdx == assignFocusAssignee, "Assign to", assignee),
		"",
		submitStyle.Render(" Assign Task "),
		"",
		notice,
		s.TitleMuted.Render("Tab: next field · ◂▸: change value · Ctrl+S: submit"),
	)

	contentWidth := styles.ContentWidth(v.width)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
