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
	"github.com/google/uuid"

	"certdash/internal/derive"
	"certdash/internal/models"
	"certdash/internal/simulate"
	"certdash/internal/store"
	"certdash/internal/ui/keys"
	"certdash/internal/ui/styles"
)

// uploadTireModelID is the tire model the analyzed catalog maps to
const uploadTireModelID = "tire-001"

const tickInterval = 300 * time.Millisecond

type uploadPhase int

const (
	phasePickFile uploadPhase = iota
	phaseUploading
	phaseAnalyzing
	phaseResults
	phaseSyncing
	phaseSyncReport
)

// UploadView simulates the product catalog upload flow: pick a file,
// watch upload and analysis progress, review the identified
// certifications, add one, and run the ERP sync. The certification
// added here lands in a view-local copy only; the canonical store is
// never written.
type UploadView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	phase    uploadPhase
	fileName textinput.Model

	upload  simulate.Operation
	analyze simulate.Operation
	sync    simulate.Operation
	bar     progress.Model

	localCerts []models.Certification
	tireModel  *models.TireModel
	users      []models.User

	// New certification form
	creating  bool
	form      certForm
	focusIdx  int
	userIdx   int
	taskUser  int
	notice    string
	noticeErr bool

	width  int
	height int
}

// certForm holds the typed inputs for a new certification plus its
// single initial task.
type certForm struct {
	description textinput.Model
	dueDate     textinput.Model
	priorityIdx int
	region      textinput.Model
	body        textinput.Model
	standards   textinput.Model
	taskDesc    textinput.Model
	taskDue     textinput.Model
}

const (
	certFocusDesc = iota
	certFocusDue
	certFocusPriority
	certFocusAssignee
	certFocusRegion
	certFocusBody
	certFocusStandards
	certFocusTaskDesc
	certFocusTaskDue
	certFocusTaskAssignee
	certFocusSave
	certFocusCount
)

func newCertForm() certForm {
	input := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		return in
	}
	return certForm{
		priorityIdx: 2, // medium
		description: input("Certification description", 200),
		dueDate:     input("YYYY-MM-DD", 10),
		region:      input("Region", 100),
		body:        input("Certifying body", 100),
		standards:   input("Standards, comma separated", 200),
		taskDesc:    input("First task description", 200),
		taskDue:     input("YYYY-MM-DD", 10),
	}
}

// NewUploadView creates the upload view
func NewUploadView(st *store.Store) *UploadView {
	file := textinput.New()
	file.Placeholder = "catalog.xlsx"
	file.CharLimit = 120
	file.Focus()

	bar := progress.New(progress.WithDefaultGradient())

	return &UploadView{
		store:    st,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		fileName: file,
		bar:      bar,
		form:     newCertForm(),
	}
}

type uploadDataMsg struct {
	certs []models.Certification
	model *models.TireModel
	users []models.User
}

type uploadTickMsg struct{}
type analyzeTickMsg struct{}
type syncTickMsg struct{}

// Init loads the scoped certifications
func (v *UploadView) Init() tea.Cmd {
	return v.load
}

func (v *UploadView) load() tea.Msg {
	certs, err := v.store.CertificationsForTireModel(uploadTireModelID)
	if err != nil {
		return err
	}
	model, err := v.store.TireModelByID(uploadTireModelID)
	if err != nil {
		return err
	}
	users, err := v.store.Users()
	if err != nil {
		return err
	}
	return uploadDataMsg{certs: certs, model: model, users: users}
}

// InputActive reports whether the view is capturing text input
func (v *UploadView) InputActive() bool {
	if v.creating {
		return true
	}
	return v.phase == phasePickFile && v.fileName.Focused()
}

func tick(msg tea.Msg) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return msg })
}

// Update handles messages
func (v *UploadView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.bar.Width = clamp(styles.ContentWidth(v.width)-20, 20, 50)
		return v, nil

	case uploadDataMsg:
		v.localCerts = msg.certs
		v.tireModel = msg.model
		v.users = msg.users
		return v, nil

	case uploadTickMsg:
		// Stale ticks after a cancel fall through Tick as no-ops
		if done := v.upload.Tick(); done {
			v.phase = phaseAnalyzing
			v.analyze.Start()
			return v, tick(analyzeTickMsg{})
		}
		if v.upload.State() == simulate.Running {
			return v, tick(uploadTickMsg{})
		}
		return v, nil

	case analyzeTickMsg:
		if done := v.analyze.Tick(); done {
			v.phase = phaseResults
			v.notice = fmt.Sprintf("%d certifications identified for the tire model", len(v.localCerts))
			v.noticeErr = false
			return v, nil
		}
		if v.analyze.State() == simulate.Running {
			return v, tick(analyzeTickMsg{})
		}
		return v, nil

	case syncTickMsg:
		if done := v.sync.Tick(); done {
			v.phase = phaseSyncReport
			v.notice = "All certifications have been synchronized with the ERP system"
			v.noticeErr = false
			return v, nil
		}
		if v.sync.State() == simulate.Running {
			return v, tick(syncTickMsg{})
		}
		return v, nil

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *UploadView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.creating {
		return v.updateCreating(msg)
	}

	switch v.phase {
	case phasePickFile:
		switch {
		case key.Matches(msg, v.keys.Enter):
			if strings.TrimSpace(v.fileName.Value()) == "" {
				v.notice = "Choose a file first"
				v.noticeErr = true
				return v, nil
			}
			v.phase = phaseUploading
			v.upload.Start()
			v.notice = ""
			return v, tick(uploadTickMsg{})
		default:
			var cmd tea.Cmd
			v.fileName, cmd = v.fileName.Update(msg)
			return v, cmd
		}

	case phaseUploading:
		if key.Matches(msg, v.keys.Back) {
			// Abandon mid-flight; pending ticks become no-ops
			v.upload.Cancel()
			v.phase = phasePickFile
			return v, nil
		}

	case phaseAnalyzing:
		if key.Matches(msg, v.keys.Back) {
			v.analyze.Cancel()
			v.phase = phasePickFile
			return v, nil
		}

	case phaseResults:
		switch {
		case key.Matches(msg, v.keys.New):
			v.creating = true
			v.form = newCertForm()
			v.focusIdx = certFocusDesc
			v.userIdx = 0
			v.taskUser = 0
			v.updateFormFocus()
			return v, textinput.Blink
		case msg.String() == "y":
			v.phase = phaseSyncing
			v.sync.Start()
			return v, tick(syncTickMsg{})
		case key.Matches(msg, v.keys.Back):
			v.reset()
			return v, nil
		}

	case phaseSyncing:
		if key.Matches(msg, v.keys.Back) {
			v.sync.Cancel()
			v.phase = phaseResults
			return v, nil
		}

	case phaseSyncReport:
		if key.Matches(msg, v.keys.Back) {
			v.reset()
			return v, nil
		}
	}
	return v, nil
}

func (v *UploadView) reset() {
	v.phase = phasePickFile
	v.fileName.Reset()
	v.fileName.Focus()
	v.upload.Reset()
	v.analyze.Reset()
	v.sync.Reset()
	v.notice = ""
}

func (v *UploadView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % certFocusCount
		v.updateFormFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.focusIdx = (v.focusIdx + certFocusCount - 1) % certFocusCount
		v.updateFormFocus()
		return v, nil

	case msg.String() == "ctrl+s":
		v.saveCertification()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.focusIdx == certFocusSave {
			v.saveCertification()
			return v, nil
		}
		v.focusIdx = (v.focusIdx + 1) % certFocusCount
		v.updateFormFocus()
		return v, nil

	case key.Matches(msg, v.keys.Left), key.Matches(msg, v.keys.Right):
		dir := 1
		if key.Matches(msg, v.keys.Left) {
			dir = -1
		}
		switch v.focusIdx {
		case certFocusPriority:
			n := len(priorityOptions)
			v.form.priorityIdx = (v.form.priorityIdx + dir + n) % n
			return v, nil
		case certFocusAssignee:
			n := len(v.users) + 1
			v.userIdx = (v.userIdx + dir + n) % n
			return v, nil
		case certFocusTaskAssignee:
			n := len(v.users) + 1
			v.taskUser = (v.taskUser + dir + n) % n
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case certFocusDesc:
		v.form.description, cmd = v.form.description.Update(msg)
	case certFocusDue:
		v.form.dueDate, cmd = v.form.dueDate.Update(msg)
	case certFocusRegion:
		v.form.region, cmd = v.form.region.Update(msg)
	case certFocusBody:
		v.form.body, cmd = v.form.body.Update(msg)
	case certFocusStandards:
		v.form.standards, cmd = v.form.standards.Update(msg)
	case certFocusTaskDesc:
		v.form.taskDesc, cmd = v.form.taskDesc.Update(msg)
	case certFocusTaskDue:
		v.form.taskDue, cmd = v.form.taskDue.Update(msg)
	}
	return v, cmd
}

func (v *UploadView) updateFormFocus() {
	inputs := []*textinput.Model{
		&v.form.description, &v.form.dueDate, &v.form.region, &v.form.body,
		&v.form.standards, &v.form.taskDesc, &v.form.taskDue,
	}
	for _, in := range inputs {
		in.Blur()
	}
	switch v.focusIdx {
	case certFocusDesc:
		v.form.description.Focus()
	case certFocusDue:
		v.form.dueDate.Focus()
	case certFocusRegion:
		v.form.region.Focus()
	case certFocusBody:
		v.form.body.Focus()
	case certFocusStandards:
		v.form.standards.Focus()
	case certFocusTaskDesc:
		v.form.taskDesc.Focus()
	case certFocusTaskDue:
		v.form.taskDue.Focus()
	}
}

// saveCertification validates the form and appends the new record to
// the view-local list.
func (v *UploadView) saveCertification() {
	desc := strings.TrimSpace(v.form.description.Value())
	taskDesc := strings.TrimSpace(v.form.taskDesc.Value())

	if desc == "" || v.form.dueDate.Value() == "" || taskDesc == "" || v.form.taskDue.Value() == "" {
		v.notice = "Please fill in all required fields"
		v.noticeErr = true
		return
	}

	due, err := time.Parse("2006-01-02", v.form.dueDate.Value())
	if err != nil {
		v.notice = "Due date must be YYYY-MM-DD"
		v.noticeErr = true
		return
	}
	taskDue, err := time.Parse("2006-01-02", v.form.taskDue.Value())
	if err != nil {
		v.notice = "Task due date must be YYYY-MM-DD"
		v.noticeErr = true
		return
	}

	var standards []string
	for _, std := range strings.Split(v.form.standards.Value(), ",") {
		if trimmed := strings.TrimSpace(std); trimmed != "" {
			standards = append(standards, trimmed)
		}
	}

	assigned := ""
	if v.userIdx > 0 && v.userIdx <= len(v.users) {
		assigned = v.users[v.userIdx-1].ID
	}
	taskAssigned := ""
	if v.taskUser > 0 && v.taskUser <= len(v.users) {
		taskAssigned = v.users[v.taskUser-1].ID
	}

	modelName := ""
	if v.tireModel != nil {
		modelName = v.tireModel.Name
	}

	cert := models.Certification{
		ID:            "cert-" + uuid.NewString(),
		TireModelID:   uploadTireModelID,
		TireModelName: modelName,
		Description:   desc,
		DueDate:       due,
		Status:        models.StatusPending,
		AssignedTo:    assigned,
		Priority:      models.Priority(priorityOptions[v.form.priorityIdx]),
		Type:          models.TypeHomologation,
		Region:        strings.TrimSpace(v.form.region.Value()),
		Body:          strings.TrimSpace(v.form.body.Value()),
		Standards:     standards,
		Tasks: []models.Task{{
			ID:          "task-" + uuid.NewString(),
			Description: taskDesc,
			DueDate:     taskDue,
			AssignedTo:  taskAssigned,
		}},
	}

	v.localCerts = append(v.localCerts, cert)
	v.creating = false
	v.notice = "New certification has been added"
	v.noticeErr = false
}

// View renders the view
func (v *UploadView) View() string {
	if v.creating {
		return v.renderCertForm()
	}

	var body string
	switch v.phase {
	case phasePickFile:
		body = v.renderPickFile()
	case phaseUploading:
		body = v.renderProgress("Uploading...", v.upload.Percent())
	case phaseAnalyzing:
		body = v.renderProgress("Analyzing product catalog and identifying certifications...", v.analyze.Percent())
	case phaseResults:
		body = v.renderResults()
	case phaseSyncing:
		body = v.renderProgress("Synchronizing with ERP...", v.sync.Percent())
	case phaseSyncReport:
		body = v.renderSyncReport()
	}
	return styles.CenterView(body, v.width, v.height)
}

func (v *UploadView) renderNotice() string {
	if v.notice == "" {
		return ""
	}
	color := styles.Current.Success
	if v.noticeErr {
		color = styles.Current.Error
	}
	return lipgloss.NewStyle().Foreground(color).Render(v.notice)
}

func (v *UploadView) renderPickFile() string {
	s := v.styles
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Upload Product Catalog"),
		s.TitleMuted.Render("Upload a product catalog to identify required certifications and standards"),
		"",
		"File name:",
		s.InputFocused.Width(40).Render(v.fileName.View()),
		s.TitleMuted.Render("Supports XLSX, CSV (Max 15MB)"),
		"",
		s.ButtonPrimary.Render(" Process Catalog "),
		"",
		v.renderNotice(),
		s.TitleMuted.Render("↵: process · esc: cancel"),
	)
}

func (v *UploadView) renderProgress(label string, percent int) string {
	s := v.styles
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Upload Product Catalog"),
		"",
		label,
		"",
		v.bar.ViewAs(float64(percent)/100),
		s.TitleMuted.Render(fmt.Sprintf("%d%%", percent)),
		"",
		s.TitleMuted.Render("esc: cancel"),
	)
}

func (v *UploadView) renderResults() string {
	s := v.styles

	lines := []string{
		s.Title.Render("Identified Certifications"),
		v.renderNotice(),
		"",
	}
	for _, cert := range v.localCerts {
		marker := lipgloss.NewStyle().Foreground(styles.StatusColor(cert.Status)).Render("●")
		lines = append(lines,
			fmt.Sprintf("%s %s", marker, s.CardValue.Render(cert.Description)),
			s.TitleMuted.Render("  "+cert.Region+" · "+cert.Body+" · due "+derive.FormatDate(cert.DueDate)),
		)
	}

	lines = append(lines, "", s.Title.Render("Certifications by Region"))
	for _, summary := range derive.SummarizeByRegion(v.localCerts) {
		lines = append(lines,
			fmt.Sprintf("%-18s %d certifications", summary.Region, summary.Count),
			s.TitleMuted.Render("  "+strings.Join(summary.Standards, ", ")),
		)
	}

	lines = append(lines, "",
		s.Help.Render(fmt.Sprintf("%s add certification · %s sync with ERP · %s start over",
			s.HelpKey.Render("n"), s.HelpKey.Render("y"), s.HelpKey.Render("esc"))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *UploadView) renderSyncReport() string {
	s := v.styles

	lines := []string{
		s.Title.Render("ERP Sync Report"),
		s.TitleMuted.Render("Overview of certification synchronization status"),
		v.renderNotice(),
		"",
	}
	for _, summary := range derive.SummarizeByRegion(v.localCerts) {
		lines = append(lines,
			s.CardValue.Render(summary.Region),
			s.TitleMuted.Render(fmt.Sprintf("  %d certifications", summary.Count)),
			s.TitleMuted.Render("  "+strings.Join(summary.Standards, ", ")),
			"",
		)
	}
	lines = append(lines, s.TitleMuted.Render("esc: done"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *UploadView) renderCertForm() string {
	s := v.styles

	field := func(focus int, label string, in textinput.Model) string {
		style := s.Input
		if v.focusIdx == focus {
			style = s.InputFocused
		}
		return label + "\n" + style.Width(44).Render(in.View())
	}

	pick := func(focus int, label, value string) string {
		style := s.Button
		if v.focusIdx == focus {
			style = s.ButtonFocused
		}
		return label + ": " + style.Render("◂ "+value+" ▸")
	}

	assignee := func(idx int) string {
		if idx > 0 && idx <= len(v.users) {
			return v.users[idx-1].Name
		}
		return "Unassigned"
	}

	saveStyle := s.Button
	if v.focusIdx == certFocusSave {
		saveStyle = s.ButtonFocused
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Certification"),
		"",
		field(certFocusDesc, "Description:", v.form.description),
		field(certFocusDue, "Due date:", v.form.dueDate),
		pick(certFocusPriority, "Priority", priorityOptions[v.form.priorityIdx]),
		pick(certFocusAssignee, "Assign to", assignee(v.userIdx)),
		field(certFocusRegion, "Region:", v.form.region),
		field(certFocusBody, "Certifying body:", v.form.body),
		field(certFocusStandards, "Standards:", v.form.standards),
		"",
		field(certFocusTaskDesc, "First task:", v.form.taskDesc),
		field(certFocusTaskDue, "Task due date:", v.form.taskDue),
		pick(certFocusTaskAssignee, "Task assignee", assignee(v.taskUser)),
		"",
		saveStyle.Render(" Save "),
		v.renderNotice(),
		s.TitleMuted.Render("Tab: next · Ctrl+S: save · Esc: cancel"),
	)
	return styles.CenterView(form, v.width, v.height)
}
