// Package ui wires the views into the tabbed application shell.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"certdash/internal/store"
	"certdash/internal/ui/styles"
	"certdash/internal/ui/views"
)

// View is a tab in the shell. InputActive lets the shell keep its
// global keys out of the way while a view is capturing text.
type View interface {
	tea.Model
	InputActive() bool
}

type tab int

const (
	tabDashboard tab = iota
	tabCertifications
	tabCalendar
	tabAssign
	tabUpload
	tabChat
	tabCount
)

var tabTitles = [tabCount]string{
	"Dashboard",
	"Certifications",
	"Calendar",
	"Assign",
	"Upload",
	"Assistant",
}

// App is the root bubbletea model
type App struct {
	store  *store.Store
	logger *zap.Logger
	styles *styles.Styles

	active tab
	views  [tabCount]View

	lastErr error

	width  int
	height int
}

// NewApp creates the application shell
func NewApp(st *store.Store, logger *zap.Logger) *App {
	app := &App{
		store:  st,
		logger: logger,
		styles: styles.NewStyles(),
	}
	app.views[tabDashboard] = views.NewDashboardView(st)
	app.views[tabCertifications] = views.NewCertListView(st, "")
	app.views[tabCalendar] = views.NewCalendarView(st)
	app.views[tabAssign] = views.NewAssignView(st)
	app.views[tabUpload] = views.NewUploadView(st)
	app.views[tabChat] = views.NewChatView(st)
	return app
}

// Init starts every view's initial load
func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, tabCount)
	for _, v := range a.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Views get the space below the tab bar and above the status bar
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		var cmds []tea.Cmd
		for i, v := range a.views {
			model, cmd := v.Update(inner)
			a.views[i] = model.(View)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case error:
		a.lastErr = msg
		a.logger.Error("view load failed", zap.Error(msg))
		return a, nil

	case tea.KeyMsg:
		if handled, model, cmd := a.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	model, cmd := a.views[a.active].Update(msg)
	a.views[a.active] = model.(View)
	return a, cmd
}

// handleGlobalKey handles quit and tab switching. Everything except
// ctrl+c defers to a view that is capturing text input.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, a, tea.Quit
	}
	if a.views[a.active].InputActive() {
		return false, a, nil
	}

	switch msg.String() {
	case "q":
		return true, a, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		next := tab(msg.String()[0] - '1')
		return true, a, a.switchTo(next)
	case "tab":
		return true, a, a.switchTo((a.active + 1) % tabCount)
	case "shift+tab":
		return true, a, a.switchTo((a.active + tabCount - 1) % tabCount)
	}
	return false, a, nil
}

// switchTo activates a tab and reloads its data
func (a *App) switchTo(next tab) tea.Cmd {
	if next == a.active {
		return nil
	}
	a.active = next
	a.lastErr = nil
	return a.views[next].Init()
}

// View renders the shell
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(a.views[a.active].View())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a *App) renderTabs() string {
	s := a.styles

	rendered := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if tab(i) == a.active {
			rendered = append(rendered, s.TabActive.Render(label))
		} else {
			rendered = append(rendered, s.TabInactive.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
	return styles.CenterView(bar, a.width, 1)
}

func (a *App) renderStatusBar() string {
	s := a.styles
	if a.lastErr != nil {
		return s.StatusBar.Foreground(styles.Current.Error).
			Render("Error: " + a.lastErr.Error())
	}
	return s.StatusBar.Render("1-6: switch view · tab: next view · q: quit")
}
