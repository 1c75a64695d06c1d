// Package tui implements the interactive project menu: browse the project
// list, assign or remove aliases, and pick the default project. Changes are
// written back only on an explicit "save and quit"; Esc abandons them.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andy/togglcli/internal/domain"
	"github.com/andy/togglcli/internal/store"
)

// menuMode represents the current screen mode
type menuMode int

const (
	modeList menuMode = iota
	modeActions
	modeAlias
)

// action is one entry of the per-project action menu
type action struct {
	key   rune
	label string
}

// MenuModel drives the project selection and editing loop.
type MenuModel struct {
	projects  []*domain.Project
	defaultID int64 // 0 = unset
	save      func(*store.Config) error

	mode         menuMode
	cursor       int // list cursor; len(projects) is the save-and-quit row
	selected     int // project index being edited
	actions      []action
	actionCursor int
	aliasInput   textinput.Model
	statusMsg    string
	errMsg       string

	saved bool
	err   error
}

// NewMenu builds the menu over an already merged tracker config.
func NewMenu(cfg *store.Config, fallbackClient string, save func(*store.Config) error) MenuModel {
	projects := make([]*domain.Project, 0, len(cfg.Projects))
	for _, p := range cfg.Projects {
		projects = append(projects, p)
	}
	domain.SortProjects(projects, fallbackClient)

	var defaultID int64
	if cfg.DefaultProjectID != nil {
		defaultID = *cfg.DefaultProjectID
	}

	return MenuModel{
		projects:  projects,
		defaultID: defaultID,
		save:      save,
	}
}

// Saved reports whether the session ended with a save.
func (m MenuModel) Saved() bool { return m.saved }

// Err returns the save error, if any.
func (m MenuModel) Err() error { return m.err }

func (m MenuModel) Init() tea.Cmd {
	return nil
}

// projectRow renders one list row: shortcut, default marker, display string.
func (m MenuModel) projectRow(index int) string {
	row := shortcutLabel(index)
	if m.projects[index].ID == m.defaultID {
		row += "[DEFAULT] "
	}
	return row + m.projects[index].Display()
}

// buildActions assembles the action menu for the selected project.
func (m *MenuModel) buildActions() {
	p := m.projects[m.selected]
	m.actions = []action{{key: 'a', label: "[a] Change Alias"}}
	if p.Alias != "" {
		m.actions = append(m.actions, action{key: 'r', label: "[r] Remove Alias"})
	}
	if p.ID != m.defaultID {
		m.actions = append(m.actions, action{key: 'd', label: "[d] Set as default project"})
	}
	m.actions = append(m.actions, action{key: 'b', label: "[b] Back to project list"})
	m.actionCursor = 0
}

// makeConfig rebuilds the persisted config from the menu state.
func (m MenuModel) makeConfig() *store.Config {
	var defaultID *int64
	if m.defaultID != 0 {
		id := m.defaultID
		defaultID = &id
	}
	return store.NewConfig(m.projects, defaultID)
}

// applyAlias validates and applies a new alias for the selected project,
// returning the resulting status or error message. An alias already used by
// a different project is rejected and both projects stay unchanged.
func (m *MenuModel) applyAlias(value string) {
	value = strings.TrimSpace(value)
	p := m.projects[m.selected]

	if value == "" || value == p.Alias {
		m.statusMsg = "Alias not changed."
		return
	}
	for _, other := range m.projects {
		if other.Alias != "" && other.Alias == value {
			m.errMsg = fmt.Sprintf("Alias %q is already in use by another project. Alias not changed.", value)
			return
		}
	}
	p.Alias = value
	m.statusMsg = fmt.Sprintf("Alias %q set for '%s'.", value, p.Name)
}

// runAction executes one action menu entry.
func (m MenuModel) runAction(key rune) (tea.Model, tea.Cmd) {
	p := m.projects[m.selected]
	switch key {
	case 'a':
		m.aliasInput = textinput.New()
		m.aliasInput.Placeholder = "alias (blank to cancel)"
		m.aliasInput.CharLimit = 40
		m.aliasInput.Width = 30
		m.aliasInput.SetValue(p.Alias)
		m.mode = modeAlias
		return m, m.aliasInput.Focus()
	case 'r':
		p.Alias = ""
		m.statusMsg = fmt.Sprintf("Alias removed for '%s'.", p.Name)
	case 'd':
		m.defaultID = p.ID
		m.statusMsg = fmt.Sprintf("'%s' is now the default project.", p.Name)
	}
	m.mode = modeList
	return m, nil
}

// saveAndQuit persists the config and ends the session.
func (m MenuModel) saveAndQuit() (tea.Model, tea.Cmd) {
	if err := m.save(m.makeConfig()); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.saved = true
	return m, tea.Quit
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAlias:
		return m.updateAlias(keyMsg)
	case modeActions:
		return m.updateActions(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m MenuModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, DefaultKeyMap.Save):
		return m.saveAndQuit()
	case key.Matches(msg, DefaultKeyMap.Back):
		return m, tea.Quit
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.cursor < len(m.projects) {
			m.cursor++
		}
	case key.Matches(msg, DefaultKeyMap.Select):
		if m.cursor == len(m.projects) {
			return m.saveAndQuit()
		}
		m.selected = m.cursor
		m.buildActions()
		m.mode = modeActions
	default:
		if r := msg.String(); len(r) == 1 {
			if idx, ok := indexForShortcut(rune(r[0])); ok && idx < len(m.projects) {
				m.cursor = idx
				m.selected = idx
				m.buildActions()
				m.mode = modeActions
			}
		}
	}
	return m, nil
}

func (m MenuModel) updateActions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, DefaultKeyMap.Back):
		m.mode = modeList
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.actionCursor > 0 {
			m.actionCursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.actionCursor < len(m.actions)-1 {
			m.actionCursor++
		}
	case key.Matches(msg, DefaultKeyMap.Select):
		return m.runAction(m.actions[m.actionCursor].key)
	default:
		if r := msg.String(); len(r) == 1 {
			for _, a := range m.actions {
				if rune(r[0]) == a.key {
					return m.runAction(a.key)
				}
			}
		}
	}
	return m, nil
}

func (m MenuModel) updateAlias(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Back):
		m.statusMsg = "Alias not changed."
		m.mode = modeList
		return m, nil
	case key.Matches(msg, DefaultKeyMap.Select):
		m.statusMsg = ""
		m.errMsg = ""
		m.applyAlias(m.aliasInput.Value())
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.aliasInput, cmd = m.aliasInput.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	switch m.mode {
	case modeAlias:
		return m.viewAlias()
	case modeActions:
		return m.viewActions()
	default:
		return m.viewList()
	}
}

func (m MenuModel) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select a Project") + "\n\n")

	for i := range m.projects {
		row := m.projectRow(i)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	quitRow := "[q] Save and quit"
	if m.cursor == len(m.projects) {
		quitRow = selectedStyle.Render(quitRow)
	}
	b.WriteString("\n" + quitRow + "\n")

	b.WriteString(m.statusLine())
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · shortcut keys jump · q save · esc quit without saving"))
	return b.String()
}

func (m MenuModel) viewActions() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.projectRow(m.selected)) + "\n\n")

	for i, a := range m.actions {
		row := a.label
		if i == m.actionCursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · esc back"))
	return b.String()
}

func (m MenuModel) viewAlias() string {
	p := m.projects[m.selected]
	return fmt.Sprintf("%s\n\nEnter new alias for '%s' (blank to cancel):\n%s\n\n%s",
		titleStyle.Render("Change Alias"),
		p.Display(),
		m.aliasInput.View(),
		helpStyle.Render("enter apply · esc cancel"))
}

func (m MenuModel) statusLine() string {
	switch {
	case m.errMsg != "":
		return "\n" + errorStyle.Render(m.errMsg) + "\n\n"
	case m.statusMsg != "":
		return "\n" + statusStyle.Render(m.statusMsg) + "\n\n"
	default:
		return "\n"
	}
}

// Run starts the menu and reports whether the user saved.
func Run(cfg *store.Config, fallbackClient string, save func(*store.Config) error) (saved bool, err error) {
	p := tea.NewProgram(NewMenu(cfg, fallbackClient, save), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	model := final.(MenuModel)
	if model.Err() != nil {
		return false, model.Err()
	}
	return model.Saved(), nil
}
