package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/rolodex/internal/contact"
)

// CursorMarker is the prefix shown on the selected row.
const CursorMarker = "▸ "

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the status line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the contact manager.
type Model struct {
	store   *contact.Store
	logger  *zap.Logger
	sortKey contact.SortKey

	query  string            // Active search query; empty shows every contact.
	rows   []contact.Contact // Display order derived from store, query and sortKey.
	cursor int

	mode    Mode
	focus   Focus
	form    formState
	search  textinput.Model
	confirm confirmState
	status  Status

	width    int
	height   int
	viewport viewport.Model
	help     help.Model
}

// ModelOption configures optional Model dependencies.
type ModelOption func(*Model)

// WithStore sets the contact store. Defaults to the sample store.
func WithStore(s *contact.Store) ModelOption {
	return func(m *Model) { m.store = s }
}

// WithSortKey sets the initial sort key.
func WithSortKey(k contact.SortKey) ModelOption {
	return func(m *Model) { m.sortKey = k }
}

// WithLogger sets the logger used to record user actions.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a Model in browse mode with left-pane focus.
func NewModel(opts ...ModelOption) Model {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "name, phone or email"

	m := Model{
		mode:     ModeBrowse,
		focus:    PaneLeft,
		search:   search,
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.store == nil {
		m.store = contact.NewSampleStore()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.refresh(contact.ID{})
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		m.viewport.Width = max(rightWidth-borderChrome, 0)
		m.viewport.Height = m.contentHeight()
		m.syncDetail()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeForm:
			return m.updateForm(msg)
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	// Non-key messages (cursor blink) go to the active text input.
	var cmd tea.Cmd
	switch m.mode {
	case ModeForm:
		m.form, cmd = m.form.Update(msg)
	case ModeSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// updateBrowse handles keys in browse mode.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := BrowseKeyMap()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil

	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
		if m.focus == PaneRight {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if len(m.rows) > 0 {
			if key.Matches(msg, keys.Up) {
				m.cursor = (m.cursor - 1 + len(m.rows)) % len(m.rows)
			} else {
				m.cursor = (m.cursor + 1) % len(m.rows)
			}
			m.syncDetail()
		}
		return m, nil

	case key.Matches(msg, keys.Add):
		var cmd tea.Cmd
		m.form, cmd = newAddForm()
		m.mode = ModeForm
		return m, cmd

	case key.Matches(msg, keys.Edit):
		c, ok := m.Selected()
		if !ok {
			m.setStatus(StatusWarning, msgSelectToEdit)
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = newEditForm(c)
		m.mode = ModeForm
		return m, cmd

	case key.Matches(msg, keys.Delete):
		c, ok := m.Selected()
		if !ok {
			m.setStatus(StatusWarning, msgSelectToDelete)
			return m, nil
		}
		m.confirm = confirmState{target: c}
		m.mode = ModeConfirm
		return m, nil

	case key.Matches(msg, keys.Search):
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		m.mode = ModeSearch
		return m, m.search.Focus()

	case key.Matches(msg, keys.Clear):
		if m.query != "" {
			m.query = ""
			m.refresh(m.selectedID())
			m.setStatus(StatusNone, "")
		}
		return m, nil

	case key.Matches(msg, keys.Sort):
		m.sortKey = m.sortKey.Next()
		m.logger.Debug("sort changed", zap.Stringer("key", m.sortKey))
		m.refresh(m.selectedID())
		return m, nil
	}

	return m, nil
}

// updateForm handles keys while the add/edit form is open.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := FormKeyMap()
	switch {
	case key.Matches(msg, keys.Cancel):
		m.mode = ModeBrowse
		return m, nil
	case key.Matches(msg, keys.Submit):
		return m.submitForm(), nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// submitForm applies the form to the store. Validation failures keep the
// form open with the message; a vanished edit target closes it.
func (m Model) submitForm() Model {
	name, phone, email := m.form.values()

	if !m.form.isEdit() {
		c, err := m.store.Add(name, phone, email)
		if err != nil {
			m.logger.Info("add rejected", zap.Error(err))
			m.form.err = err.Error()
			return m
		}
		m.logger.Debug("contact added", zap.Stringer("id", c.ID), zap.String("name", c.Name))
		m.mode = ModeBrowse
		m.query = ""
		m.refresh(c.ID)
		m.setStatus(StatusSuccess, msgAdded)
		return m
	}

	c, err := m.store.Update(m.form.editing, name, phone, email)
	switch {
	case errors.Is(err, contact.ErrNotFound):
		m.logger.Info("edit target missing", zap.Error(err))
		m.mode = ModeBrowse
		m.refresh(m.selectedID())
		m.setStatus(StatusError, msgEditNotFound)
	case err != nil:
		m.logger.Info("update rejected", zap.Error(err))
		m.form.err = err.Error()
	default:
		m.logger.Debug("contact updated", zap.Stringer("id", c.ID), zap.String("name", c.Name))
		m.mode = ModeBrowse
		m.query = ""
		m.refresh(c.ID)
		m.setStatus(StatusSuccess, msgUpdated)
	}
	return m
}

// updateSearch handles keys while the search prompt is open.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := SearchKeyMap()
	switch {
	case key.Matches(msg, keys.Cancel):
		m.search.Blur()
		m.mode = ModeBrowse
		return m, nil

	case key.Matches(msg, keys.Accept):
		m.search.Blur()
		m.mode = ModeBrowse
		m.query = strings.TrimSpace(m.search.Value())
		m.refresh(m.selectedID())
		m.logger.Debug("search applied", zap.String("query", m.query), zap.Int("matches", len(m.rows)))
		if m.query != "" && len(m.rows) == 0 {
			m.setStatus(StatusInfo, fmt.Sprintf(msgNoMatchFormat, strings.ToLower(m.query)))
		} else {
			m.setStatus(StatusNone, "")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// updateConfirm handles keys while a deletion awaits confirmation.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := ConfirmKeyMap()
	switch {
	case key.Matches(msg, keys.Cancel):
		m.mode = ModeBrowse
		return m, nil

	case key.Matches(msg, keys.Accept):
		m.mode = ModeBrowse
		target := m.confirm.target
		if err := m.store.Remove(target.ID); err != nil {
			m.logger.Info("delete target missing", zap.Error(err))
			m.setStatus(StatusError, msgDeleteNotFound)
			return m, nil
		}
		m.logger.Debug("contact deleted", zap.Stringer("id", target.ID), zap.String("name", target.Name))
		m.query = ""
		m.refresh(contact.ID{})
		m.setStatus(StatusSuccess, msgDeleted)
		return m, nil
	}
	return m, nil
}

// refresh rebuilds the display rows from the store and keeps the cursor on
// keep when it is still visible.
func (m *Model) refresh(keep contact.ID) {
	m.rows = contact.SortContacts(m.store.Search(m.query), m.sortKey)
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
	for i, c := range m.rows {
		if c.ID == keep {
			m.cursor = i
			break
		}
	}
	m.syncDetail()
}

// syncDetail renders the selected contact into the detail viewport.
func (m *Model) syncDetail() {
	m.viewport.SetContent(m.viewDetail())
	m.viewport.GotoTop()
}

func (m *Model) setStatus(kind StatusKind, text string) {
	m.status = Status{Kind: kind, Text: text}
}

// Selected returns the contact under the cursor.
func (m Model) Selected() (contact.Contact, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return contact.Contact{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) selectedID() contact.ID {
	c, _ := m.Selected()
	return c.ID
}

// Rows returns the contacts in display order.
func (m Model) Rows() []contact.Contact {
	return m.rows
}

// Mode returns the current view mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Status returns the current status line.
func (m Model) Status() Status {
	return m.status
}

// SortKey returns the current sort key.
func (m Model) SortKey() contact.SortKey {
	return m.sortKey
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - statusBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with status line and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	leftStyle, rightStyle := FocusedBorder(), UnfocusedBorder()
	if m.mode != ModeBrowse || m.focus == PaneRight {
		leftStyle, rightStyle = UnfocusedBorder(), FocusedBorder()
	}
	leftStyle = leftStyle.Width(leftWidth - borderChrome).Height(contentHeight)
	rightStyle = rightStyle.Width(rightWidth - borderChrome).Height(contentHeight)

	leftPane := leftStyle.Render(m.viewList())
	rightPane := rightStyle.Render(m.viewRight())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	statusLine := StatusStyle(m.status.Kind).Render(m.status.Text)
	helpView := m.help.View(HelpBindings(m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, panes, statusLine, helpView)
}

// viewList renders the contact list pane.
func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleText.Render(fmt.Sprintf("Contacts (by %s)", m.sortKey)))
	if m.query != "" {
		b.WriteString(mutedText.Render(fmt.Sprintf("  /%s: %d", m.query, len(m.rows))))
	}
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedText.Render(msgEmptyList))
		return b.String()
	}
	for i, c := range m.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == m.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// viewRight renders the right pane content based on mode.
func (m Model) viewRight() string {
	switch m.mode {
	case ModeForm:
		return m.form.View()
	case ModeSearch:
		return titleText.Render("Search & Sort") + "\n\n" + m.search.View() +
			"\n\n" + mutedText.Render("Empty query shows every contact.")
	case ModeConfirm:
		return m.confirm.View()
	default:
		return m.viewport.View()
	}
}

// viewDetail renders the selected contact for the detail viewport.
func (m Model) viewDetail() string {
	c, ok := m.Selected()
	if !ok {
		return mutedText.Render("Select a contact")
	}
	var b strings.Builder
	b.WriteString(titleText.Render(c.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelText.Render("Phone"), c.Phone)
	email := c.Email
	if email == "" {
		email = mutedText.Render("(none)")
	}
	fmt.Fprintf(&b, "%s %s\n", labelText.Render("Email"), email)
	fmt.Fprintf(&b, "\n%s", mutedText.Render(c.ID.String()))
	return b.String()
}
