package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	groupsdto "studyrank/internal/modules/groups/dto"
	"studyrank/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GroupsPort interface {
	List(ctx context.Context) ([]groupsdto.GroupOutput, error)
	Create(ctx context.Context, name, goalDays string) (groupsdto.GroupOutput, error)
	Join(ctx context.Context, groupID string) ([]groupsdto.GroupOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Groups []groupsdto.GroupOutput
	Err    error
}

// CreatedMsg appends the created group locally; the list is not refetched.
type CreatedMsg struct {
	Group groupsdto.GroupOutput
	Err   error
}

// JoinedMsg carries the refetched full list after a successful join.
type JoinedMsg struct {
	Groups []groupsdto.GroupOutput
	Err    error
}

// OpenGroupMsg bubbles up to the app model, which navigates to the detail
// view for the group.
type OpenGroupMsg struct{ GroupID string }

// ─── list item ───────────────────────────────────────────────────────────────

type groupItem struct {
	group groupsdto.GroupOutput
}

func (i groupItem) Title() string { return i.group.Name }
func (i groupItem) Description() string {
	return fmt.Sprintf("goal: %d days  ·  id: %s", i.group.GoalDays, i.group.ID)
}
func (i groupItem) FilterValue() string { return i.group.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeBrowse mode = iota
	modeCreate
	modeJoin
)

const (
	createFieldName = iota
	createFieldGoal
	createFieldCount
)

// Model shows the session user's groups with two independent sub-forms.
// Each sub-form disables its own submit while its request is in flight;
// failures stay inline and editable.
type Model struct {
	port GroupsPort

	list    list.Model
	spinner spinner.Model
	loading bool
	listErr string

	mode          mode
	createInputs  [createFieldCount]textinput.Model
	createFocused int
	creating      bool
	createErr     string

	joinInput textinput.Model
	joining   bool
	joinErr   string

	width  int
	height int
}

func New(port GroupsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Your groups"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	name := textinput.New()
	name.Placeholder = "e.g. 21-day study challenge"
	name.CharLimit = 120

	goal := textinput.New()
	goal.Placeholder = "21"
	goal.SetValue("21")
	goal.CharLimit = 4

	join := textinput.New()
	join.Placeholder = "paste the group id"
	join.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:         port,
		list:         l,
		spinner:      sp,
		loading:      true,
		createInputs: [createFieldCount]textinput.Model{name, goal},
		joinInput:    join,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width*6/10, m.height-2)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.listErr = msg.Err.Error()
			return m, nil
		}
		m.listErr = ""
		cmds = append(cmds, m.list.SetItems(toItems(msg.Groups)))

	case CreatedMsg:
		m.creating = false
		if msg.Err != nil {
			m.createErr = msg.Err.Error()
			return m, nil
		}
		m.createErr = ""
		m.createInputs[createFieldName].SetValue("")
		m.createInputs[createFieldGoal].SetValue("21")
		m.mode = modeBrowse
		cmds = append(cmds, m.list.InsertItem(len(m.list.Items()), groupItem{group: msg.Group}))

	case JoinedMsg:
		m.joining = false
		if msg.Err != nil {
			m.joinErr = msg.Err.Error()
			return m, nil
		}
		m.joinErr = ""
		m.joinInput.SetValue("")
		m.mode = modeBrowse
		cmds = append(cmds, m.list.SetItems(toItems(msg.Groups)))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeCreate:
			return m.updateCreate(msg)
		case modeJoin:
			return m.updateJoin(msg)
		}
	}

	if !m.loading && m.mode == modeBrowse {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "c":
		m.mode = modeCreate
		m.createFocused = createFieldName
		m.createInputs[createFieldGoal].Blur()
		return m, m.createInputs[createFieldName].Focus()
	case "j":
		m.mode = modeJoin
		return m, m.joinInput.Focus()
	case "r":
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
	case "enter":
		if item, ok := m.list.SelectedItem().(groupItem); ok {
			id := item.group.ID
			return m, func() tea.Msg { return OpenGroupMsg{GroupID: id} }
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateCreate(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.createErr = ""
		return m, nil
	case "tab", "shift+tab":
		m.createInputs[m.createFocused].Blur()
		m.createFocused = (m.createFocused + 1) % createFieldCount
		return m, m.createInputs[m.createFocused].Focus()
	case "enter":
		if m.creating {
			return m, nil
		}
		m.creating = true
		m.createErr = ""
		name := m.createInputs[createFieldName].Value()
		goal := m.createInputs[createFieldGoal].Value()
		return m, m.createCmd(name, goal)
	}
	var cmd tea.Cmd
	m.createInputs[m.createFocused], cmd = m.createInputs[m.createFocused].Update(msg)
	return m, cmd
}

func (m Model) updateJoin(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.joinErr = ""
		return m, nil
	case "enter":
		if m.joining {
			return m, nil
		}
		m.joining = true
		m.joinErr = ""
		return m, m.joinCmd(m.joinInput.Value())
	}
	var cmd tea.Cmd
	m.joinInput, cmd = m.joinInput.Update(msg)
	return m, cmd
}

// Typing reports whether global single-letter keys must yield to a form or
// the list filter.
func (m Model) Typing() bool {
	return m.mode != modeBrowse || m.list.FilterState() == list.Filtering
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading groups…")
	}

	listW := m.width * 6 / 10
	sideW := m.width - listW

	var listPane string
	if m.listErr != "" {
		listPane = lipgloss.NewStyle().Width(listW).Height(m.height).
			Render(theme.Error.Render("could not load groups: "+m.listErr) + "\n\n" + theme.Muted.Render("r: retry"))
	} else {
		listPane = lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	}

	sidePane := lipgloss.NewStyle().Width(sideW).Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.renderCreate(sideW), m.renderJoin(sideW)))

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, sidePane)
}

func (m Model) renderCreate(w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Create group") + "\n")
	sb.WriteString(theme.Muted.Render("name") + "\n" + m.createInputs[createFieldName].View() + "\n")
	sb.WriteString(theme.Muted.Render("goal (days)") + "\n" + m.createInputs[createFieldGoal].View() + "\n")
	switch {
	case m.creating:
		sb.WriteString(theme.Accent.Render("creating…"))
	case m.mode == modeCreate:
		sb.WriteString(theme.Muted.Render("enter: create  esc: cancel"))
	default:
		sb.WriteString(theme.Muted.Render("c: fill in"))
	}
	if m.createErr != "" {
		sb.WriteString("\n" + theme.Error.Render(m.createErr))
	}
	style := theme.Pane
	if m.mode == modeCreate {
		style = theme.PaneActive
	}
	return style.Width(w - 2).Render(sb.String())
}

func (m Model) renderJoin(w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Join a group") + "\n")
	sb.WriteString(theme.Muted.Render("group id") + "\n" + m.joinInput.View() + "\n")
	switch {
	case m.joining:
		sb.WriteString(theme.Accent.Render("joining…"))
	case m.mode == modeJoin:
		sb.WriteString(theme.Muted.Render("enter: join  esc: cancel"))
	default:
		sb.WriteString(theme.Muted.Render("j: fill in"))
	}
	if m.joinErr != "" {
		sb.WriteString("\n" + theme.Error.Render(m.joinErr))
	}
	style := theme.Pane
	if m.mode == modeJoin {
		style = theme.PaneActive
	}
	return style.Width(w - 2).Render(sb.String())
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		groups, err := m.port.List(context.Background())
		return LoadedMsg{Groups: groups, Err: err}
	}
}

func (m Model) createCmd(name, goalDays string) tea.Cmd {
	return func() tea.Msg {
		group, err := m.port.Create(context.Background(), name, goalDays)
		return CreatedMsg{Group: group, Err: err}
	}
}

func (m Model) joinCmd(groupID string) tea.Cmd {
	return func() tea.Msg {
		groups, err := m.port.Join(context.Background(), groupID)
		return JoinedMsg{Groups: groups, Err: err}
	}
}

func toItems(groups []groupsdto.GroupOutput) []list.Item {
	items := make([]list.Item, len(groups))
	for i, g := range groups {
		items[i] = groupItem{group: g}
	}
	return items
}
