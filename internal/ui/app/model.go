package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydto "studyrank/internal/modules/activity/dto"
	groupsdto "studyrank/internal/modules/groups/dto"
	sessiondto "studyrank/internal/modules/session/dto"
	apperrors "studyrank/internal/platform/errors"
	"studyrank/internal/ui/components"
	"studyrank/internal/ui/theme"
	groupdetailview "studyrank/internal/ui/views/groupdetail"
	groupsview "studyrank/internal/ui/views/groups"
	loginview "studyrank/internal/ui/views/login"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.UserOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (sessiondto.UserOutput, error)
}

type groupsPort interface {
	List(ctx context.Context) ([]groupsdto.GroupOutput, error)
	Create(ctx context.Context, input groupsdto.CreateInput) (groupsdto.GroupOutput, error)
	Join(ctx context.Context, groupID string) ([]groupsdto.GroupOutput, error)
}

type activityPort interface {
	Overview(ctx context.Context, groupID string) (activitydto.OverviewOutput, error)
	Log(ctx context.Context, input activitydto.LogInput) (activitydto.SummaryOutput, error)
}

// ─── routes ──────────────────────────────────────────────────────────────────

type route int

const (
	routeLogin route = iota
	routeGroups
	routeGroupDetail
)

var routeLabels = map[route]string{
	routeLogin:       "Login",
	routeGroups:      "Groups",
	routeGroupDetail: "Group",
}

// navigateMsg is the single way views change; every transition passes through
// the session guard in navigate.
type navigateMsg struct {
	to      route
	groupID string
}

func navigateTo(to route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

// ─── async messages ───────────────────────────────────────────────────────────

type currentLoadedMsg struct {
	user sessiondto.UserOutput
	err  error
}

type loggedOutMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Help    key.Binding
	Palette key.Binding
	Back    key.Binding
	SignOut key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		SignOut: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sign out")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Help, k.Palette},
		{k.Back, k.SignOut, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns route state, the session
// identity shown in the nav bar, the help overlay, and the command palette.
// All business logic is delegated to port interfaces; all rendering is
// delegated to sub-views.
type Model struct {
	session  sessionPort
	groups   groupsPort
	activity activityPort

	current route
	user    sessiondto.UserOutput
	hasUser bool

	loginView  loginview.Model
	groupsView groupsview.Model
	detailView groupdetailview.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(session sessionPort, groups groupsPort, activity activityPort) Model {
	return Model{
		session:    session,
		groups:     groups,
		activity:   activity,
		current:    routeLogin,
		loginView:  loginview.New(sessionPortBridge{p: session}),
		groupsView: groupsview.New(groupsPortBridge{p: groups}),
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loginView.Init(), m.loadCurrentCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case navigateMsg:
		return m.navigate(msg)

	case currentLoadedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNoSession) {
				m.status = "session check: " + msg.err.Error()
			}
			return m, nil
		}
		m.user = msg.user
		m.hasUser = true
		return m.navigate(navigateMsg{to: routeGroups})

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "sign out failed: " + msg.err.Error()
			return m, nil
		}
		m.user = sessiondto.UserOutput{}
		m.hasUser = false
		m.status = "signed out"
		return m.navigate(navigateMsg{to: routeLogin})

	// LoggedInMsg bubbles up from the login view's submit; the view still
	// needs it to clear its in-flight state before we route away.
	case loginview.LoggedInMsg:
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			m.user = msg.User
			m.hasUser = true
			m.status = "welcome, " + msg.User.Name
			cmds = append(cmds, navigateTo(routeGroups))
		}
		return m, tea.Batch(cmds...)

	case groupsview.OpenGroupMsg:
		return m.navigate(navigateMsg{to: routeGroupDetail, groupID: msg.GroupID})

	case groupdetailview.BackMsg:
		return m.navigate(navigateMsg{to: routeGroups})

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Yield to the active view when a text field or filter owns the
		// keyboard.
		if m.activeTyping() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			return m, m.palette.Open()
		case "s":
			if m.hasUser {
				return m, m.logoutCmd()
			}
		}
	}

	// Propagate the message to the active route's view.
	var routeCmd tea.Cmd
	switch m.current {
	case routeLogin:
		m.loginView, routeCmd = m.loginView.Update(msg)
	case routeGroups:
		m.groupsView, routeCmd = m.groupsView.Update(msg)
	case routeGroupDetail:
		m.detailView, routeCmd = m.detailView.Update(msg)
	}
	cmds = append(cmds, routeCmd)

	return m, tea.Batch(cmds...)
}

// navigate is the session guard: any route except the login form requires a
// stored identity, otherwise the transition lands on login instead.
func (m Model) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	if msg.to != routeLogin && !m.hasUser {
		m.current = routeLogin
		m.status = "sign in first"
		return m, nil
	}

	m.current = msg.to
	switch msg.to {
	case routeLogin:
		m.loginView = loginview.New(sessionPortBridge{p: m.session})
		return m, tea.Batch(m.loginView.Init(), m.sizeCmd())
	case routeGroups:
		m.groupsView = groupsview.New(groupsPortBridge{p: m.groups})
		return m, tea.Batch(m.groupsView.Init(), m.sizeCmd())
	case routeGroupDetail:
		m.detailView = groupdetailview.New(activityPortBridge{p: m.activity}, msg.groupID)
		return m, tea.Batch(m.detailView.Init(), m.sizeCmd())
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	navBar := m.renderNavBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(navBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, navBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.current {
	case routeLogin:
		return m.loginView.View()
	case routeGroups:
		return m.groupsView.View()
	case routeGroupDetail:
		return m.detailView.View()
	}
	return ""
}

func (m Model) renderNavBar() string {
	label := theme.Accent.Render(" " + routeLabels[m.current] + " ")
	left := "studyrank  " + label
	var right string
	if m.hasUser {
		right = theme.Muted.Render("logged in as ") + theme.Good.Render(m.user.Name)
	} else {
		right = theme.Muted.Render("not signed in")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right + " "
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	hints := "?:help  :::palette  q:quit"
	if m.hasUser {
		hints = "?:help  :::palette  s:sign out  q:quit"
	}
	right := theme.Muted.Render(hints)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────
// The command set here must stay in sync with the hints in
// components/palette.go.

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "group:create":
		if len(parts) < 3 {
			m.status = "usage: group:create <goal-days> <name...>"
			return m, nil
		}
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
		return m, m.paletteCreateCmd(name, parts[1])

	case "group:join":
		if len(parts) != 2 {
			m.status = "usage: group:join <group-id>"
			return m, nil
		}
		return m, m.paletteJoinCmd(parts[1])

	case "activity:log":
		if m.current != routeGroupDetail {
			m.status = "open a group first"
			return m, nil
		}
		description := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.paletteLogCmd(m.detailView.GroupID(), description)

	case "nav:groups":
		return m, navigateTo(routeGroups)

	case "session:logout":
		return m, m.logoutCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// activeTyping reports whether the current view has a focused text input or
// open filter, in which case global key bindings must yield.
func (m Model) activeTyping() bool {
	switch m.current {
	case routeLogin:
		return m.loginView.Typing()
	case routeGroups:
		return m.groupsView.Typing()
	case routeGroupDetail:
		return m.detailView.Typing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.loginView, _ = m.loginView.Update(sz)
	m.groupsView, _ = m.groupsView.Update(sz)
	m.detailView, _ = m.detailView.Update(sz)
}

// sizeCmd re-delivers the window size to a freshly constructed view.
func (m Model) sizeCmd() tea.Cmd {
	if m.width == 0 {
		return nil
	}
	w, h := m.width, m.height-3
	return func() tea.Msg { return tea.WindowSizeMsg{Width: w, Height: h} }
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCurrentCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.Current(context.Background())
		return currentLoadedMsg{user: user, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.session.Logout(context.Background())}
	}
}

func (m Model) paletteCreateCmd(name, goalDays string) tea.Cmd {
	return func() tea.Msg {
		group, err := m.groups.Create(context.Background(), groupsdto.CreateInput{
			Name:     name,
			GoalDays: goalDays,
		})
		return groupsview.CreatedMsg{Group: group, Err: err}
	}
}

func (m Model) paletteJoinCmd(groupID string) tea.Cmd {
	return func() tea.Msg {
		list, err := m.groups.Join(context.Background(), groupID)
		return groupsview.JoinedMsg{Groups: list, Err: err}
	}
}

func (m Model) paletteLogCmd(groupID, description string) tea.Cmd {
	return func() tea.Msg {
		summary, err := m.activity.Log(context.Background(), activitydto.LogInput{
			GroupID:     groupID,
			Description: description,
		})
		return groupdetailview.LoggedMsg{Summary: summary, Err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed
// by a specific sub-view.

type sessionPortBridge struct{ p sessionPort }

func (b sessionPortBridge) Login(ctx context.Context, name, email string) (sessiondto.UserOutput, error) {
	return b.p.Login(ctx, sessiondto.LoginInput{Name: name, Email: email})
}

type groupsPortBridge struct{ p groupsPort }

func (b groupsPortBridge) List(ctx context.Context) ([]groupsdto.GroupOutput, error) {
	return b.p.List(ctx)
}
func (b groupsPortBridge) Create(ctx context.Context, name, goalDays string) (groupsdto.GroupOutput, error) {
	return b.p.Create(ctx, groupsdto.CreateInput{Name: name, GoalDays: goalDays})
}
func (b groupsPortBridge) Join(ctx context.Context, groupID string) ([]groupsdto.GroupOutput, error) {
	return b.p.Join(ctx, groupID)
}

type activityPortBridge struct{ p activityPort }

func (b activityPortBridge) Overview(ctx context.Context, groupID string) (activitydto.OverviewOutput, error) {
	return b.p.Overview(ctx, groupID)
}
func (b activityPortBridge) Log(ctx context.Context, input activitydto.LogInput) (activitydto.SummaryOutput, error) {
	return b.p.Log(ctx, input)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
