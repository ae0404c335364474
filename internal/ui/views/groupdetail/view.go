package groupdetail

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"studyrank/internal/modules/activity/dto"
	"studyrank/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ActivityPort interface {
	Overview(ctx context.Context, groupID string) (dto.OverviewOutput, error)
	Log(ctx context.Context, input dto.LogInput) (dto.SummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// OverviewLoadedMsg delivers members and summary as one unit.
type OverviewLoadedMsg struct {
	Overview dto.OverviewOutput
	Err      error
}

// LoggedMsg replaces the summary only; the membership pane is untouched.
type LoggedMsg struct {
	Summary dto.SummaryOutput
	Err     error
}

// BackMsg bubbles up to the app model, which returns to the groups view.
type BackMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    ActivityPort
	groupID string

	overview dto.OverviewOutput
	loaded   bool
	loadErr  string

	input   textinput.Model
	typing  bool
	logging bool
	logErr  string

	spinner spinner.Model
	width   int
	height  int
}

func New(port ActivityPort, groupID string) Model {
	input := textinput.New()
	input.Placeholder = "what did you study?"
	input.CharLimit = 280

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		groupID: groupID,
		input:   input,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case OverviewLoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			return m, nil
		}
		m.loadErr = ""
		m.overview = msg.Overview
		return m, nil

	case LoggedMsg:
		m.logging = false
		if msg.Err != nil {
			m.logErr = msg.Err.Error()
			return m, nil
		}
		m.logErr = ""
		m.input.SetValue("")
		m.typing = false
		m.input.Blur()
		m.overview.Summary = msg.Summary
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.typing {
			switch msg.String() {
			case "esc":
				m.typing = false
				m.logErr = ""
				m.input.Blur()
				return m, nil
			case "enter":
				if m.logging {
					return m, nil
				}
				m.logging = true
				m.logErr = ""
				return m, m.logCmd(m.input.Value())
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "l":
			m.typing = true
			return m, m.input.Focus()
		case "r":
			m.loaded = false
			m.loadErr = ""
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}
	return m, nil
}

// Typing reports whether the log form owns the keyboard.
func (m Model) Typing() bool { return m.typing }

// GroupID identifies the group this view was opened for.
func (m Model) GroupID() string { return m.groupID }

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading group…")
	}
	if m.loadErr != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Error.Render("could not load group: "+m.loadErr)+"\n\n"+theme.Muted.Render("r: retry  esc: back"))
	}

	leftW := m.width * 6 / 10
	rightW := m.width - leftW

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderRanking(leftW),
		m.renderLogForm(leftW),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderMembers(rightW),
		m.renderFeed(rightW),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Render(left),
		lipgloss.NewStyle().Width(rightW).Render(right),
	)
}

func (m Model) renderRanking(w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Ranking") + "  " +
		theme.Muted.Render(fmt.Sprintf("%d activities total", m.overview.Summary.TotalActivities)) + "\n")

	if len(m.overview.Summary.PerUser) == 0 {
		sb.WriteString(theme.Muted.Render("no activities yet"))
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.Surface1)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch row {
				case 0:
					return theme.Title.Padding(0, 1)
				case 1:
					return theme.Accent.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			}).
			Headers("#", "MEMBER", "ACTIVITIES")
		for i, row := range m.overview.Summary.PerUser {
			t.Row(fmt.Sprintf("%d", i+1), row.UserName, fmt.Sprintf("%d", row.ActivitiesCount))
		}
		sb.WriteString(t.Render())
	}
	return theme.Pane.Width(w - 2).Render(sb.String())
}

func (m Model) renderLogForm(w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Log activity") + "\n")
	sb.WriteString(m.input.View() + "\n")
	switch {
	case m.logging:
		sb.WriteString(theme.Accent.Render("logging…"))
	case m.typing:
		sb.WriteString(theme.Muted.Render("enter: log  esc: cancel"))
	default:
		sb.WriteString(theme.Muted.Render("l: log an activity  r: reload  esc: back"))
	}
	if m.logErr != "" {
		sb.WriteString("\n" + theme.Error.Render(m.logErr))
	}
	style := theme.Pane
	if m.typing {
		style = theme.PaneActive
	}
	return style.Width(w - 2).Render(sb.String())
}

func (m Model) renderMembers(w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Members (%d)", len(m.overview.Members))) + "\n")
	for _, member := range m.overview.Members {
		sb.WriteString(member.Name + " " + theme.Muted.Render(member.Email) + "\n")
	}
	return theme.Pane.Width(w - 2).Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderFeed(w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Recent activity") + "\n")
	if len(m.overview.Summary.Activities) == 0 {
		sb.WriteString(theme.Muted.Render("nothing logged yet"))
	}
	for i, act := range m.overview.Summary.Activities {
		if i >= 12 {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("… and %d more", len(m.overview.Summary.Activities)-i)))
			break
		}
		name := act.UserName
		if name == "" {
			name = act.UserID
		}
		sb.WriteString(theme.Good.Render(name) + " " + act.Description + "\n" +
			theme.Muted.Render(act.CreatedAt.Local().Format("Jan 2 15:04")) + "\n")
	}
	return theme.Pane.Width(w - 2).Render(strings.TrimRight(sb.String(), "\n"))
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background(), m.groupID)
		return OverviewLoadedMsg{Overview: overview, Err: err}
	}
}

func (m Model) logCmd(description string) tea.Cmd {
	return func() tea.Msg {
		summary, err := m.port.Log(context.Background(), dto.LogInput{
			GroupID:     m.groupID,
			Description: description,
		})
		return LoggedMsg{Summary: summary, Err: err}
	}
}
