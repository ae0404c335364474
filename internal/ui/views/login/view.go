package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studyrank/internal/modules/session/dto"
	"studyrank/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	Login(ctx context.Context, name, email string) (sessiondto.UserOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoggedInMsg bubbles up to the app model, which records the identity and
// navigates to the groups view.
type LoggedInMsg struct {
	User sessiondto.UserOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldName = iota
	fieldEmail
	fieldCount
)

// Model is the account-creation form. Submitting with an empty field sets a
// validation message without issuing a network call; while a request is in
// flight the submit key is inert but typing stays possible.
type Model struct {
	port       SessionPort
	inputs     [fieldCount]textinput.Model
	focused    int
	submitting bool
	errMsg     string
	width      int
	height     int
}

func New(port SessionPort) Model {
	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 120
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 200

	return Model{port: port, inputs: [fieldCount]textinput.Model{name, email}}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoggedInMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focused = (m.focused + 1) % fieldCount
			var cmds []tea.Cmd
			for i := range m.inputs {
				if i == m.focused {
					cmds = append(cmds, m.inputs[i].Focus())
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, tea.Batch(cmds...)
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	if name == "" || email == "" {
		m.errMsg = "fill in name and e-mail"
		return m, nil
	}
	m.errMsg = ""
	m.submitting = true
	return m, m.loginCmd(name, email)
}

func (m Model) loginCmd(name, email string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.port.Login(context.Background(), name, email)
		return LoggedInMsg{User: user, Err: err}
	}
}

// Typing reports whether global single-letter keys must yield to the form.
func (m Model) Typing() bool { return true }

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Join the study ranking") + "\n")
	sb.WriteString(theme.Muted.Render("Create your user to join groups and log activities.") + "\n\n")
	sb.WriteString(theme.Muted.Render("name ") + "\n" + m.inputs[fieldName].View() + "\n")
	sb.WriteString(theme.Muted.Render("e-mail") + "\n" + m.inputs[fieldEmail].View() + "\n\n")
	if m.submitting {
		sb.WriteString(theme.Accent.Render("creating user…"))
	} else {
		sb.WriteString(theme.Muted.Render("enter: start  tab: next field"))
	}
	if m.errMsg != "" {
		sb.WriteString("\n" + theme.Error.Render(m.errMsg))
	}

	card := theme.PaneActive.Width(48).Render(sb.String())
	if m.width == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
