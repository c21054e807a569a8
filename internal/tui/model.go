package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Bot is the TUI-facing subset of the resolution pipeline.
type Bot interface {
	Resolve(input string) string
}

// exitSentinel terminates the conversation loop normally.
const exitSentinel = "exit"

// Model is the Bubble Tea model for the chat window.
type Model struct {
	bot        Bot
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	status     string
	ready      bool
	quitting   bool
}

// New creates a chat model with an opening line from the bot.
func New(bot Bot, greeting string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about courses, admissions, scholarships... (\"exit\" to quit)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{
		bot:      bot,
		input:    ti,
		viewport: vp,
		status:   "Connected. Type a question and press Enter.",
	}
	if greeting != "" {
		m.transcript = append(m.transcript, botStyle.Render("Bot: ")+greeting)
	}
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and advances the conversation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header + status + input frame + spacer
		vh := msg.Height - reserved - th
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-2)
		m.viewport.Height = vh
		m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			m.quitting = true
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, userStyle.Render("You: ")+line)
			if strings.EqualFold(line, exitSentinel) {
				m.transcript = append(m.transcript, botStyle.Render("Bot: ")+"Goodbye!")
				m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
				m.viewport.GotoBottom()
				m.quitting = true
				return m, tea.Quit
			}
			response := m.bot.Resolve(line)
			m.transcript = append(m.transcript, botStyle.Render("Bot: ")+response)
			m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
			m.viewport.GotoBottom()
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("University Chatbot")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	botStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
