package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	orchestration "github.com/koscakluka/voiceops-core/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#04B575")).
			Padding(0, 1)

	errorPhaseStyle = phaseStyle.
			Background(lipgloss.Color("#FF5555"))

	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00D7FF"))

	agentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C3C3C")).
			Padding(0, 1).
			MarginRight(1)

	dashboardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)
)

type phaseChangedMsg struct{ phase orchestration.Phase }

type transcriptEntryMsg struct{ entry orchestration.TranscriptEntry }

type transcriptClearedMsg struct{}

type suggestionsMsg struct {
	suggestions []string
	visible     bool
}

type viewChangedMsg struct{ view string }

type dispatchBusyMsg struct{ busy bool }

type sessionErrorMsg struct{ message string }

type model struct {
	orchestrator *orchestration.Orchestrator

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int

	phase              orchestration.Phase
	entries            []orchestration.TranscriptEntry
	suggestions        []string
	suggestionsVisible bool
	dashboardView      string
	dispatchBusy       bool
	lastError          string
}

func initialModel(orchestrator *orchestration.Orchestrator) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	return model{
		orchestrator:  orchestrator,
		spinner:       s,
		phase:         orchestration.PhaseIdle,
		dashboardView: "IDLE",
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.orchestrator.Close()
			return m, tea.Quit
		case " ":
			switch m.phase {
			case orchestration.PhaseIdle:
				m.orchestrator.StartCapture()
			case orchestration.PhaseListening:
				m.orchestrator.StopCapture()
			}
			return m, nil
		case "c":
			m.orchestrator.ClearTranscript()
			return m, nil
		case "1", "2", "3":
			index := int(msg.String()[0] - '1')
			if m.suggestionsVisible && index < len(m.suggestions) {
				m.orchestrator.SendPrompt(m.suggestions[index])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		transcriptHeight := msg.Height - 12
		if transcriptHeight < 3 {
			transcriptHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, transcriptHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = transcriptHeight
		}
		m.refreshTranscript()
		return m, nil

	case phaseChangedMsg:
		m.phase = msg.phase
		if msg.phase != orchestration.PhaseError {
			m.lastError = ""
		}
		return m, nil

	case transcriptEntryMsg:
		m.entries = append(m.entries, msg.entry)
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, nil

	case transcriptClearedMsg:
		m.entries = nil
		m.refreshTranscript()
		return m, nil

	case suggestionsMsg:
		m.suggestions = msg.suggestions
		m.suggestionsVisible = msg.visible
		return m, nil

	case viewChangedMsg:
		m.dashboardView = msg.view
		return m, nil

	case dispatchBusyMsg:
		m.dispatchBusy = msg.busy
		return m, nil

	case sessionErrorMsg:
		m.lastError = msg.message
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) refreshTranscript() {
	if !m.ready {
		return
	}

	width := m.viewport.Width - 2
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	for _, entry := range m.entries {
		label := userStyle.Render("You")
		if entry.Speaker == orchestration.SpeakerAgent {
			label = agentStyle.Render("VoiceOps")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, infoStyle.Render(entry.CapturedAt.Format("15:04:05"))))
		b.WriteString(wordwrap.String(entry.Text, width))
		b.WriteString("\n\n")
	}
	m.viewport.SetContent(b.String())
}

func (m model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("VoiceOps Console"))
	b.WriteString("\n")

	phase := phaseStyle.Render(m.phase.String())
	if m.phase == orchestration.PhaseError {
		phase = errorPhaseStyle.Render(m.phase.String())
	}
	dashboard := "Dashboard: " + m.dashboardView
	if m.dispatchBusy {
		dashboard += " " + m.spinner.View()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, phase, "  ", dashboardStyle.Render(dashboard)))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.suggestionsVisible && len(m.suggestions) > 0 {
		for i, suggestion := range m.suggestions {
			if i >= 3 {
				break
			}
			b.WriteString(chipStyle.Render(fmt.Sprintf("%d %s", i+1, suggestion)))
		}
		b.WriteString("\n")
	}

	if m.lastError != "" {
		b.WriteString(errorPhaseStyle.Render("error") + " " + infoStyle.Render(m.lastError))
		b.WriteString("\n")
	}

	help := "space: talk | 1-3: pick suggestion | c: clear log | q: quit"
	if m.phase == orchestration.PhaseListening {
		help = "space: stop and send | q: quit"
	}
	b.WriteString(infoStyle.Render(help))

	return b.String()
}
