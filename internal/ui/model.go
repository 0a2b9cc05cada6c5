// Package ui is the terminal front end. It owns the screen and keyboard and
// answers the engine's prompts; the engine itself never imports this
// package.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schafkopf-go/sheepshead/internal/game/card"
	"github.com/schafkopf-go/sheepshead/internal/game/session"
)

const logLimit = 12

// Model drives the whole local game screen.
type Model struct {
	game  *session.Game
	input textinput.Model

	// prompt is the outstanding engine question, nil between turns.
	prompt  tea.Msg
	errText string

	trick    []card.Card
	logLines []string

	width  int
	height int

	done      bool
	engineErr error
	winners   []string
}

func NewModel(g *session.Game) *Model {
	input := textinput.New()
	input.CharLimit = 32
	input.Width = 30

	return &Model{
		game:  g,
		input: input,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case EventMsg:
		m.applyEvent(msg.Event)
		return m, nil

	case TakeBlindPrompt:
		m.openPrompt(msg, "y / n")
		return m, nil
	case PlayCardPrompt:
		m.openPrompt(msg, "e.g. QC, 10D, AH")
		return m, nil
	case BuryPrompt:
		m.openPrompt(msg, "cards to bury, e.g. AH 10S")
		return m, nil

	case EngineDone:
		m.done = true
		m.engineErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "q":
			if m.done {
				return m, tea.Quit
			}
		case "enter":
			if m.prompt != nil {
				m.submit()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyEvent(ev session.Event) {
	switch e := ev.(type) {
	case session.HandStarted:
		m.trick = nil
	case session.CardPlayed:
		m.trick = append(m.trick, e.Card)
	case session.TrickWon:
		m.trick = nil
	case session.GameOver:
		m.winners = e.Winners
	}
	if line := eventLine(ev); line != "" {
		m.logLines = append(m.logLines, line)
		if len(m.logLines) > logLimit {
			m.logLines = m.logLines[len(m.logLines)-logLimit:]
		}
	}
}

func (m *Model) openPrompt(prompt tea.Msg, placeholder string) {
	m.prompt = prompt
	m.errText = ""
	m.input.Placeholder = placeholder
	m.input.Reset()
	m.input.Focus()
}

// submit parses the typed answer for the outstanding prompt and unblocks
// the engine. Parse failures stay on screen; the prompt remains open.
func (m *Model) submit() {
	value := strings.TrimSpace(m.input.Value())

	switch p := m.prompt.(type) {
	case TakeBlindPrompt:
		switch strings.ToLower(value) {
		case "y", "yes":
			p.Resp <- true
		case "n", "no":
			p.Resp <- false
		default:
			m.errText = "answer y or n"
			return
		}

	case PlayCardPrompt:
		c, err := card.FindInHand(p.Hand, value)
		if err != nil {
			m.errText = err.Error()
			return
		}
		p.Resp <- c

	case BuryPrompt:
		combined := make([]card.Card, 0, len(p.Hand)+len(p.Blind))
		combined = append(combined, p.Hand...)
		combined = append(combined, p.Blind...)
		cards, err := card.FindAllInHand(combined, value)
		if err != nil {
			m.errText = err.Error()
			return
		}
		if len(cards) != len(p.Blind) {
			m.errText = fmt.Sprintf("bury exactly %d cards", len(p.Blind))
			return
		}
		p.Resp <- cards
	}

	m.prompt = nil
	m.errText = ""
	m.input.Blur()
}

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle("🐑 Sheepshead"))
	sb.WriteString("\n\n")
	sb.WriteString(RenderScoreboard(m.game))
	sb.WriteString("\n\n")

	sb.WriteString("Table: ")
	sb.WriteString(RenderTrick(m.trick))
	sb.WriteString("\n\n")

	for _, line := range m.visibleLog() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.prompt != nil {
		sb.WriteString(m.promptView())
	}

	if m.done {
		sb.WriteString("\n")
		if m.engineErr != nil {
			sb.WriteString(ErrorStyle.Render(fmt.Sprintf("game aborted: %v", m.engineErr)))
		} else if len(m.winners) > 0 {
			sb.WriteString(TitleStyle(fmt.Sprintf("🏆 %s", strings.Join(m.winners, ", "))))
		}
		sb.WriteString(FaintStyle.Render("\npress q to exit"))
	}

	doc := DocStyle
	if m.width > 0 {
		doc = doc.MaxWidth(m.width)
	}
	return doc.Render(sb.String())
}

// visibleLog trims the game log to what fits the terminal, keeping room for
// the scoreboard, table and prompt above and below it.
func (m *Model) visibleLog() []string {
	lines := m.logLines
	if m.height > 0 {
		if keep := m.height - 10; keep >= 0 && len(lines) > keep {
			lines = lines[len(lines)-keep:]
		}
	}
	return lines
}

func (m *Model) promptView() string {
	var sb strings.Builder

	switch p := m.prompt.(type) {
	case TakeBlindPrompt:
		fmt.Fprintf(&sb, "%s, your hand: %s\n", p.Player, RenderHand(p.Hand))
		sb.WriteString("Take the blind?")
	case PlayCardPrompt:
		fmt.Fprintf(&sb, "%s, your hand: %s\n", p.Player, RenderHand(p.Hand))
		sb.WriteString("Play a card:")
	case BuryPrompt:
		fmt.Fprintf(&sb, "%s, your hand: %s\n", p.Player, RenderHand(p.Hand))
		fmt.Fprintf(&sb, "The blind: %s\n", RenderTrick(p.Blind))
		fmt.Fprintf(&sb, "Choose %d cards to bury:", len(p.Blind))
	}

	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	if m.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle.Render(m.errText))
	}
	return PromptStyle.Render(sb.String())
}
