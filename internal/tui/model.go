// Package tui is a terminal front end that drives the game engine directly.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/rocketscienceinc/rps-backend/internal/apperror"
	"github.com/rocketscienceinc/rps-backend/internal/entity"
	"github.com/rocketscienceinc/rps-backend/internal/presentation"
	"github.com/rocketscienceinc/rps-backend/internal/rps"
)

// Model is the Bubble Tea model for one local match. It owns the match state.
type Model struct {
	engine *rps.Engine
	state  entity.MatchState
	logger *log.Logger

	keys keyMap
	help help.Model

	lastErr  error
	quitting bool
}

func New(engine *rps.Engine, targetScore int, logger *log.Logger) (*Model, error) {
	state, err := rps.NewMatch(targetScore)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	return &Model{
		engine: engine,
		state:  state,
		logger: logger.WithPrefix("tui"),
		keys:   newKeyMap(),
		help:   help.New(),
	}, nil
}

func (m *Model) State() entity.MatchState {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.lastErr = nil

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rock):
			m.play(entity.Rock)
		case key.Matches(msg, m.keys.Paper):
			m.play(entity.Paper)
		case key.Matches(msg, m.keys.Scissors):
			m.play(entity.Scissors)
		case key.Matches(msg, m.keys.Next):
			m.state = rps.NextRound(m.state)
		case key.Matches(msg, m.keys.Reset):
			m.reset(nil)
		case key.Matches(msg, m.keys.Target):
			index, err := strconv.Atoi(msg.String())
			if err != nil || index < 1 || index > len(presentation.TargetScoreOptions) {
				break
			}
			target := presentation.TargetScoreOptions[index-1]
			m.reset(&target)
		}
	}

	return m, nil
}

// play - moves are only taken while waiting for one, like the buttons of a round screen.
func (m *Model) play(move entity.Move) {
	if m.state.Phase() == entity.PhaseRoundResolved {
		return
	}

	next, outcome, err := m.engine.PlayRound(m.state, move)
	if err != nil {
		m.lastErr = err
		m.logger.Warn("round rejected", "move", move, "error", err)
		return
	}

	m.state = next
	m.logger.Info("round played", "round", next.Rounds(), "move", move, "outcome", outcome)

	if next.MatchOver {
		m.logger.Info("match finished", "winner", next.Winner())
	}
}

func (m *Model) reset(targetScore *int) {
	next, err := rps.ResetMatch(m.state, targetScore)
	if err != nil {
		m.lastErr = err
		return
	}

	m.state = next
	m.logger.Info("match reset", "target_score", next.TargetScore)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	view := presentation.NewView(m.state)

	var b strings.Builder

	b.WriteString(titleStyle.Render("🪨📄✂️ Rock Paper Scissors"))
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("First to %d wins (best of %d)", m.state.TargetScore, m.state.MaxRounds())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		scoreStyle.Render(fmt.Sprintf("Your Score\n%d", view.UserScore)),
		" ",
		scoreStyle.Render(fmt.Sprintf("Computer Score\n%d", view.ComputerScore)),
	))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		choiceStyle.Render("Your choice:\n"+view.UserChoice),
		vsStyle.Render("VS"),
		choiceStyle.Render("Computer's choice:\n"+view.ComputerChoice),
	))
	b.WriteString("\n\n")

	b.WriteString(m.resultLine(view))
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString(errStyle.Render(apperror.Message(m.lastErr)))
		b.WriteString("\n")
	}

	if len(view.History) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("📜 Game History"))
		b.WriteString("\n")
		for _, line := range view.History {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) resultLine(view presentation.View) string {
	switch m.state.Phase() {
	case entity.PhaseMatchOver:
		if m.state.Winner() == entity.WinnerUser {
			return winStyle.Render(view.Result) + "\n" + infoStyle.Render("Press x to play a new match.")
		}
		return loseStyle.Render(view.Result) + "\n" + infoStyle.Render("Press x to play a new match.")
	case entity.PhaseRoundResolved:
		style := loseStyle
		if m.state.LastRound.Outcome == entity.UserWin {
			style = winStyle
		}
		return style.Render(view.Result) + "\n" + infoStyle.Render("Press n for another round.")
	default:
		return infoStyle.Render("Make your move to start the game!")
	}
}
