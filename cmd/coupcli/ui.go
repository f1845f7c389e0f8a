package main

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryanjlittle/coup-ismcts/pkg/coup"
	"github.com/ryanjlittle/coup-ismcts/pkg/engine"
)

// mode selects whether the human drives one seat or every seat is played
// by the search (the watch/play subcommands of §8A).
type mode int

const (
	modeWatch mode = iota
	modePlay
)

// model is the bubbletea model for the table view: one Coup game, driven
// either entirely by ISMCTS (modeWatch) or with one human seat
// (modePlay).
type model struct {
	state       *coup.State
	matchID     string
	history     *matchHistory
	mode        mode
	humanPlayer int
	iterMax     int
	exploration float64
	rng         *rand.Rand

	turn   int
	cursor int
	log    []string
	err    error
	done   bool
}

func newModel(state *coup.State, matchID string, history *matchHistory, md mode, humanPlayer, iterMax int, exploration float64, rng *rand.Rand) model {
	return model{
		state:       state,
		matchID:     matchID,
		history:     history,
		mode:        md,
		humanPlayer: humanPlayer,
		iterMax:     iterMax,
		exploration: exploration,
		rng:         rng,
	}
}

func (m model) Init() tea.Cmd {
	return m.nextCmd()
}

// nextCmd returns a command that advances the game by one move: waiting
// for a keypress if it's the human's turn in modePlay, otherwise running
// a search in the background.
func (m model) nextCmd() tea.Cmd {
	if m.done {
		return nil
	}
	if m.mode == modePlay && m.state.PlayerToMove() == m.humanPlayer {
		return nil
	}
	return searchMoveCmd(m.state, m.iterMax, m.exploration, m.rng)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		if m.mode == modePlay && !m.done && m.state.PlayerToMove() == m.humanPlayer {
			return m.handleHumanKey(msg)
		}
		return m, nil

	case moveAppliedMsg:
		return m.applyMove(coup.Move(msg))

	case searchErrMsg:
		m.err = fmt.Errorf("search: %w", msg)
		return m, nil
	}
	return m, nil
}

func (m model) handleHumanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	legal := m.state.LegalMoves()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(legal)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(legal) {
			return m.applyMove(legal[m.cursor])
		}
	}
	return m, nil
}

func (m model) applyMove(move coup.Move) (tea.Model, tea.Cmd) {
	player := m.state.PlayerToMove()
	if err := m.state.ApplyMove(move); err != nil {
		m.err = err
		return m, nil
	}
	m.turn++
	m.cursor = 0
	m.log = append(m.log, fmt.Sprintf("turn %d: player %d played %s", m.turn, player, move))
	if len(m.log) > 8 {
		m.log = m.log[len(m.log)-8:]
	}
	if m.history != nil {
		_ = m.history.recordDecision(m.matchID, m.turn, player, move.String())
	}
	if m.state.IsTerminal() {
		m.done = true
		return m, nil
	}
	return m, m.nextCmd()
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Coup — ISMCTS table") + "\n\n")

	for p := 1; p <= m.state.NumPlayers(); p++ {
		b.WriteString(renderPlayer(m.state, p, m.humanPlayer == p) + "\n")
	}

	b.WriteString("\n")
	if m.mode == modePlay && !m.done && m.state.PlayerToMove() == m.humanPlayer {
		b.WriteString(renderMoveMenu(m.state.LegalMoves(), m.cursor))
	}

	if len(m.log) > 0 {
		b.WriteString("\n" + strings.Join(m.log, "\n") + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	if m.done {
		b.WriteString("\ngame over\n")
	}
	b.WriteString(helpStyle.Render("\nq: quit"))
	return b.String()
}

func renderPlayer(s *coup.State, p int, isHuman bool) string {
	style := playerBoxStyle
	if s.PlayerToMove() == p {
		style = currentPlayerStyle
	}
	if s.IsKnockedOut(p) {
		style = knockedOutStyle
	}

	label := fmt.Sprintf("Player %d", p)
	if isHuman {
		label += " (you)"
	}

	var cards []string
	for _, r := range s.Hand(p) {
		if isHuman || s.IsKnockedOut(p) {
			cards = append(cards, roleCardStyle.Render(string(r)))
		} else {
			cards = append(cards, roleCardStyle.Render("??"))
		}
	}

	body := fmt.Sprintf("%s\ncoins: %d\n%s", label, s.Coins(p), strings.Join(cards, " "))
	return style.Render(body)
}

func renderMoveMenu(legal []coup.Move, cursor int) string {
	var b strings.Builder
	b.WriteString("Choose a move:\n")
	for i, m := range legal {
		style := actionButtonStyle
		if i == cursor {
			style = selectedActionStyle
		}
		b.WriteString(style.Render(m.String()) + "\n")
	}
	return b.String()
}
