package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schafkopf-go/sheepshead/internal/config"
	"github.com/schafkopf-go/sheepshead/internal/game/player"
	"github.com/schafkopf-go/sheepshead/internal/game/session"
	"github.com/schafkopf-go/sheepshead/internal/logger"
)

// BuildPlayers turns the configured seats into engine players. Human seats
// get their decision hooks from the bridge.
func BuildPlayers(cfg *config.Config, bridge *Bridge) []player.Player {
	tableSize := len(cfg.Game.Players)
	players := make([]player.Player, 0, tableSize)
	for _, pc := range cfg.Game.Players {
		if pc.Control == config.ControlHuman {
			players = append(players, player.NewHuman(pc.Name, bridge.Callbacks(pc.Name)))
		} else {
			players = append(players, player.NewComputer(pc.Name, tableSize))
		}
	}
	return players
}

// Run wires a game to a fresh bubbletea program and plays it to the end.
func Run(cfg *config.Config) error {
	bridge := NewBridge()

	g, err := session.NewGame(BuildPlayers(cfg, bridge), session.Options{
		Goal:              cfg.Game.Goal,
		EnforceFollowSuit: cfg.Game.EnforceFollowSuit,
		Seed:              cfg.Game.Seed,
		Observer:          bridge.Observe,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(g), tea.WithAltScreen())
	bridge.Attach(p)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.LogPanic(r)
			}
		}()
		p.Send(EngineDone{Err: g.Play(context.Background())})
	}()

	_, err = p.Run()
	return err
}
