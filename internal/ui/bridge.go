package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schafkopf-go/sheepshead/internal/game/card"
	"github.com/schafkopf-go/sheepshead/internal/game/player"
	"github.com/schafkopf-go/sheepshead/internal/game/session"
)

// The engine runs on its own goroutine and blocks inside the human player
// callbacks. The bridge turns each callback into a prompt message for the
// bubbletea program and waits on a response channel; the Update loop
// answers exactly once per prompt. The engine is synchronous, so at most
// one prompt is ever in flight.

// TakeBlindPrompt asks a human whether to take the blind.
type TakeBlindPrompt struct {
	Player string
	Hand   []card.Card
	Resp   chan bool
}

// PlayCardPrompt asks a human for a card to add to the trick.
type PlayCardPrompt struct {
	Player string
	Hand   []card.Card
	Trick  []card.Card
	Resp   chan card.Card
}

// BuryPrompt asks a human to pick the cards to bury out of hand+blind.
type BuryPrompt struct {
	Player string
	Hand   []card.Card
	Blind  []card.Card
	Resp   chan []card.Card
}

// EventMsg wraps an engine event for the Update loop.
type EventMsg struct {
	Event session.Event
}

// EngineDone reports that the game loop returned.
type EngineDone struct {
	Err error
}

// Bridge forwards engine activity into a bubbletea program.
type Bridge struct {
	send func(tea.Msg)
}

func NewBridge() *Bridge {
	return &Bridge{send: func(tea.Msg) {}}
}

// Attach points the bridge at the running program. Must happen before the
// engine goroutine starts.
func (b *Bridge) Attach(p *tea.Program) {
	b.send = p.Send
}

// Observe is the session.Observer the game is constructed with.
func (b *Bridge) Observe(ev session.Event) {
	b.send(EventMsg{Event: ev})
}

// Callbacks builds the three human decision hooks for one seat. Each hook
// posts a prompt and blocks the engine goroutine until the UI answers.
func (b *Bridge) Callbacks(name string) player.Callbacks {
	return player.Callbacks{
		TakeBlind: func(hand []card.Card) (bool, error) {
			resp := make(chan bool)
			b.send(TakeBlindPrompt{Player: name, Hand: hand, Resp: resp})
			return <-resp, nil
		},
		PlayCard: func(hand, trick []card.Card) (card.Card, error) {
			resp := make(chan card.Card)
			b.send(PlayCardPrompt{Player: name, Hand: hand, Trick: trick, Resp: resp})
			return <-resp, nil
		},
		Bury: func(hand, blind []card.Card) ([]card.Card, []card.Card, error) {
			resp := make(chan []card.Card)
			b.send(BuryPrompt{Player: name, Hand: hand, Blind: blind, Resp: resp})
			buried := <-resp

			combined := make([]card.Card, 0, len(hand)+len(blind))
			combined = append(combined, hand...)
			combined = append(combined, blind...)
			return card.Remove(combined, buried), buried, nil
		},
	}
}
