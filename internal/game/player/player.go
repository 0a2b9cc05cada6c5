// Package player defines the decision capabilities a Sheepshead player must
// provide and the two implementations: a callback-backed human and a
// rule-based computer.
package player

import (
	"github.com/schafkopf-go/sheepshead/internal/game/card"
)

// Player is the capability set the engine asks of every seat. Implementations
// must treat hand and trickSoFar as read-only: the session commits card
// removal itself after validating the choice.
type Player interface {
	Name() string

	// TakeBlind decides whether to claim the blind. Only the player's own
	// hand is visible at this point.
	TakeBlind(hand []card.Card) (bool, error)

	// PlayCard chooses a card from hand to add to the trick. trickSoFar is
	// in play order; its first element is the led card.
	PlayCard(hand, trickSoFar []card.Card) (card.Card, error)

	// Bury splits hand+blind back into a kept hand and exactly len(blind)
	// buried cards.
	Bury(hand, blind []card.Card) (kept, buried []card.Card, err error)
}

// Callbacks carries the three decision hooks a front end supplies for a
// human-controlled seat. Each call blocks until the front end answers.
type Callbacks struct {
	TakeBlind func(hand []card.Card) (bool, error)
	PlayCard  func(hand, trickSoFar []card.Card) (card.Card, error)
	Bury      func(hand, blind []card.Card) (kept, buried []card.Card, err error)
}

// Human delegates every decision to injected callbacks. The engine performs
// only the structural validation described in the session package; game
// legality of human choices is the front end's concern.
type Human struct {
	name      string
	callbacks Callbacks
}

func NewHuman(name string, callbacks Callbacks) *Human {
	return &Human{name: name, callbacks: callbacks}
}

func (h *Human) Name() string { return h.name }

func (h *Human) TakeBlind(hand []card.Card) (bool, error) {
	return h.callbacks.TakeBlind(hand)
}

func (h *Human) PlayCard(hand, trickSoFar []card.Card) (card.Card, error) {
	return h.callbacks.PlayCard(hand, trickSoFar)
}

func (h *Human) Bury(hand, blind []card.Card) ([]card.Card, []card.Card, error) {
	return h.callbacks.Bury(hand, blind)
}
