// Package session runs Sheepshead hands: dealing, the blind auction, tricks
// and scoring, and the game loop that repeats hands until a goal score is
// reached.
package session

import (
	"github.com/schafkopf-go/sheepshead/internal/game/card"
	"github.com/schafkopf-go/sheepshead/internal/game/player"
)

// Seat binds a player to table state the engine owns: the current hand, the
// rotating dealer flag, the per-hand taker flag and the running game score.
type Seat struct {
	Player player.Player
	Hand   []card.Card

	IsDealer bool
	IsTaker  bool

	// Score persists across hands and never decreases.
	Score int
}

func (s *Seat) Name() string {
	return s.Player.Name()
}

// Play is one card laid into a trick.
type Play struct {
	Seat *Seat
	Card card.Card
}

// Trick is one round of the table, one card per seat in play order. Winner
// tracks the currently leading play while the trick accumulates and is final
// once every seat has played.
type Trick struct {
	Plays  []Play
	Winner *Seat
}

// Cards returns the trick's cards in play order.
func (t *Trick) Cards() []card.Card {
	cards := make([]card.Card, len(t.Plays))
	for i, p := range t.Plays {
		cards[i] = p.Card
	}
	return cards
}

// Hand records one deal-to-score cycle.
type Hand struct {
	ID     string
	Number int
	State  HandState

	Dealer *Seat
	Taker  *Seat // nil when the auction passes out
	Blind  []card.Card
	Buried []card.Card
	Tricks []*Trick

	// Partner is the seat that held the Jack of Diamonds after the bury,
	// nil when the taker holds it themselves, it lies buried, or nobody
	// took the blind.
	Partner *Seat

	// Deltas maps seat names to the score gained this hand.
	Deltas map[string]int
}

// sizeForTable gives cards per player and blind size for a player count.
// Every row satisfies hand*players + blind == 32.
var sizeForTable = map[int]struct{ hand, blind int }{
	3: {hand: 10, blind: 2},
	4: {hand: 7, blind: 4},
	5: {hand: 6, blind: 2},
}
