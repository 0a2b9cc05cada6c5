package session

import "github.com/schafkopf-go/sheepshead/internal/game/card"

// Event is a notification the engine emits as a hand progresses. Front ends
// subscribe with an Observer to render play without polling engine state;
// the engine never waits on the observer's behalf.
type Event any

// Observer receives every event, in order, on the engine's goroutine.
type Observer func(Event)

// HandStarted fires after the deal, before the auction.
type HandStarted struct {
	Number int
	Dealer string
}

// BlindTaken fires when a seat wins the auction.
type BlindTaken struct {
	Taker string
}

// AuctionPassed fires when every seat declines the blind; the hand is void.
type AuctionPassed struct{}

// CardPlayed fires as each play is committed to the current trick.
type CardPlayed struct {
	Seat string
	Card card.Card
}

// TrickWon fires when a trick completes.
type TrickWon struct {
	Winner string
	Points int
}

// HandScored fires after scoring with the score deltas of the hand.
type HandScored struct {
	Number    int
	TakerSide []string
	TakerWon  bool
	TakerPts  int
	Deltas    map[string]int
	PassedOut bool
}

// GameOver fires once the goal is reached.
type GameOver struct {
	Winners []string
}
