package session

import (
	"fmt"
	"slices"

	"github.com/schafkopf-go/sheepshead/internal/apperrors"
	"github.com/schafkopf-go/sheepshead/internal/game/card"
)

// deal shuffles a fresh deck and distributes it. Each round first feeds the
// blind one card until it is full, then gives every seat one card, starting
// left of the dealer. Hands plus blind always account for all 32 cards.
func (g *Game) deal(hand *Hand) {
	sizes := sizeForTable[len(g.Seats)]

	deck := card.NewDeck()
	deck.Shuffle(g.rng)

	for _, s := range g.Seats {
		s.Hand = s.Hand[:0]
	}
	hand.Blind = hand.Blind[:0]

	next := 0
	order := g.seatOrder(g.dealerIdx + 1)
	for range sizes.hand {
		if len(hand.Blind) < sizes.blind {
			hand.Blind = append(hand.Blind, deck[next])
			next++
		}
		for _, s := range order {
			s.Hand = append(s.Hand, deck[next])
			next++
		}
	}

	hand.State = HandStateDealt
}

// auction asks each seat in turn, starting left of the dealer, whether it
// takes the blind. The first yes ends the auction. Deciders see only their
// own hand, never the blind.
func (g *Game) auction(hand *Hand) error {
	for _, s := range g.seatOrder(g.dealerIdx + 1) {
		take, err := s.Player.TakeBlind(slices.Clone(s.Hand))
		if err != nil {
			return fmt.Errorf("%s deciding on the blind: %w", s.Name(), err)
		}
		if take {
			s.IsTaker = true
			hand.Taker = s
			hand.State = HandStateAuctioned
			g.emit(BlindTaken{Taker: s.Name()})
			return nil
		}
	}
	hand.State = HandStateAuctioned
	g.emit(AuctionPassed{})
	return nil
}

// bury hands the blind to the taker and takes back an equal number of
// cards. The response is validated before any state changes: right count,
// and every card drawn from the taker's combined hand and blind.
func (g *Game) bury(hand *Hand) error {
	if hand.Taker == nil {
		hand.State = HandStateBuried
		return nil
	}
	taker := hand.Taker

	kept, buried, err := taker.Player.Bury(slices.Clone(taker.Hand), slices.Clone(hand.Blind))
	if err != nil {
		return fmt.Errorf("%s burying: %w", taker.Name(), err)
	}
	if len(buried) != len(hand.Blind) {
		return fmt.Errorf("%w: got %d, want %d", apperrors.ErrBurySize, len(buried), len(hand.Blind))
	}

	combined := make([]card.Card, 0, len(taker.Hand)+len(hand.Blind))
	combined = append(combined, taker.Hand...)
	combined = append(combined, hand.Blind...)
	returned := make([]card.Card, 0, len(combined))
	returned = append(returned, kept...)
	returned = append(returned, buried...)
	if !sameCards(combined, returned) {
		return fmt.Errorf("%w", apperrors.ErrBuryOwner)
	}

	taker.Hand = kept
	hand.Buried = buried
	hand.State = HandStateBuried
	return nil
}

// sameCards reports whether two card lists hold the same cards, order
// aside. The deck has no duplicates, so set comparison suffices.
func sameCards(a, b []card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for _, c := range a {
		if !slices.Contains(b, c) {
			return false
		}
	}
	return true
}
