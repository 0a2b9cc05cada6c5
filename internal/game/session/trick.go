package session

import (
	"fmt"
	"slices"

	"github.com/schafkopf-go/sheepshead/internal/apperrors"
	"github.com/schafkopf-go/sheepshead/internal/game/card"
	"github.com/schafkopf-go/sheepshead/internal/game/rule"
)

// playTrick collects one card from every seat starting at leader. The
// chosen card is validated against the seat's hand (and, when configured,
// against the follow rules) before it is committed; only then does it
// leave the hand. The running winner is updated one play at a time.
func (g *Game) playTrick(leader int) (*Trick, error) {
	trick := &Trick{}

	for _, s := range g.seatOrder(leader) {
		played := trick.Cards()
		c, err := s.Player.PlayCard(slices.Clone(s.Hand), played)
		if err != nil {
			return nil, fmt.Errorf("%s playing a card: %w", s.Name(), err)
		}
		if !slices.Contains(s.Hand, c) {
			return nil, fmt.Errorf("%w: %s chose %s", apperrors.ErrCardNotHeld, s.Name(), c)
		}
		if g.enforceFollowSuit && !slices.Contains(rule.LegalPlays(s.Hand, played), c) {
			return nil, fmt.Errorf("%w: %s chose %s", apperrors.ErrIllegalPlay, s.Name(), c)
		}

		// Commit: the card leaves the hand and joins the trick.
		s.Hand = card.Remove(s.Hand, []card.Card{c})
		if rule.IsLeading(c, played) {
			trick.Winner = s
		}
		trick.Plays = append(trick.Plays, Play{Seat: s, Card: c})
		g.emit(CardPlayed{Seat: s.Name(), Card: c})
	}

	g.emit(TrickWon{Winner: trick.Winner.Name(), Points: rule.Points(trick.Cards())})
	return trick, nil
}

// playTricks runs the full set of tricks for the hand. The first trick is
// led by the seat left of the dealer, every later one by the previous
// trick's winner.
func (g *Game) playTricks(hand *Hand) error {
	hand.State = HandStatePlayingTricks

	leader := (g.dealerIdx + 1) % len(g.Seats)
	for range sizeForTable[len(g.Seats)].hand {
		trick, err := g.playTrick(leader)
		if err != nil {
			return err
		}
		hand.Tricks = append(hand.Tricks, trick)
		leader = g.seatIndex(trick.Winner)
	}
	return nil
}
