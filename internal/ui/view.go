package ui

import (
	"fmt"
	"strings"

	"github.com/schafkopf-go/sheepshead/internal/game/card"
	"github.com/schafkopf-go/sheepshead/internal/game/rule"
	"github.com/schafkopf-go/sheepshead/internal/game/session"
)

// RenderCard colors one card: trump gold, red suits red, the rest plain.
func RenderCard(c card.Card) string {
	switch {
	case rule.IsTrump(c):
		return TrumpStyle.Render(c.String())
	case c.Suit == card.Heart:
		return RedStyle.Render(c.String())
	default:
		return BlackStyle.Render(c.String())
	}
}

// RenderHand shows a hand sorted for reading, trump first.
func RenderHand(hand []card.Card) string {
	sorted := make([]card.Card, len(hand))
	copy(sorted, hand)
	card.Sort(sorted)

	var trump, fail []string
	for _, c := range sorted {
		if rule.IsTrump(c) {
			trump = append(trump, RenderCard(c))
		} else {
			fail = append(fail, RenderCard(c))
		}
	}
	return strings.Join(append(trump, fail...), " ")
}

// RenderTrick shows the cards on the table in play order.
func RenderTrick(trick []card.Card) string {
	if len(trick) == 0 {
		return FaintStyle.Render("(empty table)")
	}
	parts := make([]string, len(trick))
	for i, c := range trick {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderScoreboard lists every seat with dealer/taker markers and score.
func RenderScoreboard(g *session.Game) string {
	var sb strings.Builder
	for _, s := range g.Seats {
		marker := "  "
		if s.IsDealer {
			marker = DealerIcon
		}
		if s.IsTaker {
			marker = TakerIcon
		}
		fmt.Fprintf(&sb, "%s %-10s %3d\n", marker, s.Name(), s.Score)
	}
	return BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// eventLine turns an engine event into a log line, or "" for events the log
// does not show.
func eventLine(ev session.Event) string {
	switch e := ev.(type) {
	case session.HandStarted:
		return fmt.Sprintf("── Hand %d, %s deals ──", e.Number, e.Dealer)
	case session.BlindTaken:
		return fmt.Sprintf("%s takes the blind", e.Taker)
	case session.AuctionPassed:
		return "Nobody takes the blind; hand is void"
	case session.CardPlayed:
		return fmt.Sprintf("%s plays %s", e.Seat, e.Card)
	case session.TrickWon:
		return fmt.Sprintf("%s wins the trick (%d points)", e.Winner, e.Points)
	case session.HandScored:
		if e.PassedOut {
			return "Hand passed out, no score"
		}
		side := strings.Join(e.TakerSide, " + ")
		if e.TakerWon {
			return fmt.Sprintf("%s win with %d points", side, e.TakerPts)
		}
		return fmt.Sprintf("%s fall short with %d points", side, e.TakerPts)
	case session.GameOver:
		return fmt.Sprintf("Game over! Winner: %s", strings.Join(e.Winners, ", "))
	default:
		return ""
	}
}
