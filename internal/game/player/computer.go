package player

import (
	"slices"

	"github.com/schafkopf-go/sheepshead/internal/game/card"
	"github.com/schafkopf-go/sheepshead/internal/game/rule"
)

// Computer is the rule-based player. All three decisions are deterministic
// functions of the visible cards; it never blocks and holds no external
// state beyond the table size it was seated at.
type Computer struct {
	name      string
	tableSize int
}

func NewComputer(name string, tableSize int) *Computer {
	return &Computer{name: name, tableSize: tableSize}
}

func (c *Computer) Name() string { return c.name }

// blindScore weighs a hand for the auction: Queens 20, Jacks 10, remaining
// trump 5, fail aces 1.
func blindScore(hand []card.Card) int {
	score := 0
	for _, h := range hand {
		switch {
		case h.Rank == card.RankQ:
			score += 20
		case h.Rank == card.RankJ:
			score += 10
		case rule.IsTrump(h):
			score += 5
		case h.Rank == card.RankA:
			score++
		}
	}
	return score
}

func trumpCount(hand []card.Card) int {
	n := 0
	for _, h := range hand {
		if rule.IsTrump(h) {
			n++
		}
	}
	return n
}

// TakeBlind takes on a hand score above 100. At a five-player table a long
// trump holding (four or more) is enough on its own, since hands are short.
func (c *Computer) TakeBlind(hand []card.Card) (bool, error) {
	if blindScore(hand) > 100 {
		return true, nil
	}
	return c.tableSize == 5 && trumpCount(hand) >= 4, nil
}

// PlayCard plays the weakest legal card. When the trick on the table is
// already worth ten points or more and some legal card would take it, the
// weakest such winning card is played instead.
func (c *Computer) PlayCard(hand, trickSoFar []card.Card) (card.Card, error) {
	legal := rule.LegalPlays(hand, trickSoFar)

	if len(trickSoFar) > 0 && rule.Points(trickSoFar) >= 10 {
		var winning []card.Card
		for _, choice := range legal {
			if rule.IsLeading(choice, trickSoFar) {
				winning = append(winning, choice)
			}
		}
		if len(winning) > 0 {
			return weakest(winning), nil
		}
	}
	return weakest(legal), nil
}

// Bury discards the fattest fail cards so their points count for the taker,
// falling back to the weakest trump when fail cards run out.
func (c *Computer) Bury(hand, blind []card.Card) ([]card.Card, []card.Card, error) {
	combined := make([]card.Card, 0, len(hand)+len(blind))
	combined = append(combined, hand...)
	combined = append(combined, blind...)

	var fail, trump []card.Card
	for _, ca := range combined {
		if rule.IsTrump(ca) {
			trump = append(trump, ca)
		} else {
			fail = append(fail, ca)
		}
	}
	// Fail cards by descending point value, weakest first among equals.
	slices.SortFunc(fail, func(a, b card.Card) int {
		if d := b.Points() - a.Points(); d != 0 {
			return d
		}
		return rule.Strength(a) - rule.Strength(b)
	})
	slices.SortFunc(trump, func(a, b card.Card) int {
		return rule.Strength(a) - rule.Strength(b)
	})

	buried := make([]card.Card, 0, len(blind))
	for _, ca := range fail {
		if len(buried) == len(blind) {
			break
		}
		buried = append(buried, ca)
	}
	for _, ca := range trump {
		if len(buried) == len(blind) {
			break
		}
		buried = append(buried, ca)
	}

	return card.Remove(combined, buried), buried, nil
}

func weakest(cards []card.Card) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if rule.Strength(c) < rule.Strength(best) {
			best = c
		}
	}
	return best
}
