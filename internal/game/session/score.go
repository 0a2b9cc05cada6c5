package session

import (
	"github.com/schafkopf-go/sheepshead/internal/game/card"
	"github.com/schafkopf-go/sheepshead/internal/game/rule"
)

// Game score awarded to each winning-side seat: 1 for a plain win, 2 when
// the losers fail schneider (30 points or fewer), 3 when they take no trick
// at all.
const (
	winPlain     = 1
	winSchneider = 2
	winSchwarz   = 3
)

// score settles a finished hand. The taker's side is the taker plus whoever
// played the Jack of Diamonds (nobody, if the taker held it or it lies
// buried). Buried cards count for the taker's side; 61 of the 120 points
// win the hand. A passed-out hand is void and scores nothing.
func (g *Game) score(hand *Hand) {
	hand.State = HandStateScored
	hand.Deltas = make(map[string]int)

	if hand.Taker == nil {
		g.emit(HandScored{Number: hand.Number, PassedOut: true, Deltas: hand.Deltas})
		return
	}

	jack := card.Card{Suit: card.Diamond, Rank: card.RankJ}
	for _, t := range hand.Tricks {
		for _, p := range t.Plays {
			if p.Card == jack && p.Seat != hand.Taker {
				hand.Partner = p.Seat
			}
		}
	}

	onTakerSide := func(s *Seat) bool {
		return s == hand.Taker || (hand.Partner != nil && s == hand.Partner)
	}

	takerPts := rule.Points(hand.Buried)
	takerTricks, defenderTricks := 0, 0
	for _, t := range hand.Tricks {
		if onTakerSide(t.Winner) {
			takerPts += rule.Points(t.Cards())
			takerTricks++
		} else {
			defenderTricks++
		}
	}

	takerWon := takerPts >= 61
	loserPts, loserTricks := 120-takerPts, defenderTricks
	if !takerWon {
		loserPts, loserTricks = takerPts, takerTricks
	}

	delta := winPlain
	if loserPts <= 30 {
		delta = winSchneider
	}
	if loserTricks == 0 {
		delta = winSchwarz
	}

	side := []string{hand.Taker.Name()}
	if hand.Partner != nil {
		side = append(side, hand.Partner.Name())
	}

	for _, s := range g.Seats {
		if onTakerSide(s) == takerWon {
			s.Score += delta
			hand.Deltas[s.Name()] = delta
		}
	}

	g.emit(HandScored{
		Number:    hand.Number,
		TakerSide: side,
		TakerWon:  takerWon,
		TakerPts:  takerPts,
		Deltas:    hand.Deltas,
	})
}
