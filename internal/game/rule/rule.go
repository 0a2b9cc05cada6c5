// Package rule holds the pure Sheepshead ordering rules: what is trump,
// which card is currently winning a trick, and which plays are legal.
package rule

import (
	"github.com/schafkopf-go/sheepshead/internal/game/card"
)

// IsTrump reports whether c is trump: every diamond, and every Jack and
// Queen regardless of suit. That is 14 of the 32 cards.
func IsTrump(c card.Card) bool {
	return c.Suit == card.Diamond || c.Rank >= card.RankJ
}

// ContainsTrump reports whether at least one trump card has been played.
func ContainsTrump(cards []card.Card) bool {
	for _, c := range cards {
		if IsTrump(c) {
			return true
		}
	}
	return false
}

// HighestTrump returns the highest rank among the trump cards in cards,
// or 0 when no trump has been played yet.
func HighestTrump(cards []card.Card) card.Rank {
	var best card.Rank
	for _, c := range cards {
		if IsTrump(c) && c.Rank > best {
			best = c.Rank
		}
	}
	return best
}

// HighestInSuit returns the highest rank among the fail cards of suit s in
// cards, or 0 when none has been played. Trump cards never count here, even
// the Jack and Queen of s.
func HighestInSuit(cards []card.Card, s card.Suit) card.Rank {
	var best card.Rank
	for _, c := range cards {
		if !IsTrump(c) && c.Suit == s && c.Rank > best {
			best = c.Rank
		}
	}
	return best
}

// IsLeading reports whether newCard, played after previous (in play order,
// first element led), takes over the trick. An equal rank never displaces
// the earlier card.
func IsLeading(newCard card.Card, previous []card.Card) bool {
	if len(previous) == 0 {
		return true
	}
	if ContainsTrump(previous) {
		return IsTrump(newCard) && newCard.Rank > HighestTrump(previous)
	}
	if IsTrump(newCard) {
		return true
	}
	lead := previous[0].Suit
	if newCard.Suit != lead {
		return false
	}
	return newCard.Rank > HighestInSuit(previous, lead)
}

// WinnerIndex returns the index of the card currently winning the trick.
// plays must be in play order and non-empty.
func WinnerIndex(plays []card.Card) int {
	winner := 0
	for i := 1; i < len(plays); i++ {
		if IsLeading(plays[i], plays[:i]) {
			winner = i
		}
	}
	return winner
}

// LegalPlays returns the cards in hand that follow the led class: trump must
// be answered with trump, a fail lead with the same fail suit. A player out
// of the led class may play anything. The first player to a trick may lead
// anything.
func LegalPlays(hand, previous []card.Card) []card.Card {
	if len(previous) == 0 {
		return append([]card.Card(nil), hand...)
	}
	var legal []card.Card
	if IsTrump(previous[0]) {
		for _, c := range hand {
			if IsTrump(c) {
				legal = append(legal, c)
			}
		}
	} else {
		lead := previous[0].Suit
		for _, c := range hand {
			if !IsTrump(c) && c.Suit == lead {
				legal = append(legal, c)
			}
		}
	}
	if len(legal) == 0 {
		return append([]card.Card(nil), hand...)
	}
	return legal
}

// Strength gives a single total order over the whole deck for comparing any
// two cards: all trump above all fail, rank deciding within each class. Fail
// cards of different suits compare by rank alone, which is all the computer
// policies need.
func Strength(c card.Card) int {
	if IsTrump(c) {
		return int(c.Rank) + 20
	}
	return int(c.Rank)
}

// Points sums the counting values of cards.
func Points(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}
