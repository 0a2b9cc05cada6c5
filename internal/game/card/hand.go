package card

import (
	"fmt"
	"slices"
	"strings"
)

// FindInHand resolves a card token against a hand and returns the matching
// card. The match must actually be held; front ends use this to translate
// typed input before handing a card to the engine.
func FindInHand(hand []Card, input string) (Card, error) {
	c, err := Parse(strings.TrimSpace(input))
	if err != nil {
		return Card{}, err
	}
	if !slices.Contains(hand, c) {
		return Card{}, fmt.Errorf("you do not hold %s", c)
	}
	return c, nil
}

// FindAllInHand resolves a space-separated list of card tokens, rejecting
// duplicates. Used for the bury prompt.
func FindAllInHand(hand []Card, input string) ([]Card, error) {
	fields := strings.Fields(input)
	result := make([]Card, 0, len(fields))
	for _, tok := range fields {
		c, err := FindInHand(hand, tok)
		if err != nil {
			return nil, err
		}
		if slices.Contains(result, c) {
			return nil, fmt.Errorf("%s given twice", c)
		}
		result = append(result, c)
	}
	return result, nil
}

// Remove returns hand without the given cards.
func Remove(hand []Card, toRemove []Card) []Card {
	result := make([]Card, 0, len(hand))
	for _, c := range hand {
		if !slices.Contains(toRemove, c) {
			result = append(result, c)
		}
	}
	return result
}

// Sort orders a hand suit-major with ranks descending, which is how players
// expect to read it at the table.
func Sort(hand []Card) {
	slices.SortFunc(hand, func(a, b Card) int {
		if a.Suit != b.Suit {
			return int(a.Suit) - int(b.Suit)
		}
		return int(b.Rank) - int(a.Rank)
	})
}
