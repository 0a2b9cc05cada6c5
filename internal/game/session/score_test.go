package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schafkopf-go/sheepshead/internal/game/card"
)

func scoringTable() (*Game, []*Seat) {
	seats := []*Seat{
		{Player: &stubPlayer{name: "A"}},
		{Player: &stubPlayer{name: "B"}},
		{Player: &stubPlayer{name: "C"}},
	}
	return &Game{Seats: seats}, seats
}

func mkTrick(winner *Seat, seats []*Seat, cards ...card.Card) *Trick {
	t := &Trick{Winner: winner}
	for i, c := range cards {
		t.Plays = append(t.Plays, Play{Seat: seats[i%len(seats)], Card: c})
	}
	return t
}

func TestScorePlainWin(t *testing.T) {
	t.Parallel()

	g, seats := scoringTable()
	hand := &Hand{
		Taker:  seats[0],
		Buried: []card.Card{{Suit: card.Club, Rank: card.RankK}, {Suit: card.Spade, Rank: card.RankK}}, // 8
		Tricks: []*Trick{
			// 33 + 30 to the taker, a pointless trick to the defense.
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Club, Rank: card.RankA},
				card.Card{Suit: card.Spade, Rank: card.RankA},
				card.Card{Suit: card.Heart, Rank: card.RankA}),
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Club, Rank: card.Rank10},
				card.Card{Suit: card.Spade, Rank: card.Rank10},
				card.Card{Suit: card.Heart, Rank: card.Rank10}),
			mkTrick(seats[1], seats,
				card.Card{Suit: card.Club, Rank: card.Rank7},
				card.Card{Suit: card.Club, Rank: card.Rank8},
				card.Card{Suit: card.Club, Rank: card.Rank9}),
		},
	}

	g.score(hand)

	// 8 buried + 63 in tricks = 71 of 120: plain win, taker alone.
	assert.Equal(t, map[string]int{"A": winPlain}, hand.Deltas)
	assert.Equal(t, winPlain, seats[0].Score)
	assert.Zero(t, seats[1].Score)
	assert.Equal(t, HandStateScored, hand.State)
}

func TestScoreTakerSchwarz(t *testing.T) {
	t.Parallel()

	g, seats := scoringTable()
	hand := &Hand{
		Taker:  seats[0],
		Buried: []card.Card{{Suit: card.Club, Rank: card.Rank7}, {Suit: card.Spade, Rank: card.Rank7}},
		Tricks: []*Trick{
			// The taker never wins a trick: schwarz for the defense.
			mkTrick(seats[1], seats,
				card.Card{Suit: card.Club, Rank: card.RankA},
				card.Card{Suit: card.Spade, Rank: card.RankA},
				card.Card{Suit: card.Heart, Rank: card.RankA}),
		},
	}

	g.score(hand)

	assert.Equal(t, map[string]int{"B": winSchwarz, "C": winSchwarz}, hand.Deltas)
	assert.Zero(t, seats[0].Score)
}

func TestScoreSchneider(t *testing.T) {
	t.Parallel()

	g, seats := scoringTable()
	hand := &Hand{
		Taker: seats[0],
		// 21 buried.
		Buried: []card.Card{{Suit: card.Heart, Rank: card.RankA}, {Suit: card.Heart, Rank: card.Rank10}},
		Tricks: []*Trick{
			// 32 + 18 + 18 + 3 = 71 in taker tricks, 92 with the bury:
			// the defense stays at 28, under schneider.
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Club, Rank: card.RankA},
				card.Card{Suit: card.Spade, Rank: card.RankA},
				card.Card{Suit: card.Club, Rank: card.Rank10}),
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Spade, Rank: card.Rank10},
				card.Card{Suit: card.Club, Rank: card.RankK},
				card.Card{Suit: card.Spade, Rank: card.RankK}),
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Diamond, Rank: card.Rank10},
				card.Card{Suit: card.Heart, Rank: card.RankK},
				card.Card{Suit: card.Diamond, Rank: card.RankK}),
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Club, Rank: card.RankQ},
				card.Card{Suit: card.Club, Rank: card.Rank7},
				card.Card{Suit: card.Club, Rank: card.Rank8}),
			mkTrick(seats[1], seats,
				card.Card{Suit: card.Heart, Rank: card.Rank7},
				card.Card{Suit: card.Heart, Rank: card.Rank8},
				card.Card{Suit: card.Heart, Rank: card.Rank9}),
		},
	}

	g.score(hand)

	assert.Equal(t, map[string]int{"A": winSchneider}, hand.Deltas)
}

func TestScoreJackOfDiamondsPartner(t *testing.T) {
	t.Parallel()

	g, seats := scoringTable()
	hand := &Hand{
		Taker:  seats[0],
		Buried: []card.Card{{Suit: card.Diamond, Rank: card.Rank10}, {Suit: card.Diamond, Rank: card.RankK}}, // 14
		Tricks: []*Trick{
			// Seat B (second to play) lays the Jack of Diamonds and wins
			// the trick for the taker's side.
			mkTrick(seats[1], seats,
				card.Card{Suit: card.Diamond, Rank: card.Rank9},
				card.Card{Suit: card.Diamond, Rank: card.RankJ},
				card.Card{Suit: card.Heart, Rank: card.RankA}),
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Club, Rank: card.RankA},
				card.Card{Suit: card.Spade, Rank: card.RankA},
				card.Card{Suit: card.Club, Rank: card.Rank10}),
			mkTrick(seats[2], seats,
				card.Card{Suit: card.Heart, Rank: card.Rank7},
				card.Card{Suit: card.Heart, Rank: card.Rank8},
				card.Card{Suit: card.Heart, Rank: card.Rank9}),
			mkTrick(seats[0], seats,
				card.Card{Suit: card.Heart, Rank: card.RankK},
				card.Card{Suit: card.Club, Rank: card.RankK},
				card.Card{Suit: card.Spade, Rank: card.RankQ}),
		},
	}

	g.score(hand)

	require.NotNil(t, hand.Partner)
	assert.Equal(t, "B", hand.Partner.Name())

	// 14 buried + 13 + 32 + 11 in side tricks = 70: both partners score.
	assert.Equal(t, map[string]int{"A": winPlain, "B": winPlain}, hand.Deltas)
	assert.Zero(t, seats[2].Score)
}

func TestScorePassedOutHandIsVoid(t *testing.T) {
	t.Parallel()

	var scored *HandScored
	g, seats := scoringTable()
	g.observer = func(ev Event) {
		if e, ok := ev.(HandScored); ok {
			scored = &e
		}
	}

	hand := &Hand{Blind: []card.Card{{Suit: card.Club, Rank: card.Rank7}}}
	g.score(hand)

	assert.Empty(t, hand.Deltas)
	for _, s := range seats {
		assert.Zero(t, s.Score)
	}
	require.NotNil(t, scored)
	assert.True(t, scored.PassedOut)
}
