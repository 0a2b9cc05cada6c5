package session

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/schafkopf-go/sheepshead/internal/apperrors"
	"github.com/schafkopf-go/sheepshead/internal/game/player"
	"github.com/schafkopf-go/sheepshead/internal/logger"
)

// Options 游戏配置
type Options struct {
	// Goal is the score at which the game ends. 0 plays unbounded; the
	// caller then stops the loop through its context.
	Goal int

	// EnforceFollowSuit makes the trick engine reject plays that do not
	// follow the led class. Off by default: legality checking is then the
	// front end's responsibility.
	EnforceFollowSuit bool

	// Seed fixes the shuffle for reproducible games. 0 seeds from entropy.
	Seed uint64

	Observer Observer
}

// Game owns the seats, the goal and the hand history. All methods run on the
// caller's goroutine; nothing here is safe for concurrent use.
type Game struct {
	ID    string
	Seats []*Seat
	Goal  int
	Hands []*Hand

	rng               *rand.Rand
	enforceFollowSuit bool
	observer          Observer
	dealerIdx         int
}

// NewGame seats the given players. Player count outside 3-5 is a fatal
// configuration error.
func NewGame(players []player.Player, opts Options) (*Game, error) {
	if _, ok := sizeForTable[len(players)]; !ok {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrPlayerCount, len(players))
	}

	seats := make([]*Seat, len(players))
	for i, p := range players {
		seats[i] = &Seat{Player: p}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &Game{
		ID:                uuid.NewString(),
		Seats:             seats,
		Goal:              opts.Goal,
		rng:               rand.New(rand.NewPCG(seed, 0)),
		enforceFollowSuit: opts.EnforceFollowSuit,
		observer:          opts.Observer,
		dealerIdx:         -1, // first rotation lands on seat 0
	}, nil
}

func (g *Game) emit(ev Event) {
	if g.observer != nil {
		g.observer(ev)
	}
}

// seatOrder returns the seats starting at index from, walking left around
// the table.
func (g *Game) seatOrder(from int) []*Seat {
	n := len(g.Seats)
	order := make([]*Seat, 0, n)
	for i := range n {
		order = append(order, g.Seats[(from+i)%n])
	}
	return order
}

func (g *Game) seatIndex(s *Seat) int {
	for i, seat := range g.Seats {
		if seat == s {
			return i
		}
	}
	return -1
}

// PlayHand runs one full deal-to-score cycle: rotate the dealer, deal,
// auction, bury, tricks, scoring. A passed-out auction skips the bury but
// the tricks are still played out; the hand then scores nothing and the
// blind stays aside.
func (g *Game) PlayHand() (*Hand, error) {
	g.dealerIdx = (g.dealerIdx + 1) % len(g.Seats)
	for i, s := range g.Seats {
		s.IsDealer = i == g.dealerIdx
		s.IsTaker = false
	}

	hand := &Hand{
		ID:     uuid.NewString(),
		Number: len(g.Hands) + 1,
		State:  HandStateAwaitingDeal,
		Dealer: g.Seats[g.dealerIdx],
	}
	g.Hands = append(g.Hands, hand)

	g.deal(hand)
	g.emit(HandStarted{Number: hand.Number, Dealer: hand.Dealer.Name()})

	if err := g.auction(hand); err != nil {
		return nil, err
	}
	if err := g.bury(hand); err != nil {
		return nil, err
	}
	if err := g.playTricks(hand); err != nil {
		return nil, err
	}

	g.score(hand)
	logger.LogInfo("game %s hand %d scored: taker=%v deltas=%v",
		g.ID, hand.Number, hand.Taker != nil, hand.Deltas)
	return hand, nil
}

// Over reports whether the goal has been reached. A goal of 0 never ends
// the game.
func (g *Game) Over() bool {
	if g.Goal == 0 {
		return false
	}
	for _, s := range g.Seats {
		if s.Score >= g.Goal {
			return true
		}
	}
	return false
}

// Winners returns every seat sharing the top score, once the goal is
// reached. Several seats can cross the goal in the same hand; all of them
// win.
func (g *Game) Winners() []*Seat {
	if !g.Over() {
		return nil
	}
	top := 0
	for _, s := range g.Seats {
		if s.Score > top {
			top = s.Score
		}
	}
	var winners []*Seat
	for _, s := range g.Seats {
		if s.Score == top {
			winners = append(winners, s)
		}
	}
	return winners
}

// Play loops hands until the goal is reached or ctx is done. With goal 0 the
// context is the only way out.
func (g *Game) Play(ctx context.Context) error {
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.PlayHand(); err != nil {
			return err
		}
	}

	winners := g.Winners()
	names := make([]string, len(winners))
	for i, s := range winners {
		names[i] = s.Name()
	}
	g.emit(GameOver{Winners: names})
	return nil
}
