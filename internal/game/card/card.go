package card

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

const (
	Club Suit = iota // 梅花
	Spade
	Heart
	Diamond
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Club:    "♣",
	Spade:   "♠",
	Heart:   "♥",
	Diamond: "♦",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Rank values encode strength within a fail suit. The Sheepshead order puts
// King below Ten and Ace, and Jack/Queen on top (they are always trump).
const (
	Rank7 Rank = iota + 7
	Rank8
	Rank9
	RankK
	Rank10
	RankA
	RankJ
	RankQ
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	RankK:  "K",
	Rank10: "10",
	RankA:  "A",
	RankJ:  "J",
	RankQ:  "Q",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Points returns the card's counting value. The full deck totals 120.
func (c Card) Points() int {
	switch c.Rank {
	case RankA:
		return 11
	case Rank10:
		return 10
	case RankK:
		return 4
	case RankQ:
		return 3
	case RankJ:
		return 2
	default:
		return 0
	}
}

// Deck 定义一副牌
type Deck []Card

// NewDeck returns the 32-card Sheepshead deck in canonical order,
// suit-major with ranks ascending.
func NewDeck() Deck {
	deck := make(Deck, 0, 32)
	for s := Club; s <= Diamond; s++ {
		for r := Rank7; r <= RankQ; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes the deck in place with a Fisher-Yates walk over rng.
// The caller owns the generator so deals stay reproducible under a fixed seed.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

var charToSuit = map[byte]Suit{
	'C': Club,
	'S': Spade,
	'H': Heart,
	'D': Diamond,
}

var charToRank = map[byte]Rank{
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'K': RankK,
	'T': Rank10,
	'A': RankA,
	'J': RankJ,
	'Q': RankQ,
}

// Parse reads a card token such as "QC", "10d" or "AH": rank first, suit
// letter last. "10" and "T" both mean the Ten.
func Parse(token string) (Card, error) {
	if len(token) < 2 {
		return Card{}, fmt.Errorf("unrecognized card %q", token)
	}
	upper := make([]byte, len(token))
	for i := 0; i < len(token); i++ {
		b := token[i]
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		upper[i] = b
	}
	suit, ok := charToSuit[upper[len(upper)-1]]
	if !ok {
		return Card{}, fmt.Errorf("unrecognized suit %q", string(upper[len(upper)-1]))
	}
	rankPart := string(upper[:len(upper)-1])
	if rankPart == "10" {
		rankPart = "T"
	}
	if len(rankPart) != 1 {
		return Card{}, fmt.Errorf("unrecognized rank %q", rankPart)
	}
	rank, ok := charToRank[rankPart[0]]
	if !ok {
		return Card{}, fmt.Errorf("unrecognized rank %q", rankPart)
	}
	return Card{Suit: suit, Rank: rank}, nil
}
