package blackjack

import "github.com/lowroller/casinocore/internal/rng"

// Suit of a playing card.
type Suit string

const (
	SuitSpades   Suit = "spades"
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
)

// Rank of a playing card.
type Rank string

const (
	RankAce   Rank = "A"
	Rank2     Rank = "2"
	Rank3     Rank = "3"
	Rank4     Rank = "4"
	Rank5     Rank = "5"
	Rank6     Rank = "6"
	Rank7     Rank = "7"
	Rank8     Rank = "8"
	Rank9     Rank = "9"
	Rank10    Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

var suits = [...]Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

var ranks = [...]Rank{
	RankAce, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7,
	Rank8, Rank9, Rank10, RankJack, RankQueen, RankKing,
}

// Card is one playing card.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Deal draws a uniform card from a conceptually infinite shoe: suit first,
// then rank, one Intn each.
func Deal(src rng.Source) Card {
	return Card{
		Suit: suits[src.Intn(len(suits))],
		Rank: ranks[src.Intn(len(ranks))],
	}
}

func rankValue(r Rank) int {
	switch r {
	case RankAce:
		return 1
	case RankJack, RankQueen, RankKing:
		return 10
	case Rank10:
		return 10
	default:
		// "2".."9" are single digits.
		return int(r[0] - '0')
	}
}

// HandValue returns the best total of a hand and whether it is soft (an ace
// currently counted as 11). Aces count as 1, and at most one is promoted to
// 11 when that does not bust the hand.
func HandValue(cards []Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		total += rankValue(c.Rank)
		if c.Rank == RankAce {
			aces++
		}
	}
	if aces > 0 && total+10 <= BlackjackTarget {
		return total + 10, true
	}
	return total, false
}

// IsBlackjack reports a two-card 21.
func IsBlackjack(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}
	total, _ := HandValue(cards)
	return total == BlackjackTarget
}
