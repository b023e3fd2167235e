package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_Value(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		value     int
		blackjack bool
		bust      bool
		soft      bool
	}{
		{"empty", "", 0, false, false, false},
		{"simple", "10c,5h", 15, false, false, false},
		{"faces", "13c,12h", 20, false, false, false},
		{"natural", "14s,13h", 21, true, false, true},
		{"natural with ten", "10d,14c", 21, true, false, true},
		{"soft 17", "14s,6h", 17, false, false, true},
		{"ace reduced", "14s,9h,2d", 12, false, false, false},
		{"two aces", "14s,14h", 12, false, false, true},
		{"two aces and a nine", "14s,14h,9d", 21, false, false, true},
		{"three aces", "14s,14h,14d", 13, false, false, true},
		{"four aces and a seven", "14s,14h,14d,14c,7c", 21, false, false, true},
		{"hard 21", "10s,5h,6d", 21, false, false, false},
		{"bust", "13s,12h,5d", 25, false, true, false},
		{"bust with aces reduced", "14s,14h,13d,12c", 22, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			h := Hand(CardsFromString(tt.cards))
			a.Equal(tt.value, h.Value())
			a.Equal(tt.blackjack, h.IsBlackjack())
			a.Equal(tt.bust, h.IsBust())
			a.Equal(tt.soft, h.IsSoft())
		})
	}
}

// bestValue tries every ace valuation and returns the highest total <= 21, or the lowest total if all bust
func bestValue(h Hand) int {
	low, aces := 0, 0
	for _, card := range h {
		if card.IsAce() {
			low += AceLowValue
			aces++
		} else {
			low += card.Value()
		}
	}

	best := low
	for high := 1; high <= aces; high++ {
		if total := low + high*(AceHighValue-AceLowValue); total <= BlackjackValue {
			best = total
		}
	}

	return best
}

func TestHand_Value_matchesBestValuation(t *testing.T) {
	r := rand.New(rand.NewSource(7)) // nolint:gosec
	all := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			all = append(all, NewCard(rank, suit))
		}
	}

	for i := 0; i < 5000; i++ {
		h := Hand{}
		n := r.Intn(7) + 1
		for j := 0; j < n; j++ {
			h.AddCard(all[r.Intn(len(all))])
		}

		if !assert.Equal(t, bestValue(h), h.Value(), "hand %s", h.String()) {
			return
		}
	}
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
	assert.Equal(t, "A♠ 3♣", h.String())
	assert.Equal(t, 2, h.Len())
}

func TestHand_Clear(t *testing.T) {
	h := Hand(CardsFromString("14s,13c"))
	clone := h.Clone()

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Value())

	h.AddCard(CardFromString("2d"))
	assert.Equal(t, "14s,13c", CardsToString(clone))
}
