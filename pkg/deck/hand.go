package deck

import "strings"

// BlackjackValue is the best possible hand value
const BlackjackValue = 21

// Hand represents a collection of cards
type Hand []Card

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// Clear removes every card from the hand
func (h *Hand) Clear() {
	*h = Hand{}
}

// Value returns the value of the hand
// Aces start at 11 and are reduced to 1, one at a time, while the hand is over 21.
func (h Hand) Value() int {
	value, _ := h.score()
	return value
}

// IsSoft returns true if at least one ace is still being counted as 11
func (h Hand) IsSoft() bool {
	_, softAces := h.score()
	return softAces > 0
}

// IsBlackjack returns true for a natural: exactly two cards worth 21
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == BlackjackValue
}

// IsBust returns true if the hand is over 21
func (h Hand) IsBust() bool {
	return h.Value() > BlackjackValue
}

func (h Hand) score() (value int, softAces int) {
	for _, card := range h {
		value += card.Value()
		if card.IsAce() {
			softAces++
		}
	}

	for value > BlackjackValue && softAces > 0 {
		value -= AceHighValue - AceLowValue
		softAces--
	}

	return value, softAces
}

func (h Hand) String() string {
	cards := make([]string, len(h))
	for i, card := range h {
		cards[i] = card.String()
	}

	return strings.Join(cards, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
