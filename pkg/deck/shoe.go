package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"blackjack-console/internal/rng"
)

// DeckSize is the number of cards in a complete deck
const DeckSize = 52

// Shoe is the drawable source of cards
// A shoe never runs dry: drawing from an empty shoe rebuilds and reshuffles a fresh deck first.
type Shoe struct {
	cards      []Card
	rng        rng.Generator
	reshuffles int

	onReshuffle func()
}

// NewShoe returns a new shoe holding a complete deck.
// Important! the shoe is unshuffled. You must call the Shuffle() method to shuffle the cards
func NewShoe(gen rng.Generator) *Shoe {
	s := &Shoe{
		rng: gen,
	}

	s.Build()
	return s
}

// SetReshuffleHandler sets a function that is called every time an empty shoe is replenished
func (s *Shoe) SetReshuffleHandler(fn func()) {
	s.onReshuffle = fn
}

// Build replaces the contents of the shoe with one of each card, suits outer and ranks inner
func (s *Shoe) Build() {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	s.cards = cards
}

// Shuffle will shuffle the cards that are currently in the shoe
func (s *Shoe) Shuffle() {
	for j := len(s.cards) - 1; j > 0; j-- {
		i := s.rng.Intn(j + 1)

		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the card at the end of the shoe
// If the shoe is empty, a new deck is built and shuffled first
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.Build()
		s.Shuffle()
		s.reshuffles++

		if s.onReshuffle != nil {
			s.onReshuffle()
		}
	}

	n := len(s.cards) - 1
	card := s.cards[n]
	s.cards = s.cards[:n]

	return card
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Reshuffles returns how many times the shoe ran out and was replenished
func (s *Shoe) Reshuffles() int {
	return s.reshuffles
}

// Stack replaces the contents of the shoe so the cards are drawn in the order given
func (s *Shoe) Stack(cards []Card) {
	stacked := make([]Card, len(cards))
	for i, card := range cards {
		stacked[len(cards)-1-i] = card
	}

	s.cards = stacked
}

// HashCode returns a SHA1 hash code of the order of the cards in the shoe
func (s *Shoe) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range s.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
