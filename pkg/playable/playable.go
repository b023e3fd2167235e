package playable

import (
	"fmt"
	"time"

	"blackjack-console/pkg/deck"

	"github.com/google/uuid"
)

// Seat identifies who a log message is about
type Seat string

// Seat constants
const (
	SeatNone   Seat = ""
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)

// LogMessage is the format a game should send log messages in
// If Seat is empty, assume it's a general statement about the table
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Seat    Seat        `json:"seat,omitempty"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(seat Seat, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Seat:    seat,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardLogMessage returns a new LogMessage that shows a card
func CardLogMessage(seat Seat, card deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(seat, format, a...)
	lm.Cards = []deck.Card{card}

	return lm
}

// String returns the message followed by any cards it carries
func (l *LogMessage) String() string {
	if len(l.Cards) == 0 {
		return l.Message
	}

	return fmt.Sprintf("%s %s", l.Message, deck.Hand(l.Cards).String())
}
