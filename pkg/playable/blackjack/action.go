package blackjack

import (
	"fmt"
	"strings"
)

// Action is a decision the player makes during their turn
type Action int

// Action constants
const (
	ActionHit Action = iota + 1
	ActionStand
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from user input: h, hit, s or stand (case-insensitive)
func ActionFromString(action string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "h", "hit":
		return ActionHit, nil
	case "s", "stand":
		return ActionStand, nil
	}

	return 0, fmt.Errorf("invalid action: %s", action)
}
