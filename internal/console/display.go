package console

import (
	"strings"
	"unicode/utf8"

	"blackjack-console/pkg/playable"
	"blackjack-console/pkg/playable/blackjack"
)

const (
	lineWidth        = 50
	hiddenCardSymbol = "🂠"
	clearSequence    = "\033[H\033[2J"
)

var separator = strings.Repeat("=", lineWidth)

// Clear clears the screen if enabled
func (c *Console) Clear() {
	if c.options.ClearScreen {
		c.printf("%s", clearSequence)
	}
}

// ShowWelcome shows the banner and the house rules
func (c *Console) ShowWelcome(balance, minimumBet int) {
	c.printf("%s\n", separator)
	c.printf("%s\n", center("🎰  WELCOME TO BLACKJACK  🎰", lineWidth))
	c.printf("%s\n", separator)
	c.printf("\n💰 Your Balance: $%d\n", balance)
	c.printf("\nRules: Get as close to 21 as possible without going over!\n")
	c.printf("Dealer must hit on 16 and below, stand on 17 and above.\n")
	c.printf("Minimum bet is $%d. Blackjack pays 3:2.\n\n", minimumBet)
}

// ShowTable shows both hands
func (c *Console) ShowTable(view *blackjack.TableView) {
	c.printf("\n%s\n", separator)

	if view.HoleCardHidden {
		c.printf("🎴 Dealer's Hand: %s  %s\n", view.Dealer.String(), hiddenCardSymbol)
	} else {
		c.printf("🎴 Dealer's Hand: %s\n", view.Dealer.String())
		c.printf("   Value: %d\n", view.DealerValue)
	}

	c.printf("\n🎴 Your Hand: %s\n", view.Player.String())
	if view.PlayerSoft {
		c.printf("   Value: %d (soft)\n", view.PlayerValue)
	} else {
		c.printf("   Value: %d\n", view.PlayerValue)
	}

	c.printf("%s\n", separator)
}

// Log prints what happened at the table
func (c *Console) Log(messages ...*playable.LogMessage) {
	for _, msg := range messages {
		c.printf("\n%s\n", msg.String())
	}
}

// ShowResult shows the outcome of a round
func (c *Console) ShowResult(result *blackjack.Result) {
	c.printf("\n%s\n", separator)
	c.printf("%s\n", center("🏆  FINAL RESULTS  🏆", lineWidth))
	c.printf("%s\n", separator)
	c.printf("%s\n", result.Outcome.Message())

	switch {
	case result.Outcome.PlayerWon():
		c.printf("\n💰 You won $%d!\n", result.Profit())
	case result.Outcome == blackjack.OutcomePush:
		c.printf("\n🤝 Your bet of $%d was returned!\n", result.Bet)
	}

	c.printf("💰 New Balance: $%d\n", result.Balance)
	c.printf("%s\n", separator)
}

// ShowGoodbye shows the final balance
func (c *Console) ShowGoodbye(balance int, broke bool) {
	if broke {
		c.printf("\n💸 You don't have enough money to continue!\n")
	}

	c.printf("\n%s\n", separator)
	c.printf("👋 Thanks for playing!\n")
	c.printf("💰 Final Balance: $%d\n", balance)
	c.printf("%s\n", separator)
}

// ShowInterrupted is shown when the session is cut short by a signal
func (c *Console) ShowInterrupted(balance int) {
	c.printf("\n\n👋 Game interrupted. Thanks for playing!\n")
	c.printf("💰 Final Balance: $%d\n", balance)
}

// ShowError reports a fault that ended the session
func (c *Console) ShowError(err error) {
	c.printf("\n❌ An error occurred: %v\n", err)
	c.printf("Please report this issue.\n")
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
