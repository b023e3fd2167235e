package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"blackjack-console/pkg/playable/blackjack"
)

// Options controls how the console behaves
type Options struct {
	// ClearScreen clears the terminal between rounds
	ClearScreen bool

	// DealerPause waits for Enter before each dealer draw
	DealerPause bool
}

// Console reads the player's decisions from a reader and renders the game to a writer
// Bad input is answered with a hint and asked again, it never reaches the game.
type Console struct {
	out     io.Writer
	options Options

	lines     chan string
	scanErr   error
	done      chan struct{}
	closeOnce sync.Once
}

// New returns a new console
// Lines are read from in by a background goroutine so a pending prompt can be abandoned when the context is done.
// Call Close once the console is no longer needed.
func New(in io.Reader, out io.Writer, options Options) *Console {
	c := &Console{
		out:     out,
		options: options,
		lines:   make(chan string),
		done:    make(chan struct{}),
	}

	go c.scan(in)
	return c
}

// Close stops handing lines to the console
// A read already blocked on in is not interrupted, the reader goroutine exits once it returns.
func (c *Console) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Console) scan(in io.Reader) {
	defer close(c.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case c.lines <- scanner.Text():
		case <-c.done:
			return
		}
	}

	c.scanErr = scanner.Err()
}

// readLine prints the prompt and waits for the next line of input
// io.EOF is returned once the input is exhausted
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	c.printf("%s", prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.scanErr != nil {
				return "", c.scanErr
			}

			return "", io.EOF
		}

		return strings.TrimSpace(line), nil
	}
}

// RequestBet asks for a bet until a valid one is entered, or the player quits with q
func (c *Console) RequestBet(ctx context.Context, balance, minimum int) (int, error) {
	for {
		c.printf("💰 Current Balance: $%d\n", balance)
		input, err := c.readLine(ctx, fmt.Sprintf("Place your bet (minimum $%d, or 'q' to quit): ", minimum))
		if err != nil {
			return 0, err
		}

		if strings.EqualFold(input, "q") {
			return 0, blackjack.ErrQuit
		}

		bet, err := strconv.Atoi(input)
		switch {
		case err != nil:
			c.printf("❌ Please enter a valid number!\n")
		case bet < minimum:
			c.printf("❌ Minimum bet is $%d!\n", minimum)
		case bet > balance:
			c.printf("❌ Insufficient funds!\n")
		default:
			return bet, nil
		}
	}
}

// RequestHitOrStand asks until the player enters h or s
func (c *Console) RequestHitOrStand(ctx context.Context) (blackjack.Action, error) {
	for {
		input, err := c.readLine(ctx, "\n[H]it or [S]tand? ")
		if err != nil {
			return 0, err
		}

		action, err := blackjack.ActionFromString(input)
		if err == nil {
			return action, nil
		}

		c.printf("❌ Invalid choice! Please enter 'H' or 'S'\n")
	}
}

// RequestContinue asks if the player wants another round, anything but y or yes means no
func (c *Console) RequestContinue(ctx context.Context) (bool, error) {
	input, err := c.readLine(ctx, "\nPlay another round? [Y/N]: ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	}

	return false, nil
}

// Pause waits for Enter before the dealer draws, unless pausing is disabled
func (c *Console) Pause(ctx context.Context) error {
	if !c.options.DealerPause {
		return nil
	}

	_, err := c.readLine(ctx, "\nPress Enter to continue...")
	return err
}

func (c *Console) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
