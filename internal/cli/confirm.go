package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Confirmer asks yes/no questions on a terminal, respecting context
// cancellation so a Ctrl-C during a prompt does not leave the process
// wedged on a blocked read.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates a confirmer reading from in and prompting on out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	if in == nil || out == nil {
		panic("confirmer streams cannot be nil")
	}
	return &Confirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints the prompt and waits for a yes/no answer. Only "y" and
// "yes" (case-insensitive) confirm; anything else declines.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	type result struct {
		err  error
		line string
	}
	resultCh := make(chan result, 1)

	go func() {
		line, err := c.in.ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine keeps running until its read returns,
		// but the caller gets control back immediately.
		return false, ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && res.line == "" {
			return false, res.err
		}
		answer := strings.ToLower(strings.TrimSpace(res.line))
		return answer == "y" || answer == "yes", nil
	}
}
