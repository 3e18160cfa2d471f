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

// Confirm prints the prompt and waits for a yes/no answer on the
// reader. An empty answer means no. The read aborts when the context
// is canceled.
func Confirm(ctx context.Context, r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)

	type result struct {
		err  error
		line string
	}
	resultCh := make(chan result, 1)

	go func() {
		line, err := bufio.NewReader(r).ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && res.err != io.EOF {
			return false, fmt.Errorf("reading answer: %w", res.err)
		}
		answer := strings.ToLower(strings.TrimSpace(res.line))
		return answer == "y" || answer == "yes", nil
	}
}
