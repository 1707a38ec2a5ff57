package adapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"atest-finder/internal/ports"
)

const maxSelectionAttempts = 3

// ConsolePrompt is the default selection strategy: an enumerated list
// and a numeric answer. A non-numeric or out-of-range answer re-prompts
// instead of crashing; after maxSelectionAttempts bad answers the
// resolution fails with an input error.
type ConsolePrompt struct {
	In  io.Reader
	Out io.Writer
}

func NewConsolePrompt() ConsolePrompt {
	return ConsolePrompt{In: os.Stdin, Out: os.Stdout}
}

func (p ConsolePrompt) Choose(candidates []string) (int, error) {
	if len(candidates) == 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no candidates to choose from")
	}
	if len(candidates) == 1 {
		return 0, nil
	}

	fmt.Fprintln(p.Out, "Multiple tests found:")
	for i, candidate := range candidates {
		fmt.Fprintf(p.Out, "%d: %s\n", i, candidate)
	}

	scanner := bufio.NewScanner(p.In)
	for attempt := 0; attempt < maxSelectionAttempts; attempt++ {
		fmt.Fprintf(p.Out, "Please enter number of test to use: ")
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		index, err := strconv.Atoi(answer)
		if err != nil || index < 0 || index >= len(candidates) {
			fmt.Fprintf(p.Out, "Invalid selection %q, expected 0-%d\n", answer, len(candidates)-1)
			continue
		}
		return index, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read selection").
			WithCause(err)
	}
	return 0, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("no valid selection entered")
}

var _ ports.SelectionPort = ConsolePrompt{}
