// Package prompt holds the interactive front ends: a live-filtered picker
// for choosing a function from the catalog and plain line prompts for the
// project setup flow. The filtering rule itself lives in the fuzzy package;
// this package only owns the input loops.
package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"scriptctl/internal/fuzzy"
	"scriptctl/pkg/logging"

	"github.com/chzyer/readline"
	"github.com/ktr0731/go-fuzzyfinder"
)

// ErrAborted is returned when the user cancels a selection.
var ErrAborted = errors.New("selection aborted")

// SelectFunction lets the user pick a function name from the catalog. A
// non-empty catalog opens the incremental fuzzy picker; an empty catalog
// (or a terminal the picker cannot drive) falls back to a free-text prompt
// with fuzzy tab completion, so the user can still name a function the
// catalog missed.
func SelectFunction(catalog []string) (string, error) {
	if len(catalog) > 0 {
		idx, err := fuzzyfinder.Find(
			catalog,
			func(i int) string { return catalog[i] },
			fuzzyfinder.WithPromptString("function> "),
		)
		if err == nil {
			return catalog[idx], nil
		}
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrAborted
		}
		// Picker could not run (e.g. no usable TTY). Fall back to the
		// line prompt rather than failing the whole command.
		logging.Debug("Prompt", "fuzzy picker unavailable: %v", err)
	}

	return readFunctionName(catalog)
}

// candidateSource adapts the pure filter to readline's dynamic completion
// callback, re-evaluated on every completion request.
func candidateSource(catalog []string) func(string) []string {
	return func(line string) []string {
		return fuzzy.Filter(catalog, strings.TrimSpace(line))
	}
}

func readFunctionName(catalog []string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "Function name: ",
		AutoComplete: readline.NewPrefixCompleter(readline.PcItemDynamic(candidateSource(catalog))),
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ProjectPrompter implements the project setup flow over readline.
type ProjectPrompter struct{}

// AskProjectID asks for a GCP project id, returning "" when the user just
// hits enter or cancels.
func (ProjectPrompter) AskProjectID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rl, err := readline.New("GCP project id (leave empty to abort): ")
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
