// Package cli handles cmd line input and matching for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/sberney/typeahead/internal/utils"
	"github.com/sberney/typeahead/pkg/suggest"
)

// InputHandler processes user input from stdin, printing the matching
// candidates. It accepts flags to control behavior such as maximum input
// length, match limits, and filtering options.
type InputHandler struct {
	matcher    suggest.IMatcher
	maxInput   int
	matchLimit int
	noFilter   bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(matcher suggest.IMatcher, maxInput, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		matcher:    matcher,
		maxInput:   maxInput,
		matchLimit: limit,
		noFilter:   noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("Typeahead CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type something and press Enter to see the matches (Ctrl+C to exit):")

	for {
		log.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		h.handleInput(input)
	}
}

// handleInput processes a single input to generate matches.
// It validates the input's length and content, then asks the matcher for
// candidates. Results are formatted and printed to the log, with the
// completed part of each candidate colorized.
func (h *InputHandler) handleInput(input string) {
	if utf8.RuneCountInString(input) > h.maxInput {
		log.Errorf("Input too long: %s", input)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(input) {
			log.Infof("No results found for input: '%s'", input)
			return
		}
	} else {
		log.Debug("Input filtering disabled - querying all entries")
	}

	start := time.Now()

	log.Debug("Processing request for", "input", input)
	matches := h.matcher.Filter(input)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for input '%s'", elapsed, input)

	if len(matches) == 0 {
		log.Warnf("No matches found for input: '%s'", input)
		return
	}
	if h.matchLimit > 0 && len(matches) > h.matchLimit {
		matches = matches[:h.matchLimit]
	}

	log.Printf("Found %d matches for input '%s':", len(matches), input)
	for i, c := range matches {
		clRemainder := fmt.Sprintf("\033[38;5;75m%s\033[0m", c.Remainder)
		log.Printf("%2d. %s%s", i+1, c.Prefix, clRemainder)
	}
}
