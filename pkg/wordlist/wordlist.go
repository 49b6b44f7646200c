/*
Package wordlist loads plain text candidate lists.

Files carry one candidate per line. Blank lines and lines starting with '#'
are skipped, surrounding whitespace is trimmed. Entries keep their original
casing and file order, so on-screen suggestions mirror the file.
*/
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sberney/typeahead/internal/utils"
	"github.com/sberney/typeahead/pkg/suggest"
)

// MaxEntries caps how many candidates a single file may carry.
const MaxEntries = 100000

// Load reads a candidate list from the file at path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer file.Close()

	entries, err := Parse(file, path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %s candidates from %s", utils.FormatWithCommas(len(entries)), path)
	return entries, nil
}

// Parse reads candidates from r. The name is only used in error messages.
func Parse(r io.Reader, name string) ([]string, error) {
	var entries []string
	tracker := utils.NewDuplicateTracker()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if firstLine, fresh := tracker.Add(line, lineNo); !fresh {
			return nil, fmt.Errorf("%w: %q at line %d repeats line %d of %s",
				suggest.ErrDuplicateCandidate, line, lineNo, firstLine, name)
		}
		entries = append(entries, line)
		if len(entries) > MaxEntries {
			return nil, fmt.Errorf("wordlist %s exceeds %d entries", name, MaxEntries)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist %s: %w", name, err)
	}
	return entries, nil
}
