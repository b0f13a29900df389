package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm prints prompt and reads a single line; only "y" or "yes"
// (case-insensitive) counts as affirmative.
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
