// Package phrases loads challenge phrase lists from files.
package phrases

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads one phrase per line from path. Blank lines and lines starting
// with '#' are skipped; phrases are lower-cased and inner whitespace collapsed.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only phrase list.
			_ = cerr
		}
	}()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.ToLower(strings.Join(strings.Fields(line), " ")))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("phrase list is empty")
	}
	return out, nil
}
