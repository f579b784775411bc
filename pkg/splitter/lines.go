package splitter

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// countLines returns the number of lines in a text file. Reading is
// byte-oriented, so byte sequences that do not decode as text are counted
// through rather than aborting. A trailing fragment without a final newline
// counts as a line.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	lines := 0
	for {
		chunk, err := reader.ReadString('\n')
		if len(chunk) > 0 {
			lines++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return 0, err
		}
	}
}
