// Package rawfile reads the Latin-1 fixed-width plaintext landing files that
// feed the record framer.
package rawfile

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadLines reads path as Latin-1 plaintext, splitting on newline and
// dropping empty lines, mirroring the original read_plaintext contract.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rawfile: open %s: %w", path, err)
	}
	defer f.Close()

	decoder := charmap.ISO8859_1.NewDecoder()
	reader := bufio.NewScanner(transform.NewReader(f, decoder))
	reader.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for reader.Scan() {
		line := reader.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("rawfile: scan %s: %w", path, err)
	}
	return lines, nil
}
