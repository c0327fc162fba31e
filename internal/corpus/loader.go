// Package corpus reads the raw input text for the pipeline.
package corpus

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Load reads the corpus file as UTF-8 text.
// Invalid byte sequences are replaced with U+FFFD instead of aborting,
// so a corpus with a few mis-encoded characters still mines.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("corpus file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}
