package issuecorrelation

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// SnippetHash returns the SHA256 hex string of a source line with surrounding whitespace removed,
// so re-indented lines keep their hash. Returns empty string for blank lines.
func SnippetHash(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(line))
	return fmt.Sprintf("%x", sum[:])
}
