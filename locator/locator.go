package locator

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidLocator reports a URL that does not contain a recognized
// file route. Bare (non-URL) inputs never produce this error.
var ErrInvalidLocator = errors.New("locator: invalid figma url")

var (
	// fileKeyPattern matches the key segment of the supported routes:
	// figma.com/{file|design|board|proto}/<KEY>/...
	fileKeyPattern = regexp.MustCompile(`figma\.com/(?:file|design|board|proto)/([a-zA-Z0-9]+)`)

	// nodeIDPattern matches the node-id query parameter value.
	nodeIDPattern = regexp.MustCompile(`node-id=([^&]+)`)
)

// FileKey extracts the file key from a Figma URL, or returns the input
// verbatim (trimmed) when it is not a URL.
func FileKey(urlOrKey string) (string, error) {
	trimmed := strings.TrimSpace(urlOrKey)
	if !strings.HasPrefix(trimmed, "http") {
		return trimmed, nil
	}

	match := fileKeyPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return "", ErrInvalidLocator
	}
	return match[1], nil
}

// NodeID extracts the node-id query parameter from a Figma URL and
// normalizes it to the canonical colon-separated form ("12-34" becomes
// "12:34"). It returns the empty string when no node is referenced;
// absence is not an error.
func NodeID(url string) string {
	match := nodeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return NormalizeNodeID(match[1])
}

// NormalizeNodeID converts a dash-separated node ID to the canonical
// colon-separated form used by identity lookups. IDs without dashes are
// returned unchanged.
func NormalizeNodeID(id string) string {
	return strings.ReplaceAll(id, "-", ":")
}

// Locator is a fully parsed reference: a file key and, when the
// reference names a specific node, its normalized ID.
type Locator struct {
	FileKey string
	NodeID  string
}

// Parse extracts both identifiers from a reference string.
func Parse(urlOrKey string) (Locator, error) {
	key, err := FileKey(urlOrKey)
	if err != nil {
		return Locator{}, err
	}
	return Locator{FileKey: key, NodeID: NodeID(urlOrKey)}, nil
}
