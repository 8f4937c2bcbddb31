package orchestration

import (
	"regexp"
	"strings"
)

// suggestionPattern matches the trailing suggestion annotation an agent reply
// may carry, e.g. "[SUGGESTIONS: check status, open logs]".
var suggestionPattern = regexp.MustCompile(`\[SUGGESTIONS:([^\]]*)\]\s*$`)

// parseSuggestions splits a reply into its spoken text and suggestion set.
// Replies without the annotation come back unchanged with no suggestions.
func parseSuggestions(reply string) (spoken string, suggestions []string) {
	match := suggestionPattern.FindStringSubmatchIndex(reply)
	if match == nil {
		return reply, nil
	}

	for _, item := range strings.Split(reply[match[2]:match[3]], ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			suggestions = append(suggestions, item)
		}
	}

	return strings.TrimSpace(reply[:match[0]]), suggestions
}
