package orchestration

import (
	"reflect"
	"testing"
)

func TestParseSuggestions(t *testing.T) {
	testCases := []struct {
		name        string
		reply       string
		spoken      string
		suggestions []string
	}{
		{
			name:        "well-formed suffix",
			reply:       "All systems nominal. [SUGGESTIONS: check logs, open metrics, run health check]",
			spoken:      "All systems nominal.",
			suggestions: []string{"check logs", "open metrics", "run health check"},
		},
		{
			name:        "whitespace trimmed per item",
			reply:       "Done. [SUGGESTIONS:  a ,b,  c  ]",
			spoken:      "Done.",
			suggestions: []string{"a", "b", "c"},
		},
		{
			name:   "no annotation leaves text unchanged",
			reply:  "Nothing to report.",
			spoken: "Nothing to report.",
		},
		{
			name:   "annotation mid-text is not stripped",
			reply:  "I said [SUGGESTIONS: a] earlier and moved on.",
			spoken: "I said [SUGGESTIONS: a] earlier and moved on.",
		},
		{
			name:        "trailing whitespace after annotation",
			reply:       "Check this. [SUGGESTIONS: retry]   ",
			spoken:      "Check this.",
			suggestions: []string{"retry"},
		},
		{
			name:   "empty annotation yields no suggestions",
			reply:  "Plain reply. [SUGGESTIONS: ]",
			spoken: "Plain reply.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			spoken, suggestions := parseSuggestions(testCase.reply)
			if spoken != testCase.spoken {
				t.Fatalf("expected spoken %q, got %q", testCase.spoken, spoken)
			}
			if !reflect.DeepEqual(suggestions, testCase.suggestions) {
				t.Fatalf("expected suggestions %v, got %v", testCase.suggestions, suggestions)
			}
		})
	}
}
