package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		pattern  string
		name     string
		expected bool
	}{
		{pattern: "*", name: "anything", expected: true},
		{pattern: "", name: "anything", expected: false},
		{pattern: "search", name: "search_web", expected: true},
		{pattern: "search_web", name: "search_web", expected: true},
		{pattern: "web", name: "search_web", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern+"/"+tc.name, func(t *testing.T) {
			assert.EqualValues(t, tc.expected, Match(tc.pattern, tc.name))
		})
	}
}
