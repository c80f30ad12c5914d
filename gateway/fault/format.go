package fault

import (
	"strings"
)

// Format renders the user message followed by a bulleted suggestion list as a
// single display string suitable for chat surfaces.
func Format(e *Enhanced) string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString("\n- ")
			b.WriteString(suggestion)
		}
	}
	return b.String()
}

// Envelope is the machine-readable response shape consumed by the execution
// sandbox when a failure has to be reported back to a running script.
type Envelope struct {
	Error        string   `json:"error"`
	ErrorCode    string   `json:"errorCode"`
	UserFriendly bool     `json:"userFriendly"`
	Suggestions  []string `json:"suggestions"`
	Recoverable  bool     `json:"recoverable"`
	Logs         []string `json:"logs"`
}

// NewEnvelope builds the sandbox envelope for a classified failure.  The logs
// slice is carried verbatim; nil becomes an empty list so that the envelope
// marshals with every field present.
func NewEnvelope(e *Enhanced, logs []string) *Envelope {
	if logs == nil {
		logs = []string{}
	}
	suggestions := e.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return &Envelope{
		Error:        e.Message,
		ErrorCode:    strings.ToUpper(string(e.Category)),
		UserFriendly: true,
		Suggestions:  suggestions,
		Recoverable:  e.Recoverable,
		Logs:         logs,
	}
}
