package fault

import (
	"regexp"
	"strconv"
)

// Category buckets a failure for presentation purposes.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryNetwork    Category = "network"
	CategoryTool       Category = "tool"
	CategorySyntax     Category = "syntax"
	CategoryRuntime    Category = "runtime"
	CategoryUnknown    Category = "unknown"
)

// Enhanced carries the classified rendition of one raw failure message.  It is
// derived on demand and never persisted.
type Enhanced struct {
	Raw         string
	Message     string
	Category    Category
	Suggestions []string
	Recoverable bool
}

// rule pairs a pattern with a builder producing the classified result.  Rules
// are evaluated in declaration order; the first match wins.
type rule struct {
	pattern *regexp.Regexp
	build   func(raw string, match []string) *Enhanced
}

var rules = []rule{
	// HTTP-status failures come first so that status-specific copy beats the
	// generic keyword rules (a 429 body often also mentions retrying).
	{
		pattern: regexp.MustCompile(`(?i)\b(?:http|status(?:\s+code)?)\b[^0-9]{0,4}([45]\d{2})\b`),
		build:   classifyStatus,
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:timed?\s?-?\s?out|timeout|deadline exceeded)\b`),
		build: func(raw string, _ []string) *Enhanced {
			return &Enhanced{
				Raw:      raw,
				Message:  "The tool server took too long to respond.",
				Category: CategoryNetwork,
				Suggestions: []string{
					"Retry the request; the server may be under temporary load",
					"Increase the request timeout if the operation is known to be slow",
				},
				Recoverable: true,
			}
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)connection refused|connection reset|broken pipe|no such host|network is unreachable|dns|unexpected eof`),
		build: func(raw string, _ []string) *Enhanced {
			return &Enhanced{
				Raw:      raw,
				Message:  "The tool server could not be reached.",
				Category: CategoryNetwork,
				Suggestions: []string{
					"Check that the server URL is correct and the endpoint is running",
					"Verify network connectivity and retry",
				},
				Recoverable: true,
			}
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)unexpected token|invalid json|invalid character|parse error|syntax error|unexpected end of(?: json)? input`),
		build: func(raw string, _ []string) *Enhanced {
			return &Enhanced{
				Raw:      raw,
				Message:  "A payload could not be parsed.",
				Category: CategorySyntax,
				Suggestions: []string{
					"Check the arguments for malformed JSON",
					"Make sure string values are properly quoted and escaped",
				},
				Recoverable: true,
			}
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)validation|invalid (?:argument|parameter|input|value)|missing required|required (?:field|property|parameter)|does not match schema`),
		build: func(raw string, _ []string) *Enhanced {
			return &Enhanced{
				Raw:      raw,
				Message:  "The supplied arguments were rejected by the tool's parameter contract.",
				Category: CategoryValidation,
				Suggestions: []string{
					"Compare the arguments against the tool's parameter schema",
					"Provide all required fields with values of the declared types",
				},
				Recoverable: true,
			}
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)unknown tool|no such tool|tool\b.{0,40}\bnot (?:found|registered)|method not found`),
		build: func(raw string, _ []string) *Enhanced {
			return &Enhanced{
				Raw:      raw,
				Message:  "The requested tool is not available on any connected server.",
				Category: CategoryTool,
				Suggestions: []string{
					"List the registered tools to check the exact name",
					"Confirm the server advertising the tool connected successfully",
				},
				Recoverable: true,
			}
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)panic|nil pointer|index out of range|division by zero|runtime error|stack overflow`),
		build: func(raw string, _ []string) *Enhanced {
			return &Enhanced{
				Raw:      raw,
				Message:  "The tool failed while executing.",
				Category: CategoryRuntime,
				Suggestions: []string{
					"Retry with simpler arguments to narrow down the failing input",
					"Report the failure to the tool server operator",
				},
				Recoverable: true,
			}
		},
	},
}

// classifyStatus maps an HTTP status code to status-specific guidance.  Only
// authentication/authorization failures are flagged non-recoverable: retrying
// without new credentials cannot succeed.
func classifyStatus(raw string, match []string) *Enhanced {
	code, _ := strconv.Atoi(match[1])
	result := &Enhanced{Raw: raw, Category: CategoryNetwork, Recoverable: true}
	switch {
	case code == 401 || code == 403:
		result.Message = "The tool server rejected the request credentials."
		result.Suggestions = []string{
			"Check the configured authorization headers for this server",
			"Re-authenticate and reconnect before retrying",
		}
		result.Recoverable = false
	case code == 404:
		result.Category = CategoryTool
		result.Message = "The requested tool or resource was not found on the server."
		result.Suggestions = []string{
			"Verify the tool name and the server URL path",
			"Refresh the tool catalog; the server may have removed the tool",
		}
	case code == 429:
		result.Message = "The tool server is rate limiting requests."
		result.Suggestions = []string{
			"Wait a moment before retrying",
			"Reduce the request rate or batch the work",
		}
	case code >= 500:
		result.Message = "The tool server reported an internal error."
		result.Suggestions = []string{
			"Retry; upstream errors are often transient",
			"Check the server's status page or logs if the failure persists",
		}
	default:
		result.Message = "The tool server rejected the request."
		result.Suggestions = []string{
			"Check the request arguments against the tool's documentation",
		}
	}
	return result
}

// Classify maps a raw failure message to its user-facing rendition.  It is
// total: a message no rule recognises falls back to the unknown category with
// generic guidance and stays flagged recoverable.
func Classify(message string) *Enhanced {
	for _, r := range rules {
		if match := r.pattern.FindStringSubmatch(message); match != nil {
			return r.build(message, match)
		}
	}
	return &Enhanced{
		Raw:      message,
		Message:  "The operation failed.",
		Category: CategoryUnknown,
		Suggestions: []string{
			"Retry the operation",
			"Check the server configuration and logs for details",
		},
		Recoverable: true,
	}
}
