package apispec

import (
	"fmt"
	"strings"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" hint. Method names are short, so anything further is noise.
const maxSuggestDistance = 2

var knownMethods = []string{string(MethodGet), string(MethodPost), string(MethodPut), string(MethodDelete)}

// Warning flags a spec that still generates but probably not as intended.
type Warning struct {
	Index    int    // Position in the input list
	Endpoint string // Normalized endpoint name
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("spec %d (%s): %s", w.Index, w.Endpoint, w.Message)
}

// Lint reports specs whose output will surprise the caller: a method that
// silently falls back to GET, an endpoint name used more than once, or a
// parameter name repeated within one endpoint. Generation proceeds either
// way.
func Lint(specs []EndpointSpec) []Warning {
	var warnings []Warning
	firstSeen := make(map[string]int)

	for i, s := range specs {
		e := s.Normalize()

		if raw := strings.TrimSpace(s.Method); raw != "" && !isKnownMethod(raw) {
			msg := fmt.Sprintf("unsupported method %q, using GET", raw)
			if suggestion := suggestMethod(raw); suggestion != "" {
				msg += fmt.Sprintf(". Did you mean '%s'?", suggestion)
			}
			warnings = append(warnings, Warning{Index: i, Endpoint: e.Name, Message: msg})
		}

		if prev, dup := firstSeen[e.Name]; dup {
			warnings = append(warnings, Warning{
				Index:    i,
				Endpoint: e.Name,
				Message:  fmt.Sprintf("endpoint name already used by spec %d; the generated mappings will conflict", prev),
			})
		} else {
			firstSeen[e.Name] = i
		}

		params := make(map[string]struct{}, len(e.Params))
		for _, p := range e.Params {
			if _, dup := params[p.Name]; dup {
				warnings = append(warnings, Warning{
					Index:    i,
					Endpoint: e.Name,
					Message:  fmt.Sprintf("parameter %q declared more than once", p.Name),
				})
				continue
			}
			params[p.Name] = struct{}{}
		}
	}
	return warnings
}

func isKnownMethod(raw string) bool {
	upper := strings.ToUpper(raw)
	for _, m := range knownMethods {
		if upper == m {
			return true
		}
	}
	return false
}

// suggestMethod returns the closest supported method, or "" when none is
// within maxSuggestDistance.
func suggestMethod(raw string) string {
	upper := strings.ToUpper(raw)
	best, bestDist := "", -1
	for _, m := range knownMethods {
		d := levenshtein(upper, m)
		if bestDist < 0 || d < bestDist {
			best, bestDist = m, d
		}
	}
	if bestDist >= 0 && bestDist <= maxSuggestDistance {
		return best
	}
	return ""
}

// levenshtein computes the edit distance between a and b, byte-wise.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two rows instead of the full matrix.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
