package apispec

import (
	"strings"
	"testing"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name  string
		specs []EndpointSpec
		want  []string // Substrings, one per expected warning, in order
	}{
		{
			name: "clean",
			specs: []EndpointSpec{
				{Name: "getUser", Method: "get", Parameters: []Parameter{{Name: "id"}}},
				{Name: "createUser", Method: "POST"},
				{Name: "ping"},
			},
		},
		{
			name:  "typo suggests method",
			specs: []EndpointSpec{{Name: "createUser", Method: "PSOT"}},
			want:  []string{`unsupported method "PSOT", using GET. Did you mean 'POST'?`},
		},
		{
			name:  "unknown method without suggestion",
			specs: []EndpointSpec{{Name: "patchUser", Method: "OPTIONS"}},
			want:  []string{`unsupported method "OPTIONS", using GET`},
		},
		{
			name: "duplicate endpoint after normalization",
			specs: []EndpointSpec{
				{Name: "get User"},
				{Name: "getUser"},
			},
			want: []string{"already used by spec 0"},
		},
		{
			name: "two unnamed endpoints",
			specs: []EndpointSpec{{}, {Name: "  "}},
			want:  []string{"already used by spec 0"},
		},
		{
			name: "duplicate parameter",
			specs: []EndpointSpec{{
				Name:       "search",
				Parameters: []Parameter{{Name: "q"}, {Name: "q", Type: "Integer"}, {}, {}},
			}},
			want: []string{`parameter "q" declared more than once`, `parameter "param" declared more than once`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lint(tt.specs)
			if len(got) != len(tt.want) {
				t.Fatalf("Lint returned %d warnings, want %d: %v", len(got), len(tt.want), got)
			}
			for i, w := range got {
				if !strings.Contains(w.Message, tt.want[i]) {
					t.Errorf("warning %d = %q, want it to contain %q", i, w.Message, tt.want[i])
				}
			}
		})
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Index: 2, Endpoint: "getUser", Message: "oops"}
	if got := w.String(); got != "spec 2 (getUser): oops" {
		t.Errorf("String() = %q", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"GET", "GET", 0},
		{"", "PUT", 3},
		{"PUT", "", 3},
		{"kitten", "sitting", 3},
		{"PSOT", "POST", 2},
		{"DELTE", "DELETE", 1},
	}

	for _, tc := range tests {
		t.Run(tc.a+"_vs_"+tc.b, func(t *testing.T) {
			if got := levenshtein(tc.a, tc.b); got != tc.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSuggestMethod(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gte", "GET"},
		{"DELTE", "DELETE"},
		{"PUTT", "PUT"},
		{"CONNECT", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := suggestMethod(tt.input); got != tt.want {
				t.Errorf("suggestMethod(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
