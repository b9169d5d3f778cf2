package nameutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBaseName is used when a blank base name is supplied.
const DefaultBaseName = "boa_hackathon_project"

// serialSeparator joins a base name and its serial.
const serialSeparator = "_"

// NormalizeBase strips any serial suffix from a project base name so that
// "foo", "foo_1", "foo_01" and "foo7" all converge on "foo". Trailing
// underscores are stripped too. A blank result falls back to
// DefaultBaseName. NormalizeBase(NormalizeBase(s)) == NormalizeBase(s).
func NormalizeBase(base string) string {
	base = strings.TrimSpace(base)
	// Stripping to a fixed point: "foo_1_2" and "foo2024_3" reduce fully.
	base = strings.TrimRight(base, "_0123456789")
	if base == "" {
		return DefaultBaseName
	}
	return base
}

// ProjectName joins a base name and a serial: ProjectName("proj", 4) == "proj_4".
func ProjectName(base string, serial int) string {
	return base + serialSeparator + strconv.Itoa(serial)
}

// ResolveNext returns the next unused project directory name for base,
// given the names already present in the target directory.
//
// Both the current convention (base_<digits>) and the legacy one
// (base<digits>, no separator) are scanned. The returned serial is one
// greater than the highest serial found, or 1 when nothing matches.
func ResolveNext(base string, existing []string) string {
	base = NormalizeBase(base)
	return ProjectName(base, MaxSerial(base, existing)+1)
}

// MaxSerial returns the highest serial among existing names that match base
// under either naming convention, or 0 when none match. base must already
// be normalized. Serials that leave no successor in int range are ignored,
// so MaxSerial(...)+1 is always positive.
func MaxSerial(base string, existing []string) int {
	current, legacy := serialPatterns(base)

	highest := 0
	for _, name := range existing {
		m := current.FindStringSubmatch(name)
		if m == nil {
			m = legacy.FindStringSubmatch(name)
		}
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n == math.MaxInt {
			// Out of int range, or no room for a successor.
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

func serialPatterns(base string) (current, legacy *regexp.Regexp) {
	quoted := regexp.QuoteMeta(base)
	current = regexp.MustCompile(`^` + quoted + regexp.QuoteMeta(serialSeparator) + `(\d+)$`)
	legacy = regexp.MustCompile(`^` + quoted + `(\d+)$`)
	return current, legacy
}
