package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseWindow parses a human-friendly span of days (for example "10d", "2w"
// or "1w3d") and returns the number of days along with a canonical, compact
// representation. An empty input means no window and returns zero.
func ParseWindow(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, "", nil
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", valueStr, err)
		}
		base, ok := unitDays[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", unitStr)
		}
		total += value * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}

	return total, FormatWindow(total), nil
}

// FormatWindow renders a number of days using week and day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	var parts []string
	if w := days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return strings.Join(parts, "")
}
