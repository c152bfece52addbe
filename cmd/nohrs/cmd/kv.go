package cmd

import (
	"fmt"
	"strings"
)

// assignment is one "Label=value" pair given to settings set.
type assignment struct {
	Label string
	Value string
}

func (a assignment) String() string {
	return fmt.Sprintf("%s=%s", a.Label, a.Value)
}

// parseAssignments accepts either a single "Label value" pair or any number
// of "Label=value" items. Order is preserved so later writes win.
func parseAssignments(args []string) ([]assignment, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("nothing to set (expected LABEL=VALUE)")
	}
	if len(args) == 2 && !strings.Contains(args[0], "=") {
		label := strings.TrimSpace(args[0])
		if label == "" {
			return nil, fmt.Errorf("invalid format %q (empty label)", args[0])
		}
		return []assignment{{Label: label, Value: args[1]}}, nil
	}

	result := make([]assignment, 0, len(args))
	for _, item := range args {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		label, value, err := splitKeyValue(trimmed)
		if err != nil {
			return nil, err
		}
		result = append(result, assignment{Label: label, Value: value})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("nothing to set (expected LABEL=VALUE)")
	}
	return result, nil
}

func formatAssignments(values []assignment) string {
	pairs := make([]string, 0, len(values))
	for _, a := range values {
		pairs = append(pairs, a.String())
	}
	return strings.Join(pairs, ", ")
}

func splitKeyValue(value string) (string, string, error) {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format %q (expected LABEL=VALUE)", value)
	}
	key := strings.TrimSpace(parts[0])
	val := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmt.Errorf("invalid format %q (empty label)", value)
	}
	return key, val, nil
}
