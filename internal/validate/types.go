// Package validate checks nohrs configuration, persisted state and the
// declared settings tree.
package validate

// Status represents the outcome of a validation item.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusPending
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusPending:
		return "skipped"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Item represents a single validation result.
type Item struct {
	Name    string
	Status  Status
	Details string
}

// Result captures outcomes for a validation check.
type Result struct {
	Section  string
	Items    []Item
	Errors   []string
	Warnings []string
	Pending  []string
}

// AddItem appends an item with status and optional details.
func (r *Result) AddItem(status Status, name, details string) {
	r.Items = append(r.Items, Item{
		Name:    name,
		Status:  status,
		Details: details,
	})
}

// AddError records an error message.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning records a warning message.
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddPending records a pending message.
func (r *Result) AddPending(msg string) {
	r.Pending = append(r.Pending, msg)
}

// Failed reports whether any error was recorded.
func (r Result) Failed() bool {
	return len(r.Errors) > 0
}
