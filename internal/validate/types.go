// Package validate lints better-terminal config files
package validate

// Status represents the outcome of a validation item.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusPending
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusPending:
		return "pending"
	default:
		return "error"
	}
}

// Item represents a single validation result. Line is 0 for file-level items.
type Item struct {
	Name    string
	Line    int
	Status  Status
	Details string
}

// Result captures outcomes for a validation check.
type Result struct {
	Items    []Item
	Errors   []string
	Warnings []string
	Pending  []string
}

// AddItem appends an item with status and optional details.
func (r *Result) AddItem(status Status, name string, line int, details string) {
	r.Items = append(r.Items, Item{
		Name:    name,
		Line:    line,
		Status:  status,
		Details: details,
	})
	switch status {
	case StatusError:
		r.Errors = append(r.Errors, details)
	case StatusWarning:
		r.Warnings = append(r.Warnings, details)
	case StatusPending:
		r.Pending = append(r.Pending, details)
	}
}

// OK reports whether the check found no errors.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}
