package runner

import "time"

// Result contains the outcome of a single operation run
type Result struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	Args      []string  `json:"args"`
	Output    string    `json:"output"`          // Formatted value, empty on failure
	Value     any       `json:"value,omitempty"` // Typed value returned by the operation
	Error     string    `json:"error,omitempty"`
	Err       error     `json:"-"`
}

// OK reports whether the operation succeeded
func (r Result) OK() bool {
	return r.Err == nil
}
