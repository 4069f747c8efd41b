// Package agent defines the monitored entity records supplied by the health
// poller and consumed read-only by the ecosystem view.
package agent

import (
	"math"
	"strconv"
	"strings"
)

// Status is the health classification reported for an agent.
type Status string

const (
	StatusAlive       Status = "alive"
	StatusCritical    Status = "critical"
	StatusDead        Status = "dead"
	StatusUnreachable Status = "unreachable"
)

// ParseStatus normalizes a reported status. Unrecognized values map to alive.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusCritical:
		return StatusCritical
	case StatusDead:
		return StatusDead
	case StatusUnreachable:
		return StatusUnreachable
	default:
		return StatusAlive
	}
}

// Record is one agent as reported by the external collaborator.
type Record struct {
	Name      string  `json:"name" yaml:"name"`
	Status    Status  `json:"status" yaml:"status"`
	Balance   float64 `json:"balance" yaml:"balance"`
	DaysAlive int     `json:"daysAlive" yaml:"daysAlive"`
	Chain     string  `json:"chain" yaml:"chain"`
	KeyOrigin string  `json:"keyOrigin" yaml:"keyOrigin"`
	URL       string  `json:"url,omitempty" yaml:"url,omitempty"`
}

// Clamp returns a copy with malformed fields coerced into range: negative or
// non-finite balances become zero, negative ages become zero, and the status is
// normalized.
func (r Record) Clamp() Record {
	r.Status = ParseStatus(string(r.Status))
	if math.IsNaN(r.Balance) || math.IsInf(r.Balance, 0) || r.Balance < 0 {
		r.Balance = 0
	}
	if r.DaysAlive < 0 {
		r.DaysAlive = 0
	}
	return r
}

// ClampAll applies Clamp to every record, returning a new slice.
func ClampAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clamp()
	}
	return out
}

// Equal reports whether two ordered agent lists are identical.
func Equal(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FormatBalance renders a USD balance compactly, e.g. "$42", "$1.2k", "$3.4M".
func FormatBalance(v float64) string {
	switch {
	case v >= 1e6:
		return "$" + strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case v >= 1e3:
		return "$" + strconv.FormatFloat(v/1e3, 'f', 1, 64) + "k"
	case v >= 10 || v == 0:
		return "$" + strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return "$" + strconv.FormatFloat(v, 'f', 2, 64)
	}
}
