package config

import "fmt"

// Priority is the issue priority flag. The empty value means the flag was
// not given and the field is left out of the request.
type Priority string

const (
	PriorityUnset  Priority = ""
	PriorityNone   Priority = "none"
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p *Priority) String() string {
	return string(*p)
}

// Set implements the pflag.Value interface.
func (p *Priority) Set(v string) error {
	switch Priority(v) {
	case PriorityNone, PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		*p = Priority(v)
	default:
		return fmt.Errorf("invalid priority %q (expected none|urgent|high|medium|low)", v)
	}
	return nil
}

// Type implements the pflag.Value interface.
func (p *Priority) Type() string {
	return "priority"
}
