package ldse

import "fmt"

// ConfigError is returned by Init when the workload, architecture, or
// mapping is malformed — missing ranks, a level count mismatch, or an
// unparseable input. Fatal; the caller should abort.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ldse: configuration error: %s", e.Reason)
}

func newConfigError(reason string) error {
	return &ConfigError{Reason: reason}
}

// RangeError is returned by Materialize when split_id or pack_id falls
// outside the enumerated space. Programmer error; the caller should fix
// its enumeration loop rather than retry.
type RangeError struct {
	Reason string
	Index  uint64
	Limit  uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ldse: index %d out of range [0,%d): %s", e.Index, e.Limit, e.Reason)
}

func newRangeError(reason string, index, limit uint64) error {
	return &RangeError{Reason: reason, Index: index, Limit: limit}
}

// LayoutViolationError is returned by Materialize when the transformed
// layout fails the line-capacity invariant, or a split/pack factor fails
// its divisibility precondition. The caller discards the candidate and
// continues serving other IDs; the engine itself does not retry.
type LayoutViolationError struct {
	Reason string
}

func (e *LayoutViolationError) Error() string {
	return fmt.Sprintf("ldse: layout violation: %s", e.Reason)
}

func newLayoutViolationError(reason string) error {
	return &LayoutViolationError{Reason: reason}
}
