// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Preference operations
	OpPrefsLoad  Op = "load preferences"
	OpPrefsWatch Op = "watch preferences"

	// Persisted layout operations
	OpLayoutSave    Op = "save window layout"
	OpLayoutRestore Op = "restore window layout"

	// Transition operations
	OpTransitionPlan  Op = "plan layout transition"
	OpTransitionApply Op = "apply layout transition"

	// Player operations
	OpPlayerAttach Op = "attach playback engine"
	OpPlayerProbe  Op = "read video parameters"

	// Initialization
	OpInitialize Op = "initialize session"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
