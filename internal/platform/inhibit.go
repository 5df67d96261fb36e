package platform

import "errors"

// ErrInhibitUnsupported indicates the host has no suspend inhibition
// facility the clock knows how to drive.
var ErrInhibitUnsupported = errors.New("suspend inhibition unsupported")

// Inhibitor keeps the machine awake while the clock is on screen.
type Inhibitor interface {
	// Inhibit asks the power manager not to suspend.
	Inhibit() error
	// Allow withdraws the request.
	Allow() error
}

// NewInhibitor returns a platform-specific suspend inhibitor.
func NewInhibitor() Inhibitor {
	return newInhibitor()
}
