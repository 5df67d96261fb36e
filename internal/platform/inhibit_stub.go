//go:build !linux

package platform

type unsupportedInhibitor struct{}

func newInhibitor() Inhibitor {
	return unsupportedInhibitor{}
}

func (unsupportedInhibitor) Inhibit() error { return ErrInhibitUnsupported }
func (unsupportedInhibitor) Allow() error   { return ErrInhibitUnsupported }
