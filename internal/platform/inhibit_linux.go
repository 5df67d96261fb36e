package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"
)

// powerd watches this directory; any file in it blocks suspend. The
// file name is the owning pid so stale entries can be reaped.
const powerdInhibitDir = "/var/run/powerd-inhibit-suspend"

// Older builds run the ohm power manager instead of powerd; its
// keystore exposes the inhibit flag over the system bus.
const (
	ohmService           = "org.freedesktop.ohm"
	ohmKeystorePath      = "/org/freedesktop/ohm/Keystore"
	ohmKeystoreInterface = "org.freedesktop.ohm.Keystore"
	ohmSuspendKey        = "suspend.inhibit"
)

type powerdInhibitor struct {
	dir string
}

// keystoreObject is the slice of dbus.BusObject the ohm inhibitor
// needs.
type keystoreObject interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

type ohmInhibitor struct {
	keystore keystoreObject
}

type unsupportedInhibitor struct{}

func newInhibitor() Inhibitor {
	if unix.Access(powerdInhibitDir, unix.W_OK) == nil {
		return &powerdInhibitor{dir: powerdInhibitDir}
	}
	conn, err := dbus.SystemBus()
	if err != nil {
		return unsupportedInhibitor{}
	}
	return &ohmInhibitor{keystore: conn.Object(ohmService, ohmKeystorePath)}
}

func (inhibitor *powerdInhibitor) flagPath() string {
	return filepath.Join(inhibitor.dir, strconv.Itoa(os.Getpid()))
}

func (inhibitor *powerdInhibitor) Inhibit() error {
	flag, err := os.OpenFile(inhibitor.flagPath(), os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("create powerd flag: %w", err)
	}
	return flag.Close()
}

func (inhibitor *powerdInhibitor) Allow() error {
	err := os.Remove(inhibitor.flagPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove powerd flag: %w", err)
	}
	return nil
}

func (inhibitor *ohmInhibitor) Inhibit() error {
	return inhibitor.setKey(1)
}

func (inhibitor *ohmInhibitor) Allow() error {
	return inhibitor.setKey(0)
}

func (inhibitor *ohmInhibitor) setKey(value int32) error {
	call := inhibitor.keystore.Call(ohmKeystoreInterface+".SetKey", 0, ohmSuspendKey, value)
	if call.Err != nil {
		return fmt.Errorf("ohm keystore: %w", call.Err)
	}
	return nil
}

func (unsupportedInhibitor) Inhibit() error { return ErrInhibitUnsupported }
func (unsupportedInhibitor) Allow() error   { return ErrInhibitUnsupported }
