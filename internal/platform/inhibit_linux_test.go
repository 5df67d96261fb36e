package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestPowerdInhibitorWritesPidFlag(t *testing.T) {
	inhibitor := &powerdInhibitor{dir: t.TempDir()}

	if err := inhibitor.Inhibit(); err != nil {
		t.Fatalf("Inhibit: %v", err)
	}
	flag := filepath.Join(inhibitor.dir, strconv.Itoa(os.Getpid()))
	if _, err := os.Stat(flag); err != nil {
		t.Fatalf("flag file missing: %v", err)
	}

	if err := inhibitor.Allow(); err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if _, err := os.Stat(flag); !os.IsNotExist(err) {
		t.Fatalf("flag file should be gone, stat: %v", err)
	}
}

func TestPowerdAllowWithoutInhibit(t *testing.T) {
	inhibitor := &powerdInhibitor{dir: t.TempDir()}
	if err := inhibitor.Allow(); err != nil {
		t.Fatalf("Allow without a flag should be a noop, got %v", err)
	}
}

// fakeKeystore records keystore calls instead of talking to the bus.
type fakeKeystore struct {
	calls []*dbus.Call
	err   error
}

func (keystore *fakeKeystore) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	call := &dbus.Call{Method: method, Args: args, Err: keystore.err}
	keystore.calls = append(keystore.calls, call)
	return call
}

func TestOhmInhibitorSetsSuspendKey(t *testing.T) {
	keystore := &fakeKeystore{}
	inhibitor := &ohmInhibitor{keystore: keystore}

	if err := inhibitor.Inhibit(); err != nil {
		t.Fatalf("Inhibit: %v", err)
	}
	if err := inhibitor.Allow(); err != nil {
		t.Fatalf("Allow: %v", err)
	}

	if len(keystore.calls) != 2 {
		t.Fatalf("expected two keystore calls, got %d", len(keystore.calls))
	}
	for i, wantValue := range []int32{1, 0} {
		call := keystore.calls[i]
		if call.Method != ohmKeystoreInterface+".SetKey" {
			t.Errorf("call %d used method %q", i, call.Method)
		}
		if call.Args[0] != ohmSuspendKey || call.Args[1] != interface{}(wantValue) {
			t.Errorf("call %d args = %v, want [%s %d]", i, call.Args, ohmSuspendKey, wantValue)
		}
	}
}

func TestOhmInhibitorReportsBusErrors(t *testing.T) {
	busErr := errors.New("service unknown")
	inhibitor := &ohmInhibitor{keystore: &fakeKeystore{err: busErr}}

	if err := inhibitor.Inhibit(); !errors.Is(err, busErr) {
		t.Fatalf("Inhibit should wrap the bus error, got %v", err)
	}
}
