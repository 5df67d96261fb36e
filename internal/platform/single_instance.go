package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another copy of the clock holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// AppLock is a held single-instance lock. The lock is a deterministic
// localhost port derived from the application name; the OS releases it
// even if the process dies without cleaning up.
type AppLock struct {
	listener net.Listener
	address  string
}

// LockApp takes the single-instance lock for the named application.
func LockApp(appName string) (*AppLock, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &AppLock{listener: listener, address: address}, nil
}

// Unlock releases the lock. Safe on a nil lock.
func (lock *AppLock) Unlock() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	return lock.listener.Close()
}

// Address returns the bound lock address, mainly for logging.
func (lock *AppLock) Address() string {
	if lock == nil {
		return ""
	}
	return lock.address
}

// lockPort hashes the application name into the private port range so
// unrelated applications using the same scheme cannot collide by
// accident.
func lockPort(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
