package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceLock keeps one process per app ID by holding a loopback port
// derived from the ID.
type InstanceLock struct {
	appID    string
	listener net.Listener
}

// AcquireInstanceLock binds the port for appID or reports ErrAlreadyRunning.
func AcquireInstanceLock(appID string) (*InstanceLock, error) {
	listener, err := net.Listen("tcp", LockAddress(appID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, appID)
	}
	return &InstanceLock{appID: appID, listener: listener}, nil
}

// Release frees the lock. Safe on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// LockAddress returns the loopback address reserved for appID.
func LockAddress(appID string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appID))
	span := uint32(maxLockPort - minLockPort + 1)
	return fmt.Sprintf("127.0.0.1:%d", minLockPort+int(hash.Sum32()%span))
}
