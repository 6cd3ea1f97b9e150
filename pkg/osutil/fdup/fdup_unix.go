//go:build !windows

package fdup

import (
	"strconv"

	"golang.org/x/sys/unix"

	gferrors "github.com/vnykmshr/byteflow/pkg/common/errors"
)

// Inheritable is a duplicated file descriptor with close-on-exec cleared,
// so child processes spawned after the duplication inherit it.
type Inheritable struct {
	fd int
}

// Dup duplicates f's descriptor and marks the duplicate inheritable.
func Dup(f Filer) (*Inheritable, error) {
	fd, err := unix.Dup(int(f.Fd()))
	if err != nil {
		return nil, gferrors.NewOperationError("fdup", "Dup", err)
	}
	// Make sure the duplicate survives exec.
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFD, 0); err != nil {
		_ = unix.Close(fd)
		return nil, gferrors.NewOperationError("fdup", "Dup", err)
	}
	return &Inheritable{fd: fd}, nil
}

// Fd returns the raw descriptor.
func (d *Inheritable) Fd() uintptr {
	return uintptr(d.fd)
}

// String renders the descriptor as a decimal, ready to hand to a child
// process on its command line or environment.
func (d *Inheritable) String() string {
	return strconv.Itoa(d.fd)
}

// Close releases the duplicate. The original descriptor is unaffected.
func (d *Inheritable) Close() error {
	if err := unix.Close(d.fd); err != nil {
		return gferrors.NewOperationError("fdup", "Close", err)
	}
	return nil
}
