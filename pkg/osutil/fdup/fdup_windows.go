//go:build windows

package fdup

import (
	"strconv"

	"golang.org/x/sys/windows"

	gferrors "github.com/vnykmshr/byteflow/pkg/common/errors"
)

// Inheritable is a duplicated handle created with inheritance enabled, so
// child processes spawned after the duplication inherit it.
type Inheritable struct {
	handle windows.Handle
}

// Dup duplicates f's handle and marks the duplicate inheritable.
func Dup(f Filer) (*Inheritable, error) {
	cur := windows.CurrentProcess()
	var dup windows.Handle
	err := windows.DuplicateHandle(cur, windows.Handle(f.Fd()), cur, &dup, 0, true, windows.DUPLICATE_SAME_ACCESS)
	if err != nil {
		return nil, gferrors.NewOperationError("fdup", "Dup", err)
	}
	return &Inheritable{handle: dup}, nil
}

// Fd returns the raw handle value.
func (d *Inheritable) Fd() uintptr {
	return uintptr(d.handle)
}

// String renders the handle as a decimal, ready to hand to a child process
// on its command line or environment.
func (d *Inheritable) String() string {
	return strconv.FormatUint(uint64(d.handle), 10)
}

// Close releases the duplicate. The original handle is unaffected.
func (d *Inheritable) Close() error {
	if err := windows.CloseHandle(d.handle); err != nil {
		return gferrors.NewOperationError("fdup", "Close", err)
	}
	return nil
}
