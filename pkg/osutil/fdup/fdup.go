// Package fdup duplicates file descriptors and handles so that child
// processes inherit them.
//
// Descriptors opened by Go are close-on-exec, so a child process cannot see
// them. Dup produces an inheritable duplicate whose numeric value can be
// passed to the child, typically through an argument or environment
// variable:
//
//	d, err := fdup.Dup(pipe)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Close()
//
//	cmd := exec.Command("helper", "--status-fd", d.String())
//
// The duplicate is independent of the original: closing one does not affect
// the other.
package fdup

// Filer is anything exposing a raw descriptor or handle, such as *os.File.
type Filer interface {
	Fd() uintptr
}
