//go:build darwin || linux

package device

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MachineIdentifier returns the machine field of uname(2). On iOS hardware
// this is the hardware identifier, e.g. "iPhone12,1".
func MachineIdentifier() (string, error) {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unix.ByteSliceToString(uname.Machine[:]), nil
}
