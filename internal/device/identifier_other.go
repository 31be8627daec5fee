//go:build !darwin && !linux

package device

import (
	"fmt"
	"runtime"
)

func MachineIdentifier() (string, error) {
	return "", fmt.Errorf("machine identifier not supported on %s", runtime.GOOS)
}
