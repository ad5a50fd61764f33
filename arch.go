// Completion: 100% - Utility module complete
package uniasm

import (
	"fmt"
	"strings"
)

// Arch identifies a target instruction set.
type Arch int

const (
	ArchUnknown Arch = iota
	ArchA64          // AArch64, little-endian
	ArchP64          // 64-bit PowerPC, big-endian by default
)

func (a Arch) String() string {
	switch a {
	case ArchA64:
		return "a64"
	case ArchP64:
		return "p64"
	default:
		return "unknown"
	}
}

// ParseArch parses an architecture string.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "a64", "aarch64", "arm64":
		return ArchA64, nil
	case "p64", "ppc64", "powerpc64", "power":
		return ArchP64, nil
	default:
		return 0, fmt.Errorf("unsupported architecture: %s (supported: a64, p64)", s)
	}
}
