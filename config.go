// Completion: 100% - Configuration module complete
package uniasm

import (
	"github.com/xyproto/env/v2"
)

// VerboseMode enables the hex trace of every emitted unit on stderr.
// It defaults to the UNIASM_VERBOSE environment variable and may be
// toggled by the host before emission starts.
var VerboseMode = env.Bool("UNIASM_VERBOSE")

// Config is the immutable configuration surface established before any
// mnemonic is expanded.
type Config struct {
	// BaseWidth is the element width class in bytes (1, 2, 4 or 8).
	// The BASE core aligns displacements to each access width on its
	// own; the flag is carried for the SIMD layer above it.
	BaseWidth uint32

	// AddrWidth is the address width class in bytes (4 or 8).
	AddrWidth uint32

	// PointerWidth is the pointer width class in bytes (4 or 8).
	PointerWidth uint32

	// LittleEndian forces little-endian instruction units on targets
	// that support both orders (POWER8 and later). AArch64 output is
	// always little-endian.
	LittleEndian bool

	// CompatPW8 selects the POWER8 64-bit-element opcode set where the
	// target offers a choice. The BASE core carries the flag for the
	// SIMD layer above it; no BASE opcode depends on it.
	CompatPW8 bool
}

// DefaultConfig returns the standard 64-bit configuration, honouring
// UNIASM_BASE when set.
func DefaultConfig() Config {
	return Config{
		BaseWidth:    uint32(env.Int("UNIASM_BASE", 4)),
		AddrWidth:    8,
		PointerWidth: 8,
	}
}
