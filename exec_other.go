// Completion: 100% - Executable memory stub for non-mmap platforms
//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package uniasm

import "fmt"

// ExecBuffer is not available on this platform; emit to a file and
// link it instead.
type ExecBuffer struct{}

func NewExecBuffer(o *Out) (*ExecBuffer, error) {
	return nil, fmt.Errorf("executable memory is not supported on this platform")
}

func (e *ExecBuffer) Addr() uintptr { return 0 }

func (e *ExecBuffer) Close() error { return nil }
