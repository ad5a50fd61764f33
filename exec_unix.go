// Completion: 100% - Executable memory module complete
//go:build linux || darwin || freebsd || netbsd || openbsd

package uniasm

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ExecBuffer is a finalized code stream copied into executable memory.
// It only makes sense when the emitting process runs on the target
// architecture; cross-emitted streams should be written to disk
// instead.
type ExecBuffer struct {
	mem []byte
}

// NewExecBuffer maps the finalized stream of o into a fresh
// anonymous mapping and flips it to read-execute.
func NewExecBuffer(o *Out) (*ExecBuffer, error) {
	code, err := o.Bytes()
	if err != nil {
		return nil, err
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("empty code stream")
	}
	mem, err := unix.Mmap(-1, 0, len(code),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		unix.Munmap(mem)
		return nil, fmt.Errorf("mprotect: %w", err)
	}
	return &ExecBuffer{mem: mem}, nil
}

// Addr returns the entry address of the mapped code.
func (e *ExecBuffer) Addr() uintptr {
	return uintptr(unsafe.Pointer(&e.mem[0]))
}

// Close unmaps the code.
func (e *ExecBuffer) Close() error {
	if e.mem == nil {
		return nil
	}
	err := unix.Munmap(e.mem)
	e.mem = nil
	return err
}
