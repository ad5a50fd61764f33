// Completion: 100% - Emission sink module complete
package uniasm

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Writer is the emission sink contract. Fixed-width targets emit
// 32-bit units through WriteWord; variable-width targets mix WriteByte
// and WriteHalf. Units are written strictly in program order.
type Writer interface {
	WriteWord(w uint32)
	WriteHalf(h uint16)
	WriteByte(b byte)
	Len() int
}

// CodeBuffer is the default Writer: an append-only instruction buffer
// with explicit lifecycle management to prevent reset bugs. It tracks
// whether the buffer has been committed and refuses writes afterwards.
// Branch resolution patches words in place before commit.
type CodeBuffer struct {
	buf       []byte
	order     binary.ByteOrder
	committed bool
	name      string // for debugging
}

// NewCodeBuffer creates a CodeBuffer with a name for debugging and the
// byte order the target mandates.
func NewCodeBuffer(name string, order binary.ByteOrder) *CodeBuffer {
	return &CodeBuffer{
		buf:   make([]byte, 0, 1024),
		order: order,
		name:  name,
	}
}

// WriteWord appends one 32-bit instruction unit.
func (cb *CodeBuffer) WriteWord(w uint32) {
	cb.mustNotBeCommitted()
	var b [4]byte
	cb.order.PutUint32(b[:], w)
	cb.buf = append(cb.buf, b[:]...)
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " %08x", w)
	}
}

// WriteHalf appends one 16-bit unit.
func (cb *CodeBuffer) WriteHalf(h uint16) {
	cb.mustNotBeCommitted()
	var b [2]byte
	cb.order.PutUint16(b[:], h)
	cb.buf = append(cb.buf, b[:]...)
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " %04x", h)
	}
}

// WriteByte appends a single byte.
func (cb *CodeBuffer) WriteByte(b byte) {
	cb.mustNotBeCommitted()
	cb.buf = append(cb.buf, b)
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " %02x", b)
	}
}

// Len returns the current length in bytes.
func (cb *CodeBuffer) Len() int {
	return len(cb.buf)
}

// Bytes returns the buffer contents. Safe to call after commit.
func (cb *CodeBuffer) Bytes() []byte {
	return cb.buf
}

// Word reads back the 32-bit unit at byte offset off.
func (cb *CodeBuffer) Word(off int) uint32 {
	return cb.order.Uint32(cb.buf[off:])
}

// PatchWord overwrites the 32-bit unit at byte offset off. Used by
// label resolution; panics after commit.
func (cb *CodeBuffer) PatchWord(off int, w uint32) {
	cb.mustNotBeCommitted()
	cb.order.PutUint32(cb.buf[off:], w)
}

// Commit marks the buffer as complete. After this, no more writes or
// patches are allowed.
func (cb *CodeBuffer) Commit() {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "\nCodeBuffer(%s): committed with %d bytes\n", cb.name, len(cb.buf))
	}
	cb.committed = true
}

// Reset clears the buffer and uncommits it. Safe to call anytime.
func (cb *CodeBuffer) Reset() {
	cb.buf = cb.buf[:0]
	cb.committed = false
}

// IsCommitted returns true if the buffer has been committed.
func (cb *CodeBuffer) IsCommitted() bool {
	return cb.committed
}

func (cb *CodeBuffer) mustNotBeCommitted() {
	if cb.committed {
		panic(fmt.Sprintf("CodeBuffer(%s): write to committed buffer", cb.name))
	}
}
