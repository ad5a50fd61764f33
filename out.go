// Completion: 95% - Neutral surface complete, x86-64 backend pending
package uniasm

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/multierr"
)

// Out is the architecture-neutral emission surface. Every mnemonic
// method expands to a deterministic sequence of native instruction
// units written to the code buffer: addressing preamble, displacement
// preamble, immediate preamble, load (for memory destinations), main
// unit, optional flag-setting unit, writeback.
//
// Out never fails at emission time. Operand misuse that would produce
// incorrect code (for example passing the implicit accumulator as the
// divisor of an XR divide) is recorded on a sticky error channel
// readable via Err.
type Out struct {
	arch Arch
	cfg  Config
	buf  *CodeBuffer
	be   backend
	err  error

	nextLabel int
}

// backend is the per-target kernel contract. The public wrappers are
// thin; everything bit-level lives behind this interface.
type backend interface {
	movRI(sz size, rd Reg, im Imm)
	movRR(sz size, rd, rs Reg)
	movMI(sz size, m Mem, d Disp, im Imm)
	movLD(sz size, sx bool, rd Reg, m Mem, d Disp)
	movST(sz size, rs Reg, m Mem, d Disp)

	binRI(op aluOp, sz size, setf bool, rd Reg, im Imm)
	binRR(op aluOp, sz size, setf bool, rd, rs Reg)
	binLD(op aluOp, sz size, setf bool, rd Reg, m Mem, d Disp)
	binST(op aluOp, sz size, setf bool, rs Reg, m Mem, d Disp)
	binMI(op aluOp, sz size, setf bool, m Mem, d Disp, im Imm)
	unRX(op aluOp, sz size, setf bool, rd Reg)
	unMX(op aluOp, sz size, setf bool, m Mem, d Disp)

	shfRI(op shOp, sz size, setf bool, rd Reg, cnt uint32)
	shfRR(op shOp, sz size, setf bool, rd, rs Reg)
	shfMI(op shOp, sz size, setf bool, m Mem, d Disp, cnt uint32)
	shfMR(op shOp, sz size, setf bool, m Mem, d Disp, rs Reg)

	mulRR(sz size, sg signKind, rd, rs Reg)
	mulLD(sz size, sg signKind, rd Reg, m Mem, d Disp)
	mulXR(sz size, sg signKind, rs Reg)
	mulXM(sz size, sg signKind, m Mem, d Disp)

	divRR(sz size, sg signKind, rd, rs Reg)
	divRI(sz size, sg signKind, rd Reg, im Imm)
	divLD(sz size, sg signKind, rd Reg, m Mem, d Disp)
	remRR(sz size, sg signKind, rd, rs Reg)
	remRI(sz size, sg signKind, rd Reg, im Imm)
	remLD(sz size, sg signKind, rd Reg, m Mem, d Disp)
	divXR(sz size, sg signKind, rs Reg)
	divXM(sz size, sg signKind, m Mem, d Disp)

	cmpRR(sz size, rs1, rs2 Reg)
	cmpRI(sz size, rs Reg, im Imm)
	cmpRM(sz size, rs Reg, m Mem, d Disp)
	cmpMR(sz size, m Mem, d Disp, rs Reg)
	cmpMI(sz size, m Mem, d Disp, im Imm)

	cmpc(sz size, cc Cond, rs1, rs2 Reg)
	cmpci(sz size, cc Cond, rs Reg, im Imm)
	loadTM(sz size, m Mem, d Disp)
	jcc(cc Cond, lb *Label)
	jz(sz size, cc Cond, rs Reg, lb *Label)
	jmp(lb *Label)

	stackSt(r Reg)
	stackLd(r Reg)
	stackSa()
	stackLa()

	bind(lb *Label)
	finalize() error
}

// NewOut creates an emitter for the given target. The configuration is
// immutable for the lifetime of the emitter.
func NewOut(arch Arch, cfg Config) (*Out, error) {
	o := &Out{arch: arch, cfg: cfg}
	switch arch {
	case ArchA64:
		o.buf = NewCodeBuffer("a64", binary.LittleEndian)
		o.be = newA64(o)
	case ArchP64:
		order := binary.ByteOrder(binary.BigEndian)
		if cfg.LittleEndian {
			order = binary.LittleEndian
		}
		o.buf = NewCodeBuffer("p64", order)
		o.be = newP64(o)
	default:
		return nil, fmt.Errorf("unsupported architecture: %v", arch)
	}
	return o, nil
}

// Arch returns the selected target.
func (o *Out) Arch() Arch { return o.arch }

// Config returns the immutable configuration.
func (o *Out) Config() Config { return o.cfg }

// Buffer exposes the underlying code buffer for hosts that stream the
// bytes somewhere else.
func (o *Out) Buffer() *CodeBuffer { return o.buf }

// Len returns the number of bytes emitted so far.
func (o *Out) Len() int { return o.buf.Len() }

// NewLabel allocates an unbound label.
func (o *Out) NewLabel() *Label {
	o.nextLabel++
	return &Label{id: o.nextLabel}
}

// Label binds lb to the current position.
func (o *Out) Label(lb *Label) {
	o.be.bind(lb)
}

// Jmpxx emits an unconditional jump to lb.
func (o *Out) Jmpxx(lb *Label) {
	o.be.jmp(lb)
}

// Finalize resolves every pending branch and commits the buffer. After
// Finalize the byte stream is stable and Bytes may be handed to the
// host.
func (o *Out) Finalize() error {
	if err := o.be.finalize(); err != nil {
		o.fault(err)
	}
	o.buf.Commit()
	return o.err
}

// Bytes finalizes (if needed) and returns the emitted stream.
func (o *Out) Bytes() ([]byte, error) {
	if !o.buf.IsCommitted() {
		if err := o.Finalize(); err != nil {
			return nil, err
		}
	}
	return o.buf.Bytes(), o.err
}

// Err returns the accumulated misuse errors, if any.
func (o *Out) Err() error { return o.err }

// fault records a misuse without interrupting emission.
func (o *Out) fault(err error) {
	o.err = multierr.Append(o.err, err)
}

func (o *Out) misuse(format string, args ...interface{}) {
	o.fault(fmt.Errorf(format, args...))
}
