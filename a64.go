// Completion: 100% - AArch64 BASE kernel complete
package uniasm

// AArch64 kernel. Fixed 32-bit units, little-endian. The 64-bit form
// of most data-processing instructions is the 32-bit form with the sf
// bit (bit 31) set, which keeps the opcode tables small.
//
// Scratch usage per expansion:
//
//	TPxx (x18) - fused base+index address
//	TDxx (x17) - materialised displacement
//	TIxx (x16) - materialised immediate, second div/rem temp
//	TMxx (x15) - loaded memory operand, div/rem quotient, mul high part
type a64 struct {
	out    *Out
	cb     *CodeBuffer
	relocs []reloc
}

func newA64(o *Out) *a64 {
	return &a64{out: o, cb: o.buf}
}

func (k *a64) emit(w uint32) { k.cb.WriteWord(w) }

func (k *a64) r(r Reg) uint32 { return a64Regs[r] }

// sf returns the 64-bit operand-size bit for data-processing opcodes.
func sf(sz size) uint32 {
	if sz == szX {
		return 0x80000000
	}
	return 0
}

// ---------------------------------------------------------------------
// Immediate classification and materialisation

// Type tags: 0 = payload fits the main unit's field, 1 = one-word
// preamble (movz), 2 = two-word preamble (movz+movk). The mapping
// depends on the field the instruction class offers.

// immTagArith maps a class against the 12-bit unsigned field of the
// add/sub immediate forms.
func (k *a64) immTagArith(im Imm) int {
	switch im.cls {
	case immC, immB, immM:
		return 0
	case immG, immH:
		return 1
	default:
		return 2
	}
}

// immTagLogic maps a class for the logical instructions. Their
// immediate form takes bitmask patterns, not plain payloads, so every
// immediate is materialised; classes up to 16 bits need one word.
func (k *a64) immTagLogic(im Imm) int {
	switch im.cls {
	case immC, immB, immM, immG, immH:
		return 1
	default:
		return 2
	}
}

// immTagMov maps a class against the 16-bit movz field.
func (k *a64) immTagMov(im Imm) int {
	switch im.cls {
	case immV, immW:
		return 2
	default:
		return 0
	}
}

// ldImm materialises a 32-bit payload into rt with movz, plus movk for
// the high half when the tag demands two words. The w forms are used
// so the upper 32 bits of the scratch are zeroed.
func (k *a64) ldImm(rt Reg, val uint32, tag int) {
	k.emit(0x52800000 | (val&0xFFFF)<<5 | k.r(rt)) // movz
	if tag == 2 {
		k.emit(0x72A00000 | (val>>16)<<5 | k.r(rt)) // movk #16
	}
}

// ---------------------------------------------------------------------
// Addressing

// memRef is a resolved addressing mode: an effective base plus either
// an inline scaled offset or the displacement temp.
type memRef struct {
	base   Reg
	field  uint32 // byte offset, inline form only
	useReg bool   // register-offset form through TDxx
}

// ldstOp carries the opcode pair of one access width.
type ldstOp struct {
	imm uint32 // unsigned scaled-offset form
	reg uint32 // register-offset form (TDxx)
	sc  uint32 // log2 of the access size
}

var a64Loads = map[size]ldstOp{
	szX: {0xF9400000, 0xF8606800, 3}, // ldr
	szW: {0xB9400000, 0xB8606800, 2}, // ldr (w)
	szH: {0x79400000, 0x78606800, 1}, // ldrh
	szB: {0x39400000, 0x38606800, 0}, // ldrb
}

// Sign-extending loads. Half and byte extend into the 32-bit result,
// the word load extends into the 64-bit result.
var a64LoadsSX = map[size]ldstOp{
	szW: {0xB9800000, 0xB8A06800, 2}, // ldrsw
	szH: {0x79C00000, 0x78E06800, 1}, // ldrsh (w)
	szB: {0x39C00000, 0x38E06800, 0}, // ldrsb (w)
}

var a64Stores = map[size]ldstOp{
	szX: {0xF9000000, 0xF8206800, 3}, // str
	szW: {0xB9000000, 0xB8206800, 2}, // str (w)
	szH: {0x79000000, 0x78206800, 1}, // strh
	szB: {0x39000000, 0x38206800, 0}, // strb
}

// resolveMem emits the addressing and displacement preambles and
// returns the resolved reference. Preamble order is fixed: index
// fusion first, displacement materialisation second. The displacement
// is aligned down to the access width, so the inline scaled-offset
// form is always legal for the classes that stay inline. Tags follow
// the constructor class, mirroring the immediate classifiers: P and E
// fit the 12-bit scaled field, F/G/H cost one movz, V costs the pair.
// The returned reference is position-independent, so the writeback of
// a load-modify-store expansion reuses it bit for bit.
func (k *a64) resolveMem(m Mem, d Disp, sc uint32) memRef {
	base := m.base
	if m.hasIx {
		// add TPxx, base, index, lsl #scale
		k.emit(0x8B000000 | k.r(m.index)<<16 | uint32(m.scale)<<10 | k.r(m.base)<<5 | k.r(TPxx))
		base = TPxx
	}
	v := d.alignTo(1 << sc)
	switch d.cls {
	case dispP, dispE:
		return memRef{base: base, field: v}
	case dispV:
		k.ldImm(TDxx, v, 2)
	default:
		k.ldImm(TDxx, v, 1)
	}
	return memRef{base: base, useReg: true}
}

// load emits one load unit for a resolved reference.
func (k *a64) load(sz size, sx bool, rt Reg, ref memRef) {
	op := a64Loads[sz]
	if sx {
		op = a64LoadsSX[sz]
	}
	if ref.useReg {
		k.emit(op.reg | k.r(TDxx)<<16 | k.r(ref.base)<<5 | k.r(rt))
		return
	}
	k.emit(op.imm | (ref.field>>op.sc)<<10 | k.r(ref.base)<<5 | k.r(rt))
}

// store emits one store unit for a resolved reference.
func (k *a64) store(sz size, rt Reg, ref memRef) {
	op := a64Stores[sz]
	if ref.useReg {
		k.emit(op.reg | k.r(TDxx)<<16 | k.r(ref.base)<<5 | k.r(rt))
		return
	}
	k.emit(op.imm | (ref.field>>op.sc)<<10 | k.r(ref.base)<<5 | k.r(rt))
}

// ---------------------------------------------------------------------
// Width upkeep

// narrow re-establishes the zero-extended invariant of 16- and 8-bit
// values after an operation that may carry into the upper bits.
func (k *a64) narrow(sz size, rd Reg) {
	switch sz {
	case szH:
		k.emit(0x53003C00 | k.r(rd)<<5 | k.r(rd)) // uxth
	case szB:
		k.emit(0x53001C00 | k.r(rd)<<5 | k.r(rd)) // uxtb
	}
}

// extend copies rs into rd with the given width and signedness.
func (k *a64) extend(sz size, sx bool, rd, rs Reg) {
	var op uint32
	switch {
	case sz == szH && sx:
		op = 0x13003C00 // sxth
	case sz == szH:
		op = 0x53003C00 // uxth
	case sz == szB && sx:
		op = 0x13001C00 // sxtb
	default:
		op = 0x53001C00 // uxtb
	}
	k.emit(op | k.r(rs)<<5 | k.r(rd))
}

// flagZ emits the dedicated flag-setting unit of the Z variants:
// subs rd, rd, #0. Narrow sizes compare the masked 32-bit value.
func (k *a64) flagZ(sz size, rd Reg) {
	op := uint32(0x71000000)
	if sz == szX {
		op = 0xF1000000
	}
	k.emit(op | k.r(rd)<<5 | k.r(rd))
}

// ---------------------------------------------------------------------
// Moves

func (k *a64) movRI(sz size, rd Reg, im Imm) {
	k.ldImm(rd, im.val, k.immTagMov(im))
	if sz <= szH {
		k.narrow(sz, rd)
	}
}

func (k *a64) movRR(sz size, rd, rs Reg) {
	// orr rd, zr, rs
	op := uint32(0x2A0003E0)
	if sz == szX {
		op = 0xAA0003E0
	}
	k.emit(op | k.r(rs)<<16 | k.r(rd))
	if sz <= szH {
		k.narrow(sz, rd)
	}
}

func (k *a64) movMI(sz size, m Mem, d Disp, im Imm) {
	ref := k.resolveMem(m, d, a64Stores[sz].sc)
	k.ldImm(TIxx, im.val, k.immTagMov(im))
	k.store(sz, TIxx, ref)
}

func (k *a64) movLD(sz size, sx bool, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, sx, rd, ref)
}

func (k *a64) movST(sz size, rs Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Stores[sz].sc)
	k.store(sz, rs, ref)
}

// ---------------------------------------------------------------------
// Binary ALU

// a64Alu holds the w-form opcodes of one operation; the x form is the
// w form with sf set. A zero imm opcode marks the logical class, whose
// bitmask immediate form is not used.
type a64Alu struct {
	reg uint32 // shifted-register form
	imm uint32 // 12-bit immediate form, arith class only
}

var a64AluTab = [...]a64Alu{
	opAdd: {0x0B000000, 0x11000000},
	opSub: {0x4B000000, 0x51000000},
	opAnd: {0x0A000000, 0},
	opAnn: {0x0A200000, 0}, // bic
	opOrr: {0x2A000000, 0},
	opOrn: {0x2A200000, 0},
	opXor: {0x4A000000, 0}, // eor
}

func (k *a64) immTag(op aluOp, im Imm) int {
	if a64AluTab[op].imm != 0 {
		return k.immTagArith(im)
	}
	return k.immTagLogic(im)
}

// binMain emits the main ALU unit rd = rn OP src where src is either
// the inline immediate or a register.
func (k *a64) binMain(op aluOp, sz size, rd, rn Reg, rm Reg, inline bool, imm uint32) {
	t := a64AluTab[op]
	if inline {
		k.emit(sf(sz) | t.imm | imm<<10 | k.r(rn)<<5 | k.r(rd))
		return
	}
	k.emit(sf(sz) | t.reg | k.r(rm)<<16 | k.r(rn)<<5 | k.r(rd))
}

func (k *a64) binRI(op aluOp, sz size, setf bool, rd Reg, im Imm) {
	tag := k.immTag(op, im)
	if tag == 0 {
		k.binMain(op, sz, rd, rd, 0, true, im.val)
	} else {
		k.ldImm(TIxx, im.val, tag)
		k.binMain(op, sz, rd, rd, TIxx, false, 0)
	}
	k.narrow(sz, rd)
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *a64) binRR(op aluOp, sz size, setf bool, rd, rs Reg) {
	k.binMain(op, sz, rd, rd, rs, false, 0)
	k.narrow(sz, rd)
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *a64) binLD(op aluOp, sz size, setf bool, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.binMain(op, sz, rd, rd, TMxx, false, 0)
	k.narrow(sz, rd)
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *a64) binST(op aluOp, sz size, setf bool, rs Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.binMain(op, sz, TMxx, TMxx, rs, false, 0)
	k.narrow(sz, TMxx)
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

func (k *a64) binMI(op aluOp, sz size, setf bool, m Mem, d Disp, im Imm) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	tag := k.immTag(op, im)
	if tag != 0 {
		k.ldImm(TIxx, im.val, tag)
	}
	k.load(sz, false, TMxx, ref)
	if tag == 0 {
		k.binMain(op, sz, TMxx, TMxx, 0, true, im.val)
	} else {
		k.binMain(op, sz, TMxx, TMxx, TIxx, false, 0)
	}
	k.narrow(sz, TMxx)
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

// unMain emits a unary main unit: not is orn against the zero
// register, neg is sub from the zero register.
func (k *a64) unMain(op aluOp, sz size, rd Reg) {
	switch op {
	case opNot:
		k.emit(sf(sz) | 0x2A200000 | k.r(rd)<<16 | 31<<5 | k.r(rd))
	case opNeg:
		k.emit(sf(sz) | 0x4B000000 | k.r(rd)<<16 | 31<<5 | k.r(rd))
	}
}

func (k *a64) unRX(op aluOp, sz size, setf bool, rd Reg) {
	k.unMain(op, sz, rd)
	k.narrow(sz, rd)
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *a64) unMX(op aluOp, sz size, setf bool, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.unMain(op, sz, TMxx)
	k.narrow(sz, TMxx)
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

// ---------------------------------------------------------------------
// Shifts

// shfMain emits one immediate-count shift. Counts are taken modulo the
// operand width.
func (k *a64) shfMain(op shOp, sz size, rd Reg, cnt uint32) {
	x := sz == szX
	bits := sz.bits()
	if sz <= szH {
		bits = 32
	}
	c := cnt & (bits - 1)
	switch op {
	case opShl:
		if x {
			k.emit(0xD3400000 | ((64-c)&63)<<16 | (63-c)<<10 | k.r(rd)<<5 | k.r(rd))
		} else {
			k.emit(0x53000000 | ((32-c)&31)<<16 | (31-c)<<10 | k.r(rd)<<5 | k.r(rd))
		}
	case opShr:
		if x {
			k.emit(0xD340FC00 | c<<16 | k.r(rd)<<5 | k.r(rd))
		} else {
			k.emit(0x53007C00 | c<<16 | k.r(rd)<<5 | k.r(rd))
		}
	case opSar:
		if x {
			k.emit(0x9340FC00 | c<<16 | k.r(rd)<<5 | k.r(rd))
		} else {
			k.emit(0x13007C00 | c<<16 | k.r(rd)<<5 | k.r(rd))
		}
	case opRor:
		// extr rd, rd, rd, #c
		if x {
			k.emit(0x93C00000 | k.r(rd)<<16 | c<<10 | k.r(rd)<<5 | k.r(rd))
		} else {
			k.emit(0x13800000 | k.r(rd)<<16 | c<<10 | k.r(rd)<<5 | k.r(rd))
		}
	}
}

// shfMainR emits one variable-count shift (lslv and friends).
func (k *a64) shfMainR(op shOp, sz size, rd, rs Reg) {
	base := uint32(0x1AC02000) // lslv
	switch op {
	case opShr:
		base = 0x1AC02400
	case opSar:
		base = 0x1AC02800
	case opRor:
		base = 0x1AC02C00
	}
	k.emit(sf(sz) | base | k.r(rs)<<16 | k.r(rd)<<5 | k.r(rd))
}

// shfPre sign-extends the operand ahead of an arithmetic right shift
// on the sub-word sizes, so the 32-bit shifter sees the right sign.
func (k *a64) shfPre(op shOp, sz size, rd Reg) {
	if op == opSar && sz <= szH {
		k.extend(sz, true, rd, rd)
	}
}

func (k *a64) shfRI(op shOp, sz size, setf bool, rd Reg, cnt uint32) {
	k.shfPre(op, sz, rd)
	k.shfMain(op, sz, rd, cnt)
	k.narrow(sz, rd)
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *a64) shfRR(op shOp, sz size, setf bool, rd, rs Reg) {
	k.shfPre(op, sz, rd)
	k.shfMainR(op, sz, rd, rs)
	k.narrow(sz, rd)
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *a64) shfMI(op shOp, sz size, setf bool, m Mem, d Disp, cnt uint32) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.shfPre(op, sz, TMxx)
	k.shfMain(op, sz, TMxx, cnt)
	k.narrow(sz, TMxx)
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

func (k *a64) shfMR(op shOp, sz size, setf bool, m Mem, d Disp, rs Reg) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.shfPre(op, sz, TMxx)
	k.shfMainR(op, sz, TMxx, rs)
	k.narrow(sz, TMxx)
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

// ---------------------------------------------------------------------
// Multiply and divide

func (k *a64) mulMain(sz size, rd, rn, rm Reg) {
	// madd rd, rn, rm, zr
	op := uint32(0x1B007C00)
	if sz == szX {
		op = 0x9B007C00
	}
	k.emit(op | k.r(rm)<<16 | k.r(rn)<<5 | k.r(rd))
}

func (k *a64) mulRR(sz size, sg signKind, rd, rs Reg) {
	k.mulMain(sz, rd, rd, rs)
}

func (k *a64) mulLD(sz size, sg signKind, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.mulMain(sz, rd, rd, TMxx)
}

// mulXR is the widening multiply with the implicit Redx:Reax
// accumulator. rs must not alias the accumulator.
func (k *a64) mulXR(sz size, sg signKind, rs Reg) {
	if rs == Reax || rs == Redx {
		k.out.misuse("mul xr: source %v aliases the implicit accumulator", rs)
	}
	signed := sg != signX
	if sz == szX {
		// high part first, low part clobbers Reax
		high := uint32(0x9BC07C00) // umulh
		if signed {
			high = 0x9B407C00 // smulh
		}
		k.emit(high | k.r(rs)<<16 | k.r(Reax)<<5 | k.r(TMxx))
		k.mulMain(szX, Reax, Reax, rs)
		k.emit(0xAA0003E0 | k.r(TMxx)<<16 | k.r(Redx)) // mov Redx, TMxx
		return
	}
	// full 64-bit product into TMxx, then split
	wide := uint32(0x9BA07C00) // umull
	shift := uint32(0xD340FC00 | 32<<16)
	if signed {
		wide = 0x9B207C00 // smull
		shift = 0x9340FC00 | 32<<16
	}
	k.emit(wide | k.r(rs)<<16 | k.r(Reax)<<5 | k.r(TMxx))
	k.emit(0x2A0003E0 | k.r(TMxx)<<16 | k.r(Reax)) // mov wReax, wTMxx
	k.emit(shift | k.r(TMxx)<<5 | k.r(Redx))       // Redx = product >> 32
}

func (k *a64) mulXM(sz size, sg signKind, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TIxx, ref)
	k.mulXR(sz, sg, TIxx)
}

func (k *a64) divMain(sz size, signed bool, rd, rn, rm Reg) {
	op := uint32(0x1AC00800) // udiv
	if signed {
		op = 0x1AC00C00 // sdiv
	}
	k.emit(sf(sz) | op | k.r(rm)<<16 | k.r(rn)<<5 | k.r(rd))
}

// msub rd = ra - rn*rm
func (k *a64) msub(sz size, rd, rn, rm, ra Reg) {
	op := uint32(0x1B008000)
	if sz == szX {
		op = 0x9B008000
	}
	k.emit(op | k.r(rm)<<16 | k.r(ra)<<10 | k.r(rn)<<5 | k.r(rd))
}

func (k *a64) divRR(sz size, sg signKind, rd, rs Reg) {
	k.divMain(sz, sg != signX, rd, rd, rs)
}

func (k *a64) divRI(sz size, sg signKind, rd Reg, im Imm) {
	k.ldImm(TIxx, im.val, k.immTagMov(im))
	k.divMain(sz, sg != signX, rd, rd, TIxx)
}

func (k *a64) divLD(sz size, sg signKind, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.divMain(sz, sg != signX, rd, rd, TMxx)
}

func (k *a64) remRR(sz size, sg signKind, rd, rs Reg) {
	k.divMain(sz, sg != signX, TMxx, rd, rs)
	k.msub(sz, rd, TMxx, rs, rd)
}

func (k *a64) remRI(sz size, sg signKind, rd Reg, im Imm) {
	k.ldImm(TIxx, im.val, k.immTagMov(im))
	k.divMain(sz, sg != signX, TMxx, rd, TIxx)
	k.msub(sz, rd, TMxx, TIxx, rd)
}

func (k *a64) remLD(sz size, sg signKind, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.divMain(sz, sg != signX, TIxx, rd, TMxx)
	k.msub(sz, rd, TIxx, TMxx, rd)
}

// divXR divides the implicit accumulator: quotient to Reax, remainder
// to Redx. rs must not alias the accumulator.
func (k *a64) divXR(sz size, sg signKind, rs Reg) {
	if rs == Reax || rs == Redx {
		k.out.misuse("div xr: divisor %v aliases the implicit accumulator", rs)
	}
	k.divMain(sz, sg != signX, TMxx, Reax, rs)
	k.msub(sz, Redx, TMxx, rs, Reax)
	op := uint32(0x2A0003E0)
	if sz == szX {
		op = 0xAA0003E0
	}
	k.emit(op | k.r(TMxx)<<16 | k.r(Reax)) // mov Reax, TMxx
}

func (k *a64) divXM(sz size, sg signKind, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TIxx, ref)
	k.divXR(sz, sg, TIxx)
}

// ---------------------------------------------------------------------
// Compare

// cmpMain emits subs zr, rn, rm at the widest form the size needs.
// Sub-word operands hold zero-extended values, so the w form compares
// them directly.
func (k *a64) cmpMain(sz size, rn, rm Reg) {
	op := uint32(0x6B00001F)
	if sz == szX {
		op = 0xEB00001F
	}
	k.emit(op | k.r(rm)<<16 | k.r(rn)<<5)
}

func (k *a64) cmpRR(sz size, rs1, rs2 Reg) {
	k.cmpMain(sz, rs1, rs2)
}

func (k *a64) cmpRI(sz size, rs Reg, im Imm) {
	if k.immTagArith(im) == 0 {
		op := uint32(0x7100001F)
		if sz == szX {
			op = 0xF100001F
		}
		k.emit(op | im.val<<10 | k.r(rs)<<5)
		return
	}
	k.ldImm(TIxx, im.val, k.immTagMov(im))
	k.cmpMain(sz, rs, TIxx)
}

func (k *a64) cmpRM(sz size, rs Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.cmpMain(sz, rs, TMxx)
}

func (k *a64) cmpMR(sz size, m Mem, d Disp, rs Reg) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.cmpMain(sz, TMxx, rs)
}

func (k *a64) cmpMI(sz size, m Mem, d Disp, im Imm) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
	k.cmpRI(sz, TMxx, im)
}

// cmpc is the compare half of the fused compare-and-jump. Sub-word
// operands are re-extended per the tag's signedness before the 32-bit
// compare, so signed tags observe the sign bit.
func (k *a64) cmpc(sz size, cc Cond, rs1, rs2 Reg) {
	if sz <= szH && cc.signed() {
		k.extend(sz, true, TMxx, rs1)
		k.extend(sz, true, TIxx, rs2)
		k.cmpMain(szW, TMxx, TIxx)
		return
	}
	k.cmpMain(sz, rs1, rs2)
}

func (k *a64) cmpci(sz size, cc Cond, rs Reg, im Imm) {
	if sz <= szH && cc.signed() {
		k.extend(sz, true, TMxx, rs)
		k.cmpRI(szW, TMxx, im)
		return
	}
	k.cmpRI(sz, rs, im)
}

// loadTM pulls a memory operand into the instruction temp for the
// memory shapes of the fused compare-and-jump.
func (k *a64) loadTM(sz size, m Mem, d Disp) {
	ref := k.resolveMem(m, d, a64Loads[sz].sc)
	k.load(sz, false, TMxx, ref)
}

// ---------------------------------------------------------------------
// Branches

// a64Cond maps the neutral tags onto AArch64 condition codes. The
// unsigned relational tags use the carry-based conditions.
var a64Cond = [...]uint32{
	EQx: 0x0, NEx: 0x1,
	LTx: 0x3, LEx: 0x9, GTx: 0x8, GEx: 0x2, // lo, ls, hi, hs
	LTn: 0xB, LEn: 0xD, GTn: 0xC, GEn: 0xA, // lt, le, gt, ge
	EZx: 0x0, NZx: 0x1,
}

func (k *a64) ref(lb *Label, kind relocKind) {
	k.relocs = append(k.relocs, reloc{offset: k.cb.Len(), lb: lb, kind: kind})
}

func (k *a64) jcc(cc Cond, lb *Label) {
	k.ref(lb, relocA64B19)
	k.emit(0x54000000 | a64Cond[cc])
}

// jz emits the single-unit zero-test branches (cbz/cbnz).
func (k *a64) jz(sz size, cc Cond, rs Reg, lb *Label) {
	op := uint32(0x34000000) // cbz w
	if cc == NZx {
		op = 0x35000000
	}
	if sz == szX {
		op |= 0x80000000
	}
	k.ref(lb, relocA64B19)
	k.emit(op | k.r(rs))
}

func (k *a64) jmp(lb *Label) {
	k.ref(lb, relocA64B26)
	k.emit(0x14000000)
}

func (k *a64) bind(lb *Label) {
	lb.pos = k.cb.Len()
	lb.bound = true
}

func (k *a64) finalize() error {
	var err error
	for _, r := range k.relocs {
		if e := r.patch(k.cb); e != nil {
			err = e
		}
	}
	k.relocs = k.relocs[:0]
	return err
}

// ---------------------------------------------------------------------
// Stack

// The hardware stack pointer must stay 16-byte aligned, so single
// pushes consume a full 16-byte slot and the bulk sequences move pairs.

func (k *a64) stackSt(r Reg) {
	// str r, [sp, #-16]!
	k.emit(0xF8000C00 | uint32(-16&0x1FF)<<12 | 31<<5 | k.r(r))
}

func (k *a64) stackLd(r Reg) {
	// ldr r, [sp], #16
	k.emit(0xF8400400 | 16<<12 | 31<<5 | k.r(r))
}

// stackPairs is the fixed save order; restore walks it backwards.
var stackPairs = [...][2]Reg{
	{Reax, Recx}, {Redx, Rebx}, {Rebp, Resi}, {Redi, Reg8},
	{Reg9, RegA}, {RegB, RegC}, {RegD, RegE}, {TMxx, TIxx},
	{TDxx, TPxx},
}

func (k *a64) stackSa() {
	for _, p := range stackPairs {
		// stp r1, r2, [sp, #-16]!
		k.emit(0xA9BF0000 | k.r(p[1])<<10 | 31<<5 | k.r(p[0]))
	}
}

func (k *a64) stackLa() {
	for i := len(stackPairs) - 1; i >= 0; i-- {
		p := stackPairs[i]
		// ldp r1, r2, [sp], #16
		k.emit(0xA8C10000 | k.r(p[1])<<10 | 31<<5 | k.r(p[0]))
	}
}
