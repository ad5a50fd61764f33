// Completion: 100% - PowerPC64 BASE kernel complete
package uniasm

// PowerPC64 kernel. Fixed 32-bit units, big-endian unless the
// configuration selects the little-endian mode of POWER8 and later.
// Flags do not exist as such; the Z variants and the fused
// compare-and-jump expand through cr0 compares, so no opcode uses the
// Rc bit.
//
// Scratch usage matches the AArch64 kernel: TPxx for address fusion,
// TDxx for displacements, TIxx for immediates, TMxx for loaded memory
// operands and div/rem temps. r0 reads as zero in the base position of
// D-form instructions, which is what TZxx maps to.
type p64 struct {
	out    *Out
	cb     *CodeBuffer
	relocs []reloc
}

func newP64(o *Out) *p64 {
	return &p64{out: o, cb: o.buf}
}

func (k *p64) emit(w uint32) { k.cb.WriteWord(w) }

func (k *p64) r(r Reg) uint32 { return p64Regs[r] }

// ---------------------------------------------------------------------
// Immediate classification and materialisation

// immTagArith maps a class against the signed 16-bit field of addi.
// Constructor payloads are unsigned, so only classes up to 15 bits are
// guaranteed to stay positive in the field.
func (k *p64) immTagArith(im Imm) int {
	switch im.cls {
	case immC, immB, immM, immG:
		return 0
	case immH:
		return 2
	default:
		return 2
	}
}

// immTagLogic maps a class against the unsigned 16-bit field of
// ori/xori/andi.
func (k *p64) immTagLogic(im Imm) int {
	switch im.cls {
	case immV, immW:
		return 2
	default:
		return 0
	}
}

// ldImm materialises a payload into rt: li for values that fit the
// signed 16-bit field, lis+ori otherwise.
func (k *p64) ldImm(rt Reg, val uint32, tag int) {
	if tag < 2 && val <= 0x7FFF {
		k.emit(0x38000000 | k.r(rt)<<21 | val) // li (addi rt, 0, val)
		return
	}
	k.emit(0x3C000000 | k.r(rt)<<21 | val>>16)                  // lis
	k.emit(0x60000000 | k.r(rt)<<21 | k.r(rt)<<16 | val&0xFFFF) // ori
}

// ---------------------------------------------------------------------
// Addressing

// p64Ldst carries the D-form and X-form opcodes of one access width.
// The DS forms (ld, std, lwa) reserve the low two displacement bits as
// opcode extension; an inline displacement aligned to the access width
// leaves them clear at the 4- and 8-byte widths where DS forms occur.
type p64Ldst struct {
	d uint32 // base+disp form; 0 when the width has no D form
	x uint32 // base+index form
}

var p64Loads = map[size]p64Ldst{
	szX: {0xE8000000, 0x7C00002A}, // ld / ldx
	szW: {0x80000000, 0x7C00002E}, // lwz / lwzx
	szH: {0xA0000000, 0x7C00022E}, // lhz / lhzx
	szB: {0x88000000, 0x7C0000AE}, // lbz / lbzx
}

var p64LoadsSX = map[size]p64Ldst{
	szW: {0xE8000002, 0x7C0002AA}, // lwa / lwax
	szH: {0xA8000000, 0x7C0002AE}, // lha / lhax
	szB: {0, 0x7C0000EE},          // lbz then extsb, see load
}

var p64Stores = map[size]p64Ldst{
	szX: {0xF8000000, 0x7C00012A}, // std / stdx
	szW: {0x90000000, 0x7C00012E}, // stw / stwx
	szH: {0xB0000000, 0x7C00032E}, // sth / sthx
	szB: {0x98000000, 0x7C0001AE}, // stb / stbx
}

// resolveMem emits the addressing and displacement preambles. A scaled
// index costs two preamble words (sldi then add); an unscaled index
// costs one. The displacement is aligned down to the access width and
// classified by constructor class, mirroring the immediate tags: P
// through G fit the signed 16-bit D field and stay inline, H and V
// materialise into TDxx with the lis+ori pair.
func (k *p64) resolveMem(m Mem, d Disp, sz size) memRef {
	base := m.base
	if m.hasIx {
		idx := m.index
		if m.scale > 0 {
			k.sldi(TPxx, m.index, uint32(m.scale))
			idx = TPxx
		}
		k.emit(0x7C000214 | k.r(TPxx)<<21 | k.r(base)<<16 | k.r(idx)<<11) // add
		base = TPxx
	}
	v := d.alignTo(uint32(sz))
	switch d.cls {
	case dispP, dispE, dispF, dispG:
		return memRef{base: base, field: v}
	default:
		k.ldImm(TDxx, v, 2)
	}
	return memRef{base: base, useReg: true}
}

func (k *p64) load(sz size, sx bool, rt Reg, ref memRef) {
	op := p64Loads[sz]
	if sx {
		op = p64LoadsSX[sz]
	}
	if sx && sz == szB {
		// no signed byte load; zero-load then extsb
		k.load(szB, false, rt, ref)
		k.emit(0x7C000774 | k.r(rt)<<21 | k.r(rt)<<16) // extsb
		return
	}
	if ref.useReg || op.d == 0 {
		if !ref.useReg {
			k.ldImm(TDxx, ref.field, 1)
		}
		k.emit(op.x | k.r(rt)<<21 | k.r(ref.base)<<16 | k.r(TDxx)<<11)
		return
	}
	k.emit(op.d | k.r(rt)<<21 | k.r(ref.base)<<16 | ref.field)
}

func (k *p64) store(sz size, rt Reg, ref memRef) {
	op := p64Stores[sz]
	if ref.useReg {
		k.emit(op.x | k.r(rt)<<21 | k.r(ref.base)<<16 | k.r(TDxx)<<11)
		return
	}
	k.emit(op.d | k.r(rt)<<21 | k.r(ref.base)<<16 | ref.field)
}

// ---------------------------------------------------------------------
// Width upkeep

// rlwinm builds the rotate-and-mask word: rotate left by sh, keep bits
// mb..me of the rotated value.
func rlwinm(ra, rs, sh, mb, me uint32) uint32 {
	return 0x54000000 | rs<<21 | ra<<16 | sh<<11 | mb<<6 | me<<1
}

// sldi emits a 64-bit left shift by a constant (rldicr form).
func (k *p64) sldi(ra, rs Reg, sh uint32) {
	me := 63 - sh
	k.emit(30<<26 | k.r(rs)<<21 | k.r(ra)<<16 | (sh&31)<<11 | (me&31)<<6 | (me>>5)<<5 | 1<<2 | (sh>>5)<<1)
}

// narrow re-establishes the zero-extended invariant of 16- and 8-bit
// values with a rotate-and-mask of zero rotation.
func (k *p64) narrow(sz size, rd Reg) {
	switch sz {
	case szH:
		k.emit(rlwinm(k.r(rd), k.r(rd), 0, 16, 31))
	case szB:
		k.emit(rlwinm(k.r(rd), k.r(rd), 0, 24, 31))
	}
}

func (k *p64) extend(sz size, sx bool, rd, rs Reg) {
	if !sx {
		switch sz {
		case szH:
			k.emit(rlwinm(k.r(rd), k.r(rs), 0, 16, 31))
		case szB:
			k.emit(rlwinm(k.r(rd), k.r(rs), 0, 24, 31))
		}
		return
	}
	switch sz {
	case szH:
		k.emit(0x7C000734 | k.r(rs)<<21 | k.r(rd)<<16) // extsh
	case szB:
		k.emit(0x7C000774 | k.r(rs)<<21 | k.r(rd)<<16) // extsb
	}
}

// flagZ emits the compare-with-zero unit of the Z variants into cr0.
func (k *p64) flagZ(sz size, rd Reg) {
	op := uint32(0x2C000000) // cmpwi
	if sz == szX {
		op |= 1 << 21 // cmpdi
	}
	k.emit(op | k.r(rd)<<16)
}

// ---------------------------------------------------------------------
// Moves

func (k *p64) movRI(sz size, rd Reg, im Imm) {
	tag := 0
	if im.cls == immH || im.cls == immV || im.cls == immW {
		tag = 2
	}
	k.ldImm(rd, im.val, tag)
	if sz <= szH {
		k.narrow(sz, rd)
	}
}

func (k *p64) movRR(sz size, rd, rs Reg) {
	// mr rd, rs (or rd, rs, rs)
	k.emit(0x7C000378 | k.r(rs)<<21 | k.r(rd)<<16 | k.r(rs)<<11)
	if sz <= szH {
		k.narrow(sz, rd)
	}
}

func (k *p64) movMI(sz size, m Mem, d Disp, im Imm) {
	ref := k.resolveMem(m, d, sz)
	tag := 0
	if im.cls == immH || im.cls == immV || im.cls == immW {
		tag = 2
	}
	k.ldImm(TIxx, im.val, tag)
	k.store(sz, TIxx, ref)
}

func (k *p64) movLD(sz size, sx bool, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, sx, rd, ref)
}

func (k *p64) movST(sz size, rs Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.store(sz, rs, ref)
}

// ---------------------------------------------------------------------
// Binary ALU

// p64Alu holds the opcodes of one operation. The register form places
// the destination per kind: XO-form arithmetic writes RT (bits 25:21),
// X-form logic writes RA (bits 20:16) with the source in RS.
type p64Alu struct {
	reg   uint32
	imm   uint32 // D-form immediate opcode; 0 when unusable
	logic bool   // X-form logic operand placement
}

var p64AluTab = [...]p64Alu{
	opAdd: {0x7C000214, 0x38000000, false}, // add / addi
	opSub: {0x7C000050, 0, false},          // subf
	opAnd: {0x7C000038, 0x70000000, true},  // and / andi.
	opAnn: {0x7C000078, 0, true},           // andc
	opOrr: {0x7C000378, 0x60000000, true},  // or / ori
	opOrn: {0x7C000338, 0, true},           // orc
	opXor: {0x7C000278, 0x68000000, true},  // xor / xori
}

func (k *p64) immTag(op aluOp, im Imm) int {
	t := p64AluTab[op]
	if t.imm == 0 {
		return max(1, k.immTagLogic(im))
	}
	if t.logic {
		return k.immTagLogic(im)
	}
	return k.immTagArith(im)
}

// binMain emits the main ALU unit rd = rn OP rm with the operand
// placement the opcode form requires. subf computes RB-RA, so the
// minuend goes to RB.
func (k *p64) binMain(op aluOp, rd, rn, rm Reg) {
	t := p64AluTab[op]
	switch {
	case t.logic:
		k.emit(t.reg | k.r(rn)<<21 | k.r(rd)<<16 | k.r(rm)<<11)
	case op == opSub:
		k.emit(t.reg | k.r(rd)<<21 | k.r(rm)<<16 | k.r(rn)<<11)
	default:
		k.emit(t.reg | k.r(rd)<<21 | k.r(rn)<<16 | k.r(rm)<<11)
	}
}

// binImm emits the D-form immediate unit. andi. also sets cr0, which
// the Z variants tolerate because the dedicated flag unit follows.
func (k *p64) binImm(op aluOp, rd, rn Reg, imm uint32) {
	t := p64AluTab[op]
	if t.logic {
		k.emit(t.imm | k.r(rn)<<21 | k.r(rd)<<16 | imm)
		return
	}
	k.emit(t.imm | k.r(rd)<<21 | k.r(rn)<<16 | imm)
}

func (k *p64) binRI(op aluOp, sz size, setf bool, rd Reg, im Imm) {
	tag := k.immTag(op, im)
	if tag == 0 {
		k.binImm(op, rd, rd, im.val)
	} else {
		k.ldImm(TIxx, im.val, tag)
		k.binMain(op, rd, rd, TIxx)
	}
	if sz <= szH {
		k.narrow(sz, rd)
	}
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *p64) binRR(op aluOp, sz size, setf bool, rd, rs Reg) {
	k.binMain(op, rd, rd, rs)
	if sz <= szH {
		k.narrow(sz, rd)
	}
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *p64) binLD(op aluOp, sz size, setf bool, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.binMain(op, rd, rd, TMxx)
	if sz <= szH {
		k.narrow(sz, rd)
	}
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *p64) binST(op aluOp, sz size, setf bool, rs Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.binMain(op, TMxx, TMxx, rs)
	if sz <= szH {
		k.narrow(sz, TMxx)
	}
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

func (k *p64) binMI(op aluOp, sz size, setf bool, m Mem, d Disp, im Imm) {
	ref := k.resolveMem(m, d, sz)
	tag := k.immTag(op, im)
	if tag != 0 {
		k.ldImm(TIxx, im.val, tag)
	}
	k.load(sz, false, TMxx, ref)
	if tag == 0 {
		k.binImm(op, TMxx, TMxx, im.val)
	} else {
		k.binMain(op, TMxx, TMxx, TIxx)
	}
	if sz <= szH {
		k.narrow(sz, TMxx)
	}
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

func (k *p64) unMain(op aluOp, rd Reg) {
	switch op {
	case opNot:
		// nor rd, rd, rd
		k.emit(0x7C0000F8 | k.r(rd)<<21 | k.r(rd)<<16 | k.r(rd)<<11)
	case opNeg:
		k.emit(0x7C0000D0 | k.r(rd)<<21 | k.r(rd)<<16)
	}
}

func (k *p64) unRX(op aluOp, sz size, setf bool, rd Reg) {
	k.unMain(op, rd)
	if sz <= szH {
		k.narrow(sz, rd)
	}
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *p64) unMX(op aluOp, sz size, setf bool, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.unMain(op, TMxx)
	if sz <= szH {
		k.narrow(sz, TMxx)
	}
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

// ---------------------------------------------------------------------
// Shifts

// shfMain emits one immediate-count shift unit.
func (k *p64) shfMain(op shOp, sz size, rd Reg, cnt uint32) {
	x := sz == szX
	bits := sz.bits()
	if sz <= szH {
		bits = 32
	}
	c := cnt & (bits - 1)
	rd32 := k.r(rd)
	switch op {
	case opShl:
		if x {
			k.sldi(rd, rd, c)
		} else {
			k.emit(rlwinm(rd32, rd32, c, 0, 31-c)) // slwi
		}
	case opShr:
		if x {
			// srdi (rldicl rd, rd, 64-c, c)
			sh := (64 - c) & 63
			k.emit(30<<26 | rd32<<21 | rd32<<16 | (sh&31)<<11 | (c&31)<<6 | (c>>5)<<5 | (sh>>5)<<1)
		} else {
			k.emit(rlwinm(rd32, rd32, (32-c)&31, c, 31)) // srwi
		}
	case opSar:
		if x {
			k.emit(0x7C000674 | rd32<<21 | rd32<<16 | (c&31)<<11 | (c>>5)<<1) // sradi
		} else {
			k.emit(0x7C000670 | rd32<<21 | rd32<<16 | c<<11) // srawi
		}
	case opRor:
		if x {
			// rotrdi (rldicl rd, rd, 64-c, 0)
			sh := (64 - c) & 63
			k.emit(30<<26 | rd32<<21 | rd32<<16 | (sh&31)<<11 | (sh>>5)<<1)
		} else {
			k.emit(rlwinm(rd32, rd32, (32-c)&31, 0, 31)) // rotrwi
		}
	}
}

// shfMainR emits one variable-count shift unit.
func (k *p64) shfMainR(op shOp, sz size, rd, rs Reg) {
	x := sz == szX
	var base uint32
	switch op {
	case opShl:
		base = 0x7C000030 // slw
		if x {
			base = 0x7C000036 // sld
		}
	case opShr:
		base = 0x7C000430 // srw
		if x {
			base = 0x7C000436 // srd
		}
	case opSar:
		base = 0x7C000630 // sraw
		if x {
			base = 0x7C000634 // srad
		}
	case opRor:
		if x {
			// rotld (rldcl rd, rd, rs, 0)
			k.emit(0x78000010 | k.r(rd)<<21 | k.r(rd)<<16 | k.r(rs)<<11)
			return
		}
		// rotlw needs the left count; negate into TIxx first
		k.emit(0x7C0000D0 | k.r(TIxx)<<21 | k.r(rs)<<16)                       // neg
		k.emit(0x5C000000 | k.r(rd)<<21 | k.r(rd)<<16 | k.r(TIxx)<<11 | 31<<1) // rlwnm mask 0..31
		return
	}
	k.emit(base | k.r(rd)<<21 | k.r(rd)<<16 | k.r(rs)<<11)
}

func (k *p64) shfPre(op shOp, sz size, rd Reg) {
	if op == opSar && sz <= szH {
		k.extend(sz, true, rd, rd)
	}
}

func (k *p64) shfRI(op shOp, sz size, setf bool, rd Reg, cnt uint32) {
	k.shfPre(op, sz, rd)
	k.shfMain(op, sz, rd, cnt)
	if sz <= szH {
		k.narrow(sz, rd)
	}
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *p64) shfRR(op shOp, sz size, setf bool, rd, rs Reg) {
	k.shfPre(op, sz, rd)
	k.shfMainR(op, sz, rd, rs)
	if sz <= szH {
		k.narrow(sz, rd)
	}
	if setf {
		k.flagZ(sz, rd)
	}
}

func (k *p64) shfMI(op shOp, sz size, setf bool, m Mem, d Disp, cnt uint32) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.shfPre(op, sz, TMxx)
	k.shfMain(op, sz, TMxx, cnt)
	if sz <= szH {
		k.narrow(sz, TMxx)
	}
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

func (k *p64) shfMR(op shOp, sz size, setf bool, m Mem, d Disp, rs Reg) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.shfPre(op, sz, TMxx)
	k.shfMainR(op, sz, TMxx, rs)
	if sz <= szH {
		k.narrow(sz, TMxx)
	}
	if setf {
		k.flagZ(sz, TMxx)
	}
	k.store(sz, TMxx, ref)
}

// ---------------------------------------------------------------------
// Multiply and divide

func (k *p64) mulMain(sz size, rd, rn, rm Reg) {
	op := uint32(0x7C0001D6) // mullw
	if sz == szX {
		op = 0x7C0001D2 // mulld
	}
	k.emit(op | k.r(rd)<<21 | k.r(rn)<<16 | k.r(rm)<<11)
}

func (k *p64) mulRR(sz size, sg signKind, rd, rs Reg) {
	k.mulMain(sz, rd, rd, rs)
}

func (k *p64) mulLD(sz size, sg signKind, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.mulMain(sz, rd, rd, TMxx)
}

func (k *p64) mulXR(sz size, sg signKind, rs Reg) {
	if rs == Reax || rs == Redx {
		k.out.misuse("mul xr: source %v aliases the implicit accumulator", rs)
	}
	signed := sg != signX
	var high uint32
	switch {
	case sz == szX && signed:
		high = 0x7C000092 // mulhd
	case sz == szX:
		high = 0x7C000012 // mulhdu
	case signed:
		high = 0x7C000096 // mulhw
	default:
		high = 0x7C000016 // mulhwu
	}
	k.emit(high | k.r(TMxx)<<21 | k.r(Reax)<<16 | k.r(rs)<<11)
	k.mulMain(sz, Reax, Reax, rs)
	k.emit(0x7C000378 | k.r(TMxx)<<21 | k.r(Redx)<<16 | k.r(TMxx)<<11) // mr Redx, TMxx
}

func (k *p64) mulXM(sz size, sg signKind, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TIxx, ref)
	k.mulXR(sz, sg, TIxx)
}

func (k *p64) divMain(sz size, signed bool, rd, rn, rm Reg) {
	var op uint32
	switch {
	case sz == szX && signed:
		op = 0x7C0003D2 // divd
	case sz == szX:
		op = 0x7C000392 // divdu
	case signed:
		op = 0x7C0003D6 // divw
	default:
		op = 0x7C000396 // divwu
	}
	k.emit(op | k.r(rd)<<21 | k.r(rn)<<16 | k.r(rm)<<11)
}

// remTail finishes a remainder: rd = rn - quot*rm with the quotient
// already in quot.
func (k *p64) remTail(sz size, rd, rn, rm, quot Reg) {
	k.mulMain(sz, TIxx, quot, rm)
	// subf rd, TIxx, rn
	k.emit(0x7C000050 | k.r(rd)<<21 | k.r(TIxx)<<16 | k.r(rn)<<11)
}

func (k *p64) divRR(sz size, sg signKind, rd, rs Reg) {
	k.divMain(sz, sg != signX, rd, rd, rs)
}

func (k *p64) divRI(sz size, sg signKind, rd Reg, im Imm) {
	tag := 0
	if im.cls == immH || im.cls == immV || im.cls == immW {
		tag = 2
	}
	k.ldImm(TIxx, im.val, tag)
	k.divMain(sz, sg != signX, rd, rd, TIxx)
}

func (k *p64) divLD(sz size, sg signKind, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.divMain(sz, sg != signX, rd, rd, TMxx)
}

func (k *p64) remRR(sz size, sg signKind, rd, rs Reg) {
	k.divMain(sz, sg != signX, TMxx, rd, rs)
	k.remTail(sz, rd, rd, rs, TMxx)
}

func (k *p64) remRI(sz size, sg signKind, rd Reg, im Imm) {
	tag := 0
	if im.cls == immH || im.cls == immV || im.cls == immW {
		tag = 2
	}
	k.ldImm(TDxx, im.val, tag)
	k.divMain(sz, sg != signX, TMxx, rd, TDxx)
	k.remTail(sz, rd, rd, TDxx, TMxx)
}

func (k *p64) remLD(sz size, sg signKind, rd Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.divMain(sz, sg != signX, TDxx, rd, TMxx)
	k.remTail(sz, rd, rd, TMxx, TDxx)
}

func (k *p64) divXR(sz size, sg signKind, rs Reg) {
	if rs == Reax || rs == Redx {
		k.out.misuse("div xr: divisor %v aliases the implicit accumulator", rs)
	}
	k.divMain(sz, sg != signX, TMxx, Reax, rs)
	k.mulMain(sz, TIxx, TMxx, rs)
	k.emit(0x7C000050 | k.r(Redx)<<21 | k.r(TIxx)<<16 | k.r(Reax)<<11) // subf
	k.emit(0x7C000378 | k.r(TMxx)<<21 | k.r(Reax)<<16 | k.r(TMxx)<<11) // mr Reax, TMxx
}

func (k *p64) divXM(sz size, sg signKind, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TDxx, ref)
	k.divXR(sz, sg, TDxx)
}

// ---------------------------------------------------------------------
// Compare

// cmpWords builds the signed and unsigned register-compare units for
// the size's L bit.
func (k *p64) cmpWord(sz size, signed bool, rn, rm Reg) {
	op := uint32(0x7C000040) // cmpl
	if signed {
		op = 0x7C000000 // cmp
	}
	if sz == szX {
		op |= 1 << 21
	}
	k.emit(op | k.r(rn)<<16 | k.r(rm)<<11)
}

func (k *p64) cmpRR(sz size, rs1, rs2 Reg) {
	k.cmpWord(sz, false, rs1, rs2)
}

func (k *p64) cmpRI(sz size, rs Reg, im Imm) {
	if k.immTagLogic(im) == 0 {
		op := uint32(0x28000000) // cmpli
		if sz == szX {
			op |= 1 << 21
		}
		k.emit(op | k.r(rs)<<16 | im.val)
		return
	}
	k.ldImm(TIxx, im.val, 2)
	k.cmpWord(sz, false, rs, TIxx)
}

func (k *p64) cmpRM(sz size, rs Reg, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.cmpWord(sz, false, rs, TMxx)
}

func (k *p64) cmpMR(sz size, m Mem, d Disp, rs Reg) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.cmpWord(sz, false, TMxx, rs)
}

func (k *p64) cmpMI(sz size, m Mem, d Disp, im Imm) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
	k.cmpRI(sz, TMxx, im)
}

// cmpc picks the signed or unsigned compare per the tag; the branch
// unit that follows tests cr0 only for direction.
func (k *p64) cmpc(sz size, cc Cond, rs1, rs2 Reg) {
	if sz <= szH && cc.signed() {
		k.extend(sz, true, TMxx, rs1)
		k.extend(sz, true, TIxx, rs2)
		k.cmpWord(szW, true, TMxx, TIxx)
		return
	}
	k.cmpWord(sz, cc.signed(), rs1, rs2)
}

func (k *p64) cmpci(sz size, cc Cond, rs Reg, im Imm) {
	if sz <= szH && cc.signed() {
		k.extend(sz, true, TMxx, rs)
		rs = TMxx
		sz = szW
	}
	if cc.signed() {
		if im.val <= 0x7FFF {
			op := uint32(0x2C000000) // cmpwi
			if sz == szX {
				op |= 1 << 21
			}
			k.emit(op | k.r(rs)<<16 | im.val)
			return
		}
		k.ldImm(TIxx, im.val, 2)
		k.cmpWord(sz, true, rs, TIxx)
		return
	}
	k.cmpRI(sz, rs, im)
}

func (k *p64) loadTM(sz size, m Mem, d Disp) {
	ref := k.resolveMem(m, d, sz)
	k.load(sz, false, TMxx, ref)
}

// ---------------------------------------------------------------------
// Branches

// p64Cond maps the neutral tags onto (BO, BI) pairs against cr0. The
// signedness already went into the compare unit, so signed and
// unsigned tags of the same relation share a pair.
var p64Cond = [...]uint32{
	EQx: 12<<21 | 2<<16, NEx: 4<<21 | 2<<16,
	LTx: 12 << 21, LEx: 4<<21 | 1<<16, GTx: 12<<21 | 1<<16, GEx: 4 << 21,
	LTn: 12 << 21, LEn: 4<<21 | 1<<16, GTn: 12<<21 | 1<<16, GEn: 4 << 21,
	EZx: 12<<21 | 2<<16, NZx: 4<<21 | 2<<16,
}

func (k *p64) ref(lb *Label, kind relocKind) {
	k.relocs = append(k.relocs, reloc{offset: k.cb.Len(), lb: lb, kind: kind})
}

func (k *p64) jcc(cc Cond, lb *Label) {
	k.ref(lb, relocP64B14)
	k.emit(0x40000000 | p64Cond[cc])
}

// jz has no single-unit form; it expands to a zero compare plus a
// conditional branch.
func (k *p64) jz(sz size, cc Cond, rs Reg, lb *Label) {
	k.flagZ(sz, rs)
	k.jcc(cc, lb)
}

func (k *p64) jmp(lb *Label) {
	k.ref(lb, relocP64B24)
	k.emit(0x48000000)
}

func (k *p64) bind(lb *Label) {
	lb.pos = k.cb.Len()
	lb.bound = true
}

func (k *p64) finalize() error {
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

// The ELFv2 red zone is not used; every push moves the stack pointer
// first. Slots are 8 bytes, the ABI's minimum alignment for r1 being
// kept by the bulk sequences' even register count is not required
// here because leaf sequences own the frame.

func (k *p64) stackSt(r Reg) {
	k.emit(0xF8000000 | k.r(SPxx)<<21 | k.r(SPxx)<<16 | -8&0xFFFC | 1) // stdu r1, -8(r1)
	k.emit(0xF8000000 | k.r(r)<<21 | k.r(SPxx)<<16)                    // std r, 0(r1)
}

func (k *p64) stackLd(r Reg) {
	k.emit(0xE8000000 | k.r(r)<<21 | k.r(SPxx)<<16)        // ld r, 0(r1)
	k.emit(0x38000000 | k.r(SPxx)<<21 | k.r(SPxx)<<16 | 8) // addi r1, r1, 8
}

// p64StackRegs is the fixed bulk save order; restore walks it backwards.
var p64StackRegs = [...]Reg{
	Reax, Recx, Redx, Rebx, Rebp, Resi, Redi,
	Reg8, Reg9, RegA, RegB, RegC, RegD, RegE,
	TMxx, TIxx, TDxx, TPxx,
}

func (k *p64) stackSa() {
	n := uint32(len(p64StackRegs) * 8)
	k.emit(0xF8000000 | k.r(SPxx)<<21 | k.r(SPxx)<<16 | (-n)&0xFFFC | 1) // stdu r1, -n(r1)
	for i, r := range p64StackRegs {
		k.emit(0xF8000000 | k.r(r)<<21 | k.r(SPxx)<<16 | uint32(i*8))
	}
}

func (k *p64) stackLa() {
	n := uint32(len(p64StackRegs) * 8)
	for i := len(p64StackRegs) - 1; i >= 0; i-- {
		k.emit(0xE8000000 | k.r(p64StackRegs[i])<<21 | k.r(SPxx)<<16 | uint32(i*8))
	}
	k.emit(0x38000000 | k.r(SPxx)<<21 | k.r(SPxx)<<16 | n&0xFFFF) // addi r1, r1, n
}
