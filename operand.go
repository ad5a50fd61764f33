// Completion: 100% - Operand constructor module complete
package uniasm

// Operand constructors. These are the L1 layer: pure value builders
// that carry width and encoding hints forward to the per-target
// classifier. Invalid inputs silently truncate to the constructor's
// mask; the classifier still picks a legal widening path, so emission
// cannot fail, only encode a truncated payload.

// immClass is the width class an immediate constructor stamps on its
// value. Each kernel maps a class to the small type tags (0 = inline,
// 1 = one-word preamble, 2 = two-word preamble) for its own field
// widths, separately for the arith-style and logic-style instruction
// classes.
type immClass uint8

const (
	immC immClass = iota // 7-bit signed
	immB                 // 8-bit
	immM                 // 12-bit
	immG                 // 15-bit
	immH                 // 16-bit
	immV                 // 31-bit
	immW                 // full 32-bit
)

// Imm is a tagged immediate operand.
type Imm struct {
	val uint32
	cls immClass
}

// IC masks v to the signed 7-bit range.
func IC(v int64) Imm { return Imm{uint32(v) & 0x7F, immC} }

// IB masks v to 8 bits.
func IB(v int64) Imm { return Imm{uint32(v) & 0xFF, immB} }

// IM masks v to 12 bits.
func IM(v int64) Imm { return Imm{uint32(v) & 0xFFF, immM} }

// IG masks v to 15 bits.
func IG(v int64) Imm { return Imm{uint32(v) & 0x7FFF, immG} }

// IH masks v to 16 bits.
func IH(v int64) Imm { return Imm{uint32(v) & 0xFFFF, immH} }

// IV masks v to 31 bits.
func IV(v int64) Imm { return Imm{uint32(v) & 0x7FFFFFFF, immV} }

// IW keeps the full 32-bit payload.
func IW(v int64) Imm { return Imm{uint32(v), immW} }

// Value returns the masked payload.
func (im Imm) Value() uint32 { return im.val }

// dispClass mirrors immClass for memory displacements.
type dispClass uint8

const (
	dispP dispClass = iota // 12-bit
	dispE                  // 8-bit
	dispF                  // 13-bit
	dispG                  // 15-bit
	dispH                  // 16-bit
	dispV                  // 31-bit
)

// Disp is a tagged memory displacement. On top of the class mask the
// value is aligned down to the access width of the consuming mnemonic,
// so a displacement is always legal for the scaled addressing forms.
type Disp struct {
	val uint32
	cls dispClass
}

// DP masks v to 12 bits.
func DP(v int64) Disp { return Disp{uint32(v) & 0xFFF, dispP} }

// DE masks v to 8 bits.
func DE(v int64) Disp { return Disp{uint32(v) & 0xFF, dispE} }

// DF masks v to 13 bits.
func DF(v int64) Disp { return Disp{uint32(v) & 0x1FFF, dispF} }

// DG masks v to 15 bits.
func DG(v int64) Disp { return Disp{uint32(v) & 0x7FFF, dispG} }

// DH masks v to 16 bits.
func DH(v int64) Disp { return Disp{uint32(v) & 0xFFFF, dispH} }

// DV masks v to 31 bits.
func DV(v int64) Disp { return Disp{uint32(v) & 0x7FFFFFFF, dispV} }

// Value returns the masked payload before access alignment.
func (d Disp) Value() uint32 { return d.val }

// alignTo masks the displacement down to the access width in bytes.
func (d Disp) alignTo(size uint32) uint32 {
	return d.val &^ (size - 1)
}

// Mem is an addressing-mode operand: a base register plus an optional
// scaled index. A mode with an index always costs one preamble word
// that fuses base + (index << scale) into TPxx; the address temp then
// serves as the effective base for the main unit.
type Mem struct {
	base  Reg
	index Reg
	scale uint8 // log2 of the index scale
	hasIx bool
}

// M builds a base-plus-displacement addressing mode.
func M(base Reg) Mem { return Mem{base: base} }

// I builds a base + index*1 addressing mode.
func I(base, index Reg) Mem { return Mem{base: base, index: index, scale: 0, hasIx: true} }

// J builds a base + index*2 addressing mode.
func J(base, index Reg) Mem { return Mem{base: base, index: index, scale: 1, hasIx: true} }

// K builds a base + index*4 addressing mode.
func K(base, index Reg) Mem { return Mem{base: base, index: index, scale: 2, hasIx: true} }

// L builds a base + index*8 addressing mode.
func L(base, index Reg) Mem { return Mem{base: base, index: index, scale: 3, hasIx: true} }

// size selects the element width of a mnemonic family.
type size uint8

const (
	szB size = 1 // 8-bit
	szH size = 2 // 16-bit
	szW size = 4 // 32-bit
	szX size = 8 // 64-bit
)

func (s size) bits() uint32 { return uint32(s) * 8 }

// aluOp selects a binary or unary ALU operation inside the kernels.
type aluOp uint8

const (
	opAdd aluOp = iota
	opSub
	opAnd
	opAnn // and-not
	opOrr
	opOrn // or-not
	opXor
	opNot
	opNeg
)

var aluNames = [...]string{"add", "sub", "and", "ann", "orr", "orn", "xor", "not", "neg"}

func (op aluOp) String() string { return aluNames[op] }

// shOp selects a shift operation.
type shOp uint8

const (
	opShl shOp = iota
	opShr      // logical right
	opSar      // arithmetic right
	opRor
)

var shNames = [...]string{"shl", "shr", "sar", "ror"}

func (op shOp) String() string { return shNames[op] }

// signKind distinguishes the unsigned, signed and part-range variants
// of multiply and divide families. The part-range forms forward to the
// signed expansion; the two coincide on the carried targets.
type signKind uint8

const (
	signX signKind = iota // unsigned
	signN                 // signed
	signP                 // part-range; forwards to signed
)

// Op is the public operation selector taken by the arithmetic-then-
// jump combinators.
type Op = aluOp

const (
	OpAdd = opAdd
	OpSub = opSub
	OpAnd = opAnd
	OpAnn = opAnn
	OpOrr = opOrr
	OpOrn = opOrn
	OpXor = opXor
	OpNot = opNot
	OpNeg = opNeg
)

// Cond is a condition tag for the compare-and-jump families. The x
// suffix means unsigned, the n suffix signed; EZx/NZx are the direct
// zero tests.
type Cond uint8

const (
	EQx Cond = iota
	NEx
	LTx
	LEx
	GTx
	GEx
	LTn
	LEn
	GTn
	GEn
	EZx
	NZx
)

var condNames = [...]string{
	"EQ_x", "NE_x", "LT_x", "LE_x", "GT_x", "GE_x",
	"LT_n", "LE_n", "GT_n", "GE_n", "EZ_x", "NZ_x",
}

func (c Cond) String() string { return condNames[c] }

// signed reports whether the tag compares as signed.
func (c Cond) signed() bool { return c >= LTn && c <= GEn }
