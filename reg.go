// Completion: 100% - Register module complete
package uniasm

// BASE register aliases shared by every target. The names follow the
// x86 convention so that host code reads the same regardless of the
// selected ISA; each kernel maps an alias to its native encoding.
//
// Fourteen registers (Reax..RegE) are allocatable by the host. The
// remaining aliases are implementation-reserved scratch registers:
//
//	TMxx - instruction temp (loaded memory operands, div/rem temps)
//	TIxx - immediate temp (materialised immediates)
//	TDxx - displacement temp (materialised displacements)
//	TPxx - address temp (base+index fusion)
//	TZxx - zero register (or the closest the target has)
//	SPxx - stack pointer
//
// Scratch registers are live only within one mnemonic expansion; the
// host must not assume they survive across mnemonics.
type Reg uint8

const (
	Reax Reg = iota
	Recx
	Redx
	Rebx
	Rebp
	Resi
	Redi
	Reg8
	Reg9
	RegA
	RegB
	RegC
	RegD
	RegE

	TMxx
	TIxx
	TDxx
	TPxx
	TZxx
	SPxx

	numRegs
)

// baseRegs lists the allocatable registers in their canonical order,
// used by the bulk save/restore sequences.
var baseRegs = [...]Reg{
	Reax, Recx, Redx, Rebx, Rebp, Resi, Redi,
	Reg8, Reg9, RegA, RegB, RegC, RegD, RegE,
}

// scratchRegs lists the scratch registers included in the bulk
// save/restore sequences. TZxx and SPxx are excluded: the zero
// register has nothing to save and the stack pointer is the thing
// being moved.
var scratchRegs = [...]Reg{TMxx, TIxx, TDxx, TPxx}

var regNames = [numRegs]string{
	"Reax", "Recx", "Redx", "Rebx", "Rebp", "Resi", "Redi",
	"Reg8", "Reg9", "RegA", "RegB", "RegC", "RegD", "RegE",
	"TMxx", "TIxx", "TDxx", "TPxx", "TZxx", "SPxx",
}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return "R???"
}

// IsScratch reports whether r is one of the implementation-reserved
// scratch registers.
func (r Reg) IsScratch() bool {
	return r >= TMxx && r < numRegs
}

// AArch64 encodings. x4 is reserved for stack frame machinery above
// this layer and stays unused; TZxx and SPxx share encoding 31,
// disambiguated by the instruction.
var a64Regs = [numRegs]uint32{
	Reax: 0, Recx: 1, Redx: 2, Rebx: 3, Rebp: 5, Resi: 6, Redi: 7,
	Reg8: 8, Reg9: 9, RegA: 10, RegB: 11, RegC: 12, RegD: 13, RegE: 14,
	TMxx: 15, TIxx: 16, TDxx: 17, TPxx: 18, TZxx: 31, SPxx: 31,
}

// PowerPC64 encodings. r0 doubles as the zero register in the base
// position of D-form instructions, r1 is the ABI stack pointer, r2 and
// r13 (TOC, thread pointer) are avoided.
var p64Regs = [numRegs]uint32{
	Reax: 4, Recx: 5, Redx: 6, Rebx: 7, Rebp: 8, Resi: 9, Redi: 10,
	Reg8: 11, Reg9: 12, RegA: 14, RegB: 15, RegC: 16, RegD: 17, RegE: 18,
	TMxx: 24, TIxx: 25, TDxx: 26, TPxx: 27, TZxx: 0, SPxx: 1,
}
