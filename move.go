// Completion: 100% - Move family complete
package uniasm

// Moves between registers, memory and immediates. Narrow loads
// zero-extend by default; the wn/hn/bn bridges sign-extend into the
// full register instead.

// 64-bit mov.
func (o *Out) MovxxRI(rd Reg, im Imm)          { o.be.movRI(szX, rd, im) }
func (o *Out) MovxxRR(rd, rs Reg)              { o.be.movRR(szX, rd, rs) }
func (o *Out) MovxxMI(mg Mem, dg Disp, im Imm) { o.be.movMI(szX, mg, dg, im) }
func (o *Out) MovxxLD(rd Reg, ms Mem, ds Disp) { o.be.movLD(szX, false, rd, ms, ds) }
func (o *Out) MovxxST(rs Reg, mg Mem, dg Disp) { o.be.movST(szX, rs, mg, dg) }

// 32-bit mov.
func (o *Out) MovwxRI(rd Reg, im Imm)          { o.be.movRI(szW, rd, im) }
func (o *Out) MovwxRR(rd, rs Reg)              { o.be.movRR(szW, rd, rs) }
func (o *Out) MovwxMI(mg Mem, dg Disp, im Imm) { o.be.movMI(szW, mg, dg, im) }
func (o *Out) MovwxLD(rd Reg, ms Mem, ds Disp) { o.be.movLD(szW, false, rd, ms, ds) }
func (o *Out) MovwxST(rs Reg, mg Mem, dg Disp) { o.be.movST(szW, rs, mg, dg) }

// 16-bit mov.
func (o *Out) MovhxRI(rd Reg, im Imm)          { o.be.movRI(szH, rd, im) }
func (o *Out) MovhxRR(rd, rs Reg)              { o.be.movRR(szH, rd, rs) }
func (o *Out) MovhxMI(mg Mem, dg Disp, im Imm) { o.be.movMI(szH, mg, dg, im) }
func (o *Out) MovhxLD(rd Reg, ms Mem, ds Disp) { o.be.movLD(szH, false, rd, ms, ds) }
func (o *Out) MovhxST(rs Reg, mg Mem, dg Disp) { o.be.movST(szH, rs, mg, dg) }

// 8-bit mov.
func (o *Out) MovbxRI(rd Reg, im Imm)          { o.be.movRI(szB, rd, im) }
func (o *Out) MovbxRR(rd, rs Reg)              { o.be.movRR(szB, rd, rs) }
func (o *Out) MovbxMI(mg Mem, dg Disp, im Imm) { o.be.movMI(szB, mg, dg, im) }
func (o *Out) MovbxLD(rd Reg, ms Mem, ds Disp) { o.be.movLD(szB, false, rd, ms, ds) }
func (o *Out) MovbxST(rs Reg, mg Mem, dg Disp) { o.be.movST(szB, rs, mg, dg) }

// Memory-to-memory moves through the instruction temp. The source is
// resolved and read before the destination preambles run, so the two
// modes may share scratch registers.
func (o *Out) MovxxMM(mg Mem, dg Disp, ms Mem, ds Disp) {
	o.be.loadTM(szX, ms, ds)
	o.be.movST(szX, TMxx, mg, dg)
}

func (o *Out) MovwxMM(mg Mem, dg Disp, ms Mem, ds Disp) {
	o.be.loadTM(szW, ms, ds)
	o.be.movST(szW, TMxx, mg, dg)
}

func (o *Out) MovhxMM(mg Mem, dg Disp, ms Mem, ds Disp) {
	o.be.loadTM(szH, ms, ds)
	o.be.movST(szH, TMxx, mg, dg)
}

func (o *Out) MovbxMM(mg Mem, dg Disp, ms Mem, ds Disp) {
	o.be.loadTM(szB, ms, ds)
	o.be.movST(szB, TMxx, mg, dg)
}

// Sign-extending load bridges.
func (o *Out) MovwnLD(rd Reg, ms Mem, ds Disp) { o.be.movLD(szW, true, rd, ms, ds) }
func (o *Out) MovhnLD(rd Reg, ms Mem, ds Disp) { o.be.movLD(szH, true, rd, ms, ds) }
func (o *Out) MovbnLD(rd Reg, ms Mem, ds Disp) { o.be.movLD(szB, true, rd, ms, ds) }
