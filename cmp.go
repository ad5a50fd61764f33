// Completion: 100% - Compare and fused compare-and-jump complete
package uniasm

// Plain compares set the target's flags (or cr0) for host code that
// sequences its own branches; sub-word operands compare as their
// zero-extended values. The fused Cmj families pair the compare with
// the conditional jump in one expansion and honour the tag's
// signedness on the sub-word sizes. The Arj families run an operation
// with the flag unit and jump on the result.

// 64-bit compare.
func (o *Out) CmpxxRR(rs1, rs2 Reg)            { o.be.cmpRR(szX, rs1, rs2) }
func (o *Out) CmpxxRI(rs Reg, im Imm)          { o.be.cmpRI(szX, rs, im) }
func (o *Out) CmpxxRM(rs Reg, ms Mem, ds Disp) { o.be.cmpRM(szX, rs, ms, ds) }
func (o *Out) CmpxxMR(ms Mem, ds Disp, rs Reg) { o.be.cmpMR(szX, ms, ds, rs) }
func (o *Out) CmpxxMI(ms Mem, ds Disp, im Imm) { o.be.cmpMI(szX, ms, ds, im) }

// 32-bit compare.
func (o *Out) CmpwxRR(rs1, rs2 Reg)            { o.be.cmpRR(szW, rs1, rs2) }
func (o *Out) CmpwxRI(rs Reg, im Imm)          { o.be.cmpRI(szW, rs, im) }
func (o *Out) CmpwxRM(rs Reg, ms Mem, ds Disp) { o.be.cmpRM(szW, rs, ms, ds) }
func (o *Out) CmpwxMR(ms Mem, ds Disp, rs Reg) { o.be.cmpMR(szW, ms, ds, rs) }
func (o *Out) CmpwxMI(ms Mem, ds Disp, im Imm) { o.be.cmpMI(szW, ms, ds, im) }

// 16-bit compare.
func (o *Out) CmphxRR(rs1, rs2 Reg)            { o.be.cmpRR(szH, rs1, rs2) }
func (o *Out) CmphxRI(rs Reg, im Imm)          { o.be.cmpRI(szH, rs, im) }
func (o *Out) CmphxRM(rs Reg, ms Mem, ds Disp) { o.be.cmpRM(szH, rs, ms, ds) }
func (o *Out) CmphxMR(ms Mem, ds Disp, rs Reg) { o.be.cmpMR(szH, ms, ds, rs) }
func (o *Out) CmphxMI(ms Mem, ds Disp, im Imm) { o.be.cmpMI(szH, ms, ds, im) }

// 8-bit compare.
func (o *Out) CmpbxRR(rs1, rs2 Reg)            { o.be.cmpRR(szB, rs1, rs2) }
func (o *Out) CmpbxRI(rs Reg, im Imm)          { o.be.cmpRI(szB, rs, im) }
func (o *Out) CmpbxRM(rs Reg, ms Mem, ds Disp) { o.be.cmpRM(szB, rs, ms, ds) }
func (o *Out) CmpbxMR(ms Mem, ds Disp, rs Reg) { o.be.cmpMR(szB, ms, ds, rs) }
func (o *Out) CmpbxMI(ms Mem, ds Disp, im Imm) { o.be.cmpMI(szB, ms, ds, im) }

// 64-bit compare-and-jump.
func (o *Out) CmjxxRR(rs1, rs2 Reg, cc Cond, lb *Label) {
	o.be.cmpc(szX, cc, rs1, rs2)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjxxRI(rs Reg, im Imm, cc Cond, lb *Label) {
	o.be.cmpci(szX, cc, rs, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjxxRZ(rs Reg, cc Cond, lb *Label) {
	if cc == EZx || cc == NZx {
		o.be.jz(szX, cc, rs, lb)
		return
	}
	o.be.cmpci(szX, cc, rs, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjxxMZ(ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szX, ms, ds)
	if cc == EZx || cc == NZx {
		o.be.jz(szX, cc, TMxx, lb)
		return
	}
	o.be.cmpci(szX, cc, TMxx, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjxxMI(ms Mem, ds Disp, im Imm, cc Cond, lb *Label) {
	o.be.loadTM(szX, ms, ds)
	o.be.cmpci(szX, cc, TMxx, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjxxRM(rs Reg, ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szX, ms, ds)
	o.be.cmpc(szX, cc, rs, TMxx)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjxxMR(ms Mem, ds Disp, rs Reg, cc Cond, lb *Label) {
	o.be.loadTM(szX, ms, ds)
	o.be.cmpc(szX, cc, TMxx, rs)
	o.be.jcc(cc, lb)
}

// 32-bit compare-and-jump.
func (o *Out) CmjwxRR(rs1, rs2 Reg, cc Cond, lb *Label) {
	o.be.cmpc(szW, cc, rs1, rs2)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjwxRI(rs Reg, im Imm, cc Cond, lb *Label) {
	o.be.cmpci(szW, cc, rs, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjwxRZ(rs Reg, cc Cond, lb *Label) {
	if cc == EZx || cc == NZx {
		o.be.jz(szW, cc, rs, lb)
		return
	}
	o.be.cmpci(szW, cc, rs, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjwxMZ(ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szW, ms, ds)
	if cc == EZx || cc == NZx {
		o.be.jz(szW, cc, TMxx, lb)
		return
	}
	o.be.cmpci(szW, cc, TMxx, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjwxMI(ms Mem, ds Disp, im Imm, cc Cond, lb *Label) {
	o.be.loadTM(szW, ms, ds)
	o.be.cmpci(szW, cc, TMxx, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjwxRM(rs Reg, ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szW, ms, ds)
	o.be.cmpc(szW, cc, rs, TMxx)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjwxMR(ms Mem, ds Disp, rs Reg, cc Cond, lb *Label) {
	o.be.loadTM(szW, ms, ds)
	o.be.cmpc(szW, cc, TMxx, rs)
	o.be.jcc(cc, lb)
}

// 16-bit compare-and-jump.
func (o *Out) CmjhxRR(rs1, rs2 Reg, cc Cond, lb *Label) {
	o.be.cmpc(szH, cc, rs1, rs2)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjhxRI(rs Reg, im Imm, cc Cond, lb *Label) {
	o.be.cmpci(szH, cc, rs, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjhxRZ(rs Reg, cc Cond, lb *Label) {
	if cc == EZx || cc == NZx {
		o.be.jz(szH, cc, rs, lb)
		return
	}
	o.be.cmpci(szH, cc, rs, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjhxMZ(ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szH, ms, ds)
	if cc == EZx || cc == NZx {
		o.be.jz(szH, cc, TMxx, lb)
		return
	}
	o.be.cmpci(szH, cc, TMxx, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjhxMI(ms Mem, ds Disp, im Imm, cc Cond, lb *Label) {
	o.be.loadTM(szH, ms, ds)
	o.be.cmpci(szH, cc, TMxx, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjhxRM(rs Reg, ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szH, ms, ds)
	o.be.cmpc(szH, cc, rs, TMxx)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjhxMR(ms Mem, ds Disp, rs Reg, cc Cond, lb *Label) {
	o.be.loadTM(szH, ms, ds)
	o.be.cmpc(szH, cc, TMxx, rs)
	o.be.jcc(cc, lb)
}

// 8-bit compare-and-jump.
func (o *Out) CmjbxRR(rs1, rs2 Reg, cc Cond, lb *Label) {
	o.be.cmpc(szB, cc, rs1, rs2)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjbxRI(rs Reg, im Imm, cc Cond, lb *Label) {
	o.be.cmpci(szB, cc, rs, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjbxRZ(rs Reg, cc Cond, lb *Label) {
	if cc == EZx || cc == NZx {
		o.be.jz(szB, cc, rs, lb)
		return
	}
	o.be.cmpci(szB, cc, rs, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjbxMZ(ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szB, ms, ds)
	if cc == EZx || cc == NZx {
		o.be.jz(szB, cc, TMxx, lb)
		return
	}
	o.be.cmpci(szB, cc, TMxx, IC(0))
	o.be.jcc(cc, lb)
}

func (o *Out) CmjbxMI(ms Mem, ds Disp, im Imm, cc Cond, lb *Label) {
	o.be.loadTM(szB, ms, ds)
	o.be.cmpci(szB, cc, TMxx, im)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjbxRM(rs Reg, ms Mem, ds Disp, cc Cond, lb *Label) {
	o.be.loadTM(szB, ms, ds)
	o.be.cmpc(szB, cc, rs, TMxx)
	o.be.jcc(cc, lb)
}

func (o *Out) CmjbxMR(ms Mem, ds Disp, rs Reg, cc Cond, lb *Label) {
	o.be.loadTM(szB, ms, ds)
	o.be.cmpc(szB, cc, TMxx, rs)
	o.be.jcc(cc, lb)
}

// 64-bit arithmetic-and-jump.
func (o *Out) ArjxxRX(rd Reg, op Op, cc Cond, lb *Label) {
	o.be.unRX(op, szX, true, rd)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjxxMX(mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.unMX(op, szX, true, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjxxRI(rd Reg, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binRI(op, szX, true, rd, im)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjxxRR(rd, rs Reg, op Op, cc Cond, lb *Label) {
	o.be.binRR(op, szX, true, rd, rs)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjxxLD(rd Reg, ms Mem, ds Disp, op Op, cc Cond, lb *Label) {
	o.be.binLD(op, szX, true, rd, ms, ds)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjxxST(rs Reg, mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.binST(op, szX, true, rs, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjxxMI(mg Mem, dg Disp, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binMI(op, szX, true, mg, dg, im)
	o.be.jcc(cc, lb)
}

// 32-bit arithmetic-and-jump.
func (o *Out) ArjwxRX(rd Reg, op Op, cc Cond, lb *Label) {
	o.be.unRX(op, szW, true, rd)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjwxMX(mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.unMX(op, szW, true, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjwxRI(rd Reg, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binRI(op, szW, true, rd, im)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjwxRR(rd, rs Reg, op Op, cc Cond, lb *Label) {
	o.be.binRR(op, szW, true, rd, rs)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjwxLD(rd Reg, ms Mem, ds Disp, op Op, cc Cond, lb *Label) {
	o.be.binLD(op, szW, true, rd, ms, ds)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjwxST(rs Reg, mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.binST(op, szW, true, rs, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjwxMI(mg Mem, dg Disp, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binMI(op, szW, true, mg, dg, im)
	o.be.jcc(cc, lb)
}

// 16-bit arithmetic-and-jump.
func (o *Out) ArjhxRX(rd Reg, op Op, cc Cond, lb *Label) {
	o.be.unRX(op, szH, true, rd)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjhxMX(mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.unMX(op, szH, true, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjhxRI(rd Reg, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binRI(op, szH, true, rd, im)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjhxRR(rd, rs Reg, op Op, cc Cond, lb *Label) {
	o.be.binRR(op, szH, true, rd, rs)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjhxLD(rd Reg, ms Mem, ds Disp, op Op, cc Cond, lb *Label) {
	o.be.binLD(op, szH, true, rd, ms, ds)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjhxST(rs Reg, mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.binST(op, szH, true, rs, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjhxMI(mg Mem, dg Disp, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binMI(op, szH, true, mg, dg, im)
	o.be.jcc(cc, lb)
}

// 8-bit arithmetic-and-jump.
func (o *Out) ArjbxRX(rd Reg, op Op, cc Cond, lb *Label) {
	o.be.unRX(op, szB, true, rd)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjbxMX(mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.unMX(op, szB, true, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjbxRI(rd Reg, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binRI(op, szB, true, rd, im)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjbxRR(rd, rs Reg, op Op, cc Cond, lb *Label) {
	o.be.binRR(op, szB, true, rd, rs)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjbxLD(rd Reg, ms Mem, ds Disp, op Op, cc Cond, lb *Label) {
	o.be.binLD(op, szB, true, rd, ms, ds)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjbxST(rs Reg, mg Mem, dg Disp, op Op, cc Cond, lb *Label) {
	o.be.binST(op, szB, true, rs, mg, dg)
	o.be.jcc(cc, lb)
}

func (o *Out) ArjbxMI(mg Mem, dg Disp, im Imm, op Op, cc Cond, lb *Label) {
	o.be.binMI(op, szB, true, mg, dg, im)
	o.be.jcc(cc, lb)
}
