// Completion: 100% - Logical and unary families complete
package uniasm

// Bitwise families: and, and-not (ann), or, or-not (orn), xor, plus
// the unary not and neg. The *-not forms complement the second source
// before combining, matching the target's native bic/orn and andc/orc
// instructions.

// 64-bit and.
func (o *Out) AndxxRI(rd Reg, im Imm)           { o.be.binRI(opAnd, szX, false, rd, im) }
func (o *Out) AndxxZRI(rd Reg, im Imm)          { o.be.binRI(opAnd, szX, true, rd, im) }
func (o *Out) AndxxRR(rd, rs Reg)               { o.be.binRR(opAnd, szX, false, rd, rs) }
func (o *Out) AndxxZRR(rd, rs Reg)              { o.be.binRR(opAnd, szX, true, rd, rs) }
func (o *Out) AndxxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnd, szX, false, rd, ms, ds) }
func (o *Out) AndxxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnd, szX, true, rd, ms, ds) }
func (o *Out) AndxxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnd, szX, false, rs, mg, dg) }
func (o *Out) AndxxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnd, szX, true, rs, mg, dg) }
func (o *Out) AndxxMR(mg Mem, dg Disp, rs Reg)  { o.AndxxST(rs, mg, dg) }
func (o *Out) AndxxZMR(mg Mem, dg Disp, rs Reg) { o.AndxxZST(rs, mg, dg) }
func (o *Out) AndxxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnd, szX, false, mg, dg, im) }
func (o *Out) AndxxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnd, szX, true, mg, dg, im) }

// 32-bit and.
func (o *Out) AndwxRI(rd Reg, im Imm)           { o.be.binRI(opAnd, szW, false, rd, im) }
func (o *Out) AndwxZRI(rd Reg, im Imm)          { o.be.binRI(opAnd, szW, true, rd, im) }
func (o *Out) AndwxRR(rd, rs Reg)               { o.be.binRR(opAnd, szW, false, rd, rs) }
func (o *Out) AndwxZRR(rd, rs Reg)              { o.be.binRR(opAnd, szW, true, rd, rs) }
func (o *Out) AndwxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnd, szW, false, rd, ms, ds) }
func (o *Out) AndwxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnd, szW, true, rd, ms, ds) }
func (o *Out) AndwxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnd, szW, false, rs, mg, dg) }
func (o *Out) AndwxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnd, szW, true, rs, mg, dg) }
func (o *Out) AndwxMR(mg Mem, dg Disp, rs Reg)  { o.AndwxST(rs, mg, dg) }
func (o *Out) AndwxZMR(mg Mem, dg Disp, rs Reg) { o.AndwxZST(rs, mg, dg) }
func (o *Out) AndwxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnd, szW, false, mg, dg, im) }
func (o *Out) AndwxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnd, szW, true, mg, dg, im) }

// 16-bit and.
func (o *Out) AndhxRI(rd Reg, im Imm)           { o.be.binRI(opAnd, szH, false, rd, im) }
func (o *Out) AndhxZRI(rd Reg, im Imm)          { o.be.binRI(opAnd, szH, true, rd, im) }
func (o *Out) AndhxRR(rd, rs Reg)               { o.be.binRR(opAnd, szH, false, rd, rs) }
func (o *Out) AndhxZRR(rd, rs Reg)              { o.be.binRR(opAnd, szH, true, rd, rs) }
func (o *Out) AndhxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnd, szH, false, rd, ms, ds) }
func (o *Out) AndhxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnd, szH, true, rd, ms, ds) }
func (o *Out) AndhxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnd, szH, false, rs, mg, dg) }
func (o *Out) AndhxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnd, szH, true, rs, mg, dg) }
func (o *Out) AndhxMR(mg Mem, dg Disp, rs Reg)  { o.AndhxST(rs, mg, dg) }
func (o *Out) AndhxZMR(mg Mem, dg Disp, rs Reg) { o.AndhxZST(rs, mg, dg) }
func (o *Out) AndhxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnd, szH, false, mg, dg, im) }
func (o *Out) AndhxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnd, szH, true, mg, dg, im) }

// 8-bit and.
func (o *Out) AndbxRI(rd Reg, im Imm)           { o.be.binRI(opAnd, szB, false, rd, im) }
func (o *Out) AndbxZRI(rd Reg, im Imm)          { o.be.binRI(opAnd, szB, true, rd, im) }
func (o *Out) AndbxRR(rd, rs Reg)               { o.be.binRR(opAnd, szB, false, rd, rs) }
func (o *Out) AndbxZRR(rd, rs Reg)              { o.be.binRR(opAnd, szB, true, rd, rs) }
func (o *Out) AndbxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnd, szB, false, rd, ms, ds) }
func (o *Out) AndbxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnd, szB, true, rd, ms, ds) }
func (o *Out) AndbxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnd, szB, false, rs, mg, dg) }
func (o *Out) AndbxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnd, szB, true, rs, mg, dg) }
func (o *Out) AndbxMR(mg Mem, dg Disp, rs Reg)  { o.AndbxST(rs, mg, dg) }
func (o *Out) AndbxZMR(mg Mem, dg Disp, rs Reg) { o.AndbxZST(rs, mg, dg) }
func (o *Out) AndbxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnd, szB, false, mg, dg, im) }
func (o *Out) AndbxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnd, szB, true, mg, dg, im) }

// 64-bit ann.
func (o *Out) AnnxxRI(rd Reg, im Imm)           { o.be.binRI(opAnn, szX, false, rd, im) }
func (o *Out) AnnxxZRI(rd Reg, im Imm)          { o.be.binRI(opAnn, szX, true, rd, im) }
func (o *Out) AnnxxRR(rd, rs Reg)               { o.be.binRR(opAnn, szX, false, rd, rs) }
func (o *Out) AnnxxZRR(rd, rs Reg)              { o.be.binRR(opAnn, szX, true, rd, rs) }
func (o *Out) AnnxxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnn, szX, false, rd, ms, ds) }
func (o *Out) AnnxxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnn, szX, true, rd, ms, ds) }
func (o *Out) AnnxxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnn, szX, false, rs, mg, dg) }
func (o *Out) AnnxxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnn, szX, true, rs, mg, dg) }
func (o *Out) AnnxxMR(mg Mem, dg Disp, rs Reg)  { o.AnnxxST(rs, mg, dg) }
func (o *Out) AnnxxZMR(mg Mem, dg Disp, rs Reg) { o.AnnxxZST(rs, mg, dg) }
func (o *Out) AnnxxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnn, szX, false, mg, dg, im) }
func (o *Out) AnnxxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnn, szX, true, mg, dg, im) }

// 32-bit ann.
func (o *Out) AnnwxRI(rd Reg, im Imm)           { o.be.binRI(opAnn, szW, false, rd, im) }
func (o *Out) AnnwxZRI(rd Reg, im Imm)          { o.be.binRI(opAnn, szW, true, rd, im) }
func (o *Out) AnnwxRR(rd, rs Reg)               { o.be.binRR(opAnn, szW, false, rd, rs) }
func (o *Out) AnnwxZRR(rd, rs Reg)              { o.be.binRR(opAnn, szW, true, rd, rs) }
func (o *Out) AnnwxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnn, szW, false, rd, ms, ds) }
func (o *Out) AnnwxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnn, szW, true, rd, ms, ds) }
func (o *Out) AnnwxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnn, szW, false, rs, mg, dg) }
func (o *Out) AnnwxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnn, szW, true, rs, mg, dg) }
func (o *Out) AnnwxMR(mg Mem, dg Disp, rs Reg)  { o.AnnwxST(rs, mg, dg) }
func (o *Out) AnnwxZMR(mg Mem, dg Disp, rs Reg) { o.AnnwxZST(rs, mg, dg) }
func (o *Out) AnnwxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnn, szW, false, mg, dg, im) }
func (o *Out) AnnwxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnn, szW, true, mg, dg, im) }

// 16-bit ann.
func (o *Out) AnnhxRI(rd Reg, im Imm)           { o.be.binRI(opAnn, szH, false, rd, im) }
func (o *Out) AnnhxZRI(rd Reg, im Imm)          { o.be.binRI(opAnn, szH, true, rd, im) }
func (o *Out) AnnhxRR(rd, rs Reg)               { o.be.binRR(opAnn, szH, false, rd, rs) }
func (o *Out) AnnhxZRR(rd, rs Reg)              { o.be.binRR(opAnn, szH, true, rd, rs) }
func (o *Out) AnnhxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnn, szH, false, rd, ms, ds) }
func (o *Out) AnnhxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnn, szH, true, rd, ms, ds) }
func (o *Out) AnnhxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnn, szH, false, rs, mg, dg) }
func (o *Out) AnnhxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnn, szH, true, rs, mg, dg) }
func (o *Out) AnnhxMR(mg Mem, dg Disp, rs Reg)  { o.AnnhxST(rs, mg, dg) }
func (o *Out) AnnhxZMR(mg Mem, dg Disp, rs Reg) { o.AnnhxZST(rs, mg, dg) }
func (o *Out) AnnhxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnn, szH, false, mg, dg, im) }
func (o *Out) AnnhxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnn, szH, true, mg, dg, im) }

// 8-bit ann.
func (o *Out) AnnbxRI(rd Reg, im Imm)           { o.be.binRI(opAnn, szB, false, rd, im) }
func (o *Out) AnnbxZRI(rd Reg, im Imm)          { o.be.binRI(opAnn, szB, true, rd, im) }
func (o *Out) AnnbxRR(rd, rs Reg)               { o.be.binRR(opAnn, szB, false, rd, rs) }
func (o *Out) AnnbxZRR(rd, rs Reg)              { o.be.binRR(opAnn, szB, true, rd, rs) }
func (o *Out) AnnbxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAnn, szB, false, rd, ms, ds) }
func (o *Out) AnnbxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAnn, szB, true, rd, ms, ds) }
func (o *Out) AnnbxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAnn, szB, false, rs, mg, dg) }
func (o *Out) AnnbxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAnn, szB, true, rs, mg, dg) }
func (o *Out) AnnbxMR(mg Mem, dg Disp, rs Reg)  { o.AnnbxST(rs, mg, dg) }
func (o *Out) AnnbxZMR(mg Mem, dg Disp, rs Reg) { o.AnnbxZST(rs, mg, dg) }
func (o *Out) AnnbxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAnn, szB, false, mg, dg, im) }
func (o *Out) AnnbxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAnn, szB, true, mg, dg, im) }

// 64-bit orr.
func (o *Out) OrrxxRI(rd Reg, im Imm)           { o.be.binRI(opOrr, szX, false, rd, im) }
func (o *Out) OrrxxZRI(rd Reg, im Imm)          { o.be.binRI(opOrr, szX, true, rd, im) }
func (o *Out) OrrxxRR(rd, rs Reg)               { o.be.binRR(opOrr, szX, false, rd, rs) }
func (o *Out) OrrxxZRR(rd, rs Reg)              { o.be.binRR(opOrr, szX, true, rd, rs) }
func (o *Out) OrrxxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrr, szX, false, rd, ms, ds) }
func (o *Out) OrrxxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrr, szX, true, rd, ms, ds) }
func (o *Out) OrrxxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrr, szX, false, rs, mg, dg) }
func (o *Out) OrrxxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrr, szX, true, rs, mg, dg) }
func (o *Out) OrrxxMR(mg Mem, dg Disp, rs Reg)  { o.OrrxxST(rs, mg, dg) }
func (o *Out) OrrxxZMR(mg Mem, dg Disp, rs Reg) { o.OrrxxZST(rs, mg, dg) }
func (o *Out) OrrxxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrr, szX, false, mg, dg, im) }
func (o *Out) OrrxxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrr, szX, true, mg, dg, im) }

// 32-bit orr.
func (o *Out) OrrwxRI(rd Reg, im Imm)           { o.be.binRI(opOrr, szW, false, rd, im) }
func (o *Out) OrrwxZRI(rd Reg, im Imm)          { o.be.binRI(opOrr, szW, true, rd, im) }
func (o *Out) OrrwxRR(rd, rs Reg)               { o.be.binRR(opOrr, szW, false, rd, rs) }
func (o *Out) OrrwxZRR(rd, rs Reg)              { o.be.binRR(opOrr, szW, true, rd, rs) }
func (o *Out) OrrwxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrr, szW, false, rd, ms, ds) }
func (o *Out) OrrwxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrr, szW, true, rd, ms, ds) }
func (o *Out) OrrwxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrr, szW, false, rs, mg, dg) }
func (o *Out) OrrwxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrr, szW, true, rs, mg, dg) }
func (o *Out) OrrwxMR(mg Mem, dg Disp, rs Reg)  { o.OrrwxST(rs, mg, dg) }
func (o *Out) OrrwxZMR(mg Mem, dg Disp, rs Reg) { o.OrrwxZST(rs, mg, dg) }
func (o *Out) OrrwxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrr, szW, false, mg, dg, im) }
func (o *Out) OrrwxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrr, szW, true, mg, dg, im) }

// 16-bit orr.
func (o *Out) OrrhxRI(rd Reg, im Imm)           { o.be.binRI(opOrr, szH, false, rd, im) }
func (o *Out) OrrhxZRI(rd Reg, im Imm)          { o.be.binRI(opOrr, szH, true, rd, im) }
func (o *Out) OrrhxRR(rd, rs Reg)               { o.be.binRR(opOrr, szH, false, rd, rs) }
func (o *Out) OrrhxZRR(rd, rs Reg)              { o.be.binRR(opOrr, szH, true, rd, rs) }
func (o *Out) OrrhxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrr, szH, false, rd, ms, ds) }
func (o *Out) OrrhxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrr, szH, true, rd, ms, ds) }
func (o *Out) OrrhxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrr, szH, false, rs, mg, dg) }
func (o *Out) OrrhxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrr, szH, true, rs, mg, dg) }
func (o *Out) OrrhxMR(mg Mem, dg Disp, rs Reg)  { o.OrrhxST(rs, mg, dg) }
func (o *Out) OrrhxZMR(mg Mem, dg Disp, rs Reg) { o.OrrhxZST(rs, mg, dg) }
func (o *Out) OrrhxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrr, szH, false, mg, dg, im) }
func (o *Out) OrrhxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrr, szH, true, mg, dg, im) }

// 8-bit orr.
func (o *Out) OrrbxRI(rd Reg, im Imm)           { o.be.binRI(opOrr, szB, false, rd, im) }
func (o *Out) OrrbxZRI(rd Reg, im Imm)          { o.be.binRI(opOrr, szB, true, rd, im) }
func (o *Out) OrrbxRR(rd, rs Reg)               { o.be.binRR(opOrr, szB, false, rd, rs) }
func (o *Out) OrrbxZRR(rd, rs Reg)              { o.be.binRR(opOrr, szB, true, rd, rs) }
func (o *Out) OrrbxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrr, szB, false, rd, ms, ds) }
func (o *Out) OrrbxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrr, szB, true, rd, ms, ds) }
func (o *Out) OrrbxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrr, szB, false, rs, mg, dg) }
func (o *Out) OrrbxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrr, szB, true, rs, mg, dg) }
func (o *Out) OrrbxMR(mg Mem, dg Disp, rs Reg)  { o.OrrbxST(rs, mg, dg) }
func (o *Out) OrrbxZMR(mg Mem, dg Disp, rs Reg) { o.OrrbxZST(rs, mg, dg) }
func (o *Out) OrrbxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrr, szB, false, mg, dg, im) }
func (o *Out) OrrbxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrr, szB, true, mg, dg, im) }

// 64-bit orn.
func (o *Out) OrnxxRI(rd Reg, im Imm)           { o.be.binRI(opOrn, szX, false, rd, im) }
func (o *Out) OrnxxZRI(rd Reg, im Imm)          { o.be.binRI(opOrn, szX, true, rd, im) }
func (o *Out) OrnxxRR(rd, rs Reg)               { o.be.binRR(opOrn, szX, false, rd, rs) }
func (o *Out) OrnxxZRR(rd, rs Reg)              { o.be.binRR(opOrn, szX, true, rd, rs) }
func (o *Out) OrnxxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrn, szX, false, rd, ms, ds) }
func (o *Out) OrnxxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrn, szX, true, rd, ms, ds) }
func (o *Out) OrnxxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrn, szX, false, rs, mg, dg) }
func (o *Out) OrnxxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrn, szX, true, rs, mg, dg) }
func (o *Out) OrnxxMR(mg Mem, dg Disp, rs Reg)  { o.OrnxxST(rs, mg, dg) }
func (o *Out) OrnxxZMR(mg Mem, dg Disp, rs Reg) { o.OrnxxZST(rs, mg, dg) }
func (o *Out) OrnxxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrn, szX, false, mg, dg, im) }
func (o *Out) OrnxxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrn, szX, true, mg, dg, im) }

// 32-bit orn.
func (o *Out) OrnwxRI(rd Reg, im Imm)           { o.be.binRI(opOrn, szW, false, rd, im) }
func (o *Out) OrnwxZRI(rd Reg, im Imm)          { o.be.binRI(opOrn, szW, true, rd, im) }
func (o *Out) OrnwxRR(rd, rs Reg)               { o.be.binRR(opOrn, szW, false, rd, rs) }
func (o *Out) OrnwxZRR(rd, rs Reg)              { o.be.binRR(opOrn, szW, true, rd, rs) }
func (o *Out) OrnwxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrn, szW, false, rd, ms, ds) }
func (o *Out) OrnwxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrn, szW, true, rd, ms, ds) }
func (o *Out) OrnwxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrn, szW, false, rs, mg, dg) }
func (o *Out) OrnwxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrn, szW, true, rs, mg, dg) }
func (o *Out) OrnwxMR(mg Mem, dg Disp, rs Reg)  { o.OrnwxST(rs, mg, dg) }
func (o *Out) OrnwxZMR(mg Mem, dg Disp, rs Reg) { o.OrnwxZST(rs, mg, dg) }
func (o *Out) OrnwxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrn, szW, false, mg, dg, im) }
func (o *Out) OrnwxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrn, szW, true, mg, dg, im) }

// 16-bit orn.
func (o *Out) OrnhxRI(rd Reg, im Imm)           { o.be.binRI(opOrn, szH, false, rd, im) }
func (o *Out) OrnhxZRI(rd Reg, im Imm)          { o.be.binRI(opOrn, szH, true, rd, im) }
func (o *Out) OrnhxRR(rd, rs Reg)               { o.be.binRR(opOrn, szH, false, rd, rs) }
func (o *Out) OrnhxZRR(rd, rs Reg)              { o.be.binRR(opOrn, szH, true, rd, rs) }
func (o *Out) OrnhxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrn, szH, false, rd, ms, ds) }
func (o *Out) OrnhxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrn, szH, true, rd, ms, ds) }
func (o *Out) OrnhxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrn, szH, false, rs, mg, dg) }
func (o *Out) OrnhxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrn, szH, true, rs, mg, dg) }
func (o *Out) OrnhxMR(mg Mem, dg Disp, rs Reg)  { o.OrnhxST(rs, mg, dg) }
func (o *Out) OrnhxZMR(mg Mem, dg Disp, rs Reg) { o.OrnhxZST(rs, mg, dg) }
func (o *Out) OrnhxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrn, szH, false, mg, dg, im) }
func (o *Out) OrnhxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrn, szH, true, mg, dg, im) }

// 8-bit orn.
func (o *Out) OrnbxRI(rd Reg, im Imm)           { o.be.binRI(opOrn, szB, false, rd, im) }
func (o *Out) OrnbxZRI(rd Reg, im Imm)          { o.be.binRI(opOrn, szB, true, rd, im) }
func (o *Out) OrnbxRR(rd, rs Reg)               { o.be.binRR(opOrn, szB, false, rd, rs) }
func (o *Out) OrnbxZRR(rd, rs Reg)              { o.be.binRR(opOrn, szB, true, rd, rs) }
func (o *Out) OrnbxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opOrn, szB, false, rd, ms, ds) }
func (o *Out) OrnbxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opOrn, szB, true, rd, ms, ds) }
func (o *Out) OrnbxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opOrn, szB, false, rs, mg, dg) }
func (o *Out) OrnbxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opOrn, szB, true, rs, mg, dg) }
func (o *Out) OrnbxMR(mg Mem, dg Disp, rs Reg)  { o.OrnbxST(rs, mg, dg) }
func (o *Out) OrnbxZMR(mg Mem, dg Disp, rs Reg) { o.OrnbxZST(rs, mg, dg) }
func (o *Out) OrnbxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opOrn, szB, false, mg, dg, im) }
func (o *Out) OrnbxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opOrn, szB, true, mg, dg, im) }

// 64-bit xor.
func (o *Out) XorxxRI(rd Reg, im Imm)           { o.be.binRI(opXor, szX, false, rd, im) }
func (o *Out) XorxxZRI(rd Reg, im Imm)          { o.be.binRI(opXor, szX, true, rd, im) }
func (o *Out) XorxxRR(rd, rs Reg)               { o.be.binRR(opXor, szX, false, rd, rs) }
func (o *Out) XorxxZRR(rd, rs Reg)              { o.be.binRR(opXor, szX, true, rd, rs) }
func (o *Out) XorxxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opXor, szX, false, rd, ms, ds) }
func (o *Out) XorxxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opXor, szX, true, rd, ms, ds) }
func (o *Out) XorxxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opXor, szX, false, rs, mg, dg) }
func (o *Out) XorxxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opXor, szX, true, rs, mg, dg) }
func (o *Out) XorxxMR(mg Mem, dg Disp, rs Reg)  { o.XorxxST(rs, mg, dg) }
func (o *Out) XorxxZMR(mg Mem, dg Disp, rs Reg) { o.XorxxZST(rs, mg, dg) }
func (o *Out) XorxxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opXor, szX, false, mg, dg, im) }
func (o *Out) XorxxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opXor, szX, true, mg, dg, im) }

// 32-bit xor.
func (o *Out) XorwxRI(rd Reg, im Imm)           { o.be.binRI(opXor, szW, false, rd, im) }
func (o *Out) XorwxZRI(rd Reg, im Imm)          { o.be.binRI(opXor, szW, true, rd, im) }
func (o *Out) XorwxRR(rd, rs Reg)               { o.be.binRR(opXor, szW, false, rd, rs) }
func (o *Out) XorwxZRR(rd, rs Reg)              { o.be.binRR(opXor, szW, true, rd, rs) }
func (o *Out) XorwxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opXor, szW, false, rd, ms, ds) }
func (o *Out) XorwxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opXor, szW, true, rd, ms, ds) }
func (o *Out) XorwxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opXor, szW, false, rs, mg, dg) }
func (o *Out) XorwxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opXor, szW, true, rs, mg, dg) }
func (o *Out) XorwxMR(mg Mem, dg Disp, rs Reg)  { o.XorwxST(rs, mg, dg) }
func (o *Out) XorwxZMR(mg Mem, dg Disp, rs Reg) { o.XorwxZST(rs, mg, dg) }
func (o *Out) XorwxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opXor, szW, false, mg, dg, im) }
func (o *Out) XorwxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opXor, szW, true, mg, dg, im) }

// 16-bit xor.
func (o *Out) XorhxRI(rd Reg, im Imm)           { o.be.binRI(opXor, szH, false, rd, im) }
func (o *Out) XorhxZRI(rd Reg, im Imm)          { o.be.binRI(opXor, szH, true, rd, im) }
func (o *Out) XorhxRR(rd, rs Reg)               { o.be.binRR(opXor, szH, false, rd, rs) }
func (o *Out) XorhxZRR(rd, rs Reg)              { o.be.binRR(opXor, szH, true, rd, rs) }
func (o *Out) XorhxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opXor, szH, false, rd, ms, ds) }
func (o *Out) XorhxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opXor, szH, true, rd, ms, ds) }
func (o *Out) XorhxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opXor, szH, false, rs, mg, dg) }
func (o *Out) XorhxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opXor, szH, true, rs, mg, dg) }
func (o *Out) XorhxMR(mg Mem, dg Disp, rs Reg)  { o.XorhxST(rs, mg, dg) }
func (o *Out) XorhxZMR(mg Mem, dg Disp, rs Reg) { o.XorhxZST(rs, mg, dg) }
func (o *Out) XorhxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opXor, szH, false, mg, dg, im) }
func (o *Out) XorhxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opXor, szH, true, mg, dg, im) }

// 8-bit xor.
func (o *Out) XorbxRI(rd Reg, im Imm)           { o.be.binRI(opXor, szB, false, rd, im) }
func (o *Out) XorbxZRI(rd Reg, im Imm)          { o.be.binRI(opXor, szB, true, rd, im) }
func (o *Out) XorbxRR(rd, rs Reg)               { o.be.binRR(opXor, szB, false, rd, rs) }
func (o *Out) XorbxZRR(rd, rs Reg)              { o.be.binRR(opXor, szB, true, rd, rs) }
func (o *Out) XorbxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opXor, szB, false, rd, ms, ds) }
func (o *Out) XorbxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opXor, szB, true, rd, ms, ds) }
func (o *Out) XorbxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opXor, szB, false, rs, mg, dg) }
func (o *Out) XorbxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opXor, szB, true, rs, mg, dg) }
func (o *Out) XorbxMR(mg Mem, dg Disp, rs Reg)  { o.XorbxST(rs, mg, dg) }
func (o *Out) XorbxZMR(mg Mem, dg Disp, rs Reg) { o.XorbxZST(rs, mg, dg) }
func (o *Out) XorbxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opXor, szB, false, mg, dg, im) }
func (o *Out) XorbxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opXor, szB, true, mg, dg, im) }

// 64-bit not.
func (o *Out) NotxxRX(rd Reg)          { o.be.unRX(opNot, szX, false, rd) }
func (o *Out) NotxxMX(mg Mem, dg Disp) { o.be.unMX(opNot, szX, false, mg, dg) }

// 32-bit not.
func (o *Out) NotwxRX(rd Reg)          { o.be.unRX(opNot, szW, false, rd) }
func (o *Out) NotwxMX(mg Mem, dg Disp) { o.be.unMX(opNot, szW, false, mg, dg) }

// 16-bit not.
func (o *Out) NothxRX(rd Reg)          { o.be.unRX(opNot, szH, false, rd) }
func (o *Out) NothxMX(mg Mem, dg Disp) { o.be.unMX(opNot, szH, false, mg, dg) }

// 8-bit not.
func (o *Out) NotbxRX(rd Reg)          { o.be.unRX(opNot, szB, false, rd) }
func (o *Out) NotbxMX(mg Mem, dg Disp) { o.be.unMX(opNot, szB, false, mg, dg) }

// 64-bit neg.
func (o *Out) NegxxRX(rd Reg)           { o.be.unRX(opNeg, szX, false, rd) }
func (o *Out) NegxxZRX(rd Reg)          { o.be.unRX(opNeg, szX, true, rd) }
func (o *Out) NegxxMX(mg Mem, dg Disp)  { o.be.unMX(opNeg, szX, false, mg, dg) }
func (o *Out) NegxxZMX(mg Mem, dg Disp) { o.be.unMX(opNeg, szX, true, mg, dg) }

// 32-bit neg.
func (o *Out) NegwxRX(rd Reg)           { o.be.unRX(opNeg, szW, false, rd) }
func (o *Out) NegwxZRX(rd Reg)          { o.be.unRX(opNeg, szW, true, rd) }
func (o *Out) NegwxMX(mg Mem, dg Disp)  { o.be.unMX(opNeg, szW, false, mg, dg) }
func (o *Out) NegwxZMX(mg Mem, dg Disp) { o.be.unMX(opNeg, szW, true, mg, dg) }

// 16-bit neg.
func (o *Out) NeghxRX(rd Reg)           { o.be.unRX(opNeg, szH, false, rd) }
func (o *Out) NeghxZRX(rd Reg)          { o.be.unRX(opNeg, szH, true, rd) }
func (o *Out) NeghxMX(mg Mem, dg Disp)  { o.be.unMX(opNeg, szH, false, mg, dg) }
func (o *Out) NeghxZMX(mg Mem, dg Disp) { o.be.unMX(opNeg, szH, true, mg, dg) }

// 8-bit neg.
func (o *Out) NegbxRX(rd Reg)           { o.be.unRX(opNeg, szB, false, rd) }
func (o *Out) NegbxZRX(rd Reg)          { o.be.unRX(opNeg, szB, true, rd) }
func (o *Out) NegbxMX(mg Mem, dg Disp)  { o.be.unMX(opNeg, szB, false, mg, dg) }
func (o *Out) NegbxZMX(mg Mem, dg Disp) { o.be.unMX(opNeg, szB, true, mg, dg) }
