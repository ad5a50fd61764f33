// Completion: 100% - Add and subtract families complete
package uniasm

// Add and subtract over the four element widths. Operand shapes follow
// the destination-first convention: LD reads memory into the register
// destination, ST and MR modify memory in place. The Z forms append
// the dedicated flag-setting unit for a following conditional jump.

// 64-bit add.
func (o *Out) AddxxRI(rd Reg, im Imm)           { o.be.binRI(opAdd, szX, false, rd, im) }
func (o *Out) AddxxZRI(rd Reg, im Imm)          { o.be.binRI(opAdd, szX, true, rd, im) }
func (o *Out) AddxxRR(rd, rs Reg)               { o.be.binRR(opAdd, szX, false, rd, rs) }
func (o *Out) AddxxZRR(rd, rs Reg)              { o.be.binRR(opAdd, szX, true, rd, rs) }
func (o *Out) AddxxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAdd, szX, false, rd, ms, ds) }
func (o *Out) AddxxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAdd, szX, true, rd, ms, ds) }
func (o *Out) AddxxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAdd, szX, false, rs, mg, dg) }
func (o *Out) AddxxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAdd, szX, true, rs, mg, dg) }
func (o *Out) AddxxMR(mg Mem, dg Disp, rs Reg)  { o.AddxxST(rs, mg, dg) }
func (o *Out) AddxxZMR(mg Mem, dg Disp, rs Reg) { o.AddxxZST(rs, mg, dg) }
func (o *Out) AddxxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAdd, szX, false, mg, dg, im) }
func (o *Out) AddxxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAdd, szX, true, mg, dg, im) }

// 32-bit add.
func (o *Out) AddwxRI(rd Reg, im Imm)           { o.be.binRI(opAdd, szW, false, rd, im) }
func (o *Out) AddwxZRI(rd Reg, im Imm)          { o.be.binRI(opAdd, szW, true, rd, im) }
func (o *Out) AddwxRR(rd, rs Reg)               { o.be.binRR(opAdd, szW, false, rd, rs) }
func (o *Out) AddwxZRR(rd, rs Reg)              { o.be.binRR(opAdd, szW, true, rd, rs) }
func (o *Out) AddwxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAdd, szW, false, rd, ms, ds) }
func (o *Out) AddwxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAdd, szW, true, rd, ms, ds) }
func (o *Out) AddwxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAdd, szW, false, rs, mg, dg) }
func (o *Out) AddwxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAdd, szW, true, rs, mg, dg) }
func (o *Out) AddwxMR(mg Mem, dg Disp, rs Reg)  { o.AddwxST(rs, mg, dg) }
func (o *Out) AddwxZMR(mg Mem, dg Disp, rs Reg) { o.AddwxZST(rs, mg, dg) }
func (o *Out) AddwxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAdd, szW, false, mg, dg, im) }
func (o *Out) AddwxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAdd, szW, true, mg, dg, im) }

// 16-bit add.
func (o *Out) AddhxRI(rd Reg, im Imm)           { o.be.binRI(opAdd, szH, false, rd, im) }
func (o *Out) AddhxZRI(rd Reg, im Imm)          { o.be.binRI(opAdd, szH, true, rd, im) }
func (o *Out) AddhxRR(rd, rs Reg)               { o.be.binRR(opAdd, szH, false, rd, rs) }
func (o *Out) AddhxZRR(rd, rs Reg)              { o.be.binRR(opAdd, szH, true, rd, rs) }
func (o *Out) AddhxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAdd, szH, false, rd, ms, ds) }
func (o *Out) AddhxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAdd, szH, true, rd, ms, ds) }
func (o *Out) AddhxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAdd, szH, false, rs, mg, dg) }
func (o *Out) AddhxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAdd, szH, true, rs, mg, dg) }
func (o *Out) AddhxMR(mg Mem, dg Disp, rs Reg)  { o.AddhxST(rs, mg, dg) }
func (o *Out) AddhxZMR(mg Mem, dg Disp, rs Reg) { o.AddhxZST(rs, mg, dg) }
func (o *Out) AddhxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAdd, szH, false, mg, dg, im) }
func (o *Out) AddhxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAdd, szH, true, mg, dg, im) }

// 8-bit add.
func (o *Out) AddbxRI(rd Reg, im Imm)           { o.be.binRI(opAdd, szB, false, rd, im) }
func (o *Out) AddbxZRI(rd Reg, im Imm)          { o.be.binRI(opAdd, szB, true, rd, im) }
func (o *Out) AddbxRR(rd, rs Reg)               { o.be.binRR(opAdd, szB, false, rd, rs) }
func (o *Out) AddbxZRR(rd, rs Reg)              { o.be.binRR(opAdd, szB, true, rd, rs) }
func (o *Out) AddbxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opAdd, szB, false, rd, ms, ds) }
func (o *Out) AddbxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opAdd, szB, true, rd, ms, ds) }
func (o *Out) AddbxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opAdd, szB, false, rs, mg, dg) }
func (o *Out) AddbxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opAdd, szB, true, rs, mg, dg) }
func (o *Out) AddbxMR(mg Mem, dg Disp, rs Reg)  { o.AddbxST(rs, mg, dg) }
func (o *Out) AddbxZMR(mg Mem, dg Disp, rs Reg) { o.AddbxZST(rs, mg, dg) }
func (o *Out) AddbxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opAdd, szB, false, mg, dg, im) }
func (o *Out) AddbxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opAdd, szB, true, mg, dg, im) }

// 64-bit sub.
func (o *Out) SubxxRI(rd Reg, im Imm)           { o.be.binRI(opSub, szX, false, rd, im) }
func (o *Out) SubxxZRI(rd Reg, im Imm)          { o.be.binRI(opSub, szX, true, rd, im) }
func (o *Out) SubxxRR(rd, rs Reg)               { o.be.binRR(opSub, szX, false, rd, rs) }
func (o *Out) SubxxZRR(rd, rs Reg)              { o.be.binRR(opSub, szX, true, rd, rs) }
func (o *Out) SubxxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opSub, szX, false, rd, ms, ds) }
func (o *Out) SubxxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opSub, szX, true, rd, ms, ds) }
func (o *Out) SubxxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opSub, szX, false, rs, mg, dg) }
func (o *Out) SubxxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opSub, szX, true, rs, mg, dg) }
func (o *Out) SubxxMR(mg Mem, dg Disp, rs Reg)  { o.SubxxST(rs, mg, dg) }
func (o *Out) SubxxZMR(mg Mem, dg Disp, rs Reg) { o.SubxxZST(rs, mg, dg) }
func (o *Out) SubxxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opSub, szX, false, mg, dg, im) }
func (o *Out) SubxxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opSub, szX, true, mg, dg, im) }

// 32-bit sub.
func (o *Out) SubwxRI(rd Reg, im Imm)           { o.be.binRI(opSub, szW, false, rd, im) }
func (o *Out) SubwxZRI(rd Reg, im Imm)          { o.be.binRI(opSub, szW, true, rd, im) }
func (o *Out) SubwxRR(rd, rs Reg)               { o.be.binRR(opSub, szW, false, rd, rs) }
func (o *Out) SubwxZRR(rd, rs Reg)              { o.be.binRR(opSub, szW, true, rd, rs) }
func (o *Out) SubwxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opSub, szW, false, rd, ms, ds) }
func (o *Out) SubwxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opSub, szW, true, rd, ms, ds) }
func (o *Out) SubwxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opSub, szW, false, rs, mg, dg) }
func (o *Out) SubwxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opSub, szW, true, rs, mg, dg) }
func (o *Out) SubwxMR(mg Mem, dg Disp, rs Reg)  { o.SubwxST(rs, mg, dg) }
func (o *Out) SubwxZMR(mg Mem, dg Disp, rs Reg) { o.SubwxZST(rs, mg, dg) }
func (o *Out) SubwxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opSub, szW, false, mg, dg, im) }
func (o *Out) SubwxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opSub, szW, true, mg, dg, im) }

// 16-bit sub.
func (o *Out) SubhxRI(rd Reg, im Imm)           { o.be.binRI(opSub, szH, false, rd, im) }
func (o *Out) SubhxZRI(rd Reg, im Imm)          { o.be.binRI(opSub, szH, true, rd, im) }
func (o *Out) SubhxRR(rd, rs Reg)               { o.be.binRR(opSub, szH, false, rd, rs) }
func (o *Out) SubhxZRR(rd, rs Reg)              { o.be.binRR(opSub, szH, true, rd, rs) }
func (o *Out) SubhxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opSub, szH, false, rd, ms, ds) }
func (o *Out) SubhxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opSub, szH, true, rd, ms, ds) }
func (o *Out) SubhxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opSub, szH, false, rs, mg, dg) }
func (o *Out) SubhxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opSub, szH, true, rs, mg, dg) }
func (o *Out) SubhxMR(mg Mem, dg Disp, rs Reg)  { o.SubhxST(rs, mg, dg) }
func (o *Out) SubhxZMR(mg Mem, dg Disp, rs Reg) { o.SubhxZST(rs, mg, dg) }
func (o *Out) SubhxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opSub, szH, false, mg, dg, im) }
func (o *Out) SubhxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opSub, szH, true, mg, dg, im) }

// 8-bit sub.
func (o *Out) SubbxRI(rd Reg, im Imm)           { o.be.binRI(opSub, szB, false, rd, im) }
func (o *Out) SubbxZRI(rd Reg, im Imm)          { o.be.binRI(opSub, szB, true, rd, im) }
func (o *Out) SubbxRR(rd, rs Reg)               { o.be.binRR(opSub, szB, false, rd, rs) }
func (o *Out) SubbxZRR(rd, rs Reg)              { o.be.binRR(opSub, szB, true, rd, rs) }
func (o *Out) SubbxLD(rd Reg, ms Mem, ds Disp)  { o.be.binLD(opSub, szB, false, rd, ms, ds) }
func (o *Out) SubbxZLD(rd Reg, ms Mem, ds Disp) { o.be.binLD(opSub, szB, true, rd, ms, ds) }
func (o *Out) SubbxST(rs Reg, mg Mem, dg Disp)  { o.be.binST(opSub, szB, false, rs, mg, dg) }
func (o *Out) SubbxZST(rs Reg, mg Mem, dg Disp) { o.be.binST(opSub, szB, true, rs, mg, dg) }
func (o *Out) SubbxMR(mg Mem, dg Disp, rs Reg)  { o.SubbxST(rs, mg, dg) }
func (o *Out) SubbxZMR(mg Mem, dg Disp, rs Reg) { o.SubbxZST(rs, mg, dg) }
func (o *Out) SubbxMI(mg Mem, dg Disp, im Imm)  { o.be.binMI(opSub, szB, false, mg, dg, im) }
func (o *Out) SubbxZMI(mg Mem, dg Disp, im Imm) { o.be.binMI(opSub, szB, true, mg, dg, im) }
