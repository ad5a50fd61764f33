// Completion: 100% - Shift and rotate families complete
package uniasm

// Shifts take the count either as an immediate operand or from a
// register; counts are reduced modulo the operand width. The rotate
// family is defined for the 32- and 64-bit widths only, where the
// targets have native rotate paths.

// 64-bit shl.
func (o *Out) ShlxxRI(rd Reg, im Imm)           { o.be.shfRI(opShl, szX, false, rd, im.val) }
func (o *Out) ShlxxZRI(rd Reg, im Imm)          { o.be.shfRI(opShl, szX, true, rd, im.val) }
func (o *Out) ShlxxRR(rd, rs Reg)               { o.be.shfRR(opShl, szX, false, rd, rs) }
func (o *Out) ShlxxZRR(rd, rs Reg)              { o.be.shfRR(opShl, szX, true, rd, rs) }
func (o *Out) ShlxxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShl, szX, false, mg, dg, im.val) }
func (o *Out) ShlxxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShl, szX, true, mg, dg, im.val) }
func (o *Out) ShlxxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShl, szX, false, mg, dg, rs) }
func (o *Out) ShlxxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShl, szX, true, mg, dg, rs) }

// 32-bit shl.
func (o *Out) ShlwxRI(rd Reg, im Imm)           { o.be.shfRI(opShl, szW, false, rd, im.val) }
func (o *Out) ShlwxZRI(rd Reg, im Imm)          { o.be.shfRI(opShl, szW, true, rd, im.val) }
func (o *Out) ShlwxRR(rd, rs Reg)               { o.be.shfRR(opShl, szW, false, rd, rs) }
func (o *Out) ShlwxZRR(rd, rs Reg)              { o.be.shfRR(opShl, szW, true, rd, rs) }
func (o *Out) ShlwxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShl, szW, false, mg, dg, im.val) }
func (o *Out) ShlwxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShl, szW, true, mg, dg, im.val) }
func (o *Out) ShlwxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShl, szW, false, mg, dg, rs) }
func (o *Out) ShlwxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShl, szW, true, mg, dg, rs) }

// 16-bit shl.
func (o *Out) ShlhxRI(rd Reg, im Imm)           { o.be.shfRI(opShl, szH, false, rd, im.val) }
func (o *Out) ShlhxZRI(rd Reg, im Imm)          { o.be.shfRI(opShl, szH, true, rd, im.val) }
func (o *Out) ShlhxRR(rd, rs Reg)               { o.be.shfRR(opShl, szH, false, rd, rs) }
func (o *Out) ShlhxZRR(rd, rs Reg)              { o.be.shfRR(opShl, szH, true, rd, rs) }
func (o *Out) ShlhxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShl, szH, false, mg, dg, im.val) }
func (o *Out) ShlhxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShl, szH, true, mg, dg, im.val) }
func (o *Out) ShlhxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShl, szH, false, mg, dg, rs) }
func (o *Out) ShlhxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShl, szH, true, mg, dg, rs) }

// 8-bit shl.
func (o *Out) ShlbxRI(rd Reg, im Imm)           { o.be.shfRI(opShl, szB, false, rd, im.val) }
func (o *Out) ShlbxZRI(rd Reg, im Imm)          { o.be.shfRI(opShl, szB, true, rd, im.val) }
func (o *Out) ShlbxRR(rd, rs Reg)               { o.be.shfRR(opShl, szB, false, rd, rs) }
func (o *Out) ShlbxZRR(rd, rs Reg)              { o.be.shfRR(opShl, szB, true, rd, rs) }
func (o *Out) ShlbxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShl, szB, false, mg, dg, im.val) }
func (o *Out) ShlbxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShl, szB, true, mg, dg, im.val) }
func (o *Out) ShlbxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShl, szB, false, mg, dg, rs) }
func (o *Out) ShlbxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShl, szB, true, mg, dg, rs) }

// 64-bit shr.
func (o *Out) ShrxxRI(rd Reg, im Imm)           { o.be.shfRI(opShr, szX, false, rd, im.val) }
func (o *Out) ShrxxZRI(rd Reg, im Imm)          { o.be.shfRI(opShr, szX, true, rd, im.val) }
func (o *Out) ShrxxRR(rd, rs Reg)               { o.be.shfRR(opShr, szX, false, rd, rs) }
func (o *Out) ShrxxZRR(rd, rs Reg)              { o.be.shfRR(opShr, szX, true, rd, rs) }
func (o *Out) ShrxxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShr, szX, false, mg, dg, im.val) }
func (o *Out) ShrxxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShr, szX, true, mg, dg, im.val) }
func (o *Out) ShrxxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShr, szX, false, mg, dg, rs) }
func (o *Out) ShrxxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShr, szX, true, mg, dg, rs) }

// 32-bit shr.
func (o *Out) ShrwxRI(rd Reg, im Imm)           { o.be.shfRI(opShr, szW, false, rd, im.val) }
func (o *Out) ShrwxZRI(rd Reg, im Imm)          { o.be.shfRI(opShr, szW, true, rd, im.val) }
func (o *Out) ShrwxRR(rd, rs Reg)               { o.be.shfRR(opShr, szW, false, rd, rs) }
func (o *Out) ShrwxZRR(rd, rs Reg)              { o.be.shfRR(opShr, szW, true, rd, rs) }
func (o *Out) ShrwxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShr, szW, false, mg, dg, im.val) }
func (o *Out) ShrwxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShr, szW, true, mg, dg, im.val) }
func (o *Out) ShrwxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShr, szW, false, mg, dg, rs) }
func (o *Out) ShrwxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShr, szW, true, mg, dg, rs) }

// 16-bit shr.
func (o *Out) ShrhxRI(rd Reg, im Imm)           { o.be.shfRI(opShr, szH, false, rd, im.val) }
func (o *Out) ShrhxZRI(rd Reg, im Imm)          { o.be.shfRI(opShr, szH, true, rd, im.val) }
func (o *Out) ShrhxRR(rd, rs Reg)               { o.be.shfRR(opShr, szH, false, rd, rs) }
func (o *Out) ShrhxZRR(rd, rs Reg)              { o.be.shfRR(opShr, szH, true, rd, rs) }
func (o *Out) ShrhxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShr, szH, false, mg, dg, im.val) }
func (o *Out) ShrhxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShr, szH, true, mg, dg, im.val) }
func (o *Out) ShrhxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShr, szH, false, mg, dg, rs) }
func (o *Out) ShrhxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShr, szH, true, mg, dg, rs) }

// 8-bit shr.
func (o *Out) ShrbxRI(rd Reg, im Imm)           { o.be.shfRI(opShr, szB, false, rd, im.val) }
func (o *Out) ShrbxZRI(rd Reg, im Imm)          { o.be.shfRI(opShr, szB, true, rd, im.val) }
func (o *Out) ShrbxRR(rd, rs Reg)               { o.be.shfRR(opShr, szB, false, rd, rs) }
func (o *Out) ShrbxZRR(rd, rs Reg)              { o.be.shfRR(opShr, szB, true, rd, rs) }
func (o *Out) ShrbxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opShr, szB, false, mg, dg, im.val) }
func (o *Out) ShrbxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opShr, szB, true, mg, dg, im.val) }
func (o *Out) ShrbxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opShr, szB, false, mg, dg, rs) }
func (o *Out) ShrbxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opShr, szB, true, mg, dg, rs) }

// 64-bit sar.
func (o *Out) SarxxRI(rd Reg, im Imm)           { o.be.shfRI(opSar, szX, false, rd, im.val) }
func (o *Out) SarxxZRI(rd Reg, im Imm)          { o.be.shfRI(opSar, szX, true, rd, im.val) }
func (o *Out) SarxxRR(rd, rs Reg)               { o.be.shfRR(opSar, szX, false, rd, rs) }
func (o *Out) SarxxZRR(rd, rs Reg)              { o.be.shfRR(opSar, szX, true, rd, rs) }
func (o *Out) SarxxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opSar, szX, false, mg, dg, im.val) }
func (o *Out) SarxxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opSar, szX, true, mg, dg, im.val) }
func (o *Out) SarxxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opSar, szX, false, mg, dg, rs) }
func (o *Out) SarxxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opSar, szX, true, mg, dg, rs) }

// 32-bit sar.
func (o *Out) SarwxRI(rd Reg, im Imm)           { o.be.shfRI(opSar, szW, false, rd, im.val) }
func (o *Out) SarwxZRI(rd Reg, im Imm)          { o.be.shfRI(opSar, szW, true, rd, im.val) }
func (o *Out) SarwxRR(rd, rs Reg)               { o.be.shfRR(opSar, szW, false, rd, rs) }
func (o *Out) SarwxZRR(rd, rs Reg)              { o.be.shfRR(opSar, szW, true, rd, rs) }
func (o *Out) SarwxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opSar, szW, false, mg, dg, im.val) }
func (o *Out) SarwxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opSar, szW, true, mg, dg, im.val) }
func (o *Out) SarwxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opSar, szW, false, mg, dg, rs) }
func (o *Out) SarwxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opSar, szW, true, mg, dg, rs) }

// 16-bit sar.
func (o *Out) SarhxRI(rd Reg, im Imm)           { o.be.shfRI(opSar, szH, false, rd, im.val) }
func (o *Out) SarhxZRI(rd Reg, im Imm)          { o.be.shfRI(opSar, szH, true, rd, im.val) }
func (o *Out) SarhxRR(rd, rs Reg)               { o.be.shfRR(opSar, szH, false, rd, rs) }
func (o *Out) SarhxZRR(rd, rs Reg)              { o.be.shfRR(opSar, szH, true, rd, rs) }
func (o *Out) SarhxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opSar, szH, false, mg, dg, im.val) }
func (o *Out) SarhxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opSar, szH, true, mg, dg, im.val) }
func (o *Out) SarhxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opSar, szH, false, mg, dg, rs) }
func (o *Out) SarhxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opSar, szH, true, mg, dg, rs) }

// 8-bit sar.
func (o *Out) SarbxRI(rd Reg, im Imm)           { o.be.shfRI(opSar, szB, false, rd, im.val) }
func (o *Out) SarbxZRI(rd Reg, im Imm)          { o.be.shfRI(opSar, szB, true, rd, im.val) }
func (o *Out) SarbxRR(rd, rs Reg)               { o.be.shfRR(opSar, szB, false, rd, rs) }
func (o *Out) SarbxZRR(rd, rs Reg)              { o.be.shfRR(opSar, szB, true, rd, rs) }
func (o *Out) SarbxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opSar, szB, false, mg, dg, im.val) }
func (o *Out) SarbxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opSar, szB, true, mg, dg, im.val) }
func (o *Out) SarbxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opSar, szB, false, mg, dg, rs) }
func (o *Out) SarbxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opSar, szB, true, mg, dg, rs) }

// 64-bit ror.
func (o *Out) RorxxRI(rd Reg, im Imm)           { o.be.shfRI(opRor, szX, false, rd, im.val) }
func (o *Out) RorxxZRI(rd Reg, im Imm)          { o.be.shfRI(opRor, szX, true, rd, im.val) }
func (o *Out) RorxxRR(rd, rs Reg)               { o.be.shfRR(opRor, szX, false, rd, rs) }
func (o *Out) RorxxZRR(rd, rs Reg)              { o.be.shfRR(opRor, szX, true, rd, rs) }
func (o *Out) RorxxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opRor, szX, false, mg, dg, im.val) }
func (o *Out) RorxxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opRor, szX, true, mg, dg, im.val) }
func (o *Out) RorxxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opRor, szX, false, mg, dg, rs) }
func (o *Out) RorxxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opRor, szX, true, mg, dg, rs) }

// 32-bit ror.
func (o *Out) RorwxRI(rd Reg, im Imm)           { o.be.shfRI(opRor, szW, false, rd, im.val) }
func (o *Out) RorwxZRI(rd Reg, im Imm)          { o.be.shfRI(opRor, szW, true, rd, im.val) }
func (o *Out) RorwxRR(rd, rs Reg)               { o.be.shfRR(opRor, szW, false, rd, rs) }
func (o *Out) RorwxZRR(rd, rs Reg)              { o.be.shfRR(opRor, szW, true, rd, rs) }
func (o *Out) RorwxMI(mg Mem, dg Disp, im Imm)  { o.be.shfMI(opRor, szW, false, mg, dg, im.val) }
func (o *Out) RorwxZMI(mg Mem, dg Disp, im Imm) { o.be.shfMI(opRor, szW, true, mg, dg, im.val) }
func (o *Out) RorwxMR(mg Mem, dg Disp, rs Reg)  { o.be.shfMR(opRor, szW, false, mg, dg, rs) }
func (o *Out) RorwxZMR(mg Mem, dg Disp, rs Reg) { o.be.shfMR(opRor, szW, true, mg, dg, rs) }
