// Completion: 100% - Multiply and divide families complete
package uniasm

// Multiply and divide, 32- and 64-bit only. The x variants are
// unsigned, the n variants signed, and the p (part-range) variants
// forward to the signed expansion. The XR and XM shapes use the
// implicit Redx:Reax accumulator: widening multiply leaves the low
// part in Reax and the high part in Redx, divide leaves the quotient
// in Reax and the remainder in Redx. The divisor must not alias the
// accumulator; violations are recorded on the error channel.

// 64-bit multiply.
func (o *Out) MulxxRR(rd, rs Reg)              { o.be.mulRR(szX, signX, rd, rs) }
func (o *Out) MulxxLD(rd Reg, ms Mem, ds Disp) { o.be.mulLD(szX, signX, rd, ms, ds) }
func (o *Out) MulxxXR(rs Reg)                  { o.be.mulXR(szX, signX, rs) }
func (o *Out) MulxxXM(ms Mem, ds Disp)         { o.be.mulXM(szX, signX, ms, ds) }
func (o *Out) MulxnRR(rd, rs Reg)              { o.be.mulRR(szX, signN, rd, rs) }
func (o *Out) MulxnLD(rd Reg, ms Mem, ds Disp) { o.be.mulLD(szX, signN, rd, ms, ds) }
func (o *Out) MulxnXR(rs Reg)                  { o.be.mulXR(szX, signN, rs) }
func (o *Out) MulxnXM(ms Mem, ds Disp)         { o.be.mulXM(szX, signN, ms, ds) }
func (o *Out) MulxpRR(rd, rs Reg)              { o.be.mulRR(szX, signP, rd, rs) }
func (o *Out) MulxpLD(rd Reg, ms Mem, ds Disp) { o.be.mulLD(szX, signP, rd, ms, ds) }
func (o *Out) MulxpXR(rs Reg)                  { o.be.mulXR(szX, signP, rs) }
func (o *Out) MulxpXM(ms Mem, ds Disp)         { o.be.mulXM(szX, signP, ms, ds) }

// 64-bit divide and remainder.
func (o *Out) DivxxRR(rd, rs Reg)              { o.be.divRR(szX, signX, rd, rs) }
func (o *Out) DivxxRI(rd Reg, im Imm)          { o.be.divRI(szX, signX, rd, im) }
func (o *Out) DivxxLD(rd Reg, ms Mem, ds Disp) { o.be.divLD(szX, signX, rd, ms, ds) }
func (o *Out) DivxxXR(rs Reg)                  { o.be.divXR(szX, signX, rs) }
func (o *Out) DivxxXM(ms Mem, ds Disp)         { o.be.divXM(szX, signX, ms, ds) }
func (o *Out) RemxxRR(rd, rs Reg)              { o.be.remRR(szX, signX, rd, rs) }
func (o *Out) RemxxRI(rd Reg, im Imm)          { o.be.remRI(szX, signX, rd, im) }
func (o *Out) RemxxLD(rd Reg, ms Mem, ds Disp) { o.be.remLD(szX, signX, rd, ms, ds) }
func (o *Out) DivxnRR(rd, rs Reg)              { o.be.divRR(szX, signN, rd, rs) }
func (o *Out) DivxnRI(rd Reg, im Imm)          { o.be.divRI(szX, signN, rd, im) }
func (o *Out) DivxnLD(rd Reg, ms Mem, ds Disp) { o.be.divLD(szX, signN, rd, ms, ds) }
func (o *Out) DivxnXR(rs Reg)                  { o.be.divXR(szX, signN, rs) }
func (o *Out) DivxnXM(ms Mem, ds Disp)         { o.be.divXM(szX, signN, ms, ds) }
func (o *Out) RemxnRR(rd, rs Reg)              { o.be.remRR(szX, signN, rd, rs) }
func (o *Out) RemxnRI(rd Reg, im Imm)          { o.be.remRI(szX, signN, rd, im) }
func (o *Out) RemxnLD(rd Reg, ms Mem, ds Disp) { o.be.remLD(szX, signN, rd, ms, ds) }
func (o *Out) DivxpRR(rd, rs Reg)              { o.be.divRR(szX, signP, rd, rs) }
func (o *Out) DivxpRI(rd Reg, im Imm)          { o.be.divRI(szX, signP, rd, im) }
func (o *Out) DivxpLD(rd Reg, ms Mem, ds Disp) { o.be.divLD(szX, signP, rd, ms, ds) }
func (o *Out) DivxpXR(rs Reg)                  { o.be.divXR(szX, signP, rs) }
func (o *Out) DivxpXM(ms Mem, ds Disp)         { o.be.divXM(szX, signP, ms, ds) }
func (o *Out) RemxpRR(rd, rs Reg)              { o.be.remRR(szX, signP, rd, rs) }
func (o *Out) RemxpRI(rd Reg, im Imm)          { o.be.remRI(szX, signP, rd, im) }
func (o *Out) RemxpLD(rd Reg, ms Mem, ds Disp) { o.be.remLD(szX, signP, rd, ms, ds) }

// 32-bit multiply.
func (o *Out) MulwxRR(rd, rs Reg)              { o.be.mulRR(szW, signX, rd, rs) }
func (o *Out) MulwxLD(rd Reg, ms Mem, ds Disp) { o.be.mulLD(szW, signX, rd, ms, ds) }
func (o *Out) MulwxXR(rs Reg)                  { o.be.mulXR(szW, signX, rs) }
func (o *Out) MulwxXM(ms Mem, ds Disp)         { o.be.mulXM(szW, signX, ms, ds) }
func (o *Out) MulwnRR(rd, rs Reg)              { o.be.mulRR(szW, signN, rd, rs) }
func (o *Out) MulwnLD(rd Reg, ms Mem, ds Disp) { o.be.mulLD(szW, signN, rd, ms, ds) }
func (o *Out) MulwnXR(rs Reg)                  { o.be.mulXR(szW, signN, rs) }
func (o *Out) MulwnXM(ms Mem, ds Disp)         { o.be.mulXM(szW, signN, ms, ds) }
func (o *Out) MulwpRR(rd, rs Reg)              { o.be.mulRR(szW, signP, rd, rs) }
func (o *Out) MulwpLD(rd Reg, ms Mem, ds Disp) { o.be.mulLD(szW, signP, rd, ms, ds) }
func (o *Out) MulwpXR(rs Reg)                  { o.be.mulXR(szW, signP, rs) }
func (o *Out) MulwpXM(ms Mem, ds Disp)         { o.be.mulXM(szW, signP, ms, ds) }

// 32-bit divide and remainder.
func (o *Out) DivwxRR(rd, rs Reg)              { o.be.divRR(szW, signX, rd, rs) }
func (o *Out) DivwxRI(rd Reg, im Imm)          { o.be.divRI(szW, signX, rd, im) }
func (o *Out) DivwxLD(rd Reg, ms Mem, ds Disp) { o.be.divLD(szW, signX, rd, ms, ds) }
func (o *Out) DivwxXR(rs Reg)                  { o.be.divXR(szW, signX, rs) }
func (o *Out) DivwxXM(ms Mem, ds Disp)         { o.be.divXM(szW, signX, ms, ds) }
func (o *Out) RemwxRR(rd, rs Reg)              { o.be.remRR(szW, signX, rd, rs) }
func (o *Out) RemwxRI(rd Reg, im Imm)          { o.be.remRI(szW, signX, rd, im) }
func (o *Out) RemwxLD(rd Reg, ms Mem, ds Disp) { o.be.remLD(szW, signX, rd, ms, ds) }
func (o *Out) DivwnRR(rd, rs Reg)              { o.be.divRR(szW, signN, rd, rs) }
func (o *Out) DivwnRI(rd Reg, im Imm)          { o.be.divRI(szW, signN, rd, im) }
func (o *Out) DivwnLD(rd Reg, ms Mem, ds Disp) { o.be.divLD(szW, signN, rd, ms, ds) }
func (o *Out) DivwnXR(rs Reg)                  { o.be.divXR(szW, signN, rs) }
func (o *Out) DivwnXM(ms Mem, ds Disp)         { o.be.divXM(szW, signN, ms, ds) }
func (o *Out) RemwnRR(rd, rs Reg)              { o.be.remRR(szW, signN, rd, rs) }
func (o *Out) RemwnRI(rd Reg, im Imm)          { o.be.remRI(szW, signN, rd, im) }
func (o *Out) RemwnLD(rd Reg, ms Mem, ds Disp) { o.be.remLD(szW, signN, rd, ms, ds) }
func (o *Out) DivwpRR(rd, rs Reg)              { o.be.divRR(szW, signP, rd, rs) }
func (o *Out) DivwpRI(rd Reg, im Imm)          { o.be.divRI(szW, signP, rd, im) }
func (o *Out) DivwpLD(rd Reg, ms Mem, ds Disp) { o.be.divLD(szW, signP, rd, ms, ds) }
func (o *Out) DivwpXR(rs Reg)                  { o.be.divXR(szW, signP, rs) }
func (o *Out) DivwpXM(ms Mem, ds Disp)         { o.be.divXM(szW, signP, ms, ds) }
func (o *Out) RemwpRR(rd, rs Reg)              { o.be.remRR(szW, signP, rd, rs) }
func (o *Out) RemwpRI(rd Reg, im Imm)          { o.be.remRI(szW, signP, rd, im) }
func (o *Out) RemwpLD(rd Reg, ms Mem, ds Disp) { o.be.remLD(szW, signP, rd, ms, ds) }
