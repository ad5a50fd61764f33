// Completion: 100% - PowerPC64 kernel tests complete
package uniasm

import (
	"encoding/binary"
	"testing"
)

// p64Words emits one stream and returns the finalized big-endian
// units.
func p64Words(t *testing.T, build func(o *Out)) []uint32 {
	t.Helper()
	o, err := NewOut(ArchP64, DefaultConfig())
	if err != nil {
		t.Fatalf("NewOut: %v", err)
	}
	build(o)
	code, err := o.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(code[i*4:])
	}
	return words
}

func TestP64MovRegImmInline(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.MovwxRI(Reax, IC(5)) })
	wantWords(t, got, []uint32{0x38800005}) // li r4, 5
}

func TestP64MovRegImm16BitPair(t *testing.T) {
	// 0xBEEF is negative in the signed li field, so the two-word
	// lis+ori path is taken.
	got := p64Words(t, func(o *Out) { o.MovwxRI(Reax, IH(0xBEEF)) })
	wantWords(t, got, []uint32{
		0x3C800000, // lis r4, 0
		0x6084BEEF, // ori r4, r4, 0xBEEF
	})
}

func TestP64AddRegImmInline(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.AddwxRI(Recx, IG(0x1234)) })
	wantWords(t, got, []uint32{0x38A51234}) // addi r5, r5, 0x1234
}

func TestP64AddRegReg(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.AddwxRR(Reax, Recx) })
	wantWords(t, got, []uint32{0x7C842A14}) // add r4, r4, r5
}

func TestP64SubRegReg(t *testing.T) {
	// subf computes RB-RA: the minuend goes into the RB slot.
	got := p64Words(t, func(o *Out) { o.SubwxRR(Reax, Recx) })
	wantWords(t, got, []uint32{0x7C852050}) // subf r4, r5, r4
}

func TestP64LoadStoreDispForm(t *testing.T) {
	got := p64Words(t, func(o *Out) {
		o.MovwxLD(Rebx, M(Rebp), DP(8))
		o.MovxxST(Rebx, M(Rebp), DP(8))
	})
	wantWords(t, got, []uint32{
		0x80E80008, // lwz r7, 8(r8)
		0xF8E80008, // std r7, 8(r8)
	})
}

func TestP64SubWordDisplacement(t *testing.T) {
	// Alignment follows the access width: a halfword load keeps its
	// 2-byte offset.
	got := p64Words(t, func(o *Out) { o.MovhxLD(Rebx, M(Rebp), DP(2)) })
	wantWords(t, got, []uint32{0xA0E80002}) // lhz r7, 2(r8)
}

func TestP64WideDisplacementMaterialised(t *testing.T) {
	// DV spends the two-word pair on TDxx and switches the access to
	// the X form regardless of the payload value.
	got := p64Words(t, func(o *Out) { o.MovwxLD(Rebx, M(Rebp), DV(0x10)) })
	wantWords(t, got, []uint32{
		0x3F400000, // lis r26, 0
		0x635A0010, // ori r26, r26, 0x10
		0x7CE8D02E, // lwzx r7, r8, r26
	})
}

func TestP64ZFlagUnit(t *testing.T) {
	// Z variants never use the Rc bit; the flag unit is a cr0
	// compare against zero.
	got := p64Words(t, func(o *Out) { o.AddwxZRR(Reax, Recx) })
	wantWords(t, got, []uint32{
		0x7C842A14, // add r4, r4, r5
		0x2C040000, // cmpwi cr0, r4, 0
	})
}

func TestP64CmpJumpSigned(t *testing.T) {
	got := p64Words(t, func(o *Out) {
		lb := o.NewLabel()
		o.CmjwxRR(Reax, Recx, LTn, lb)
		o.Label(lb)
	})
	wantWords(t, got, []uint32{
		0x7C042800, // cmpw cr0, r4, r5
		0x41800004, // blt +4
	})
}

func TestP64CmpJumpUnsigned(t *testing.T) {
	// Unsigned tags switch the compare unit, not the branch.
	got := p64Words(t, func(o *Out) {
		lb := o.NewLabel()
		o.CmjwxRR(Reax, Recx, LTx, lb)
		o.Label(lb)
	})
	wantWords(t, got, []uint32{
		0x7C042840, // cmplw cr0, r4, r5
		0x41800004, // blt +4
	})
}

func TestP64ShiftLeft64Imm(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.ShlxxRI(Reax, IC(2)) })
	wantWords(t, got, []uint32{0x78841764}) // sldi r4, r4, 2
}

func TestP64RotateImm(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.RorwxRI(Recx, IC(4)) })
	wantWords(t, got, []uint32{0x54A5E03E}) // rotrwi r5, r5, 4
}

func TestP64ScaledIndexCostsTwoWords(t *testing.T) {
	// A scaled index has no single fused form: sldi into TPxx, then
	// add. An unscaled index costs one word.
	scaled := p64Words(t, func(o *Out) { o.MovwxLD(Rebx, K(Reax, Recx), DP(0)) })
	if len(scaled) != 3 {
		t.Errorf("scaled index: got %d words, want 3 (% 08x)", len(scaled), scaled)
	}
	plain := p64Words(t, func(o *Out) { o.MovwxLD(Rebx, I(Reax, Recx), DP(0)) })
	if len(plain) != 2 {
		t.Errorf("unscaled index: got %d words, want 2 (% 08x)", len(plain), plain)
	}
}

func TestP64StoreByteImm(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.MovbxMI(M(Redi), DE(0), IB(0xA5)) })
	wantWords(t, got, []uint32{
		0x3B2000A5, // li r25, 0xA5
		0x9B2A0000, // stb r25, 0(r10)
	})
}

func TestP64SubWordMasking(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.AddhxRR(Reax, Recx) })
	wantWords(t, got, []uint32{
		0x7C842A14, // add r4, r4, r5
		0x5484043E, // rlwinm r4, r4, 0, 16, 31
	})
}

func TestP64BackwardJump(t *testing.T) {
	got := p64Words(t, func(o *Out) {
		loop := o.NewLabel()
		o.Label(loop)
		o.AddwxRI(Reax, IC(1))
		o.Jmpxx(loop)
	})
	want := uint32(0x48000000 | -4&0x03FFFFFC) // b -4
	if got[1] != want {
		t.Errorf("backward jump: got 0x%08X, want 0x%08X", got[1], want)
	}
}

func TestP64DivAccumulator(t *testing.T) {
	got := p64Words(t, func(o *Out) { o.DivwxXR(Recx) })
	wantWords(t, got, []uint32{
		0x7F042B96, // divwu r24, r4, r5
		0x7F3829D6, // mullw r25, r24, r5
		0x7CD92050, // subf r6, r25, r4
		0x7F04C378, // mr r4, r24
	})
}
