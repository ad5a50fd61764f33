// Completion: 100% - AArch64 kernel tests complete
package uniasm

import (
	"encoding/binary"
	"testing"
)

// a64Words emits one stream and returns the finalized 32-bit units.
func a64Words(t *testing.T, build func(o *Out)) []uint32 {
	t.Helper()
	o, err := NewOut(ArchA64, DefaultConfig())
	if err != nil {
		t.Fatalf("NewOut: %v", err)
	}
	build(o)
	code, err := o.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(code)%4 != 0 {
		t.Fatalf("stream length %d is not word aligned", len(code))
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return words
}

func wantWords(t *testing.T, got, want []uint32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d words, want %d (got % 08x)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d: got 0x%08X, want 0x%08X", i, got[i], want[i])
		}
	}
}

func TestA64MovRegImmInline(t *testing.T) {
	got := a64Words(t, func(o *Out) { o.MovwxRI(Reax, IC(5)) })
	wantWords(t, got, []uint32{0x528000A0}) // movz w0, #5
}

func TestA64MovRegImm16BitSingleWord(t *testing.T) {
	// 0xBEEF still fits the movz field, so no preamble appears.
	got := a64Words(t, func(o *Out) { o.MovwxRI(Recx, IH(0xBEEF)) })
	wantWords(t, got, []uint32{0x5297DDE1}) // movz w1, #0xBEEF
}

func TestA64AddRegImmWidePreamble(t *testing.T) {
	// 0x12345 exceeds the 12-bit add field: movz+movk into TIxx,
	// then the register form of add.
	got := a64Words(t, func(o *Out) { o.AddwxRI(Recx, IV(0x12345)) })
	wantWords(t, got, []uint32{
		0x528468B0, // movz w16, #0x2345
		0x72A00030, // movk w16, #1, lsl #16
		0x0B100021, // add w1, w1, w16
	})
}

func TestA64AddZFlagUnit(t *testing.T) {
	got := a64Words(t, func(o *Out) { o.AddwxZRR(Reax, Recx) })
	wantWords(t, got, []uint32{
		0x0B010000, // add w0, w0, w1
		0x71000000, // subs w0, w0, #0
	})
}

func TestA64AddMemImm(t *testing.T) {
	// Load-modify-store with both the displacement and the immediate
	// inline.
	got := a64Words(t, func(o *Out) { o.AddwxMI(M(Rebp), DP(0x10), IC(1)) })
	wantWords(t, got, []uint32{
		0xB94010AF, // ldr w15, [x5, #0x10]
		0x110005EF, // add w15, w15, #1
		0xB90010AF, // str w15, [x5, #0x10]
	})
}

func TestA64CmpJumpFused(t *testing.T) {
	got := a64Words(t, func(o *Out) {
		lb := o.NewLabel()
		o.CmjwxRR(Reax, Recx, NEx, lb)
		o.Label(lb)
	})
	wantWords(t, got, []uint32{
		0x6B01001F, // cmp w0, w1
		0x54000021, // b.ne +4
	})
}

func TestA64IndexedAddressing(t *testing.T) {
	// A scaled index costs exactly one preamble word fusing the
	// address into TPxx.
	got := a64Words(t, func(o *Out) { o.AddwxLD(Redx, K(Reax, Recx), DP(0)) })
	wantWords(t, got, []uint32{
		0x8B010812, // add x18, x0, x1, lsl #2
		0xB940024F, // ldr w15, [x18]
		0x0B0F0042, // add w2, w2, w15
	})
}

func TestA64DisplacementAlignment(t *testing.T) {
	// Displacements are aligned down to the access width before
	// encoding: 0x13 reads as 0x10 for a 32-bit load.
	got := a64Words(t, func(o *Out) { o.MovwxLD(Rebx, M(Rebp), DP(0x13)) })
	wantWords(t, got, []uint32{0xB94010A3}) // ldr w3, [x5, #0x10]
}

func TestA64SubWordDisplacement(t *testing.T) {
	// Alignment follows the access width, not the wider default, so
	// halfword and byte accesses keep their sub-word offsets.
	got := a64Words(t, func(o *Out) { o.MovhxLD(Rebx, M(Rebp), DP(2)) })
	wantWords(t, got, []uint32{0x794004A3}) // ldrh w3, [x5, #2]

	got = a64Words(t, func(o *Out) { o.MovbxLD(Rebx, M(Rebp), DP(3)) })
	wantWords(t, got, []uint32{0x39400CA3}) // ldrb w3, [x5, #3]

	got = a64Words(t, func(o *Out) { o.MovhxST(Recx, M(Rebp), DP(6)) })
	wantWords(t, got, []uint32{0x79000CA1}) // strh w1, [x5, #6]
}

func TestA64ShiftLeftImm(t *testing.T) {
	got := a64Words(t, func(o *Out) { o.ShlwxRI(Recx, IC(3)) })
	wantWords(t, got, []uint32{0x531D7021}) // lsl w1, w1, #3
}

func TestA64RotateImm(t *testing.T) {
	got := a64Words(t, func(o *Out) { o.RorwxRI(Recx, IC(4)) })
	wantWords(t, got, []uint32{0x13811021}) // ror w1, w1, #4 (extr)
}

func TestA64DivAccumulator(t *testing.T) {
	// Quotient lands in Reax, remainder in Redx, via TMxx.
	got := a64Words(t, func(o *Out) { o.DivwxXR(Recx) })
	wantWords(t, got, []uint32{
		0x1AC1080F, // udiv w15, w0, w1
		0x1B0181E2, // msub w2, w15, w1, w0
		0x2A0F03E0, // mov w0, w15
	})
}

func TestA64StackSingle(t *testing.T) {
	got := a64Words(t, func(o *Out) {
		o.StackSt(Reax)
		o.StackLd(Reax)
	})
	wantWords(t, got, []uint32{
		0xF81F0FE0, // str x0, [sp, #-16]!
		0xF84107E0, // ldr x0, [sp], #16
	})
}

func TestA64StackBulkPairs(t *testing.T) {
	got := a64Words(t, func(o *Out) {
		o.StackSa()
		o.StackLa()
	})
	if len(got) != 18 {
		t.Fatalf("got %d words, want 18", len(got))
	}
	if got[0] != 0xA9BF07E0 { // stp x0, x1, [sp, #-16]!
		t.Errorf("first save pair: got 0x%08X, want 0xA9BF07E0", got[0])
	}
	if got[17] != 0xA8C107E0 { // ldp x0, x1, [sp], #16
		t.Errorf("last restore pair: got 0x%08X, want 0xA8C107E0", got[17])
	}
	// Restore must mirror save: pair i restores what pair n-1-i saved.
	for i := 0; i < 9; i++ {
		save := got[i] & 0x7FFF
		load := got[17-i] & 0x7FFF
		if save != load {
			t.Errorf("pair %d: save fields %04X, restore fields %04X", i, save, load)
		}
	}
}

func TestA64BackwardJump(t *testing.T) {
	got := a64Words(t, func(o *Out) {
		loop := o.NewLabel()
		o.Label(loop)
		o.AddwxRI(Reax, IC(1))
		o.Jmpxx(loop)
	})
	want := uint32(0x17FFFFFF) // b -4, word offset -1
	if got[1] != want {
		t.Errorf("backward jump: got 0x%08X, want 0x%08X", got[1], want)
	}
}

func TestA64ZeroTestBranch(t *testing.T) {
	got := a64Words(t, func(o *Out) {
		lb := o.NewLabel()
		o.CmjwxRZ(Recx, EZx, lb)
		o.Label(lb)
	})
	wantWords(t, got, []uint32{0x34000021}) // cbz w1, +4
}

func TestA64SubWordMasking(t *testing.T) {
	// 8-bit operations restore the zero-extended invariant with a
	// trailing uxtb.
	got := a64Words(t, func(o *Out) { o.AddbxRR(Reax, Recx) })
	wantWords(t, got, []uint32{
		0x0B010000, // add w0, w0, w1
		0x53001C00, // uxtb w0, w0
	})
}

func TestA64SignExtendingLoad(t *testing.T) {
	got := a64Words(t, func(o *Out) { o.MovhnLD(Reax, M(Rebp), DP(2)) })
	wantWords(t, got, []uint32{0x79C004A0}) // ldrsh w0, [x5, #2]
}
