// Completion: 100% - Operand constructor tests complete
package uniasm

import "testing"

func TestImmediateMasks(t *testing.T) {
	cases := []struct {
		im   Imm
		want uint32
	}{
		{IC(-1), 0x7F},
		{IC(5), 5},
		{IB(0x1FF), 0xFF},
		{IM(0xFFFF), 0xFFF},
		{IG(0x12345), 0x2345},
		{IH(0x1BEEF), 0xBEEF},
		{IV(-1), 0x7FFFFFFF},
		{IW(-1), 0xFFFFFFFF},
	}
	for _, c := range cases {
		if got := c.im.Value(); got != c.want {
			t.Errorf("class %d: got 0x%X, want 0x%X", c.im.cls, got, c.want)
		}
	}
}

func TestDisplacementAlignsToElement(t *testing.T) {
	d := DP(0x17)
	if got := d.alignTo(4); got != 0x14 {
		t.Errorf("align 4: got 0x%X, want 0x14", got)
	}
	if got := d.alignTo(8); got != 0x10 {
		t.Errorf("align 8: got 0x%X, want 0x10", got)
	}
	if got := d.alignTo(1); got != 0x17 {
		t.Errorf("align 1: got 0x%X, want 0x17", got)
	}
}

func TestAddressingConstructorScales(t *testing.T) {
	cases := []struct {
		m     Mem
		scale uint8
	}{
		{I(Reax, Recx), 0},
		{J(Reax, Recx), 1},
		{K(Reax, Recx), 2},
		{L(Reax, Recx), 3},
	}
	for i, c := range cases {
		if !c.m.hasIx || c.m.scale != c.scale {
			t.Errorf("case %d: got scale %d hasIx %v", i, c.m.scale, c.m.hasIx)
		}
	}
	if M(Reax).hasIx {
		t.Error("plain base mode carries an index")
	}
}

func TestRegisterNames(t *testing.T) {
	if Reax.String() != "Reax" || TZxx.String() != "TZxx" {
		t.Error("register names out of sync")
	}
	if Reax.IsScratch() || !TMxx.IsScratch() {
		t.Error("scratch classification wrong")
	}
}

func TestCondSignedness(t *testing.T) {
	for _, c := range []Cond{LTn, LEn, GTn, GEn} {
		if !c.signed() {
			t.Errorf("%v should compare signed", c)
		}
	}
	for _, c := range []Cond{EQx, NEx, LTx, GEx, EZx, NZx} {
		if c.signed() {
			t.Errorf("%v should compare unsigned", c)
		}
	}
}

func TestParseArch(t *testing.T) {
	for _, s := range []string{"a64", "AArch64", "arm64"} {
		if a, err := ParseArch(s); err != nil || a != ArchA64 {
			t.Errorf("ParseArch(%q) = %v, %v", s, a, err)
		}
	}
	if _, err := ParseArch("mips"); err == nil {
		t.Error("ParseArch accepted an unsupported name")
	}
}
