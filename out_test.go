// Completion: 100% - Emitter property tests complete
package uniasm

import (
	"bytes"
	"strings"
	"testing"
)

// emitDemo runs a representative mnemonic mix covering every layer:
// immediates of all classes, memory shapes, branches and the stack.
func emitDemo(o *Out) {
	loop := o.NewLabel()
	done := o.NewLabel()
	o.StackSa()
	o.MovwxRI(Redx, IC(0))
	o.MovxxRI(Rebx, IW(0x89ABCDEF))
	o.Label(loop)
	o.CmjwxRZ(Recx, EZx, done)
	o.AddwxLD(Redx, K(Reax, Recx), DV(0x12345))
	o.XorwxMI(M(Rebp), DP(8), IH(0xFFFF))
	o.SubwxZRI(Recx, IC(1))
	o.Jmpxx(loop)
	o.Label(done)
	o.MulwxRR(Redx, Rebx)
	o.StackLa()
}

func TestDeterministicEmission(t *testing.T) {
	for _, arch := range []Arch{ArchA64, ArchP64} {
		a, _ := NewOut(arch, DefaultConfig())
		b, _ := NewOut(arch, DefaultConfig())
		emitDemo(a)
		emitDemo(b)
		ba, err := a.Bytes()
		if err != nil {
			t.Fatalf("%v: %v", arch, err)
		}
		bb, _ := b.Bytes()
		if !bytes.Equal(ba, bb) {
			t.Errorf("%v: identical sequences produced different streams", arch)
		}
		if len(ba) == 0 {
			t.Errorf("%v: empty stream", arch)
		}
	}
}

func TestImmediateClassWordBudget(t *testing.T) {
	// On AArch64 the add family keeps classes up to 12 bits inline,
	// spends one preamble word on 15/16-bit classes and two on the
	// wide classes.
	cases := []struct {
		im    Imm
		words int
	}{
		{IC(5), 1},
		{IB(0xFF), 1},
		{IM(0xFFF), 1},
		{IG(0x7FFF), 2},
		{IH(0xFFFF), 2},
		{IV(0x12345), 3},
		{IW(0x89ABCDEF), 3},
	}
	for _, c := range cases {
		got := a64Words(t, func(o *Out) { o.AddwxRI(Reax, c.im) })
		if len(got) != c.words {
			t.Errorf("add imm class %d: got %d words, want %d", c.im.cls, len(got), c.words)
		}
	}
}

func TestDisplacementClassWordBudget(t *testing.T) {
	// Like the immediates, displacement preamble cost follows the
	// constructor class, not the payload: a small DV still spends the
	// full two-word materialisation. One load word plus the preamble.
	cases := []struct {
		d        Disp
		a64words int
		p64words int
	}{
		{DP(4), 1, 1},
		{DE(4), 1, 1},
		{DF(4), 2, 1},
		{DG(4), 2, 1},
		{DH(4), 2, 3},
		{DV(4), 3, 3},
	}
	for _, c := range cases {
		got := a64Words(t, func(o *Out) { o.MovwxLD(Rebx, M(Rebp), c.d) })
		if len(got) != c.a64words {
			t.Errorf("a64 disp class %d: got %d words, want %d", c.d.cls, len(got), c.a64words)
		}
		got = p64Words(t, func(o *Out) { o.MovwxLD(Rebx, M(Rebp), c.d) })
		if len(got) != c.p64words {
			t.Errorf("p64 disp class %d: got %d words, want %d", c.d.cls, len(got), c.p64words)
		}
	}
}

func TestZVariantAppendsOneUnit(t *testing.T) {
	// The Z form of any expansion is the plain form plus exactly one
	// trailing flag unit, on both targets.
	type pair struct {
		plain, z func(o *Out)
	}
	cases := []pair{
		{func(o *Out) { o.AddwxRI(Reax, IC(1)) }, func(o *Out) { o.AddwxZRI(Reax, IC(1)) }},
		{func(o *Out) { o.OrrxxRR(Reax, Recx) }, func(o *Out) { o.OrrxxZRR(Reax, Recx) }},
		{func(o *Out) { o.NegwxRX(Reax) }, func(o *Out) { o.NegwxZRX(Reax) }},
	}
	for _, arch := range []Arch{ArchA64, ArchP64} {
		for i, c := range cases {
			a, _ := NewOut(arch, DefaultConfig())
			c.plain(a)
			plain, _ := a.Bytes()
			b, _ := NewOut(arch, DefaultConfig())
			c.z(b)
			z, _ := b.Bytes()
			if len(z) != len(plain)+4 {
				t.Errorf("%v case %d: plain %d bytes, Z %d bytes", arch, i, len(plain), len(z))
			}
			if !bytes.Equal(z[:len(plain)], plain) {
				t.Errorf("%v case %d: Z form does not extend the plain form", arch, i)
			}
		}
	}
}

func TestMemoryWritebackReusesFields(t *testing.T) {
	// In a load-modify-store expansion the final store addresses the
	// same base and offset as the initial load: on AArch64 the two
	// words differ only in the load/store opcode bit.
	got := a64Words(t, func(o *Out) { o.AddwxMI(K(Reax, Recx), DV(0x12345), IC(7)) })
	load, store := got[len(got)-3], got[len(got)-1]
	if load^store != 0x00400000 {
		t.Errorf("load 0x%08X and store 0x%08X differ beyond the direction bit", load, store)
	}
}

func TestAccumulatorAliasRecorded(t *testing.T) {
	for _, arch := range []Arch{ArchA64, ArchP64} {
		o, _ := NewOut(arch, DefaultConfig())
		o.DivwxXR(Reax)
		if _, err := o.Bytes(); err == nil {
			t.Errorf("%v: accumulator alias not recorded", arch)
		}
		o, _ = NewOut(arch, DefaultConfig())
		o.MulxnXR(Redx)
		if o.Err() == nil {
			t.Errorf("%v: widening multiply alias not recorded", arch)
		}
	}
}

func TestUnboundLabelFails(t *testing.T) {
	o, _ := NewOut(ArchA64, DefaultConfig())
	o.Jmpxx(o.NewLabel())
	_, err := o.Bytes()
	if err == nil || !strings.Contains(err.Error(), "never bound") {
		t.Errorf("unbound label: got %v", err)
	}
}

func TestPartRangeForwardsToSigned(t *testing.T) {
	for _, arch := range []Arch{ArchA64, ArchP64} {
		a, _ := NewOut(arch, DefaultConfig())
		a.DivwpRR(Reax, Recx)
		p, _ := a.Bytes()
		b, _ := NewOut(arch, DefaultConfig())
		b.DivwnRR(Reax, Recx)
		n, _ := b.Bytes()
		if !bytes.Equal(p, n) {
			t.Errorf("%v: part-range divide differs from signed divide", arch)
		}
	}
}

func TestCommitRefusesFurtherWrites(t *testing.T) {
	o, _ := NewOut(ArchA64, DefaultConfig())
	o.MovwxRI(Reax, IC(1))
	if _, err := o.Bytes(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("write after commit did not panic")
		}
	}()
	o.MovwxRI(Reax, IC(2))
}

func TestMnemonicAliases(t *testing.T) {
	// MR is the memory-destination spelling of ST.
	a, _ := NewOut(ArchA64, DefaultConfig())
	a.AddwxMR(M(Rebp), DP(4), Recx)
	x, _ := a.Bytes()
	b, _ := NewOut(ArchA64, DefaultConfig())
	b.AddwxST(Recx, M(Rebp), DP(4))
	y, _ := b.Bytes()
	if !bytes.Equal(x, y) {
		t.Error("MR and ST produced different streams")
	}
}
