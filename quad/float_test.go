// Copyright 2025 go-quadmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quad

import (
	"testing"
)

func TestSpecials(t *testing.T) {
	if !NaN().IsNaN() {
		t.Error("NaN() not NaN")
	}
	if NaN().IsFinite() || NaN().IsInf() || NaN().IsZero() {
		t.Error("NaN() claims to be finite, infinite, or zero")
	}
	if !Inf(1).IsInf() || Inf(1).Signbit() {
		t.Error("Inf(1) wrong")
	}
	if !Inf(-1).IsInf() || !Inf(-1).Signbit() {
		t.Error("Inf(-1) wrong")
	}
	if !Zero(false).IsZero() || Zero(false).Signbit() {
		t.Error("Zero(false) wrong")
	}
	if !Zero(true).IsZero() || !Zero(true).Signbit() {
		t.Error("Zero(true) wrong")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"-2.5", -2.5},
		{"0x1p-58", 0x1p-58},
		{"0x1.8p1", 3},
		{"1e2", 100},
		{"-0", 0},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got.Float64() != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := Parse("bogus"); err == nil {
		t.Error("Parse(bogus) succeeded")
	}
}

func TestSignedZero(t *testing.T) {
	nz := MustParse("-0")
	if !nz.IsZero() || !nz.Signbit() {
		t.Fatalf("MustParse(-0) = %v, want -0", nz)
	}
	if p := nz.Neg(); !p.IsZero() || p.Signbit() {
		t.Errorf("Neg(-0) = %v, want +0", p)
	}
	if a := nz.Abs(); !a.IsZero() || a.Signbit() {
		t.Errorf("Abs(-0) = %v, want +0", a)
	}
}

func TestCmp(t *testing.T) {
	a := MustParse("1.5")
	b := MustParse("2")
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("Cmp ordering wrong")
	}
	// -0 and +0 compare equal.
	if MustParse("-0").Cmp(Zero(false)) != 0 {
		t.Error("Cmp(-0, +0) != 0")
	}
}

func TestSubnormalClamp(t *testing.T) {
	ctx := NewContext()
	half := FromFloat64(0.5)

	// The smallest subnormal halved rounds to zero (ties to even).
	minSub := MustParse("0x1p-16494")
	if got := ctx.Mul(minSub, half); !got.IsZero() {
		t.Errorf("minSub/2 = %v, want 0", got)
	}
	// One step up survives as the smallest subnormal.
	if got := ctx.Mul(MustParse("0x1p-16493"), half); got.IsZero() {
		t.Error("0x1p-16493/2 flushed to zero")
	} else if got.Cmp(minSub) != 0 {
		t.Errorf("0x1p-16493/2 = %v, want 0x1p-16494", got)
	}
}

func TestOverflowClamp(t *testing.T) {
	ctx := NewContext()
	max := MustParse("0x1.ffffffffffffffffffffffffffffp+16383")
	got := ctx.Mul(max, FromFloat64(2))
	if !got.IsInf() || got.Signbit() {
		t.Errorf("maxFinite*2 = %v, want +Inf", got)
	}
	got = ctx.Mul(max.Neg(), FromFloat64(2))
	if !got.IsInf() || !got.Signbit() {
		t.Errorf("-maxFinite*2 = %v, want -Inf", got)
	}
	// Max finite itself stays finite.
	if got := ctx.Mul(max, FromFloat64(1)); !got.IsFinite() {
		t.Errorf("maxFinite*1 = %v, want finite", got)
	}
}

func TestRoundTripText(t *testing.T) {
	x := MustParse("1.234567890123456789012345678901234e10")
	y := MustParse(x.Text('g', 40))
	if x.Cmp(y) != 0 {
		t.Errorf("text round trip changed value: %v vs %v", x, y)
	}
}
