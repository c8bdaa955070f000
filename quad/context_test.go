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

func TestArithSpecialCases(t *testing.T) {
	ctx := NewContext()
	inf := Inf(1)
	ninf := Inf(-1)
	zero := Zero(false)
	one := FromFloat64(1)

	if got := ctx.Add(inf, ninf); !got.IsNaN() {
		t.Errorf("Inf + -Inf = %v, want NaN", got)
	}
	if got := ctx.Sub(inf, inf); !got.IsNaN() {
		t.Errorf("Inf - Inf = %v, want NaN", got)
	}
	if got := ctx.Mul(zero, inf); !got.IsNaN() {
		t.Errorf("0 * Inf = %v, want NaN", got)
	}
	if got := ctx.Quo(zero, zero); !got.IsNaN() {
		t.Errorf("0/0 = %v, want NaN", got)
	}
	if got := ctx.Quo(inf, inf); !got.IsNaN() {
		t.Errorf("Inf/Inf = %v, want NaN", got)
	}
	if got := ctx.Quo(one, zero); !got.IsInf() || got.Signbit() {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
	if got := ctx.Quo(one.Neg(), zero); !got.IsInf() || !got.Signbit() {
		t.Errorf("-1/0 = %v, want -Inf", got)
	}
	if got := ctx.Quo(one, Zero(true)); !got.IsInf() || !got.Signbit() {
		t.Errorf("1/-0 = %v, want -Inf", got)
	}
	if got := ctx.Add(NaN(), one); !got.IsNaN() {
		t.Errorf("NaN + 1 = %v, want NaN", got)
	}
}

func TestSetRoundingRestore(t *testing.T) {
	ctx := NewContext()
	if ctx.Rounding() != ToNearestEven {
		t.Fatalf("default mode = %v", ctx.Rounding())
	}
	restore := ctx.SetRounding(ToZero)
	if ctx.Rounding() != ToZero {
		t.Fatalf("after SetRounding mode = %v", ctx.Rounding())
	}
	restore()
	if ctx.Rounding() != ToNearestEven {
		t.Fatalf("after restore mode = %v", ctx.Rounding())
	}
}

// A sum whose low bits fall off the 113-bit mantissa makes the mode
// observable: 1 + 2^-120 is exactly 1 when rounded to nearest or toward
// zero, and the next value up when rounded toward +Inf.
func TestDirectedRounding(t *testing.T) {
	one := FromFloat64(1)
	tiny := MustParse("0x1p-120")
	onePlus := MustParse("0x1.0000000000000000000000000001p0")

	ctx := NewContext()
	if got := ctx.Add(one, tiny); got.Cmp(one) != 0 {
		t.Errorf("nearest: 1 + 2^-120 = %v, want 1", got)
	}

	restore := ctx.SetRounding(ToPositiveInf)
	if got := ctx.Add(one, tiny); got.Cmp(onePlus) != 0 {
		t.Errorf("toward +Inf: 1 + 2^-120 = %v, want 1+ulp", got)
	}
	restore()

	restore = ctx.SetRounding(ToNegativeInf)
	if got := ctx.Sub(one, tiny); got.Cmp(MustParse("0x1.ffffffffffffffffffffffffffffp-1")) != 0 {
		t.Errorf("toward -Inf: 1 - 2^-120 = %v, want 1-ulp/2", got)
	}
	restore()
}
