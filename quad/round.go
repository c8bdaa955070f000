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

import "math/big"

// clamp128 imposes the binary128 exponent range on a value already rounded
// to Prec bits: exponents above the maximum overflow to ±Inf, values in the
// subnormal range are re-rounded at their reduced effective precision, and
// values below half the smallest subnormal flush to zero. The returned flags
// report underflow-to-zero and overflow.
func clamp128(v *big.Float, mode big.RoundingMode) (_ *big.Float, underflow, overflow bool) {
	if v.IsInf() || v.Sign() == 0 {
		return v, false, false
	}
	exp := v.MantExp(nil)
	if exp > maxExp {
		z := new(big.Float).SetPrec(Prec)
		z.SetInf(v.Signbit())
		return z, false, true
	}
	if exp >= minExp {
		return v, false, false
	}

	// Subnormal range: fewer mantissa bits are available the closer the
	// value sits to the bottom of the range.
	effBits := Prec + exp - minExp
	if effBits >= 1 {
		z := new(big.Float).SetMode(mode).SetPrec(uint(effBits)).Set(v)
		z.SetPrec(Prec) // widening is exact
		return z, z.Sign() == 0, false
	}

	// Below the smallest subnormal 2**-16494: round to it or to zero.
	minSub := new(big.Float).SetPrec(Prec).SetMantExp(big.NewFloat(1), minSubExp-1)
	up := false
	switch mode {
	case big.ToNearestEven, big.ToNearestAway:
		// Halfway at 2**-16495 resolves to zero (the even neighbor),
		// except under ToNearestAway.
		half := new(big.Float).SetPrec(Prec).SetMantExp(big.NewFloat(1), minSubExp-2)
		abs := new(big.Float).SetPrec(Prec).Abs(v)
		switch abs.Cmp(half) {
		case 1:
			up = true
		case 0:
			up = mode == big.ToNearestAway
		}
	case big.AwayFromZero:
		up = true
	case big.ToPositiveInf:
		up = !v.Signbit()
	case big.ToNegativeInf:
		up = v.Signbit()
	}
	if up {
		if v.Signbit() {
			minSub.Neg(minSub)
		}
		return minSub, false, false
	}
	z := new(big.Float).SetPrec(Prec)
	if v.Signbit() {
		z.Neg(z)
	}
	return z, true, false
}
