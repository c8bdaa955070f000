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
	"fmt"
	"math"
	"math/big"
)

// Prec is the mantissa precision in bits (IEEE binary128).
const Prec = 113

// Exponent limits of binary128 in big.Float MantExp convention, where a
// value is m * 2**exp with 0.5 <= |m| < 1.
//
//	Max finite:    (1 - 2**-113) * 2**16384  -> exp 16384
//	Min normal:    2**-16382                 -> exp -16381
//	Min subnormal: 2**-16494                 -> exp -16493
const (
	maxExp    = 16384
	minExp    = -16381
	minSubExp = -16493
)

// Float is one binary128-class extended-precision value.
//
// The zero value is +0. Float values are immutable: arithmetic through a
// Context allocates fresh results and never mutates its operands, so Floats
// may be shared freely across goroutines.
type Float struct {
	f   *big.Float // nil stands for zero; sign is then positive
	nan bool
}

// NaN returns a quiet not-a-number value.
func NaN() Float {
	return Float{nan: true}
}

// Inf returns +Inf when sign >= 0, -Inf otherwise.
func Inf(sign int) Float {
	f := new(big.Float).SetPrec(Prec)
	if sign >= 0 {
		f.SetInf(false)
	} else {
		f.SetInf(true)
	}
	return Float{f: f}
}

// Zero returns a zero with the given sign bit.
func Zero(neg bool) Float {
	f := new(big.Float).SetPrec(Prec)
	if neg {
		f.Neg(f)
	}
	return Float{f: f}
}

// FromFloat64 converts v exactly; float64 NaN and ±Inf map to the quad
// equivalents, and the sign of zero is preserved.
func FromFloat64(v float64) Float {
	if math.IsNaN(v) {
		return NaN()
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return Inf(1)
		}
		return Inf(-1)
	}
	if v == 0 {
		return Zero(math.Signbit(v))
	}
	return Float{f: new(big.Float).SetPrec(Prec).SetFloat64(v)}
}

// FromBig rounds v to the format. v is copied; the argument is not retained.
func FromBig(v *big.Float) Float {
	f := new(big.Float).SetPrec(Prec).Set(v)
	r, _, _ := clamp128(f, big.ToNearestEven)
	return Float{f: r}
}

// Parse reads a decimal or hexadecimal ("0x1p-58") floating-point literal,
// correctly rounded to 113 bits.
func Parse(s string) (Float, error) {
	f, _, err := big.ParseFloat(s, 0, Prec, big.ToNearestEven)
	if err != nil {
		return Float{}, fmt.Errorf("quad: parsing %q: %w", s, err)
	}
	r, _, _ := clamp128(f, big.ToNearestEven)
	return Float{f: r}, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
// Intended for initializing coefficient tables and constants.
func MustParse(s string) Float {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// big returns the underlying value for read-only use. Callers inside the
// package must not mutate the result when x.f is shared.
func (x Float) big() *big.Float {
	if x.f == nil {
		return new(big.Float).SetPrec(Prec)
	}
	return x.f
}

// Big returns a copy of the value as a big.Float. It panics on NaN, which
// big.Float cannot represent.
func (x Float) Big() *big.Float {
	if x.nan {
		panic("quad: Big called on NaN")
	}
	return new(big.Float).Copy(x.big())
}

// Float64 returns the nearest float64, with NaN and infinities mapped
// through.
func (x Float) Float64() float64 {
	if x.nan {
		return math.NaN()
	}
	v, _ := x.big().Float64()
	return v
}

// String formats the value with enough digits to distinguish adjacent
// binary128 values.
func (x Float) String() string {
	return x.Text('g', 36)
}

// Text formats like big.Float.Text; NaN prints as "NaN".
func (x Float) Text(format byte, prec int) string {
	if x.nan {
		return "NaN"
	}
	return x.big().Text(format, prec)
}

// IsNaN reports whether x is a NaN.
func (x Float) IsNaN() bool {
	return x.nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x Float) IsInf() bool {
	return !x.nan && x.big().IsInf()
}

// IsZero reports whether x is +0 or -0.
func (x Float) IsZero() bool {
	return !x.nan && x.big().Sign() == 0
}

// IsFinite reports whether x is neither NaN nor infinite.
func (x Float) IsFinite() bool {
	return !x.nan && !x.big().IsInf()
}

// Signbit reports whether x is negative or negative zero.
func (x Float) Signbit() bool {
	return !x.nan && x.big().Signbit()
}

// Sign returns -1, 0, or +1 depending on the sign of x. Sign panics on NaN.
func (x Float) Sign() int {
	if x.nan {
		panic("quad: Sign called on NaN")
	}
	return x.big().Sign()
}

// Cmp compares x and y like big.Float.Cmp. It panics if either is NaN;
// ordered comparison is undefined there.
func (x Float) Cmp(y Float) int {
	if x.nan || y.nan {
		panic("quad: Cmp called on NaN")
	}
	return x.big().Cmp(y.big())
}

// Neg returns -x. Negation is sign-bit manipulation and needs no rounding.
func (x Float) Neg() Float {
	if x.nan {
		return x
	}
	return Float{f: new(big.Float).SetPrec(Prec).Neg(x.big())}
}

// Abs returns |x|.
func (x Float) Abs() Float {
	if x.nan {
		return x
	}
	return Float{f: new(big.Float).SetPrec(Prec).Abs(x.big())}
}

// Exp2 returns the binary exponent e such that x = m * 2**e with
// 0.5 <= |m| < 1, and 0 for zero, infinite, or NaN values.
func (x Float) Exp2() int {
	if x.nan || x.IsInf() || x.IsZero() {
		return 0
	}
	return x.big().MantExp(nil)
}
