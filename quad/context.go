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

// RoundingMode selects the IEEE rounding direction applied by a Context.
type RoundingMode = big.RoundingMode

// The rounding modes, re-exported from math/big.
const (
	ToNearestEven = big.ToNearestEven
	ToNearestAway = big.ToNearestAway
	ToZero        = big.ToZero
	AwayFromZero  = big.AwayFromZero
	ToNegativeInf = big.ToNegativeInf
	ToPositiveInf = big.ToPositiveInf
)

// Context carries the rounding state for a chain of operations. Every result
// is rounded once at 113 bits in the context's mode and clamped to the
// binary128 range. The zero Context rounds to nearest even.
//
// A Context is a small value; each computation should hold its own copy, so
// nothing is shared across goroutines.
type Context struct {
	mode RoundingMode
}

// NewContext returns a Context rounding to nearest even.
func NewContext() Context {
	return Context{mode: ToNearestEven}
}

// Rounding returns the context's active rounding mode.
func (c Context) Rounding() RoundingMode {
	return c.mode
}

// SetRounding installs mode and returns a function restoring the previous
// one. The intended shape is a scoped override:
//
//	restore := ctx.SetRounding(quad.ToNearestEven)
//	defer restore()
func (c *Context) SetRounding(mode RoundingMode) (restore func()) {
	prev := c.mode
	c.mode = mode
	return func() { c.mode = prev }
}

// dst returns a result receiver with the context's precision and mode.
func (c Context) dst() *big.Float {
	return new(big.Float).SetMode(c.mode).SetPrec(Prec)
}

// finish applies the binary128 range clamp and wraps the result.
func (c Context) finish(z *big.Float) Float {
	r, _, _ := clamp128(z, c.mode)
	return Float{f: r}
}

// Add returns x+y.
//
// Special cases:
//   - Add(NaN, y) = Add(x, NaN) = NaN
//   - Add(+Inf, -Inf) = Add(-Inf, +Inf) = NaN
func (c Context) Add(x, y Float) Float {
	if x.nan || y.nan {
		return NaN()
	}
	xb, yb := x.big(), y.big()
	if xb.IsInf() && yb.IsInf() && xb.Signbit() != yb.Signbit() {
		return NaN()
	}
	return c.finish(c.dst().Add(xb, yb))
}

// Sub returns x-y.
//
// Special cases mirror Add with y negated.
func (c Context) Sub(x, y Float) Float {
	if x.nan || y.nan {
		return NaN()
	}
	xb, yb := x.big(), y.big()
	if xb.IsInf() && yb.IsInf() && xb.Signbit() == yb.Signbit() {
		return NaN()
	}
	return c.finish(c.dst().Sub(xb, yb))
}

// Mul returns x*y.
//
// Special cases:
//   - Mul(NaN, y) = Mul(x, NaN) = NaN
//   - Mul(±0, ±Inf) = Mul(±Inf, ±0) = NaN
func (c Context) Mul(x, y Float) Float {
	if x.nan || y.nan {
		return NaN()
	}
	xb, yb := x.big(), y.big()
	if (xb.Sign() == 0 && yb.IsInf()) || (xb.IsInf() && yb.Sign() == 0) {
		return NaN()
	}
	return c.finish(c.dst().Mul(xb, yb))
}

// Quo returns x/y.
//
// Special cases:
//   - Quo(NaN, y) = Quo(x, NaN) = NaN
//   - Quo(±0, ±0) = Quo(±Inf, ±Inf) = NaN
//   - Quo(x, ±0) = ±Inf for finite nonzero x, by the usual sign rule
func (c Context) Quo(x, y Float) Float {
	if x.nan || y.nan {
		return NaN()
	}
	xb, yb := x.big(), y.big()
	if (xb.Sign() == 0 && yb.Sign() == 0) || (xb.IsInf() && yb.IsInf()) {
		return NaN()
	}
	if yb.Sign() == 0 {
		return Inf(quoSign(xb, yb))
	}
	return c.finish(c.dst().Quo(xb, yb))
}

func quoSign(x, y *big.Float) int {
	if x.Signbit() != y.Signbit() {
		return -1
	}
	return 1
}
