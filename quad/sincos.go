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
	"math/big"
)

// SinCos computes sin(x) and cos(x) jointly from one argument.
//
// Reduction runs against pi held at extended precision, so the results stay
// accurate across the format's entire exponent range; one joint call shares
// the reduction between both outputs.
//
// Special cases:
//   - SinCos(NaN) = NaN, NaN
//   - SinCos(±Inf) = NaN, NaN
//   - SinCos(±0) = ±0, 1
func (c Context) SinCos(x Float) (sin, cos Float) {
	if x.nan || x.big().IsInf() {
		return NaN(), NaN()
	}
	if x.IsZero() {
		return x, FromFloat64(1)
	}

	neg := x.Signbit()
	a := new(big.Float).SetPrec(Prec).Abs(x.big())

	// Reduction to |t| <= pi/4 cancels roughly one bit per bit of the
	// argument's exponent; widen the working precision to compensate.
	work := uint(Prec + 64)
	if e := a.MantExp(nil); e > 0 {
		work += uint(e)
	}
	t, quadrant := trigReduce(a, work)

	sn, cs := taylorSinCos(t, Prec+32)
	switch quadrant {
	case 1:
		sn, cs = cs, new(big.Float).Neg(sn)
	case 2:
		sn, cs = new(big.Float).Neg(sn), new(big.Float).Neg(cs)
	case 3:
		sn, cs = new(big.Float).Neg(cs), sn
	}
	if neg {
		sn.Neg(sn)
	}
	return c.round(sn), c.round(cs)
}

// trigReduce returns t with a = n*pi/2 + t, |t| <= pi/4 (up to rounding),
// and n mod 4. Requires a > 0.
func trigReduce(a *big.Float, work uint) (*big.Float, int) {
	p := pi(work + 32)
	halfPi := new(big.Float).SetPrec(work + 32).Quo(p, big.NewFloat(2))

	q := new(big.Float).SetPrec(work + 32).Quo(a, halfPi)
	q.Add(q, big.NewFloat(0.5))
	n, _ := q.Int(nil) // a > 0, so truncation is floor

	t := new(big.Float).SetPrec(work + 32).SetInt(n)
	t.Mul(t, halfPi)
	t.Sub(new(big.Float).SetPrec(work+32).Set(a), t)

	rem := new(big.Int).Mod(n, big.NewInt(4))
	return t, int(rem.Int64())
}

// taylorSinCos evaluates both Taylor series at precision prec for
// |t| <= pi/4, iterating until the sums stop changing.
func taylorSinCos(t *big.Float, prec uint) (sn, cs *big.Float) {
	t2 := new(big.Float).SetPrec(prec).Mul(t, t)

	sn = new(big.Float).SetPrec(prec).Set(t)
	term := new(big.Float).SetPrec(prec).Set(t)
	prev := new(big.Float).SetPrec(prec)
	for k := int64(1); ; k++ {
		term.Mul(term, t2)
		term.Quo(term, new(big.Float).SetInt64(2*k*(2*k+1)))
		term.Neg(term)
		prev.Set(sn)
		sn.Add(sn, term)
		if sn.Cmp(prev) == 0 {
			break
		}
	}

	cs = new(big.Float).SetPrec(prec).SetInt64(1)
	term.SetInt64(1)
	for k := int64(1); ; k++ {
		term.Mul(term, t2)
		term.Quo(term, new(big.Float).SetInt64((2*k-1)*2*k))
		term.Neg(term)
		prev.Set(cs)
		cs.Add(cs, term)
		if cs.Cmp(prev) == 0 {
			break
		}
	}
	return sn, cs
}

// round brings a wide intermediate down to the format: one rounding at 113
// bits in the context's mode, then the binary128 range clamp.
func (c Context) round(z *big.Float) Float {
	return c.finish(c.dst().Set(z))
}
