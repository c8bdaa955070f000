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

// Log computes the natural logarithm of x.
//
// The argument is split as x = m * 2**e with m in [0.75, 1.5), then
// ln m = 2 atanh((m-1)/(m+1)) is summed by series and e*ln2 added back.
//
// Special cases:
//   - Log(NaN) = NaN
//   - Log(x) = NaN for x < 0
//   - Log(±0) = -Inf
//   - Log(+Inf) = +Inf
func (c Context) Log(x Float) Float {
	if x.nan {
		return NaN()
	}
	b := x.big()
	if b.Sign() == 0 {
		return Inf(-1)
	}
	if b.Signbit() {
		return NaN()
	}
	if b.IsInf() {
		return Inf(1)
	}

	const work = Prec + 64
	m := new(big.Float).SetPrec(work)
	e := b.MantExp(m) // m in [0.5, 1)
	if m.Cmp(big.NewFloat(0.75)) < 0 {
		m.Mul(m, big.NewFloat(2))
		e--
	}

	one := new(big.Float).SetPrec(work).SetInt64(1)
	num := new(big.Float).SetPrec(work).Sub(m, one)
	den := new(big.Float).SetPrec(work).Add(m, one)
	t := new(big.Float).SetPrec(work).Quo(num, den)
	t2 := new(big.Float).SetPrec(work).Mul(t, t)

	// atanh t = t + t^3/3 + t^5/5 + ...; |t| < 1/5 here.
	sum := new(big.Float).SetPrec(work).Set(t)
	pw := new(big.Float).SetPrec(work).Set(t)
	term := new(big.Float).SetPrec(work)
	prev := new(big.Float).SetPrec(work)
	for k := int64(1); ; k++ {
		pw.Mul(pw, t2)
		term.Quo(pw, new(big.Float).SetInt64(2*k+1))
		prev.Set(sum)
		sum.Add(sum, term)
		if sum.Cmp(prev) == 0 {
			break
		}
	}
	sum.Add(sum, sum) // 2 atanh t

	if e != 0 {
		scale := new(big.Float).SetPrec(work).SetInt64(int64(e))
		scale.Mul(scale, ln2(work))
		sum.Add(sum, scale)
	}
	return c.round(sum)
}
