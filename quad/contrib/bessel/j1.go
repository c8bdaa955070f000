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

package bessel

import (
	"github.com/ajroetker/go-quadmath/quad"
)

// J1 computes the order-one Bessel function of the first kind.
//
// Special cases:
//   - J1(NaN) = NaN
//   - J1(±Inf) = ±0
//   - J1(±0) = ±0
func J1(x quad.Float) quad.Float {
	v, _ := J1E(x)
	return v
}

// J1E is J1 with range reporting: err is quad.ErrRange when the result
// underflowed to zero for a nonzero argument, nil otherwise.
func J1E(x quad.Float) (quad.Float, error) {
	e := eval{ctx: quad.NewContext()}
	return e.j1(x)
}

func (e *eval) j1(x quad.Float) (quad.Float, error) {
	if x.IsNaN() {
		return x, nil
	}
	if x.IsInf() {
		return quad.Zero(x.Signbit()), nil
	}
	a := x.Abs()
	if a.Cmp(tinyJ1) <= 0 {
		// J1(x) = x/2 to full precision.
		ret := e.ctx.Mul(x, half)
		if ret.IsZero() && !x.IsZero() {
			return ret, quad.ErrRange
		}
		return ret, nil
	}
	var ret quad.Float
	if a.Cmp(two) <= 0 {
		ret = e.j1Near(a)
	} else {
		ret = e.farField(a, kindJ1)
	}
	// J1 is odd.
	if x.Signbit() {
		ret = ret.Neg()
	}
	return ret, nil
}

// j1Near evaluates 0 < a <= 2 via the rational fit in z = a².
func (e *eval) j1Near(a quad.Float) quad.Float {
	ctx := e.ctx
	z := ctx.Mul(a, a)
	r := ctx.Quo(polyN(ctx, z, j1NearNum), polyD(ctx, z, j1NearDen))
	return ctx.Add(ctx.Mul(a, half), ctx.Mul(ctx.Mul(a, z), r))
}
