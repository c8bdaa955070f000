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

// Y1 computes the order-one Bessel function of the second kind.
//
// Special cases:
//   - Y1(NaN) = NaN
//   - Y1(+Inf) = +0
//   - Y1(-Inf) = NaN
//   - Y1(±0) = -Inf
//   - Y1(x) = NaN for x < 0
func Y1(x quad.Float) quad.Float {
	v, _ := Y1E(x)
	return v
}

// Y1E is Y1 with range reporting: err is quad.ErrRange when the result
// overflowed to -Inf for a nonzero argument, nil otherwise.
func Y1E(x quad.Float) (quad.Float, error) {
	e := eval{ctx: quad.NewContext()}
	return e.y1(x)
}

func (e *eval) y1(x quad.Float) (quad.Float, error) {
	if x.IsNaN() {
		return x, nil
	}
	if x.IsInf() {
		if x.Signbit() {
			return quad.NaN(), nil
		}
		return quad.Zero(false), nil
	}
	if x.IsZero() {
		return quad.Inf(-1), nil
	}
	if x.Signbit() {
		return quad.NaN(), nil
	}
	if x.Cmp(tinyY1) <= 0 {
		// Y1(x) = -(2/pi)/x to full precision.
		ret := e.ctx.Quo(twoOverPi.Neg(), x)
		if ret.IsInf() {
			return ret, quad.ErrRange
		}
		return ret, nil
	}
	if x.Cmp(two) <= 0 {
		return e.y1Near(x), nil
	}
	return e.farField(x, kindY1), nil
}

// y1Near evaluates 0 < x <= 2. The log(x)·J1(x) cross term is fitted
// against round-to-nearest arithmetic, so the mode is pinned for the
// duration and the caller's mode restored on the way out.
func (e *eval) y1Near(x quad.Float) quad.Float {
	restore := e.ctx.SetRounding(quad.ToNearestEven)
	defer restore()

	ctx := e.ctx
	z := ctx.Mul(x, x)
	r := ctx.Quo(polyN(ctx, z, y1NearNum), polyD(ctx, z, y1NearDen))
	j1x, _ := e.j1(x)
	w := ctx.Sub(ctx.Mul(ctx.Log(x), j1x), ctx.Quo(one, x))
	return ctx.Add(ctx.Mul(twoOverPi, w), ctx.Mul(x, r))
}
