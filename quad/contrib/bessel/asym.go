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

type kind int

const (
	kindJ1 kind = iota
	kindY1
)

// farField evaluates the asymptotic amplitude/phase form for a > 2:
//
//	J1(x) = sqrt(1/(pi x)) (P1(x) sqrt2cos(X) - Q1(x) sqrt2sin(X))
//	Y1(x) = sqrt(1/(pi x)) (P1(x) sqrt2sin(X) + Q1(x) sqrt2cos(X))
//
// where X = x - 3pi/4, folded into ss = -sin(x) - cos(x) = sqrt(2) sin(X)
// and cc = sin(x) - cos(x) = sqrt(2) cos(X).
func (e *eval) farField(a quad.Float, k kind) quad.Float {
	ctx := e.ctx
	s, c := ctx.SinCos(a)
	ss := ctx.Sub(s.Neg(), c)
	cc := ctx.Sub(s, c)

	// Whichever of ss, cc is the small difference of nearly equal values
	// has lost bits. ss*cc = cos(2x), so refit the small one from the
	// large; sin(x)cos(x) > 0 marks cc as the small one.
	if a.Cmp(maxOver2) <= 0 {
		_, c2 := ctx.SinCos(ctx.Add(a, a))
		if ctx.Mul(s, c).Sign() > 0 {
			cc = ctx.Quo(c2, ss)
		} else {
			ss = ctx.Quo(c2, cc)
		}
	}

	root := ctx.Sqrt(a)
	if a.Cmp(hugeX) > 0 {
		// P1 = 1 and Q1 = 0 to full precision out here.
		num := cc
		if k == kindY1 {
			num = ss
		}
		return ctx.Quo(ctx.Mul(oneOverSqrtPi, num), root)
	}

	xinv := ctx.Quo(one, a)
	seg := selectSegment(xinv)
	z := ctx.Mul(xinv, xinv)
	p := ctx.Quo(polyN(ctx, z, seg.pNum), polyD(ctx, z, seg.pDen))
	q := ctx.Quo(polyN(ctx, z, seg.qNum), polyD(ctx, z, seg.qDen))
	p = ctx.Add(one, ctx.Mul(z, p))
	q = ctx.Mul(z, q)
	q = ctx.Add(ctx.Mul(q, xinv), ctx.Mul(threeEighths, xinv))

	var num quad.Float
	if k == kindJ1 {
		num = ctx.Sub(ctx.Mul(p, cc), ctx.Mul(q, ss))
	} else {
		num = ctx.Add(ctx.Mul(p, ss), ctx.Mul(q, cc))
	}
	return ctx.Quo(ctx.Mul(oneOverSqrtPi, num), root)
}
