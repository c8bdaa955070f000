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

// polyN evaluates a polynomial with explicit coefficients by Horner's
// scheme, highest degree first, rounding after every step.
func polyN(ctx quad.Context, z quad.Float, c []quad.Float) quad.Float {
	y := c[0]
	for _, ci := range c[1:] {
		y = ctx.Add(ctx.Mul(y, z), ci)
	}
	return y
}

// polyD evaluates a monic polynomial: the leading coefficient is an
// implicit 1, so the recurrence seeds with z + c[0].
func polyD(ctx quad.Context, z quad.Float, c []quad.Float) quad.Float {
	y := ctx.Add(z, c[0])
	for _, ci := range c[1:] {
		y = ctx.Add(ctx.Mul(y, z), ci)
	}
	return y
}
