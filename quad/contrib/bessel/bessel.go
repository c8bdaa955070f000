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

//go:generate go run github.com/ajroetker/go-quadmath/cmd/quadgen -output ztables.go

import (
	"github.com/ajroetker/go-quadmath/quad"
)

var (
	// 1/sqrt(pi) and 2/pi to 40 digits.
	oneOverSqrtPi = quad.MustParse("5.6418958354775628694807945156077258584405E-1")
	twoOverPi     = quad.MustParse("6.3661977236758134307553505349005744813784E-1")

	half         = quad.FromFloat64(0.5)
	one          = quad.FromFloat64(1)
	two          = quad.FromFloat64(2)
	threeEighths = quad.FromFloat64(0.375)

	// tinyJ1: below this J1(x) is x/2 to full precision.
	// tinyY1: below this Y1(x) is -(2/pi)/x to full precision.
	tinyJ1 = quad.MustParse("0x1p-58")
	tinyY1 = quad.MustParse("0x1p-114")

	// Past hugeX the amplitude factors are 1 and 0 to full precision and
	// the P/Q tables are skipped. maxOver2 is half the largest finite
	// value; beyond it 2x overflows and the cos(2x) refit is skipped too.
	hugeX    = quad.MustParse("0x1p256")
	maxOver2 = quad.MustParse("0x1.ffffffffffffffffffffffffffffp+16382")
)

// tab parses one coefficient table. The literals are data fitted offline;
// a malformed one is a defect in the generator, so parsing panics.
func tab(coeffs ...string) []quad.Float {
	out := make([]quad.Float, len(coeffs))
	for i, c := range coeffs {
		out[i] = quad.MustParse(c)
	}
	return out
}

// eval carries the rounding context through one evaluation. Y1's
// near-origin path narrows the mode to round-to-nearest and needs the
// caller's mode back afterwards, hence a mutable holder rather than a bare
// quad.Context.
type eval struct {
	ctx quad.Context
}
