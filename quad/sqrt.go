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

// Sqrt computes the square root of x.
//
// Special cases:
//   - Sqrt(NaN) = NaN
//   - Sqrt(x) = NaN for x < 0
//   - Sqrt(±0) = ±0
//   - Sqrt(+Inf) = +Inf
func (c Context) Sqrt(x Float) Float {
	if x.nan {
		return NaN()
	}
	b := x.big()
	if b.Sign() == 0 {
		return x
	}
	if b.Signbit() {
		return NaN()
	}
	if b.IsInf() {
		return Inf(1)
	}
	return c.finish(c.dst().Sqrt(b))
}
