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

// Package bessel computes the order-one Bessel functions of the first and
// second kind, J1 and Y1, at binary128 precision.
//
// Arguments at or below 2 in magnitude go through minimax rational
// approximations in x²; larger arguments use the asymptotic amplitude and
// phase form
//
//	J1(x) = sqrt(1/(pi x)) (P1(x) cos(X) - Q1(x) sin(X)), X = x - 3pi/4
//
// with P1 and Q1 interpolated from eight rational tables segmented over
// 1/|x|. Peak relative error of the fits is a few parts in 10³⁵.
//
// J1 and Y1 return only the value; J1E and Y1E additionally report
// quad.ErrRange when the result underflows to zero or overflows to an
// infinity.
package bessel
