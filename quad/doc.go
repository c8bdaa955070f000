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

// Package quad provides IEEE binary128-class extended-precision floating
// point: a 113-bit-mantissa value type with NaN, ±Inf and signed zero, and
// the elementary operations special-function kernels need on top of it.
//
// Values are immutable. Arithmetic goes through a Context, which carries the
// active rounding mode and rounds every result once at 113 bits, then clamps
// it to the binary128 exponent range (overflow to ±Inf, gradual underflow
// through the subnormal range, underflow to zero below it). This mirrors what
// hardware binary128 would do, so algorithms written against fixed-width
// extended floats port over unchanged.
//
// The elementary functions (SinCos, Log, Sqrt) evaluate internally at a
// higher working precision and round once at the end, so their results are
// accurate to within an ulp or two of the format.
package quad
