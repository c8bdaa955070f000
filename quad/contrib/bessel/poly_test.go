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
	"testing"

	"github.com/ajroetker/go-quadmath/quad"
)

func TestPolyN(t *testing.T) {
	ctx := quad.NewContext()
	// 1*z^2 + 2*z + 3 at z=2 is 11.
	got := polyN(ctx, quad.FromFloat64(2), tab("1", "2", "3"))
	if got.Cmp(quad.FromFloat64(11)) != 0 {
		t.Errorf("polyN = %v, want 11", got)
	}
	// Degree zero is the constant itself.
	got = polyN(ctx, quad.FromFloat64(7), tab("4"))
	if got.Cmp(quad.FromFloat64(4)) != 0 {
		t.Errorf("polyN deg0 = %v, want 4", got)
	}
}

func TestPolyD(t *testing.T) {
	ctx := quad.NewContext()
	// Monic: z^2 + 2*z + 3 at z=2 is 11.
	got := polyD(ctx, quad.FromFloat64(2), tab("2", "3"))
	if got.Cmp(quad.FromFloat64(11)) != 0 {
		t.Errorf("polyD = %v, want 11", got)
	}
	// z + 5 at z=3.
	got = polyD(ctx, quad.FromFloat64(3), tab("5"))
	if got.Cmp(quad.FromFloat64(8)) != 0 {
		t.Errorf("polyD deg1 = %v, want 8", got)
	}
}
