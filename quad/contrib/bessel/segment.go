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

// farSegment holds one far-field interval's amplitude and phase rationals,
// keyed by the inclusive upper bound of 1/|x|. upper is a small power-of-two
// multiple, exact in float64.
type farSegment struct {
	upper      float64
	pNum, pDen []quad.Float
	qNum, qDen []quad.Float
}

// selectSegment picks the first segment whose interval contains xinv.
// xinv must lie in (0, 0.5]; the last segment's bound is 0.5, so the scan
// always lands.
func selectSegment(xinv quad.Float) *farSegment {
	for i := range farSegments {
		if xinv.Cmp(quad.FromFloat64(farSegments[i].upper)) <= 0 {
			return &farSegments[i]
		}
	}
	return &farSegments[len(farSegments)-1]
}
