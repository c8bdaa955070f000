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

func TestNearTableShape(t *testing.T) {
	if len(j1NearNum) != 7 || len(j1NearDen) != 7 {
		t.Errorf("J1 near tables %d/%d, want 7/7", len(j1NearNum), len(j1NearDen))
	}
	if len(y1NearNum) != 8 || len(y1NearDen) != 8 {
		t.Errorf("Y1 near tables %d/%d, want 8/8", len(y1NearNum), len(y1NearDen))
	}
}

func TestFarSegmentsCover(t *testing.T) {
	if len(farSegments) != 8 {
		t.Fatalf("%d far segments, want 8", len(farSegments))
	}
	prev := 0.0
	for i, seg := range farSegments {
		if seg.upper <= prev {
			t.Errorf("segment %d bound %v not ascending", i, seg.upper)
		}
		prev = seg.upper
		if len(seg.pNum) == 0 || len(seg.pDen) == 0 || len(seg.qNum) == 0 || len(seg.qDen) == 0 {
			t.Errorf("segment %d has an empty table", i)
		}
	}
	if prev != 0.5 {
		t.Errorf("last bound %v, want 0.5 so far field reaches down to x=2", prev)
	}
}

func TestSelectSegment(t *testing.T) {
	// 1/x at the first bound goes to segment 0, just above it to segment 1.
	if got := selectSegment(quad.FromFloat64(0.0625)); got != &farSegments[0] {
		t.Error("0.0625 not in first segment")
	}
	if got := selectSegment(quad.FromFloat64(0.0626)); got != &farSegments[1] {
		t.Error("0.0626 not in second segment")
	}
	if got := selectSegment(quad.FromFloat64(0.5)); got != &farSegments[7] {
		t.Error("0.5 not in last segment")
	}
	if got := selectSegment(quad.MustParse("1e-300")); got != &farSegments[0] {
		t.Error("tiny 1/x not in first segment")
	}
}
