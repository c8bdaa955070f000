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

package main

import (
	"go/format"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := validate(); err != nil {
		t.Fatalf("shipped tables fail validation: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	bad := table{degree: 2, coeffs: []string{"1", "2"}}
	den := table{degree: 0, monic: true, coeffs: []string{"1"}}
	if err := validateRational("bad", bad, den); err == nil {
		t.Error("degree mismatch not caught")
	}
	bad = table{degree: 0, coeffs: []string{"not-a-number"}}
	if err := validateRational("bad", bad, den); err == nil {
		t.Error("unparseable coefficient not caught")
	}
	if err := validateRational("bad", den, den); err == nil {
		t.Error("monic numerator not caught")
	}
}

func TestRenderFormats(t *testing.T) {
	src := render()
	formatted, err := format.Source([]byte(src))
	if err != nil {
		t.Fatalf("render output does not parse: %v", err)
	}
	out := string(formatted)
	for _, want := range []string{
		"// Code generated by quadgen. DO NOT EDIT.",
		"package bessel",
		"j1NearNum = tab(",
		"y1NearDen = tab(",
		"var farSegments = [...]farSegment{",
		"upper: 0.5,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}
