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
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-quadmath/quad"
)

type refVector struct {
	X  string `yaml:"x"`
	J1 string `yaml:"j1"`
	Y1 string `yaml:"y1"`
}

type refFile struct {
	Vectors []refVector `yaml:"vectors"`
}

func loadVectors(t *testing.T) []refVector {
	t.Helper()
	raw, err := os.ReadFile("testdata/reference.yaml")
	require.NoError(t, err)
	var f refFile
	require.NoError(t, yaml.Unmarshal(raw, &f))
	require.NotEmpty(t, f.Vectors)
	return f.Vectors
}

// Small arguments compare absolutely: the ordinates are of order one and
// the fits are good to a few 1e-35. Past x=30 the reference switches to
// an asymptotic expansion and the values span 80 decades, so those
// compare relatively; 1e-27 accommodates the shortest reference entry.
func tolerance(x quad.Float, want quad.Float) quad.Float {
	ctx := quad.NewContext()
	if x.Cmp(quad.FromFloat64(30)) <= 0 {
		return quad.MustParse("1e-32")
	}
	return ctx.Mul(want.Abs(), quad.MustParse("1e-27"))
}

func TestAgainstReference(t *testing.T) {
	ctx := quad.NewContext()
	for _, v := range loadVectors(t) {
		v := v
		t.Run("x="+short(v.X), func(t *testing.T) {
			x := quad.MustParse(v.X)
			wantJ := quad.MustParse(v.J1)
			wantY := quad.MustParse(v.Y1)

			gotJ := J1(x)
			diff := ctx.Sub(gotJ, wantJ).Abs()
			require.LessOrEqual(t, diff.Cmp(tolerance(x, wantJ)), 0,
				"J1(%s) = %s, want %s", v.X, gotJ, wantJ)

			gotY := Y1(x)
			diff = ctx.Sub(gotY, wantY).Abs()
			require.LessOrEqual(t, diff.Cmp(tolerance(x, wantY)), 0,
				"Y1(%s) = %s, want %s", v.X, gotY, wantY)
		})
	}
}

// short trims huge decimal arguments down to a readable subtest name.
func short(s string) string {
	if len(s) <= 12 {
		return s
	}
	return s[:8] + "~e" + strconv.Itoa(len(s)-1)
}
