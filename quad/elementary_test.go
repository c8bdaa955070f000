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

import (
	"testing"
)

// Reference ordinates computed independently to 40 digits.
var sinCosRefs = []struct {
	x, sin, cos string
}{
	{"0.5", "0.4794255386042030002732879352155713880818", "0.8775825618903727161162815826038296519916"},
	{"1", "0.8414709848078965066525023216302989996225", "0.5403023058681397174009366074429766037323"},
	{"2", "0.9092974268256816953960198659117448427022", "-0.4161468365471423869975682295007621897660"},
	{"3.75", "-0.5715613187423437724341555733502934979185", "-0.8205593573395607225831124022907110473592"},
	{"10", "-0.5440211108893698134047476618513772816836", "-0.8390715290764524522588639478240648345199"},
	{"100.5", "-0.03095996678327134474297531253373934619786", "0.9995206253283514584176978496215293567271"},
	{"10000", "-0.3056143888882521413609100352325069742318", "-0.9521553682590148512403867606633060013070"},
	{"0x1p40", "-0.4057050115328287198206483025752853128929", "-0.9140040719915570022997218090496905660904"},
	{"0x1p120", "0.3778201093607520226555484700569229919605", "-0.9258790228548378673038617641074149467308"},
	{"0x1p300", "0.9772625210693567771740451338724902417299", "0.2120329335578909571204726740048635740271"},
	{"0x1p1000", "-0.1592017030862424382400486308208390338136", "0.9872460775989134842399017963294680056270"},
	{"0x1p16000", "0.6992458822072964750244040792882786403520", "0.7148812462333444531811915329776091707483"},
}

// absTol is 1e-32 as a Float, comfortably above the 113-bit rounding noise
// of a handful of operations on values of order one.
func absTol() Float { return MustParse("1e-32") }

func checkClose(t *testing.T, name string, got, want, tol Float) {
	t.Helper()
	ctx := NewContext()
	diff := ctx.Sub(got, want).Abs()
	if diff.Cmp(tol) > 0 {
		t.Errorf("%s = %s, want %s (diff %s)", name, got, want, diff)
	}
}

func TestSinCos(t *testing.T) {
	ctx := NewContext()
	for _, tt := range sinCosRefs {
		x := MustParse(tt.x)
		sin, cos := ctx.SinCos(x)
		checkClose(t, "sin("+tt.x+")", sin, MustParse(tt.sin), absTol())
		checkClose(t, "cos("+tt.x+")", cos, MustParse(tt.cos), absTol())
	}
}

func TestSinCosSymmetry(t *testing.T) {
	ctx := NewContext()
	for _, tt := range sinCosRefs {
		x := MustParse(tt.x)
		sp, cp := ctx.SinCos(x)
		sn, cn := ctx.SinCos(x.Neg())
		if sn.Cmp(sp.Neg()) != 0 {
			t.Errorf("sin(-%s) != -sin(%s)", tt.x, tt.x)
		}
		if cn.Cmp(cp) != 0 {
			t.Errorf("cos(-%s) != cos(%s)", tt.x, tt.x)
		}
	}
}

func TestSinCosSpecials(t *testing.T) {
	ctx := NewContext()
	if s, c := ctx.SinCos(NaN()); !s.IsNaN() || !c.IsNaN() {
		t.Error("SinCos(NaN) not NaN, NaN")
	}
	if s, c := ctx.SinCos(Inf(1)); !s.IsNaN() || !c.IsNaN() {
		t.Error("SinCos(+Inf) not NaN, NaN")
	}
	if s, c := ctx.SinCos(Inf(-1)); !s.IsNaN() || !c.IsNaN() {
		t.Error("SinCos(-Inf) not NaN, NaN")
	}
	s, c := ctx.SinCos(Zero(true))
	if !s.IsZero() || !s.Signbit() {
		t.Errorf("sin(-0) = %v, want -0", s)
	}
	if c.Cmp(FromFloat64(1)) != 0 {
		t.Errorf("cos(-0) = %v, want 1", c)
	}
}

func TestLog(t *testing.T) {
	refs := []struct {
		x, want string
	}{
		{"0.0625", "-2.772588722239781237668928485832706272302"},
		{"0.5", "-0.6931471805599453094172321214581765680755"},
		{"0.75", "-0.2876820724517809274392190059938274315035"},
		{"1.5", "0.4054651081081643819780131154643491365719"},
		{"2", "0.6931471805599453094172321214581765680755"},
		{"100", "4.605170185988091368035982909368728415202"},
		{"0x1p-114", "-79.01877858383376527356446184623212876060"},
	}
	ctx := NewContext()
	for _, tt := range refs {
		got := ctx.Log(MustParse(tt.x))
		checkClose(t, "log("+tt.x+")", got, MustParse(tt.want), MustParse("1e-30"))
	}
	if got := ctx.Log(FromFloat64(1)); !got.IsZero() {
		t.Errorf("log(1) = %v, want 0", got)
	}
}

func TestLogSpecials(t *testing.T) {
	ctx := NewContext()
	if got := ctx.Log(NaN()); !got.IsNaN() {
		t.Error("Log(NaN) not NaN")
	}
	if got := ctx.Log(FromFloat64(-1)); !got.IsNaN() {
		t.Error("Log(-1) not NaN")
	}
	if got := ctx.Log(Zero(false)); !got.IsInf() || !got.Signbit() {
		t.Errorf("Log(0) = %v, want -Inf", got)
	}
	if got := ctx.Log(Zero(true)); !got.IsInf() || !got.Signbit() {
		t.Errorf("Log(-0) = %v, want -Inf", got)
	}
	if got := ctx.Log(Inf(1)); !got.IsInf() || got.Signbit() {
		t.Errorf("Log(+Inf) = %v, want +Inf", got)
	}
	if got := ctx.Log(Inf(-1)); !got.IsNaN() {
		t.Error("Log(-Inf) not NaN")
	}
}

func TestSqrt(t *testing.T) {
	ctx := NewContext()
	if got := ctx.Sqrt(FromFloat64(4)); got.Cmp(FromFloat64(2)) != 0 {
		t.Errorf("sqrt(4) = %v, want 2", got)
	}
	got := ctx.Sqrt(FromFloat64(2))
	want := MustParse("1.414213562373095048801688724209698078570")
	checkClose(t, "sqrt(2)", got, want, absTol())

	if got := ctx.Sqrt(NaN()); !got.IsNaN() {
		t.Error("Sqrt(NaN) not NaN")
	}
	if got := ctx.Sqrt(FromFloat64(-1)); !got.IsNaN() {
		t.Error("Sqrt(-1) not NaN")
	}
	if got := ctx.Sqrt(Zero(true)); !got.IsZero() || !got.Signbit() {
		t.Errorf("Sqrt(-0) = %v, want -0", got)
	}
	if got := ctx.Sqrt(Inf(1)); !got.IsInf() || got.Signbit() {
		t.Errorf("Sqrt(+Inf) = %v, want +Inf", got)
	}
}
