package lathe

import (
	"math"
	"testing"
)

func TestCurveBuilderAdd(t *testing.T) {
	var b CurveBuilder
	pts := []Tip{{0.5, -0.3}, {0.4, -0.3}, {0.3, -0.3}, {0.2, -0.3}}

	if !b.Add(pts[0]) {
		t.Fatal("first point rejected")
	}
	if b.Add(pts[0]) {
		t.Error("duplicate of the previous point accepted")
	}
	for _, p := range pts[1:3] {
		if !b.Add(p) {
			t.Fatalf("point %v rejected", p)
		}
	}
	if b.Curve() != nil || b.Complete() {
		t.Fatal("curve present before the fourth point")
	}
	if !b.Add(pts[3]) {
		t.Fatal("fourth point rejected")
	}
	if !b.Complete() || len(b.Curve()) != CurveSamples {
		t.Fatalf("curve has %d samples, want %d", len(b.Curve()), CurveSamples)
	}
	if b.Add(Tip{0.1, -0.3}) {
		t.Error("fifth point accepted")
	}
	if len(b.Points()) != 4 {
		t.Errorf("points = %d, want 4", len(b.Points()))
	}

	b.Clear()
	if len(b.Points()) != 0 || b.Curve() != nil {
		t.Error("Clear() left points or curve behind")
	}
	if !b.Add(pts[0]) {
		t.Error("point rejected after Clear()")
	}
}

func TestEvalCubicEndpoints(t *testing.T) {
	c := [4]Tip{{0, 0}, {1, 2}, {3, 2}, {4, 0}}
	if got := EvalCubic(c, 0); got != c[0] {
		t.Errorf("EvalCubic(0) = %v, want %v", got, c[0])
	}
	if got := EvalCubic(c, 1); got != c[3] {
		t.Errorf("EvalCubic(1) = %v, want %v", got, c[3])
	}
	mid := EvalCubic(c, 0.5)
	if math.Abs(mid.X-2) > 1e-12 || math.Abs(mid.Y-1.5) > 1e-12 {
		t.Errorf("EvalCubic(0.5) = %v, want {2 1.5}", mid)
	}
}

func TestCommitFloorStraightLine(t *testing.T) {
	p := NewProfile(DefaultGeometry())
	curve := SampleCubic([4]Tip{{0.6, -0.3}, {0.5, -0.3}, {0.4, -0.3}, {0.3, -0.3}}, CurveSamples)

	n := p.CommitFloor(curve)
	if n != 301 {
		t.Errorf("CommitFloor() wrote %d sections, want 301", n)
	}
	for i := 0; i < p.Len(); i++ {
		want := 0
		if i >= 20 && i <= 320 {
			want = 100
		}
		if p.Floor(i) != want {
			t.Fatalf("Floor(%d) = %d, want %d", i, p.Floor(i), want)
		}
	}
}

func TestCommitFloorFillsSparseSamples(t *testing.T) {
	p := NewProfile(DefaultGeometry())
	// Eleven samples spanning 1500 sections leave gaps of 150 sections.
	curve := SampleCubic([4]Tip{{0.6, -0.3}, {0.1, -0.3}, {-0.4, -0.3}, {-0.9, -0.3}}, 11)
	p.CommitFloor(curve)

	for i := 20; i <= 1520; i++ {
		if p.Floor(i) != 100 {
			t.Fatalf("Floor(%d) = %d, want 100", i, p.Floor(i))
		}
	}
}

func TestCommitFloorClampsToProfile(t *testing.T) {
	p := NewProfile(DefaultGeometry())
	p.Apply(Projection{Start: 100, End: 100, Radii: []int{50}})

	p.CommitFloor([]Tip{{0.62 - 0.1, -0.3}})
	if p.Floor(100) != 50 {
		t.Errorf("Floor(100) = %d, want 50 (current radius)", p.Floor(100))
	}
}

func TestCommitFloorSkipsOutsideSections(t *testing.T) {
	p := NewProfile(DefaultGeometry())
	if n := p.CommitFloor([]Tip{{0.9, -0.3}, {0.8, -0.3}}); n != 0 {
		t.Errorf("CommitFloor() wrote %d sections right of the workpiece", n)
	}
}
