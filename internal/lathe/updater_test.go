package lathe

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestApplyShrinksOnly(t *testing.T) {
	p := NewProfile(Geometry{Sections: 10, Slices: 4, InitialRadius: 100})

	ch := p.Apply(Projection{Start: 2, End: 5, Radii: []int{90, 120, 50, 100}})
	if !ch.Changed || ch.Start != 2 || ch.End != 4 {
		t.Fatalf("Apply() = %+v, want changed [2, 4]", ch)
	}
	want := []int{100, 100, 90, 100, 50, 100, 100, 100, 100, 100, 100}
	if got := p.Radii(); !slices.Equal(got, want) {
		t.Errorf("radii = %v, want %v", got, want)
	}
}

func TestApplyNoOpIsIdempotent(t *testing.T) {
	w, err := NewWorkpiece(smallGeometry())
	if err != nil {
		t.Fatal(err)
	}
	w.MoveTo(Tip{0.6, -0.3})

	radii := w.Profile().Radii()
	verts := slices.Clone(w.Mesh().Vertices)

	pr := Projection{Start: 0, End: 20, Radii: make([]int, 21)}
	for i := range pr.Radii {
		pr.Radii[i] = w.Profile().Radius(i) + i%2
	}
	ch := w.Profile().Apply(pr)
	if ch.Changed {
		t.Fatalf("Apply() = %+v, want no change", ch)
	}
	if patches := w.Mesh().Patch(w.Profile(), ch); patches != nil {
		t.Errorf("Patch() returned %d patches for no change", len(patches))
	}
	if !slices.Equal(w.Profile().Radii(), radii) {
		t.Error("profile changed on a no-op projection")
	}
	if !slices.Equal(w.Mesh().Vertices, verts) {
		t.Error("mesh changed on a no-op projection")
	}
}

func TestApplyClampsToFloor(t *testing.T) {
	p := NewProfile(Geometry{Sections: 4, Slices: 4, InitialRadius: 100})
	p.floors[1] = 60
	p.floors[2] = 60

	ch := p.Apply(Projection{Start: 0, End: 3, Radii: []int{10, 10, 80, 10}})
	if !ch.Changed {
		t.Fatal("Apply() reported no change")
	}
	want := []int{10, 60, 80, 10, 100}
	if got := p.Radii(); !slices.Equal(got, want) {
		t.Errorf("radii = %v, want %v", got, want)
	}
}

func TestApplyAtFloorIsTerminal(t *testing.T) {
	p := NewProfile(Geometry{Sections: 2, Slices: 4, InitialRadius: 100})
	p.floors[1] = 40

	p.Apply(Projection{Start: 1, End: 1, Radii: []int{0}})
	if p.Radius(1) != 40 {
		t.Fatalf("radius = %d, want floor 40", p.Radius(1))
	}

	ch := p.Apply(Projection{Start: 1, End: 1, Radii: []int{0}})
	if ch.Changed {
		t.Errorf("Apply() at floor = %+v, want no change", ch)
	}
	if p.Radius(1) != 40 {
		t.Errorf("radius = %d, want 40", p.Radius(1))
	}
}

func TestRandomStrokesKeepInvariants(t *testing.T) {
	w, err := NewWorkpiece(DefaultGeometry())
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(7, 11))

	// A floor curve dipping into the middle of the piece.
	w.SetMode(ModeCurve)
	for _, p := range []Tip{{0.55, -0.35}, {0.3, -0.25}, {0.0, -0.25}, {-0.3, -0.4}} {
		w.Click(p)
	}
	w.SetMode(ModeCut)
	floors := w.Profile().Floors()

	prev := w.Profile().Radii()
	for range 2000 {
		tip := Tip{X: rng.Float64()*2.2 - 1.1, Y: -0.2 - rng.Float64()*0.6}
		w.MoveTo(tip)

		cur := w.Profile().Radii()
		for i := range cur {
			if cur[i] > prev[i] {
				t.Fatalf("section %d grew from %d to %d", i, prev[i], cur[i])
			}
			if cur[i] < floors[i] {
				t.Fatalf("section %d cut to %d below floor %d", i, cur[i], floors[i])
			}
		}
		prev = cur
	}
	if w.Stats().Cuts == 0 {
		t.Error("no stroke ever cut the workpiece")
	}
}
