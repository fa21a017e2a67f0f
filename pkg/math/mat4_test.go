package math

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return abs(a-b) < 1e-5
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func nearPoint(a, b [3]float32) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestIdentity(t *testing.T) {
	m := Identity()
	for i := range 16 {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if m[i] != want {
			t.Errorf("Identity[%d] = %v, want %v", i, m[i], want)
		}
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateZ(0.3))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestTranslateThenScale(t *testing.T) {
	m := Translate(10, 20, 30).Mul(Scale(2, 2, 2))
	got := m.TransformPoint([3]float32{1, 2, 3})
	want := [3]float32{12, 24, 36}
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   [3]float32
		want [3]float32
	}{
		{"x 90", RotateX(math.Pi / 2), [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
		{"y 90", RotateY(math.Pi / 2), [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{"y -90", RotateY(-math.Pi / 2), [3]float32{0, 0, 1}, [3]float32{-1, 0, 0}},
		{"z 90", RotateZ(math.Pi / 2), [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !nearPoint(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrthoUnitCubeIsNearIdentity(t *testing.T) {
	m := Ortho(-1, 1, -1, 1, -1, 1)
	got := m.TransformPoint([3]float32{0.5, -0.25, 0.5})
	want := [3]float32{0.5, -0.25, -0.5}
	if !nearPoint(got, want) {
		t.Errorf("Ortho transform = %v, want %v", got, want)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); !near(got, math.Pi) {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
