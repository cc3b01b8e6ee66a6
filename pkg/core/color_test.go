package core

import "testing"

func TestColorAdd(t *testing.T) {
	a := NewColor(0.1, 0.2, 0.3)
	b := NewColor(0.5, 0.5, 0.5)
	got := a.Add(b)
	want := NewColor(0.6, 0.7, 0.8)
	if !almostEqual(got.R, want.R) || !almostEqual(got.G, want.G) || !almostEqual(got.B, want.B) {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestColorMul(t *testing.T) {
	a := NewColor(1, 0.5, 0.25)
	b := NewColor(2, 2, 2)
	got := a.Mul(b)
	want := NewColor(2, 1, 0.5)
	if got != want {
		t.Errorf("Mul() = %+v, want %+v", got, want)
	}
}

func TestColorScale(t *testing.T) {
	got := NewColor(1, 2, 3).Scale(2)
	want := NewColor(2, 4, 6)
	if got != want {
		t.Errorf("Scale() = %+v, want %+v", got, want)
	}
}

func TestColorIsZero(t *testing.T) {
	if !(Color{}).IsZero() {
		t.Error("zero-value Color should be IsZero()")
	}
	if (NewColor(0, 0, 0.0001)).IsZero() {
		t.Error("near-zero color should not be IsZero() — equality is exact")
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}
