package core

import "testing"

func TestVecAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected Vec
	}{
		{"positive", Vec{1, 2}, Vec{3, 4}, Vec{4, 6}},
		{"negative", Vec{1, 2}, Vec{-1, -2}, Vec{0, 0}},
		{"zero", Vec{5, 7}, Vec{0, 0}, Vec{5, 7}},
		{"direction step", Vec{10, 10}, Vec{1, 0}, Vec{11, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecNeg(t *testing.T) {
	if got := (Vec{1, 0}).Neg(); got != (Vec{-1, 0}) {
		t.Errorf("Neg() = %v, expected (-1,0)", got)
	}
	if got := (Vec{0, -1}).Neg(); got != (Vec{0, 1}) {
		t.Errorf("Neg() = %v, expected (0,1)", got)
	}
}

func TestVecInside(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		w, h     int
		expected bool
	}{
		{"center", Vec{5, 5}, 10, 10, true},
		{"origin", Vec{0, 0}, 10, 10, true},
		{"max corner (exclusive)", Vec{10, 10}, 10, 10, false},
		{"right edge", Vec{10, 5}, 10, 10, false},
		{"bottom edge", Vec{5, 10}, 10, 10, false},
		{"negative x", Vec{-1, 5}, 10, 10, false},
		{"negative y", Vec{5, -1}, 10, 10, false},
		{"last valid cell", Vec{9, 9}, 10, 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Inside(tc.w, tc.h); got != tc.expected {
				t.Errorf("Inside(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"left of rect", 9, 15, false},
		{"above rect", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, expected 10", got)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("bright_green")
	if err != nil {
		t.Fatalf("ParseColor(bright_green) returned error: %v", err)
	}
	if c != ColorBrightGreen {
		t.Errorf("ParseColor(bright_green) = %v, expected ColorBrightGreen", c)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown color names")
	}
}
