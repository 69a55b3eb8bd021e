package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		dx, dy   int
		expected Point
	}{
		{"move right", Point{3, 4}, 1, 0, Point{4, 4}},
		{"move down", Point{3, 4}, 0, -1, Point{3, 3}},
		{"diagonal", Point{0, 0}, -2, 5, Point{-2, 5}},
		{"no move", Point{7, 7}, 0, 0, Point{7, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Add(tc.dx, tc.dy)
			if result != tc.expected {
				t.Errorf("Add(%d, %d) = %v, expected %v", tc.dx, tc.dy, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 {
		t.Errorf("Min(3, 7) = %d, expected 3", Min(3, 7))
	}
	if Min(7, 3) != 3 {
		t.Errorf("Min(7, 3) = %d, expected 3", Min(7, 3))
	}
	if Max(3, 7) != 7 {
		t.Errorf("Max(3, 7) = %d, expected 7", Max(3, 7))
	}
	if Max(7, 3) != 7 {
		t.Errorf("Max(7, 3) = %d, expected 7", Max(7, 3))
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 {
		t.Errorf("Abs(-5) = %d, expected 5", Abs(-5))
	}
	if Abs(5) != 5 {
		t.Errorf("Abs(5) = %d, expected 5", Abs(5))
	}
	if Abs(0) != 0 {
		t.Errorf("Abs(0) = %d, expected 0", Abs(0))
	}
}
