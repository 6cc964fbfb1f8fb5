package core

import "testing"

func TestCellAdd(t *testing.T) {
	c := Cell{X: 3, Y: 7}

	got := c.Add(1, -1)
	if got != (Cell{X: 4, Y: 6}) {
		t.Errorf("Add(1, -1) = %v, expected {4 6}", got)
	}

	// Original cell is unchanged
	if c != (Cell{X: 3, Y: 7}) {
		t.Errorf("Add mutated the receiver: %v", c)
	}
}

func TestCellIn(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"inside", Cell{10, 10}, true},
		{"origin", Cell{0, 0}, true},
		{"right edge exclusive", Cell{20, 10}, false},
		{"bottom edge exclusive", Cell{10, 20}, false},
		{"negative column", Cell{-1, 10}, false},
		{"negative row", Cell{10, -1}, false},
		{"last valid cell", Cell{19, 19}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.In(20, 20); got != tc.expected {
				t.Errorf("%v.In(20, 20) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestCellWrap(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected Cell
	}{
		{"inside untouched", Cell{5, 5}, Cell{5, 5}},
		{"past right edge", Cell{20, 5}, Cell{0, 5}},
		{"past bottom edge", Cell{5, 20}, Cell{5, 0}},
		{"before left edge", Cell{-1, 5}, Cell{19, 5}},
		{"before top edge", Cell{5, -1}, Cell{5, 19}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Wrap(20, 20); got != tc.expected {
				t.Errorf("%v.Wrap(20, 20) = %v, expected %v", tc.cell, got, tc.expected)
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
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{8.4, 3.0, 24.0, 8.4},
		{1.5, 3.0, 24.0, 3.0},
		{30.0, 3.0, 24.0, 24.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
