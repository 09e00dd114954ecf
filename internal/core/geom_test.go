package core

import "testing"

func TestPositionAdd(t *testing.T) {
	p := Position{X: 3, Y: 7}

	got := p.Add(1, -2)
	if got != (Position{X: 4, Y: 5}) {
		t.Errorf("Add(1, -2) = %+v, expected {4 5}", got)
	}

	// Original is unchanged
	if p != (Position{X: 3, Y: 7}) {
		t.Errorf("Add mutated receiver: %+v", p)
	}
}

func TestPositionIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Position
		size     int
		expected bool
	}{
		{"center", Position{5, 5}, 10, true},
		{"origin corner", Position{0, 0}, 10, true},
		{"far corner", Position{9, 9}, 10, true},
		{"x one past edge", Position{10, 5}, 10, false},
		{"y one past edge", Position{5, 10}, 10, false},
		{"negative x", Position{-1, 5}, 10, false},
		{"negative y", Position{5, -1}, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.In(tc.size); got != tc.expected {
				t.Errorf("In(%d) = %v, expected %v", tc.size, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
