package hexmap

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     Hex
		expected int
	}{
		{New(0, 0), New(0, 0), 0},
		{New(0, 0), New(1, 0), 1},
		{New(0, 0), New(1, -1), 1},
		{New(0, 0), New(2, -1), 2},
		{New(0, 0), New(-3, 3), 3},
		{New(-2, 1), New(2, -1), 4},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.expected {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
		// Distance is symmetric
		if got := Distance(tt.b, tt.a); got != tt.expected {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.expected)
		}
	}
}

func TestNewKeepsInvariant(t *testing.T) {
	for q := -5; q <= 5; q++ {
		for r := -5; r <= 5; r++ {
			h := New(q, r)
			if h.Q+h.R+h.S != 0 {
				t.Fatalf("New(%d,%d) breaks q+r+s==0: %v", q, r, h)
			}
		}
	}
}

func TestNeighborsCanonicalOrder(t *testing.T) {
	expected := [6]Hex{
		New(1, 0),  // E
		New(1, -1), // NE
		New(0, -1), // NW
		New(-1, 0), // W
		New(-1, 1), // SW
		New(0, 1),  // SE
	}

	got := New(0, 0).Neighbors()
	if got != expected {
		t.Errorf("Neighbors() = %v, want %v", got, expected)
	}

	for _, n := range got {
		if Distance(New(0, 0), n) != 1 {
			t.Errorf("neighbor %v is not at distance 1", n)
		}
	}
}

func TestReflectThrough(t *testing.T) {
	center := New(1, -2)
	h := New(3, 1)

	mirrored := h.ReflectThrough(center)
	if back := mirrored.ReflectThrough(center); back != h {
		t.Errorf("reflection is not an involution: %v -> %v -> %v", h, mirrored, back)
	}
	if Distance(center, mirrored) != Distance(center, h) {
		t.Error("reflection must preserve distance to center")
	}
	if center.ReflectThrough(center) != center {
		t.Error("center must map to itself")
	}
}
