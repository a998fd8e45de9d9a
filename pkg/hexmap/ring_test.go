package hexmap

import "testing"

func TestRingClockwiseRadiusOne(t *testing.T) {
	center := New(0, 0)

	// Walk starts at the NE corner and proceeds clockwise.
	expected := []Hex{
		New(1, -1), // NE
		New(1, 0),  // E
		New(0, 1),  // SE
		New(-1, 1), // SW
		New(-1, 0), // W
		New(0, -1), // NW
	}

	got := Ring(center, 1, DirNE, Clockwise)
	if len(got) != len(expected) {
		t.Fatalf("ring length = %d, want %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("ring[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestRingCounterClockwiseRadiusOne(t *testing.T) {
	center := New(0, 0)

	// Walk starts at the SW corner and proceeds counter-clockwise.
	expected := []Hex{
		New(-1, 1), // SW
		New(0, 1),  // SE
		New(1, 0),  // E
		New(1, -1), // NE
		New(0, -1), // NW
		New(-1, 0), // W
	}

	got := Ring(center, 1, DirSW, CounterClockwise)
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("ring[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestRingProperties(t *testing.T) {
	center := New(2, -1)

	for radius := 1; radius <= 4; radius++ {
		walk := Ring(center, radius, DirNE, Clockwise)

		if len(walk) != 6*radius {
			t.Errorf("radius %d: length = %d, want %d", radius, len(walk), 6*radius)
		}
		if walk[0] != center.Add(DirNE.Vector().Scale(radius)) {
			t.Errorf("radius %d: walk must start at the NE corner", radius)
		}

		seen := make(map[Hex]bool)
		for _, h := range walk {
			if Distance(center, h) != radius {
				t.Errorf("radius %d: %v is at distance %d", radius, h, Distance(center, h))
			}
			if seen[h] {
				t.Errorf("radius %d: %v visited twice", radius, h)
			}
			seen[h] = true
		}
	}
}

func TestRingZeroRadius(t *testing.T) {
	center := New(3, 3)
	got := Ring(center, 0, DirNE, Clockwise)
	if len(got) != 1 || got[0] != center {
		t.Errorf("Ring(center, 0) = %v, want [center]", got)
	}
}

func TestReflectRingIsExactMirror(t *testing.T) {
	center := New(0, 0)
	walk := Ring(center, 2, DirNE, Clockwise)
	mirror := ReflectRing(center, walk)

	if mirror[0] != center.Add(DirSW.Vector().Scale(2)) {
		t.Errorf("mirrored walk must start at the SW corner, got %v", mirror[0])
	}
	for i := range walk {
		if mirror[i] != walk[i].ReflectThrough(center) {
			t.Errorf("mirror[%d] = %v is not the reflection of %v", i, mirror[i], walk[i])
		}
	}
}
