package testutil

import (
	"math"
	"testing"
)

func TestDirectionGridCoversPoles(t *testing.T) {
	grid := DirectionGrid(8, 5)
	if len(grid) != 40 {
		t.Fatalf("len = %d, want 40", len(grid))
	}

	foundZenith := false
	foundNadir := false

	for _, d := range grid {
		if d.Azimuth <= -math.Pi || d.Azimuth > math.Pi {
			t.Fatalf("azimuth %v outside (-pi, pi]", d.Azimuth)
		}

		if d.Elevation < -math.Pi/2 || d.Elevation > math.Pi/2 {
			t.Fatalf("elevation %v outside [-pi/2, pi/2]", d.Elevation)
		}

		if d.Elevation == math.Pi/2 {
			foundZenith = true
		}

		if d.Elevation == -math.Pi/2 {
			foundNadir = true
		}
	}

	if !foundZenith || !foundNadir {
		t.Fatalf("grid misses a pole: zenith=%v nadir=%v", foundZenith, foundNadir)
	}
}

func TestDirectionGridDeterministic(t *testing.T) {
	a := DirectionGrid(6, 4)
	b := DirectionGrid(6, 4)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}

	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}

	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}
