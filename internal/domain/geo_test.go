package domain

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	p := Coordinate{Lat: 13.4966, Lon: 39.4753}
	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := Coordinate{Lat: 13.4966, Lon: 39.4753}
	b := Coordinate{Lat: 13.5, Lon: 39.48}

	ab := DistanceKm(a, b)
	ba := DistanceKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: a->b=%v b->a=%v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("distance between distinct points = %v, want > 0", ab)
	}
}

func TestDistanceKmKnownPair(t *testing.T) {
	// Paris -> London, roughly 344 km great-circle.
	paris := Coordinate{Lat: 48.8566, Lon: 2.3522}
	london := Coordinate{Lat: 51.5074, Lon: -0.1278}

	d := DistanceKm(paris, london)
	if d < 330 || d > 350 {
		t.Fatalf("Paris-London distance = %v km, want ~344 km", d)
	}
}
