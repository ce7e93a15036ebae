package domain

import (
	"math"
	"testing"
)

func TestCalculateDistance_CoincidentPoints(t *testing.T) {
	points := [][2]float64{{0, 0}, {21.0285, 105.8522}, {-33.8688, 151.2093}, {90, 0}, {-90, 180}}
	for _, p := range points {
		if d := CalculateDistance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("%v: expected 0, got %v", p, d)
		}
	}
}

func TestCalculateDistance_KnownValues(t *testing.T) {
	// One degree of latitude along a meridian.
	oneDegree := earthRadiusMeters * math.Pi / 180
	if d := CalculateDistance(0, 0, 1, 0); math.Abs(d-oneDegree) > 0.01 {
		t.Errorf("expected %v, got %v", oneDegree, d)
	}

	ab := CalculateDistance(21.0285, 105.8522, 21.0350, 105.8500)
	ba := CalculateDistance(21.0350, 105.8500, 21.0285, 105.8522)
	if ab != ba {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
	if ab < 700 || ab > 800 {
		t.Errorf("expected roughly 750m, got %v", ab)
	}
}

func TestFindNearest(t *testing.T) {
	if _, ok := FindNearest(Coordinates{}, nil); ok {
		t.Fatal("expected no station for an empty list")
	}

	stations := []Station{
		{ID: "far", Location: Coordinates{Lat: 21.0580, Lng: 105.8190}},
		{ID: "near", Location: Coordinates{Lat: 21.0290, Lng: 105.8520}},
		{ID: "mid", Location: Coordinates{Lat: 21.0350, Lng: 105.8500}},
	}
	got, ok := FindNearest(Coordinates{Lat: 21.0285, Lng: 105.8522}, stations)
	if !ok || got.ID != "near" {
		t.Fatalf("expected near, got %q ok=%v", got.ID, ok)
	}
}
