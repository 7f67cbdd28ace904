package components

import (
	"math"
	"testing"
)

func TestNormalizedZeroVector(t *testing.T) {
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Errorf("normalized zero vector = %+v", got)
	}
}

func TestNormalizedUnitLength(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 12}
	if l := v.Normalized().Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("length = %v, want 1", l)
	}
}

func TestCrossOrthogonality(t *testing.T) {
	got := Vec3{X: 1}.Cross(Vec3{Y: 1})
	if got != (Vec3{Z: 1}) {
		t.Errorf("x cross y = %+v, want z", got)
	}
}
