package biometric

import (
	"errors"
	"math"
	"testing"
)

func descriptor(fill float64) []float64 {
	d := make([]float64, 128)
	for i := range d {
		d[i] = fill
	}
	return d
}

func TestDistance(t *testing.T) {
	a := descriptor(0.1)
	d, err := Distance(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}

	b := descriptor(0.1)
	b[0] = 0.4
	d, err = Distance(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-0.3) > 1e-9 {
		t.Errorf("distance = %f, want 0.3", d)
	}
}

func TestDistance_DimensionMismatch(t *testing.T) {
	if _, err := Distance(descriptor(0), make([]float64, 64)); !errors.Is(err, ErrDescriptorDimension) {
		t.Errorf("got %v, want ErrDescriptorDimension", err)
	}
	if _, err := Distance(nil, nil); !errors.Is(err, ErrDescriptorDimension) {
		t.Errorf("empty descriptors: got %v, want ErrDescriptorDimension", err)
	}
}

func TestVerify_Match(t *testing.T) {
	v := NewVerifier(0.55)
	enrolled := descriptor(0.1)
	captured := descriptor(0.1)
	captured[5] = 0.2

	if err := v.Verify(enrolled, captured, true); err != nil {
		t.Errorf("expected match, got %v", err)
	}
}

func TestVerify_OverThreshold(t *testing.T) {
	v := NewVerifier(0.55)
	if err := v.Verify(descriptor(0.1), descriptor(0.3), true); !errors.Is(err, ErrDistanceExceeded) {
		t.Errorf("got %v, want ErrDistanceExceeded", err)
	}
}

func TestVerify_NoFace(t *testing.T) {
	v := NewVerifier(0.55)
	// No-face rejection happens before any distance comparison, so even an
	// identical descriptor is rejected.
	if err := v.Verify(descriptor(0.1), descriptor(0.1), false); !errors.Is(err, ErrNoFaceDetected) {
		t.Errorf("got %v, want ErrNoFaceDetected", err)
	}
}

func TestNewVerifier_DefaultThreshold(t *testing.T) {
	if v := NewVerifier(0); v.Threshold != DefaultThreshold {
		t.Errorf("threshold = %f, want %f", v.Threshold, DefaultThreshold)
	}
}
