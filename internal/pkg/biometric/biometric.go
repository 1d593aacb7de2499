package biometric

import (
	"errors"
	"math"
)

// DefaultThreshold is a reasonable match threshold for 128-dimensional face
// descriptors.
const DefaultThreshold = 0.55

var (
	ErrNoFaceDetected      = errors.New("no face detected in capture")
	ErrDescriptorDimension = errors.New("descriptor dimensions do not match")
	ErrDistanceExceeded    = errors.New("descriptor distance exceeds match threshold")
)

// Verifier decides whether a captured face descriptor matches an enrolled one.
// It holds no state beyond the threshold and is safe for concurrent use.
type Verifier struct {
	Threshold float64
}

func NewVerifier(threshold float64) *Verifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Verifier{Threshold: threshold}
}

// Distance returns the Euclidean distance between two descriptors.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, ErrDescriptorDimension
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Verify compares a freshly captured descriptor against the enrolled one.
// The capture must contain a detected face before any distance comparison.
func (v *Verifier) Verify(enrolled, captured []float64, faceDetected bool) error {
	if !faceDetected {
		return ErrNoFaceDetected
	}
	d, err := Distance(enrolled, captured)
	if err != nil {
		return err
	}
	if d > v.Threshold {
		return ErrDistanceExceeded
	}
	return nil
}
