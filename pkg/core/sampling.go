package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for BSDF evaluation
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SquareToCosineHemisphere maps a uniform sample in [0,1)² to a direction in the
// local upper hemisphere with density cos(θ)/π
func SquareToCosineHemisphere(sample Vec2) Vec3 {
	r := math.Sqrt(sample.X)
	sinPhi, cosPhi := math.Sincos(2.0 * math.Pi * sample.Y)
	return NewVec3(r*cosPhi, r*sinPhi, math.Sqrt(1.0-sample.X))
}

// SquareToCosineHemispherePDF returns the solid angle density of SquareToCosineHemisphere
func SquareToCosineHemispherePDF(v Vec3) float64 {
	cosTheta := CosTheta(v)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// SampleCosineHemisphere generates a cosine-weighted direction in the hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	return NewFrame(normal).ToWorld(SquareToCosineHemisphere(sample))
}

// SquareToCosinePowerHemisphere inverts the CDF of cos^n(θ) over the hemisphere:
// cos(θ) = u^(1/(n+1)), φ = 2πv. An exponent of 1 gives a cosine-weighted hemisphere.
func SquareToCosinePowerHemisphere(sample Vec2, exponent float64) Vec3 {
	cosTheta := math.Pow(sample.X, 1.0/(exponent+1.0))
	sinTheta := math.Sqrt(max(0, 1.0-cosTheta*cosTheta))
	sinPhi, cosPhi := math.Sincos(2.0 * math.Pi * sample.Y)
	return NewVec3(sinTheta*cosPhi, sinTheta*sinPhi, cosTheta)
}

// SquareToCosinePowerHemispherePDF returns (n+1)/(2π)·cos^n(θ) for directions above the horizon
func SquareToCosinePowerHemispherePDF(v Vec3, exponent float64) float64 {
	cosTheta := CosTheta(v)
	if cosTheta <= 0 {
		return 0
	}
	return (exponent + 1.0) / (2.0 * math.Pi) * math.Pow(cosTheta, exponent)
}
