package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSquareToCosineHemisphere_UnitAndAboveHorizon(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 10000; i++ {
		v := SquareToCosineHemisphere(sampler.Get2D())
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("direction not unit: %v (length %g)", v, v.Length())
		}
		if v.Z < 0 {
			t.Fatalf("direction below hemisphere: %v", v)
		}
	}
}

func TestSquareToCosineHemisphere_PolarHistogram(t *testing.T) {
	sampler := NewSeededSampler(7)
	const numSamples = 200000
	const numBins = 10

	var counts [numBins]int
	for i := 0; i < numSamples; i++ {
		v := SquareToCosineHemisphere(sampler.Get2D())
		theta := math.Acos(min(1, v.Z))
		bin := int(theta / (math.Pi / 2) * numBins)
		if bin >= numBins {
			bin = numBins - 1
		}
		counts[bin]++
	}

	// Integrating cos(θ)/π over [θa, θb] and all φ gives sin²θb - sin²θa
	for bin := 0; bin < numBins; bin++ {
		thetaA := float64(bin) / numBins * math.Pi / 2
		thetaB := float64(bin+1) / numBins * math.Pi / 2
		sa, sb := math.Sin(thetaA), math.Sin(thetaB)
		expected := (sb*sb - sa*sa) * numSamples

		if diff := math.Abs(float64(counts[bin]) - expected); diff > 5*math.Sqrt(expected) {
			t.Errorf("bin %d: got %d samples, expected %.0f", bin, counts[bin], expected)
		}
	}
}

func TestSquareToCosineHemispherePDF(t *testing.T) {
	sampler := NewSeededSampler(3)

	for i := 0; i < 1000; i++ {
		v := SquareToCosineHemisphere(sampler.Get2D())
		got := SquareToCosineHemispherePDF(v)
		want := v.Z / math.Pi
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("pdf(%v) = %g, want %g", v, got, want)
		}
		if power := SquareToCosinePowerHemispherePDF(v, 1); math.Abs(power-want) > 1e-12 {
			t.Fatalf("power pdf with n=1 = %g, want %g", power, want)
		}
	}

	if pdf := SquareToCosineHemispherePDF(NewVec3(0, 0, -1)); pdf != 0 {
		t.Errorf("pdf below horizon = %g, want 0", pdf)
	}
}

func TestSquareToCosinePowerHemisphere_MeanCosine(t *testing.T) {
	tests := []struct {
		name     string
		exponent float64
	}{
		{"cosine", 1},
		{"phong lobe", 20},
		{"sharp lobe", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := NewSeededSampler(11)
			const numSamples = 100000

			sum := 0.0
			for i := 0; i < numSamples; i++ {
				v := SquareToCosinePowerHemisphere(sampler.Get2D(), tt.exponent)
				if math.Abs(v.Length()-1) > 1e-9 || v.Z < 0 {
					t.Fatalf("invalid direction %v", v)
				}
				sum += v.Z
			}

			// E[cos θ] under (n+1)/(2π)·cos^n θ is (n+1)/(n+2)
			want := (tt.exponent + 1) / (tt.exponent + 2)
			if mean := sum / numSamples; math.Abs(mean-want) > 0.005 {
				t.Errorf("mean cos = %g, want %g", mean, want)
			}
		})
	}
}

func TestSquareToCosinePowerHemispherePDF_Integrates(t *testing.T) {
	for _, exponent := range []float64{1, 20, 100} {
		const steps = 4000
		dTheta := math.Pi / 2 / steps

		integral := 0.0
		for i := 0; i < steps; i++ {
			theta := (float64(i) + 0.5) * dTheta
			v := NewVec3(math.Sin(theta), 0, math.Cos(theta))
			integral += SquareToCosinePowerHemispherePDF(v, exponent) * math.Sin(theta) * dTheta * 2 * math.Pi
		}

		if math.Abs(integral-1) > 1e-4 {
			t.Errorf("n=%g: pdf integrates to %g, want 1", exponent, integral)
		}
	}
}

func TestSampleCosineHemisphere_WorldSpace(t *testing.T) {
	sampler := NewSeededSampler(5)
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0, -1, 0),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		sum := 0.0
		const numSamples = 20000
		for i := 0; i < numSamples; i++ {
			dir := SampleCosineHemisphere(normal, sampler.Get2D())
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("normal %v: direction not unit: %v", normal, dir)
			}
			cosTheta := dir.Dot(normal)
			if cosTheta < -1e-12 {
				t.Fatalf("normal %v: direction %v below hemisphere", normal, dir)
			}
			sum += cosTheta
		}

		// E[cos θ] for cosine-weighted sampling is 2/3
		if mean := sum / numSamples; math.Abs(mean-2.0/3.0) > 0.01 {
			t.Errorf("normal %v: mean cos = %g, want 2/3", normal, mean)
		}
	}
}
