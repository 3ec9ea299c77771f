package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-bsdf/pkg/core"
)

// Phong is a diffuse + glossy reflectance model. The specular lobe is
// (n+2)/(2π)·cos^n(α) with cos(α) = wi·wo, and both the lobe and its
// importance sampling are centered on the local normal.
type Phong struct {
	Kd       core.Vec3 // Diffuse reflectance
	Ks       core.Vec3 // Specular reflectance
	Exponent float64   // Specular exponent n

	// Lobe selection weights, normalized to sum to 1
	diffuseWeight  float64
	specularWeight float64
}

// NewPhong creates a Phong BSDF from a validated configuration
func NewPhong(config PhongConfig) (*Phong, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid phong config: %w", err)
	}
	return newPhong(config.Diffuse(), config.Specular(), config.N), nil
}

// NewDefaultPhong creates a Phong BSDF with the default parameters
func NewDefaultPhong() *Phong {
	config := DefaultPhongConfig()
	return newPhong(config.Diffuse(), config.Specular(), config.N)
}

func newPhong(kd, ks core.Vec3, exponent float64) *Phong {
	p := &Phong{Kd: kd, Ks: ks, Exponent: exponent}

	lumD := kd.Luminance()
	lumS := ks.Luminance()
	if total := lumD + lumS; total > 0 {
		p.diffuseWeight = lumD / total
		p.specularWeight = lumS / total
	} else {
		// Black material: always take the diffuse lobe so PDF stays positive
		p.diffuseWeight = 1.0
	}
	return p
}

// SpecularProbability returns the probability that Sample picks the specular lobe
func (p *Phong) SpecularProbability() float64 {
	return p.specularWeight
}

// Eval evaluates the BRDF for the pair of directions in rec
func (p *Phong) Eval(rec *QueryRecord) core.Vec3 {
	// Smooth BRDF: nothing for the wrong measure or for backside queries
	if !isSmoothQuery(rec) {
		return core.Vec3{}
	}

	diffuse := p.Kd.Divide(math.Pi)
	lobe := (p.Exponent + 2.0) / (2.0 * math.Pi) * p.specularCosine(rec)
	return diffuse.Add(p.Ks.Multiply(lobe))
}

// PDF returns the mixture density of the directions produced by Sample
func (p *Phong) PDF(rec *QueryRecord) float64 {
	if !isSmoothQuery(rec) {
		return 0.0
	}

	diffusePDF := core.CosTheta(rec.Wo) / math.Pi
	specularPDF := (p.Exponent + 1.0) / (2.0 * math.Pi) * p.specularCosine(rec)
	return p.diffuseWeight*diffusePDF + p.specularWeight*specularPDF
}

// Sample draws an outgoing direction into rec.Wo and returns eval/pdf·cos(θi).
// One value is taken from sampler to choose between the two lobes.
func (p *Phong) Sample(rec *QueryRecord, sample core.Vec2, sampler core.Sampler) core.Vec3 {
	if core.CosTheta(rec.Wi) <= 0 {
		return core.Vec3{}
	}

	exponent := 1.0 // cosine-weighted diffuse lobe
	if sampler.Get1D() <= p.specularWeight && p.specularWeight > 0 {
		exponent = p.Exponent
	}

	rec.Wo = core.SquareToCosinePowerHemisphere(sample, exponent)
	rec.Measure = MeasureSolidAngle
	rec.Eta = 1.0

	pdf := p.PDF(rec)
	if pdf <= 0 {
		return core.Vec3{}
	}
	weight := p.Eval(rec).Multiply(core.CosTheta(rec.Wi) / pdf)
	if !weight.IsFinite() {
		return core.Vec3{}
	}
	return weight
}

// specularCosine returns cos^n(α) with α = angle(wi, wo), zero beyond 90 degrees
func (p *Phong) specularCosine(rec *QueryRecord) float64 {
	alpha := rec.Wi.Dot(rec.Wo)
	if alpha <= 0 {
		return 0
	}
	return math.Pow(min(alpha, 1.0), p.Exponent)
}

// Albedo returns the diffuse color
func (p *Phong) Albedo() core.Vec3 {
	return p.Kd
}

func (p *Phong) ClassType() ClassType {
	return ClassBSDF
}

func (p *Phong) String() string {
	return fmt.Sprintf("Phong[\n  Kd = %s\n  Ks = %s\n  n  = %g\n]",
		formatColor(p.Kd), formatColor(p.Ks), p.Exponent)
}
