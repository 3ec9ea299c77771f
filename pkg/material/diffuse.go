package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-bsdf/pkg/core"
)

// Diffuse represents an ideal Lambertian reflector
type Diffuse struct {
	Reflectance core.Vec3
}

// NewDiffuse creates a new diffuse BSDF
func NewDiffuse(reflectance core.Vec3) *Diffuse {
	return &Diffuse{Reflectance: reflectance}
}

// Eval returns reflectance/π above the surface
func (d *Diffuse) Eval(rec *QueryRecord) core.Vec3 {
	if !isSmoothQuery(rec) {
		return core.Vec3{}
	}
	return d.Reflectance.Divide(math.Pi)
}

// PDF returns cos(θo)/π, the density of cosine-weighted hemisphere sampling
func (d *Diffuse) PDF(rec *QueryRecord) float64 {
	if !isSmoothQuery(rec) {
		return 0.0
	}
	return core.SquareToCosineHemispherePDF(rec.Wo)
}

// Sample draws a cosine-weighted direction. The weight eval·cos(θo)/pdf reduces
// to the reflectance, so sampler is not consulted.
func (d *Diffuse) Sample(rec *QueryRecord, sample core.Vec2, sampler core.Sampler) core.Vec3 {
	if core.CosTheta(rec.Wi) <= 0 {
		return core.Vec3{}
	}

	rec.Wo = core.SquareToCosineHemisphere(sample)
	rec.Measure = MeasureSolidAngle
	rec.Eta = 1.0

	if core.CosTheta(rec.Wo) <= 0 {
		return core.Vec3{}
	}
	return d.Reflectance
}

func (d *Diffuse) Albedo() core.Vec3 {
	return d.Reflectance
}

func (d *Diffuse) ClassType() ClassType {
	return ClassBSDF
}

func (d *Diffuse) String() string {
	return fmt.Sprintf("Diffuse[\n  albedo = %s\n]", formatColor(d.Reflectance))
}
