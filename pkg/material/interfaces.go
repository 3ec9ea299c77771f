package material

import (
	"fmt"

	"github.com/df07/go-phong-bsdf/pkg/core"
)

// Measure identifies the measure a directional density is expressed in
type Measure int

const (
	MeasureUnknown Measure = iota
	MeasureSolidAngle
	MeasureDiscrete
)

func (m Measure) String() string {
	switch m {
	case MeasureSolidAngle:
		return "solidAngle"
	case MeasureDiscrete:
		return "discrete"
	}
	return "unknown"
}

// ClassType tags what kind of scene object a component is, for generic tooling
type ClassType int

const (
	classInvalid ClassType = iota
	ClassBSDF
)

func (c ClassType) String() string {
	if c == ClassBSDF {
		return "bsdf"
	}
	return "invalid"
}

// QueryRecord carries the directions of a single BSDF query.
// All directions are in the local shading frame, where the normal is +z.
type QueryRecord struct {
	Wi      core.Vec3 // Incident direction, pointing away from the surface
	Wo      core.Vec3 // Outgoing direction; input for Eval/PDF, output of Sample
	Eta     float64   // Relative index of refraction along the sampled direction
	Measure Measure   // Measure of the queried density
}

// NewSampleQuery creates a record for Sample; Wo and Measure are filled in by the BSDF
func NewSampleQuery(wi core.Vec3) QueryRecord {
	return QueryRecord{Wi: wi, Eta: 1.0, Measure: MeasureUnknown}
}

// NewEvalQuery creates a record for Eval and PDF with a known direction pair
func NewEvalQuery(wi, wo core.Vec3, measure Measure) QueryRecord {
	return QueryRecord{Wi: wi, Wo: wo, Eta: 1.0, Measure: measure}
}

// NewWorldEvalQuery converts a world-space direction pair into the local frame
func NewWorldEvalQuery(frame core.Frame, wi, wo core.Vec3, measure Measure) QueryRecord {
	return NewEvalQuery(frame.ToLocal(wi), frame.ToLocal(wo), measure)
}

// BSDF is a surface scattering model queried in the local shading frame
type BSDF interface {
	// Eval returns the BSDF value for rec.Wi and rec.Wo
	Eval(rec *QueryRecord) core.Vec3

	// PDF returns the solid angle density with which Sample produces rec.Wo
	PDF(rec *QueryRecord) float64

	// Sample draws rec.Wo and returns eval·cos/pdf, so callers do no further division.
	// sampler supplies any extra randomness beyond the 2D sample.
	Sample(rec *QueryRecord, sample core.Vec2, sampler core.Sampler) core.Vec3

	// Albedo returns a representative color for previews
	Albedo() core.Vec3

	ClassType() ClassType
	String() string
}

// isSmoothQuery reports whether rec lies in the domain of a smooth reflective BSDF
func isSmoothQuery(rec *QueryRecord) bool {
	return rec.Measure == MeasureSolidAngle &&
		core.CosTheta(rec.Wi) > 0 &&
		core.CosTheta(rec.Wo) > 0
}

// formatColor renders a color the way String descriptions print it
func formatColor(c core.Vec3) string {
	return fmt.Sprintf("[%g, %g, %g]", c.X, c.Y, c.Z)
}
