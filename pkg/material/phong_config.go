package material

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-phong-bsdf/pkg/core"
)

// RGB is a color as it appears in configuration files: [r, g, b]
type RGB [3]float64

// UnmarshalJSON requires exactly three channels
func (c *RGB) UnmarshalJSON(data []byte) error {
	var channels []float64
	if err := json.Unmarshal(data, &channels); err != nil {
		return err
	}
	if len(channels) != 3 {
		return fmt.Errorf("invalid color %s: expected 3 channels, got %d", data, len(channels))
	}
	copy(c[:], channels)
	return nil
}

func (c RGB) vec() core.Vec3 {
	return core.NewVec3(c[0], c[1], c[2])
}

// PhongConfig holds the construction parameters of a Phong BSDF
type PhongConfig struct {
	Kd RGB     `json:"kd"` // diffuse reflectance
	Ks RGB     `json:"ks"` // specular reflectance
	N  float64 `json:"n"`  // specular exponent
}

// DefaultPhongConfig returns mid-gray diffuse and specular with exponent 20
func DefaultPhongConfig() PhongConfig {
	return PhongConfig{
		Kd: RGB{0.5, 0.5, 0.5},
		Ks: RGB{0.5, 0.5, 0.5},
		N:  20,
	}
}

// Diffuse returns Kd as a color
func (c PhongConfig) Diffuse() core.Vec3 {
	return c.Kd.vec()
}

// Specular returns Ks as a color
func (c PhongConfig) Specular() core.Vec3 {
	return c.Ks.vec()
}

// Validate checks that coefficients are finite and non-negative and the exponent is positive
func (c PhongConfig) Validate() error {
	for i := 0; i < 3; i++ {
		if err := validateCoefficient("kd", i, c.Kd[i]); err != nil {
			return err
		}
		if err := validateCoefficient("ks", i, c.Ks[i]); err != nil {
			return err
		}
	}
	if math.IsNaN(c.N) || math.IsInf(c.N, 0) || c.N <= 0 {
		return fmt.Errorf("invalid exponent n %g: must be positive and finite", c.N)
	}
	return nil
}

// EnergyConserving reports whether kd+ks stays within 1 in every channel
func (c PhongConfig) EnergyConserving() bool {
	return c.Diffuse().Add(c.Specular()).MaxComponent() <= 1.0
}

func validateCoefficient(name string, channel int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("invalid %s[%d] %g: must be finite and non-negative", name, channel, v)
	}
	return nil
}

// LoadPhongConfig decodes a JSON object over the defaults and validates it.
// Missing keys keep their default values. A nil logger discards warnings.
func LoadPhongConfig(r io.Reader, logger core.Logger) (PhongConfig, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	config := DefaultPhongConfig()

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		return PhongConfig{}, fmt.Errorf("failed to decode phong config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return PhongConfig{}, err
	}

	if !config.EnergyConserving() {
		logger.Printf("Warning: phong kd+ks = %s exceeds 1, material is not energy conserving\n",
			formatColor(config.Diffuse().Add(config.Specular())))
	}
	return config, nil
}
