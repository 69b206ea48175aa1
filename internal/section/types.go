package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// Section is a solid polygonal frame section in its own plane: X to the
// right (local 2) and Y upward (local 3). Vertices may be listed in either
// direction; the polygon must not intersect itself.
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Vertices of the outline, in model length units.
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Properties holds calculated geometric properties. Second moments are
// about centroidal axes.
type Properties struct {
	// Overall dimensions
	Width  float64
	Height float64
	Area   float64

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	Ixx float64 // about the horizontal axis (I33)
	Iyy float64 // about the vertical axis (I22)
	Ixy float64

	Sx float64 // elastic modulus, extreme fibre
	Sy float64
	Zx float64 // plastic modulus
	Zy float64
	Rx float64 // radius of gyration
	Ry float64

	// J is the Saint-Venant torsion constant estimate A^4 / (4π² Ip).
	J float64
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if a, _, _ := areaAndCentroid(s.Vertices); a == 0 {
		return &ValidationError{"section outline encloses no area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, fmt.Errorf("section %s: %w", path, err)
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}
