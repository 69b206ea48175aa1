// Package modeldef reads model definition files and applies them to a
// connected model.
package modeldef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Definition is everything a definition file can declare. Entities are
// applied in dependency order, not file order.
type Definition struct {
	Units             string       `json:"units,omitempty" yaml:"units,omitempty" toml:"units,omitempty"`
	CoordinateSystems []CoordSys   `json:"coordinateSystems,omitempty" yaml:"coordinateSystems,omitempty" toml:"coordinateSystems,omitempty"`
	Materials         []Material   `json:"materials,omitempty" yaml:"materials,omitempty" toml:"materials,omitempty"`
	Sections          []Section    `json:"sections,omitempty" yaml:"sections,omitempty" toml:"sections,omitempty"`
	Patterns          []Pattern    `json:"patterns,omitempty" yaml:"patterns,omitempty" toml:"patterns,omitempty"`
	Functions         []Function   `json:"functions,omitempty" yaml:"functions,omitempty" toml:"functions,omitempty"`
	Cases             []Case       `json:"cases,omitempty" yaml:"cases,omitempty" toml:"cases,omitempty"`
	Combos            []Combo      `json:"combos,omitempty" yaml:"combos,omitempty" toml:"combos,omitempty"`
	Groups            []Group      `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
	Constraints       []Constraint `json:"constraints,omitempty" yaml:"constraints,omitempty" toml:"constraints,omitempty"`
	MassSources       []MassSource `json:"massSources,omitempty" yaml:"massSources,omitempty" toml:"massSources,omitempty"`
	Joints            []Joint      `json:"joints,omitempty" yaml:"joints,omitempty" toml:"joints,omitempty"`
	Frames            []Frame      `json:"frames,omitempty" yaml:"frames,omitempty" toml:"frames,omitempty"`
	Modifiers         []Modifier   `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	Releases          []Release    `json:"releases,omitempty" yaml:"releases,omitempty" toml:"releases,omitempty"`
	SectionCuts       []SectionCut `json:"sectionCuts,omitempty" yaml:"sectionCuts,omitempty" toml:"sectionCuts,omitempty"`
}

type CoordSys struct {
	Name string  `json:"name" yaml:"name" toml:"name"`
	X    float64 `json:"x" yaml:"x" toml:"x"`
	Y    float64 `json:"y" yaml:"y" toml:"y"`
	Z    float64 `json:"z" yaml:"z" toml:"z"`
	RZ   float64 `json:"rz" yaml:"rz" toml:"rz"`
	RY   float64 `json:"ry" yaml:"ry" toml:"ry"`
	RX   float64 `json:"rx" yaml:"rx" toml:"rx"`
}

// Material is an isotropic material. For concrete, E may be omitted and
// derived from Fc (MPa).
type Material struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Type   string  `json:"type" yaml:"type" toml:"type"`
	E      float64 `json:"e,omitempty" yaml:"e,omitempty" toml:"e,omitempty"`
	U      float64 `json:"u,omitempty" yaml:"u,omitempty" toml:"u,omitempty"`
	A      float64 `json:"a,omitempty" yaml:"a,omitempty" toml:"a,omitempty"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
	Fc     float64 `json:"fc,omitempty" yaml:"fc,omitempty" toml:"fc,omitempty"`
}

// Section is a frame section: a rectangle (Depth, Width) or, when General
// is set, a general section.
type Section struct {
	Name     string          `json:"name" yaml:"name" toml:"name"`
	Material string          `json:"material" yaml:"material" toml:"material"`
	Depth    float64         `json:"depth,omitempty" yaml:"depth,omitempty" toml:"depth,omitempty"`
	Width    float64         `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	General  *GeneralSection `json:"general,omitempty" yaml:"general,omitempty" toml:"general,omitempty"`
}

type GeneralSection struct {
	T3      float64 `json:"t3" yaml:"t3" toml:"t3"`
	T2      float64 `json:"t2" yaml:"t2" toml:"t2"`
	Area    float64 `json:"area" yaml:"area" toml:"area"`
	As2     float64 `json:"as2" yaml:"as2" toml:"as2"`
	As3     float64 `json:"as3" yaml:"as3" toml:"as3"`
	Torsion float64 `json:"torsion" yaml:"torsion" toml:"torsion"`
	I22     float64 `json:"i22" yaml:"i22" toml:"i22"`
	I33     float64 `json:"i33" yaml:"i33" toml:"i33"`
	S22     float64 `json:"s22" yaml:"s22" toml:"s22"`
	S33     float64 `json:"s33" yaml:"s33" toml:"s33"`
	Z22     float64 `json:"z22" yaml:"z22" toml:"z22"`
	Z33     float64 `json:"z33" yaml:"z33" toml:"z33"`
	R22     float64 `json:"r22" yaml:"r22" toml:"r22"`
	R33     float64 `json:"r33" yaml:"r33" toml:"r33"`
}

type Pattern struct {
	Name       string  `json:"name" yaml:"name" toml:"name"`
	Type       string  `json:"type" yaml:"type" toml:"type"`
	SelfWeight float64 `json:"selfWeight,omitempty" yaml:"selfWeight,omitempty" toml:"selfWeight,omitempty"`
	AddCase    bool    `json:"addCase,omitempty" yaml:"addCase,omitempty" toml:"addCase,omitempty"`
}

// Function is a user function given as [x, value] pairs.
type Function struct {
	Name    string       `json:"name" yaml:"name" toml:"name"`
	Type    string       `json:"type" yaml:"type" toml:"type"`
	Points  [][2]float64 `json:"points" yaml:"points" toml:"points"`
	Damping float64      `json:"damping,omitempty" yaml:"damping,omitempty" toml:"damping,omitempty"`
}

// Case is a load case. Type is LinearStatic, NonlinearStatic, Modal or
// ResponseSpectrum.
type Case struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Type     string         `json:"type" yaml:"type" toml:"type"`
	Loads    []CaseLoad     `json:"loads,omitempty" yaml:"loads,omitempty" toml:"loads,omitempty"`
	Spectrum []SpectrumLoad `json:"spectrum,omitempty" yaml:"spectrum,omitempty" toml:"spectrum,omitempty"`
	MaxModes int            `json:"maxModes,omitempty" yaml:"maxModes,omitempty" toml:"maxModes,omitempty"`
	MinModes int            `json:"minModes,omitempty" yaml:"minModes,omitempty" toml:"minModes,omitempty"`
}

// CaseLoad is a pattern (Kind "Load", the default) or an acceleration
// (Kind "Accel").
type CaseLoad struct {
	Kind  string  `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Name  string  `json:"name" yaml:"name" toml:"name"`
	Scale float64 `json:"scale" yaml:"scale" toml:"scale"`
}

type SpectrumLoad struct {
	Direction string  `json:"direction" yaml:"direction" toml:"direction"`
	Function  string  `json:"function" yaml:"function" toml:"function"`
	Scale     float64 `json:"scale" yaml:"scale" toml:"scale"`
	CSys      string  `json:"csys,omitempty" yaml:"csys,omitempty" toml:"csys,omitempty"`
	Angle     float64 `json:"angle,omitempty" yaml:"angle,omitempty" toml:"angle,omitempty"`
}

type Combo struct {
	Name  string      `json:"name" yaml:"name" toml:"name"`
	Type  string      `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Items []ComboItem `json:"items" yaml:"items" toml:"items"`
}

// ComboItem references a case (Kind "Case", the default) or a combination.
type ComboItem struct {
	Kind  string  `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Name  string  `json:"name" yaml:"name" toml:"name"`
	Scale float64 `json:"scale" yaml:"scale" toml:"scale"`
}

type Group struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Color int    `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// Constraint covers every constraint type. DOF applies to Body, Equal,
// Local and Weld; Axis to Diaphragm, Plate, Rod and Beam.
type Constraint struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Type      string   `json:"type" yaml:"type" toml:"type"`
	DOF       []string `json:"dof,omitempty" yaml:"dof,omitempty" toml:"dof,omitempty"`
	Axis      string   `json:"axis,omitempty" yaml:"axis,omitempty" toml:"axis,omitempty"`
	CSys      string   `json:"csys,omitempty" yaml:"csys,omitempty" toml:"csys,omitempty"`
	Tolerance float64  `json:"tolerance,omitempty" yaml:"tolerance,omitempty" toml:"tolerance,omitempty"`
}

type MassSource struct {
	Name     string     `json:"name" yaml:"name" toml:"name"`
	Elements bool       `json:"elements,omitempty" yaml:"elements,omitempty" toml:"elements,omitempty"`
	Masses   bool       `json:"masses,omitempty" yaml:"masses,omitempty" toml:"masses,omitempty"`
	Loads    []MassLoad `json:"loads,omitempty" yaml:"loads,omitempty" toml:"loads,omitempty"`
	Default  bool       `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
}

type MassLoad struct {
	Pattern string  `json:"pattern" yaml:"pattern" toml:"pattern"`
	Scale   float64 `json:"scale" yaml:"scale" toml:"scale"`
}

// Joint is a point object. Restraint lists degrees of freedom (U1..R3)
// or is one of "fixed" and "pinned".
type Joint struct {
	Name        string      `json:"name" yaml:"name" toml:"name"`
	X           float64     `json:"x" yaml:"x" toml:"x"`
	Y           float64     `json:"y" yaml:"y" toml:"y"`
	Z           float64     `json:"z" yaml:"z" toml:"z"`
	CSys        string      `json:"csys,omitempty" yaml:"csys,omitempty" toml:"csys,omitempty"`
	Restraint   []string    `json:"restraint,omitempty" yaml:"restraint,omitempty" toml:"restraint,omitempty"`
	Constraints []string    `json:"constraints,omitempty" yaml:"constraints,omitempty" toml:"constraints,omitempty"`
	Groups      []string    `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
	Loads       []JointLoad `json:"loads,omitempty" yaml:"loads,omitempty" toml:"loads,omitempty"`
}

// JointLoad is a force in F1, F2, F3, M1, M2, M3 order.
type JointLoad struct {
	Pattern string     `json:"pattern" yaml:"pattern" toml:"pattern"`
	CSys    string     `json:"csys,omitempty" yaml:"csys,omitempty" toml:"csys,omitempty"`
	Values  [6]float64 `json:"values" yaml:"values" toml:"values"`
}

type Frame struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	I       string   `json:"i" yaml:"i" toml:"i"`
	J       string   `json:"j" yaml:"j" toml:"j"`
	Section string   `json:"section" yaml:"section" toml:"section"`
	Groups  []string `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
}

// Modifier is a named set of frame property modifiers; omitted values
// are 1.
type Modifier struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Area    *float64 `json:"area,omitempty" yaml:"area,omitempty" toml:"area,omitempty"`
	As2     *float64 `json:"as2,omitempty" yaml:"as2,omitempty" toml:"as2,omitempty"`
	As3     *float64 `json:"as3,omitempty" yaml:"as3,omitempty" toml:"as3,omitempty"`
	Torsion *float64 `json:"torsion,omitempty" yaml:"torsion,omitempty" toml:"torsion,omitempty"`
	I22     *float64 `json:"i22,omitempty" yaml:"i22,omitempty" toml:"i22,omitempty"`
	I33     *float64 `json:"i33,omitempty" yaml:"i33,omitempty" toml:"i33,omitempty"`
	Mass    *float64 `json:"mass,omitempty" yaml:"mass,omitempty" toml:"mass,omitempty"`
	Weight  *float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
}

// Release is a named set of frame end releases, listed as P, V2, V3, T,
// M2 or M3.
type Release struct {
	Name string   `json:"name" yaml:"name" toml:"name"`
	I    []string `json:"i,omitempty" yaml:"i,omitempty" toml:"i,omitempty"`
	J    []string `json:"j,omitempty" yaml:"j,omitempty" toml:"j,omitempty"`
}

type SectionCut struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Group string `json:"group" yaml:"group" toml:"group"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

// Format is a definition file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("unknown definition format %q", filepath.Ext(path))
}

// Decode reads a definition. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Definition, error) {
	var d Definition
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown definition format %q", f)
	}
	return &d, nil
}

// Encode writes d in format f.
func Encode(w io.Writer, d *Definition, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(d)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	return fmt.Errorf("unknown definition format %q", f)
}

// LoadFile reads a definition file, choosing the format by extension.
func LoadFile(path string) (*Definition, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data), f)
}
