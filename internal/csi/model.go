// Package csi is a typed facade over the host application's automation
// object model. Every operation forwards to one host call, checks its call
// code and converts host enumerations and flat arrays to Go types.
package csi

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/alexiusacademia/csiapi/internal/seed"
	"github.com/alexiusacademia/csiapi/internal/slogutil"
)

// Names the host reserves.
const (
	GlobalCSys = "GLOBAL"
	AllGroup   = "ALL"
)

func isReserved(name, reserved string) bool {
	return strings.EqualFold(strings.TrimSpace(name), reserved)
}

// lazy builds a sub-wrapper on first use.
type lazy[T any] struct {
	once sync.Once
	v    *T
}

func (l *lazy[T]) get(build func() *T) *T {
	l.once.Do(func() { l.v = build() })
	return l.v
}

// Model is a connected host model.
type Model struct {
	seed       seed.Model
	version    Version
	versionStr string
	log        *slog.Logger

	file        lazy[File]
	analyze     lazy[Analyze]
	coordSys    lazy[CoordinateSystems]
	constraints lazy[Constraints]
	functions   lazy[Functions]
	patterns    lazy[LoadPatterns]
	cases       lazy[LoadCases]
	combos      lazy[LoadCombinations]
	groups      lazy[Groups]
	mass        lazy[MassSource]
	cuts        lazy[SectionCuts]
	joints      lazy[Joints]
	frames      lazy[Frames]
	props       lazy[Properties]
	assigns     lazy[NamedAssigns]
	results     lazy[Results]
}

// Option configures Open.
type Option func(*Model)

// WithLogger sets the logger that records failed host calls at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithVersion skips version detection and uses v.
func WithVersion(v Version) Option {
	return func(m *Model) { m.version = v }
}

// Open wraps a host model and reads its version.
func Open(s seed.Model, opts ...Option) (*Model, error) {
	if s == nil {
		return nil, apierr.Invalid("Open", "nil host model")
	}
	m := &Model{seed: s, log: slogutil.NewDiscardLogger()}
	for _, opt := range opts {
		opt(m)
	}
	if m.version != 0 {
		return m, nil
	}
	str, _, ret := s.GetVersion()
	if err := m.check("GetVersion", "", ret); err != nil {
		return nil, err
	}
	v, err := ParseVersion(str)
	if err != nil {
		return nil, err
	}
	m.version, m.versionStr = v, str
	m.log.Debug("connected", "version", str, "tables", v.String())
	return m, nil
}

// Version returns the object-model release used for enumeration tables.
func (m *Model) Version() Version { return m.version }

// VersionString returns the host's full version string, if detected.
func (m *Model) VersionString() string { return m.versionStr }

// check converts a call code and logs failures.
func (m *Model) check(op, name string, ret int) error {
	if ret == 0 {
		return nil
	}
	m.log.Debug("host call failed", "op", op, "name", name, "code", ret)
	return apierr.CheckName(op, name, ret)
}

// Initialize clears the model and sets its units.
func (m *Model) Initialize(u Units) error {
	const op = "InitializeNewModel"
	code, err := unitSystems.toCode(op, m.version, u)
	if err != nil {
		return err
	}
	return m.check(op, "", m.seed.InitializeNewModel(code))
}

// Units returns the present units.
func (m *Model) Units() (Units, error) {
	return unitSystems.fromCode("GetPresentUnits", m.seed.GetPresentUnits())
}

// SetUnits changes the present units.
func (m *Model) SetUnits(u Units) error {
	const op = "SetPresentUnits"
	code, err := unitSystems.toCode(op, m.version, u)
	if err != nil {
		return err
	}
	return m.check(op, "", m.seed.SetPresentUnits(code))
}

// Locked reports whether the model is locked, which it is after analysis.
func (m *Model) Locked() bool { return m.seed.GetModelIsLocked() }

// SetLocked locks or unlocks the model. Unlocking discards analysis results.
func (m *Model) SetLocked(locked bool) error {
	return m.check("SetModelIsLocked", "", m.seed.SetModelIsLocked(locked))
}

// File returns the file operations of the model.
func (m *Model) File() *File {
	return m.file.get(func() *File { return &File{m: m} })
}

// Analyze returns the analysis controls.
func (m *Model) Analyze() *Analyze {
	return m.analyze.get(func() *Analyze { return &Analyze{m: m} })
}

// CoordinateSystems returns the coordinate system definitions.
func (m *Model) CoordinateSystems() *CoordinateSystems {
	return m.coordSys.get(func() *CoordinateSystems { return &CoordinateSystems{m: m} })
}

// Constraints returns the joint constraint definitions.
func (m *Model) Constraints() *Constraints {
	return m.constraints.get(func() *Constraints { return &Constraints{m: m} })
}

// Functions returns the user-defined function definitions.
func (m *Model) Functions() *Functions {
	return m.functions.get(func() *Functions { return &Functions{m: m} })
}

// LoadPatterns returns the load pattern definitions.
func (m *Model) LoadPatterns() *LoadPatterns {
	return m.patterns.get(func() *LoadPatterns { return &LoadPatterns{m: m} })
}

// LoadCases returns the load case definitions.
func (m *Model) LoadCases() *LoadCases {
	return m.cases.get(func() *LoadCases { return &LoadCases{m: m} })
}

// LoadCombinations returns the load combination definitions.
func (m *Model) LoadCombinations() *LoadCombinations {
	return m.combos.get(func() *LoadCombinations { return &LoadCombinations{m: m} })
}

// Groups returns the group definitions.
func (m *Model) Groups() *Groups {
	return m.groups.get(func() *Groups { return &Groups{m: m} })
}

// MassSource returns the mass source definitions.
func (m *Model) MassSource() *MassSource {
	return m.mass.get(func() *MassSource { return &MassSource{m: m} })
}

// SectionCuts returns the section cut definitions.
func (m *Model) SectionCuts() *SectionCuts {
	return m.cuts.get(func() *SectionCuts { return &SectionCuts{m: m} })
}

// Joints returns the joint objects.
func (m *Model) Joints() *Joints {
	return m.joints.get(func() *Joints { return &Joints{m: m} })
}

// Frames returns the frame objects.
func (m *Model) Frames() *Frames {
	return m.frames.get(func() *Frames { return &Frames{m: m} })
}

// Properties returns the material and frame section properties.
func (m *Model) Properties() *Properties {
	return m.props.get(func() *Properties { return &Properties{m: m} })
}

// NamedAssigns returns the named assignment definitions.
func (m *Model) NamedAssigns() *NamedAssigns {
	return m.assigns.get(func() *NamedAssigns { return &NamedAssigns{m: m} })
}

// Results returns the analysis results and output selection.
func (m *Model) Results() *Results {
	return m.results.get(func() *Results { return &Results{m: m} })
}
