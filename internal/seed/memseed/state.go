package memseed

// State is the complete content of an offline model. It is exported so
// that stores can serialize it.
type State struct {
	Version  string `json:"version"`
	Units    int    `json:"units"`
	Locked   bool   `json:"locked"`
	Filename string `json:"filename"`

	CoordSys    Table[CoordSysDef]   `json:"coordSys"`
	Constraints Table[ConstraintDef] `json:"constraints"`
	Functions   Table[FunctionDef]   `json:"functions"`
	Patterns    Table[PatternDef]    `json:"patterns"`
	Cases       Table[CaseDef]       `json:"cases"`
	Combos      Table[ComboDef]      `json:"combos"`
	Groups      Table[GroupDef]      `json:"groups"`
	MassSources Table[MassSourceDef] `json:"massSources"`
	LegacyMass  MassSourceDef        `json:"legacyMass"`
	SectionCuts Table[SectionCutDef] `json:"sectionCuts"`
	Points      Table[PointDef]      `json:"points"`
	Frames      Table[FrameDef]      `json:"frames"`
	Materials   Table[MaterialDef]   `json:"materials"`
	FrameProps  Table[FramePropDef]  `json:"frameProps"`
	Modifiers   Table[ModifierDef]   `json:"modifiers"`
	Releases    Table[ReleaseDef]    `json:"releases"`

	// Output holds the cases and combos selected for results output.
	Output map[string]bool `json:"output"`
	// RunFlags holds the cases flagged to run; unlisted cases run.
	RunFlags map[string]bool `json:"runFlags"`
	// Status holds analysis status codes per case after RunAnalysis.
	Status map[string]int `json:"status"`

	Results ResultTables `json:"results"`
}

// CoordSysDef is a coordinate system origin and rotation (degrees).
type CoordSysDef struct {
	X, Y, Z    float64
	RZ, RY, RX float64
}

// ConstraintDef covers every host constraint kind; unused fields are zero.
type ConstraintDef struct {
	Type      int
	Value     []bool
	Axis      int
	CSys      string
	Tolerance float64
}

// FunctionDef is a user-defined function.
type FunctionDef struct {
	Type      int
	AddType   int
	X         []float64
	Value     []float64
	DampRatio float64
}

// PatternDef is a load pattern.
type PatternDef struct {
	Type       int
	SelfWeight float64
	AutoCode   string
}

// CaseLoad is one load applied by a static case.
type CaseLoad struct {
	Type  string // "Load" or "Accel"
	Name  string
	Scale float64
}

// SpectrumLoad is one response spectrum case load.
type SpectrumLoad struct {
	Direction string
	Function  string
	Scale     float64
	CSys      string
	Angle     float64
}

// CaseDef is a load case.
type CaseDef struct {
	Type             int
	SubType          int
	DesignType       int
	DesignTypeOption int
	Loads            []CaseLoad
	SpectrumLoads    []SpectrumLoad
	MaxModes         int
	MinModes         int
}

// ComboItem is a case or combo referenced by a combination.
type ComboItem struct {
	CType int
	Name  string
	Scale float64
}

// ComboDef is a load combination.
type ComboDef struct {
	Type  int
	Items []ComboItem
}

// GroupDef is a group and its option flags.
type GroupDef struct {
	Color int
	Flags []bool
}

// MassSourceDef is a mass source.
type MassSourceDef struct {
	FromElements bool
	FromMasses   bool
	FromLoads    bool
	IsDefault    bool
	LoadPatterns []string
	Scales       []float64
}

// SectionCutDef is a group based section cut.
type SectionCutDef struct {
	Group      string
	ResultType int
}

// JointLoad is a force assignment at a point.
type JointLoad struct {
	Pattern string
	CSys    string
	Value   []float64
}

// PointDef is a point object in global coordinates.
type PointDef struct {
	X, Y, Z     float64
	Restraint   []bool
	Constraints []string
	GUID        string
	Groups      []string
	Loads       []JointLoad
}

// FrameDef is a frame object.
type FrameDef struct {
	Point1 string
	Point2 string
	Prop   string
	Groups []string
}

// MaterialDef is a material property.
type MaterialDef struct {
	Type   int
	Color  int
	Notes  string
	GUID   string
	E      float64
	U      float64
	A      float64
	Weight float64
	Mass   float64
}

// FramePropDef is a frame section property.
type FramePropDef struct {
	Type     int
	Material string
	Values   []float64 // rectangle: t3, t2; general: see seed.PropFrame
}

// ModifierDef is a named set of frame property modifiers.
type ModifierDef struct {
	Value []float64
}

// ReleaseDef is a named set of frame end releases.
type ReleaseDef struct {
	II, JJ     []bool
	StartValue []float64
	EndValue   []float64
}
