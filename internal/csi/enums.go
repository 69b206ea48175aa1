package csi

import "github.com/alexiusacademia/csiapi/internal/seed"

// PatternType is a load pattern type. Case design types use the same values.
type PatternType int

const (
	PatternDead PatternType = iota + 1
	PatternSuperDead
	PatternLive
	PatternReducibleLive
	PatternQuake
	PatternWind
	PatternSnow
	PatternOther
	PatternMove
	PatternTemperature
	PatternRoofLive
	PatternNotional
	PatternPatternLive
	PatternWave
	PatternPrestress
	PatternHyperstatic
	PatternConstruction
)

var patternTypes = &enumTable[PatternType]{kind: "pattern type", entries: []enumEntry[PatternType]{
	{PatternDead, "Dead", seed.PatternDead, V17},
	{PatternSuperDead, "SuperDead", seed.PatternSuperDead, V17},
	{PatternLive, "Live", seed.PatternLive, V17},
	{PatternReducibleLive, "ReducibleLive", seed.PatternReduceLive, V17},
	{PatternQuake, "Quake", seed.PatternQuake, V17},
	{PatternWind, "Wind", seed.PatternWind, V17},
	{PatternSnow, "Snow", seed.PatternSnow, V17},
	{PatternOther, "Other", seed.PatternOther, V17},
	{PatternMove, "Move", seed.PatternMove, V17},
	{PatternTemperature, "Temperature", seed.PatternTemperature, V17},
	{PatternRoofLive, "RoofLive", seed.PatternRoofLive, V17},
	{PatternNotional, "Notional", seed.PatternNotional, V17},
	{PatternPatternLive, "PatternLive", seed.PatternPatternLive, V17},
	{PatternWave, "Wave", seed.PatternWave, V17},
	{PatternPrestress, "Prestress", seed.PatternPrestress, V19},
	{PatternHyperstatic, "Hyperstatic", seed.PatternHyperstatic, V19},
	{PatternConstruction, "Construction", seed.PatternConstruction, V21},
}}

func (t PatternType) String() string { return patternTypes.name(t) }

// ParsePatternType parses a name such as "Dead" or "quake".
func ParsePatternType(s string) (PatternType, error) { return patternTypes.parse(s) }

// CaseType is a load case type.
type CaseType int

const (
	CaseLinearStatic CaseType = iota + 1
	CaseNonlinearStatic
	CaseModal
	CaseResponseSpectrum
	CaseLinearHistory
	CaseNonlinearHistory
	CaseLinearDynamic
	CaseNonlinearDynamic
	CaseMovingLoad
	CaseBuckling
	CaseSteadyState
	CasePowerSpectralDensity
	CaseLinearStaticMultiStep
	CaseHyperStatic
	CaseExternalResults
	CaseStagedConstruction
)

var caseTypes = &enumTable[CaseType]{kind: "case type", entries: []enumEntry[CaseType]{
	{CaseLinearStatic, "LinearStatic", seed.CaseLinearStatic, V17},
	{CaseNonlinearStatic, "NonlinearStatic", seed.CaseNonlinearStatic, V17},
	{CaseModal, "Modal", seed.CaseModal, V17},
	{CaseResponseSpectrum, "ResponseSpectrum", seed.CaseResponseSpectrum, V17},
	{CaseLinearHistory, "LinearHistory", seed.CaseLinearHistory, V17},
	{CaseNonlinearHistory, "NonlinearHistory", seed.CaseNonlinearHistory, V17},
	{CaseLinearDynamic, "LinearDynamic", seed.CaseLinearDynamic, V17},
	{CaseNonlinearDynamic, "NonlinearDynamic", seed.CaseNonlinearDynamic, V17},
	{CaseMovingLoad, "MovingLoad", seed.CaseMovingLoad, V17},
	{CaseBuckling, "Buckling", seed.CaseBuckling, V17},
	{CaseSteadyState, "SteadyState", seed.CaseSteadyState, V17},
	{CasePowerSpectralDensity, "PowerSpectralDensity", seed.CasePowerSpectralDensity, V17},
	{CaseLinearStaticMultiStep, "LinearStaticMultiStep", seed.CaseLinearStaticMultiStep, V17},
	{CaseHyperStatic, "HyperStatic", seed.CaseHyperStatic, V19},
	{CaseExternalResults, "ExternalResults", seed.CaseExternalResults, V20},
	{CaseStagedConstruction, "StagedConstruction", seed.CaseStagedConstruction, V21},
}}

func (t CaseType) String() string { return caseTypes.name(t) }

func ParseCaseType(s string) (CaseType, error) { return caseTypes.parse(s) }

// CaseSubType refines a case type. Only modal cases report one.
type CaseSubType int

const (
	CaseSubTypeNone CaseSubType = iota
	CaseSubTypeEigen
	CaseSubTypeRitz
)

var modalSubTypes = &enumTable[CaseSubType]{kind: "modal case subtype", entries: []enumEntry[CaseSubType]{
	{CaseSubTypeEigen, "Eigen", seed.ModalSubEigen, V17},
	{CaseSubTypeRitz, "Ritz", seed.ModalSubRitz, V17},
}}

func (t CaseSubType) String() string {
	if t == CaseSubTypeNone {
		return "None"
	}
	return modalSubTypes.name(t)
}

// DesignTypeOption says whether a case's design type is derived by the host
// or set by the user.
type DesignTypeOption int

const (
	DesignProgramDetermined DesignTypeOption = iota + 1
	DesignUserSpecified
)

var designTypeOptions = &enumTable[DesignTypeOption]{kind: "design type option", entries: []enumEntry[DesignTypeOption]{
	{DesignProgramDetermined, "ProgramDetermined", 0, V17},
	{DesignUserSpecified, "UserSpecified", 1, V17},
}}

func (o DesignTypeOption) String() string { return designTypeOptions.name(o) }

// ComboType is a load combination type.
type ComboType int

const (
	ComboLinearAdditive ComboType = iota + 1
	ComboEnvelope
	ComboAbsoluteAdditive
	ComboSRSS
	ComboRangeAdditive
)

var comboTypes = &enumTable[ComboType]{kind: "combination type", entries: []enumEntry[ComboType]{
	{ComboLinearAdditive, "LinearAdditive", seed.ComboLinearAdditive, V17},
	{ComboEnvelope, "Envelope", seed.ComboEnvelope, V17},
	{ComboAbsoluteAdditive, "AbsoluteAdditive", seed.ComboAbsoluteAdditive, V17},
	{ComboSRSS, "SRSS", seed.ComboSRSS, V17},
	{ComboRangeAdditive, "RangeAdditive", seed.ComboRangeAdditive, V17},
}}

func (t ComboType) String() string { return comboTypes.name(t) }

func ParseComboType(s string) (ComboType, error) { return comboTypes.parse(s) }

// ComboItemType says whether a combination item is a case or a combination.
type ComboItemType int

const (
	ComboItemCase ComboItemType = iota + 1
	ComboItemCombo
)

var comboItemTypes = &enumTable[ComboItemType]{kind: "combination item type", entries: []enumEntry[ComboItemType]{
	{ComboItemCase, "Case", seed.CNameLoadCase, V17},
	{ComboItemCombo, "Combo", seed.CNameLoadCombo, V17},
}}

func (t ComboItemType) String() string { return comboItemTypes.name(t) }

func ParseComboItemType(s string) (ComboItemType, error) { return comboItemTypes.parse(s) }

// ConstraintType is a joint constraint kind.
type ConstraintType int

const (
	ConstraintBody ConstraintType = iota + 1
	ConstraintDiaphragm
	ConstraintPlate
	ConstraintRod
	ConstraintBeam
	ConstraintEqual
	ConstraintLocal
	ConstraintWeld
	ConstraintLine
)

var constraintTypes = &enumTable[ConstraintType]{kind: "constraint type", entries: []enumEntry[ConstraintType]{
	{ConstraintBody, "Body", seed.ConstraintBody, V17},
	{ConstraintDiaphragm, "Diaphragm", seed.ConstraintDiaphragm, V17},
	{ConstraintPlate, "Plate", seed.ConstraintPlate, V17},
	{ConstraintRod, "Rod", seed.ConstraintRod, V17},
	{ConstraintBeam, "Beam", seed.ConstraintBeam, V17},
	{ConstraintEqual, "Equal", seed.ConstraintEqual, V17},
	{ConstraintLocal, "Local", seed.ConstraintLocal, V17},
	{ConstraintWeld, "Weld", seed.ConstraintWeld, V17},
	{ConstraintLine, "Line", seed.ConstraintLine, V17},
}}

func (t ConstraintType) String() string { return constraintTypes.name(t) }

func ParseConstraintType(s string) (ConstraintType, error) { return constraintTypes.parse(s) }

// ConstraintAxis is the normal axis of a diaphragm, plate, rod or beam
// constraint.
type ConstraintAxis int

const (
	AxisX ConstraintAxis = iota + 1
	AxisY
	AxisZ
	AxisAuto
)

var constraintAxes = &enumTable[ConstraintAxis]{kind: "constraint axis", entries: []enumEntry[ConstraintAxis]{
	{AxisX, "X", seed.AxisX, V17},
	{AxisY, "Y", seed.AxisY, V17},
	{AxisZ, "Z", seed.AxisZ, V17},
	{AxisAuto, "Auto", seed.AxisAuto, V17},
}}

func (a ConstraintAxis) String() string { return constraintAxes.name(a) }

func ParseConstraintAxis(s string) (ConstraintAxis, error) { return constraintAxes.parse(s) }

// FunctionType is a function kind.
type FunctionType int

const (
	FunctionResponseSpectrum FunctionType = iota + 1
	FunctionTimeHistory
	FunctionPowerSpectralDensity
	FunctionSteadyState
)

var functionTypes = &enumTable[FunctionType]{kind: "function type", entries: []enumEntry[FunctionType]{
	{FunctionResponseSpectrum, "ResponseSpectrum", seed.FuncResponseSpectrum, V17},
	{FunctionTimeHistory, "TimeHistory", seed.FuncTimeHistory, V17},
	{FunctionPowerSpectralDensity, "PowerSpectralDensity", seed.FuncPowerSpectralDensity, V17},
	{FunctionSteadyState, "SteadyState", seed.FuncSteadyState, V17},
}}

func (t FunctionType) String() string { return functionTypes.name(t) }

func ParseFunctionType(s string) (FunctionType, error) { return functionTypes.parse(s) }

// MaterialType is a material property type.
type MaterialType int

const (
	MaterialSteel MaterialType = iota + 1
	MaterialConcrete
	MaterialNoDesign
	MaterialAluminum
	MaterialColdFormed
	MaterialRebar
	MaterialTendon
	MaterialMasonry
)

var materialTypes = &enumTable[MaterialType]{kind: "material type", entries: []enumEntry[MaterialType]{
	{MaterialSteel, "Steel", seed.MatSteel, V17},
	{MaterialConcrete, "Concrete", seed.MatConcrete, V17},
	{MaterialNoDesign, "NoDesign", seed.MatNoDesign, V17},
	{MaterialAluminum, "Aluminum", seed.MatAluminum, V17},
	{MaterialColdFormed, "ColdFormed", seed.MatColdFormed, V17},
	{MaterialRebar, "Rebar", seed.MatRebar, V17},
	{MaterialTendon, "Tendon", seed.MatTendon, V17},
	{MaterialMasonry, "Masonry", seed.MatMasonry, V20},
}}

func (t MaterialType) String() string { return materialTypes.name(t) }

func ParseMaterialType(s string) (MaterialType, error) { return materialTypes.parse(s) }

// FrameSectionType is a frame section property type.
type FrameSectionType int

const (
	SectionI FrameSectionType = iota + 1
	SectionChannel
	SectionT
	SectionAngle
	SectionDoubleAngle
	SectionBox
	SectionPipe
	SectionRectangular
	SectionCircle
	SectionGeneral
	SectionDoubleChannel
	SectionAuto
	SectionDesigner
	SectionVariable
)

var frameSectionTypes = &enumTable[FrameSectionType]{kind: "frame section type", entries: []enumEntry[FrameSectionType]{
	{SectionI, "I", seed.FrameI, V17},
	{SectionChannel, "Channel", seed.FrameChannel, V17},
	{SectionT, "T", seed.FrameT, V17},
	{SectionAngle, "Angle", seed.FrameAngle, V17},
	{SectionDoubleAngle, "DoubleAngle", seed.FrameDblAngle, V17},
	{SectionBox, "Box", seed.FrameBox, V17},
	{SectionPipe, "Pipe", seed.FramePipe, V17},
	{SectionRectangular, "Rectangular", seed.FrameRectangular, V17},
	{SectionCircle, "Circle", seed.FrameCircle, V17},
	{SectionGeneral, "General", seed.FrameGeneral, V17},
	{SectionDoubleChannel, "DoubleChannel", seed.FrameDbChannel, V17},
	{SectionAuto, "Auto", seed.FrameAuto, V17},
	{SectionDesigner, "SectionDesigner", seed.FrameSD, V17},
	{SectionVariable, "Variable", seed.FrameVariable, V17},
}}

func (t FrameSectionType) String() string { return frameSectionTypes.name(t) }

// ItemType selects what an assignment applies to.
type ItemType int

const (
	ItemObject ItemType = iota + 1
	ItemGroup
	ItemSelected
)

var itemTypes = &enumTable[ItemType]{kind: "item type", entries: []enumEntry[ItemType]{
	{ItemObject, "Object", seed.ItemObjects, V17},
	{ItemGroup, "Group", seed.ItemGroup, V17},
	{ItemSelected, "Selected", seed.ItemSelectedObjects, V17},
}}

func (t ItemType) String() string { return itemTypes.name(t) }

// ItemTypeElm selects the rows of a results query.
type ItemTypeElm int

const (
	ElmObject ItemTypeElm = iota + 1
	ElmElement
	ElmGroup
	ElmSelection
)

var itemTypeElms = &enumTable[ItemTypeElm]{kind: "result item type", entries: []enumEntry[ItemTypeElm]{
	{ElmObject, "Object", seed.ElmObject, V17},
	{ElmElement, "Element", seed.ElmElement, V17},
	{ElmGroup, "Group", seed.ElmGroup, V17},
	{ElmSelection, "Selection", seed.ElmSelection, V17},
}}

func (t ItemTypeElm) String() string { return itemTypeElms.name(t) }

func ParseItemTypeElm(s string) (ItemTypeElm, error) { return itemTypeElms.parse(s) }

// ObjectType is the kind of a group member.
type ObjectType int

const (
	ObjectPoint ObjectType = iota + 1
	ObjectFrame
	ObjectCable
	ObjectTendon
	ObjectArea
	ObjectSolid
	ObjectLink
)

var objectTypes = &enumTable[ObjectType]{kind: "object type", entries: []enumEntry[ObjectType]{
	{ObjectPoint, "Point", seed.ObjPoint, V17},
	{ObjectFrame, "Frame", seed.ObjFrame, V17},
	{ObjectCable, "Cable", seed.ObjCable, V17},
	{ObjectTendon, "Tendon", seed.ObjTendon, V17},
	{ObjectArea, "Area", seed.ObjArea, V17},
	{ObjectSolid, "Solid", seed.ObjSolid, V17},
	{ObjectLink, "Link", seed.ObjLink, V17},
}}

func (t ObjectType) String() string { return objectTypes.name(t) }

// Units is a force, length and temperature unit system.
type Units int

const (
	UnitsLbInF Units = iota + 1
	UnitsLbFtF
	UnitsKipInF
	UnitsKipFtF
	UnitsKNmmC
	UnitsKNmC
	UnitsKgfmmC
	UnitsKgfmC
	UnitsNmmC
	UnitsNmC
	UnitsTonmmC
	UnitsTonmC
	UnitsKNcmC
	UnitsKgfcmC
	UnitsNcmC
	UnitsToncmC
)

var unitSystems = &enumTable[Units]{kind: "units", entries: []enumEntry[Units]{
	{UnitsLbInF, "lb_in_F", seed.UnitsLbInF, V17},
	{UnitsLbFtF, "lb_ft_F", seed.UnitsLbFtF, V17},
	{UnitsKipInF, "kip_in_F", seed.UnitsKipInF, V17},
	{UnitsKipFtF, "kip_ft_F", seed.UnitsKipFtF, V17},
	{UnitsKNmmC, "kN_mm_C", seed.UnitsKNmmC, V17},
	{UnitsKNmC, "kN_m_C", seed.UnitsKNmC, V17},
	{UnitsKgfmmC, "kgf_mm_C", seed.UnitsKgfmmC, V17},
	{UnitsKgfmC, "kgf_m_C", seed.UnitsKgfmC, V17},
	{UnitsNmmC, "N_mm_C", seed.UnitsNmmC, V17},
	{UnitsNmC, "N_m_C", seed.UnitsNmC, V17},
	{UnitsTonmmC, "Ton_mm_C", seed.UnitsTonmmC, V17},
	{UnitsTonmC, "Ton_m_C", seed.UnitsTonmC, V17},
	{UnitsKNcmC, "kN_cm_C", seed.UnitsKNcmC, V17},
	{UnitsKgfcmC, "kgf_cm_C", seed.UnitsKgfcmC, V17},
	{UnitsNcmC, "N_cm_C", seed.UnitsNcmC, V17},
	{UnitsToncmC, "Ton_cm_C", seed.UnitsToncmC, V17},
}}

func (u Units) String() string { return unitSystems.name(u) }

// ParseUnits parses a name such as "kN_m_C".
func ParseUnits(s string) (Units, error) { return unitSystems.parse(s) }

// CaseStatus is the analysis state of a load case.
type CaseStatus int

const (
	StatusNotRun CaseStatus = iota + 1
	StatusCouldNotStart
	StatusNotFinished
	StatusFinished
)

var caseStatuses = &enumTable[CaseStatus]{kind: "case status", entries: []enumEntry[CaseStatus]{
	{StatusNotRun, "NotRun", seed.StatusNotRun, V17},
	{StatusCouldNotStart, "CouldNotStart", seed.StatusCouldNotStart, V17},
	{StatusNotFinished, "NotFinished", seed.StatusNotFinished, V17},
	{StatusFinished, "Finished", seed.StatusFinished, V17},
}}

func (s CaseStatus) String() string { return caseStatuses.name(s) }

// CutResultType says whether a section cut reports analysis or design
// forces.
type CutResultType int

const (
	CutAnalysis CutResultType = iota + 1
	CutDesign
)

var cutResultTypes = &enumTable[CutResultType]{kind: "section cut result type", entries: []enumEntry[CutResultType]{
	{CutAnalysis, "Analysis", seed.CutAnalysis, V17},
	{CutDesign, "Design", seed.CutDesign, V17},
}}

func (t CutResultType) String() string { return cutResultTypes.name(t) }

func ParseCutResultType(s string) (CutResultType, error) { return cutResultTypes.parse(s) }
