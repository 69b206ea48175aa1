package seed

// Host enumeration codes. Values are those of the host object model;
// enumerations only ever gain members between releases.

// eLoadPatternType
const (
	PatternDead         = 1
	PatternSuperDead    = 2
	PatternLive         = 3
	PatternReduceLive   = 4
	PatternQuake        = 5
	PatternWind         = 6
	PatternSnow         = 7
	PatternOther        = 8
	PatternMove         = 9
	PatternTemperature  = 10
	PatternRoofLive     = 11
	PatternNotional     = 12
	PatternPatternLive  = 13
	PatternWave         = 14
	PatternPrestress    = 34
	PatternHyperstatic  = 35
	PatternConstruction = 39
)

// eLoadCaseType
const (
	CaseLinearStatic          = 1
	CaseNonlinearStatic       = 2
	CaseModal                 = 3
	CaseResponseSpectrum      = 4
	CaseLinearHistory         = 5
	CaseNonlinearHistory      = 6
	CaseLinearDynamic         = 7
	CaseNonlinearDynamic      = 8
	CaseMovingLoad            = 9
	CaseBuckling              = 10
	CaseSteadyState           = 11
	CasePowerSpectralDensity  = 12
	CaseLinearStaticMultiStep = 13
	CaseHyperStatic           = 14
	CaseExternalResults       = 15
	CaseStagedConstruction    = 16
)

// Modal case subtypes
const (
	ModalSubEigen = 1
	ModalSubRitz  = 2
)

// eCNameType
const (
	CNameLoadCase  = 0
	CNameLoadCombo = 1
)

// eComboType
const (
	ComboLinearAdditive   = 0
	ComboEnvelope         = 1
	ComboAbsoluteAdditive = 2
	ComboSRSS             = 3
	ComboRangeAdditive    = 4
)

// eConstraintType
const (
	ConstraintBody      = 1
	ConstraintDiaphragm = 2
	ConstraintPlate     = 3
	ConstraintRod       = 4
	ConstraintBeam      = 5
	ConstraintEqual     = 6
	ConstraintLocal     = 7
	ConstraintWeld      = 8
	ConstraintLine      = 13
)

// eConstraintAxis
const (
	AxisX    = 1
	AxisY    = 2
	AxisZ    = 3
	AxisAuto = 4
)

// eFunctionType
const (
	FuncResponseSpectrum     = 1
	FuncTimeHistory          = 2
	FuncPowerSpectralDensity = 3
	FuncSteadyState          = 4
)

// Function definition source (AddType) for user-entered values.
const FuncAddUser = 1

// eMatType
const (
	MatSteel      = 1
	MatConcrete   = 2
	MatNoDesign   = 3
	MatAluminum   = 4
	MatColdFormed = 5
	MatRebar      = 6
	MatTendon     = 7
	MatMasonry    = 8
)

// eFramePropType
const (
	FrameI           = 1
	FrameChannel     = 2
	FrameT           = 3
	FrameAngle       = 4
	FrameDblAngle    = 5
	FrameBox         = 6
	FramePipe        = 7
	FrameRectangular = 8
	FrameCircle      = 9
	FrameGeneral     = 10
	FrameDbChannel   = 11
	FrameAuto        = 12
	FrameSD          = 13
	FrameVariable    = 14
)

// eItemType
const (
	ItemObjects         = 0
	ItemGroup           = 1
	ItemSelectedObjects = 2
)

// eItemTypeElm
const (
	ElmObject    = 0
	ElmElement   = 1
	ElmGroup     = 2
	ElmSelection = 3
)

// Object type codes used in group assignments.
const (
	ObjPoint  = 1
	ObjFrame  = 2
	ObjCable  = 3
	ObjTendon = 4
	ObjArea   = 5
	ObjSolid  = 6
	ObjLink   = 7
)

// eUnits
const (
	UnitsLbInF  = 1
	UnitsLbFtF  = 2
	UnitsKipInF = 3
	UnitsKipFtF = 4
	UnitsKNmmC  = 5
	UnitsKNmC   = 6
	UnitsKgfmmC = 7
	UnitsKgfmC  = 8
	UnitsNmmC   = 9
	UnitsNmC    = 10
	UnitsTonmmC = 11
	UnitsTonmC  = 12
	UnitsKNcmC  = 13
	UnitsKgfcmC = 14
	UnitsNcmC   = 15
	UnitsToncmC = 16
)

// Analysis case status
const (
	StatusNotRun        = 1
	StatusCouldNotStart = 2
	StatusNotFinished   = 3
	StatusFinished      = 4
)

// Material weight/mass option
const (
	WeightPerVolume = 1
	MassPerVolume   = 2
)

// Section cut result type
const (
	CutAnalysis = 0
	CutDesign   = 1
)
