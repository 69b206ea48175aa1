// Package seed declares the automation surface of the host structural
// analysis application, one interface per object-model category.
//
// Method names, parameter order and enumeration codes follow the host
// object model. Host out-parameters are returned as results, and the last
// result of every call is the host call code: 0 on success, nonzero on
// failure. A connection to a particular host release implements Model.
package seed

// Model is the host's active model handle.
type Model interface {
	// GetVersion returns the host program version string and number.
	GetVersion() (version string, number float64, ret int)
	InitializeNewModel(units int) int
	GetPresentUnits() int
	SetPresentUnits(units int) int
	GetModelIsLocked() bool
	SetModelIsLocked(locked bool) int

	File() File
	Analyze() Analyze
	CoordSys() CoordSys
	ConstraintDef() ConstraintDef
	Func() Func
	FuncTH() FuncTH
	FuncRS() FuncRS
	LoadPatterns() LoadPatterns
	AutoSeismic() AutoCode
	AutoWind() AutoCode
	LoadCases() LoadCases
	StaticLinear() StaticCase
	StaticNonlinear() StaticCase
	ModalEigen() ModalEigen
	ResponseSpectrum() ResponseSpectrum
	RespCombo() RespCombo
	GroupDef() GroupDef
	SourceMass() SourceMass
	SectCut() SectCut
	PointObj() PointObj
	FrameObj() FrameObj
	PropMaterial() PropMaterial
	PropFrame() PropFrame
	ModifierFrame() ModifierFrame
	ReleaseFrame() ReleaseFrame
	Results() Results
	ResultsSetup() ResultsSetup
}

// File is SapModel.File.
type File interface {
	NewBlank() int
	OpenFile(path string) int
	Save(path string) int
	GetFilename() string
}

// Analyze is SapModel.Analyze.
type Analyze interface {
	CreateAnalysisModel() int
	RunAnalysis() int
	SetRunCaseFlag(name string, run bool, all bool) int
	GetCaseStatus() (n int, caseName []string, status []int, ret int)
}

// CoordSys is SapModel.CoordSys.
type CoordSys interface {
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetCoordSys(name string) (x, y, z, rz, ry, rx float64, ret int)
	GetNameList() (n int, names []string, ret int)
	GetTransformationMatrix(name string) (value []float64, ret int)
	SetCoordSys(name string, x, y, z, rz, ry, rx float64) int
}

// ConstraintDef is SapModel.ConstraintDef.
type ConstraintDef interface {
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetNameList() (n int, names []string, ret int)
	GetConstraintType(name string) (constraintType int, ret int)

	GetBody(name string) (value []bool, csys string, ret int)
	SetBody(name string, value []bool, csys string) int
	GetEqual(name string) (value []bool, csys string, ret int)
	SetEqual(name string, value []bool, csys string) int
	GetLocal(name string) (value []bool, ret int)
	SetLocal(name string, value []bool) int
	GetWeld(name string) (value []bool, tolerance float64, csys string, ret int)
	SetWeld(name string, value []bool, tolerance float64, csys string) int
	GetDiaphragm(name string) (axis int, csys string, ret int)
	SetDiaphragm(name string, axis int, csys string) int
	GetPlate(name string) (axis int, csys string, ret int)
	SetPlate(name string, axis int, csys string) int
	GetRod(name string) (axis int, csys string, ret int)
	SetRod(name string, axis int, csys string) int
	GetBeam(name string) (axis int, csys string, ret int)
	SetBeam(name string, axis int, csys string) int
}

// Func is SapModel.Func.
type Func interface {
	ChangeName(name, newName string) int
	Count(funcType int) int
	Delete(name string) int
	GetNameList(funcType int) (n int, names []string, ret int)
	GetTypeOAPI(name string) (funcType int, addType int, ret int)
	GetValues(name string) (n int, x []float64, value []float64, ret int)
}

// FuncTH is SapModel.Func.FuncTH.
type FuncTH interface {
	GetUser(name string) (n int, time []float64, value []float64, ret int)
	SetUser(name string, n int, time []float64, value []float64) int
}

// FuncRS is SapModel.Func.FuncRS.
type FuncRS interface {
	GetUser(name string) (n int, period []float64, value []float64, dampRatio float64, ret int)
	SetUser(name string, n int, period []float64, value []float64, dampRatio float64) int
}

// LoadPatterns is SapModel.LoadPatterns.
type LoadPatterns interface {
	Add(name string, patternType int, selfWTMultiplier float64, addLoadCase bool) int
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetLoadType(name string) (patternType int, ret int)
	SetLoadType(name string, patternType int) int
	GetNameList() (n int, names []string, ret int)
	GetSelfWTMultiplier(name string) (value float64, ret int)
	SetSelfWTMultiplier(name string, value float64) int
}

// AutoCode is LoadPatterns.AutoSeismic and LoadPatterns.AutoWind.
type AutoCode interface {
	GetAutoCode(name string) (code string, ret int)
}

// LoadCases is SapModel.LoadCases.
type LoadCases interface {
	ChangeName(name, newName string) int
	Count(caseType int) int
	Delete(name string) int
	GetNameList(caseType int) (n int, names []string, ret int)
	GetTypeOAPI(name string) (caseType, subType, designType, designTypeOption, auto int, ret int)
	SetDesignType(name string, designTypeOption int, designType int) int
}

// StaticCase is LoadCases.StaticLinear and LoadCases.StaticNonlinear.
type StaticCase interface {
	SetCase(name string) int
	GetLoads(name string) (n int, loadType []string, loadName []string, sf []float64, ret int)
	SetLoads(name string, n int, loadType []string, loadName []string, sf []float64) int
}

// ModalEigen is LoadCases.ModalEigen.
type ModalEigen interface {
	SetCase(name string) int
	GetNumberModes(name string) (maxModes, minModes int, ret int)
	SetNumberModes(name string, maxModes, minModes int) int
}

// ResponseSpectrum is LoadCases.ResponseSpectrum.
type ResponseSpectrum interface {
	SetCase(name string) int
	GetLoads(name string) (n int, loadName []string, function []string, sf []float64, csys []string, ang []float64, ret int)
	SetLoads(name string, n int, loadName []string, function []string, sf []float64, csys []string, ang []float64) int
}

// RespCombo is SapModel.RespCombo.
type RespCombo interface {
	Add(name string, comboType int) int
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	DeleteCase(name string, cType int, cName string) int
	GetCaseList(name string) (n int, cType []int, cName []string, sf []float64, ret int)
	GetNameList() (n int, names []string, ret int)
	GetTypeOAPI(name string) (comboType int, ret int)
	SetCaseList(name string, cType int, cName string, sf float64) int
	SetTypeOAPI(name string, comboType int) int
}

// GroupFlags are the option flags of GroupDef.SetGroup_1, in host order:
// selection, section cut definition, steel design, concrete design,
// aluminum design, cold formed design, static nonlinear active stage,
// bridge response output, auto seismic output, auto wind output, mass and
// weight.
const GroupFlagCount = 11

// GroupDef is SapModel.GroupDef.
type GroupDef interface {
	ChangeName(name, newName string) int
	Clear(name string) int
	Count() int
	Delete(name string) int
	GetAssignments(name string) (n int, objectType []int, objectName []string, ret int)
	GetGroup(name string) (color int, flags []bool, ret int)
	GetNameList() (n int, names []string, ret int)
	SetGroup(name string, color int, flags []bool) int
}

// SourceMass is SapModel.SourceMass. The *Legacy calls are the single
// model-wide mass source that predates named sources.
type SourceMass interface {
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetDefault() (name string, ret int)
	SetDefault(name string) int
	GetMassSource(name string) (fromElements, fromMasses, fromLoads, isDefault bool, n int, loadPat []string, sf []float64, ret int)
	SetMassSource(name string, fromElements, fromMasses, fromLoads, isDefault bool, n int, loadPat []string, sf []float64) int
	GetNameList() (n int, names []string, ret int)

	GetMassSourceLegacy() (fromElements, fromMasses, fromLoads bool, n int, loadPat []string, sf []float64, ret int)
	SetMassSourceLegacy(fromElements, fromMasses, fromLoads bool, n int, loadPat []string, sf []float64) int
}

// SectCut is SapModel.SectCut.
type SectCut interface {
	AddByGroup(name, groupName string, resultType int) int
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetByGroup(name string) (groupName string, resultType int, ret int)
	GetNameList() (n int, names []string, ret int)
}

// PointObj is SapModel.PointObj.
type PointObj interface {
	AddCartesian(x, y, z float64, userName, csys string) (name string, ret int)
	ChangeName(name, newName string) int
	Count() int
	Delete(name string, itemType int) int
	GetCoordCartesian(name, csys string) (x, y, z float64, ret int)
	GetNameList() (n int, names []string, ret int)

	GetRestraint(name string) (value []bool, ret int)
	SetRestraint(name string, value []bool, itemType int) int
	GetConstraint(name string, itemType int) (n int, pointName []string, constraintName []string, ret int)
	SetConstraint(name, constraintName string, itemType int, replace bool) int
	GetGUID(name string) (guid string, ret int)
	SetGUID(name, guid string) int
	GetGroupAssign(name string) (n int, groups []string, ret int)
	SetGroupAssign(name, groupName string, remove bool, itemType int) int

	// GetLoadForce returns one row per pointName/loadPat pair; f1..m3 are
	// parallel arrays of length n.
	GetLoadForce(name string, itemType int) (n int, pointName, loadPat []string, lcStep []int, csys []string, f1, f2, f3, m1, m2, m3 []float64, ret int)
	SetLoadForce(name, loadPat string, value []float64, replace bool, csys string, itemType int) int
}

// FrameObj is SapModel.FrameObj.
type FrameObj interface {
	AddByPoint(point1, point2, propName, userName string) (name string, ret int)
	ChangeName(name, newName string) int
	Count() int
	Delete(name string, itemType int) int
	GetNameList() (n int, names []string, ret int)
	GetPoints(name string) (point1, point2 string, ret int)
	GetSection(name string) (propName, sAuto string, ret int)
	SetSection(name, propName string, itemType int) int
	SetGroupAssign(name, groupName string, remove bool, itemType int) int
}

// PropMaterial is SapModel.PropMaterial.
type PropMaterial interface {
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetMaterial(name string) (matType int, color int, notes, guid string, ret int)
	SetMaterial(name string, matType int, color int, notes, guid string) int
	GetMPIsotropic(name string) (e, u, a float64, ret int)
	SetMPIsotropic(name string, e, u, a float64) int
	GetWeightAndMass(name string) (w, m float64, ret int)
	SetWeightAndMass(name string, option int, value float64) int
	GetNameList() (n int, names []string, ret int)
}

// PropFrame is SapModel.PropFrame.
type PropFrame interface {
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetNameList() (n int, names []string, ret int)
	GetTypeOAPI(name string) (propType int, ret int)
	GetRectangle(name string) (matProp string, t3, t2 float64, ret int)
	SetRectangle(name, matProp string, t3, t2 float64) int
	// GetGeneral/SetGeneral carry, in order: t3, t2, area, as2, as3,
	// torsion, i22, i33, s22, s33, z22, z33, r22, r33.
	GetGeneral(name string) (matProp string, values []float64, ret int)
	SetGeneral(name, matProp string, values []float64) int
}

// GeneralValueCount is the length of PropFrame general section arrays.
const GeneralValueCount = 14

// ModifierFrame is SapModel.NamedAssign.ModifierFrame.
type ModifierFrame interface {
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetModifiers(name string) (value []float64, ret int)
	SetModifiers(name string, value []float64) int
	GetNameList() (n int, names []string, ret int)
}

// ReleaseFrame is SapModel.NamedAssign.ReleaseFrame.
type ReleaseFrame interface {
	ChangeName(name, newName string) int
	Count() int
	Delete(name string) int
	GetReleases(name string) (ii, jj []bool, startValue, endValue []float64, ret int)
	SetReleases(name string, ii, jj []bool, startValue, endValue []float64) int
	GetNameList() (n int, names []string, ret int)
}

// ResultsSetup is SapModel.Results.Setup.
type ResultsSetup interface {
	DeselectAllCasesAndCombosForOutput() int
	SetCaseSelectedForOutput(name string, selected bool) int
	GetCaseSelectedForOutput(name string) (selected bool, ret int)
	SetComboSelectedForOutput(name string, selected bool) int
	GetComboSelectedForOutput(name string) (selected bool, ret int)
}

// Results is SapModel.Results. Every query returns parallel arrays of
// length n.
type Results interface {
	JointDispl(name string, itemTypeElm int) (n int, obj, elm, loadCase, stepType []string, stepNum []float64, u1, u2, u3, r1, r2, r3 []float64, ret int)
	JointReact(name string, itemTypeElm int) (n int, obj, elm, loadCase, stepType []string, stepNum []float64, f1, f2, f3, m1, m2, m3 []float64, ret int)
	AssembledJointMass(name string, itemTypeElm int) (n int, pointElm []string, u1, u2, u3, r1, r2, r3 []float64, ret int)
	FrameForce(name string, itemTypeElm int) (n int, obj []string, objSta []float64, elm []string, elmSta []float64, loadCase, stepType []string, stepNum []float64, p, v2, v3, t, m2, m3 []float64, ret int)
	BaseReact() (n int, loadCase, stepType []string, stepNum []float64, fx, fy, fz, mx, my, mz []float64, gx, gy, gz float64, ret int)
	ModalPeriod() (n int, loadCase, stepType []string, stepNum []float64, period, frequency, circFreq, eigenValue []float64, ret int)
	// AreaStressShell returns top and bottom face stresses as 7-column
	// blocks (s11, s22, s12, smax, smin, sangle, svm) and averaged
	// transverse shear as a 4-column block (s13, s23, smax, angle), each
	// flattened row-major with n rows.
	AreaStressShell(name string, itemTypeElm int) (n int, obj, elm, pointElm, loadCase, stepType []string, stepNum []float64, top, bottom, avg []float64, ret int)
	SectionCutAnalysis() (n int, sCut, loadCase, stepType []string, stepNum []float64, f1, f2, f3, m1, m2, m3 []float64, ret int)
}

// Flattened block widths of AreaStressShell.
const (
	FaceStressWidth  = 7
	ShearStressWidth = 4
)
