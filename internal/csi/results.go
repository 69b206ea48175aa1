package csi

import "github.com/alexiusacademia/csiapi/internal/seed"

// Step identifies the load case and output step of a result row.
type Step struct {
	LoadCase string
	StepType string
	StepNum  float64
}

// Deformations are joint displacements and rotations.
type Deformations struct {
	U1, U2, U3 float64
	R1, R2, R3 float64
}

// Reactions are joint reaction forces and moments.
type Reactions struct {
	F1, F2, F3 float64
	M1, M2, M3 float64
}

// Forces are frame internal forces.
type Forces struct {
	P, V2, V3 float64
	T, M2, M3 float64
}

// BaseReaction is a global base reaction and the point it is reported at.
type BaseReaction struct {
	Fx, Fy, Fz float64
	Mx, My, Mz float64
	Gx, Gy, Gz float64
}

// Mass is an assembled joint mass.
type Mass struct {
	U1, U2, U3 float64
	R1, R2, R3 float64
}

// Stress is the in-plane stress state of one shell face.
type Stress struct {
	S11, S22, S12 float64
	SMax, SMin    float64
	SAngle        float64
	SVM           float64
}

// TransverseShear is the averaged transverse shear of a shell.
type TransverseShear struct {
	S13Avg, S23Avg float64
	SMaxAvg        float64
	SAngleAvg      float64
}

// ModalPeriod is one mode of a modal case.
type ModalPeriod struct {
	Mode       int
	Period     float64
	Frequency  float64
	CircFreq   float64
	EigenValue float64
}

// SectionCutForce is the resultant force on a section cut.
type SectionCutForce struct {
	Cut        string
	F1, F2, F3 float64
	M1, M2, M3 float64
}

type JointDisplRow struct {
	Obj, Elm string
	Step     Step
	Displ    Deformations
}

type JointReactRow struct {
	Obj, Elm string
	Step     Step
	Reaction Reactions
}

type FrameForceRow struct {
	Obj    string
	ObjSta float64
	Elm    string
	ElmSta float64
	Step   Step
	Forces Forces
}

type BaseReactRow struct {
	Step     Step
	Reaction BaseReaction
}

type ModalPeriodRow struct {
	Step   Step
	Period ModalPeriod
}

type JointMassRow struct {
	PointElm string
	Mass     Mass
}

type ShellStressRow struct {
	Obj, Elm, PointElm string
	Step               Step
	Top, Bottom        Stress
	Shear              TransverseShear
}

type SectionCutRow struct {
	Step  Step
	Force SectionCutForce
}

// Results wraps Results. Queries return rows only for the cases and
// combinations selected through Setup.
type Results struct {
	m     *Model
	setup lazy[ResultsSetup]
}

func (r *Results) Setup() *ResultsSetup {
	return r.setup.get(func() *ResultsSetup { return &ResultsSetup{m: r.m} })
}

func (r *Results) elm(op string, t ItemTypeElm) (int, error) {
	return itemTypeElms.toCode(op, r.m.version, t)
}

func steps(loadCase, stepType []string, stepNum []float64, i int) Step {
	return Step{LoadCase: loadCase[i], StepType: stepType[i], StepNum: stepNum[i]}
}

func (r *Results) JointDispl(name string, t ItemTypeElm) ([]JointDisplRow, error) {
	const op = "Results.JointDispl"
	code, err := r.elm(op, t)
	if err != nil {
		return nil, err
	}
	n, obj, elm, lc, st, sn, u1, u2, u3, r1, r2, r3, ret := r.m.seed.Results().JointDispl(name, code)
	if err := r.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(obj), len(elm), len(lc), len(st), len(sn),
		len(u1), len(u2), len(u3), len(r1), len(r2), len(r3)); err != nil {
		return nil, err
	}
	rows := make([]JointDisplRow, n)
	for i := range rows {
		rows[i] = JointDisplRow{
			Obj: obj[i], Elm: elm[i], Step: steps(lc, st, sn, i),
			Displ: Deformations{U1: u1[i], U2: u2[i], U3: u3[i], R1: r1[i], R2: r2[i], R3: r3[i]},
		}
	}
	return rows, nil
}

func (r *Results) JointReact(name string, t ItemTypeElm) ([]JointReactRow, error) {
	const op = "Results.JointReact"
	code, err := r.elm(op, t)
	if err != nil {
		return nil, err
	}
	n, obj, elm, lc, st, sn, f1, f2, f3, m1, m2, m3, ret := r.m.seed.Results().JointReact(name, code)
	if err := r.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(obj), len(elm), len(lc), len(st), len(sn),
		len(f1), len(f2), len(f3), len(m1), len(m2), len(m3)); err != nil {
		return nil, err
	}
	rows := make([]JointReactRow, n)
	for i := range rows {
		rows[i] = JointReactRow{
			Obj: obj[i], Elm: elm[i], Step: steps(lc, st, sn, i),
			Reaction: Reactions{F1: f1[i], F2: f2[i], F3: f3[i], M1: m1[i], M2: m2[i], M3: m3[i]},
		}
	}
	return rows, nil
}

func (r *Results) AssembledJointMass(name string, t ItemTypeElm) ([]JointMassRow, error) {
	const op = "Results.AssembledJointMass"
	code, err := r.elm(op, t)
	if err != nil {
		return nil, err
	}
	n, pt, u1, u2, u3, r1, r2, r3, ret := r.m.seed.Results().AssembledJointMass(name, code)
	if err := r.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(pt), len(u1), len(u2), len(u3), len(r1), len(r2), len(r3)); err != nil {
		return nil, err
	}
	rows := make([]JointMassRow, n)
	for i := range rows {
		rows[i] = JointMassRow{
			PointElm: pt[i],
			Mass:     Mass{U1: u1[i], U2: u2[i], U3: u3[i], R1: r1[i], R2: r2[i], R3: r3[i]},
		}
	}
	return rows, nil
}

func (r *Results) FrameForce(name string, t ItemTypeElm) ([]FrameForceRow, error) {
	const op = "Results.FrameForce"
	code, err := r.elm(op, t)
	if err != nil {
		return nil, err
	}
	n, obj, objSta, elm, elmSta, lc, st, sn, p, v2, v3, tq, m2, m3, ret := r.m.seed.Results().FrameForce(name, code)
	if err := r.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(obj), len(objSta), len(elm), len(elmSta), len(lc), len(st), len(sn),
		len(p), len(v2), len(v3), len(tq), len(m2), len(m3)); err != nil {
		return nil, err
	}
	rows := make([]FrameForceRow, n)
	for i := range rows {
		rows[i] = FrameForceRow{
			Obj: obj[i], ObjSta: objSta[i], Elm: elm[i], ElmSta: elmSta[i], Step: steps(lc, st, sn, i),
			Forces: Forces{P: p[i], V2: v2[i], V3: v3[i], T: tq[i], M2: m2[i], M3: m3[i]},
		}
	}
	return rows, nil
}

func (r *Results) BaseReact() ([]BaseReactRow, error) {
	const op = "Results.BaseReact"
	n, lc, st, sn, fx, fy, fz, mx, my, mz, gx, gy, gz, ret := r.m.seed.Results().BaseReact()
	if err := r.m.check(op, "", ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(lc), len(st), len(sn), len(fx), len(fy), len(fz), len(mx), len(my), len(mz)); err != nil {
		return nil, err
	}
	rows := make([]BaseReactRow, n)
	for i := range rows {
		rows[i] = BaseReactRow{
			Step: steps(lc, st, sn, i),
			Reaction: BaseReaction{
				Fx: fx[i], Fy: fy[i], Fz: fz[i], Mx: mx[i], My: my[i], Mz: mz[i],
				Gx: gx, Gy: gy, Gz: gz,
			},
		}
	}
	return rows, nil
}

// ModalPeriod returns periods of every selected modal case. Mode is the
// step number.
func (r *Results) ModalPeriod() ([]ModalPeriodRow, error) {
	const op = "Results.ModalPeriod"
	n, lc, st, sn, period, freq, circ, eigen, ret := r.m.seed.Results().ModalPeriod()
	if err := r.m.check(op, "", ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(lc), len(st), len(sn), len(period), len(freq), len(circ), len(eigen)); err != nil {
		return nil, err
	}
	rows := make([]ModalPeriodRow, n)
	for i := range rows {
		rows[i] = ModalPeriodRow{
			Step: steps(lc, st, sn, i),
			Period: ModalPeriod{
				Mode: int(sn[i]), Period: period[i], Frequency: freq[i], CircFreq: circ[i], EigenValue: eigen[i],
			},
		}
	}
	return rows, nil
}

// AreaStressShell regroups the host's flattened face and shear blocks into
// one row per point.
func (r *Results) AreaStressShell(name string, t ItemTypeElm) ([]ShellStressRow, error) {
	const op = "Results.AreaStressShell"
	code, err := r.elm(op, t)
	if err != nil {
		return nil, err
	}
	n, obj, elm, pt, lc, st, sn, top, bottom, avg, ret := r.m.seed.Results().AreaStressShell(name, code)
	if err := r.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(obj), len(elm), len(pt), len(lc), len(st), len(sn)); err != nil {
		return nil, err
	}
	if err := sameLen(op, n*seed.FaceStressWidth, len(top), len(bottom)); err != nil {
		return nil, err
	}
	if err := sameLen(op, n*seed.ShearStressWidth, len(avg)); err != nil {
		return nil, err
	}
	rows := make([]ShellStressRow, n)
	for i := range rows {
		a := avg[i*seed.ShearStressWidth:]
		rows[i] = ShellStressRow{
			Obj: obj[i], Elm: elm[i], PointElm: pt[i], Step: steps(lc, st, sn, i),
			Top:    faceStress(top[i*seed.FaceStressWidth:]),
			Bottom: faceStress(bottom[i*seed.FaceStressWidth:]),
			Shear:  TransverseShear{S13Avg: a[0], S23Avg: a[1], SMaxAvg: a[2], SAngleAvg: a[3]},
		}
	}
	return rows, nil
}

func faceStress(v []float64) Stress {
	return Stress{S11: v[0], S22: v[1], S12: v[2], SMax: v[3], SMin: v[4], SAngle: v[5], SVM: v[6]}
}

func (r *Results) SectionCutAnalysis() ([]SectionCutRow, error) {
	const op = "Results.SectionCutAnalysis"
	n, cut, lc, st, sn, f1, f2, f3, m1, m2, m3, ret := r.m.seed.Results().SectionCutAnalysis()
	if err := r.m.check(op, "", ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(cut), len(lc), len(st), len(sn),
		len(f1), len(f2), len(f3), len(m1), len(m2), len(m3)); err != nil {
		return nil, err
	}
	rows := make([]SectionCutRow, n)
	for i := range rows {
		rows[i] = SectionCutRow{
			Step:  steps(lc, st, sn, i),
			Force: SectionCutForce{Cut: cut[i], F1: f1[i], F2: f2[i], F3: f3[i], M1: m1[i], M2: m2[i], M3: m3[i]},
		}
	}
	return rows, nil
}

// ResultsSetup wraps Results.Setup.
type ResultsSetup struct{ m *Model }

func (s *ResultsSetup) DeselectAll() error {
	return s.m.check("Setup.DeselectAllCasesAndCombosForOutput", "", s.m.seed.ResultsSetup().DeselectAllCasesAndCombosForOutput())
}

func (s *ResultsSetup) SelectCase(name string, selected bool) error {
	return s.m.check("Setup.SetCaseSelectedForOutput", name, s.m.seed.ResultsSetup().SetCaseSelectedForOutput(name, selected))
}

func (s *ResultsSetup) CaseSelected(name string) (bool, error) {
	sel, ret := s.m.seed.ResultsSetup().GetCaseSelectedForOutput(name)
	if err := s.m.check("Setup.GetCaseSelectedForOutput", name, ret); err != nil {
		return false, err
	}
	return sel, nil
}

func (s *ResultsSetup) SelectCombo(name string, selected bool) error {
	return s.m.check("Setup.SetComboSelectedForOutput", name, s.m.seed.ResultsSetup().SetComboSelectedForOutput(name, selected))
}

func (s *ResultsSetup) ComboSelected(name string) (bool, error) {
	sel, ret := s.m.seed.ResultsSetup().GetComboSelectedForOutput(name)
	if err := s.m.check("Setup.GetComboSelectedForOutput", name, ret); err != nil {
		return false, err
	}
	return sel, nil
}
