package memseed

// Step identifies the load case and output step of a result row.
type Step struct {
	LoadCase string  `json:"loadCase"`
	StepType string  `json:"stepType"`
	StepNum  float64 `json:"stepNum"`
}

// JointRow is a joint displacement or reaction row.
type JointRow struct {
	Obj    string     `json:"obj"`
	Elm    string     `json:"elm"`
	Step   Step       `json:"step"`
	Values [6]float64 `json:"values"`
}

// MassRow is an assembled joint mass row.
type MassRow struct {
	PointElm string     `json:"pointElm"`
	Values   [6]float64 `json:"values"`
}

// FrameForceRow is a frame internal force row.
type FrameForceRow struct {
	Obj    string     `json:"obj"`
	ObjSta float64    `json:"objSta"`
	Elm    string     `json:"elm"`
	ElmSta float64    `json:"elmSta"`
	Step   Step       `json:"step"`
	Values [6]float64 `json:"values"`
}

// BaseReactRow is a base reaction row.
type BaseReactRow struct {
	Step   Step       `json:"step"`
	Values [6]float64 `json:"values"`
}

// ModalPeriodRow is a modal period row.
type ModalPeriodRow struct {
	Step       Step    `json:"step"`
	Period     float64 `json:"period"`
	Frequency  float64 `json:"frequency"`
	CircFreq   float64 `json:"circFreq"`
	EigenValue float64 `json:"eigenValue"`
}

// ShellStressRow is an area shell stress row.
type ShellStressRow struct {
	Obj      string     `json:"obj"`
	Elm      string     `json:"elm"`
	PointElm string     `json:"pointElm"`
	Step     Step       `json:"step"`
	Top      [7]float64 `json:"top"`
	Bottom   [7]float64 `json:"bottom"`
	Avg      [4]float64 `json:"avg"`
}

// SectionCutRow is a section cut force row.
type SectionCutRow struct {
	Cut    string     `json:"cut"`
	Step   Step       `json:"step"`
	Values [6]float64 `json:"values"`
}

// ResultTables holds analysis results loaded into an offline model. The
// offline model never computes these itself.
type ResultTables struct {
	JointDispl    []JointRow       `json:"jointDispl"`
	JointReact    []JointRow       `json:"jointReact"`
	JointMass     []MassRow        `json:"jointMass"`
	FrameForce    []FrameForceRow  `json:"frameForce"`
	BaseReact     []BaseReactRow   `json:"baseReact"`
	BaseReactLoc  [3]float64       `json:"baseReactLoc"`
	ModalPeriod   []ModalPeriodRow `json:"modalPeriod"`
	ShellStress   []ShellStressRow `json:"shellStress"`
	SectionCutRes []SectionCutRow  `json:"sectionCut"`
}

// Cases returns the distinct load cases referenced by any result row.
func (r *ResultTables) Cases() []string {
	seen := map[string]bool{}
	var out []string
	add := func(s Step) {
		if !seen[s.LoadCase] {
			seen[s.LoadCase] = true
			out = append(out, s.LoadCase)
		}
	}
	for _, row := range r.JointDispl {
		add(row.Step)
	}
	for _, row := range r.JointReact {
		add(row.Step)
	}
	for _, row := range r.FrameForce {
		add(row.Step)
	}
	for _, row := range r.BaseReact {
		add(row.Step)
	}
	for _, row := range r.ModalPeriod {
		add(row.Step)
	}
	for _, row := range r.ShellStress {
		add(row.Step)
	}
	for _, row := range r.SectionCutRes {
		add(row.Step)
	}
	return out
}

// Empty reports whether no results are loaded.
func (r *ResultTables) Empty() bool {
	return len(r.JointDispl) == 0 && len(r.JointReact) == 0 && len(r.JointMass) == 0 &&
		len(r.FrameForce) == 0 && len(r.BaseReact) == 0 && len(r.ModalPeriod) == 0 &&
		len(r.ShellStress) == 0 && len(r.SectionCutRes) == 0
}
