package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

// LoadResults replaces the result tables and marks the model as analyzed:
// it locks the model and flags every case with rows as finished.
func (m *Model) LoadResults(r ResultTables) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Results = r
	m.state.Locked = true
	m.state.Status = map[string]int{}
	for _, c := range r.Cases() {
		if m.state.Cases.Has(c) {
			m.state.Status[c] = seed.StatusFinished
		}
	}
}

type setupAPI struct{ m *Model }

func (a setupAPI) DeselectAllCasesAndCombosForOutput() int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("Setup.DeselectAllCasesAndCombosForOutput"); code != 0 {
		return code
	}
	m.state.Output = map[string]bool{}
	return retOK
}

func (a setupAPI) SetCaseSelectedForOutput(name string, selected bool) int {
	return a.m.selectOutput("Setup.SetCaseSelectedForOutput", name, selected, caseExists)
}

func (a setupAPI) GetCaseSelectedForOutput(name string) (bool, int) {
	return a.m.selectedOutput("Setup.GetCaseSelectedForOutput", name, caseExists)
}

func (a setupAPI) SetComboSelectedForOutput(name string, selected bool) int {
	return a.m.selectOutput("Setup.SetComboSelectedForOutput", name, selected, comboExists)
}

func (a setupAPI) GetComboSelectedForOutput(name string) (bool, int) {
	return a.m.selectedOutput("Setup.GetComboSelectedForOutput", name, comboExists)
}

func (m *Model) selectOutput(op, name string, selected bool, exists func(*State, string) bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault(op); code != 0 {
		return code
	}
	if !exists(m.state, name) {
		return retFail
	}
	if selected {
		m.state.Output[name] = true
	} else {
		delete(m.state.Output, name)
	}
	return retOK
}

func (m *Model) selectedOutput(op, name string, exists func(*State, string) bool) (bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault(op); code != 0 {
		return false, code
	}
	if !exists(m.state, name) {
		return false, retFail
	}
	return m.state.Output[name], retOK
}

func caseExists(st *State, name string) bool  { return st.Cases.Has(name) }
func comboExists(st *State, name string) bool { return st.Combos.Has(name) }

type resultsAPI struct{ m *Model }

// query guards every results call: faults first, then results must be
// available, which the host signals with a locked model.
func (m *Model) query(op string) int {
	if code := m.fault(op); code != 0 {
		return code
	}
	if !m.state.Locked {
		return retFail
	}
	return retOK
}

// matcher selects rows for a name and element item type. ok is false for
// an unknown group or item type.
func (m *Model) matcher(name string, itemTypeElm int, groupMembers func(string) []string) (func(obj, elm string) bool, bool) {
	switch itemTypeElm {
	case seed.ElmObject:
		return func(obj, _ string) bool { return obj == name }, true
	case seed.ElmElement:
		return func(_, elm string) bool { return elm == name }, true
	case seed.ElmGroup:
		if !m.state.Groups.Has(name) {
			return nil, false
		}
		if isReserved(name, allGroup) {
			return func(string, string) bool { return true }, true
		}
		in := map[string]bool{}
		for _, obj := range groupMembers(name) {
			in[obj] = true
		}
		return func(obj, _ string) bool { return in[obj] }, true
	case seed.ElmSelection:
		return func(string, string) bool { return false }, true
	}
	return nil, false
}

func (m *Model) groupPoints(group string) []string {
	points, _ := m.members(group)
	return points
}

func (m *Model) groupFrames(group string) []string {
	_, frames := m.members(group)
	return frames
}

// selected reports whether rows of the step are selected for output.
func (m *Model) selected(s Step) bool {
	return m.state.Output[s.LoadCase]
}

type jointColumns struct {
	obj, elm, loadCase, stepType []string
	stepNum                      []float64
	v                            [6][]float64
}

func (c *jointColumns) add(row JointRow) {
	c.obj = append(c.obj, row.Obj)
	c.elm = append(c.elm, row.Elm)
	c.loadCase = append(c.loadCase, row.Step.LoadCase)
	c.stepType = append(c.stepType, row.Step.StepType)
	c.stepNum = append(c.stepNum, row.Step.StepNum)
	for j := range row.Values {
		c.v[j] = append(c.v[j], row.Values[j])
	}
}

func (m *Model) jointRows(op, name string, itemTypeElm int, table func(*ResultTables) []JointRow) (int, []string, []string, []string, []string, []float64, []float64, []float64, []float64, []float64, []float64, []float64, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.query(op); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, code
	}
	match, ok := m.matcher(name, itemTypeElm, m.groupPoints)
	if !ok || (itemTypeElm == seed.ElmObject && !m.state.Points.Has(name)) {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, retFail
	}
	var c jointColumns
	for _, row := range table(&m.state.Results) {
		if m.selected(row.Step) && match(row.Obj, row.Elm) {
			c.add(row)
		}
	}
	return len(c.obj), c.obj, c.elm, c.loadCase, c.stepType, c.stepNum,
		c.v[0], c.v[1], c.v[2], c.v[3], c.v[4], c.v[5], retOK
}

func (a resultsAPI) JointDispl(name string, itemTypeElm int) (int, []string, []string, []string, []string, []float64, []float64, []float64, []float64, []float64, []float64, []float64, int) {
	return a.m.jointRows("Results.JointDispl", name, itemTypeElm, func(r *ResultTables) []JointRow { return r.JointDispl })
}

func (a resultsAPI) JointReact(name string, itemTypeElm int) (int, []string, []string, []string, []string, []float64, []float64, []float64, []float64, []float64, []float64, []float64, int) {
	return a.m.jointRows("Results.JointReact", name, itemTypeElm, func(r *ResultTables) []JointRow { return r.JointReact })
}

func (a resultsAPI) AssembledJointMass(name string, itemTypeElm int) (int, []string, []float64, []float64, []float64, []float64, []float64, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.query("Results.AssembledJointMass"); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, code
	}
	match, ok := m.matcher(name, itemTypeElm, m.groupPoints)
	if !ok {
		return 0, nil, nil, nil, nil, nil, nil, nil, retFail
	}
	var pointElm []string
	var v [6][]float64
	for _, row := range m.state.Results.JointMass {
		if !match(row.PointElm, row.PointElm) {
			continue
		}
		pointElm = append(pointElm, row.PointElm)
		for j := range row.Values {
			v[j] = append(v[j], row.Values[j])
		}
	}
	return len(pointElm), pointElm, v[0], v[1], v[2], v[3], v[4], v[5], retOK
}

func (a resultsAPI) FrameForce(name string, itemTypeElm int) (int, []string, []float64, []string, []float64, []string, []string, []float64, []float64, []float64, []float64, []float64, []float64, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.query("Results.FrameForce"); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, code
	}
	match, ok := m.matcher(name, itemTypeElm, m.groupFrames)
	if !ok || (itemTypeElm == seed.ElmObject && !m.state.Frames.Has(name)) {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, retFail
	}
	var obj, elm, loadCase, stepType []string
	var objSta, elmSta, stepNum []float64
	var v [6][]float64
	for _, row := range m.state.Results.FrameForce {
		if !m.selected(row.Step) || !match(row.Obj, row.Elm) {
			continue
		}
		obj = append(obj, row.Obj)
		objSta = append(objSta, row.ObjSta)
		elm = append(elm, row.Elm)
		elmSta = append(elmSta, row.ElmSta)
		loadCase = append(loadCase, row.Step.LoadCase)
		stepType = append(stepType, row.Step.StepType)
		stepNum = append(stepNum, row.Step.StepNum)
		for j := range row.Values {
			v[j] = append(v[j], row.Values[j])
		}
	}
	return len(obj), obj, objSta, elm, elmSta, loadCase, stepType, stepNum,
		v[0], v[1], v[2], v[3], v[4], v[5], retOK
}

func (a resultsAPI) BaseReact() (int, []string, []string, []float64, []float64, []float64, []float64, []float64, []float64, []float64, float64, float64, float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.query("Results.BaseReact"); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, 0, 0, 0, code
	}
	var loadCase, stepType []string
	var stepNum []float64
	var v [6][]float64
	for _, row := range m.state.Results.BaseReact {
		if !m.selected(row.Step) {
			continue
		}
		loadCase = append(loadCase, row.Step.LoadCase)
		stepType = append(stepType, row.Step.StepType)
		stepNum = append(stepNum, row.Step.StepNum)
		for j := range row.Values {
			v[j] = append(v[j], row.Values[j])
		}
	}
	loc := m.state.Results.BaseReactLoc
	return len(loadCase), loadCase, stepType, stepNum,
		v[0], v[1], v[2], v[3], v[4], v[5], loc[0], loc[1], loc[2], retOK
}

func (a resultsAPI) ModalPeriod() (int, []string, []string, []float64, []float64, []float64, []float64, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.query("Results.ModalPeriod"); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, code
	}
	var loadCase, stepType []string
	var stepNum, period, frequency, circFreq, eigenValue []float64
	for _, row := range m.state.Results.ModalPeriod {
		if !m.selected(row.Step) {
			continue
		}
		loadCase = append(loadCase, row.Step.LoadCase)
		stepType = append(stepType, row.Step.StepType)
		stepNum = append(stepNum, row.Step.StepNum)
		period = append(period, row.Period)
		frequency = append(frequency, row.Frequency)
		circFreq = append(circFreq, row.CircFreq)
		eigenValue = append(eigenValue, row.EigenValue)
	}
	return len(loadCase), loadCase, stepType, stepNum, period, frequency, circFreq, eigenValue, retOK
}

func (a resultsAPI) AreaStressShell(name string, itemTypeElm int) (int, []string, []string, []string, []string, []string, []float64, []float64, []float64, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.query("Results.AreaStressShell"); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, code
	}
	// areas are not modeled offline, so groups match no shell rows except ALL
	match, ok := m.matcher(name, itemTypeElm, func(string) []string { return nil })
	if !ok {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, retFail
	}
	var obj, elm, pointElm, loadCase, stepType []string
	var stepNum, top, bottom, avg []float64
	for _, row := range m.state.Results.ShellStress {
		if !m.selected(row.Step) || !match(row.Obj, row.Elm) {
			continue
		}
		obj = append(obj, row.Obj)
		elm = append(elm, row.Elm)
		pointElm = append(pointElm, row.PointElm)
		loadCase = append(loadCase, row.Step.LoadCase)
		stepType = append(stepType, row.Step.StepType)
		stepNum = append(stepNum, row.Step.StepNum)
		top = append(top, row.Top[:]...)
		bottom = append(bottom, row.Bottom[:]...)
		avg = append(avg, row.Avg[:]...)
	}
	return len(obj), obj, elm, pointElm, loadCase, stepType, stepNum, top, bottom, avg, retOK
}

func (a resultsAPI) SectionCutAnalysis() (int, []string, []string, []string, []float64, []float64, []float64, []float64, []float64, []float64, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.query("Results.SectionCutAnalysis"); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, code
	}
	var cut, loadCase, stepType []string
	var stepNum []float64
	var v [6][]float64
	for _, row := range m.state.Results.SectionCutRes {
		if !m.selected(row.Step) {
			continue
		}
		cut = append(cut, row.Cut)
		loadCase = append(loadCase, row.Step.LoadCase)
		stepType = append(stepType, row.Step.StepType)
		stepNum = append(stepNum, row.Step.StepNum)
		for j := range row.Values {
			v[j] = append(v[j], row.Values[j])
		}
	}
	return len(cut), cut, loadCase, stepType, stepNum, v[0], v[1], v[2], v[3], v[4], v[5], retOK
}
