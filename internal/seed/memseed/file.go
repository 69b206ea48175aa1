package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type fileAPI struct{ m *Model }

func (a fileAPI) NewBlank() int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("File.NewBlank"); code != 0 {
		return code
	}
	m.state = blankState(m.state.Version, m.state.Units)
	return retOK
}

// OpenFile replaces the model with the state read by OnOpen. The reported
// host version is kept.
func (a fileAPI) OpenFile(path string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("File.OpenFile"); code != 0 {
		return code
	}
	if path == "" {
		return retFail
	}
	if m.OnOpen != nil {
		st, err := m.OnOpen(path)
		if err != nil || st == nil {
			return retFail
		}
		ensureMaps(st)
		st.Version = m.state.Version
		m.state = st
	}
	m.state.Filename = path
	return retOK
}

// Save writes the model through OnSave. An empty path saves to the current
// filename.
func (a fileAPI) Save(path string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("File.Save"); code != 0 {
		return code
	}
	if path == "" {
		path = m.state.Filename
	}
	if path == "" {
		return retFail
	}
	m.state.Filename = path
	if m.OnSave != nil {
		if err := m.OnSave(path, m.state); err != nil {
			return retFail
		}
	}
	return retOK
}

func (a fileAPI) GetFilename() string {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Filename
}

type analyzeAPI struct{ m *Model }

func (a analyzeAPI) CreateAnalysisModel() int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fault("Analyze.CreateAnalysisModel")
}

// RunAnalysis locks the model. Flagged cases with loaded results finish;
// the others could not start since nothing is solved offline.
func (a analyzeAPI) RunAnalysis() int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("Analyze.RunAnalysis"); code != 0 {
		return code
	}
	if m.state.Filename == "" {
		return retFail
	}
	solved := map[string]bool{}
	for _, c := range m.state.Results.Cases() {
		solved[c] = true
	}
	m.state.Locked = true
	m.state.Status = map[string]int{}
	for _, name := range m.state.Cases.Names {
		switch {
		case !m.runs(name):
			m.state.Status[name] = seed.StatusNotRun
		case solved[name]:
			m.state.Status[name] = seed.StatusFinished
		default:
			m.state.Status[name] = seed.StatusCouldNotStart
		}
	}
	return retOK
}

func (m *Model) runs(name string) bool {
	run, ok := m.state.RunFlags[name]
	return !ok || run
}

func (a analyzeAPI) SetRunCaseFlag(name string, run, all bool) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("Analyze.SetRunCaseFlag"); code != 0 {
		return code
	}
	if all {
		for _, c := range m.state.Cases.Names {
			m.state.RunFlags[c] = run
		}
		return retOK
	}
	if !m.state.Cases.Has(name) {
		return retFail
	}
	m.state.RunFlags[name] = run
	return retOK
}

func (a analyzeAPI) GetCaseStatus() (int, []string, []int, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("Analyze.GetCaseStatus"); code != 0 {
		return 0, nil, nil, code
	}
	caseName := m.state.Cases.List()
	status := make([]int, len(caseName))
	for i, c := range caseName {
		status[i] = seed.StatusNotRun
		if s, ok := m.state.Status[c]; ok {
			status[i] = s
		}
	}
	return len(caseName), caseName, status, retOK
}
