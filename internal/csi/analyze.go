package csi

// CaseRunStatus is the analysis status of one case.
type CaseRunStatus struct {
	Case   string
	Status CaseStatus
}

// Analyze wraps Analyze.
type Analyze struct{ m *Model }

func (a *Analyze) CreateAnalysisModel() error {
	return a.m.check("Analyze.CreateAnalysisModel", "", a.m.seed.Analyze().CreateAnalysisModel())
}

// Run runs the flagged cases. The host requires a saved model.
func (a *Analyze) Run() error {
	return a.m.check("Analyze.RunAnalysis", "", a.m.seed.Analyze().RunAnalysis())
}

// SetRunCaseFlag flags one case to run or not.
func (a *Analyze) SetRunCaseFlag(name string, run bool) error {
	return a.m.check("Analyze.SetRunCaseFlag", name, a.m.seed.Analyze().SetRunCaseFlag(name, run, false))
}

// SetRunAllCases flags every case.
func (a *Analyze) SetRunAllCases(run bool) error {
	return a.m.check("Analyze.SetRunCaseFlag", "", a.m.seed.Analyze().SetRunCaseFlag("", run, true))
}

func (a *Analyze) CaseStatus() ([]CaseRunStatus, error) {
	const op = "Analyze.GetCaseStatus"
	n, names, status, ret := a.m.seed.Analyze().GetCaseStatus()
	if err := a.m.check(op, "", ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(names), len(status)); err != nil {
		return nil, err
	}
	out := make([]CaseRunStatus, n)
	for i := range out {
		s, err := caseStatuses.fromCode(op, status[i])
		if err != nil {
			return nil, err
		}
		out[i] = CaseRunStatus{Case: names[i], Status: s}
	}
	return out, nil
}

// File wraps File.
type File struct{ m *Model }

func (f *File) NewBlank() error {
	return f.m.check("File.NewBlank", "", f.m.seed.File().NewBlank())
}

func (f *File) Open(path string) error {
	return f.m.check("File.OpenFile", path, f.m.seed.File().OpenFile(path))
}

// Save saves to path, or to the current file when path is empty.
func (f *File) Save(path string) error {
	return f.m.check("File.Save", path, f.m.seed.File().Save(path))
}

func (f *File) Filename() string {
	return f.m.seed.File().GetFilename()
}
