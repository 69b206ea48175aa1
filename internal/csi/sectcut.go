package csi

// SectionCut is a group based section cut.
type SectionCut struct {
	Group      string
	ResultType CutResultType
}

// SectionCuts wraps SectCut.
type SectionCuts struct{ m *Model }

func (s *SectionCuts) AddByGroup(name, group string, t CutResultType) error {
	const op = "SectCut.AddByGroup"
	code, err := cutResultTypes.toCode(op, s.m.version, t)
	if err != nil {
		return err
	}
	return s.m.check(op, name, s.m.seed.SectCut().AddByGroup(name, group, code))
}

func (s *SectionCuts) Count() int {
	return s.m.seed.SectCut().Count()
}

func (s *SectionCuts) GetNameList() ([]string, error) {
	n, names, ret := s.m.seed.SectCut().GetNameList()
	return s.m.nameList("SectCut.GetNameList", n, names, ret)
}

func (s *SectionCuts) Get(name string) (SectionCut, error) {
	const op = "SectCut.GetByGroup"
	group, code, ret := s.m.seed.SectCut().GetByGroup(name)
	if err := s.m.check(op, name, ret); err != nil {
		return SectionCut{}, err
	}
	t, err := cutResultTypes.fromCode(op, code)
	if err != nil {
		return SectionCut{}, err
	}
	return SectionCut{Group: group, ResultType: t}, nil
}

func (s *SectionCuts) ChangeName(name, newName string) error {
	return s.m.check("SectCut.ChangeName", name, s.m.seed.SectCut().ChangeName(name, newName))
}

func (s *SectionCuts) Delete(name string) error {
	return s.m.check("SectCut.Delete", name, s.m.seed.SectCut().Delete(name))
}
