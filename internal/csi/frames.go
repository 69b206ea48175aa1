package csi

// Frames wraps FrameObj.
type Frames struct{ m *Model }

// AddByPoint adds a frame between two joints. The host picks a name when
// userName is empty.
func (f *Frames) AddByPoint(point1, point2, section, userName string) (string, error) {
	name, ret := f.m.seed.FrameObj().AddByPoint(point1, point2, section, userName)
	if err := f.m.check("FrameObj.AddByPoint", userName, ret); err != nil {
		return "", err
	}
	return name, nil
}

func (f *Frames) Count() int {
	return f.m.seed.FrameObj().Count()
}

func (f *Frames) GetNameList() ([]string, error) {
	n, names, ret := f.m.seed.FrameObj().GetNameList()
	return f.m.nameList("FrameObj.GetNameList", n, names, ret)
}

// Points returns the end joints of a frame.
func (f *Frames) Points(name string) (string, string, error) {
	p1, p2, ret := f.m.seed.FrameObj().GetPoints(name)
	if err := f.m.check("FrameObj.GetPoints", name, ret); err != nil {
		return "", "", err
	}
	return p1, p2, nil
}

func (f *Frames) Section(name string) (string, error) {
	prop, _, ret := f.m.seed.FrameObj().GetSection(name)
	if err := f.m.check("FrameObj.GetSection", name, ret); err != nil {
		return "", err
	}
	return prop, nil
}

func (f *Frames) SetSection(name, section string, t ItemType) error {
	const op = "FrameObj.SetSection"
	code, err := itemTypes.toCode(op, f.m.version, t)
	if err != nil {
		return err
	}
	return f.m.check(op, name, f.m.seed.FrameObj().SetSection(name, section, code))
}

func (f *Frames) SetGroup(name, group string, remove bool, t ItemType) error {
	const op = "FrameObj.SetGroupAssign"
	code, err := itemTypes.toCode(op, f.m.version, t)
	if err != nil {
		return err
	}
	return f.m.check(op, name, f.m.seed.FrameObj().SetGroupAssign(name, group, remove, code))
}

func (f *Frames) ChangeName(name, newName string) error {
	return f.m.check("FrameObj.ChangeName", name, f.m.seed.FrameObj().ChangeName(name, newName))
}

func (f *Frames) Delete(name string, t ItemType) error {
	const op = "FrameObj.Delete"
	code, err := itemTypes.toCode(op, f.m.version, t)
	if err != nil {
		return err
	}
	return f.m.check(op, name, f.m.seed.FrameObj().Delete(name, code))
}
