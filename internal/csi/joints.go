package csi

import "github.com/alexiusacademia/csiapi/internal/apierr"

// Loads is a force and moment vector in a load assignment's coordinate
// system.
type Loads struct {
	F1, F2, F3 float64
	M1, M2, M3 float64
}

func (l Loads) values() []float64 {
	return []float64{l.F1, l.F2, l.F3, l.M1, l.M2, l.M3}
}

// JointLoad is a force assignment at a joint.
type JointLoad struct {
	Point   string
	Pattern string
	CSys    string
	Loads   Loads
}

// PointConstraint is a constraint assignment at a joint.
type PointConstraint struct {
	Point      string
	Constraint string
}

// Joints wraps PointObj.
type Joints struct{ m *Model }

func (j *Joints) item(op string, t ItemType) (int, error) {
	return itemTypes.toCode(op, j.m.version, t)
}

// AddCartesian adds a joint at x, y, z in csys (GLOBAL when empty). The
// host picks a name when userName is empty.
func (j *Joints) AddCartesian(x, y, z float64, userName, csys string) (string, error) {
	if csys == "" {
		csys = GlobalCSys
	}
	name, ret := j.m.seed.PointObj().AddCartesian(x, y, z, userName, csys)
	if err := j.m.check("PointObj.AddCartesian", userName, ret); err != nil {
		return "", err
	}
	return name, nil
}

func (j *Joints) Count() int {
	return j.m.seed.PointObj().Count()
}

func (j *Joints) GetNameList() ([]string, error) {
	n, names, ret := j.m.seed.PointObj().GetNameList()
	return j.m.nameList("PointObj.GetNameList", n, names, ret)
}

// Coord returns a joint's coordinates in csys (GLOBAL when empty).
func (j *Joints) Coord(name, csys string) (x, y, z float64, err error) {
	if csys == "" {
		csys = GlobalCSys
	}
	x, y, z, ret := j.m.seed.PointObj().GetCoordCartesian(name, csys)
	if err := j.m.check("PointObj.GetCoordCartesian", name, ret); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

func (j *Joints) Restraint(name string) (DOF, error) {
	const op = "PointObj.GetRestraint"
	v, ret := j.m.seed.PointObj().GetRestraint(name)
	if err := j.m.check(op, name, ret); err != nil {
		return DOF{}, err
	}
	return dofFrom(op, v)
}

func (j *Joints) SetRestraint(name string, dof DOF, t ItemType) error {
	const op = "PointObj.SetRestraint"
	code, err := j.item(op, t)
	if err != nil {
		return err
	}
	return j.m.check(op, name, j.m.seed.PointObj().SetRestraint(name, dof[:], code))
}

// Constraint lists the constraint assignments of a joint or group.
func (j *Joints) Constraint(name string, t ItemType) ([]PointConstraint, error) {
	const op = "PointObj.GetConstraint"
	code, err := j.item(op, t)
	if err != nil {
		return nil, err
	}
	n, points, constraints, ret := j.m.seed.PointObj().GetConstraint(name, code)
	if err := j.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(points), len(constraints)); err != nil {
		return nil, err
	}
	out := make([]PointConstraint, n)
	for i := range out {
		out[i] = PointConstraint{Point: points[i], Constraint: constraints[i]}
	}
	return out, nil
}

// SetConstraint assigns a constraint. With replace the joint's other
// constraints are removed first.
func (j *Joints) SetConstraint(name, constraint string, t ItemType, replace bool) error {
	const op = "PointObj.SetConstraint"
	code, err := j.item(op, t)
	if err != nil {
		return err
	}
	return j.m.check(op, name, j.m.seed.PointObj().SetConstraint(name, constraint, code, replace))
}

func (j *Joints) GUID(name string) (string, error) {
	guid, ret := j.m.seed.PointObj().GetGUID(name)
	if err := j.m.check("PointObj.GetGUID", name, ret); err != nil {
		return "", err
	}
	return guid, nil
}

// SetGUID sets a joint's GUID; an empty guid asks the host to generate one.
func (j *Joints) SetGUID(name, guid string) error {
	return j.m.check("PointObj.SetGUID", name, j.m.seed.PointObj().SetGUID(name, guid))
}

// Groups lists the groups a joint belongs to.
func (j *Joints) Groups(name string) ([]string, error) {
	const op = "PointObj.GetGroupAssign"
	n, groups, ret := j.m.seed.PointObj().GetGroupAssign(name)
	if err := j.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(groups)); err != nil {
		return nil, err
	}
	return groups, nil
}

// SetGroup adds joints to a group, or removes them with remove.
func (j *Joints) SetGroup(name, group string, remove bool, t ItemType) error {
	const op = "PointObj.SetGroupAssign"
	code, err := j.item(op, t)
	if err != nil {
		return err
	}
	return j.m.check(op, name, j.m.seed.PointObj().SetGroupAssign(name, group, remove, code))
}

func (j *Joints) LoadForce(name string, t ItemType) ([]JointLoad, error) {
	const op = "PointObj.GetLoadForce"
	code, err := j.item(op, t)
	if err != nil {
		return nil, err
	}
	n, points, pats, steps, csys, f1, f2, f3, m1, m2, m3, ret := j.m.seed.PointObj().GetLoadForce(name, code)
	if err := j.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(points), len(pats), len(steps), len(csys),
		len(f1), len(f2), len(f3), len(m1), len(m2), len(m3)); err != nil {
		return nil, err
	}
	out := make([]JointLoad, n)
	for i := range out {
		out[i] = JointLoad{
			Point:   points[i],
			Pattern: pats[i],
			CSys:    csys[i],
			Loads:   Loads{F1: f1[i], F2: f2[i], F3: f3[i], M1: m1[i], M2: m2[i], M3: m3[i]},
		}
	}
	return out, nil
}

// SetLoadForce assigns a force. Without replace it adds to an existing
// force of the same pattern and coordinate system.
func (j *Joints) SetLoadForce(name, pattern string, loads Loads, replace bool, csys string, t ItemType) error {
	const op = "PointObj.SetLoadForce"
	code, err := j.item(op, t)
	if err != nil {
		return err
	}
	if pattern == "" {
		return apierr.Invalid(op, "load pattern is required")
	}
	if csys == "" {
		csys = GlobalCSys
	}
	return j.m.check(op, name, j.m.seed.PointObj().SetLoadForce(name, pattern, loads.values(), replace, csys, code))
}

func (j *Joints) ChangeName(name, newName string) error {
	return j.m.check("PointObj.ChangeName", name, j.m.seed.PointObj().ChangeName(name, newName))
}

func (j *Joints) Delete(name string, t ItemType) error {
	const op = "PointObj.Delete"
	code, err := j.item(op, t)
	if err != nil {
		return err
	}
	return j.m.check(op, name, j.m.seed.PointObj().Delete(name, code))
}
