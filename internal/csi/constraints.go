package csi

// Constraints wraps ConstraintDef.
type Constraints struct{ m *Model }

func (c *Constraints) Count() int {
	return c.m.seed.ConstraintDef().Count()
}

func (c *Constraints) GetNameList() ([]string, error) {
	n, names, ret := c.m.seed.ConstraintDef().GetNameList()
	return c.m.nameList("ConstraintDef.GetNameList", n, names, ret)
}

func (c *Constraints) Type(name string) (ConstraintType, error) {
	const op = "ConstraintDef.GetConstraintType"
	code, ret := c.m.seed.ConstraintDef().GetConstraintType(name)
	if err := c.m.check(op, name, ret); err != nil {
		return 0, err
	}
	return constraintTypes.fromCode(op, code)
}

func (c *Constraints) ChangeName(name, newName string) error {
	return c.m.check("ConstraintDef.ChangeName", name, c.m.seed.ConstraintDef().ChangeName(name, newName))
}

func (c *Constraints) Delete(name string) error {
	return c.m.check("ConstraintDef.Delete", name, c.m.seed.ConstraintDef().Delete(name))
}

// SetBody defines a body constraint on the given degrees of freedom.
func (c *Constraints) SetBody(name string, dof DOF, csys string) error {
	return c.m.check("ConstraintDef.SetBody", name, c.m.seed.ConstraintDef().SetBody(name, dof[:], csys))
}

func (c *Constraints) Body(name string) (DOF, string, error) {
	const op = "ConstraintDef.GetBody"
	v, csys, ret := c.m.seed.ConstraintDef().GetBody(name)
	return c.maskAndCSys(op, name, v, csys, ret)
}

func (c *Constraints) SetEqual(name string, dof DOF, csys string) error {
	return c.m.check("ConstraintDef.SetEqual", name, c.m.seed.ConstraintDef().SetEqual(name, dof[:], csys))
}

func (c *Constraints) Equal(name string) (DOF, string, error) {
	const op = "ConstraintDef.GetEqual"
	v, csys, ret := c.m.seed.ConstraintDef().GetEqual(name)
	return c.maskAndCSys(op, name, v, csys, ret)
}

func (c *Constraints) maskAndCSys(op, name string, v []bool, csys string, ret int) (DOF, string, error) {
	if err := c.m.check(op, name, ret); err != nil {
		return DOF{}, "", err
	}
	dof, err := dofFrom(op, v)
	if err != nil {
		return DOF{}, "", err
	}
	return dof, csys, nil
}

// SetLocal defines a local constraint; its degrees of freedom are in joint
// local axes.
func (c *Constraints) SetLocal(name string, dof DOF) error {
	return c.m.check("ConstraintDef.SetLocal", name, c.m.seed.ConstraintDef().SetLocal(name, dof[:]))
}

func (c *Constraints) Local(name string) (DOF, error) {
	const op = "ConstraintDef.GetLocal"
	v, ret := c.m.seed.ConstraintDef().GetLocal(name)
	if err := c.m.check(op, name, ret); err != nil {
		return DOF{}, err
	}
	return dofFrom(op, v)
}

// SetWeld defines a weld constraint joining points within tolerance.
func (c *Constraints) SetWeld(name string, dof DOF, tolerance float64, csys string) error {
	ret := c.m.seed.ConstraintDef().SetWeld(name, dof[:], tolerance, csys)
	return c.m.check("ConstraintDef.SetWeld", name, ret)
}

func (c *Constraints) Weld(name string) (DOF, float64, string, error) {
	const op = "ConstraintDef.GetWeld"
	v, tol, csys, ret := c.m.seed.ConstraintDef().GetWeld(name)
	if err := c.m.check(op, name, ret); err != nil {
		return DOF{}, 0, "", err
	}
	dof, err := dofFrom(op, v)
	if err != nil {
		return DOF{}, 0, "", err
	}
	return dof, tol, csys, nil
}

func (c *Constraints) SetDiaphragm(name string, axis ConstraintAxis, csys string) error {
	return c.setAxis("ConstraintDef.SetDiaphragm", name, axis, csys, c.m.seed.ConstraintDef().SetDiaphragm)
}

func (c *Constraints) Diaphragm(name string) (ConstraintAxis, string, error) {
	return c.axis("ConstraintDef.GetDiaphragm", name, c.m.seed.ConstraintDef().GetDiaphragm)
}

func (c *Constraints) SetPlate(name string, axis ConstraintAxis, csys string) error {
	return c.setAxis("ConstraintDef.SetPlate", name, axis, csys, c.m.seed.ConstraintDef().SetPlate)
}

func (c *Constraints) Plate(name string) (ConstraintAxis, string, error) {
	return c.axis("ConstraintDef.GetPlate", name, c.m.seed.ConstraintDef().GetPlate)
}

func (c *Constraints) SetRod(name string, axis ConstraintAxis, csys string) error {
	return c.setAxis("ConstraintDef.SetRod", name, axis, csys, c.m.seed.ConstraintDef().SetRod)
}

func (c *Constraints) Rod(name string) (ConstraintAxis, string, error) {
	return c.axis("ConstraintDef.GetRod", name, c.m.seed.ConstraintDef().GetRod)
}

func (c *Constraints) SetBeam(name string, axis ConstraintAxis, csys string) error {
	return c.setAxis("ConstraintDef.SetBeam", name, axis, csys, c.m.seed.ConstraintDef().SetBeam)
}

func (c *Constraints) Beam(name string) (ConstraintAxis, string, error) {
	return c.axis("ConstraintDef.GetBeam", name, c.m.seed.ConstraintDef().GetBeam)
}

func (c *Constraints) setAxis(op, name string, axis ConstraintAxis, csys string, set func(string, int, string) int) error {
	code, err := constraintAxes.toCode(op, c.m.version, axis)
	if err != nil {
		return err
	}
	return c.m.check(op, name, set(name, code, csys))
}

func (c *Constraints) axis(op, name string, get func(string) (int, string, int)) (ConstraintAxis, string, error) {
	code, csys, ret := get(name)
	if err := c.m.check(op, name, ret); err != nil {
		return 0, "", err
	}
	axis, err := constraintAxes.fromCode(op, code)
	if err != nil {
		return 0, "", err
	}
	return axis, csys, nil
}
