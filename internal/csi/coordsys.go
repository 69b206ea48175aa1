package csi

import "github.com/alexiusacademia/csiapi/internal/apierr"

// CoordSys is a coordinate system origin and its rotations in degrees
// about Z, then Y, then X.
type CoordSys struct {
	X, Y, Z    float64
	RZ, RY, RX float64
}

// CoordinateSystems wraps CoordSys.
type CoordinateSystems struct{ m *Model }

func (c *CoordinateSystems) Count() int {
	return c.m.seed.CoordSys().Count()
}

func (c *CoordinateSystems) GetNameList() ([]string, error) {
	n, names, ret := c.m.seed.CoordSys().GetNameList()
	return c.m.nameList("CoordSys.GetNameList", n, names, ret)
}

func (c *CoordinateSystems) Get(name string) (CoordSys, error) {
	x, y, z, rz, ry, rx, ret := c.m.seed.CoordSys().GetCoordSys(name)
	if err := c.m.check("CoordSys.GetCoordSys", name, ret); err != nil {
		return CoordSys{}, err
	}
	return CoordSys{X: x, Y: y, Z: z, RZ: rz, RY: ry, RX: rx}, nil
}

// Set adds or redefines a coordinate system.
func (c *CoordinateSystems) Set(name string, cs CoordSys) error {
	ret := c.m.seed.CoordSys().SetCoordSys(name, cs.X, cs.Y, cs.Z, cs.RZ, cs.RY, cs.RX)
	return c.m.check("CoordSys.SetCoordSys", name, ret)
}

func (c *CoordinateSystems) ChangeName(name, newName string) error {
	const op = "CoordSys.ChangeName"
	if isReserved(name, GlobalCSys) {
		return apierr.Reserved(op, "coordinate system", name)
	}
	return c.m.check(op, name, c.m.seed.CoordSys().ChangeName(name, newName))
}

func (c *CoordinateSystems) Delete(name string) error {
	const op = "CoordSys.Delete"
	if isReserved(name, GlobalCSys) {
		return apierr.Reserved(op, "coordinate system", name)
	}
	return c.m.check(op, name, c.m.seed.CoordSys().Delete(name))
}

// TransformationMatrix returns the row-major direction cosines from local
// to global axes.
func (c *CoordinateSystems) TransformationMatrix(name string) ([9]float64, error) {
	const op = "CoordSys.GetTransformationMatrix"
	var out [9]float64
	values, ret := c.m.seed.CoordSys().GetTransformationMatrix(name)
	if err := c.m.check(op, name, ret); err != nil {
		return out, err
	}
	if err := sameLen(op, len(out), len(values)); err != nil {
		return out, err
	}
	copy(out[:], values)
	return out, nil
}
