package csi

// ComboItem is a case or combination included in a combination.
type ComboItem struct {
	Kind  ComboItemType
	Name  string
	Scale float64
}

// LoadCombinations wraps RespCombo.
type LoadCombinations struct{ m *Model }

func (c *LoadCombinations) Add(name string, t ComboType) error {
	const op = "RespCombo.Add"
	code, err := comboTypes.toCode(op, c.m.version, t)
	if err != nil {
		return err
	}
	return c.m.check(op, name, c.m.seed.RespCombo().Add(name, code))
}

func (c *LoadCombinations) Count() int {
	return c.m.seed.RespCombo().Count()
}

func (c *LoadCombinations) GetNameList() ([]string, error) {
	n, names, ret := c.m.seed.RespCombo().GetNameList()
	return c.m.nameList("RespCombo.GetNameList", n, names, ret)
}

func (c *LoadCombinations) Type(name string) (ComboType, error) {
	const op = "RespCombo.GetTypeOAPI"
	code, ret := c.m.seed.RespCombo().GetTypeOAPI(name)
	if err := c.m.check(op, name, ret); err != nil {
		return 0, err
	}
	return comboTypes.fromCode(op, code)
}

func (c *LoadCombinations) SetType(name string, t ComboType) error {
	const op = "RespCombo.SetTypeOAPI"
	code, err := comboTypes.toCode(op, c.m.version, t)
	if err != nil {
		return err
	}
	return c.m.check(op, name, c.m.seed.RespCombo().SetTypeOAPI(name, code))
}

// Items returns the cases and combinations of a combination.
func (c *LoadCombinations) Items(name string) ([]ComboItem, error) {
	const op = "RespCombo.GetCaseList"
	n, kinds, names, scales, ret := c.m.seed.RespCombo().GetCaseList(name)
	if err := c.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(kinds), len(names), len(scales)); err != nil {
		return nil, err
	}
	items := make([]ComboItem, n)
	for i := range items {
		kind, err := comboItemTypes.fromCode(op, kinds[i])
		if err != nil {
			return nil, err
		}
		items[i] = ComboItem{Kind: kind, Name: names[i], Scale: scales[i]}
	}
	return items, nil
}

// SetItem adds an item, or updates the scale of an existing one.
func (c *LoadCombinations) SetItem(name string, item ComboItem) error {
	const op = "RespCombo.SetCaseList"
	code, err := comboItemTypes.toCode(op, c.m.version, item.Kind)
	if err != nil {
		return err
	}
	return c.m.check(op, name, c.m.seed.RespCombo().SetCaseList(name, code, item.Name, item.Scale))
}

func (c *LoadCombinations) DeleteItem(name string, kind ComboItemType, itemName string) error {
	const op = "RespCombo.DeleteCase"
	code, err := comboItemTypes.toCode(op, c.m.version, kind)
	if err != nil {
		return err
	}
	return c.m.check(op, name, c.m.seed.RespCombo().DeleteCase(name, code, itemName))
}

func (c *LoadCombinations) ChangeName(name, newName string) error {
	return c.m.check("RespCombo.ChangeName", name, c.m.seed.RespCombo().ChangeName(name, newName))
}

func (c *LoadCombinations) Delete(name string) error {
	return c.m.check("RespCombo.Delete", name, c.m.seed.RespCombo().Delete(name))
}
