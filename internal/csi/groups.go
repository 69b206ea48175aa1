package csi

import (
	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/alexiusacademia/csiapi/internal/seed"
)

// GroupSettings are a group's display color and the uses it is specified
// for.
type GroupSettings struct {
	Color                int
	Selection            bool
	SectionCutDefinition bool
	SteelDesign          bool
	ConcreteDesign       bool
	AluminumDesign       bool
	ColdFormedDesign     bool
	StaticNLActiveStage  bool
	BridgeResponseOutput bool
	AutoSeismicOutput    bool
	AutoWindOutput       bool
	MassAndWeight        bool
}

func (g GroupSettings) flags() []bool {
	return []bool{
		g.Selection, g.SectionCutDefinition, g.SteelDesign, g.ConcreteDesign,
		g.AluminumDesign, g.ColdFormedDesign, g.StaticNLActiveStage,
		g.BridgeResponseOutput, g.AutoSeismicOutput, g.AutoWindOutput, g.MassAndWeight,
	}
}

// AllUses returns settings specified for every use.
func AllUses(color int) GroupSettings {
	return GroupSettings{
		Color: color, Selection: true, SectionCutDefinition: true, SteelDesign: true,
		ConcreteDesign: true, AluminumDesign: true, ColdFormedDesign: true,
		StaticNLActiveStage: true, BridgeResponseOutput: true, AutoSeismicOutput: true,
		AutoWindOutput: true, MassAndWeight: true,
	}
}

// ObjectRef names a group member.
type ObjectRef struct {
	Type ObjectType
	Name string
}

// Groups wraps GroupDef.
type Groups struct{ m *Model }

func (g *Groups) Count() int {
	return g.m.seed.GroupDef().Count()
}

func (g *Groups) GetNameList() ([]string, error) {
	n, names, ret := g.m.seed.GroupDef().GetNameList()
	return g.m.nameList("GroupDef.GetNameList", n, names, ret)
}

func (g *Groups) Get(name string) (GroupSettings, error) {
	const op = "GroupDef.GetGroup"
	color, f, ret := g.m.seed.GroupDef().GetGroup(name)
	if err := g.m.check(op, name, ret); err != nil {
		return GroupSettings{}, err
	}
	if err := sameLen(op, seed.GroupFlagCount, len(f)); err != nil {
		return GroupSettings{}, err
	}
	return GroupSettings{
		Color: color, Selection: f[0], SectionCutDefinition: f[1], SteelDesign: f[2],
		ConcreteDesign: f[3], AluminumDesign: f[4], ColdFormedDesign: f[5],
		StaticNLActiveStage: f[6], BridgeResponseOutput: f[7], AutoSeismicOutput: f[8],
		AutoWindOutput: f[9], MassAndWeight: f[10],
	}, nil
}

// Set adds or redefines a group.
func (g *Groups) Set(name string, s GroupSettings) error {
	return g.m.check("GroupDef.SetGroup", name, g.m.seed.GroupDef().SetGroup(name, s.Color, s.flags()))
}

// Assignments lists the objects in a group.
func (g *Groups) Assignments(name string) ([]ObjectRef, error) {
	const op = "GroupDef.GetAssignments"
	n, types, names, ret := g.m.seed.GroupDef().GetAssignments(name)
	if err := g.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(types), len(names)); err != nil {
		return nil, err
	}
	refs := make([]ObjectRef, n)
	for i := range refs {
		t, err := objectTypes.fromCode(op, types[i])
		if err != nil {
			return nil, err
		}
		refs[i] = ObjectRef{Type: t, Name: names[i]}
	}
	return refs, nil
}

// Clear removes every object from a group.
func (g *Groups) Clear(name string) error {
	const op = "GroupDef.Clear"
	if isReserved(name, AllGroup) {
		return apierr.Reserved(op, "group", name)
	}
	return g.m.check(op, name, g.m.seed.GroupDef().Clear(name))
}

func (g *Groups) ChangeName(name, newName string) error {
	const op = "GroupDef.ChangeName"
	if isReserved(name, AllGroup) {
		return apierr.Reserved(op, "group", name)
	}
	return g.m.check(op, name, g.m.seed.GroupDef().ChangeName(name, newName))
}

func (g *Groups) Delete(name string) error {
	const op = "GroupDef.Delete"
	if isReserved(name, AllGroup) {
		return apierr.Reserved(op, "group", name)
	}
	return g.m.check(op, name, g.m.seed.GroupDef().Delete(name))
}
