package modeldef

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/nscp"
)

// Apply defines everything in d on m. Entities are applied in dependency
// order and the first failure stops the run; entities applied before it
// stay in the model.
func Apply(m *csi.Model, d *Definition) error {
	if d.Units != "" {
		u, err := csi.ParseUnits(d.Units)
		if err != nil {
			return err
		}
		if err := m.SetUnits(u); err != nil {
			return fmt.Errorf("units %q: %w", d.Units, err)
		}
	}
	units, err := m.Units()
	if err != nil {
		return err
	}

	a := applier{m: m, units: units, joints: map[string]string{}}
	steps := []func(*Definition) error{
		a.coordSystems,
		a.materials,
		a.sections,
		a.patterns,
		a.functions,
		a.cases,
		a.combos,
		a.groups,
		a.constraints,
		a.massSources,
		a.jointObjects,
		a.frameObjects,
		a.modifiers,
		a.releases,
		a.sectionCuts,
	}
	for _, step := range steps {
		if err := step(d); err != nil {
			return err
		}
	}
	return nil
}

type applier struct {
	m     *csi.Model
	units csi.Units
	// joints maps definition joint names to the names the host gave them.
	joints map[string]string
}

func wrap(kind, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %q: %w", kind, name, err)
}

func (a *applier) coordSystems(d *Definition) error {
	for _, c := range d.CoordinateSystems {
		cs := csi.CoordSys{X: c.X, Y: c.Y, Z: c.Z, RZ: c.RZ, RY: c.RY, RX: c.RX}
		if err := a.m.CoordinateSystems().Set(c.Name, cs); err != nil {
			return wrap("coordinate system", c.Name, err)
		}
	}
	return nil
}

func (a *applier) materials(d *Definition) error {
	mats := a.m.Properties().Materials()
	for _, mat := range d.Materials {
		if err := a.material(mats, mat); err != nil {
			return wrap("material", mat.Name, err)
		}
	}
	return nil
}

func (a *applier) material(mats *csi.Materials, mat Material) error {
	t, err := csi.ParseMaterialType(mat.Type)
	if err != nil {
		return err
	}
	if err := mats.Add(mat.Name, t); err != nil {
		return err
	}

	iso := csi.Isotropic{E: mat.E, U: mat.U, A: mat.A}
	var code csi.Isotropic
	switch {
	case t == csi.MaterialConcrete && mat.Fc > 0:
		code = inUnits(nscp.Concrete(mat.Fc), a.units)
	case t == csi.MaterialSteel || t == csi.MaterialRebar:
		code = inUnits(nscp.Steel(), a.units)
	}
	if iso.E == 0 {
		iso.E = code.E
	}
	if iso.U == 0 {
		iso.U = code.U
	}
	if iso.A == 0 {
		iso.A = code.A
	}
	if iso.E != 0 {
		if err := mats.SetIsotropic(mat.Name, iso); err != nil {
			return err
		}
	}
	if mat.Weight != 0 {
		return mats.SetWeight(mat.Name, mat.Weight)
	}
	return nil
}

func (a *applier) sections(d *Definition) error {
	secs := a.m.Properties().FrameSections()
	for _, s := range d.Sections {
		var err error
		if g := s.General; g != nil {
			err = secs.SetGeneral(s.Name, s.Material, csi.GeneralSection{
				T3: g.T3, T2: g.T2, Area: g.Area, As2: g.As2, As3: g.As3, Torsion: g.Torsion,
				I22: g.I22, I33: g.I33, S22: g.S22, S33: g.S33,
				Z22: g.Z22, Z33: g.Z33, R22: g.R22, R33: g.R33,
			})
		} else {
			err = secs.SetRectangle(s.Name, csi.Rectangle{Material: s.Material, Depth: s.Depth, Width: s.Width})
		}
		if err != nil {
			return wrap("section", s.Name, err)
		}
	}
	return nil
}

// patterns adds load patterns. A pattern that already exists, such as the
// DEAD pattern of a blank model, is updated instead.
func (a *applier) patterns(d *Definition) error {
	lp := a.m.LoadPatterns()
	existing, err := lp.GetNameList()
	if err != nil {
		return err
	}
	for _, p := range d.Patterns {
		t, err := csi.ParsePatternType(p.Type)
		if err != nil {
			return wrap("pattern", p.Name, err)
		}
		if slices.Contains(existing, p.Name) {
			if err := lp.SetType(p.Name, t); err != nil {
				return wrap("pattern", p.Name, err)
			}
			err = lp.SetSelfWeight(p.Name, p.SelfWeight)
		} else {
			err = lp.Add(p.Name, t, p.SelfWeight, p.AddCase)
		}
		if err != nil {
			return wrap("pattern", p.Name, err)
		}
	}
	return nil
}

func (a *applier) functions(d *Definition) error {
	fns := a.m.Functions()
	for _, f := range d.Functions {
		t, err := csi.ParseFunctionType(f.Type)
		if err != nil {
			return wrap("function", f.Name, err)
		}
		pts := make([]csi.FunctionPoint, len(f.Points))
		for i, p := range f.Points {
			pts[i] = csi.FunctionPoint{X: p[0], Value: p[1]}
		}
		switch t {
		case csi.FunctionTimeHistory:
			err = fns.TimeHistory().SetUser(f.Name, pts)
		case csi.FunctionResponseSpectrum:
			damping := f.Damping
			if damping == 0 {
				damping = 0.05
			}
			err = fns.ResponseSpectrum().SetUser(f.Name, pts, damping)
		default:
			err = apierr.Invalid("Apply", "%s functions cannot be defined from a file", t)
		}
		if err != nil {
			return wrap("function", f.Name, err)
		}
	}
	return nil
}

func (a *applier) cases(d *Definition) error {
	for _, c := range d.Cases {
		if err := a.loadCase(c); err != nil {
			return wrap("case", c.Name, err)
		}
	}
	return nil
}

func (a *applier) loadCase(c Case) error {
	t, err := csi.ParseCaseType(c.Type)
	if err != nil {
		return err
	}
	lc := a.m.LoadCases()
	switch t {
	case csi.CaseLinearStatic, csi.CaseNonlinearStatic:
		sc := lc.StaticLinear()
		if t == csi.CaseNonlinearStatic {
			sc = lc.StaticNonlinear()
		}
		if err := sc.SetCase(c.Name); err != nil {
			return err
		}
		loads := make([]csi.CaseLoad, len(c.Loads))
		for i, l := range c.Loads {
			kind := csi.CaseLoadPattern
			if strings.EqualFold(l.Kind, string(csi.CaseLoadAccel)) {
				kind = csi.CaseLoadAccel
			} else if l.Kind != "" && !strings.EqualFold(l.Kind, string(csi.CaseLoadPattern)) {
				return apierr.Invalid("Apply", "load %d: unknown kind %q", i, l.Kind)
			}
			loads[i] = csi.CaseLoad{Kind: kind, Name: l.Name, Scale: l.Scale}
		}
		if len(loads) == 0 {
			return nil
		}
		return sc.SetLoads(c.Name, loads)
	case csi.CaseModal:
		me := lc.ModalEigen()
		if err := me.SetCase(c.Name); err != nil {
			return err
		}
		if c.MaxModes == 0 {
			return nil
		}
		minModes := c.MinModes
		if minModes == 0 {
			minModes = 1
		}
		return me.SetNumberModes(c.Name, c.MaxModes, minModes)
	case csi.CaseResponseSpectrum:
		rs := lc.ResponseSpectrum()
		if err := rs.SetCase(c.Name); err != nil {
			return err
		}
		loads := make([]csi.SpectrumLoad, len(c.Spectrum))
		for i, l := range c.Spectrum {
			csys := l.CSys
			if csys == "" {
				csys = csi.GlobalCSys
			}
			loads[i] = csi.SpectrumLoad{Direction: l.Direction, Function: l.Function, Scale: l.Scale, CSys: csys, Angle: l.Angle}
		}
		if len(loads) == 0 {
			return nil
		}
		return rs.SetLoads(c.Name, loads)
	}
	return apierr.Invalid("Apply", "%s cases cannot be defined from a file", t)
}

func (a *applier) combos(d *Definition) error {
	lc := a.m.LoadCombinations()
	for _, c := range d.Combos {
		t := csi.ComboLinearAdditive
		if c.Type != "" {
			var err error
			if t, err = csi.ParseComboType(c.Type); err != nil {
				return wrap("combination", c.Name, err)
			}
		}
		if err := lc.Add(c.Name, t); err != nil {
			return wrap("combination", c.Name, err)
		}
		for _, it := range c.Items {
			kind := csi.ComboItemCase
			if it.Kind != "" {
				var err error
				if kind, err = csi.ParseComboItemType(it.Kind); err != nil {
					return wrap("combination", c.Name, err)
				}
			}
			if err := lc.SetItem(c.Name, csi.ComboItem{Kind: kind, Name: it.Name, Scale: it.Scale}); err != nil {
				return wrap("combination", c.Name, err)
			}
		}
	}
	return nil
}

func (a *applier) groups(d *Definition) error {
	for _, g := range d.Groups {
		if err := a.m.Groups().Set(g.Name, csi.AllUses(g.Color)); err != nil {
			return wrap("group", g.Name, err)
		}
	}
	return nil
}

func (a *applier) constraints(d *Definition) error {
	for _, c := range d.Constraints {
		if err := a.constraint(c); err != nil {
			return wrap("constraint", c.Name, err)
		}
	}
	return nil
}

func (a *applier) constraint(c Constraint) error {
	t, err := csi.ParseConstraintType(c.Type)
	if err != nil {
		return err
	}
	csys := c.CSys
	if csys == "" {
		csys = csi.GlobalCSys
	}
	cons := a.m.Constraints()
	switch t {
	case csi.ConstraintBody, csi.ConstraintEqual, csi.ConstraintLocal, csi.ConstraintWeld:
		dof, err := parseDOF(c.DOF, jointDOF)
		if err != nil {
			return err
		}
		switch t {
		case csi.ConstraintBody:
			return cons.SetBody(c.Name, dof, csys)
		case csi.ConstraintEqual:
			return cons.SetEqual(c.Name, dof, csys)
		case csi.ConstraintLocal:
			return cons.SetLocal(c.Name, dof)
		}
		return cons.SetWeld(c.Name, dof, c.Tolerance, csys)
	case csi.ConstraintDiaphragm, csi.ConstraintPlate, csi.ConstraintRod, csi.ConstraintBeam:
		axis := csi.AxisAuto
		if c.Axis != "" {
			if axis, err = csi.ParseConstraintAxis(c.Axis); err != nil {
				return err
			}
		}
		switch t {
		case csi.ConstraintDiaphragm:
			return cons.SetDiaphragm(c.Name, axis, csys)
		case csi.ConstraintPlate:
			return cons.SetPlate(c.Name, axis, csys)
		case csi.ConstraintRod:
			return cons.SetRod(c.Name, axis, csys)
		}
		return cons.SetBeam(c.Name, axis, csys)
	}
	return apierr.Invalid("Apply", "%s constraints cannot be defined from a file", t)
}

func (a *applier) massSources(d *Definition) error {
	for _, s := range d.MassSources {
		def := csi.MassSourceDef{
			FromElements: s.Elements,
			FromMasses:   s.Masses,
			FromLoads:    len(s.Loads) > 0,
			IsDefault:    s.Default,
		}
		for _, l := range s.Loads {
			def.Loads = append(def.Loads, csi.MassLoad{Pattern: l.Pattern, Scale: l.Scale})
		}
		if err := a.m.MassSource().Set(s.Name, def); err != nil {
			return wrap("mass source", s.Name, err)
		}
	}
	return nil
}

func (a *applier) jointObjects(d *Definition) error {
	for _, j := range d.Joints {
		if err := a.joint(j); err != nil {
			return wrap("joint", j.Name, err)
		}
	}
	return nil
}

func (a *applier) joint(j Joint) error {
	joints := a.m.Joints()
	name, err := joints.AddCartesian(j.X, j.Y, j.Z, j.Name, j.CSys)
	if err != nil {
		return err
	}
	if j.Name != "" {
		a.joints[j.Name] = name
	}

	if len(j.Restraint) > 0 {
		dof, err := parseRestraint(j.Restraint)
		if err != nil {
			return err
		}
		if err := joints.SetRestraint(name, dof, csi.ItemObject); err != nil {
			return err
		}
	}
	for _, c := range j.Constraints {
		if err := joints.SetConstraint(name, c, csi.ItemObject, false); err != nil {
			return err
		}
	}
	for _, g := range j.Groups {
		if err := joints.SetGroup(name, g, false, csi.ItemObject); err != nil {
			return err
		}
	}
	for _, l := range j.Loads {
		v := l.Values
		loads := csi.Loads{F1: v[0], F2: v[1], F3: v[2], M1: v[3], M2: v[4], M3: v[5]}
		csys := l.CSys
		if csys == "" {
			csys = csi.GlobalCSys
		}
		if err := joints.SetLoadForce(name, l.Pattern, loads, false, csys, csi.ItemObject); err != nil {
			return err
		}
	}
	return nil
}

// jointName resolves a joint named in the definition.
func (a *applier) jointName(name string) string {
	if n, ok := a.joints[name]; ok {
		return n
	}
	return name
}

func (a *applier) frameObjects(d *Definition) error {
	frames := a.m.Frames()
	for _, f := range d.Frames {
		name, err := frames.AddByPoint(a.jointName(f.I), a.jointName(f.J), f.Section, f.Name)
		if err != nil {
			return wrap("frame", f.Name, err)
		}
		for _, g := range f.Groups {
			if err := frames.SetGroup(name, g, false, csi.ItemObject); err != nil {
				return wrap("frame", f.Name, err)
			}
		}
	}
	return nil
}

func (a *applier) modifiers(d *Definition) error {
	for _, mod := range d.Modifiers {
		f := csi.Unmodified
		for _, v := range []struct {
			src *float64
			dst *float64
		}{
			{mod.Area, &f.Area}, {mod.As2, &f.As2}, {mod.As3, &f.As3}, {mod.Torsion, &f.Torsion},
			{mod.I22, &f.I22}, {mod.I33, &f.I33}, {mod.Mass, &f.Mass}, {mod.Weight, &f.Weight},
		} {
			if v.src != nil {
				*v.dst = *v.src
			}
		}
		if err := a.m.NamedAssigns().FrameModifiers().Set(mod.Name, f); err != nil {
			return wrap("modifiers", mod.Name, err)
		}
	}
	return nil
}

func (a *applier) releases(d *Definition) error {
	for _, r := range d.Releases {
		i, err := parseDOF(r.I, frameDOF)
		if err != nil {
			return wrap("releases", r.Name, err)
		}
		j, err := parseDOF(r.J, frameDOF)
		if err != nil {
			return wrap("releases", r.Name, err)
		}
		if err := a.m.NamedAssigns().FrameReleases().Set(r.Name, csi.FrameRelease{I: i, J: j}); err != nil {
			return wrap("releases", r.Name, err)
		}
	}
	return nil
}

func (a *applier) sectionCuts(d *Definition) error {
	for _, c := range d.SectionCuts {
		t := csi.CutAnalysis
		if c.Type != "" {
			var err error
			if t, err = csi.ParseCutResultType(c.Type); err != nil {
				return wrap("section cut", c.Name, err)
			}
		}
		if err := a.m.SectionCuts().AddByGroup(c.Name, c.Group, t); err != nil {
			return wrap("section cut", c.Name, err)
		}
	}
	return nil
}

var (
	jointDOF = []string{"U1", "U2", "U3", "R1", "R2", "R3"}
	frameDOF = []string{"P", "V2", "V3", "T", "M2", "M3"}
)

func parseDOF(list []string, names []string) (csi.DOF, error) {
	var dof csi.DOF
	for _, s := range list {
		i := slices.IndexFunc(names, func(n string) bool { return strings.EqualFold(n, s) })
		if i < 0 {
			return dof, apierr.Invalid("Apply", "unknown degree of freedom %q, want one of %s", s, strings.Join(names, ", "))
		}
		dof[i] = true
	}
	return dof, nil
}

func parseRestraint(list []string) (csi.DOF, error) {
	if len(list) == 1 {
		switch strings.ToLower(list[0]) {
		case "fixed":
			return csi.Fixed, nil
		case "pinned":
			return csi.Pinned, nil
		}
	}
	return parseDOF(list, jointDOF)
}
