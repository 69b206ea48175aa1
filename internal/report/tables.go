// Package report moves analysis results between models and files: host
// result tables exported to Excel are read into offline models, and
// results read from any model are written back to Excel or summarized in a
// PDF.
package report

import (
	"fmt"

	"github.com/alexiusacademia/csiapi/internal/csi"
)

// Tables holds every result table of a model for the selected cases and
// combinations.
type Tables struct {
	JointDispl  []csi.JointDisplRow
	JointReact  []csi.JointReactRow
	JointMass   []csi.JointMassRow
	FrameForce  []csi.FrameForceRow
	BaseReact   []csi.BaseReactRow
	ModalPeriod []csi.ModalPeriodRow
	ShellStress []csi.ShellStressRow
	SectionCut  []csi.SectionCutRow
}

// Collect reads every result table for all objects of m. The output
// selection is left as the caller set it.
func Collect(m *csi.Model) (*Tables, error) {
	r := m.Results()
	var t Tables
	var err error
	if t.JointDispl, err = r.JointDispl(csi.AllGroup, csi.ElmGroup); err != nil {
		return nil, fmt.Errorf("joint displacements: %w", err)
	}
	if t.JointReact, err = r.JointReact(csi.AllGroup, csi.ElmGroup); err != nil {
		return nil, fmt.Errorf("joint reactions: %w", err)
	}
	if t.JointMass, err = r.AssembledJointMass(csi.AllGroup, csi.ElmGroup); err != nil {
		return nil, fmt.Errorf("joint masses: %w", err)
	}
	if t.FrameForce, err = r.FrameForce(csi.AllGroup, csi.ElmGroup); err != nil {
		return nil, fmt.Errorf("frame forces: %w", err)
	}
	if t.BaseReact, err = r.BaseReact(); err != nil {
		return nil, fmt.Errorf("base reactions: %w", err)
	}
	if t.ModalPeriod, err = r.ModalPeriod(); err != nil {
		return nil, fmt.Errorf("modal periods: %w", err)
	}
	if t.ShellStress, err = r.AreaStressShell(csi.AllGroup, csi.ElmGroup); err != nil {
		return nil, fmt.Errorf("shell stresses: %w", err)
	}
	if t.SectionCut, err = r.SectionCutAnalysis(); err != nil {
		return nil, fmt.Errorf("section cut forces: %w", err)
	}
	return &t, nil
}

// SelectAll selects every load case and combination of m for output.
func SelectAll(m *csi.Model) error {
	setup := m.Results().Setup()
	if err := setup.DeselectAll(); err != nil {
		return err
	}
	cases, err := m.LoadCases().GetNameList(0)
	if err != nil {
		return err
	}
	for _, c := range cases {
		if err := setup.SelectCase(c, true); err != nil {
			return err
		}
	}
	combos, err := m.LoadCombinations().GetNameList()
	if err != nil {
		return err
	}
	for _, c := range combos {
		if err := setup.SelectCombo(c, true); err != nil {
			return err
		}
	}
	return nil
}
