package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/spf13/cobra"
)

// kind is a named definition collection the list, rename and delete
// commands work on.
type kind struct {
	list   func(m *csi.Model) ([]string, error)
	detail func(m *csi.Model, name string) (string, error)
	rename func(m *csi.Model, name, newName string) error
	remove func(m *csi.Model, name string) error
}

var kinds = map[string]kind{
	"coordsys": {
		list: func(m *csi.Model) ([]string, error) { return m.CoordinateSystems().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			cs, err := m.CoordinateSystems().Get(name)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("origin (%g, %g, %g)", cs.X, cs.Y, cs.Z), nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.CoordinateSystems().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.CoordinateSystems().Delete(n) },
	},
	"constraints": {
		list: func(m *csi.Model) ([]string, error) { return m.Constraints().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			t, err := m.Constraints().Type(name)
			return t.String(), err
		},
		rename: func(m *csi.Model, n, nn string) error { return m.Constraints().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.Constraints().Delete(n) },
	},
	"functions": {
		list: func(m *csi.Model) ([]string, error) { return m.Functions().GetNameList(0) },
		detail: func(m *csi.Model, name string) (string, error) {
			t, err := m.Functions().Type(name)
			return t.String(), err
		},
		rename: func(m *csi.Model, n, nn string) error { return m.Functions().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.Functions().Delete(n) },
	},
	"patterns": {
		list: func(m *csi.Model) ([]string, error) { return m.LoadPatterns().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			t, err := m.LoadPatterns().Type(name)
			if err != nil {
				return "", err
			}
			sw, err := m.LoadPatterns().SelfWeight(name)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s, self weight %g", t, sw), nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.LoadPatterns().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.LoadPatterns().Delete(n) },
	},
	"cases": {
		list: func(m *csi.Model) ([]string, error) { return m.LoadCases().GetNameList(0) },
		detail: func(m *csi.Model, name string) (string, error) {
			info, err := m.LoadCases().Type(name)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s, design %s", info.Type, info.DesignType), nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.LoadCases().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.LoadCases().Delete(n) },
	},
	"combos": {
		list: func(m *csi.Model) ([]string, error) { return m.LoadCombinations().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			items, err := m.LoadCombinations().Items(name)
			if err != nil {
				return "", err
			}
			parts := make([]string, len(items))
			for i, it := range items {
				parts[i] = fmt.Sprintf("%g %s", it.Scale, it.Name)
			}
			return strings.Join(parts, " + "), nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.LoadCombinations().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.LoadCombinations().Delete(n) },
	},
	"groups": {
		list:   func(m *csi.Model) ([]string, error) { return m.Groups().GetNameList() },
		rename: func(m *csi.Model, n, nn string) error { return m.Groups().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.Groups().Delete(n) },
	},
	"masssources": {
		list: func(m *csi.Model) ([]string, error) { return m.MassSource().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			d, err := m.MassSource().Get(name)
			if err != nil {
				return "", err
			}
			if d.IsDefault {
				return "default", nil
			}
			return "", nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.MassSource().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.MassSource().Delete(n) },
	},
	"sectioncuts": {
		list: func(m *csi.Model) ([]string, error) { return m.SectionCuts().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			c, err := m.SectionCuts().Get(name)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("group %s, %s", c.Group, c.ResultType), nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.SectionCuts().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.SectionCuts().Delete(n) },
	},
	"joints": {
		list: func(m *csi.Model) ([]string, error) { return m.Joints().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			x, y, z, err := m.Joints().Coord(name, csi.GlobalCSys)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("(%g, %g, %g)", x, y, z), nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.Joints().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.Joints().Delete(n, csi.ItemObject) },
	},
	"frames": {
		list: func(m *csi.Model) ([]string, error) { return m.Frames().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			i, j, err := m.Frames().Points(name)
			if err != nil {
				return "", err
			}
			sec, err := m.Frames().Section(name)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s-%s, %s", i, j, sec), nil
		},
		rename: func(m *csi.Model, n, nn string) error { return m.Frames().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.Frames().Delete(n, csi.ItemObject) },
	},
	"materials": {
		list: func(m *csi.Model) ([]string, error) { return m.Properties().Materials().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			t, err := m.Properties().Materials().Type(name)
			return t.String(), err
		},
		rename: func(m *csi.Model, n, nn string) error { return m.Properties().Materials().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.Properties().Materials().Delete(n) },
	},
	"sections": {
		list: func(m *csi.Model) ([]string, error) { return m.Properties().FrameSections().GetNameList() },
		detail: func(m *csi.Model, name string) (string, error) {
			t, err := m.Properties().FrameSections().Type(name)
			return t.String(), err
		},
		rename: func(m *csi.Model, n, nn string) error { return m.Properties().FrameSections().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.Properties().FrameSections().Delete(n) },
	},
	"modifiers": {
		list:   func(m *csi.Model) ([]string, error) { return m.NamedAssigns().FrameModifiers().GetNameList() },
		rename: func(m *csi.Model, n, nn string) error { return m.NamedAssigns().FrameModifiers().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.NamedAssigns().FrameModifiers().Delete(n) },
	},
	"releases": {
		list:   func(m *csi.Model) ([]string, error) { return m.NamedAssigns().FrameReleases().GetNameList() },
		rename: func(m *csi.Model, n, nn string) error { return m.NamedAssigns().FrameReleases().ChangeName(n, nn) },
		remove: func(m *csi.Model, n string) error { return m.NamedAssigns().FrameReleases().Delete(n) },
	},
}

func kindNames() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[strings.ToLower(name)]
	if !ok {
		return kind{}, fmt.Errorf("unknown kind %q (want one of %s)", name, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

// completeKinds offers kind names for the first argument.
func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return kindNames(), cobra.ShellCompDirectiveNoFileComp
}
