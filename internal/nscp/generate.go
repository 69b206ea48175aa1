package nscp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexiusacademia/csiapi/internal/csi"
)

// Options control Generate.
type Options struct {
	// Prefix names the combinations, e.g. "NSCP" gives NSCP1 ... NSCP7.
	Prefix string
	// Simplified uses the gravity-only combinations.
	Simplified bool
	// Replace deletes existing combinations of the same name first.
	Replace bool
	// DryRun computes the combinations without changing the model.
	DryRun bool
}

// Generated is a combination produced by Generate.
type Generated struct {
	Name        string
	Description string
	Items       []csi.ComboItem
}

// Generate defines a linear additive combination for every NSCP combination
// the model's load patterns can take part in. Each pattern is combined
// through the load case of the same name, which is added as a linear
// static case when missing. Combinations are skipped when their principal
// load or, for lateral combinations, every wind and earthquake load they
// name is missing, and when identical to an earlier one.
func Generate(m *csi.Model, opts Options) ([]Generated, error) {
	if opts.Prefix == "" {
		opts.Prefix = "NSCP"
	}

	patterns, err := m.LoadPatterns().GetNameList()
	if err != nil {
		return nil, err
	}
	kinds := map[string]LoadKind{}
	present := map[LoadKind]bool{}
	for _, p := range patterns {
		t, err := m.LoadPatterns().Type(p)
		if err != nil {
			return nil, err
		}
		if k, ok := KindOf(t); ok {
			kinds[p] = k
			present[k] = true
		}
	}
	if !present[Dead] {
		return nil, fmt.Errorf("no dead load pattern defined")
	}

	if !opts.DryRun {
		if err := ensureCases(m, patterns, kinds); err != nil {
			return nil, err
		}
	}

	table := LoadCombinations
	if opts.Simplified {
		table = SimplifiedCombinations
	}

	var out []Generated
	seen := map[string]bool{}
	for _, lc := range table {
		if !lc.applies(present) {
			continue
		}
		var items []csi.ComboItem
		for _, p := range patterns {
			k, ok := kinds[p]
			if !ok {
				continue
			}
			if f := lc.Factor(k); f != 0 {
				items = append(items, csi.ComboItem{Kind: csi.ComboItemCase, Name: p, Scale: f})
			}
		}
		key := signature(items)
		if len(items) == 0 || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Generated{Name: opts.Prefix + lc.ID, Description: lc.Description, Items: items})
	}

	if opts.DryRun {
		return out, nil
	}
	for _, g := range out {
		if err := define(m, g, opts.Replace); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func ensureCases(m *csi.Model, patterns []string, kinds map[string]LoadKind) error {
	cases, err := m.LoadCases().GetNameList(0)
	if err != nil {
		return err
	}
	for _, p := range patterns {
		if _, ok := kinds[p]; !ok || slices.Contains(cases, p) {
			continue
		}
		sl := m.LoadCases().StaticLinear()
		if err := sl.SetCase(p); err != nil {
			return fmt.Errorf("add case %q: %w", p, err)
		}
		if err := sl.SetLoads(p, []csi.CaseLoad{{Kind: csi.CaseLoadPattern, Name: p, Scale: 1}}); err != nil {
			return fmt.Errorf("add case %q: %w", p, err)
		}
	}
	return nil
}

func define(m *csi.Model, g Generated, replace bool) error {
	lc := m.LoadCombinations()
	if replace {
		names, err := lc.GetNameList()
		if err != nil {
			return err
		}
		if slices.Contains(names, g.Name) {
			if err := lc.Delete(g.Name); err != nil {
				return fmt.Errorf("replace combination %q: %w", g.Name, err)
			}
		}
	}
	if err := lc.Add(g.Name, csi.ComboLinearAdditive); err != nil {
		return fmt.Errorf("add combination %q: %w", g.Name, err)
	}
	for _, it := range g.Items {
		if err := lc.SetItem(g.Name, it); err != nil {
			return fmt.Errorf("combination %q: %w", g.Name, err)
		}
	}
	return nil
}

func signature(items []csi.ComboItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s*%g", it.Name, it.Scale)
	}
	return strings.Join(parts, "+")
}
