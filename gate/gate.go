// Package gate decides which settings are active given the choice made on a parent setting.
package gate

import (
	"sort"

	"gfxmanager/catalog"
)

// Shape is the kind of switch a parent setting is
type Shape int

const (
	// Switch enables all dependents on index 1 and disables them otherwise
	Switch Shape = iota
	// Split enables the normal dependents on index 1, the D3D9 dependents on
	// index 2 and nothing otherwise
	Split
)

// Rule ties a parent setting to the settings it controls
type Rule struct {
	Name   string
	Parent catalog.ID
	Shape  Shape
	Normal []catalog.ID
	D3D9   []catalog.ID
}

// Dependents returns every setting the rule controls
func (r Rule) Dependents() []catalog.ID {
	out := make([]catalog.ID, 0, len(r.Normal)+len(r.D3D9))
	out = append(out, r.Normal...)
	return append(out, r.D3D9...)
}

// Effect lists the settings that become active and inactive after a parent change
type Effect struct {
	Enable  []catalog.ID
	Disable []catalog.ID
}

// Machine evaluates parent changes. It holds no selection state.
type Machine struct {
	rules  map[catalog.ID]Rule
	parent map[catalog.ID]catalog.ID
}

// DefaultRules returns the dependency table of the settings catalog
func DefaultRules() []Rule {
	return []Rule{
		{Name: "FXAA", Parent: catalog.FXAAEnable, Shape: Switch,
			Normal: []catalog.ID{catalog.FXAAQualitySubpixel, catalog.FXAAQualityEdge, catalog.FXAAEdgeThreshold}},
		{Name: "SMAA", Parent: catalog.SMAAEnable, Shape: Switch,
			Normal: []catalog.ID{catalog.SMAAEdgeDetection, catalog.SMAAThreshold, catalog.SMAASearchSteps,
				catalog.SMAASearchStepsDiagonal, catalog.SMAACornerRounding}},
		{Name: "AF", Parent: catalog.AFEnable, Shape: Split,
			Normal: []catalog.ID{catalog.AFLevel},
			D3D9:   []catalog.ID{catalog.AFLevelD3D9}},
		{Name: "LOD", Parent: catalog.LODEnable, Shape: Split,
			Normal: []catalog.ID{catalog.LODBias, catalog.ClampNegativeLOD},
			D3D9:   []catalog.ID{catalog.LODBiasD3D9, catalog.ClampNegativeLODD3D9}},
		{Name: "CAS", Parent: catalog.CASEnable, Shape: Switch,
			Normal: []catalog.ID{catalog.CASLevel}},
		{Name: "DLS", Parent: catalog.DLSEnable, Shape: Switch,
			Normal: []catalog.ID{catalog.DLSSharpness, catalog.DLSDenoise}},
		{Name: "VSync", Parent: catalog.VSyncEnable, Shape: Split,
			Normal: []catalog.ID{catalog.VSyncLevel},
			D3D9:   []catalog.ID{catalog.VSyncLevelD3D9}},
		{Name: "FrameLimit", Parent: catalog.FrameLimitEnable, Shape: Split,
			Normal: []catalog.ID{catalog.FrameLimitLevel},
			D3D9:   []catalog.ID{catalog.FrameLimitLevelD3D9}},
	}
}

// New creates a machine over the given rules, or DefaultRules when none are given
func New(rules ...Rule) *Machine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	m := &Machine{
		rules:  make(map[catalog.ID]Rule, len(rules)),
		parent: make(map[catalog.ID]catalog.ID),
	}
	for _, r := range rules {
		m.rules[r.Parent] = r
		for _, id := range r.Dependents() {
			m.parent[id] = r.Parent
		}
	}
	return m
}

// Evaluate returns the effect of selecting index on parent.
// The second result is false when parent controls nothing.
func (m *Machine) Evaluate(parent catalog.ID, index int) (Effect, bool) {
	r, ok := m.rules[parent]
	if !ok {
		return Effect{}, false
	}

	switch r.Shape {
	case Split:
		switch index {
		case 1:
			return Effect{Enable: clone(r.Normal), Disable: clone(r.D3D9)}, true
		case 2:
			return Effect{Enable: clone(r.D3D9), Disable: clone(r.Normal)}, true
		}
	default:
		if index == 1 {
			return Effect{Enable: r.Dependents()}, true
		}
	}
	return Effect{Disable: r.Dependents()}, true
}

// IsParent reports whether id controls other settings
func (m *Machine) IsParent(id catalog.ID) bool {
	_, ok := m.rules[id]
	return ok
}

// ParentOf returns the setting controlling id
func (m *Machine) ParentOf(id catalog.ID) (catalog.ID, bool) {
	p, ok := m.parent[id]
	return p, ok
}

// Rule returns the rule for parent
func (m *Machine) Rule(parent catalog.ID) (Rule, bool) {
	r, ok := m.rules[parent]
	return r, ok
}

// Rules returns every rule ordered by parent id
func (m *Machine) Rules() []Rule {
	out := make([]Rule, 0, len(m.rules))
	for _, r := range m.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Parent < out[j].Parent })
	return out
}

// Dependents returns every controlled setting in id order
func (m *Machine) Dependents() []catalog.ID {
	out := make([]catalog.ID, 0, len(m.parent))
	for id := range m.parent {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func clone(ids []catalog.ID) []catalog.ID {
	return append([]catalog.ID(nil), ids...)
}
