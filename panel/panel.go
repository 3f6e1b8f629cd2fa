// Package panel holds the selection state of the settings panel for one application.
package panel

import (
	"fmt"

	"gfxmanager/catalog"
	"gfxmanager/gate"
	"gfxmanager/models"
)

// Panel tracks the selected option and activation of every setting
type Panel struct {
	catalog *catalog.Catalog
	gates   *gate.Machine
	index   []int
	active  []bool
}

// New creates a panel with everything unset
func New(cat *catalog.Catalog, gates *gate.Machine) *Panel {
	p := &Panel{
		catalog: cat,
		gates:   gates,
		index:   make([]int, cat.Len()),
		active:  make([]bool, cat.Len()),
	}
	p.Reset()
	return p
}

// Reset clears every selection. Parents and ungated settings start active, dependents inactive.
func (p *Panel) Reset() {
	for i := range p.index {
		id := catalog.ID(i)
		p.index[i] = 0
		_, gated := p.gates.ParentOf(id)
		p.active[i] = !gated
	}
}

// Catalog returns the catalog the panel is built on
func (p *Panel) Catalog() *catalog.Catalog {
	return p.catalog
}

// Index returns the selected option of id
func (p *Panel) Index(id catalog.ID) int {
	return p.index[id]
}

// Active reports whether id can be changed
func (p *Panel) Active(id catalog.ID) bool {
	return p.active[id]
}

// Text returns the label of the selected option of id
func (p *Panel) Text(id catalog.ID) string {
	label, _ := p.catalog.Label(id, p.index[id])
	return label
}

// Select chooses option index for id and applies the gate effect when id is a parent.
// Settings that become inactive are reset to the unset option.
func (p *Panel) Select(id catalog.ID, index int) (gate.Effect, error) {
	d, ok := p.catalog.Lookup(id)
	if !ok {
		return gate.Effect{}, fmt.Errorf("unknown setting id %d", id)
	}
	if index < 0 || index >= len(d.Options) {
		return gate.Effect{}, fmt.Errorf("option %d out of range for %s", index, d.Key)
	}
	if !p.active[id] && index != 0 {
		return gate.Effect{}, fmt.Errorf("setting %s is inactive", d.Key)
	}

	p.index[id] = index

	eff, ok := p.gates.Evaluate(id, index)
	if !ok {
		return gate.Effect{}, nil
	}
	for _, dep := range eff.Enable {
		p.active[dep] = true
	}
	for _, dep := range eff.Disable {
		p.active[dep] = false
		p.index[dep] = 0
	}
	return eff, nil
}

// SelectText chooses an option by its label
func (p *Panel) SelectText(id catalog.ID, label string) (gate.Effect, error) {
	idx, ok := p.catalog.IndexOf(id, label)
	if !ok {
		return gate.Effect{}, fmt.Errorf("unknown option %q for setting %d", label, id)
	}
	return p.Select(id, idx)
}

// Resolve builds the record to persist. Inactive and unset settings are null.
func (p *Panel) Resolve() models.SettingsRecord {
	rec := models.NewSettingsRecord()
	rec.SettingsSet = true
	for i := range p.index {
		id := catalog.ID(i)
		d := p.catalog.Get(id)
		v := models.Null()
		if p.active[i] {
			v = p.catalog.Encode(id, p.index[i])
		}
		rec.Set(d.Key, v)
	}
	return rec
}

// Replay restores selections from a stored record. Parents are applied before
// their dependents so activation matches what was saved. Values the catalog
// does not know fall back to unset and are reported as warnings.
func (p *Panel) Replay(rec models.SettingsRecord) []string {
	p.Reset()

	var warnings []string
	apply := func(id catalog.ID) {
		d := p.catalog.Get(id)
		v := rec.Get(d.Key)
		idx, ok := p.catalog.Decode(id, v)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: unknown value %s", d.Key, v))
			idx = 0
		}
		if !p.active[id] {
			if idx != 0 {
				warnings = append(warnings, fmt.Sprintf("%s: value %s ignored, setting is inactive", d.Key, v))
			}
			return
		}
		if _, err := p.Select(id, idx); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	for i := 0; i < p.catalog.Len(); i++ {
		if _, gated := p.gates.ParentOf(catalog.ID(i)); !gated {
			apply(catalog.ID(i))
		}
	}
	for i := 0; i < p.catalog.Len(); i++ {
		if _, gated := p.gates.ParentOf(catalog.ID(i)); gated {
			apply(catalog.ID(i))
		}
	}
	return warnings
}
