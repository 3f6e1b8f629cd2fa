package catalog

import (
	"fmt"

	"gfxmanager/models"
)

// ID identifies a setting. Values are positions in the catalog and are load-bearing.
type ID int

// Setting ids
const (
	FXAAEnable ID = iota
	FXAAQualitySubpixel
	FXAAQualityEdge
	FXAAEdgeThreshold
	SMAAEnable
	SMAAEdgeDetection
	SMAAThreshold
	SMAASearchSteps
	SMAASearchStepsDiagonal
	SMAACornerRounding
	AFEnable
	AFLevel
	AFLevelD3D9
	LODEnable
	LODBias
	LODBiasD3D9
	ClampNegativeLOD
	ClampNegativeLODD3D9
	CASEnable
	CASLevel
	DLSEnable
	DLSSharpness
	DLSDenoise
	VSyncEnable
	VSyncLevel
	VSyncLevelD3D9
	FrameLimitEnable
	FrameLimitLevel
	FrameLimitLevelD3D9
	HDREnable
	D3DLevel

	count
)

// Group is the tab a setting is shown on
type Group int

const (
	AntiAliasing Group = iota
	AnisotropicFiltering
	Sharpening
	VSync
	Misc
)

var groupNames = map[Group]string{
	AntiAliasing:         "Anti-Aliasing",
	AnisotropicFiltering: "Anisotropic Filtering",
	Sharpening:           "Sharpening",
	VSync:                "VSync",
	Misc:                 "Misc",
}

// String returns the display name of the group
func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// Kind says how a selection is persisted
type Kind int

const (
	// Choice selections persist as the option label
	Choice Kind = iota
	// Toggle selections persist as true (index 1) or false (index 2)
	Toggle
)

// Descriptor describes one selectable setting
type Descriptor struct {
	ID         ID
	Key        string
	Label      string
	Options    []string
	HelpHeader string
	HelpBody   string
	Group      Group
	Kind       Kind
	// Rule draws a separator after the setting in the panel
	Rule bool
}

// Sentinel returns the "unset" option shown at index 0
func (d Descriptor) Sentinel() string {
	return d.Options[0]
}

// Catalog is the fixed table of setting descriptors
type Catalog struct {
	descriptors []Descriptor
	byKey       map[string]ID
	labels      []map[string]int
}

// New builds the catalog
func New() *Catalog {
	descs := descriptors()
	c := &Catalog{
		descriptors: descs,
		byKey:       make(map[string]ID, len(descs)),
		labels:      make([]map[string]int, len(descs)),
	}
	for i, d := range descs {
		c.byKey[d.Key] = d.ID
		idx := make(map[string]int, len(d.Options))
		for j, opt := range d.Options {
			idx[opt] = j
		}
		c.labels[i] = idx
	}
	return c
}

// Len returns the number of settings
func (c *Catalog) Len() int {
	return len(c.descriptors)
}

// Get returns the descriptor for id. It panics on an id outside the catalog.
func (c *Catalog) Get(id ID) Descriptor {
	return c.descriptors[id]
}

// Lookup returns the descriptor for id and whether it exists
func (c *Catalog) Lookup(id ID) (Descriptor, bool) {
	if id < 0 || int(id) >= len(c.descriptors) {
		return Descriptor{}, false
	}
	return c.descriptors[id], true
}

// ByKey finds a descriptor by its persisted key
func (c *Catalog) ByKey(key string) (Descriptor, bool) {
	id, ok := c.byKey[key]
	if !ok {
		return Descriptor{}, false
	}
	return c.descriptors[id], true
}

// AllOrderedByGroup returns every descriptor, grouped, in catalog order within a group
func (c *Catalog) AllOrderedByGroup() []Descriptor {
	out := make([]Descriptor, 0, len(c.descriptors))
	for _, g := range c.Groups() {
		out = append(out, c.Group(g)...)
	}
	return out
}

// Groups lists the groups in display order
func (c *Catalog) Groups() []Group {
	return []Group{AntiAliasing, AnisotropicFiltering, Sharpening, VSync, Misc}
}

// Group returns the descriptors of g in catalog order
func (c *Catalog) Group(g Group) []Descriptor {
	var out []Descriptor
	for _, d := range c.descriptors {
		if d.Group == g {
			out = append(out, d)
		}
	}
	return out
}

// IndexOf returns the option index of label for id
func (c *Catalog) IndexOf(id ID, label string) (int, bool) {
	if _, ok := c.Lookup(id); !ok {
		return 0, false
	}
	idx, ok := c.labels[id][label]
	return idx, ok
}

// Label returns the option label at index for id
func (c *Catalog) Label(id ID, index int) (string, bool) {
	d, ok := c.Lookup(id)
	if !ok || index < 0 || index >= len(d.Options) {
		return "", false
	}
	return d.Options[index], true
}

// Encode converts a selected option index into its persisted value.
// Index 0 is always null.
func (c *Catalog) Encode(id ID, index int) models.Value {
	d, ok := c.Lookup(id)
	if !ok || index <= 0 || index >= len(d.Options) {
		return models.Null()
	}
	if d.Kind == Toggle {
		switch index {
		case 1:
			return models.Bool(true)
		case 2:
			return models.Bool(false)
		default:
			return models.Null()
		}
	}
	return models.String(d.Options[index])
}

// Decode converts a persisted value back into an option index.
// Null decodes to 0. The second result is false for values the catalog does not know.
func (c *Catalog) Decode(id ID, v models.Value) (int, bool) {
	d, ok := c.Lookup(id)
	if !ok {
		return 0, false
	}
	if v.IsNull() {
		return 0, true
	}
	if d.Kind == Toggle {
		b, ok := v.AsBool()
		if !ok {
			return 0, false
		}
		if b {
			return 1, true
		}
		return 2, true
	}
	s, ok := v.AsString()
	if !ok {
		return 0, false
	}
	idx, ok := c.labels[id][s]
	if !ok || idx == 0 {
		return 0, false
	}
	return idx, true
}
