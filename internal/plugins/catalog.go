// Package plugins holds the report plugin catalog: the closed set of widget
// variants a report template may reference, with their descriptors and the
// rendering and snapshot capabilities each variant provides.
package plugins

import (
	"encoding/json"
	"sort"
)

// Plugin ids known to the catalog
const (
	TeamLeadTimeID = "team-lead-time"
	WIPID          = "wip"
	CustomID       = "custom"
)

// Group is the section of the report a plugin belongs to
type Group string

const (
	GroupDelivery Group = "delivery"
	GroupHR       Group = "hr"
	GroupFinance  Group = "finance"
	GroupOther    Group = "other"
)

var groupLabels = map[Group]string{
	GroupDelivery: "Delivery",
	GroupHR:       "HR",
	GroupFinance:  "Finance",
	GroupOther:    "Other",
}

// Label returns the display name of the group
func (g Group) Label() string {
	if l, ok := groupLabels[g]; ok {
		return l
	}
	return string(g)
}

// Groups lists every group in display order
func Groups() []Group {
	return []Group{GroupDelivery, GroupHR, GroupFinance, GroupOther}
}

// Rating is the three point grade given to a plugin block
type Rating int

const (
	RatingExcellent Rating = 1
	RatingNeedsWork Rating = 2
	RatingPoor      Rating = 3
)

// Valid reports whether r is one of the known grades
func (r Rating) Valid() bool {
	return r >= RatingExcellent && r <= RatingPoor
}

// Label returns the display name of the rating
func (r Rating) Label() string {
	switch r {
	case RatingExcellent:
		return "Excellent"
	case RatingNeedsWork:
		return "Needs work"
	case RatingPoor:
		return "Poor"
	default:
		return ""
	}
}

// Descriptor identifies a plugin
type Descriptor struct {
	PluginID       string `json:"pluginId"`
	Label          string `json:"label"`
	Group          Group  `json:"group"`
	DefaultPrompt  string `json:"defaultPrompt"`
	AllowsMultiple bool   `json:"allowsMultiple"`
}

// Variant is the capability set every plugin implements
type Variant interface {
	Descriptor() Descriptor
	// Render turns raw plugin data into a visualization.
	Render(data json.RawMessage) (*Visualization, error)
	// Snapshot renders the visualization into image bytes.
	Snapshot(data json.RawMessage) ([]byte, error)
}

// Catalog maps plugin ids to their variants. It is built once at start-up and
// read-only afterwards.
type Catalog struct {
	variants map[string]Variant
	order    []string
}

// NewCatalog creates a catalog from the given variants. Later variants with a
// duplicate id replace earlier ones.
func NewCatalog(variants ...Variant) *Catalog {
	c := &Catalog{variants: make(map[string]Variant, len(variants))}
	for _, v := range variants {
		id := v.Descriptor().PluginID
		if _, exists := c.variants[id]; !exists {
			c.order = append(c.order, id)
		}
		c.variants[id] = v
	}
	return c
}

// NewDefaultCatalog creates the catalog with every built-in plugin
func NewDefaultCatalog() *Catalog {
	return NewCatalog(
		NewTeamLeadTime(),
		NewWIP(),
		NewCustom(),
	)
}

// List returns all descriptors grouped in display order, registration order within a group
func (c *Catalog) List() []Descriptor {
	rank := make(map[Group]int)
	for i, g := range Groups() {
		rank[g] = i
	}
	out := make([]Descriptor, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.variants[id].Descriptor())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Group] < rank[out[j].Group]
	})
	return out
}

// Lookup returns the variant for a plugin id
func (c *Catalog) Lookup(pluginID string) (Variant, bool) {
	v, ok := c.variants[pluginID]
	return v, ok
}

// Has reports whether the plugin id is known
func (c *Catalog) Has(pluginID string) bool {
	_, ok := c.variants[pluginID]
	return ok
}

// DefaultLabel returns the plugin's label, or the id itself for unknown plugins
func (c *Catalog) DefaultLabel(pluginID string) string {
	if v, ok := c.variants[pluginID]; ok {
		return v.Descriptor().Label
	}
	return pluginID
}

// AllowsMultiple reports whether the plugin may appear more than once in a template
func (c *Catalog) AllowsMultiple(pluginID string) bool {
	if v, ok := c.variants[pluginID]; ok {
		return v.Descriptor().AllowsMultiple
	}
	return false
}
