package plugins

// Chart kinds
const (
	ChartLine       = "line"
	ChartStackedBar = "stacked-bar"
)

// Series is one named line or bar segment across all chart labels
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is a renderer-agnostic chart description
type Chart struct {
	Kind   string   `json:"kind"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Visualization is what a variant renders from its data: a chart or an image
type Visualization struct {
	Chart *Chart `json:"chart,omitempty"`
	Image string `json:"image,omitempty"`
}

// View is a fully resolved plugin block ready for display
type View struct {
	PluginID    string  `json:"pluginId"`
	Label       string  `json:"label"`
	Group       Group   `json:"group"`
	GroupLabel  string  `json:"groupLabel"`
	Prompt      string  `json:"prompt"`
	Rating      *Rating `json:"rating"`
	RatingLabel *string `json:"ratingLabel"`
	Visualization
}

// NewView combines a descriptor with a rendered visualization. A nil prompt
// falls back to the plugin's default prompt.
func NewView(d Descriptor, vis *Visualization, prompt *string, rating *Rating) *View {
	view := &View{
		PluginID:   d.PluginID,
		Label:      d.Label,
		Group:      d.Group,
		GroupLabel: d.Group.Label(),
		Prompt:     d.DefaultPrompt,
		Rating:     rating,
	}
	if prompt != nil {
		view.Prompt = *prompt
	}
	if rating != nil {
		label := rating.Label()
		view.RatingLabel = &label
	}
	if vis != nil {
		view.Visualization = *vis
	}
	return view
}
