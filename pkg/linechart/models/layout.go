package models

// Margin is the space around the plot area in pixels.
type Margin struct {
	Top    int `json:"top" yaml:"top" validate:"gte=0"`
	Right  int `json:"right" yaml:"right" validate:"gte=0"`
	Bottom int `json:"bottom" yaml:"bottom" validate:"gte=0"`
	Left   int `json:"left" yaml:"left" validate:"gte=0"`
}

// Layout holds the outer canvas size and margins.
type Layout struct {
	// Width is the outer SVG width in pixels.
	Width int `json:"width" yaml:"width" validate:"gt=0"`
	// Height is the outer SVG height in pixels.
	Height int `json:"height" yaml:"height" validate:"gt=0"`
	// Margin surrounds the plot area.
	Margin Margin `json:"margin" yaml:"margin"`
}

// InnerWidth returns the plot width without margins.
func (l Layout) InnerWidth() int {
	return l.Width - l.Margin.Left - l.Margin.Right
}

// InnerHeight returns the plot height without margins.
func (l Layout) InnerHeight() int {
	return l.Height - l.Margin.Top - l.Margin.Bottom
}
