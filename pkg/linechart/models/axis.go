package models

// Tick is one labelled mark on an axis.
type Tick struct {
	// Pos is the pixel offset along the axis.
	Pos float64 `json:"pos"`
	// Label is the formatted tick value.
	Label string `json:"label"`
}
