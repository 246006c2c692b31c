package models

// Segment is a guide line relative to the focus point.
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Focus describes the focus marker after a pointer event.
type Focus struct {
	// Visible is false while the pointer is outside the plot.
	Visible bool `json:"visible"`
	// Index is the position of Sample in the dataset.
	Index int `json:"index"`
	// Sample is the nearest sample to the pointer.
	Sample Sample `json:"sample"`
	// X is the pixel x of Sample.Year within the plot.
	X float64 `json:"x"`
	// Y is the pixel y of Sample.Value within the plot.
	Y float64 `json:"y"`
	// Label is the text displayed next to the marker.
	Label string `json:"label"`
	// XLine runs from the marker down to the x axis.
	XLine Segment `json:"x_line"`
	// YLine runs from the marker left to the y axis.
	YLine Segment `json:"y_line"`
}
