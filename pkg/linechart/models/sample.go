// Package models defines data structures for line chart rendering and interaction.
package models

import "time"

// Sample is one point of the series.
type Sample struct {
	// Year is the sample date, 1 January of the parsed year in UTC.
	Year time.Time `json:"year"`
	// Value is the monetary value at Year.
	Value float64 `json:"value"`
}

// Dataset is a named, year-ordered sequence of samples.
type Dataset struct {
	// Name identifies the dataset (file base name by default).
	Name string `json:"name"`
	// Samples is sorted ascending by Year.
	Samples []Sample `json:"samples"`
	// Chart is the workbook chart the samples were read from, if any.
	Chart *WorkbookChart `json:"chart,omitempty"`
}
