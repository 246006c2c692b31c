package models

// ChartSeries references the cell ranges backing one series of a workbook chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// XRange is the category range reference, e.g. Sheet1!$A$2:$A$10.
	XRange string `json:"x_range,omitempty"`
	// YRange is the value range reference.
	YRange string `json:"y_range,omitempty"`
}

// WorkbookChart is a line chart found inside an xlsx workbook.
type WorkbookChart struct {
	// Sheet is the sheet that hosts the chart drawing.
	Sheet string `json:"sheet"`
	// Name is the drawing object name.
	Name string `json:"name"`
	// Title is the chart title, used as dataset name when present.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// W is the frame width in pixels (0 if unknown).
	W int `json:"w"`
	// H is the frame height in pixels (0 if unknown).
	H int `json:"h"`
	// Series lists the chart series in document order.
	Series []ChartSeries `json:"series"`
}
