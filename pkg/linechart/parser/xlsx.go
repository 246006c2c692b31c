package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/xuri/excelize/v2"
)

// ExtractWorkbook reads a dataset from an xlsx file.
//
// When the workbook embeds a line chart, the category and value ranges of its first
// series supply the years and values. Otherwise the data block of the first sheet is
// read: first column years, second column values, with an optional header row.
func ExtractWorkbook(path string) (models.Dataset, error) {
	ds := models.Dataset{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return ds, err
	}
	defer f.Close()

	charts, err := ExtractLineCharts(path)
	if err != nil {
		return ds, err
	}
	for _, chart := range charts {
		if len(chart.Series) == 0 || chart.Series[0].XRange == "" || chart.Series[0].YRange == "" {
			continue
		}
		samples, err := ExtractSeries(f, chart.Series[0])
		if err != nil {
			return ds, fmt.Errorf("chart %q: %w", chart.Name, err)
		}
		if chart.Title != "" {
			ds.Name = chart.Title
		}
		ds.Chart = &chart
		ds.Samples = samples
		return ds, nil
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ds, ErrNoData
	}
	ds.Samples, err = ExtractSheet(f, sheets[0])
	return ds, err
}

// ExtractSeries reads the samples referenced by a chart series.
func ExtractSeries(f *excelize.File, s models.ChartSeries) ([]models.Sample, error) {
	years, err := readRange(f, s.XRange)
	if err != nil {
		return nil, err
	}
	values, err := readRange(f, s.YRange)
	if err != nil {
		return nil, err
	}
	if len(years) != len(values) {
		return nil, fmt.Errorf("series ranges differ in length: %d years, %d values", len(years), len(values))
	}
	return pairSamples(years, values, 0)
}

// ExtractSheet reads samples from the first two columns of a sheet's data block.
// A first row whose year cell does not parse is treated as a header.
func ExtractSheet(f *excelize.File, sheetName string) ([]models.Sample, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	b, ok := findDataBlock(rows)
	if !ok {
		return nil, ErrNoData
	}
	if b.right == b.left {
		return nil, fmt.Errorf("sheet %q has a single column: %w", sheetName, ErrNoData)
	}

	first := b.top
	if _, err := ParseYear(cellAt(rows, first, b.left)); err != nil {
		first++ // header
	}

	var years, values []string
	for r := first; r <= b.bottom; r++ {
		year, value := cellAt(rows, r, b.left), cellAt(rows, r, b.left+1)
		if year == "" && value == "" {
			continue
		}
		years = append(years, year)
		values = append(values, value)
	}
	if len(years) == 0 {
		return nil, ErrNoData
	}
	return pairSamples(years, values, first-b.top)
}

// pairSamples parses parallel year and value cells; offset shifts reported indexes.
func pairSamples(years, values []string, offset int) ([]models.Sample, error) {
	samples := make([]models.Sample, 0, len(years))
	for i := range years {
		year, err := ParseYear(years[i])
		if err != nil {
			return nil, &SampleError{Index: i + offset, Field: "year", Raw: years[i], Err: err}
		}
		value, err := ParseValue(values[i])
		if err != nil {
			return nil, &SampleError{Index: i + offset, Field: "value", Raw: values[i], Err: err}
		}
		samples = append(samples, models.Sample{Year: year, Value: value})
	}
	return samples, nil
}
