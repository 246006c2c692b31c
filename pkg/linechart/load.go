package linechart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/parser"
)

// Load reads and validates a dataset. The format follows the file extension:
// .json for a year/value array, .xlsx or .xlsm for a workbook.
func Load(path string) (models.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.Dataset{}, NewLoadError(path, "read", ErrFileNotFound)
	}

	var ds models.Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return ds, NewLoadError(path, "read", err)
		}
		defer f.Close()
		return LoadJSON(f, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	case ".xlsx", ".xlsm":
		var err error
		ds, err = parser.ExtractWorkbook(path)
		if err != nil {
			return ds, NewLoadError(path, "parse", err)
		}
	default:
		return ds, NewLoadError(path, "read", ErrInvalidFormat)
	}

	if err := Validate(ds.Samples); err != nil {
		return ds, NewLoadError(path, "validate", err)
	}
	return ds, nil
}

// LoadJSON reads and validates a JSON dataset named name.
func LoadJSON(r io.Reader, name string) (models.Dataset, error) {
	ds := models.Dataset{Name: name}

	data, err := io.ReadAll(r)
	if err != nil {
		return ds, NewLoadError(name, "read", err)
	}
	ds.Samples, err = parser.ParseJSON(data)
	if err != nil {
		return ds, NewLoadError(name, "parse", err)
	}
	if err := Validate(ds.Samples); err != nil {
		return ds, NewLoadError(name, "validate", err)
	}
	return ds, nil
}

// Validate checks that samples are non-empty, finite and in ascending year order.
// Equal years are allowed.
func Validate(samples []models.Sample) error {
	if len(samples) == 0 {
		return ErrEmptyDataset
	}
	for i, s := range samples {
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			return fmt.Errorf("sample %d: %w", i, ErrInvalidValue)
		}
		if i > 0 && s.Year.Before(samples[i-1].Year) {
			return fmt.Errorf("sample %d (%s) after sample %d (%s): %w",
				i, s.Year.Format("2006"), i-1, samples[i-1].Year.Format("2006"), ErrUnsorted)
		}
	}
	return nil
}
