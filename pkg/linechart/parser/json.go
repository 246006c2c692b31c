package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// record is the raw shape of one dataset entry: { "year": "1990", "value": "100" }.
type record struct {
	Year  json.RawMessage `json:"year"`
	Value json.RawMessage `json:"value"`
}

// ParseJSON parses a JSON array of year/value records.
// Both fields may be strings or numbers.
func ParseJSON(data []byte) ([]models.Sample, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	samples := make([]models.Sample, 0, len(records))
	for i, rec := range records {
		yearRaw, err := rawScalar(rec.Year)
		if err != nil {
			return nil, &SampleError{Index: i, Field: "year", Raw: string(rec.Year), Err: err}
		}
		year, err := ParseYear(yearRaw)
		if err != nil {
			return nil, &SampleError{Index: i, Field: "year", Raw: yearRaw, Err: err}
		}

		valueRaw, err := rawScalar(rec.Value)
		if err != nil {
			return nil, &SampleError{Index: i, Field: "value", Raw: string(rec.Value), Err: err}
		}
		value, err := ParseValue(valueRaw)
		if err != nil {
			return nil, &SampleError{Index: i, Field: "value", Raw: valueRaw, Err: err}
		}

		samples = append(samples, models.Sample{Year: year, Value: value})
	}

	return samples, nil
}

// rawScalar returns the text of a JSON string or number; absent and null yield "".
func rawScalar(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("expected string or number")
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return "", err
	}
	return n.String(), nil
}
