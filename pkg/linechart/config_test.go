package linechart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsOverridesDefaults(t *testing.T) {
	opts, err := ParseOptions([]byte(`
format: html
title: Revenue
stroke: steelblue
layout:
  width: 1000
  height: 600
  margin: {top: 20, right: 20, bottom: 40, left: 80}
show_guides: false
`))
	require.NoError(t, err)

	assert.Equal(t, FormatHTML, opts.Format)
	assert.Equal(t, "Revenue", opts.Title)
	assert.Equal(t, "steelblue", opts.Stroke)
	assert.Equal(t, 900, opts.Layout.InnerWidth())
	assert.Equal(t, 540, opts.Layout.InnerHeight())
	assert.False(t, opts.ShouldShowGuides())
	assert.True(t, opts.ShouldEmbedScript())

	// untouched keys keep defaults
	assert.Equal(t, 1.005, opts.Padding)
	assert.Equal(t, "Years", opts.XLabel)
	assert.Equal(t, 3.0, opts.StrokeWidth)
}

func TestParseOptionsEmpty(t *testing.T) {
	opts, err := ParseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: red"},
		{"bad format", "format: gif"},
		{"padding below one", "padding: 0.5"},
		{"zero width", "stroke_width: 0"},
		{"no plot area", "layout: {width: 100, height: 500, margin: {left: 60, right: 60}}"},
		{"empty stroke", `stroke: ""`},
		{"malformed", "layout: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_count: 5\n"), 0o644))
	opts, err = LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 5, opts.TickCount)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{"svg", FormatSVG, false},
		{" HTML ", FormatHTML, false},
		{"echarts", FormatECharts, false},
		{"png", FormatPNG, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
