package parser

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

// lineChartTags are the plot area elements that hold line series.
var lineChartTags = map[string]bool{
	"lineChart":   true,
	"line3DChart": true,
}

// chartFrame holds the drawing anchor of one chart.
type chartFrame struct {
	name   string
	rID    string
	width  int
	height int
}

// ExtractLineCharts returns the line charts embedded in an xlsx file, in sheet order.
func ExtractLineCharts(xlsxPath string) ([]models.WorkbookChart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return extractLineCharts(&r.Reader)
}

func extractLineCharts(r *zip.Reader) ([]models.WorkbookChart, error) {
	workbookXML, err := readPart(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return nil, err
	}
	sheets, order := parseWorkbookSheets(workbookXML)

	wbRelsXML, err := readPart(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return nil, err
	}
	sheetTargets := parseRelationships(wbRelsXML, "worksheet")

	var result []models.WorkbookChart
	for _, rID := range order {
		target, ok := sheetTargets[rID]
		if !ok {
			continue
		}
		sheetPath := resolvePart("xl/workbook.xml", target)

		sheetRelsXML, err := readPart(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}
		for _, drawingTarget := range parseRelationships(sheetRelsXML, "drawing") {
			drawingPath := resolvePart(sheetPath, drawingTarget)
			result = append(result, chartsInDrawing(r, sheets[rID], drawingPath)...)
		}
	}

	return result, nil
}

// chartsInDrawing parses one drawing part and the line charts it references.
func chartsInDrawing(r *zip.Reader, sheet, drawingPath string) []models.WorkbookChart {
	drawingXML, err := readPart(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil
	}
	relsXML, err := readPart(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return nil
	}
	chartTargets := parseRelationships(relsXML, "chart")

	var result []models.WorkbookChart
	for _, frame := range parseDrawingFrames(drawingXML) {
		target, ok := chartTargets[frame.rID]
		if !ok {
			continue
		}
		chartXML, err := readPart(r, resolvePart(drawingPath, target))
		if err != nil || chartXML == nil {
			continue
		}
		chart, ok := parseChartXML(chartXML)
		if !ok {
			continue
		}
		chart.Sheet = sheet
		chart.Name = frame.name
		chart.W, chart.H = frame.width, frame.height
		result = append(result, chart)
	}
	return result
}

// parseDrawingFrames finds graphic frames that reference a chart.
func parseDrawingFrames(data []byte) []chartFrame {
	var frames []chartFrame
	var cur *chartFrame
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "graphicFrame":
				cur = &chartFrame{}
			case "cNvPr":
				if cur != nil {
					cur.name = attr(t, "name")
				}
			case "ext":
				// xfrm extent, in EMU
				if cur != nil {
					if cx, err := strconv.ParseInt(attr(t, "cx"), 10, 64); err == nil {
						cur.width = EMUToPixels(cx)
					}
					if cy, err := strconv.ParseInt(attr(t, "cy"), 10, 64); err == nil {
						cur.height = EMUToPixels(cy)
					}
				}
			case "chart":
				if cur != nil {
					cur.rID = attr(t, "id")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "graphicFrame" && cur != nil {
				if cur.rID != "" {
					frames = append(frames, *cur)
				}
				cur = nil
			}
		}
	}

	return frames
}

// parseChartXML parses a chart part; ok is false unless it holds a line chart.
func parseChartXML(data []byte) (chart models.WorkbookChart, ok bool) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, isStart := token.(xml.StartElement)
		if !isStart {
			continue
		}

		switch {
		case se.Name.Local == "title" && chart.Title == "" && len(chart.Series) == 0 && !ok:
			chart.Title = parseTitle(decoder)
		case lineChartTags[se.Name.Local] && !ok:
			chart.Series = parseSeriesList(decoder)
			ok = true
		case se.Name.Local == "valAx":
			chart.YAxisTitle = parseAxisTitle(decoder)
		}
	}

	return chart, ok
}

// parseTitle returns the concatenated rich text runs of a title element.
func parseTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" || t.Name.Local == "v" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(parts, ""))
}

// parseAxisTitle reads the title of an axis element and skips the rest of it.
func parseAxisTitle(decoder *xml.Decoder) string {
	var title string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "title" {
				title = parseTitle(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return title
}

// parseSeriesList parses the ser elements within a chart type element.
func parseSeriesList(decoder *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSeries parses a single ser element.
func parseSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name = parseTitle(decoder)
				depth--
			case "cat":
				s.XRange = parseFormula(decoder)
				depth--
			case "val":
				s.YRange = parseFormula(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseFormula returns the first f element text in the current element.
func parseFormula(decoder *xml.Decoder) string {
	var formula string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && formula == "" {
				if txt, err := readElementText(decoder); err == nil {
					formula = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return formula
}
