package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io/fs"
	"path"
	"strings"
)

// readPart returns the bytes of an OOXML part, or nil, nil when the part is absent.
func readPart(r *zip.Reader, name string) ([]byte, error) {
	data, err := fs.ReadFile(r, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// readElementText collects the character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// attr returns the value of the attribute with the given local name.
func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// resolvePart resolves a relationship target against the part that declares it.
// Targets are relative to the source part's folder unless they start with "/".
func resolvePart(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(strings.TrimPrefix(target, "/"))
	}
	return path.Join(path.Dir(source), target)
}

// relsPathFor returns the relationships part that belongs to a part, e.g.
// xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func relsPathFor(part string) string {
	idx := strings.LastIndex(part, "/")
	return part[:idx+1] + "_rels/" + part[idx+1:] + ".rels"
}

// parseRelationships maps relationship ids to targets whose type contains kind.
func parseRelationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if strings.Contains(strings.ToLower(attr(se, "Type")), kind) {
				result[attr(se, "Id")] = attr(se, "Target")
			}
		}
	}

	return result
}

// parseWorkbookSheets returns sheet names keyed by relationship id, plus the sheet order.
func parseWorkbookSheets(data []byte) (map[string]string, []string) {
	result := make(map[string]string)
	var order []string
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attr(se, "name"), attr(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
				order = append(order, rID)
			}
		}
	}

	return result, order
}
