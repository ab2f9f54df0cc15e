// Package export writes derived trajectory series to machine-readable
// CSV and JSON files for downstream analysis.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nav-tools/mppiplot/internal/analysis"
	"github.com/nav-tools/mppiplot/internal/trajectory"
)

type Document struct {
	Source  string      `json:"source"`
	ModelDt float64     `json:"model_dt"`
	Groups  []GroupData `json:"groups"`
}

type GroupData struct {
	PathLength float64   `json:"path_length"`
	Samples    int       `json:"samples"`
	Steps      []float64 `json:"steps"`
	X          []float64 `json:"x"`
	Velocity   []float64 `json:"velocity"`
}

// BuildDocument derives the velocity profile of every group and
// assembles the export document. Group order is preserved.
func BuildDocument(source string, dt float64, groups []*trajectory.Group) (*Document, error) {
	doc := &Document{
		Source:  source,
		ModelDt: dt,
		Groups:  make([]GroupData, 0, len(groups)),
	}

	for _, g := range groups {
		v, err := analysis.Velocity(g.X, dt)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Label(), err)
		}
		doc.Groups = append(doc.Groups, GroupData{
			PathLength: g.PathLength,
			Samples:    g.Len(),
			Steps:      g.Steps,
			X:          g.X,
			Velocity:   v,
		})
	}
	return doc, nil
}

func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func SaveJSON(path string, doc *Document) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, doc)
}
