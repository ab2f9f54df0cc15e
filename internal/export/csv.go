package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"path_length", "step", "x", "velocity"}

// WriteCSV flattens the document into one row per sample, groups in
// document order.
func WriteCSV(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, g := range doc.Groups {
		for i := range g.Steps {
			row := []string{
				formatFloat(g.PathLength),
				formatFloat(g.Steps[i]),
				formatFloat(g.X[i]),
				formatFloat(g.Velocity[i]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, doc *Document) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, doc)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
