package trajectory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads an optimal-trajectory sweep file: one record per line,
// exactly 3 comma-separated numbers (path_length, step, x). Records come
// back in file order. The first line that is neither a comment nor three
// valid numbers fails the whole load.
func Load(path string) ([]Record, error) {
	rows, err := readRows(path, 3)
	if err != nil {
		return nil, err
	}

	recs := make([]Record, len(rows))
	for i, row := range rows {
		recs[i] = Record{PathLength: row[0], Step: row[1], X: row[2]}
	}
	return recs, nil
}

// LoadSweep reads a velocity-response sweep file: 11 comma-separated
// numbers per line (k, j, i, vx_max, vx_std, wz_max, wz_std, vx_in,
// wz_in, cmd_vel_vx, cmd_vel_wz). Same comment and fail-fast rules as
// Load.
func LoadSweep(path string) ([]SweepRecord, error) {
	rows, err := readRows(path, 11)
	if err != nil {
		return nil, err
	}

	recs := make([]SweepRecord, len(rows))
	for i, row := range rows {
		recs[i] = SweepRecord{
			K:        row[0],
			J:        row[1],
			Iter:     row[2],
			VxMax:    row[3],
			VxStd:    row[4],
			WzMax:    row[5],
			WzStd:    row[6],
			VxIn:     row[7],
			WzIn:     row[8],
			CmdVelVx: row[9],
			CmdVelWz: row[10],
		}
	}
	return recs, nil
}

// readRows parses every non-comment, non-blank line into exactly arity
// float64 fields. Lines are comments only when '#' is their first raw
// character.
func readRows(path string, arity int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = arity
	r.TrimLeadingSpace = true

	var rows [][]float64
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		row := make([]float64, arity)
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, _ := r.FieldPos(i)
				return nil, fmt.Errorf("%s:%d: value %q is not a valid number", path, line, field)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}
