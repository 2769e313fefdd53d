package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/meenmo/vixcal/frame"
)

const dateLayout = "2006-01-02"

// ReadTable reads a headered CSV file into a frame. When dateColumn names
// one of the header columns, its values are parsed as YYYY-MM-DD dates and
// promoted to the frame index; every other column must be numeric.
func ReadTable(path, dateColumn string) (*frame.Frame, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer fd.Close()

	records, err := csv.NewReader(fd).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("dataset: %q is empty", path)
	}
	header := records[0]
	rows := records[1:]

	out := frame.New()
	sawDate := false
	for j, name := range header {
		if name == dateColumn {
			index := make([]time.Time, len(rows))
			for i, rec := range rows {
				d, err := time.Parse(dateLayout, rec[j])
				if err != nil {
					return nil, fmt.Errorf("dataset: %q row %d: %w", path, i+2, err)
				}
				index[i] = d
			}
			if err := out.SetIndex(index); err != nil {
				return nil, err
			}
			sawDate = true
			continue
		}
		vals := make([]float64, len(rows))
		for i, rec := range rows {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: %q row %d column %q: %w", path, i+2, name, err)
			}
			vals[i] = v
		}
		if err := out.AddFloats(name, vals); err != nil {
			return nil, err
		}
	}
	if dateColumn != "" && !sawDate {
		return nil, fmt.Errorf("dataset: %q has no column %q", path, dateColumn)
	}
	return out, nil
}

// WriteTable writes a frame as headered CSV. An index, when present, is
// written first under indexName (default "date").
func WriteTable(w io.Writer, f *frame.Frame, indexName string) error {
	if indexName == "" {
		indexName = "date"
	}

	names := f.ColumnNames()
	header := make([]string, 0, len(names)+1)
	if f.HasIndex() {
		header = append(header, indexName)
	}
	header = append(header, names...)

	cells := make([][]string, len(names))
	for j, name := range names {
		if vals, err := f.Floats(name); err == nil {
			col := make([]string, len(vals))
			for i, v := range vals {
				col[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			cells[j] = col
			continue
		}
		dates, err := f.Dates(name)
		if err != nil {
			return err
		}
		col := make([]string, len(dates))
		for i, d := range dates {
			col[i] = d.Format(dateLayout)
		}
		cells[j] = col
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	index := f.Index()
	for i := 0; i < f.Len(); i++ {
		rec := make([]string, 0, len(header))
		if index != nil {
			rec = append(rec, index[i].Format(dateLayout))
		}
		for j := range cells {
			rec = append(rec, cells[j][i])
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
