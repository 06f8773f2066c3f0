package fixture

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Delimiter separates fields. Files keep the .csv extension regardless.
const Delimiter = ' '

// Ext is the file extension of every fixture file.
const Ext = ".csv"

// Encoder writes fixture rows to an io.Writer.
type Encoder struct {
	w *csv.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	return &Encoder{w: cw}
}

func (e *Encoder) WriteHeader() error {
	return e.w.Write(Header)
}

func (e *Encoder) Write(r Row) error {
	return e.w.Write(r.Fields())
}

// Flush writes any buffered rows and reports the first write error seen.
func (e *Encoder) Flush() error {
	e.w.Flush()
	return e.w.Error()
}

// Decode reads a fixture file back into rows. The header must match Header
// exactly.
func Decode(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = len(Header)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("fixture: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("fixture: read header: %w", err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("fixture: unexpected header %q", header)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fixture: %w", err)
		}
		row, err := parseRow(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("fixture: line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
}

func parseRow(rec []string) (Row, error) {
	var (
		row Row
		err error
	)
	if row.Index, err = strconv.Atoi(rec[0]); err != nil {
		return Row{}, fmt.Errorf("index: %w", err)
	}
	if row.X, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return Row{}, fmt.Errorf("x: %w", err)
	}
	if row.Y, err = strconv.ParseFloat(rec[2], 64); err != nil {
		return Row{}, fmt.Errorf("y: %w", err)
	}
	if row.Type, err = strconv.Atoi(rec[3]); err != nil {
		return Row{}, fmt.Errorf("type: %w", err)
	}
	return row, nil
}
